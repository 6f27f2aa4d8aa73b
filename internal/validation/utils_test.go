package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/storefront/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testValidator = validator.New()

type pagePayload struct {
	Limit int    `query:"limit"`
	Name  string `json:"name" validate:"omitempty,min=3"`
	Kind  string `json:"kind" validate:"omitempty,oneof=a b"`
}

func (p *pagePayload) Validate() error {
	return testValidator.Struct(p)
}

type customPayload struct{}

func (p *customPayload) Validate() error {
	return CustomValidationErrors{{Field: "price", Message: "must not be negative"}}
}

func newContext(method, target, body string) echo.Context {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func requireHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	return httpErr
}

func TestBindAndValidate_OK(t *testing.T) {
	payload := &pagePayload{Limit: 25}

	err := BindAndValidate(newContext(http.MethodGet, "/?limit=10", ""), payload)

	require.NoError(t, err)
	assert.Equal(t, 10, payload.Limit)
}

func TestBindAndValidate_KeepsDefaultsForMissingParams(t *testing.T) {
	payload := &pagePayload{Limit: 25}

	require.NoError(t, BindAndValidate(newContext(http.MethodGet, "/", ""), payload))
	assert.Equal(t, 25, payload.Limit)
}

func TestBindAndValidate_BindFailure(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodGet, "/?limit=ten", ""), &pagePayload{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Contains(t, httpErr.Message, `"ten"`)
}

func TestBindAndValidate_TagFailures(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPost, "/", `{"name":"ab","kind":"z"}`), &pagePayload{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "Name", Error: "must be at least 3 characters"},
		{Field: "Kind", Error: "must be one of: a b"},
	}, httpErr.Errors)
}

func TestBindAndValidate_CustomFailures(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPost, "/", `{}`), &customPayload{})

	httpErr := requireHTTPError(t, err)
	assert.Equal(t, []errs.FieldError{{Field: "price", Error: "must not be negative"}}, httpErr.Errors)
	assert.True(t, httpErr.Override)
}
