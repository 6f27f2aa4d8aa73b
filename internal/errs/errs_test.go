package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)))
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Order not found", true, nil)
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "Order not found", err.Error())

	code := "ORDER_NOT_FOUND"
	assert.Equal(t, code, NewNotFoundError("x", false, &code).Code)
}

func TestNewBadRequestError_FieldErrors(t *testing.T) {
	fields := []FieldError{{Field: "name", Error: "is required"}}

	err := NewBadRequestError("Validation failed", true, nil, fields, nil)

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.Equal(t, fields, err.Errors)
}

func TestNewTooManyRequestsError(t *testing.T) {
	err := NewTooManyRequestsError(30)

	assert.Equal(t, http.StatusTooManyRequests, err.Status)
	assert.Equal(t, "TOO_MANY_REQUESTS", err.Code)
	if assert.NotNil(t, err.Action) {
		assert.Equal(t, ActionTypeRetry, err.Action.Type)
		assert.Equal(t, "30", err.Action.Value)
	}
}

func TestHTTPError_IsAndAs(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NewInternalServerError())

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	if assert.True(t, errors.As(wrapped, &httpErr)) {
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "Internal Server Error", httpErr.Message)
	}
}
