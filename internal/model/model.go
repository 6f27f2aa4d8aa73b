// Package model holds the resources exposed by the API, the filters used to
// list them and the typed request payloads accepted by the handlers.
package model

import (
	"reflect"
	"strings"

	"github.com/deppfellow/storefront/internal/validation"
	"github.com/go-playground/validator/v10"
)

const (
	// DefaultOffset and DefaultLimit apply when a list request omits them.
	DefaultOffset = 0
	DefaultLimit  = 25
)

var validate = newValidator()

// newValidator reports fields by their JSON names so field errors match
// what the client sent.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Page is the offset/limit window of a list query.
type Page struct {
	Offset int `query:"offset" json:"offset"`
	Limit  int `query:"limit" json:"limit"`
}

// DefaultPage returns the window used when no query parameters are given.
func DefaultPage() Page {
	return Page{Offset: DefaultOffset, Limit: DefaultLimit}
}

// DeleteResult is what the product service reports after a destroy.
type DeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// IDParam binds the :id path segment.
type IDParam struct {
	ID string `param:"id" json:"-"`
}

func (p *IDParam) Validate() error {
	return nil
}

// validateStruct runs tag validation and then any extra checks, returning
// the first kind of failure found.
func validateStruct(s any, extra ...func() *validation.CustomValidationError) error {
	if err := validate.Struct(s); err != nil {
		return err
	}

	var custom validation.CustomValidationErrors
	for _, check := range extra {
		if e := check(); e != nil {
			custom = append(custom, *e)
		}
	}
	if len(custom) > 0 {
		return custom
	}
	return nil
}
