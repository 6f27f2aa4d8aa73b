// Package errs defines the HTTP error shape shared by every layer.
//
// HTTPError is what the global error handler serialises; FieldError and
// Action give clients field-level detail and a next step to take.
package errs
