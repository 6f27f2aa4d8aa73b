// Package validation binds requests into typed payloads and validates
// them, turning failures into 400 errors with per-field messages.
package validation
