// ABOUTME: Custom error types for the core business logic
// ABOUTME: Distinguishes transport, response-shape, and palette failures for callers and the API

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents an error reported by a remote source, either as
// a non-success HTTP status or as an error object in the response body
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// MalformedResponseError represents a response that decoded but lacks the
// fields the caller needs, or did not decode at all
type MalformedResponseError struct {
	API   string
	Field string
	Err   error
}

// Error implements the error interface
func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed response from %s: %v", e.API, e.Err)
	}
	return fmt.Sprintf("malformed response from %s: missing %s", e.API, e.Field)
}

// Unwrap returns the decoding error, if any
func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// PaletteOverflowError is returned when a roster has more authors than the
// palette has colors
type PaletteOverflowError struct {
	Authors int
	Colors  int
}

// Error implements the error interface
func (e *PaletteOverflowError) Error() string {
	return fmt.Sprintf("roster has %d authors but the palette only has %d colors", e.Authors, e.Colors)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsMalformedResponse checks if an error is a MalformedResponseError
func IsMalformedResponse(err error) bool {
	var malformedErr *MalformedResponseError
	return errors.As(err, &malformedErr)
}

// IsPaletteOverflow checks if an error is a PaletteOverflowError
func IsPaletteOverflow(err error) bool {
	var overflowErr *PaletteOverflowError
	return errors.As(err, &overflowErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
