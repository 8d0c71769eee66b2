package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a collection or environment could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrEndpoint indicates a collection item could not be converted.
	ErrEndpoint = errors.New("endpoint error")

	// ErrCapture indicates a live response could not be captured.
	ErrCapture = errors.New("capture error")

	// ErrUnresolvedVariable indicates a {{name}} token had no value.
	ErrUnresolvedVariable = errors.New("unresolved variable")
)

// ParseError represents a failure to decode a Postman collection or environment.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// EndpointError represents a collection item that could not be converted
// into an endpoint. The item is dropped; the rest of the import continues.
type EndpointError struct {
	// Name is the collection item name
	Name string
	// Field is the part of the item that was rejected (e.g., "request.body")
	Field string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *EndpointError) Error() string {
	msg := "endpoint error"
	if e.Name != "" {
		msg += fmt.Sprintf(" in %q", e.Name)
	}
	if e.Field != "" {
		msg += " at " + e.Field
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *EndpointError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *EndpointError) Is(target error) bool {
	return target == ErrEndpoint
}

// CaptureError represents a failed live call made to capture a response example.
type CaptureError struct {
	// Method is the upper-case HTTP method
	Method string
	// URL is the concrete URL that was called
	URL string
	// StatusCode is the HTTP status received (0 if no response)
	StatusCode int
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *CaptureError) Error() string {
	msg := "capture error"
	if e.Method != "" || e.URL != "" {
		msg += fmt.Sprintf(" for %s %s", e.Method, e.URL)
	}
	if e.StatusCode > 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *CaptureError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *CaptureError) Is(target error) bool {
	return target == ErrCapture
}
