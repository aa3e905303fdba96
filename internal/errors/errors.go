// Package errors provides error handling utilities.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeMalformedRecord indicates an input line without exactly three tokens
	TypeMalformedRecord Type = "MALFORMED_RECORD"

	// TypeUnparseableDate indicates a date token that is not YYYY-MM-DD
	TypeUnparseableDate Type = "UNPARSEABLE_DATE"

	// TypeNotPriceable indicates a size/provider pair missing from the price table
	TypeNotPriceable Type = "NOT_PRICEABLE"

	// TypeStreamUnavailable indicates the input source cannot be opened or read
	TypeStreamUnavailable Type = "STREAM_UNAVAILABLE"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error of the same type, so errors.Is works
// against the sentinel-like values returned by New.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error, or any error it wraps, is of a specific type
func IsType(err error, t Type) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// TypeOf returns the type of a domain error, or TypeInternal for foreign errors
func TypeOf(err error) Type {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type
	}
	return TypeInternal
}

// MalformedRecord creates a malformed record error
func MalformedRecord(line string, tokens int) *Error {
	return Newf(TypeMalformedRecord, "expected 3 tokens, got %d", tokens).
		WithContext("line", line)
}

// OversizedRecord creates a malformed record error for a line over limit bytes
func OversizedRecord(limit int) *Error {
	return Newf(TypeMalformedRecord, "line exceeds %d bytes", limit)
}

// UnparseableDate creates an unparseable date error
func UnparseableDate(token string, cause error) *Error {
	return Wrap(TypeUnparseableDate, fmt.Sprintf("invalid date %q", token), cause)
}

// NotPriceable creates a not priceable error
func NotPriceable(size, provider string) *Error {
	return Newf(TypeNotPriceable, "no price for size %q with provider %q", size, provider)
}

// StreamUnavailable creates a stream error
func StreamUnavailable(source string, cause error) *Error {
	return Wrap(TypeStreamUnavailable, fmt.Sprintf("input %q unavailable", source), cause)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
