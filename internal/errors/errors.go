// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInvalidQuantity indicates a quantity that is not a positive integer
	TypeInvalidQuantity Type = "INVALID_QUANTITY"

	// TypeUnknownItem indicates an item label with no catalog match
	TypeUnknownItem Type = "UNKNOWN_ITEM"

	// TypeInvalidDistance indicates a negative or non-numeric distance
	TypeInvalidDistance Type = "INVALID_DISTANCE"

	// TypeInvalidDate indicates an unparsable move date
	TypeInvalidDate Type = "INVALID_DATE"

	// TypeInput indicates a malformed request shape
	TypeInput Type = "INPUT_ERROR"

	// TypePricing indicates a pricing computation error
	TypePricing Type = "PRICING_ERROR"

	// TypeConfig indicates a malformed catalog or tariff at load time
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

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
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

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// IsClientError reports whether the error is correctable by the caller
func IsClientError(err error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	switch e.Type {
	case TypeInvalidQuantity, TypeUnknownItem, TypeInvalidDistance, TypeInvalidDate, TypeInput:
		return true
	}
	return false
}

// InvalidQuantity creates an invalid quantity error for an item label
func InvalidQuantity(label string, quantity int) *Error {
	return Newf(TypeInvalidQuantity, "quantity for %q must be a positive integer, got %d", label, quantity).
		WithContext("label", label)
}

// UnknownItem creates an unknown item error naming the offending label
func UnknownItem(label string) *Error {
	return Newf(TypeUnknownItem, "no catalog match for item %q", label).
		WithContext("label", label)
}

// InvalidDistance creates an invalid distance error
func InvalidDistance(miles float64) *Error {
	return Newf(TypeInvalidDistance, "distance must be non-negative, got %.2f", miles)
}

// InvalidDate creates an invalid date error
func InvalidDate(raw string, cause error) *Error {
	return Wrap(TypeInvalidDate, fmt.Sprintf("unparsable move date %q", raw), cause)
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Pricing creates a pricing error
func Pricing(message string, cause error) *Error {
	return Wrap(TypePricing, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
