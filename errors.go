package overlay

import (
	"fmt"
)

// ErrorType represents different types of overlay errors.
type ErrorType int

const (
	// ErrGeneric is a generic error.
	ErrGeneric ErrorType = iota
	// ErrArgument is an argument count or shape error.
	ErrArgument
	// ErrType is an argument kind mismatch error.
	ErrType
	// ErrRegistry is a function registration or lookup error.
	ErrRegistry
	// ErrExec is a batch execution error.
	ErrExec
)

// Error is an overlay-specific error type.
type Error struct {
	Type    ErrorType
	Message string
}

// Error returns the error message.
func (e *Error) Error() string {
	return fmt.Sprintf("overlay: %s", e.Message)
}

// NewError creates a new Error.
func NewError(typ ErrorType, message string) *Error {
	return &Error{
		Type:    typ,
		Message: message,
	}
}

// Errorf creates a new Error with a formatted message.
func Errorf(typ ErrorType, format string, args ...interface{}) *Error {
	return &Error{
		Type:    typ,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsError checks if an error is of a specific type.
func IsError(err error, typ ErrorType) bool {
	overlayErr, ok := err.(*Error)
	if !ok {
		return false
	}
	return overlayErr.Type == typ
}
