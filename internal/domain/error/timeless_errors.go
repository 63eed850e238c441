// Package error defines domain-specific errors for the finance tracker.
package error

import "errors"

// Timeless payment domain errors.
var (
	// ErrTimelessNotFound is returned when a timeless payment is not found.
	ErrTimelessNotFound = errors.New("timeless payment not found")

	// ErrInvalidTotalAmount is returned when the total amount is zero or negative.
	ErrInvalidTotalAmount = errors.New("invalid total amount")
)

// TimelessErrorCode defines error codes for timeless payment errors.
// Format: TLP-XXYYYY where XX is category and YYYY is specific error.
type TimelessErrorCode string

const (
	ErrCodeTimelessNotFound      TimelessErrorCode = "TLP-010001"
	ErrCodeInvalidTotalAmount    TimelessErrorCode = "TLP-010002"
	ErrCodeMissingTimelessFields TimelessErrorCode = "TLP-010003"
)

// TimelessError represents a timeless payment error with code and message.
type TimelessError struct {
	Code    TimelessErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TimelessError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TimelessError) Unwrap() error {
	return e.Err
}

// NewTimelessError creates a new TimelessError with the given code and message.
func NewTimelessError(code TimelessErrorCode, message string, err error) *TimelessError {
	return &TimelessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
