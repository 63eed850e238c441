// Package error defines domain-specific errors for the finance tracker.
package error

import "errors"

// Credit card domain errors.
var (
	// ErrCardNotFound is returned when a credit card is not found.
	ErrCardNotFound = errors.New("credit card not found")

	// ErrInvalidCutOffDay is returned when the cut-off day is outside 1-31.
	ErrInvalidCutOffDay = errors.New("cut-off day must be between 1 and 31")

	// ErrInvalidDueDateDay is returned when the payment due day is outside 1-31.
	ErrInvalidDueDateDay = errors.New("payment due day must be between 1 and 31")

	// ErrInvalidCreditLimit is returned when the credit limit is negative.
	ErrInvalidCreditLimit = errors.New("invalid credit limit")

	// ErrInvalidBalance is returned when a balance update is negative.
	ErrInvalidBalance = errors.New("invalid balance")
)

// CardErrorCode defines error codes for credit card errors.
// Format: CRD-XXYYYY where XX is category and YYYY is specific error.
type CardErrorCode string

const (
	ErrCodeCardNotFound       CardErrorCode = "CRD-010001"
	ErrCodeInvalidCutOffDay   CardErrorCode = "CRD-010002"
	ErrCodeInvalidDueDateDay  CardErrorCode = "CRD-010003"
	ErrCodeInvalidCreditLimit CardErrorCode = "CRD-010004"
	ErrCodeInvalidBalance     CardErrorCode = "CRD-010005"
	ErrCodeMissingCardFields  CardErrorCode = "CRD-010006"
)

// CardError represents a credit card error with code and message.
type CardError struct {
	Code    CardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CardError) Unwrap() error {
	return e.Err
}

// NewCardError creates a new CardError with the given code and message.
func NewCardError(code CardErrorCode, message string, err error) *CardError {
	return &CardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
