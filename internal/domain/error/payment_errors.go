// Package error defines domain-specific errors for the finance tracker.
package error

import "errors"

// Payment domain errors.
var (
	// ErrPaymentNotFound is returned when a payment is not found.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrInvalidPaymentAmount is returned when a payment amount is zero or negative.
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")

	// ErrInvalidFrequency is returned when the frequency is not a known value.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrInvalidDueDate is returned when the due date cannot be parsed.
	ErrInvalidDueDate = errors.New("invalid due date")

	// ErrInvalidPaymentFilter is returned when a list filter is not recognized.
	ErrInvalidPaymentFilter = errors.New("invalid payment filter")
)

// PaymentErrorCode defines error codes for payment errors.
// Format: PAY-XXYYYY where XX is category and YYYY is specific error.
type PaymentErrorCode string

const (
	ErrCodePaymentNotFound      PaymentErrorCode = "PAY-010001"
	ErrCodeInvalidPaymentAmount PaymentErrorCode = "PAY-010002"
	ErrCodeInvalidFrequency     PaymentErrorCode = "PAY-010003"
	ErrCodeInvalidDueDate       PaymentErrorCode = "PAY-010004"
	ErrCodeInvalidPaymentFilter PaymentErrorCode = "PAY-010005"
	ErrCodeMissingPaymentFields PaymentErrorCode = "PAY-010006"
)

// PaymentError represents a payment error with code and message.
type PaymentError struct {
	Code    PaymentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PaymentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// NewPaymentError creates a new PaymentError with the given code and message.
func NewPaymentError(code PaymentErrorCode, message string, err error) *PaymentError {
	return &PaymentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
