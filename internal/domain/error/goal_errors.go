// Package error defines domain-specific errors for the finance tracker.
package error

import "errors"

// Savings goal domain errors.
var (
	// ErrGoalNotFound is returned when a savings goal is not found.
	ErrGoalNotFound = errors.New("savings goal not found")

	// ErrInvalidTargetAmount is returned when the target amount is negative.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidContribution is returned when a contribution amount is zero or negative.
	ErrInvalidContribution = errors.New("contribution amount must be greater than zero")

	// ErrInvalidGoalPriority is returned when the priority is not a known value.
	ErrInvalidGoalPriority = errors.New("invalid goal priority")

	// ErrInvalidProjection is returned when a projection has an unknown frequency.
	ErrInvalidProjection = errors.New("invalid projection")
)

// GoalErrorCode defines error codes for savings goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	ErrCodeGoalNotFound        GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetAmount GoalErrorCode = "GOL-010002"
	ErrCodeInvalidContribution GoalErrorCode = "GOL-010003"
	ErrCodeInvalidGoalPriority GoalErrorCode = "GOL-010004"
	ErrCodeInvalidProjection   GoalErrorCode = "GOL-010005"
	ErrCodeMissingGoalFields   GoalErrorCode = "GOL-010006"
)

// GoalError represents a savings goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
