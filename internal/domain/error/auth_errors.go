// Package error defines domain-specific errors for the finance tracker.
package error

import "errors"

// Auth domain errors.
var (
	// ErrPINNotSet is returned when unlocking before a PIN has been configured.
	ErrPINNotSet = errors.New("no PIN configured")

	// ErrPINAlreadySet is returned when setting up a PIN that already exists.
	ErrPINAlreadySet = errors.New("a PIN is already configured")

	// ErrInvalidPIN is returned when the provided PIN does not match.
	ErrInvalidPIN = errors.New("invalid PIN")

	// ErrWeakPIN is returned when the PIN does not meet minimum requirements.
	ErrWeakPIN = errors.New("PIN must be at least 4 digits")

	// ErrInvalidToken is returned when a session token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrMissingToken is returned when no session token is provided.
	ErrMissingToken = errors.New("missing session token")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodePINNotSet     AuthErrorCode = "AUT-010001"
	ErrCodePINAlreadySet AuthErrorCode = "AUT-010002"
	ErrCodeInvalidPIN    AuthErrorCode = "AUT-010003"
	ErrCodeWeakPIN       AuthErrorCode = "AUT-010004"
	ErrCodeInvalidToken  AuthErrorCode = "AUT-020001"
	ErrCodeMissingToken  AuthErrorCode = "AUT-020002"
	ErrCodeRateLimited   AuthErrorCode = "AUT-020003"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
