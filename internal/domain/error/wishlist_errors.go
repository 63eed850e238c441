// Package error defines domain-specific errors for the finance tracker.
package error

import "errors"

// Wishlist domain errors.
var (
	// ErrWishlistItemNotFound is returned when a wishlist item is not found.
	ErrWishlistItemNotFound = errors.New("wishlist item not found")

	// ErrInvalidWishlistPriority is returned when the priority is not a known value.
	ErrInvalidWishlistPriority = errors.New("invalid wishlist priority")
)

// WishlistErrorCode defines error codes for wishlist errors.
// Format: WSH-XXYYYY where XX is category and YYYY is specific error.
type WishlistErrorCode string

const (
	ErrCodeWishlistItemNotFound    WishlistErrorCode = "WSH-010001"
	ErrCodeInvalidWishlistPriority WishlistErrorCode = "WSH-010002"
	ErrCodeMissingWishlistFields   WishlistErrorCode = "WSH-010003"
)

// WishlistError represents a wishlist error with code and message.
type WishlistError struct {
	Code    WishlistErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WishlistError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WishlistError) Unwrap() error {
	return e.Err
}

// NewWishlistError creates a new WishlistError with the given code and message.
func NewWishlistError(code WishlistErrorCode, message string, err error) *WishlistError {
	return &WishlistError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
