package dto

// SetupPINRequest represents the request body for initial PIN setup.
type SetupPINRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// UnlockRequest represents the request body for an unlock attempt.
type UnlockRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// UnlockResponse represents a successful unlock.
type UnlockResponse struct {
	Token string `json:"token"`
}

// ChangePINRequest represents the request body for a PIN change.
type ChangePINRequest struct {
	CurrentPIN string `json:"current_pin" binding:"required"`
	NewPIN     string `json:"new_pin" binding:"required"`
}

// AuthStatusResponse reports whether a PIN is configured.
type AuthStatusResponse struct {
	PINConfigured bool `json:"pin_configured"`
}
