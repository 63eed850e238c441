package adapter

import "context"

// TokenService issues and validates session tokens handed out after a
// successful PIN unlock.
type TokenService interface {
	// GenerateSessionToken issues a new signed session token.
	GenerateSessionToken(ctx context.Context) (string, error)

	// ValidateSessionToken verifies a session token's signature and expiry.
	ValidateSessionToken(ctx context.Context, token string) error
}
