package adapter

// PINService defines hashing and verification for the app PIN.
type PINService interface {
	// HashPIN hashes a plain text PIN.
	HashPIN(pin string) (string, error)

	// VerifyPIN compares a plain text PIN with a stored hash. Returns an
	// error when they do not match.
	VerifyPIN(hashedPIN, pin string) error

	// ValidatePINStrength validates that a PIN meets minimum requirements.
	ValidatePINStrength(pin string) error
}
