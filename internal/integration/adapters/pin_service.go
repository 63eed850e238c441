// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/finanzas-personales/backend/internal/application/adapter"
)

const (
	// bcryptCost is the cost factor for bcrypt hashing.
	bcryptCost = 12
	// minPINLength is the minimum required PIN length.
	minPINLength = 4
)

// pinService implements the adapter.PINService interface.
type pinService struct{}

// NewPINService creates a new PIN service instance.
func NewPINService() adapter.PINService {
	return &pinService{}
}

// HashPIN hashes a plain text PIN using bcrypt with cost 12.
func (s *pinService) HashPIN(pin string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(pin), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPIN compares a plain text PIN with a hashed PIN.
func (s *pinService) VerifyPIN(hashedPIN, pin string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPIN), []byte(pin))
}

// ValidatePINStrength validates that a PIN is at least 4 digits.
func (s *pinService) ValidatePINStrength(pin string) error {
	if len(pin) < minPINLength {
		return errors.New("PIN must be at least 4 digits long")
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return errors.New("PIN must contain only digits")
		}
	}
	return nil
}
