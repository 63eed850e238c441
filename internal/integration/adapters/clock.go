package adapters

import (
	"time"

	"github.com/finanzas-personales/backend/internal/application/adapter"
)

// systemClock implements the adapter.Clock interface with the wall clock.
type systemClock struct{}

// NewSystemClock creates a new system clock instance.
func NewSystemClock() adapter.Clock {
	return &systemClock{}
}

// Now returns the current local time.
func (systemClock) Now() time.Time {
	return time.Now()
}
