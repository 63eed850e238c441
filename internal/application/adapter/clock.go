package adapter

import "time"

// Clock abstracts the current time so the cycle and aggregation engines can
// be evaluated against a fixed date in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}
