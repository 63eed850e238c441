// Package valueobject contains domain value objects and the monetary and
// calendar arithmetic shared by the engines.
package valueobject

import (
	"github.com/shopspring/decimal"
)

// SettlementEpsilon is the tolerance for monetary equality checks. A payment
// is settled when its remaining balance drops below this value.
const SettlementEpsilon = 0.001

// Round2 rounds a monetary amount to 2 decimal places. All amounts are
// rounded through here after arithmetic to avoid floating point drift.
func Round2(amount float64) float64 {
	v, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return v
}

// IsSettled reports whether paid covers total within the settlement epsilon.
func IsSettled(total, paid float64) bool {
	return total-paid < SettlementEpsilon
}

// ClampContribution adds a contribution to the current amount, capping the
// result at total. Overflow beyond total is discarded, not carried over.
func ClampContribution(total, current, contribution float64) float64 {
	next := Round2(current + contribution)
	if next > total {
		return total
	}
	return next
}
