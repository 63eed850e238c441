// Package entity defines the core business entities for the domain layer.
package entity

// Frequency represents how often a payment or goal projection recurs.
// The string values match the persisted snapshot format of the original app.
type Frequency string

const (
	FrequencyOneTime   Frequency = "Una vez"
	FrequencyWeekly    Frequency = "Semanal"
	FrequencyBiWeekly  Frequency = "Quincenal"
	FrequencyMonthly   Frequency = "Mensual"
	FrequencyBiMonthly Frequency = "Bimestral"
	FrequencyAnnual    Frequency = "Anual"
)

// IsValid reports whether the frequency is one of the known values.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyOneTime, FrequencyWeekly, FrequencyBiWeekly,
		FrequencyMonthly, FrequencyBiMonthly, FrequencyAnnual:
		return true
	}
	return false
}

// IsRecurring reports whether the frequency triggers recurrence spawning.
func (f Frequency) IsRecurring() bool {
	return f.IsValid() && f != FrequencyOneTime
}

// Priority represents the priority of a goal or wishlist item.
type Priority string

const (
	PriorityHigh   Priority = "Alta"
	PriorityMedium Priority = "Media"
	PriorityLow    Priority = "Baja"
)

// IsValid reports whether the priority is one of the known values.
func (p Priority) IsValid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Rank returns the sort rank of a priority (high first).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}
