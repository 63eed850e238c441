package valueobject

import (
	"fmt"
	"time"

	"github.com/finanzas-personales/backend/internal/domain/entity"
)

// Advance returns the next occurrence of date for the given frequency.
// Month-based frequencies clamp to the last day of the intended month when
// the anchor day does not exist there (Jan 31 + 1 month = Feb 29 in 2024,
// not Mar 3). OneTime dates are never advanced.
func Advance(date time.Time, frequency entity.Frequency) time.Time {
	switch frequency {
	case entity.FrequencyWeekly:
		return date.AddDate(0, 0, 7)
	case entity.FrequencyBiWeekly:
		return date.AddDate(0, 0, 14)
	case entity.FrequencyMonthly:
		return addMonthsClamped(date, 1)
	case entity.FrequencyBiMonthly:
		return addMonthsClamped(date, 2)
	case entity.FrequencyAnnual:
		return date.AddDate(1, 0, 0)
	default:
		return date
	}
}

// addMonthsClamped adds months to date, snapping back to the last day of the
// intended month when naive addition overflows into the following one.
func addMonthsClamped(date time.Time, months int) time.Time {
	next := date.AddDate(0, months, 0)
	if next.Day() < date.Day() {
		next = next.AddDate(0, 0, -next.Day())
	}
	return next
}

// CycleToken returns the monthly cycle token for a date, e.g. "2024-6" for
// July 2024. The month index is zero-based to stay compatible with tokens
// persisted by existing snapshots.
func CycleToken(date time.Time) string {
	return fmt.Sprintf("%d-%d", date.Year(), int(date.Month())-1)
}

// StatementDueDate computes the due date for a statement generated at the
// given cut-off date. When the due day falls on or after the cut-off day the
// statement is due within the same month, otherwise the cycle spans a month
// boundary and the due day lands in the following month.
func StatementDueDate(cutOff time.Time, cutOffDay, paymentDueDateDay int) time.Time {
	year, month := cutOff.Year(), cutOff.Month()
	if paymentDueDateDay >= cutOffDay {
		return time.Date(year, month, paymentDueDateDay, 0, 0, 0, 0, cutOff.Location())
	}
	return time.Date(year, month+1, paymentDueDateDay, 0, 0, 0, 0, cutOff.Location())
}

// NextCardDueDate returns the next calendar date a card's payment comes due:
// this month's due day, rolled to next month once today is already past it.
func NextCardDueDate(today time.Time, paymentDueDateDay int) time.Time {
	month := today.Month()
	if today.Day() > paymentDueDateDay {
		month++
	}
	return time.Date(today.Year(), month, paymentDueDateDay, 0, 0, 0, 0, today.Location())
}

// DaysUntil returns the number of whole days from today until date, negative
// when the date is in the past. Both arguments are truncated to midnight.
func DaysUntil(today, date time.Time) int {
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(t).Hours() / 24)
}
