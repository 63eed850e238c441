package valueobject

import (
	"testing"
	"time"

	"github.com/finanzas-personales/backend/internal/domain/entity"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name      string
		date      time.Time
		frequency entity.Frequency
		expected  time.Time
	}{
		{"weekly adds seven days", date(2024, time.March, 1), entity.FrequencyWeekly, date(2024, time.March, 8)},
		{"biweekly adds fourteen days", date(2024, time.March, 1), entity.FrequencyBiWeekly, date(2024, time.March, 15)},
		{"monthly advances one month", date(2024, time.March, 15), entity.FrequencyMonthly, date(2024, time.April, 15)},
		{"monthly clamps to leap February", date(2024, time.January, 31), entity.FrequencyMonthly, date(2024, time.February, 29)},
		{"monthly clamps to short February", date(2023, time.January, 31), entity.FrequencyMonthly, date(2023, time.February, 28)},
		{"monthly clamps thirty-one to thirty", date(2024, time.March, 31), entity.FrequencyMonthly, date(2024, time.April, 30)},
		{"bimonthly advances two months", date(2024, time.January, 31), entity.FrequencyBiMonthly, date(2024, time.March, 31)},
		{"annual advances one year", date(2024, time.June, 10), entity.FrequencyAnnual, date(2025, time.June, 10)},
		{"one-time never advances", date(2024, time.June, 10), entity.FrequencyOneTime, date(2024, time.June, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advance(tt.date, tt.frequency)
			if !got.Equal(tt.expected) {
				t.Errorf("Advance(%v, %s) = %v, want %v", tt.date, tt.frequency, got, tt.expected)
			}
		})
	}
}

func TestCycleToken(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{"january is month zero", date(2024, time.January, 15), "2024-0"},
		{"december is month eleven", date(2024, time.December, 1), "2024-11"},
		{"july", date(2025, time.July, 31), "2025-6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CycleToken(tt.date); got != tt.expected {
				t.Errorf("CycleToken(%v) = %q, want %q", tt.date, got, tt.expected)
			}
		})
	}
}

func TestStatementDueDate(t *testing.T) {
	tests := []struct {
		name              string
		cutOff            time.Time
		cutOffDay         int
		paymentDueDateDay int
		expected          time.Time
	}{
		{"due day after cut-off stays in month", date(2024, time.March, 10), 10, 28, date(2024, time.March, 28)},
		{"due day before cut-off rolls to next month", date(2024, time.March, 15), 15, 5, date(2024, time.April, 5)},
		{"due day equal to cut-off stays in month", date(2024, time.March, 15), 15, 15, date(2024, time.March, 15)},
		{"december cut-off rolls into january", date(2024, time.December, 20), 20, 5, date(2025, time.January, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StatementDueDate(tt.cutOff, tt.cutOffDay, tt.paymentDueDateDay)
			if !got.Equal(tt.expected) {
				t.Errorf("StatementDueDate(%v, %d, %d) = %v, want %v", tt.cutOff, tt.cutOffDay, tt.paymentDueDateDay, got, tt.expected)
			}
		})
	}
}

func TestNextCardDueDate(t *testing.T) {
	tests := []struct {
		name     string
		today    time.Time
		dueDay   int
		expected time.Time
	}{
		{"before due day stays in month", date(2024, time.March, 2), 5, date(2024, time.March, 5)},
		{"on due day stays in month", date(2024, time.March, 5), 5, date(2024, time.March, 5)},
		{"past due day rolls to next month", date(2024, time.March, 6), 5, date(2024, time.April, 5)},
		{"december rolls into january", date(2024, time.December, 20), 5, date(2025, time.January, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextCardDueDate(tt.today, tt.dueDay)
			if !got.Equal(tt.expected) {
				t.Errorf("NextCardDueDate(%v, %d) = %v, want %v", tt.today, tt.dueDay, got, tt.expected)
			}
		})
	}
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name     string
		today    time.Time
		date     time.Time
		expected int
	}{
		{"same day", date(2024, time.March, 5), date(2024, time.March, 5), 0},
		{"tomorrow", date(2024, time.March, 5), date(2024, time.March, 6), 1},
		{"past date is negative", date(2024, time.March, 5), date(2024, time.March, 1), -4},
		{"ignores time of day", time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC), time.Date(2024, time.March, 6, 0, 1, 0, 0, time.UTC), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntil(tt.today, tt.date); got != tt.expected {
				t.Errorf("DaysUntil(%v, %v) = %d, want %d", tt.today, tt.date, got, tt.expected)
			}
		})
	}
}
