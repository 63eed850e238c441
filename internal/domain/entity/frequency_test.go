package entity

import "testing"

func TestFrequencyIsValid(t *testing.T) {
	valid := []Frequency{FrequencyOneTime, FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly, FrequencyBiMonthly, FrequencyAnnual}
	for _, f := range valid {
		if !f.IsValid() {
			t.Errorf("expected %q to be valid", f)
		}
	}

	invalid := []Frequency{"", "Diario", "monthly", "Mensual "}
	for _, f := range invalid {
		if f.IsValid() {
			t.Errorf("expected %q to be invalid", f)
		}
	}
}

func TestFrequencyIsRecurring(t *testing.T) {
	if FrequencyOneTime.IsRecurring() {
		t.Error("one-time frequency must not recur")
	}
	if Frequency("Diario").IsRecurring() {
		t.Error("unknown frequency must not recur")
	}
	for _, f := range []Frequency{FrequencyWeekly, FrequencyBiWeekly, FrequencyMonthly, FrequencyBiMonthly, FrequencyAnnual} {
		if !f.IsRecurring() {
			t.Errorf("expected %q to recur", f)
		}
	}
}

func TestPriorityRank(t *testing.T) {
	if PriorityHigh.Rank() >= PriorityMedium.Rank() {
		t.Error("high priority must rank before medium")
	}
	if PriorityMedium.Rank() >= PriorityLow.Rank() {
		t.Error("medium priority must rank before low")
	}
	if Priority("Urgente").Rank() <= PriorityLow.Rank() {
		t.Error("unknown priority must rank last")
	}
}

func TestPickColor(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected string
	}{
		{"first item", 0, "rose"},
		{"second item", 1, "sky"},
		{"wraps around", 6, "rose"},
		{"negative index is defensive", -1, "sky"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PickColor(GoalColors, tt.n); got != tt.expected {
				t.Errorf("PickColor(GoalColors, %d) = %q, want %q", tt.n, got, tt.expected)
			}
		})
	}

	if got := PickColor(nil, 3); got != "" {
		t.Errorf("PickColor(nil, 3) = %q, want empty", got)
	}
}
