package models

import (
	"testing"
	"time"
)

func intPtr(i int) *int { return &i }

func TestParseRecurrence(t *testing.T) {
	tests := []struct {
		in      string
		want    RecurrenceType
		wantErr bool
	}{
		{"", RecurrenceNone, false},
		{"none", RecurrenceNone, false},
		{"Daily", RecurrenceDaily, false},
		{" weekly ", RecurrenceWeekly, false},
		{"monthly", RecurrenceMonthly, false},
		{"yearly", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRecurrence(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRecurrence(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseRecurrence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSlot_Done(t *testing.T) {
	if (Slot{Task: "", Completed: true}).Done() {
		t.Error("Done() = true for an empty slot, want false")
	}
	if !(Slot{Task: "Read", Completed: true}).Done() {
		t.Error("Done() = false for a completed task, want true")
	}
}

func TestSlot_OccupiedIgnoresWhitespace(t *testing.T) {
	tests := []struct {
		task string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"\t\n", false},
		{" Read ", true},
	}
	for _, tt := range tests {
		if got := (Slot{Task: tt.task, Completed: true}).Occupied(); got != tt.want {
			t.Errorf("Slot{Task: %q}.Occupied() = %v, want %v", tt.task, got, tt.want)
		}
		if got := (MergedRange{Task: tt.task}).Occupied(); got != tt.want {
			t.Errorf("MergedRange{Task: %q}.Occupied() = %v, want %v", tt.task, got, tt.want)
		}
	}
	if (Slot{Task: "  ", Completed: true}).Done() {
		t.Error("Done() = true for a whitespace task, want false")
	}
}

func TestRecurringRule_Validate(t *testing.T) {
	tests := []struct {
		name    string
		rule    RecurringRule
		wantErr bool
	}{
		{
			name:    "valid daily",
			rule:    RecurringRule{ID: "r1", Hour: 6, Task: "Gym", Type: RecurrenceDaily},
			wantErr: false,
		},
		{
			name:    "daily with day value",
			rule:    RecurringRule{ID: "r1", Hour: 6, Task: "Gym", Type: RecurrenceDaily, DayValue: intPtr(2)},
			wantErr: true,
		},
		{
			name:    "valid weekly",
			rule:    RecurringRule{ID: "r1", Hour: 9, Task: "Standup", Type: RecurrenceWeekly, DayValue: intPtr(3)},
			wantErr: false,
		},
		{
			name:    "weekly without day",
			rule:    RecurringRule{ID: "r1", Hour: 9, Task: "Standup", Type: RecurrenceWeekly},
			wantErr: true,
		},
		{
			name:    "monthly day zero",
			rule:    RecurringRule{ID: "r1", Hour: 9, Task: "Rent", Type: RecurrenceMonthly, DayValue: intPtr(0)},
			wantErr: true,
		},
		{
			name:    "none type",
			rule:    RecurringRule{ID: "r1", Hour: 9, Task: "Rent", Type: RecurrenceNone},
			wantErr: true,
		},
		{
			name:    "hour out of range",
			rule:    RecurringRule{ID: "r1", Hour: 24, Task: "Late", Type: RecurrenceDaily},
			wantErr: true,
		},
		{
			name:    "empty task",
			rule:    RecurringRule{ID: "r1", Hour: 3, Type: RecurrenceDaily},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecurringRule_Matches(t *testing.T) {
	wednesday := time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)
	thursday := wednesday.AddDate(0, 0, 1)

	weekly := RecurringRule{ID: "w", Hour: 9, Task: "Review", Type: RecurrenceWeekly, DayValue: intPtr(3)}
	if !weekly.Matches(wednesday) {
		t.Error("weekly rule for Wednesday should match a Wednesday")
	}
	if weekly.Matches(thursday) {
		t.Error("weekly rule for Wednesday should not match a Thursday")
	}

	monthly := RecurringRule{ID: "m", Hour: 9, Task: "Invoice", Type: RecurrenceMonthly, DayValue: intPtr(14)}
	if !monthly.Matches(wednesday) {
		t.Error("monthly rule for day 14 should match the 14th")
	}
	if monthly.Matches(thursday) {
		t.Error("monthly rule for day 14 should not match the 15th")
	}

	daily := RecurringRule{ID: "d", Hour: 9, Task: "Walk", Type: RecurrenceDaily}
	if !daily.Matches(thursday) {
		t.Error("daily rule should match any date")
	}
}

func TestParsePriorityLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    PriorityLevel
		wantErr bool
	}{
		{"high", PriorityHigh, false},
		{"MEDIUM", PriorityMedium, false},
		{"", PriorityMedium, false},
		{"Low", PriorityLow, false},
		{"urgent", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePriorityLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePriorityLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePriorityLevel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNotification_Validate(t *testing.T) {
	n := Notification{ID: "n1", Title: "Task Done", Type: NotificationSuccess, Timestamp: time.Now()}
	if err := n.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
	n.Type = "error"
	if err := n.Validate(); err == nil {
		t.Error("Validate() expected error for unknown type")
	}
}
