package models

import (
	"fmt"
	"strings"
	"time"
)

// RecurringRule is a template that seeds a slot when a day is initialized.
type RecurringRule struct {
	ID       string         `json:"id" yaml:"id"`
	Hour     int            `json:"hour" yaml:"hour"`
	Task     string         `json:"task" yaml:"task"`
	Notes    string         `json:"notes" yaml:"notes,omitempty"`
	Type     RecurrenceType `json:"type" yaml:"type"`
	DayValue *int           `json:"day_value,omitempty" yaml:"day_value,omitempty"`
}

func (r *RecurringRule) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("rule id cannot be empty")
	}
	if r.Hour < 0 || r.Hour > 23 {
		return fmt.Errorf("rule hour %d out of range (0-23)", r.Hour)
	}
	if strings.TrimSpace(r.Task) == "" {
		return fmt.Errorf("rule task cannot be empty")
	}

	switch r.Type {
	case RecurrenceDaily:
		if r.DayValue != nil {
			return fmt.Errorf("daily rule must not carry a day value")
		}
	case RecurrenceWeekly:
		if r.DayValue == nil || *r.DayValue < 0 || *r.DayValue > 6 {
			return fmt.Errorf("weekly rule requires a day value between 0 and 6")
		}
	case RecurrenceMonthly:
		if r.DayValue == nil || *r.DayValue < 1 || *r.DayValue > 31 {
			return fmt.Errorf("monthly rule requires a day value between 1 and 31")
		}
	default:
		return fmt.Errorf("invalid rule type %q", r.Type)
	}

	return nil
}

// Matches reports whether the rule applies to the given date.
func (r *RecurringRule) Matches(date time.Time) bool {
	switch r.Type {
	case RecurrenceDaily:
		return true
	case RecurrenceWeekly:
		return r.DayValue != nil && *r.DayValue == int(date.Weekday())
	case RecurrenceMonthly:
		return r.DayValue != nil && *r.DayValue == date.Day()
	default:
		return false
	}
}

// Describe renders the recurrence pattern for display.
func (r *RecurringRule) Describe() string {
	switch r.Type {
	case RecurrenceDaily:
		return "daily"
	case RecurrenceWeekly:
		if r.DayValue != nil && *r.DayValue >= 0 && *r.DayValue <= 6 {
			return fmt.Sprintf("weekly on %s", time.Weekday(*r.DayValue).String()[:3])
		}
		return "weekly"
	case RecurrenceMonthly:
		if r.DayValue != nil {
			return fmt.Sprintf("monthly on day %d", *r.DayValue)
		}
		return "monthly"
	default:
		return "unknown"
	}
}
