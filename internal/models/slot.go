package models

import (
	"fmt"
	"strings"
)

type RecurrenceType string

const (
	RecurrenceNone    RecurrenceType = "none"
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
)

// Valid reports whether r is one of the known recurrence patterns, including none.
func (r RecurrenceType) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// ParseRecurrence parses a user-supplied recurrence name. An empty string means none.
func ParseRecurrence(s string) (RecurrenceType, error) {
	r := RecurrenceType(strings.ToLower(strings.TrimSpace(s)))
	if r == "" {
		return RecurrenceNone, nil
	}
	if !r.Valid() {
		return "", fmt.Errorf("invalid recurrence %q (expected none, daily, weekly or monthly)", s)
	}
	return r, nil
}

// Slot is one hour of a day's schedule.
type Slot struct {
	Hour       int            `json:"hour"`
	Task       string         `json:"task"`
	Completed  bool           `json:"completed"`
	Notes      string         `json:"notes"`
	Recurrence RecurrenceType `json:"recurrence"`
}

// Occupied returns true if the slot carries a task. A whitespace-only
// task counts as empty.
func (s Slot) Occupied() bool {
	return strings.TrimSpace(s.Task) != ""
}

// Done reports completion; an unoccupied slot is never done.
func (s Slot) Done() bool {
	return s.Occupied() && s.Completed
}

// MergedRange is a maximal run of consecutive identical occupied hours,
// or a single unoccupied hour. It is derived on read and never stored.
type MergedRange struct {
	StartHour  int            `json:"start_hour"`
	EndHour    int            `json:"end_hour"`
	Task       string         `json:"task"`
	Completed  bool           `json:"completed"`
	Notes      string         `json:"notes"`
	Recurrence RecurrenceType `json:"recurrence"`
}

// Occupied reports whether the range carries a task.
func (r MergedRange) Occupied() bool {
	return strings.TrimSpace(r.Task) != ""
}

// Hours returns the number of hours covered by the range.
func (r MergedRange) Hours() int {
	return r.EndHour - r.StartHour + 1
}

// Contains reports whether hour falls within the range.
func (r MergedRange) Contains(hour int) bool {
	return hour >= r.StartHour && hour <= r.EndHour
}

// Label renders the range as "HH:00 - HH:59".
func (r MergedRange) Label() string {
	return fmt.Sprintf("%02d:00 - %02d:59", r.StartHour, r.EndHour)
}

// DayPerformance summarises completion for a single date.
type DayPerformance struct {
	Date           string `json:"date"`
	Percentage     int    `json:"percentage"`
	TotalTasks     int    `json:"total_tasks"`
	CompletedTasks int    `json:"completed_tasks"`
}
