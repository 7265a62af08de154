package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/models"
)

// IDFunc produces identifiers for newly created rules.
type IDFunc func() string

// NewID is the default IDFunc.
func NewID() string {
	return uuid.New().String()
}

// Patch is a partial slot update. Nil fields are left unchanged.
type Patch struct {
	Task       *string
	Completed  *bool
	Notes      *string
	Recurrence *models.RecurrenceType
}

func (p Patch) apply(s models.Slot) models.Slot {
	if p.Task != nil {
		s.Task = strings.TrimSpace(*p.Task)
	}
	if p.Completed != nil {
		s.Completed = *p.Completed
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
	if p.Recurrence != nil {
		s.Recurrence = *p.Recurrence
	}
	return s
}

// ClearsTask reports whether the patch empties the task.
func (p Patch) ClearsTask() bool {
	return p.Task != nil && strings.TrimSpace(*p.Task) == ""
}

// MarksDone reports whether the patch sets completed to true.
func (p Patch) MarksDone() bool {
	return p.Completed != nil && *p.Completed
}

// ClearPatch resets a slot to unoccupied.
func ClearPatch() Patch {
	empty := ""
	done := false
	none := models.RecurrenceNone
	return Patch{Task: &empty, Notes: &empty, Completed: &done, Recurrence: &none}
}

// State is the slice of application state the schedule operations work on:
// the viewed date, its slots and the global rule set.
type State struct {
	Date  time.Time
	Slots []models.Slot
	Rules []models.RecurringRule
}

// UpdateRange applies patch to every hour in [start, end] and rebuilds the
// rules for those hours from the resulting slots. The input state is not
// modified; on error it is returned unchanged.
func UpdateRange(st State, patch Patch, start, end int, newID IDFunc) (State, error) {
	if err := ValidateRange(start, end); err != nil {
		return st, err
	}
	if len(st.Slots) != constants.HoursPerDay {
		return st, fmt.Errorf("%w: expected %d slots, got %d", ErrMalformedDay, constants.HoursPerDay, len(st.Slots))
	}
	if newID == nil {
		newID = NewID
	}

	slots := make([]models.Slot, len(st.Slots))
	copy(slots, st.Slots)
	for h := start; h <= end; h++ {
		slots[h] = patch.apply(slots[h])
	}

	return State{
		Date:  st.Date,
		Slots: slots,
		Rules: reconcileRules(st.Rules, slots, start, end, st.Date, newID),
	}, nil
}

// reconcileRules drops every rule inside [start, end] and re-derives one
// rule per hour whose slot is occupied with a recurrence other than none.
func reconcileRules(rules []models.RecurringRule, slots []models.Slot, start, end int, date time.Time, newID IDFunc) []models.RecurringRule {
	out := make([]models.RecurringRule, 0, len(rules)+end-start+1)
	for _, r := range rules {
		if r.Hour < start || r.Hour > end {
			out = append(out, r)
		}
	}

	for h := start; h <= end; h++ {
		s := slots[h]
		if !s.Occupied() || s.Recurrence == models.RecurrenceNone {
			continue
		}
		out = append(out, models.RecurringRule{
			ID:       newID(),
			Hour:     h,
			Task:     s.Task,
			Notes:    s.Notes,
			Type:     s.Recurrence,
			DayValue: dayValueFor(s.Recurrence, date),
		})
	}
	return out
}

func dayValueFor(r models.RecurrenceType, date time.Time) *int {
	var v int
	switch r {
	case models.RecurrenceWeekly:
		v = int(date.Weekday())
	case models.RecurrenceMonthly:
		v = date.Day()
	default:
		return nil
	}
	return &v
}

// ClearRange empties every hour in [start, end] and withdraws their rules.
func ClearRange(st State, start, end int, newID IDFunc) (State, error) {
	return UpdateRange(st, ClearPatch(), start, end, newID)
}

// ToggleComplete flips completion for the block starting at start,
// using the first hour's value as the current state.
func ToggleComplete(st State, start, end int, newID IDFunc) (State, error) {
	if err := ValidateRange(start, end); err != nil {
		return st, err
	}
	if len(st.Slots) != constants.HoursPerDay {
		return st, fmt.Errorf("%w: expected %d slots, got %d", ErrMalformedDay, constants.HoursPerDay, len(st.Slots))
	}
	done := !st.Slots[start].Completed
	return UpdateRange(st, Patch{Completed: &done}, start, end, newID)
}

// ResizeRange changes the duration of the block [start, end] to hours,
// clamped at the end of the day. Hours dropped from the tail are cleared.
func ResizeRange(st State, start, end, hours int, newID IDFunc) (State, error) {
	if err := ValidateRange(start, end); err != nil {
		return st, err
	}
	if hours < 1 {
		return st, fmt.Errorf("%w: duration must be at least one hour", ErrInvalidRange)
	}
	if len(st.Slots) != constants.HoursPerDay {
		return st, fmt.Errorf("%w: expected %d slots, got %d", ErrMalformedDay, constants.HoursPerDay, len(st.Slots))
	}

	newEnd := min(constants.LastHour, start+hours-1)
	block := st.Slots[start]
	patch := Patch{
		Task:       &block.Task,
		Completed:  &block.Completed,
		Notes:      &block.Notes,
		Recurrence: &block.Recurrence,
	}

	next, err := UpdateRange(st, patch, start, newEnd, newID)
	if err != nil {
		return st, err
	}
	if newEnd < end {
		return ClearRange(next, newEnd+1, end, newID)
	}
	return next, nil
}

// DeleteRule removes the rule with the given id. It reports whether a rule was removed.
func DeleteRule(rules []models.RecurringRule, id string) ([]models.RecurringRule, bool) {
	out := make([]models.RecurringRule, 0, len(rules))
	found := false
	for _, r := range rules {
		if r.ID == id {
			found = true
			continue
		}
		out = append(out, r)
	}
	return out, found
}
