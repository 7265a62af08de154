package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/models"
)

var (
	// ErrMalformedDay is returned when a stored day does not hold exactly one slot per hour.
	ErrMalformedDay = errors.New("malformed day record")
	// ErrInvalidRange is returned for hour ranges outside 0-23 or with start after end.
	ErrInvalidRange = errors.New("invalid hour range")
)

// EmptyDay returns 24 unoccupied slots.
func EmptyDay() []models.Slot {
	slots := make([]models.Slot, constants.HoursPerDay)
	for h := range slots {
		slots[h] = emptySlot(h)
	}
	return slots
}

func emptySlot(hour int) models.Slot {
	return models.Slot{Hour: hour, Recurrence: models.RecurrenceNone}
}

// InitializeDay projects the rule set onto a fresh day. For each hour the
// first matching rule wins; unmatched hours are left empty.
func InitializeDay(rules []models.RecurringRule, date time.Time) []models.Slot {
	slots := EmptyDay()
	for h := range slots {
		for i := range rules {
			rule := &rules[i]
			if rule.Hour != h || !rule.Matches(date) {
				continue
			}
			slots[h] = models.Slot{
				Hour:       h,
				Task:       rule.Task,
				Notes:      rule.Notes,
				Recurrence: rule.Type,
			}
			break
		}
	}
	return slots
}

// NormalizeDay fills defaults left out by older records and checks that
// slots hold exactly one entry per hour in order.
func NormalizeDay(slots []models.Slot) ([]models.Slot, error) {
	if len(slots) != constants.HoursPerDay {
		return nil, fmt.Errorf("%w: expected %d slots, got %d", ErrMalformedDay, constants.HoursPerDay, len(slots))
	}

	out := make([]models.Slot, len(slots))
	for i, s := range slots {
		if s.Hour != i {
			return nil, fmt.Errorf("%w: slot %d has hour %d", ErrMalformedDay, i, s.Hour)
		}
		if s.Recurrence == "" {
			s.Recurrence = models.RecurrenceNone
		}
		if !s.Recurrence.Valid() {
			return nil, fmt.Errorf("%w: slot %d has recurrence %q", ErrMalformedDay, i, s.Recurrence)
		}
		out[i] = s
	}
	return out, nil
}

// ValidateRange checks 0 <= start <= end <= 23.
func ValidateRange(start, end int) error {
	if start < 0 || end > constants.LastHour || start > end {
		return fmt.Errorf("%w: %d-%d", ErrInvalidRange, start, end)
	}
	return nil
}
