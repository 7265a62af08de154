package schedule

import "github.com/rahulraj-lab/Focus-flow/internal/models"

// MergeSlots collapses a day's slots into ordered display ranges. An hour
// extends the open range only when it is occupied and matches the range's
// task, completion, notes and recurrence exactly. Unoccupied hours always
// form their own single-hour range.
func MergeSlots(slots []models.Slot) []models.MergedRange {
	if len(slots) == 0 {
		return nil
	}

	ranges := make([]models.MergedRange, 0, len(slots))
	current := rangeFrom(slots[0])

	for _, slot := range slots[1:] {
		if canExtend(current, slot) {
			current.EndHour = slot.Hour
			continue
		}
		ranges = append(ranges, current)
		current = rangeFrom(slot)
	}

	return append(ranges, current)
}

func rangeFrom(s models.Slot) models.MergedRange {
	return models.MergedRange{
		StartHour:  s.Hour,
		EndHour:    s.Hour,
		Task:       s.Task,
		Completed:  s.Completed,
		Notes:      s.Notes,
		Recurrence: s.Recurrence,
	}
}

func canExtend(r models.MergedRange, s models.Slot) bool {
	return s.Occupied() &&
		s.Task == r.Task &&
		s.Completed == r.Completed &&
		s.Notes == r.Notes &&
		s.Recurrence == r.Recurrence
}

// Expand turns merged ranges back into one slot per covered hour.
func Expand(ranges []models.MergedRange) []models.Slot {
	var slots []models.Slot
	for _, r := range ranges {
		for h := r.StartHour; h <= r.EndHour; h++ {
			slots = append(slots, models.Slot{
				Hour:       h,
				Task:       r.Task,
				Completed:  r.Completed,
				Notes:      r.Notes,
				Recurrence: r.Recurrence,
			})
		}
	}
	return slots
}

// Pending returns the occupied ranges that are not yet completed.
func Pending(ranges []models.MergedRange) []models.MergedRange {
	var out []models.MergedRange
	for _, r := range ranges {
		if r.Occupied() && !r.Completed {
			out = append(out, r)
		}
	}
	return out
}

// RangeAt returns the range covering hour, if any.
func RangeAt(ranges []models.MergedRange, hour int) (models.MergedRange, bool) {
	for _, r := range ranges {
		if r.Contains(hour) {
			return r, true
		}
	}
	return models.MergedRange{}, false
}
