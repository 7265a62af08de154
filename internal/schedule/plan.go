package schedule

import (
	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/models"
)

// ApplyPlanItems overlays generated proposals onto a day. The first item
// for an hour wins; items outside 0-23 are ignored. Replaced hours are
// reset to not completed but keep their recurrence, and the rule set is
// left alone: rules only seed days, so the applied day diverges from them
// until that range is next edited.
func ApplyPlanItems(slots []models.Slot, items []models.PlanItem) []models.Slot {
	byHour := make(map[int]models.PlanItem, len(items))
	for _, item := range items {
		if item.Hour < 0 || item.Hour > constants.LastHour {
			continue
		}
		if _, seen := byHour[item.Hour]; seen {
			continue
		}
		byHour[item.Hour] = item
	}

	out := make([]models.Slot, len(slots))
	copy(out, slots)
	for i, s := range out {
		item, ok := byHour[s.Hour]
		if !ok {
			continue
		}
		s.Task = item.Task
		s.Notes = item.Notes
		s.Completed = false
		out[i] = s
	}
	return out
}
