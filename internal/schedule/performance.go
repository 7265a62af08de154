package schedule

import (
	"math"

	"github.com/rahulraj-lab/Focus-flow/internal/models"
)

// ComputeDayPerformance counts occupied slots and how many are completed.
// The completed flag on an empty slot is ignored.
func ComputeDayPerformance(date string, slots []models.Slot) models.DayPerformance {
	perf := models.DayPerformance{Date: date}
	for _, s := range slots {
		if !s.Occupied() {
			continue
		}
		perf.TotalTasks++
		if s.Completed {
			perf.CompletedTasks++
		}
	}
	if perf.TotalTasks > 0 {
		perf.Percentage = int(math.Round(100 * float64(perf.CompletedTasks) / float64(perf.TotalTasks)))
	}
	return perf
}
