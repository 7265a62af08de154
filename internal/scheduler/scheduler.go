// Package scheduler places prioritized tasks into the free hours of a day.
package scheduler

import (
	"fmt"
	"sort"

	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/models"
)

// BreakTask is the filler placed between groups of tasks.
const BreakTask = "Break"

// Block is a run of free hours, start and end inclusive.
type Block struct {
	Start int
	End   int
}

func (b Block) Hours() int { return b.End - b.Start + 1 }

var rank = map[models.PriorityLevel]int{
	models.PriorityHigh:   0,
	models.PriorityMedium: 1,
	models.PriorityLow:    2,
}

// SortByPriority orders items High, Medium, Low, keeping input order within a level.
func SortByPriority(items []models.PriorityItem) []models.PriorityItem {
	out := append([]models.PriorityItem{}, items...)
	sort.SliceStable(out, func(i, j int) bool { return rank[out[i].Level] < rank[out[j].Level] })
	return out
}

// FixedHours collects the hours claimed by recurring rules, ascending and unique.
func FixedHours(rules []models.RecurringRule) []int {
	seen := make(map[int]bool, len(rules))
	var hours []int
	for _, r := range rules {
		if !seen[r.Hour] {
			seen[r.Hour] = true
			hours = append(hours, r.Hour)
		}
	}
	sort.Ints(hours)
	return hours
}

// FreeBlocks splits [dayStart, dayEnd] around the fixed hours.
func FreeBlocks(dayStart, dayEnd int, fixed []int) []Block {
	dayStart = max(dayStart, 0)
	dayEnd = min(dayEnd, constants.LastHour)

	var blocks []Block
	current := dayStart
	for _, h := range fixed {
		if h < current || h > dayEnd {
			continue
		}
		if current < h {
			blocks = append(blocks, Block{Start: current, End: h - 1})
		}
		current = h + 1
	}
	if current <= dayEnd {
		blocks = append(blocks, Block{Start: current, End: dayEnd})
	}
	return blocks
}

// Place gives each task, in order, the next free hour. With breakEvery > 0 a
// break follows every breakEvery tasks. Tasks that do not fit are dropped.
func Place(tasks []models.PriorityItem, blocks []Block, breakEvery int) []models.PlanItem {
	var hours []int
	for _, b := range blocks {
		for h := b.Start; h <= b.End; h++ {
			hours = append(hours, h)
		}
	}

	items := []models.PlanItem{}
	next := 0
	for i, task := range tasks {
		if next >= len(hours) {
			break
		}
		items = append(items, models.PlanItem{
			Hour:  hours[next],
			Task:  task.Text,
			Notes: fmt.Sprintf("%s priority", task.Level),
		})
		next++
		if breakEvery > 0 && (i+1)%breakEvery == 0 && next < len(hours) {
			items = append(items, models.PlanItem{Hour: hours[next], Task: BreakTask, Notes: "Step away from the screen"})
			next++
		}
	}
	return items
}
