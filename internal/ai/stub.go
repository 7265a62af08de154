package ai

import (
	"context"
	"fmt"

	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/models"
	"github.com/rahulraj-lab/Focus-flow/internal/scheduler"
)

// StubGenerator builds canned proposals from the request alone. It backs
// offline use and tests.
type StubGenerator struct{}

type variant struct {
	title, description string
	firstHour          int
	breakEvery         int
}

var variants = []variant{
	{"Productivity", "Front-loads the highest priorities into an early deep-work block.", 8, 0},
	{"Balanced", "Spreads priorities across the day with a recovery hour after every two blocks.", 9, 2},
	{"High-Performance", "Starts early and stacks every priority back to back.", 6, 0},
}

func (StubGenerator) Generate(_ context.Context, req Request) (Response, error) {
	tasks := orderedTasks(req)
	resp := Empty()

	// hours held by recurring rules are left alone
	fixed := scheduler.FixedHours(req.RecurringRules)
	for _, v := range variants {
		blocks := scheduler.FreeBlocks(v.firstHour, constants.LastHour, fixed)
		resp.Options = append(resp.Options, models.ScheduleOption{
			Title:       v.title,
			Description: v.description,
			Items:       scheduler.Place(tasks, blocks, v.breakEvery),
		})
	}

	resp.Insights = append(resp.Insights, historyInsight(req.History))
	return resp, nil
}

func orderedTasks(req Request) []models.PriorityItem {
	tasks := scheduler.SortByPriority(req.Priorities)
	if req.Prompt != "" {
		tasks = append(tasks, models.PriorityItem{Text: req.Prompt, Level: models.PriorityMedium})
	}
	return tasks
}

func historyInsight(hist map[string]models.DayPerformance) models.Insight {
	total, days := 0, 0
	for _, h := range hist {
		if h.TotalTasks == 0 {
			continue
		}
		total += h.Percentage
		days++
	}

	if days == 0 {
		return models.Insight{
			Title:       "Start tracking",
			Observation: "No completed days are on record yet.",
			Suggestion:  "Mark blocks done as you finish them so trends can be spotted.",
			Impact:      models.PriorityMedium,
			Type:        models.InsightPattern,
		}
	}

	avg := total / days
	if avg < 60 {
		return models.Insight{
			Title:       "Plans are running over",
			Observation: fmt.Sprintf("Average completion is %d%% across %d days.", avg, days),
			Suggestion:  "Schedule fewer blocks and leave an empty hour after lunch.",
			Impact:      models.PriorityHigh,
			Type:        models.InsightEfficiency,
		}
	}
	return models.Insight{
		Title:       "Steady routine",
		Observation: fmt.Sprintf("Average completion is %d%% across %d days.", avg, days),
		Suggestion:  "Protect the current recurring blocks and add one recovery slot.",
		Impact:      models.PriorityLow,
		Type:        models.InsightWellbeing,
	}
}
