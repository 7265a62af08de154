package ai

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/models"
)

// wire mirrors the response schema with pointer fields so a missing key can
// be told apart from a zero value.
type wireResponse struct {
	Options  *[]wireOption  `json:"options"`
	Insights *[]wireInsight `json:"insights"`
}

type wireOption struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Items       *[]wireItem `json:"items"`
}

type wireItem struct {
	Hour  *int    `json:"hour"`
	Task  *string `json:"task"`
	Notes *string `json:"notes"`
}

type wireInsight struct {
	Title       *string `json:"title"`
	Observation *string `json:"observation"`
	Suggestion  *string `json:"suggestion"`
	Impact      *string `json:"impact"`
	Type        *string `json:"type"`
}

// DecodeResponse parses model output. Any shape deviation (missing or
// unknown key, wrong JSON type, unknown enum value, hour off the grid)
// rejects the whole reply.
func DecodeResponse(text string) (Response, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Empty(), fmt.Errorf("ai: empty response")
	}

	var w wireResponse
	dec := json.NewDecoder(strings.NewReader(text))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&w); err != nil {
		return Empty(), fmt.Errorf("ai: parse response: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Empty(), fmt.Errorf("ai: trailing data after response")
	}
	if w.Options == nil || w.Insights == nil {
		return Empty(), fmt.Errorf("ai: response missing options or insights")
	}

	resp := Empty()
	for i, o := range *w.Options {
		if o.Title == nil || o.Description == nil || o.Items == nil {
			return Empty(), fmt.Errorf("ai: option %d is incomplete", i)
		}
		opt := models.ScheduleOption{Title: *o.Title, Description: *o.Description, Items: []models.PlanItem{}}
		for j, it := range *o.Items {
			if it.Hour == nil || it.Task == nil || it.Notes == nil {
				return Empty(), fmt.Errorf("ai: option %d item %d is incomplete", i, j)
			}
			if *it.Hour < 0 || *it.Hour > constants.LastHour {
				return Empty(), fmt.Errorf("ai: option %d item %d has hour %d outside 0-%d", i, j, *it.Hour, constants.LastHour)
			}
			opt.Items = append(opt.Items, models.PlanItem{Hour: *it.Hour, Task: *it.Task, Notes: *it.Notes})
		}
		resp.Options = append(resp.Options, opt)
	}

	for i, in := range *w.Insights {
		if in.Title == nil || in.Observation == nil || in.Suggestion == nil || in.Impact == nil || in.Type == nil {
			return Empty(), fmt.Errorf("ai: insight %d is incomplete", i)
		}
		impact, err := parseImpact(*in.Impact)
		if err != nil {
			return Empty(), fmt.Errorf("ai: insight %d: %w", i, err)
		}
		kind := models.InsightType(*in.Type)
		switch kind {
		case models.InsightEfficiency, models.InsightWellbeing, models.InsightPattern:
		default:
			return Empty(), fmt.Errorf("ai: insight %d has unknown type %q", i, *in.Type)
		}
		resp.Insights = append(resp.Insights, models.Insight{
			Title:       *in.Title,
			Observation: *in.Observation,
			Suggestion:  *in.Suggestion,
			Impact:      impact,
			Type:        kind,
		})
	}

	return resp, nil
}

func parseImpact(s string) (models.PriorityLevel, error) {
	switch models.PriorityLevel(s) {
	case models.PriorityHigh, models.PriorityMedium, models.PriorityLow:
		return models.PriorityLevel(s), nil
	}
	return "", fmt.Errorf("unknown impact %q", s)
}
