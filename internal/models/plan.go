package models

import (
	"fmt"
	"strings"
)

type PriorityLevel string

const (
	PriorityHigh   PriorityLevel = "High"
	PriorityMedium PriorityLevel = "Medium"
	PriorityLow    PriorityLevel = "Low"
)

// ParsePriorityLevel accepts any casing of High, Medium or Low.
func ParsePriorityLevel(s string) (PriorityLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return PriorityHigh, nil
	case "medium", "":
		return PriorityMedium, nil
	case "low":
		return PriorityLow, nil
	}
	return "", fmt.Errorf("invalid priority level %q (expected High, Medium or Low)", s)
}

type PriorityItem struct {
	Text  string        `json:"text"`
	Level PriorityLevel `json:"level"`
}

func (p *PriorityItem) Validate() error {
	if strings.TrimSpace(p.Text) == "" {
		return fmt.Errorf("priority text cannot be empty")
	}
	if _, err := ParsePriorityLevel(string(p.Level)); err != nil {
		return err
	}
	return nil
}

// PlanItem is a single hour proposal returned by the plan generator.
// Hours are not guaranteed to be unique or in range.
type PlanItem struct {
	Hour  int    `json:"hour"`
	Task  string `json:"task"`
	Notes string `json:"notes"`
}

type ScheduleOption struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Items       []PlanItem `json:"items"`
}

type InsightType string

const (
	InsightEfficiency InsightType = "efficiency"
	InsightWellbeing  InsightType = "wellbeing"
	InsightPattern    InsightType = "pattern"
)

type Insight struct {
	Title       string        `json:"title"`
	Observation string        `json:"observation"`
	Suggestion  string        `json:"suggestion"`
	Impact      PriorityLevel `json:"impact"`
	Type        InsightType   `json:"type"`
}
