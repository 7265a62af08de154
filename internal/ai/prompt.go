package ai

import (
	"fmt"
	"strings"

	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/history"
)

// BuildPrompt renders the coaching prompt sent to the model.
func BuildPrompt(req Request) string {
	var b strings.Builder

	b.WriteString("You are an elite productivity coach and behavioral scientist. ")
	b.WriteString("Analyze the user's request and historical data to provide 3 optimized schedule variations and specific \"Routine Insights\".\n\n")
	fmt.Fprintf(&b, "USER REQUEST: %q\n", req.Prompt)

	if len(req.Priorities) > 0 {
		b.WriteString("\nSTRATEGIC PRIORITIES:\n")
		for _, p := range req.Priorities {
			fmt.Fprintf(&b, "- %s (Priority: %s)\n", p.Text, p.Level)
		}
	}

	if len(req.History) > 0 {
		b.WriteString("\nUSER PERFORMANCE HISTORY (Last few entries):\n")
		for _, h := range history.Recent(req.History, constants.AIHistoryWindow) {
			fmt.Fprintf(&b, "- %s: %d%% completion (%d/%d tasks done)\n", h.Date, h.Percentage, h.CompletedTasks, h.TotalTasks)
		}
	}

	if len(req.RecurringRules) > 0 {
		b.WriteString("\nCURRENT RECURRING RULES:\n")
		for _, r := range req.RecurringRules {
			fmt.Fprintf(&b, "- %d:00: %s (%s)\n", r.Hour, r.Task, r.Type)
		}
	}

	b.WriteString("\nTASK:\n")
	b.WriteString("1. Generate THREE unique schedule options (Productivity, Balanced, High-Performance).\n")
	b.WriteString("2. CRITICAL: Analyze the historical data. If completion is low, identify why. If recurring tasks are clashing with peak productivity, suggest moves.\n")
	b.WriteString("3. Provide 3-4 \"Optimization Insights\" that highlight patterns in the user's habits and suggest specific changes to recurring rules.\n")
	return b.String()
}
