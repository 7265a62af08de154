// Package plans holds the AI-assisted planning command.
package plans

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/rahulraj-lab/Focus-flow/internal/ai"
	"github.com/rahulraj-lab/Focus-flow/internal/cli"
	"github.com/rahulraj-lab/Focus-flow/internal/config"
	"github.com/rahulraj-lab/Focus-flow/internal/models"
)

// ErrNothingToPlan is returned when neither a prompt nor priorities were given.
var ErrNothingToPlan = errors.New("describe your day with --prompt or add at least one --priority")

type PlanCmd struct {
	Prompt   string   `help:"Free-form description of the day you want." short:"p"`
	Priority []string `help:"Priority as 'text' or 'text:High|Medium|Low'. Repeatable." short:"P"`
	Apply    int      `help:"Apply option N (1-based) to the day after generating."`
	Date     string   `help:"Day the plan is for." default:"today"`
	Offline  bool     `help:"Use the built-in heuristic planner instead of Gemini."`
	Raw      bool     `help:"Print plain markdown without terminal styling."`
}

func (c *PlanCmd) Run(ctx *cli.Context) error {
	priorities, err := ParsePriorities(c.Priority)
	if err != nil {
		return err
	}
	if strings.TrimSpace(c.Prompt) == "" && len(priorities) == 0 {
		return ErrNothingToPlan
	}

	p, err := ctx.Planner(c.Date)
	if err != nil {
		return err
	}
	hist, err := p.History()
	if err != nil {
		return fmt.Errorf("failed to aggregate history: %w", err)
	}

	gen, err := c.generator(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Generating plan...")
	resp, err := ai.NewBoundary(gen).Plan(context.Background(), ai.Request{
		Prompt:         c.Prompt,
		Priorities:     priorities,
		History:        hist,
		RecurringRules: p.Rules(),
	})
	if err != nil {
		return err
	}
	if resp.IsEmpty() {
		fmt.Println("No plan could be generated. Check the log for details and try again.")
		return nil
	}

	md := RenderMarkdown(resp)
	if c.Raw {
		fmt.Println(md)
	} else {
		fmt.Println(render(md))
	}

	if c.Apply == 0 {
		if len(resp.Options) > 0 {
			fmt.Println("Run again with --apply N to place an option on your day.")
		}
		return nil
	}
	if c.Apply < 1 || c.Apply > len(resp.Options) {
		return fmt.Errorf("option %d does not exist (1-%d)", c.Apply, len(resp.Options))
	}
	if err := p.ApplyOption(resp.Options[c.Apply-1]); err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	fmt.Printf("✓ Applied %q to %s\n", resp.Options[c.Apply-1].Title, p.DateKey())
	cli.PrintDay(p, false)
	return nil
}

func (c *PlanCmd) generator(ctx *cli.Context) (ai.Generator, error) {
	if ctx.Generator != nil {
		return ctx.Generator, nil
	}
	if c.Offline {
		return ai.StubGenerator{}, nil
	}
	key, err := config.ResolveAPIKey(ctx.Config)
	if err != nil {
		return nil, err
	}
	return ai.NewGeminiGenerator(key, ctx.Config.AI.Model)
}

// ParsePriorities reads "text" or "text:Level" entries. The level defaults to Medium.
func ParsePriorities(raw []string) ([]models.PriorityItem, error) {
	items := make([]models.PriorityItem, 0, len(raw))
	for _, entry := range raw {
		text, level := entry, ""
		if i := strings.LastIndex(entry, ":"); i >= 0 {
			if _, err := models.ParsePriorityLevel(entry[i+1:]); err == nil {
				text, level = entry[:i], entry[i+1:]
			}
		}
		lvl, err := models.ParsePriorityLevel(level)
		if err != nil {
			return nil, err
		}
		item := models.PriorityItem{Text: strings.TrimSpace(text), Level: lvl}
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("priority %q: %w", entry, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// RenderMarkdown lays out options and insights as a markdown document.
func RenderMarkdown(resp ai.Response) string {
	var b strings.Builder
	if len(resp.Options) > 0 {
		b.WriteString("# Schedule options\n\n")
	}
	for i, opt := range resp.Options {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, opt.Title)
		if opt.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", opt.Description)
		}
		if len(opt.Items) == 0 {
			b.WriteString("_No items._\n\n")
			continue
		}
		b.WriteString("| Hour | Task | Notes |\n|---|---|---|\n")
		for _, item := range opt.Items {
			fmt.Fprintf(&b, "| %02d:00 | %s | %s |\n", item.Hour, escapeCell(item.Task), escapeCell(item.Notes))
		}
		b.WriteString("\n")
	}

	if len(resp.Insights) > 0 {
		b.WriteString("# Insights\n\n")
	}
	for _, in := range resp.Insights {
		fmt.Fprintf(&b, "- **%s** (%s, %s impact): %s\n  - _Try:_ %s\n", in.Title, in.Type, in.Impact, in.Observation, in.Suggestion)
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "|", "\\|"), "\n", " ")
}

func render(md string) string {
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
