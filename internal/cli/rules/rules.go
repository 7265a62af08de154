// Package rules holds the commands that manage recurring rule templates.
package rules

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/rahulraj-lab/Focus-flow/internal/cli"
	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/export"
	"github.com/rahulraj-lab/Focus-flow/internal/models"
	"github.com/rahulraj-lab/Focus-flow/internal/recurrence"
	"github.com/rahulraj-lab/Focus-flow/internal/schedule"
	"github.com/rahulraj-lab/Focus-flow/internal/storage"
)

// maxDistanceRatio is the largest edit distance, relative to the longer
// string, still treated as a match.
const maxDistanceRatio = 0.4

type ListCmd struct {
	ShowIDs bool `help:"Show rule IDs." name:"show-ids"`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	rules, err := storage.LoadRules(ctx.Store)
	if err != nil {
		return err
	}
	if len(rules) == 0 {
		fmt.Println("No recurring rules.")
		return nil
	}

	sorted := append([]models.RecurringRule{}, rules...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Hour < sorted[j].Hour })

	fmt.Println("Recurring rules:")
	for _, r := range sorted {
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", r.ID)
		}
		fmt.Printf("  %02d:00  %s%s - %s\n", r.Hour, r.Task, idStr, r.Describe())
	}
	return nil
}

type DeleteCmd struct {
	Target string `arg:"" help:"Rule ID or task name (closest match)."`
	Yes    bool   `help:"Do not ask for confirmation." short:"y"`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	p, err := ctx.Planner("")
	if err != nil {
		return err
	}

	matches := Find(p.Rules(), c.Target)
	if len(matches) == 0 {
		return fmt.Errorf("no rule matches %q", c.Target)
	}

	fmt.Println("Rules to delete:")
	for _, r := range matches {
		fmt.Printf("  %02d:00  %s - %s\n", r.Hour, r.Task, r.Describe())
	}
	ok, err := cli.Confirm("Delete these rules?", c.Yes)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Delete cancelled.")
		return nil
	}

	for _, r := range matches {
		if err := p.DeleteRule(r.ID); err != nil {
			return err
		}
	}
	fmt.Printf("✓ Deleted %d rule(s)\n", len(matches))
	return nil
}

// Find resolves target to rules. An exact ID wins; otherwise every rule
// carrying the task closest to target is returned, if close enough.
func Find(rules []models.RecurringRule, target string) []models.RecurringRule {
	for _, r := range rules {
		if r.ID == target {
			return []models.RecurringRule{r}
		}
	}

	query := strings.ToLower(strings.TrimSpace(target))
	if query == "" {
		return nil
	}
	best, bestScore := "", 1.0
	for _, r := range rules {
		task := strings.ToLower(r.Task)
		dist := levenshtein.ComputeDistance(query, task)
		score := float64(dist) / float64(max(len(query), len(task)))
		if score < bestScore {
			best, bestScore = r.Task, score
		}
	}
	if best == "" || bestScore >= maxDistanceRatio {
		return nil
	}

	var out []models.RecurringRule
	for _, r := range rules {
		if r.Task == best {
			out = append(out, r)
		}
	}
	return out
}

type PreviewCmd struct {
	Target string `arg:"" optional:"" help:"Rule ID or task name; all rules when omitted."`
	Count  int    `help:"Occurrences to list per rule." default:"5" short:"n"`
}

func (c *PreviewCmd) Run(ctx *cli.Context) error {
	rules, err := storage.LoadRules(ctx.Store)
	if err != nil {
		return err
	}
	if c.Target != "" {
		rules = Find(rules, c.Target)
		if len(rules) == 0 {
			return fmt.Errorf("no rule matches %q", c.Target)
		}
	}
	if len(rules) == 0 {
		fmt.Println("No recurring rules.")
		return nil
	}

	count := c.Count
	if count <= 0 {
		count = constants.AIPreviewOccurrences
	}
	from := ctx.Today()
	for _, r := range rules {
		rr, err := recurrence.String(r)
		if err != nil {
			fmt.Printf("%s: %v\n", r.Task, err)
			continue
		}
		fmt.Printf("%s at %02d:00 (%s)\n", r.Task, r.Hour, rr)
		next, err := recurrence.Next(r, from, count)
		if err != nil {
			return err
		}
		for _, t := range next {
			fmt.Printf("  %s\n", t.Format("Mon 2006-01-02 15:04"))
		}
	}
	return nil
}

type ExportCmd struct {
	Output string `help:"File to write; stdout when omitted." short:"o" type:"path"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	rules, err := storage.LoadRules(ctx.Store)
	if err != nil {
		return err
	}
	if c.Output == "" {
		return export.EncodeRules(os.Stdout, rules)
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.Output, err)
	}
	defer f.Close()
	if err := export.EncodeRules(f, rules); err != nil {
		return err
	}
	fmt.Printf("✓ Exported %d rule(s) to %s\n", len(rules), c.Output)
	return nil
}

type ImportCmd struct {
	File    string `arg:"" help:"YAML file produced by 'rules export'." type:"existingfile"`
	Replace bool   `help:"Replace the current rule set instead of merging."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	imported, err := export.DecodeRules(f, schedule.NewID)
	if err != nil {
		return err
	}

	p, err := ctx.Planner("")
	if err != nil {
		return err
	}
	next := imported
	if !c.Replace {
		next = export.MergeRules(p.Rules(), imported)
	}
	if err := p.ReplaceRules(next); err != nil {
		return err
	}
	fmt.Printf("✓ Imported %d rule(s); %d total\n", len(imported), len(next))
	return nil
}
