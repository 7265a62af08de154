package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rahulraj-lab/Focus-flow/internal/ai"
	"github.com/rahulraj-lab/Focus-flow/internal/backup"
	"github.com/rahulraj-lab/Focus-flow/internal/config"
	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/logger"
	"github.com/rahulraj-lab/Focus-flow/internal/models"
	"github.com/rahulraj-lab/Focus-flow/internal/notifier"
	"github.com/rahulraj-lab/Focus-flow/internal/planner"
	"github.com/rahulraj-lab/Focus-flow/internal/storage"
)

type Context struct {
	Store  storage.Provider
	Config config.Config

	// Now overrides the wall clock; tests pin it.
	Now func() time.Time
	// Generator overrides the Gemini-backed plan generator.
	Generator ai.Generator
	// Sink receives reminders; nil disables tray delivery.
	Sink notifier.Sink
}

// Clock returns the current time in the configured timezone.
func (c *Context) Clock() time.Time {
	if c.Now != nil {
		return c.Now().In(c.Config.Location())
	}
	return time.Now().In(c.Config.Location())
}

// Today returns midnight of the current day in the configured timezone.
func (c *Context) Today() time.Time {
	now := c.Clock()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// ParseDate accepts YYYY-MM-DD, "today", "tomorrow", "yesterday" or "".
func (c *Context) ParseDate(s string) (time.Time, error) {
	today := c.Today()
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}
	d, err := time.ParseInLocation(constants.DateFormat, s, today.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return d, nil
}

// Planner opens a planner on date.
func (c *Context) Planner(date string) (*planner.Planner, error) {
	d, err := c.ParseDate(date)
	if err != nil {
		return nil, err
	}
	p := planner.New(c.Store, planner.WithClock(c.Clock))
	if err := p.Open(d); err != nil {
		return nil, err
	}
	return p, nil
}

// PerformAutomaticBackup snapshots a SQLite store and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	if storage.IsPostgres(path) || path == ":memory:" || path == "postgresql" {
		return
	}
	if _, err := backup.NewManager(path).Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParseHour accepts "9", "09" or "09:00".
func ParseHour(s string) (int, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ":00")
	h, err := strconv.Atoi(s)
	if err != nil || h < 0 || h > constants.LastHour {
		return 0, fmt.Errorf("invalid hour %q (expected 0-23)", s)
	}
	return h, nil
}

// FormatRange renders a merged block for list output.
func FormatRange(r models.MergedRange) string {
	if !r.Occupied() {
		return fmt.Sprintf("  %s  -", r.Label())
	}
	mark := "[ ]"
	if r.Completed {
		mark = "[x]"
	}
	line := fmt.Sprintf("  %s  %s %s", r.Label(), mark, r.Task)
	if r.Recurrence != "" && r.Recurrence != models.RecurrenceNone {
		line += fmt.Sprintf(" (%s)", r.Recurrence)
	}
	if r.Notes != "" {
		line += "\n        " + r.Notes
	}
	return line
}

// PrintDay writes the merged timeline and completion summary of p's day.
func PrintDay(p *planner.Planner, showEmpty bool) {
	perf := p.Performance()
	fmt.Printf("%s  %d%% (%d/%d done)\n", p.Date().Format("Mon 2006-01-02"), perf.Percentage, perf.CompletedTasks, perf.TotalTasks)
	shown := false
	for _, r := range p.Merged() {
		if !r.Occupied() && !showEmpty {
			continue
		}
		shown = true
		fmt.Println(FormatRange(r))
	}
	if !shown {
		fmt.Println("  Nothing scheduled.")
	}
}

// Stdin is read by Confirm; tests swap it.
var Stdin io.Reader = os.Stdin

// Confirm asks a yes/no question unless assumeYes is set.
func Confirm(question string, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}
	fmt.Printf("%s [y/N]: ", question)
	response, err := bufio.NewReader(Stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}
