package days

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rahulraj-lab/Focus-flow/internal/cli"
	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/history"
	"github.com/rahulraj-lab/Focus-flow/internal/models"
)

var bandStyles = map[history.Band]lipgloss.Style{
	history.BandLow:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	history.BandFair:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	history.BandGood:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	history.BandExcellent: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
}

var mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

type HistoryCmd struct {
	Limit int `help:"Number of most recent days to show (0 for all)." default:"14" short:"l"`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	hist, err := history.Aggregate(ctx.Store)
	if err != nil {
		return fmt.Errorf("failed to aggregate history: %w", err)
	}
	if len(hist) == 0 {
		fmt.Println("No recorded days yet.")
		return nil
	}

	n := c.Limit
	if n <= 0 {
		n = len(hist)
	}
	recent := history.Recent(hist, n)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date > recent[j].Date })

	fmt.Printf("History (%d of %d days):\n", len(recent), len(hist))
	for _, perf := range recent {
		band := history.BandFor(perf.Percentage)
		bar := strings.Repeat("█", perf.Percentage/10) + strings.Repeat("░", 10-perf.Percentage/10)
		fmt.Printf("  %s  %s %3d%%  %d/%d\n", perf.Date, bandStyles[band].Render(bar), perf.Percentage, perf.CompletedTasks, perf.TotalTasks)
	}
	return nil
}

type CalendarCmd struct {
	Month string `arg:"" optional:"" help:"Month to show (YYYY-MM); defaults to the current month."`
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	month := ctx.Today()
	if c.Month != "" {
		m, err := time.Parse(constants.MonthFormat, c.Month)
		if err != nil {
			return fmt.Errorf("invalid month %q (expected YYYY-MM)", c.Month)
		}
		month = m
	}

	hist, err := history.Aggregate(ctx.Store)
	if err != nil {
		return fmt.Errorf("failed to aggregate history: %w", err)
	}

	fmt.Print(RenderMonth(month.Year(), month.Month(), hist, ctx.Today()))
	return nil
}

// RenderMonth draws a Sunday-first grid. Days with tasks are coloured by
// completion band; today is underlined.
func RenderMonth(year int, month time.Month, hist map[string]models.DayPerformance, today time.Time) string {
	var b strings.Builder
	title := fmt.Sprintf("%s %d", month, year)
	fmt.Fprintf(&b, "%s\n", lipgloss.NewStyle().Bold(true).Width(28).Align(lipgloss.Center).Render(title))
	b.WriteString(mutedStyle.Render(" Su  Mo  Tu  We  Th  Fr  Sa") + "\n")

	cells := history.MonthGrid(year, month, hist)
	for i, cell := range cells {
		b.WriteString(renderCell(cell, today))
		if i%7 == 6 {
			b.WriteString("\n")
		}
	}
	if len(cells)%7 != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

func renderCell(cell history.Cell, today time.Time) string {
	if cell.Blank {
		return "    "
	}
	label := fmt.Sprintf(" %2d ", cell.Date.Day())

	style := mutedStyle
	if cell.HasTasks() {
		style = bandStyles[history.BandFor(cell.Performance.Percentage)]
	}
	if cell.Date.Year() == today.Year() && cell.Date.YearDay() == today.YearDay() {
		style = style.Underline(true)
	}
	return style.Render(label)
}
