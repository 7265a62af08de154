// Package history derives per-day completion figures from stored day records.
package history

import (
	"errors"
	"sort"
	"time"

	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/logger"
	"github.com/rahulraj-lab/Focus-flow/internal/models"
	"github.com/rahulraj-lab/Focus-flow/internal/schedule"
	"github.com/rahulraj-lab/Focus-flow/internal/storage"
)

// Band classifies a completion percentage for the calendar heat-map.
type Band string

const (
	BandLow       Band = "low"
	BandFair      Band = "fair"
	BandGood      Band = "good"
	BandExcellent Band = "excellent"
)

// BandFor maps a percentage onto its band.
func BandFor(percentage int) Band {
	switch {
	case percentage < 60:
		return BandLow
	case percentage < 90:
		return BandFair
	case percentage < 98:
		return BandGood
	default:
		return BandExcellent
	}
}

// Aggregate computes performance for every stored day. Records that cannot
// be decoded are skipped.
func Aggregate(p storage.Provider) (map[string]models.DayPerformance, error) {
	dates, err := storage.ListDays(p)
	if err != nil {
		return nil, err
	}

	hist := make(map[string]models.DayPerformance, len(dates))
	for _, date := range dates {
		slots, err := storage.LoadDay(p, date)
		if err != nil {
			if errors.Is(err, schedule.ErrMalformedDay) {
				logger.Warn("Skipping malformed day record", "date", date, "error", err)
				continue
			}
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, err
		}
		hist[date] = schedule.ComputeDayPerformance(date, slots)
	}
	return hist, nil
}

// Recent returns up to n entries with the latest dates, oldest first.
func Recent(hist map[string]models.DayPerformance, n int) []models.DayPerformance {
	dates := make([]string, 0, len(hist))
	for d := range hist {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	if n >= 0 && len(dates) > n {
		dates = dates[len(dates)-n:]
	}

	out := make([]models.DayPerformance, 0, len(dates))
	for _, d := range dates {
		out = append(out, hist[d])
	}
	return out
}

// Cell is one position of a month grid. Blank cells pad the first week.
type Cell struct {
	Blank       bool
	Date        time.Time
	Performance *models.DayPerformance
}

// HasTasks reports whether the cell's day had any occupied slot.
func (c Cell) HasTasks() bool {
	return c.Performance != nil && c.Performance.TotalTasks > 0
}

// MonthGrid lays out a month with weeks starting on Sunday.
func MonthGrid(year int, month time.Month, hist map[string]models.DayPerformance) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]Cell, 0, int(first.Weekday())+daysInMonth)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, Cell{Blank: true})
	}
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		cell := Cell{Date: date}
		if perf, ok := hist[date.Format(constants.DateFormat)]; ok {
			cell.Performance = &perf
		}
		cells = append(cells, cell)
	}
	return cells
}
