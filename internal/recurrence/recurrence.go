// Package recurrence expresses recurring rules as RFC 5545 RRULEs so they
// can be previewed and exported to calendars.
package recurrence

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/rahulraj-lab/Focus-flow/internal/models"
)

// horizon bounds the search window when listing upcoming occurrences.
// Monthly rules on day 31 fire 7 times a year, so a few years is enough.
const horizon = 4 * 366 * 24 * time.Hour

var weekdays = []rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// Options converts rule into rrule options anchored at dtstart.
func Options(rule models.RecurringRule, dtstart time.Time) (rrule.ROption, error) {
	if err := rule.Validate(); err != nil {
		return rrule.ROption{}, err
	}

	opt := rrule.ROption{
		Dtstart:  dtstart,
		Byhour:   []int{rule.Hour},
		Byminute: []int{0},
		Bysecond: []int{0},
	}

	switch rule.Type {
	case models.RecurrenceDaily:
		opt.Freq = rrule.DAILY
	case models.RecurrenceWeekly:
		opt.Freq = rrule.WEEKLY
		opt.Byweekday = []rrule.Weekday{weekdays[*rule.DayValue]}
	case models.RecurrenceMonthly:
		opt.Freq = rrule.MONTHLY
		opt.Bymonthday = []int{*rule.DayValue}
	default:
		return rrule.ROption{}, fmt.Errorf("rule %s has no recurrence", rule.ID)
	}
	return opt, nil
}

// New builds the RRULE for rule starting at dtstart.
func New(rule models.RecurringRule, dtstart time.Time) (*rrule.RRule, error) {
	opt, err := Options(rule, dtstart)
	if err != nil {
		return nil, err
	}
	return rrule.NewRRule(opt)
}

// String renders the RRULE property value for rule, without DTSTART.
func String(rule models.RecurringRule) (string, error) {
	opt, err := Options(rule, time.Time{})
	if err != nil {
		return "", err
	}
	return opt.RRuleString(), nil
}

// Next lists up to n start times of rule at or after from.
func Next(rule models.RecurringRule, from time.Time, n int) ([]time.Time, error) {
	if n <= 0 {
		return nil, nil
	}

	dayStart := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	r, err := New(rule, dayStart)
	if err != nil {
		return nil, err
	}

	occ := r.Between(from, from.Add(horizon), true)
	if len(occ) > n {
		occ = occ[:n]
	}
	return occ, nil
}
