// Package export renders planner data in formats other tools understand:
// iCalendar for calendar apps and YAML for rule backups.
package export

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/logger"
	"github.com/rahulraj-lab/Focus-flow/internal/models"
	"github.com/rahulraj-lab/Focus-flow/internal/recurrence"
	"github.com/rahulraj-lab/Focus-flow/internal/schedule"
)

const productID = "-//focusflow//hourly planner//EN"

// Calendar builds a VCALENDAR with one VEVENT per occupied merged range of
// the day. Ranges backed by a recurring rule carry its RRULE.
func Calendar(date time.Time, slots []models.Slot, rules []models.RecurringRule, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	dateKey := date.Format(constants.DateFormat)
	for _, r := range schedule.MergeSlots(slots) {
		if !r.Occupied() {
			continue
		}

		ev := cal.AddEvent(fmt.Sprintf("%s-%02d@%s", dateKey, r.StartHour, constants.AppName))
		ev.SetDtStampTime(stamp)
		ev.SetStartAt(atHour(date, r.StartHour))
		ev.SetEndAt(atHour(date, r.EndHour+1))
		ev.SetSummary(r.Task)
		if r.Notes != "" {
			ev.SetDescription(r.Notes)
		}
		if r.Completed {
			ev.AddProperty(ical.ComponentPropertyCategories, "COMPLETED")
		}

		if rule, ok := ruleFor(rules, r, date); ok {
			rr, err := recurrence.String(rule)
			if err != nil {
				logger.Warn("Skipping RRULE for invalid rule", "rule", rule.ID, "error", err)
				continue
			}
			ev.AddProperty(ical.ComponentPropertyRrule, rr)
		}
	}
	return cal
}

// ICS serializes the day as an iCalendar document.
func ICS(date time.Time, slots []models.Slot, rules []models.RecurringRule, stamp time.Time) string {
	return Calendar(date, slots, rules, stamp).Serialize()
}

func atHour(date time.Time, hour int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
}

// ruleFor finds the rule that seeded the first hour of r on date.
func ruleFor(rules []models.RecurringRule, r models.MergedRange, date time.Time) (models.RecurringRule, bool) {
	if r.Recurrence == models.RecurrenceNone || r.Recurrence == "" {
		return models.RecurringRule{}, false
	}
	for _, rule := range rules {
		if rule.Hour == r.StartHour && rule.Type == r.Recurrence && rule.Task == r.Task && rule.Matches(date) {
			return rule, true
		}
	}
	return models.RecurringRule{}, false
}
