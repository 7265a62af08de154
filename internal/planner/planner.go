// Package planner holds the application state for one viewed day: its
// slots, the global rule set and the notification log. Every mutation is
// written through to storage before it returns.
package planner

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/history"
	"github.com/rahulraj-lab/Focus-flow/internal/inbox"
	"github.com/rahulraj-lab/Focus-flow/internal/logger"
	"github.com/rahulraj-lab/Focus-flow/internal/models"
	"github.com/rahulraj-lab/Focus-flow/internal/schedule"
	"github.com/rahulraj-lab/Focus-flow/internal/storage"
)

// ErrRuleNotFound is returned when deleting a rule id that is not in the set.
var ErrRuleNotFound = errors.New("recurring rule not found")

type Planner struct {
	store storage.Provider
	now   func() time.Time
	newID schedule.IDFunc

	date          time.Time
	slots         []models.Slot
	rules         []models.RecurringRule
	notifications []models.Notification
}

type Option func(*Planner)

// WithClock overrides the time source used for notification timestamps.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

// WithIDFunc overrides rule id generation.
func WithIDFunc(newID schedule.IDFunc) Option {
	return func(p *Planner) { p.newID = newID }
}

func New(store storage.Provider, opts ...Option) *Planner {
	p := &Planner{
		store: store,
		now:   time.Now,
		newID: schedule.NewID,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Open loads the rule set and notification log, then makes date the viewed day.
func (p *Planner) Open(date time.Time) error {
	rules, err := storage.LoadRules(p.store)
	if err != nil {
		return fmt.Errorf("failed to load recurring rules: %w", err)
	}
	notifications, err := storage.LoadNotifications(p.store)
	if err != nil {
		return fmt.Errorf("failed to load notifications: %w", err)
	}
	p.rules = rules
	p.notifications = notifications
	return p.View(date)
}

// View switches the viewed day. A day with no record, or an unreadable
// one, is initialized from the rule set but not saved until it is edited.
func (p *Planner) View(date time.Time) error {
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	key := date.Format(constants.DateFormat)

	slots, err := storage.LoadDay(p.store, key)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrNotFound):
		slots = schedule.InitializeDay(p.rules, date)
	case errors.Is(err, schedule.ErrMalformedDay):
		logger.Warn("Reinitializing malformed day record", "date", key, "error", err)
		slots = schedule.InitializeDay(p.rules, date)
	default:
		return fmt.Errorf("failed to load %s: %w", key, err)
	}

	p.date = date
	p.slots = slots
	return nil
}

func (p *Planner) Date() time.Time { return p.date }

// DateKey is the viewed date as YYYY-MM-DD.
func (p *Planner) DateKey() string { return p.date.Format(constants.DateFormat) }

func (p *Planner) Slots() []models.Slot {
	out := make([]models.Slot, len(p.slots))
	copy(out, p.slots)
	return out
}

func (p *Planner) Rules() []models.RecurringRule {
	out := make([]models.RecurringRule, len(p.rules))
	copy(out, p.rules)
	return out
}

func (p *Planner) Notifications() []models.Notification {
	out := make([]models.Notification, len(p.notifications))
	copy(out, p.notifications)
	return out
}

func (p *Planner) Merged() []models.MergedRange {
	return schedule.MergeSlots(p.slots)
}

// Pending lists occupied, unfinished blocks of the viewed day.
func (p *Planner) Pending() []models.MergedRange {
	return schedule.Pending(p.Merged())
}

func (p *Planner) Performance() models.DayPerformance {
	return schedule.ComputeDayPerformance(p.DateKey(), p.slots)
}

// History aggregates performance over every stored day.
func (p *Planner) History() (map[string]models.DayPerformance, error) {
	return history.Aggregate(p.store)
}

func (p *Planner) state() schedule.State {
	return schedule.State{Date: p.date, Slots: p.slots, Rules: p.rules}
}

// commit persists the day before the rule set; a crash in between leaves
// rules one edit behind.
func (p *Planner) commit(next schedule.State) error {
	if err := storage.SaveDay(p.store, p.DateKey(), next.Slots); err != nil {
		return fmt.Errorf("failed to save day: %w", err)
	}
	p.slots = next.Slots

	if err := storage.SaveRules(p.store, next.Rules); err != nil {
		return fmt.Errorf("failed to save recurring rules: %w", err)
	}
	p.rules = next.Rules
	return nil
}

// UpdateRange applies patch to [start, end] on the viewed day.
func (p *Planner) UpdateRange(patch schedule.Patch, start, end int) error {
	var previousTask string
	if start >= 0 && start < len(p.slots) {
		previousTask = p.slots[start].Task
	}

	next, err := schedule.UpdateRange(p.state(), patch, start, end, p.newID)
	if err != nil {
		return err
	}
	if err := p.commit(next); err != nil {
		return err
	}

	switch {
	case patch.ClearsTask():
		return p.Notify("Task Cleared", fmt.Sprintf("Slot %d:00 reset.", start), models.NotificationInfo)
	case patch.MarksDone():
		task := previousTask
		if patch.Task != nil && strings.TrimSpace(*patch.Task) != "" {
			task = strings.TrimSpace(*patch.Task)
		}
		return p.Notify("Task Done", "Completed: "+task, models.NotificationSuccess)
	}
	return nil
}

// ToggleComplete flips completion of the block starting at start.
func (p *Planner) ToggleComplete(start, end int) error {
	if err := schedule.ValidateRange(start, end); err != nil {
		return err
	}
	if len(p.slots) != constants.HoursPerDay {
		return fmt.Errorf("%w: no day is open", schedule.ErrMalformedDay)
	}
	done := !p.slots[start].Completed
	return p.UpdateRange(schedule.Patch{Completed: &done}, start, end)
}

// ClearRange empties [start, end] and withdraws its rules.
func (p *Planner) ClearRange(start, end int) error {
	return p.UpdateRange(schedule.ClearPatch(), start, end)
}

// ResizeRange changes the block [start, end] to last hours.
func (p *Planner) ResizeRange(start, end, hours int) error {
	next, err := schedule.ResizeRange(p.state(), start, end, hours, p.newID)
	if err != nil {
		return err
	}
	return p.commit(next)
}

// DeleteDay removes the record for date. If date is being viewed it is
// reinitialized from the rule set.
func (p *Planner) DeleteDay(date string) error {
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	if err := storage.DeleteDay(p.store, date); err != nil {
		return fmt.Errorf("failed to delete %s: %w", date, err)
	}
	if date == p.DateKey() {
		if err := p.View(p.date); err != nil {
			return err
		}
	}
	return p.Notify("History Cleared", fmt.Sprintf("Deleted data for %s.", date), models.NotificationInfo)
}

// DeleteRule removes a recurring rule by id.
func (p *Planner) DeleteRule(id string) error {
	rules, found := schedule.DeleteRule(p.rules, id)
	if !found {
		return fmt.Errorf("%w: %s", ErrRuleNotFound, id)
	}
	if err := storage.SaveRules(p.store, rules); err != nil {
		return fmt.Errorf("failed to save recurring rules: %w", err)
	}
	p.rules = rules
	return p.Notify("Template Removed", "Rule deleted.", models.NotificationInfo)
}

// ReplaceRules swaps the whole rule set, as done by an import.
func (p *Planner) ReplaceRules(rules []models.RecurringRule) error {
	for i := range rules {
		if err := rules[i].Validate(); err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
	}
	if err := storage.SaveRules(p.store, rules); err != nil {
		return fmt.Errorf("failed to save recurring rules: %w", err)
	}
	p.rules = append([]models.RecurringRule{}, rules...)
	return nil
}

// ApplyOption overlays a generated schedule option onto the viewed day.
func (p *Planner) ApplyOption(opt models.ScheduleOption) error {
	slots := schedule.ApplyPlanItems(p.slots, opt.Items)
	if err := storage.SaveDay(p.store, p.DateKey(), slots); err != nil {
		return fmt.Errorf("failed to save day: %w", err)
	}
	p.slots = slots
	return nil
}

// Notify prepends a notification to the log and persists it.
func (p *Planner) Notify(title, message string, kind models.NotificationType) error {
	return p.saveNotifications(inbox.Add(p.notifications, inbox.New(title, message, kind, p.now())))
}

func (p *Planner) MarkRead(id string) error {
	return p.saveNotifications(inbox.MarkRead(p.notifications, id))
}

func (p *Planner) RemoveNotification(id string) (bool, error) {
	next, found := inbox.Remove(p.notifications, id)
	if !found {
		return false, nil
	}
	return true, p.saveNotifications(next)
}

func (p *Planner) ClearNotifications() error {
	return p.saveNotifications(inbox.Clear())
}

func (p *Planner) saveNotifications(next []models.Notification) error {
	if err := storage.SaveNotifications(p.store, next); err != nil {
		return fmt.Errorf("failed to save notifications: %w", err)
	}
	p.notifications = next
	return nil
}
