package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/logger"
	"github.com/rahulraj-lab/Focus-flow/internal/models"
	"github.com/rahulraj-lab/Focus-flow/internal/schedule"
)

// DayKey returns the record key for a YYYY-MM-DD date.
func DayKey(date string) string {
	return constants.DayKeyPrefix + date
}

// LoadDay reads the slots stored for date. It returns ErrNotFound when the
// day has never been saved and schedule.ErrMalformedDay when the record
// cannot be decoded into 24 hourly slots.
func LoadDay(p Provider, date string) ([]models.Slot, error) {
	raw, err := p.Get(DayKey(date))
	if err != nil {
		return nil, err
	}

	var slots []models.Slot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", schedule.ErrMalformedDay, date, err)
	}
	return schedule.NormalizeDay(slots)
}

// SaveDay writes the full slot list for date.
func SaveDay(p Provider, date string, slots []models.Slot) error {
	if len(slots) != constants.HoursPerDay {
		return fmt.Errorf("%w: refusing to save %d slots for %s", schedule.ErrMalformedDay, len(slots), date)
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("failed to encode day %s: %w", date, err)
	}
	return p.Put(DayKey(date), string(data))
}

// DeleteDay removes the record for date. Deleting a missing day is not an error.
func DeleteDay(p Provider, date string) error {
	return p.Delete(DayKey(date))
}

// ListDays returns every stored date, ascending.
func ListDays(p Provider) ([]string, error) {
	keys, err := p.Keys(constants.DayKeyPrefix)
	if err != nil {
		return nil, err
	}
	dates := make([]string, 0, len(keys))
	for _, k := range keys {
		dates = append(dates, strings.TrimPrefix(k, constants.DayKeyPrefix))
	}
	return dates, nil
}

// LoadRules reads the global recurring rule list. A missing or unreadable
// record yields an empty list.
func LoadRules(p Provider) ([]models.RecurringRule, error) {
	var rules []models.RecurringRule
	if err := loadList(p, constants.RecurringRulesKey, &rules); err != nil {
		return nil, err
	}
	if rules == nil {
		rules = []models.RecurringRule{}
	}
	return rules, nil
}

// SaveRules replaces the global recurring rule list.
func SaveRules(p Provider, rules []models.RecurringRule) error {
	if rules == nil {
		rules = []models.RecurringRule{}
	}
	return saveList(p, constants.RecurringRulesKey, rules)
}

// LoadNotifications reads the notification log, newest first.
func LoadNotifications(p Provider) ([]models.Notification, error) {
	var items []models.Notification
	if err := loadList(p, constants.NotificationLogKey, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Notification{}
	}
	return items, nil
}

// SaveNotifications replaces the notification log.
func SaveNotifications(p Provider, items []models.Notification) error {
	if items == nil {
		items = []models.Notification{}
	}
	return saveList(p, constants.NotificationLogKey, items)
}

func loadList(p Provider, key string, dst any) error {
	raw, err := p.Get(key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		logger.Warn("Discarding unreadable record", "key", key, "error", err)
		return json.Unmarshal([]byte("[]"), dst)
	}
	return nil
}

func saveList(p Provider, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return p.Put(key, string(data))
}
