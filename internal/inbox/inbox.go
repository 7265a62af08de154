// Package inbox maintains the capped, newest-first notification log.
package inbox

import (
	"time"

	"github.com/google/uuid"

	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/models"
)

// New builds an unread notification stamped with now.
func New(title, message string, kind models.NotificationType, now time.Time) models.Notification {
	return models.Notification{
		ID:        "notif-" + uuid.NewString(),
		Title:     title,
		Message:   message,
		Type:      kind,
		Timestamp: now,
	}
}

// Add prepends n and drops the oldest entries beyond the cap.
func Add(log []models.Notification, n models.Notification) []models.Notification {
	out := make([]models.Notification, 0, min(len(log)+1, constants.NotificationCap))
	out = append(out, n)
	for _, existing := range log {
		if len(out) == constants.NotificationCap {
			break
		}
		out = append(out, existing)
	}
	return out
}

// MarkRead flags the entry with id as read. When id is empty every entry is marked.
func MarkRead(log []models.Notification, id string) []models.Notification {
	out := make([]models.Notification, len(log))
	copy(out, log)
	for i := range out {
		if id == "" || out[i].ID == id {
			out[i].Read = true
		}
	}
	return out
}

// Remove drops the entry with id. The bool reports whether it was present.
func Remove(log []models.Notification, id string) ([]models.Notification, bool) {
	out := make([]models.Notification, 0, len(log))
	found := false
	for _, n := range log {
		if n.ID == id {
			found = true
			continue
		}
		out = append(out, n)
	}
	return out, found
}

// Clear empties the log.
func Clear() []models.Notification {
	return []models.Notification{}
}

// Unread counts entries not yet read.
func Unread(log []models.Notification) int {
	count := 0
	for _, n := range log {
		if !n.Read {
			count++
		}
	}
	return count
}
