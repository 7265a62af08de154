package models

import (
	"fmt"
	"time"
)

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
)

type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
}

func (n *Notification) Validate() error {
	if n.ID == "" {
		return fmt.Errorf("notification id cannot be empty")
	}
	if n.Title == "" {
		return fmt.Errorf("notification title cannot be empty")
	}
	switch n.Type {
	case NotificationInfo, NotificationSuccess, NotificationWarning:
	default:
		return fmt.Errorf("invalid notification type %q", n.Type)
	}
	return nil
}
