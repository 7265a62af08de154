package constants

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SessionState represents the current state of the TUI application
type SessionState int

// ConfirmationMsg is a message to trigger a confirmation dialog
type ConfirmationMsg struct {
	Message string
	Action  func() tea.Cmd
}

const (
	AppName           = "focusflow"
	DefaultConfigPath = "~/.config/focusflow/focusflow.db"
	Version           = "v0.3.0"

	// Keyring accounts
	KeyringConnectionUser = "database-connection"
	KeyringAPIKeyUser     = "gemini-api-key"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MonthFormat is used by the calendar view (YYYY-MM)
	MonthFormat = "2006-01"

	// HoursPerDay is the fixed number of hourly slots in a day record
	HoursPerDay = 24
	LastHour    = HoursPerDay - 1

	// NotificationCap is the maximum number of entries kept in the notification log
	NotificationCap = 30

	// Record keys
	DayKeyPrefix       = "day:"
	RecurringRulesKey  = "recurring_rules"
	NotificationLogKey = "notifications"

	// AI constants
	DefaultAIModel       = "gemini-3-flash-preview"
	DefaultAPIKeyEnv     = "GEMINI_API_KEY"
	AIHistoryWindow      = 7
	AIPreviewOccurrences = 5

	// Reminder schedule: top of every hour
	ReminderSpec = "0 * * * *"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "focusflow-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "focusflow-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.rahulraj.focusflow"
	TrayAppExecutable      = "focusflow-tray"
)

// Session States
const (
	StateTimeline SessionState = iota
	StatePending
	StateHistory
	StateInbox
	StateEditing
	StateConfirmDelete
)
