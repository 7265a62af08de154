package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/history"
	"github.com/rahulraj-lab/Focus-flow/internal/logger"
	"github.com/rahulraj-lab/Focus-flow/internal/models"
	"github.com/rahulraj-lab/Focus-flow/internal/planner"
	"github.com/rahulraj-lab/Focus-flow/internal/tui/components/inbox"
	"github.com/rahulraj-lab/Focus-flow/internal/tui/components/timeline"
)

// number of tabs; the tab states come first in constants.SessionState
const tabCount = 4

// historyLimit caps the days shown on the History tab.
const historyLimit = 14

var tabTitles = []string{"Timeline", "Pending", "History", "Inbox"}

type refreshMsg struct{}

type errMsg struct{ err error }

type Model struct {
	planner       *planner.Planner
	now           func() time.Time
	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model
	timeline      timeline.Model
	pending       timeline.Model
	inbox         inbox.Model
	history       []models.DayPerformance
	form          *huh.Form
	blockForm     *BlockFormModel
	editing       models.MergedRange
	confirmForm   *ConfirmationFormModel
	pendingAction func() tea.Cmd
	err           string
	quitting      bool
	width         int
	height        int
}

// NewModel builds the interactive model over an opened planner.
func NewModel(p *planner.Planner, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	pending := timeline.New(0, 0)
	pending.SetEmptyText("Nothing pending. Nice work.")

	m := Model{
		planner:  p,
		now:      now,
		state:    constants.StateTimeline,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		timeline: timeline.New(0, 0),
		pending:  pending,
		inbox:    inbox.New(p.Notifications(), 0, 0),
	}
	m.refresh()
	if m.isToday() {
		m.timeline.SelectHour(now().Hour())
	}
	return m
}

// refresh re-reads every view from the planner.
func (m *Model) refresh() {
	m.timeline.SetRanges(m.planner.Merged())
	m.pending.SetRanges(m.planner.Pending())
	m.inbox.SetNotifications(m.planner.Notifications())

	hist, err := m.planner.History()
	if err != nil {
		logger.Warn("Failed to load history", "error", err)
		m.history = nil
		return
	}
	m.history = history.Recent(hist, historyLimit)
}

func (m Model) isToday() bool {
	return m.planner.DateKey() == m.now().Format(constants.DateFormat)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateTimeline, constants.StatePending:
		keys = append(keys, m.keys.Edit, m.keys.Toggle, m.keys.PrevDay, m.keys.NextDay)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.PrevDay, m.keys.NextDay, m.keys.Today}

	var actions []key.Binding
	switch m.state {
	case constants.StateTimeline:
		actions = []key.Binding{m.keys.Edit, m.keys.Toggle, m.keys.Clear, m.keys.Grow, m.keys.Shrink, m.keys.DeleteDay}
	case constants.StatePending:
		actions = []key.Binding{m.keys.Edit, m.keys.Toggle}
	case constants.StateInbox:
		actions = []key.Binding{inbox.DefaultKeyMap().MarkRead, inbox.DefaultKeyMap().Remove}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the full-screen program and blocks until it exits.
func Run(p *planner.Planner, now func() time.Time) error {
	_, err := tea.NewProgram(NewModel(p, now), tea.WithAltScreen()).Run()
	return err
}
