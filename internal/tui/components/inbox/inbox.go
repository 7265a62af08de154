package inbox

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rahulraj-lab/Focus-flow/internal/models"
)

type MarkReadMsg struct {
	ID string
}

type RemoveMsg struct {
	ID string
}

type Item struct {
	Notification models.Notification
}

func (i Item) Title() string {
	if !i.Notification.Read {
		return "● " + i.Notification.Title
	}
	return i.Notification.Title
}

func (i Item) Description() string {
	return fmt.Sprintf("%s | %s", i.Notification.Timestamp.Format("Jan 2 15:04"), i.Notification.Message)
}

func (i Item) FilterValue() string { return i.Notification.Title + " " + i.Notification.Message }

type KeyMap struct {
	MarkRead key.Binding
	Remove   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		MarkRead: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "mark read"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(notifications []models.Notification, width, height int) Model {
	l := list.New(items(notifications), list.NewDefaultDelegate(), width, height)
	l.Title = "Inbox"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.MarkRead, keys.Remove}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.MarkRead, keys.Remove}
	}

	return Model{list: l, keys: keys}
}

func items(notifications []models.Notification) []list.Item {
	out := make([]list.Item, len(notifications))
	for i, n := range notifications {
		out[i] = Item{Notification: n}
	}
	return out
}

func (m *Model) SetNotifications(notifications []models.Notification) {
	m.list.SetItems(items(notifications))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Len() int { return len(m.list.Items()) }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.MarkRead):
			if item, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return MarkReadMsg{ID: item.Notification.ID} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Remove):
			if item, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return RemoveMsg{ID: item.Notification.ID} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "No notifications."
	}
	return m.list.View()
}
