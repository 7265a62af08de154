package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/history"
	inboxlog "github.com/rahulraj-lab/Focus-flow/internal/inbox"
)

const barWidth = 20

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case constants.StateTimeline:
		content = m.viewSchedule(m.timeline.View())
	case constants.StatePending:
		content = m.viewSchedule(m.pending.View())
	case constants.StateHistory:
		content = docStyle.Render(m.viewHistory())
	case constants.StateInbox:
		content = docStyle.Render(m.inbox.View())
	case constants.StateEditing:
		content = lipgloss.JoinVertical(lipgloss.Left,
			headerStyle.Render("Editing "+m.editing.Label()),
			docStyle.Render(m.form.View()))
	case constants.StateConfirmDelete:
		content = docStyle.Render(m.form.View())
	}

	parts := []string{m.viewTabs(), content}
	if m.err != "" {
		parts = append(parts, dangerStyle.Render(m.err))
	}
	parts = append(parts, m.help.View(m))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	active := m.state
	if active >= tabCount {
		active = m.previousState
	}
	var tabs []string
	for i, title := range tabTitles {
		if title == "Inbox" {
			if unread := inboxlog.Unread(m.planner.Notifications()); unread > 0 {
				title = fmt.Sprintf("Inbox (%d)", unread)
			}
		}
		if active == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewSchedule(body string) string {
	date := m.planner.Date().Format("Monday, Jan 2 2006")
	if m.isToday() {
		date += " (today)"
	}
	perf := m.planner.Performance()
	header := headerStyle.Render(date)
	status := statusStyle.Render(fmt.Sprintf("%d%% complete, %d of %d tasks",
		perf.Percentage, perf.CompletedTasks, perf.TotalTasks))
	return lipgloss.JoinVertical(lipgloss.Left, header, status, docStyle.Render(body))
}

func (m Model) viewHistory() string {
	if len(m.history) == 0 {
		return "No history yet."
	}
	var b strings.Builder
	for _, perf := range m.history {
		filled := perf.Percentage * barWidth / 100
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		fmt.Fprintf(&b, "%s  %s %3d%%  (%d/%d)\n",
			perf.Date, bandStyles[history.BandFor(perf.Percentage)].Render(bar),
			perf.Percentage, perf.CompletedTasks, perf.TotalTasks)
	}
	return b.String()
}
