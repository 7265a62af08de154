package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/rahulraj-lab/Focus-flow/internal/constants"
	"github.com/rahulraj-lab/Focus-flow/internal/models"
	"github.com/rahulraj-lab/Focus-flow/internal/schedule"
	"github.com/rahulraj-lab/Focus-flow/internal/tui/components/inbox"
)

var errEmptyBlock = errors.New("block has no task")

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = ws.Width
		m.height = ws.Height
		m.help.Width = ws.Width
		m.resize()
	}

	switch m.state {
	case constants.StateEditing:
		return m.updateEditing(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirm(msg)
	}

	switch msg := msg.(type) {
	case refreshMsg:
		m.refresh()
		return m, nil

	case errMsg:
		m.err = msg.err.Error()
		m.refresh()
		return m, nil

	case constants.ConfirmationMsg:
		m.confirmForm = &ConfirmationFormModel{Message: msg.Message}
		m.pendingAction = msg.Action
		m.form = NewConfirmationForm(m.confirmForm)
		m.previousState = m.state
		m.state = constants.StateConfirmDelete
		return m, m.form.Init()

	case inbox.MarkReadMsg:
		m.setErr(m.planner.MarkRead(msg.ID))
		m.refresh()
		return m, nil

	case inbox.RemoveMsg:
		_, err := m.planner.RemoveNotification(msg.ID)
		m.setErr(err)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		m.err = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		}

		switch m.state {
		case constants.StateTimeline, constants.StatePending:
			return m.updateSchedule(msg)
		case constants.StateInbox:
			var cmd tea.Cmd
			m.inbox, cmd = m.inbox.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m *Model) resize() {
	// tabs, header, status and help take the remaining rows
	h := m.height - 8
	if h < 1 {
		h = 1
	}
	w := m.width - 4
	if w < 1 {
		w = 1
	}
	m.timeline.SetSize(w, h)
	m.pending.SetSize(w, h)
	m.inbox.SetSize(w, h)
}

func (m *Model) setErr(err error) {
	if err != nil {
		m.err = err.Error()
	}
}

// selected returns the block under the cursor of the active schedule view.
func (m Model) selected() (models.MergedRange, bool) {
	if m.state == constants.StatePending {
		return m.pending.Selected()
	}
	return m.timeline.Selected()
}

func (m Model) updateSchedule(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PrevDay):
		m.setErr(m.planner.View(m.planner.Date().AddDate(0, 0, -1)))
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.NextDay):
		m.setErr(m.planner.View(m.planner.Date().AddDate(0, 0, 1)))
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Today):
		m.setErr(m.planner.View(m.now()))
		m.refresh()
		m.timeline.SelectHour(m.now().Hour())
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		r, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.editing = r
		m.blockForm = newBlockFormModel(r)
		m.form = NewBlockForm(m.blockForm)
		m.previousState = m.state
		m.state = constants.StateEditing
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Toggle):
		r, ok := m.selected()
		if !ok {
			return m, nil
		}
		if !r.Occupied() {
			m.setErr(errEmptyBlock)
			return m, nil
		}
		m.setErr(m.planner.ToggleComplete(r.StartHour, r.EndHour))
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		r, ok := m.selected()
		if !ok || !r.Occupied() {
			return m, nil
		}
		m.setErr(m.planner.ClearRange(r.StartHour, r.EndHour))
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Grow), key.Matches(msg, m.keys.Shrink):
		r, ok := m.selected()
		if !ok || !r.Occupied() {
			return m, nil
		}
		hours := r.Hours() + 1
		if key.Matches(msg, m.keys.Shrink) {
			hours = r.Hours() - 1
		}
		if hours < 1 {
			return m, nil
		}
		m.setErr(m.planner.ResizeRange(r.StartHour, r.EndHour, hours))
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.DeleteDay):
		date := m.planner.DateKey()
		p := m.planner
		return m, func() tea.Msg {
			return constants.ConfirmationMsg{
				Message: fmt.Sprintf("Delete all entries for %s?", date),
				Action: func() tea.Cmd {
					if err := p.DeleteDay(date); err != nil {
						return func() tea.Msg { return errMsg{err} }
					}
					return func() tea.Msg { return refreshMsg{} }
				},
			}
		}
	}

	var cmd tea.Cmd
	if m.state == constants.StatePending {
		m.pending, cmd = m.pending.Update(msg)
	} else {
		m.timeline, cmd = m.timeline.Update(msg)
	}
	return m, cmd
}

func (m Model) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.setErr(m.applyBlockForm())
		m.refresh()
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, cmd
}

// applyBlockForm writes the edited block. An empty task clears the range.
func (m *Model) applyBlockForm() error {
	start, end, err := m.blockForm.Range()
	if err != nil {
		return err
	}
	task := strings.TrimSpace(m.blockForm.Task)
	if task == "" {
		return m.planner.ClearRange(start, end)
	}
	notes := strings.TrimSpace(m.blockForm.Notes)
	rec := m.blockForm.Recurrence
	return m.planner.UpdateRange(schedule.Patch{Task: &task, Notes: &notes, Recurrence: &rec}, start, end)
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.pendingAction = nil
		m.state = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if m.confirmForm.Confirmed && m.pendingAction != nil {
			cmds = append(cmds, m.pendingAction())
		}
		m.pendingAction = nil
		m.state = m.previousState
	case huh.StateAborted:
		m.pendingAction = nil
		m.state = m.previousState
	}
	return m, tea.Batch(cmds...)
}
