package timeline

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rahulraj-lab/Focus-flow/internal/models"
)

var (
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(16)

	taskStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Strikethrough(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238")).
			Italic(true)

	notesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

type KeyMap struct {
	Up   key.Binding
	Down key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
	}
}

// Model is a scrollable list of merged ranges with a cursor.
type Model struct {
	viewport viewport.Model
	keys     KeyMap
	ranges   []models.MergedRange
	cursor   int
	empty    string
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{
		viewport: viewport.New(width, height),
		keys:     DefaultKeyMap(),
		empty:    "Nothing scheduled.",
	}
}

// SetEmptyText sets the text shown when there are no ranges.
func (m *Model) SetEmptyText(s string) {
	m.empty = s
	m.Render()
}

// SetRanges replaces the rows and keeps the cursor in bounds.
func (m *Model) SetRanges(ranges []models.MergedRange) {
	m.ranges = ranges
	if m.cursor >= len(ranges) {
		m.cursor = len(ranges) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.Render()
}

// SelectHour moves the cursor to the range containing hour.
func (m *Model) SelectHour(hour int) {
	for i, r := range m.ranges {
		if r.Contains(hour) {
			m.cursor = i
			break
		}
	}
	m.Render()
}

// Selected returns the range under the cursor.
func (m Model) Selected() (models.MergedRange, bool) {
	if len(m.ranges) == 0 {
		return models.MergedRange{}, false
	}
	return m.ranges[m.cursor], true
}

func (m Model) Cursor() int { return m.cursor }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			m.Render()
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.ranges)-1 {
				m.cursor++
			}
			m.Render()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) Render() {
	if len(m.ranges) == 0 {
		m.viewport.SetContent(emptyStyle.Render(m.empty))
		return
	}

	var b strings.Builder
	for i, r := range m.ranges {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		b.WriteString(marker)
		b.WriteString(timeStyle.Render(r.Label()))
		b.WriteString(" ")
		b.WriteString(renderTask(r))
		b.WriteString("\n")
		if r.Notes != "" {
			b.WriteString(fmt.Sprintf("%s%s\n", strings.Repeat(" ", 19), notesStyle.Render(r.Notes)))
		}
	}
	m.viewport.SetContent(b.String())

	// keep the cursor row on screen
	if m.viewport.Height > 0 {
		line := m.lineOf(m.cursor)
		if line < m.viewport.YOffset {
			m.viewport.SetYOffset(line)
		} else if line >= m.viewport.YOffset+m.viewport.Height {
			m.viewport.SetYOffset(line - m.viewport.Height + 1)
		}
	}
}

func (m Model) lineOf(index int) int {
	line := 0
	for i := 0; i < index && i < len(m.ranges); i++ {
		line++
		if m.ranges[i].Notes != "" {
			line++
		}
	}
	return line
}

func renderTask(r models.MergedRange) string {
	if !r.Occupied() {
		return emptyStyle.Render("free")
	}
	text := r.Task
	if r.Recurrence != "" && r.Recurrence != models.RecurrenceNone {
		text += fmt.Sprintf(" (%s)", r.Recurrence)
	}
	if r.Completed {
		return doneStyle.Render("✓ " + text)
	}
	return taskStyle.Render(text)
}
