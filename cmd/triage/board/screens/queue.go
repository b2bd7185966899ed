package screens

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize/english"
	"github.com/mrsinham/triage/cmd/triage/board/components"
	"github.com/mrsinham/triage/internal/triage"
)

// QueueScreen shows the waiting list in heap order with a status line
type QueueScreen struct {
	queue  *triage.Queue
	keys   components.KeyMap
	table  table.Model
	help   help.Model
	status string
	failed bool
	width  int
}

// NewQueueScreen creates the waiting list view over q
func NewQueueScreen(q *triage.Queue, keys components.KeyMap, height int) *QueueScreen {
	columns := []table.Column{
		{Title: "Arrival", Width: 8},
		{Title: "Priority", Width: 11},
		{Title: "Patient", Width: 32},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("63"))
	t.SetStyles(styles)

	s := &QueueScreen{
		queue: q,
		keys:  keys,
		table: t,
		help:  help.New(),
	}
	s.Refresh()
	return s
}

// Refresh rebuilds the table rows from the queue
func (s *QueueScreen) Refresh() {
	rows := make([]table.Row, 0, s.queue.Size())
	for p := range s.queue.All() {
		rows = append(rows, table.Row{
			strconv.Itoa(p.Arrival()),
			p.DisplaySeverity(),
			p.Name(),
		})
	}
	s.table.SetRows(rows)
	// an emptied table leaves the cursor at -1
	if s.table.Cursor() < 0 && len(rows) > 0 {
		s.table.SetCursor(0)
	}
}

// SetStatus replaces the status line
func (s *QueueScreen) SetStatus(text string, failed bool) {
	s.status = text
	s.failed = failed
}

// Status returns the status line and whether it reports a failure
func (s *QueueScreen) Status() (string, bool) {
	return s.status, s.failed
}

// Rows returns the rendered rows, first row called next
func (s *QueueScreen) Rows() []table.Row {
	return s.table.Rows()
}

// SelectedArrival returns the arrival number of the highlighted row
func (s *QueueScreen) SelectedArrival() (int, bool) {
	row := s.table.SelectedRow()
	if row == nil {
		return 0, false
	}
	arrival, err := strconv.Atoi(row[0])
	return arrival, err == nil
}

// ShowingFullHelp reports whether the full key list is displayed
func (s *QueueScreen) ShowingFullHelp() bool {
	return s.help.ShowAll
}

// Init implements tea.Model
func (s *QueueScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Board actions are handled by the caller,
// only navigation and the help toggle reach the screen.
func (s *QueueScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.help.Width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, s.keys.Help) {
			s.help.ShowAll = !s.help.ShowAll
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd
}

// View implements tea.Model
func (s *QueueScreen) View() string {
	title := components.TitleStyle.Render("EMERGENCY ROOM TRIAGE")
	subtitle := components.SubtitleStyle.Render(s.header())

	status := ""
	if s.status != "" {
		style := components.StatusStyle
		if s.failed {
			style = components.ErrorStyle
		}
		status = style.Render(s.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		s.table.View(),
		"",
		status,
		"",
		s.help.View(s.keys),
	)
}

func (s *QueueScreen) header() string {
	n := s.queue.Size()
	if n == 0 {
		return "No patients waiting"
	}
	next, err := s.queue.Peek()
	if err != nil {
		return english.Plural(n, "patient", "") + " waiting"
	}
	return fmt.Sprintf("%s waiting, next up: %s (%s)",
		english.Plural(n, "patient", ""), next.Name(), next.DisplaySeverity())
}
