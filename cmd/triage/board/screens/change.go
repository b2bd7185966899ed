package screens

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mrsinham/triage/internal/triage"
)

// ChangeScreen re-triages a waiting patient identified by arrival number
type ChangeScreen struct {
	formScreen
	arrival  string
	severity string
}

// NewChangeScreen creates a new change form. A positive arrival pre-fills the
// form with the patient highlighted on the waiting list.
func NewChangeScreen(arrival int, current triage.Severity) *ChangeScreen {
	s := &ChangeScreen{severity: triage.Urgent.String()}
	if arrival > 0 {
		s.arrival = strconv.Itoa(arrival)
	}
	if current.Valid() {
		s.severity = current.String()
	}

	s.formScreen = newFormScreen("CHANGE PRIORITY", huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("arrival").
				Title("Arrival Number").
				Value(&s.arrival).
				Validate(validateArrival),

			huh.NewSelect[string]().
				Key("new_severity").
				Title("New Priority Code").
				Options(severityOptions()...).
				Value(&s.severity),
		),
	))
	return s
}

func validateArrival(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("arrival number must be a whole number")
	}
	if n <= 0 {
		return fmt.Errorf("arrival number must be > 0")
	}
	return nil
}

// Init implements tea.Model
func (s *ChangeScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *ChangeScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, s.update(msg)
}

// View implements tea.Model
func (s *ChangeScreen) View() string {
	return s.view()
}

// Arrival returns the entered arrival number, 0 when it does not parse
func (s *ChangeScreen) Arrival() int {
	n, err := strconv.Atoi(strings.TrimSpace(s.arrival))
	if err != nil {
		return 0
	}
	return n
}

// Severity returns the selected priority label
func (s *ChangeScreen) Severity() string { return s.severity }
