package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mrsinham/triage/internal/triage"
)

// AdmitScreen collects the name and priority code of an arriving patient
type AdmitScreen struct {
	formScreen
	name     string
	severity string
}

// NewAdmitScreen creates a new admission form
func NewAdmitScreen() *AdmitScreen {
	s := &AdmitScreen{severity: triage.Urgent.String()}

	s.formScreen = newFormScreen("ADMIT PATIENT", huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Patient Name").
				Description("Full legal name").
				Value(&s.name).
				Validate(validatePatientName),

			huh.NewSelect[string]().
				Key("severity").
				Title("Priority Code").
				Options(severityOptions()...).
				Value(&s.severity),
		),
	))
	return s
}

func severityOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(triage.AllSeverities()))
	for _, sev := range triage.AllSeverities() {
		opts = append(opts, huh.NewOption(sev.String(), sev.String()))
	}
	return opts
}

func validatePatientName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("patient name is required")
	}
	return nil
}

// Init implements tea.Model
func (s *AdmitScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *AdmitScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, s.update(msg)
}

// View implements tea.Model
func (s *AdmitScreen) View() string {
	return s.view()
}

// Name returns the trimmed patient name
func (s *AdmitScreen) Name() string { return strings.TrimSpace(s.name) }

// Severity returns the selected priority label
func (s *AdmitScreen) Severity() string { return s.severity }
