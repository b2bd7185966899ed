package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// PathMode tells a PathScreen what the path is for
type PathMode int

const (
	PathLoad PathMode = iota
	PathSave
)

// PathScreen asks for a command file to load or save
type PathScreen struct {
	formScreen
	mode PathMode
	path string
}

// NewPathScreen creates a new path form pre-filled with initial
func NewPathScreen(mode PathMode, initial string) *PathScreen {
	s := &PathScreen{mode: mode, path: initial}

	title, fieldKey, fieldTitle := "LOAD COMMAND FILE", "load_path", "File to replay"
	if mode == PathSave {
		title, fieldKey, fieldTitle = "SAVE WAITING LIST", "save_path", "File to write"
	}

	s.formScreen = newFormScreen(title, huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key(fieldKey).
				Title(fieldTitle).
				Value(&s.path).
				Validate(func(str string) error {
					if strings.TrimSpace(str) == "" {
						return fmt.Errorf("path is required")
					}
					return nil
				}),
		),
	))
	return s
}

// Init implements tea.Model
func (s *PathScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *PathScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, s.update(msg)
}

// View implements tea.Model
func (s *PathScreen) View() string {
	return s.view()
}

// Mode returns what the path is for
func (s *PathScreen) Mode() PathMode { return s.mode }

// Path returns the trimmed path
func (s *PathScreen) Path() string { return strings.TrimSpace(s.path) }
