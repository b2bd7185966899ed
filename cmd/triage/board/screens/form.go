package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/triage/cmd/triage/board/components"
)

// formScreen holds what the form screens share: a huh form, the help panel
// following the focused field, and the done/cancelled flags.
type formScreen struct {
	title     string
	form      *huh.Form
	helpPanel *components.HelpPanel
	done      bool
	cancelled bool
}

func newFormScreen(title string, form *huh.Form) formScreen {
	fs := formScreen{
		title:     title,
		form:      form.WithShowHelp(false).WithShowErrors(true),
		helpPanel: components.NewHelpPanel(),
	}
	if focused := fs.form.GetFocusedField(); focused != nil {
		fs.helpPanel.SetField(focused.GetKey())
	}
	return fs
}

func (fs *formScreen) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" {
			fs.cancelled = true
			return nil
		}
	case tea.WindowSizeMsg:
		fs.helpPanel.SetWidth(msg.Width / 2)
	}

	form, cmd := fs.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		fs.form = f
	}

	if focused := fs.form.GetFocusedField(); focused != nil {
		fs.helpPanel.SetField(focused.GetKey())
	}

	switch fs.form.State {
	case huh.StateCompleted:
		fs.done = true
	case huh.StateAborted:
		fs.cancelled = true
	}
	return cmd
}

func (fs *formScreen) view() string {
	if fs.cancelled {
		return "Cancelled.\n"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render(fs.title),
		fs.form.View(),
		"",
		fs.helpPanel.View(),
		"",
		"Tab: Next field | Enter: Submit | Esc: Back to list",
	)
}

// Done returns true if the form was completed
func (fs *formScreen) Done() bool { return fs.done }

// Cancelled returns true if the user went back without submitting
func (fs *formScreen) Cancelled() bool { return fs.cancelled }

// FocusedField returns the key of the field the help panel describes
func (fs *formScreen) FocusedField() string { return fs.helpPanel.Field() }
