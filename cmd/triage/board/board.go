// Package board implements the full-screen waiting list shown by
// triage --interactive.
package board

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/hashicorp/go-hclog"

	"github.com/mrsinham/triage/cmd/triage/board/components"
	"github.com/mrsinham/triage/cmd/triage/board/screens"
	"github.com/mrsinham/triage/internal/config"
	"github.com/mrsinham/triage/internal/console"
	"github.com/mrsinham/triage/internal/triage"
)

// Phase represents the screen currently shown
type Phase int

const (
	PhaseQueue Phase = iota
	PhaseAdmit
	PhaseChange
	PhaseLoad
	PhaseSave
)

// Board is the bubbletea model driving the session's queue
type Board struct {
	session *console.Session
	queue   *triage.Queue
	log     hclog.Logger
	keys    components.KeyMap

	phase Phase

	queueScreen  *screens.QueueScreen
	admitScreen  *screens.AdmitScreen
	changeScreen *screens.ChangeScreen
	pathScreen   *screens.PathScreen

	// last file loaded or saved, offered again by the path form
	lastPath string

	width  int
	height int
}

// New creates a board over the session's queue
func New(session *console.Session, cfg *config.Config) *Board {
	keys := components.DefaultKeyMap()
	b := &Board{
		session:     session,
		queue:       session.Queue(),
		log:         session.Logger().Named("board"),
		keys:        keys,
		phase:       PhaseQueue,
		queueScreen: screens.NewQueueScreen(session.Queue(), keys, cfg.Board.Height),
		lastPath:    cfg.SaveOnQuit,
	}
	return b
}

// Phase returns the screen currently shown
func (b *Board) Phase() Phase {
	return b.phase
}

// Init implements tea.Model.
func (b *Board) Init() tea.Cmd {
	return b.queueScreen.Init()
}

// Update implements tea.Model.
func (b *Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return b, tea.Quit
		}
	}

	switch b.phase {
	case PhaseQueue:
		return b.updateQueue(msg)
	case PhaseAdmit:
		return b.updateAdmit(msg)
	case PhaseChange:
		return b.updateChange(msg)
	case PhaseLoad, PhaseSave:
		return b.updatePath(msg)
	}

	return b, nil
}

// View implements tea.Model.
func (b *Board) View() string {
	switch b.phase {
	case PhaseAdmit:
		return b.admitScreen.View()
	case PhaseChange:
		return b.changeScreen.View()
	case PhaseLoad, PhaseSave:
		return b.pathScreen.View()
	}
	return b.queueScreen.View()
}

// updateQueue handles the action keys of the waiting list.
func (b *Board) updateQueue(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, b.keys.Quit):
			return b, tea.Quit
		case key.Matches(km, b.keys.Admit):
			b.admitScreen = screens.NewAdmitScreen()
			return b.enter(PhaseAdmit, b.admitScreen)
		case key.Matches(km, b.keys.Change):
			arrival, current := b.selected()
			b.changeScreen = screens.NewChangeScreen(arrival, current)
			return b.enter(PhaseChange, b.changeScreen)
		case key.Matches(km, b.keys.Load):
			b.pathScreen = screens.NewPathScreen(screens.PathLoad, b.lastPath)
			return b.enter(PhaseLoad, b.pathScreen)
		case key.Matches(km, b.keys.Save):
			b.pathScreen = screens.NewPathScreen(screens.PathSave, b.lastPath)
			return b.enter(PhaseSave, b.pathScreen)
		case key.Matches(km, b.keys.Next):
			b.callNext()
			return b, nil
		case key.Matches(km, b.keys.Peek):
			b.peek()
			return b, nil
		}
	}

	model, cmd := b.queueScreen.Update(msg)
	if qs, ok := model.(*screens.QueueScreen); ok {
		b.queueScreen = qs
	}
	return b, cmd
}

// enter switches to a form screen, sizing it to the current window.
func (b *Board) enter(phase Phase, screen tea.Model) (tea.Model, tea.Cmd) {
	b.phase = phase
	if b.width > 0 {
		screen.Update(tea.WindowSizeMsg{Width: b.width, Height: b.height})
	}
	return b, screen.Init()
}

func (b *Board) backToQueue() (tea.Model, tea.Cmd) {
	b.phase = PhaseQueue
	b.admitScreen = nil
	b.changeScreen = nil
	b.pathScreen = nil
	b.queueScreen.Refresh()
	return b, nil
}

func (b *Board) updateAdmit(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := b.admitScreen.Update(msg)

	if b.admitScreen.Cancelled() {
		return b.backToQueue()
	}
	if b.admitScreen.Done() {
		b.admit(b.admitScreen.Name(), b.admitScreen.Severity())
		return b.backToQueue()
	}
	return b, cmd
}

func (b *Board) updateChange(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := b.changeScreen.Update(msg)

	if b.changeScreen.Cancelled() {
		return b.backToQueue()
	}
	if b.changeScreen.Done() {
		b.change(b.changeScreen.Arrival(), b.changeScreen.Severity())
		return b.backToQueue()
	}
	return b, cmd
}

func (b *Board) updatePath(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := b.pathScreen.Update(msg)

	if b.pathScreen.Cancelled() {
		return b.backToQueue()
	}
	if b.pathScreen.Done() {
		if b.pathScreen.Mode() == screens.PathSave {
			b.save(b.pathScreen.Path())
		} else {
			b.load(b.pathScreen.Path())
		}
		return b.backToQueue()
	}
	return b, cmd
}

// selected returns the highlighted patient, or zero values on an empty list.
func (b *Board) selected() (int, triage.Severity) {
	arrival, ok := b.queueScreen.SelectedArrival()
	if !ok {
		return 0, 0
	}
	for p := range b.queue.All() {
		if p.Arrival() == arrival {
			return arrival, p.Severity()
		}
	}
	return arrival, 0
}

func (b *Board) admit(name, label string) {
	p, err := b.queue.Admit(label, name)
	if err != nil {
		b.fail(err)
		return
	}
	b.log.Debug("patient admitted", "arrival", p.Arrival(), "severity", p.Severity())
	b.report("Added patient %q to the priority system (arrival #%d, %s)", p.Name(), p.Arrival(), p.DisplaySeverity())
}

func (b *Board) callNext() {
	p, err := b.queue.Remove()
	if err != nil {
		b.fail(err)
		return
	}
	b.queueScreen.Refresh()
	b.log.Debug("patient called", "arrival", p.Arrival(), "waiting", b.queue.Size())
	b.report("This patient will now be seen: %s (%s to arrive)", p.Name(), humanize.Ordinal(p.Arrival()))
}

func (b *Board) peek() {
	p, err := b.queue.Peek()
	if err != nil {
		b.fail(err)
		return
	}
	b.report("Highest priority patient to be called next: %s", p.Name())
}

func (b *Board) change(arrival int, label string) {
	c, err := b.queue.UpdatePriority(arrival, label)
	if err != nil {
		b.fail(err)
		return
	}
	b.log.Debug("priority changed", "arrival", c.Arrival, "from", c.From, "to", c.To)
	b.report("%s", c.String())
}

func (b *Board) load(path string) {
	b.lastPath = path
	res, err := b.session.Load(path)
	if err != nil {
		b.fail(err)
		return
	}
	b.report("Loaded %s: %s replayed, %s",
		path, english.Plural(res.Lines, "line", ""), english.Plural(res.Failed, "error", ""))
}

func (b *Board) save(path string) {
	b.lastPath = path
	n, err := b.session.Save(path)
	if err != nil {
		b.fail(err)
		return
	}
	b.report("Saved %s to %s", english.Plural(n, "patient", ""), path)
}

func (b *Board) report(format string, args ...any) {
	b.queueScreen.SetStatus(fmt.Sprintf(format, args...), false)
}

func (b *Board) fail(err error) {
	b.log.Debug("board action failed", "error", err)
	b.queueScreen.SetStatus(console.Message(err), true)
}

// Run shows the board until the operator quits. Output the session would
// print is discarded while the board owns the screen.
func Run(session *console.Session, cfg *config.Config) error {
	prev := session.SetOutput(io.Discard)
	defer session.SetOutput(prev)

	p := tea.NewProgram(New(session, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running board: %w", err)
	}
	return nil
}
