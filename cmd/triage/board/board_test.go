package board

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrsinham/triage/internal/config"
	"github.com/mrsinham/triage/internal/console"
	"github.com/mrsinham/triage/internal/triage"
)

func newTestBoard(t *testing.T, admitted ...[2]string) *Board {
	t.Helper()
	q := triage.New()
	for _, a := range admitted {
		if _, err := q.Admit(a[0], a[1]); err != nil {
			t.Fatalf("Admit(%q, %q) failed: %v", a[0], a[1], err)
		}
	}
	session := console.NewSession(q, &bytes.Buffer{}, console.WithPromptShown(false))
	return New(session, config.Default())
}

func press(b *Board, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = b.Update(msg)
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestBoard_KeyTransitions(t *testing.T) {
	tests := []struct {
		key  string
		want Phase
	}{
		{"a", PhaseAdmit},
		{"c", PhaseChange},
		{"l", PhaseLoad},
		{"s", PhaseSave},
		{"n", PhaseQueue},
		{"p", PhaseQueue},
		{"?", PhaseQueue},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			b := newTestBoard(t)
			press(b, tt.key)
			if b.Phase() != tt.want {
				t.Errorf("after %q phase = %d, want %d", tt.key, b.Phase(), tt.want)
			}

			press(b, "esc")
			if b.Phase() != PhaseQueue {
				t.Errorf("esc should return to the waiting list, phase = %d", b.Phase())
			}
		})
	}
}

func TestBoard_Quit(t *testing.T) {
	b := newTestBoard(t)
	if !isQuit(press(b, "q")) {
		t.Error("q on the waiting list should quit")
	}

	b = newTestBoard(t)
	if isQuit(press(b, "a", "q")) {
		t.Error("q inside the admit form is typed into the name, not a quit")
	}
	if !isQuit(press(b, "ctrl+c")) {
		t.Error("ctrl+c should quit from any screen")
	}
}

func TestBoard_NextOnEmptyQueue(t *testing.T) {
	b := newTestBoard(t)
	press(b, "n")

	status, failed := b.queueScreen.Status()
	if !failed || status != "Error: there are no patients waiting." {
		t.Errorf("status = %q (failed=%v)", status, failed)
	}
}

func TestBoard_NextCallsHighestPriority(t *testing.T) {
	b := newTestBoard(t, [2]string{"urgent", "Alice"}, [2]string{"immediate", "Bob"})
	press(b, "n")

	status, failed := b.queueScreen.Status()
	if failed || status != "This patient will now be seen: Bob (2nd to arrive)" {
		t.Errorf("status = %q (failed=%v)", status, failed)
	}
	rows := b.queueScreen.Rows()
	if len(rows) != 1 || rows[0][2] != "Alice" {
		t.Errorf("rows after next = %v", rows)
	}
}

func TestBoard_Peek(t *testing.T) {
	b := newTestBoard(t, [2]string{"minimal", "Dan"}, [2]string{"emergency", "Eve"})
	press(b, "p")

	status, _ := b.queueScreen.Status()
	if status != "Highest priority patient to be called next: Eve" {
		t.Errorf("status = %q", status)
	}
	if b.queue.Size() != 2 {
		t.Errorf("peek removed a patient, size = %d", b.queue.Size())
	}
}

func TestBoard_ChangePrefillsSelection(t *testing.T) {
	b := newTestBoard(t, [2]string{"minimal", "Dan"}, [2]string{"emergency", "Eve"})
	press(b, "c")

	if b.changeScreen.Arrival() != 2 {
		t.Errorf("expected highlighted arrival 2, got %d", b.changeScreen.Arrival())
	}
	if b.changeScreen.Severity() != "emergency" {
		t.Errorf("expected current severity emergency, got %s", b.changeScreen.Severity())
	}
}

func TestBoard_Actions(t *testing.T) {
	b := newTestBoard(t)

	b.admit("Alice Smith", "urgent")
	status, failed := b.queueScreen.Status()
	if failed || status != `Added patient "Alice Smith" to the priority system (arrival #1, urgent)` {
		t.Errorf("admit status = %q (failed=%v)", status, failed)
	}

	b.change(1, "immediate")
	status, failed = b.queueScreen.Status()
	if failed || status != "Changed patient Alice Smith's priority from urgent to immediate" {
		t.Errorf("change status = %q (failed=%v)", status, failed)
	}

	b.change(42, "minimal")
	status, failed = b.queueScreen.Status()
	if !failed || status != "Error: no patient with the given id was found." {
		t.Errorf("change of a missing patient: status = %q (failed=%v)", status, failed)
	}

	b.admit("Bob", "severe")
	if _, failed = b.queueScreen.Status(); !failed {
		t.Error("admit with an unknown priority should fail")
	}
	if b.queue.Size() != 1 {
		t.Errorf("expected 1 patient, got %d", b.queue.Size())
	}
}

func TestBoard_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waiting.txt")

	b := newTestBoard(t, [2]string{"urgent", "Alice"}, [2]string{"minimal", "Dan"})
	b.save(path)
	status, failed := b.queueScreen.Status()
	if failed || status != "Saved 2 patients to "+path {
		t.Errorf("save status = %q (failed=%v)", status, failed)
	}

	other := newTestBoard(t)
	other.load(path)
	status, failed = other.queueScreen.Status()
	if failed || status != "Loaded "+path+": 2 lines replayed, 0 errors" {
		t.Errorf("load status = %q (failed=%v)", status, failed)
	}
	other.backToQueue()
	if rows := other.queueScreen.Rows(); len(rows) != 2 || rows[0][2] != "Alice" {
		t.Errorf("rows after load = %v", rows)
	}
	if other.lastPath != path {
		t.Errorf("expected the path to be remembered, got %q", other.lastPath)
	}
}

func TestBoard_LoadMissingFile(t *testing.T) {
	b := newTestBoard(t)
	b.load(filepath.Join(t.TempDir(), "missing.txt"))

	status, failed := b.queueScreen.Status()
	if !failed || status != "Error: could not open file." {
		t.Errorf("status = %q (failed=%v)", status, failed)
	}
}

func TestBoard_HelpToggle(t *testing.T) {
	b := newTestBoard(t)
	press(b, "?")
	if !b.queueScreen.ShowingFullHelp() {
		t.Error("? should show the full key list")
	}
	if !strings.Contains(b.View(), "change priority") {
		t.Error("full help should list the change binding")
	}
	press(b, "?")
	if b.queueScreen.ShowingFullHelp() {
		t.Error("second ? should hide the full key list")
	}
}
