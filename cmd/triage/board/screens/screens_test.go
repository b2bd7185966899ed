package screens

import (
	"strings"
	"testing"

	"github.com/mrsinham/triage/cmd/triage/board/components"
	"github.com/mrsinham/triage/internal/triage"
)

func TestValidateArrival(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"1", false},
		{" 42 ", false},
		{"0", true},
		{"-3", true},
		{"abc", true},
		{"", true},
	}

	for _, tt := range tests {
		err := validateArrival(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateArrival(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidatePatientName(t *testing.T) {
	if err := validatePatientName("   "); err == nil {
		t.Error("blank name should be rejected")
	}
	if err := validatePatientName("Mary Ann"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSeverityOptions(t *testing.T) {
	opts := severityOptions()
	if len(opts) != 4 {
		t.Fatalf("expected 4 options, got %d", len(opts))
	}
	if opts[0].Value != "immediate" || opts[3].Value != "minimal" {
		t.Errorf("options not in severity order: %v", opts)
	}
}

func TestNewChangeScreen_Prefill(t *testing.T) {
	s := NewChangeScreen(7, triage.Minimal)
	if s.Arrival() != 7 || s.Severity() != "minimal" {
		t.Errorf("prefill = (%d, %s), want (7, minimal)", s.Arrival(), s.Severity())
	}

	empty := NewChangeScreen(0, 0)
	if empty.Arrival() != 0 || empty.Severity() != "urgent" {
		t.Errorf("empty prefill = (%d, %s), want (0, urgent)", empty.Arrival(), empty.Severity())
	}
	if empty.FocusedField() != "arrival" {
		t.Errorf("help panel should describe the first field, got %q", empty.FocusedField())
	}
}

func TestNewPathScreen(t *testing.T) {
	load := NewPathScreen(PathLoad, " night.txt ")
	if load.Mode() != PathLoad || load.Path() != "night.txt" {
		t.Errorf("load screen = (%d, %q)", load.Mode(), load.Path())
	}
	if !strings.Contains(load.View(), "LOAD COMMAND FILE") {
		t.Error("load screen should be titled for loading")
	}

	save := NewPathScreen(PathSave, "")
	if save.FocusedField() != "save_path" {
		t.Errorf("save screen field = %q", save.FocusedField())
	}
}

func TestQueueScreen_Rows(t *testing.T) {
	q := triage.New()
	q.Admit("minimal", "Dan")
	q.Admit("immediate", "Bob")

	s := NewQueueScreen(q, components.DefaultKeyMap(), 10)
	rows := s.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "2" || rows[0][1] != "immediate" || rows[0][2] != "Bob" {
		t.Errorf("first row = %v", rows[0])
	}
	if arrival, ok := s.SelectedArrival(); !ok || arrival != 2 {
		t.Errorf("SelectedArrival = (%d, %v)", arrival, ok)
	}
	if !strings.Contains(s.View(), "2 patients waiting, next up: Bob (immediate)") {
		t.Errorf("header missing from view:\n%s", s.View())
	}

	q.Remove()
	q.Remove()
	s.Refresh()
	if _, ok := s.SelectedArrival(); ok {
		t.Error("empty list should have no selection")
	}
	if !strings.Contains(s.View(), "No patients waiting") {
		t.Error("empty header missing")
	}
}
