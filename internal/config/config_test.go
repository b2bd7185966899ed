package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadFromYAML_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "triage.yaml")

	content := `
prompt: "er> "
startup:
  - morning.txt
  - transfers.txt
save_on_quit: waiting.txt
log:
  level: debug
  json: true
board:
  height: 20
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadFromYAML(configPath)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}

	if cfg.Prompt != "er> " {
		t.Errorf("Expected prompt 'er> ', got %q", cfg.Prompt)
	}
	if !reflect.DeepEqual(cfg.Startup, []string{"morning.txt", "transfers.txt"}) {
		t.Errorf("Unexpected startup files: %v", cfg.Startup)
	}
	if cfg.SaveOnQuit != "waiting.txt" {
		t.Errorf("Expected save_on_quit waiting.txt, got %s", cfg.SaveOnQuit)
	}
	if cfg.Log.Level != "debug" || !cfg.Log.JSON {
		t.Errorf("Unexpected log config: %+v", cfg.Log)
	}
	if cfg.Board.Height != 20 {
		t.Errorf("Expected board height 20, got %d", cfg.Board.Height)
	}
}

func TestLoadFromYAML_KeepsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(configPath, []byte("save_on_quit: out.txt\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadFromYAML(configPath)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}

	want := Default()
	want.SaveOnQuit = "out.txt"
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("LoadFromYAML = %+v, want %+v", cfg, want)
	}
}

func TestLoadFromYAML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"malformed yaml", "prompt: [unterminated", "parsing config file"},
		{"unknown log level", "log:\n  level: loud\n", "unknown log level"},
		{"empty prompt", "prompt: \"\"\n", "prompt must not be empty"},
		{"zero board height", "board:\n  height: 0\n", "board height"},
		{"empty startup entry", "startup:\n  - \"\"\n", "startup entries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write test config: %v", err)
			}

			_, err := LoadFromYAML(configPath)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadFromYAML_FileNotFound(t *testing.T) {
	_, err := LoadFromYAML("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file, got nil")
	}
}

func TestSaveToYAML_RoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "saved.yaml")

	original := Default()
	original.Prompt = "ward-3> "
	original.Startup = []string{"night.txt"}
	original.Log.Level = "info"

	if err := SaveToYAML(original, configPath); err != nil {
		t.Fatalf("SaveToYAML failed: %v", err)
	}

	loaded, err := LoadFromYAML(configPath)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}
	if !reflect.DeepEqual(original, loaded) {
		t.Errorf("Round trip mismatch:\noriginal: %+v\nloaded:   %+v", original, loaded)
	}
}

func TestSaveToYAML_InvalidPath(t *testing.T) {
	err := SaveToYAML(Default(), "/nonexistent/deeply/nested/path/config.yaml")
	if err == nil {
		t.Error("Expected error for invalid path, got nil")
	}
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default config is invalid: %v", err)
	}
}

func TestNewLogger_Level(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "debug"

	log := cfg.NewLogger(os.Stderr)
	if !log.IsDebug() {
		t.Error("Expected debug logging to be enabled")
	}
	if log.Name() != "triage" {
		t.Errorf("Expected logger name triage, got %q", log.Name())
	}
}
