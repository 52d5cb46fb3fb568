package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func decodeLine(t *testing.T, line []byte) LogEntry {
	t.Helper()
	var entry LogEntry
	if err := json.Unmarshal(line, &entry); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", line, err)
	}
	return entry
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, WarnLevel)

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")
	logger.Error("kept too")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if e := decodeLine(t, []byte(lines[0])); e.Level != "WARN" || e.Message != "kept" {
		t.Errorf("first line = %+v, want WARN/kept", e)
	}
	if e := decodeLine(t, []byte(lines[1])); e.Level != "ERROR" {
		t.Errorf("second line level = %s, want ERROR", e.Level)
	}
}

func TestFieldsAppearInOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, DebugLevel)

	logger.Info("imported", Structure("design_0001"), Int("nodes", 42))

	entry := decodeLine(t, bytes.TrimSpace(buf.Bytes()))
	if entry.Fields["structure"] != "design_0001" {
		t.Errorf("structure field = %v", entry.Fields["structure"])
	}
	// JSON numbers decode as float64
	if entry.Fields["nodes"] != float64(42) {
		t.Errorf("nodes field = %v", entry.Fields["nodes"])
	}
}

func TestWithPresetsFields(t *testing.T) {
	var buf bytes.Buffer
	base := NewJSONLogger(&buf, InfoLevel)
	child := base.With(Component("importer"), Chain("A"))

	child.Info("row skipped", String("reason", "short_row"))

	entry := decodeLine(t, bytes.TrimSpace(buf.Bytes()))
	if entry.Fields["component"] != "importer" {
		t.Errorf("component = %v", entry.Fields["component"])
	}
	if entry.Fields["chain"] != "A" {
		t.Errorf("chain = %v", entry.Fields["chain"])
	}
	if entry.Fields["reason"] != "short_row" {
		t.Errorf("reason = %v", entry.Fields["reason"])
	}
}

func TestCallSiteFieldsOverridePresets(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel).With(String("stage", "parse"))

	logger.Info("done", String("stage", "layout"))

	entry := decodeLine(t, bytes.TrimSpace(buf.Bytes()))
	if entry.Fields["stage"] != "layout" {
		t.Errorf("stage = %v, want layout", entry.Fields["stage"])
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, ErrorLevel)

	logger.Info("dropped")
	logger.SetLevel(DebugLevel)
	logger.Debug("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if e := decodeLine(t, []byte(lines[0])); e.Message != "kept" {
		t.Errorf("message = %s", e.Message)
	}
	if logger.GetLevel() != DebugLevel {
		t.Errorf("GetLevel = %v, want DebugLevel", logger.GetLevel())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"DEBUG", DebugLevel},
		{"debug", DebugLevel},
		{"warn", WarnLevel},
		{"WARNING", WarnLevel},
		{"error", ErrorLevel},
		{"nonsense", InfoLevel},
		{"", InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Info("ignored", String("k", "v"))
	if logger.With(String("k", "v")) == nil {
		t.Error("With returned nil")
	}
}
