package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "bogus", ""} {
		if l := New(level); l == nil || l.Logger == nil {
			t.Fatalf("New(%q) returned nil logger", level)
		}
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("info", "json", &buf)
	l.Info("booking received", "date", "2025-06-02")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if record["msg"] != "booking received" {
		t.Errorf("expected msg %q, got %v", "booking received", record["msg"])
	}
	if record["date"] != "2025-06-02" {
		t.Errorf("expected date attribute, got %v", record["date"])
	}
}

func TestTextOutput(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("debug", "text", &buf)
	l.Debug("slot filter", "count", 9)

	if !strings.Contains(buf.String(), "slot filter") {
		t.Errorf("expected text output to contain message, got %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("error", "json", &buf)
	l.Info("should be dropped")

	if buf.Len() != 0 {
		t.Errorf("info record emitted at error level: %q", buf.String())
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("info", "json", &buf).With("component", "pipeline")
	l.Info("submit")

	if !strings.Contains(buf.String(), `"component":"pipeline"`) {
		t.Errorf("expected component attribute, got %q", buf.String())
	}
}
