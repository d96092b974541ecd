package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: INFO, Format: TextFormat, Output: &buf, Component: "reports"})

	l.Info("dashboard written", map[string]interface{}{"bytes": 1024})

	out := buf.String()
	if !strings.Contains(out, "INFO") {
		t.Errorf("expected level in output, got %q", out)
	}
	if !strings.Contains(out, "[reports]") {
		t.Errorf("expected component in output, got %q", out)
	}
	if !strings.Contains(out, "bytes=1024") {
		t.Errorf("expected fields in output, got %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: DEBUG, Format: JSONFormat, Output: &buf})

	l.Debug("building charts")

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry.Level != "DEBUG" {
		t.Errorf("expected DEBUG level, got %s", entry.Level)
	}
	if entry.Message != "building charts" {
		t.Errorf("unexpected message %q", entry.Message)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: WARN, Format: TextFormat, Output: &buf})

	l.Info("should be suppressed")
	if buf.Len() != 0 {
		t.Errorf("INFO below WARN threshold should not be written, got %q", buf.String())
	}

	l.Warn("should appear")
	if buf.Len() == 0 {
		t.Error("WARN at threshold should be written")
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	base := New(Config{Level: INFO, Format: TextFormat, Output: &buf})
	child := base.WithComponent("slides")

	child.Info("deck built")
	if !strings.Contains(buf.String(), "[slides]") {
		t.Errorf("expected child component in output, got %q", buf.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	if parseLogLevel("debug") != DEBUG {
		t.Error("lowercase debug should parse")
	}
	if parseLogLevel("WARNING") != WARN {
		t.Error("WARNING alias should parse")
	}
	if parseLogLevel("bogus") != -1 {
		t.Error("unknown level should return -1")
	}
}
