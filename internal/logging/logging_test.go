package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: LevelWarn, Output: &buf})

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Error("expected debug message to be filtered")
	}
	if strings.Contains(out, "info message") {
		t.Error("expected info message to be filtered")
	}
	if !strings.Contains(out, "warn message") {
		t.Error("expected warn message in output")
	}
	if !strings.Contains(out, "error message") {
		t.Error("expected error message in output")
	}
}

func TestPrefixAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: LevelDebug, Output: &buf, Prefix: "pyedit"})

	log.WithComponent("editor").Info("opened file")

	out := buf.String()
	if !strings.Contains(out, "pyedit") {
		t.Errorf("expected prefix in output, got %q", out)
	}
	if !strings.Contains(out, "component=editor") {
		t.Errorf("expected component field in output, got %q", out)
	}
	if !strings.Contains(out, "[INFO]") {
		t.Errorf("expected level tag in output, got %q", out)
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := New(Config{Level: LevelDebug, Output: &buf})
	_ = parent.WithField("request", 42)

	parent.Info("plain message")
	if strings.Contains(buf.String(), "request=42") {
		t.Error("expected parent logger to be unaffected by WithField")
	}
}

func TestFormatArgs(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: LevelDebug, Output: &buf})

	log.Info("loaded %d lines from %s", 12, "main.go")
	if !strings.Contains(buf.String(), "loaded 12 lines from main.go") {
		t.Errorf("expected formatted message, got %q", buf.String())
	}
}

func TestNullLoggerDiscards(t *testing.T) {
	// Must not panic even without an output writer.
	Null.Info("nothing to see")
	Null.WithComponent("test").Error("still nothing")
}
