package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"moviemanager/internal/config"
	"moviemanager/internal/logging"
)

func TestNewFromConfigWritesStdoutAndFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "moviemanager.log")
	cfg := config.Default()
	cfg.Logging.OutputPaths = []string{"stdout", logPath}

	var stdout bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, &stdout, true)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Warn("renamed entry", logging.String("to", "Alien (1979).mkv"))

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	for name, got := range map[string]string{"stdout": stdout.String(), "file": string(content)} {
		if !strings.Contains(got, `WARN renamed entry to="Alien (1979).mkv"`) {
			t.Fatalf("%s output missing record: %q", name, got)
		}
	}
	if strings.Contains(string(content), "\x1b[") {
		t.Fatalf("expected no ANSI codes when logging to a file, got %q", content)
	}
}

func TestNewFromConfigDefaultsToStdout(t *testing.T) {
	cfg := config.Default()
	var stdout bytes.Buffer
	logger, err := logging.NewFromConfig(&cfg, &stdout, false)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("scanning directory")
	if !strings.Contains(stdout.String(), "INFO scanning directory") {
		t.Fatalf("expected record on stdout, got %q", stdout.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml", Stdout: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "console-info.log")

	logger, err := logging.New(logging.Options{
		Format:      "console",
		Level:       "info",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message without caller")

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(content), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", Stdout: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("message with caller")

	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Fatalf("expected caller information in debug logs, got %q", buf.String())
	}
}

func TestConsoleLoggerFormatsComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Stdout: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger = logging.NewComponentLogger(logger, "organizer").With(logging.String(logging.FieldRunID, "abc"))
	logger.Info("renamed entry", logging.String("from", "Metropolis.mkv"), logging.String("to", "Metropolis (1927).mkv"))

	line := buf.String()
	if !strings.Contains(line, "INFO organizer: renamed entry") {
		t.Fatalf("expected component prefix, got %q", line)
	}
	if !strings.Contains(line, `to="Metropolis (1927).mkv"`) {
		t.Fatalf("expected quoted value, got %q", line)
	}
	if strings.Contains(line, "run_id") {
		t.Fatalf("expected run_id to be hidden in console output, got %q", line)
	}
	if strings.Contains(line, "\x1b[") {
		t.Fatalf("expected no ANSI codes without color, got %q", line)
	}
}

func TestConsoleLoggerColor(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Stdout: &buf, Color: true})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Warn("careful")
	if !strings.Contains(buf.String(), "\x1b[33mWARN\x1b[0m") {
		t.Fatalf("expected coloured level, got %q", buf.String())
	}
}

func TestJSONLoggerKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Stdout: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hello", logging.String(logging.FieldRunID, "run-1"))

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("decode json log: %v (%q)", err, buf.String())
	}
	if payload["level"] != "info" {
		t.Fatalf("expected lowercase level, got %v", payload["level"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", payload)
	}
	if payload[logging.FieldRunID] != "run-1" {
		t.Fatalf("expected run_id field, got %v", payload)
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Stdout: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.WarnWithContext(logger, "lookup failed", "lookup_failed", logging.Error(errors.New("boom")))

	line := buf.String()
	for _, want := range []string{"event_type=lookup_failed", "error_hint=", "impact=", "error=boom"} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in %q", want, line)
		}
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(t.Context(), 0) {
		t.Fatal("expected nop logger to be disabled")
	}
	logging.WarnWithContext(nil, "ignored", "noop")
}
