package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"moviemanager/internal/config"
)

const (
	outputStdout = "stdout"
	outputStderr = "stderr"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	// OutputPaths lists destinations: "stdout", "stderr", or file paths that
	// are appended to. Empty means stdout.
	OutputPaths []string
	// Color enables ANSI level colouring in the console format. It is ignored
	// when any output is a file.
	Color bool
	// Stdout replaces os.Stdout as the "stdout" destination.
	Stdout io.Writer
}

// New constructs a slog logger using the provided options.
func New(opts Options) (*slog.Logger, error) {
	level := parseLevel(opts.Level)
	levelVar := new(slog.LevelVar)
	levelVar.Set(level)

	paths := opts.OutputPaths
	if len(paths) == 0 {
		paths = []string{outputStdout}
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	writer, toFile, err := openOutputs(paths, stdout)
	if err != nil {
		return nil, err
	}

	addSource := level <= slog.LevelDebug

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "json":
		handler = newJSONHandler(writer, levelVar, addSource)
	case "console", "":
		handler = newPrettyHandler(writer, levelVar, addSource, opts.Color && !toFile)
	default:
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	return slog.New(handler), nil
}

// NewFromConfig creates a logger from the [logging] section. stdout is where
// the "stdout" output path writes.
func NewFromConfig(cfg *config.Config, stdout io.Writer, color bool) (*slog.Logger, error) {
	opts := Options{Level: "info", Format: "console", Color: color, Stdout: stdout}
	if cfg != nil {
		opts.Level = cfg.Logging.Level
		opts.Format = cfg.Logging.Format
		opts.OutputPaths = cfg.Logging.OutputPaths
	}
	return New(opts)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// openOutputs resolves paths to a single writer. The boolean reports whether
// any destination is a file.
func openOutputs(paths []string, stdout io.Writer) (io.Writer, bool, error) {
	var (
		writers []io.Writer
		seen    []string
		toFile  bool
	)
	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" || slices.Contains(seen, path) {
			continue
		}
		seen = append(seen, path)

		switch path {
		case outputStdout:
			writers = append(writers, stdout)
		case outputStderr:
			writers = append(writers, os.Stderr)
		default:
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, false, fmt.Errorf("create log directory: %w", err)
			}
			file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, false, fmt.Errorf("open log file %s: %w", path, err)
			}
			writers = append(writers, file)
			toFile = true
		}
	}

	switch len(writers) {
	case 0:
		return stdout, false, nil
	case 1:
		return writers[0], toFile, nil
	default:
		return io.MultiWriter(writers...), toFile, nil
	}
}
