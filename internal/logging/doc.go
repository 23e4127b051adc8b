// Package logging assembles the structured slog loggers used by moviemanager.
//
// It owns the console and JSON handlers, level parsing, and a small set of
// attribute helpers so every component emits fields with the same keys. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
package logging
