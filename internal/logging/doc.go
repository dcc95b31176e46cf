// Package logging assembles the structured slog loggers used across tareval.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// exposes attribute helpers so components emit log lines with a consistent
// shape. A no-op logger is provided for tests and wiring code that cannot
// fail. Loggers are always constructed here and passed in explicitly; no
// package configures process-global logging state.
package logging
