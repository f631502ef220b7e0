// Package logging assembles the structured slog loggers used across dcpforge.
//
// It owns the console/JSON handler plumbing, level parsing, and typed attr
// helpers so every component emits diagnostics with the same shape. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
//
// Prefer these constructors over hand-rolled slog setup.
package logging
