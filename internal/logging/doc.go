// Package logging assembles structured slog loggers for trackforge.
//
// It owns the console and JSON handlers and level parsing, and provides a
// no-op logger for tests. Log output goes to stderr by default because stdout
// carries generated Makefile and XML text.
package logging
