// Package textutil sanitizes and escapes text destined for filenames,
// Makefile targets, and shell command arguments.
//
// SanitizeFileName derives portable output filenames from album and track
// metadata. EscapeMake protects spaces in target and prerequisite names.
// EscapeShellValue quotes tag values embedded in double-quoted echo
// substitutions inside Makefile recipes.
package textutil
