// Package tags models textual audio metadata.
//
// A Tag is an immutable name/value pair. A Table groups tags by name, treating
// names case-insensitively, and keeps every value added under a name in
// insertion order so duplicates stay observable to the sanity checks.
package tags
