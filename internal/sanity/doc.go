// Package sanity enforces the metadata policy applied to tracks and albums.
//
// Violations come in two severities. A failure (a missing required tag, or an
// album without a single correctly numbered track) aborts the operation and is
// returned as an error. Everything else is a Warning: it is returned to the
// caller and, when the checker has warnings enabled, logged at WARN level.
// Warnings never change the data being checked.
package sanity
