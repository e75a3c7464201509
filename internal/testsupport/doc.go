// Package testsupport holds fixtures shared by package tests: default
// configs, stub tool binaries, and small FLAC files with chosen comments.
package testsupport
