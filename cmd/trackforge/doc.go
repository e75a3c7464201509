// Package main hosts the trackforge CLI.
//
// The Cobra command tree reads audio files or a track-list document, groups
// tracks into albums, and prints either a Makefile that archives or transcodes
// the albums or a track-list document for hand editing. Makefile and XML text
// go to stdout (or --output); logs and sanity warnings go to stderr.
package main
