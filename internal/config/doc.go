// Package config loads, normalizes, and validates trackforge configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), and
// reads TOML files from an explicit path, ~/.config/trackforge/config.toml, or
// ./trackforge.toml in that order. Command-line flags layer on top of the
// values loaded here.
package config
