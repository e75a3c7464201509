package main

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"trackforge/internal/fileutil"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeOutput sends generated text to stdout, or to path when one is given.
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	path = strings.TrimSpace(path)
	if path == "" || path == "-" {
		return write(cmd.OutOrStdout())
	}
	return fileutil.WriteAtomic(path, 0o644, write)
}
