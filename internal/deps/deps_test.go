package deps

import (
	"os"
	"path/filepath"
	"testing"

	"trackforge/internal/config"
	"trackforge/internal/testsupport"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Blank", Command: "  "},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[0].Path != present {
		t.Fatalf("expected resolved path %q, got %q", present, results[0].Path)
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}

	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}
	if results[1].Command != "clearly-not-present-binary" {
		t.Fatalf("unexpected command recorded: %s", results[1].Command)
	}

	if results[2].Detail != "command not configured" {
		t.Fatalf("unexpected detail for blank command: %q", results[2].Detail)
	}
}

func TestRequirementsFollowConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Tools.FLAC = "flac-1.4"
	cfg.Tools.Oggenc = "oggenc2"

	reqs := Requirements(&cfg)
	if len(reqs) != 3 {
		t.Fatalf("expected 3 requirements, got %d", len(reqs))
	}
	if reqs[0].Command != "flac-1.4" || reqs[1].Command != "metaflac" || reqs[2].Command != "oggenc2" {
		t.Fatalf("unexpected commands: %#v", reqs)
	}
	if !reqs[2].Optional {
		t.Fatalf("expected oggenc to be optional")
	}

	if got := Requirements(nil)[0].Command; got != "flac" {
		t.Fatalf("expected default flac command, got %q", got)
	}
}

func TestMissingSkipsOptional(t *testing.T) {
	statuses := []Status{
		{Name: "FLAC", Available: true},
		{Name: "metaflac", Available: false},
		{Name: "oggenc", Available: false, Optional: true},
	}
	missing := Missing(statuses)
	if len(missing) != 1 || missing[0].Name != "metaflac" {
		t.Fatalf("unexpected missing list: %#v", missing)
	}
}

func TestStubbedToolsAreAvailable(t *testing.T) {
	cfg := testsupport.NewConfig(t,
		testsupport.WithTools("flac-test", "metaflac-test", "oggenc-test"),
		testsupport.WithStubbedBinaries(),
	)

	statuses := CheckBinaries(Requirements(cfg))
	for _, status := range statuses {
		if !status.Available {
			t.Fatalf("expected %s to be available, got %#v", status.Command, status)
		}
	}
	if missing := Missing(statuses); len(missing) != 0 {
		t.Fatalf("unexpected missing dependencies: %#v", missing)
	}
}
