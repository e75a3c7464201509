package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"trackforge/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
}

// setupCLITestEnv moves the test into an empty directory with HOME pointing
// inside it, so relative track filenames and config lookups stay local.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Chdir(base)

	return &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "trackforge-test.toml"),
	}
}

func (e *cliTestEnv) writeConfig(t *testing.T, content string) {
	t.Helper()
	if err := os.WriteFile(e.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

// writeAlbumSources creates the two source files used by the document
// fixture below.
func writeAlbumSources(t *testing.T) {
	t.Helper()
	testsupport.WriteFLAC(t, filepath.Join("src", "01 intro.flac"),
		"TITLE=Intro", "ARTIST=Band", "ALBUM=Record", "TRACKNUMBER=1")
	testsupport.WriteFile(t, filepath.Join("src", "02.wav"), 128)
}

const albumDocument = `<?xml version="1.0"?>
<track_list>
  <global>
    <tag_list>
      <artist>Band</artist>
      <album>Record</album>
    </tag_list>
  </global>
  <track filename="src/01 intro.flac">
    <tag_list>
      <title>Intro</title>
      <tracknumber>1</tracknumber>
    </tag_list>
  </track>
  <track filename="src/02.wav">
    <tag_list>
      <title>Don't Stop (Live)</title>
      <tracknumber>2</tracknumber>
      <description>line1
line2</description>
    </tag_list>
  </track>
</track_list>
`

func writeDocument(t *testing.T, name, content string) string {
	t.Helper()
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatalf("write document: %v", err)
	}
	return name
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
