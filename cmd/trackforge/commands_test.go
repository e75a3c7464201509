package main

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"trackforge/internal/failure"
	"trackforge/internal/testsupport"
)

func TestGenerateXMLAutoTrackNumbers(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFLAC(t, "b.flac", "TITLE=B1", "ARTIST=Beta", "ALBUM=Second")
	testsupport.WriteFLAC(t, "a1.flac", "TITLE=A1", "ARTIST=Alpha", "ALBUM=First")
	testsupport.WriteFLAC(t, "a2.flac", "TITLE=A2", "ARTIST=Alpha", "ALBUM=First")

	out, _, err := runCLI(t, []string{"generate-xml", "--auto-track-no", "a1.flac", "b.flac", "a2.flac"}, env.configPath)
	if err != nil {
		t.Fatalf("generate-xml: %v", err)
	}

	order := []string{`filename="a1.flac"`, `filename="a2.flac"`, `filename="b.flac"`}
	last := -1
	for _, marker := range order {
		idx := strings.Index(out, marker)
		if idx <= last {
			t.Fatalf("expected %s after previous track in\n%s", marker, out)
		}
		last = idx
	}
	if got := strings.Count(out, "<tracknumber>1</tracknumber>"); got != 2 {
		t.Fatalf("expected two first tracks, got %d in\n%s", got, out)
	}
	requireContains(t, out, "<tracknumber>2</tracknumber>")
}

func TestGenerateXMLNumbersSequentiallyWhenUngroupable(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFLAC(t, "x.flac", "TITLE=X")
	testsupport.WriteFile(t, "y.wav", 32)

	out, _, err := runCLI(t, []string{"generate-xml", "--auto-track-no", "--create-global", "x.flac", "y.wav"}, env.configPath)
	if err != nil {
		t.Fatalf("generate-xml: %v", err)
	}
	requireContains(t, out, "<global>\n    <tag_list></tag_list>\n  </global>")
	requireContains(t, out, "<TITLE>X</TITLE>\n      <tracknumber>1</tracknumber>")
	requireContains(t, out, "<tag_list>\n      <tracknumber>2</tracknumber>")
}

func TestGenerateXMLMissingFile(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"generate-xml", "absent.flac"}, env.configPath)
	if !errors.Is(err, failure.ErrAudioFile) {
		t.Fatalf("expected audio file error, got %v", err)
	}
}

func TestOggifyMakefile(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFLAC(t, filepath.Join("in", "1.flac"), "TITLE=One", "ARTIST=Band", "ALBUM=Record", "TRACKNUMBER=1")

	out, stderr, err := runCLI(t, []string{"oggify", filepath.Join("in", "1.flac")}, env.configPath)
	if err != nil {
		t.Fatalf("oggify: %v", err)
	}
	requireContains(t, out, "all: Band\\ -\\ Record Band\\ -\\ Record/1\\ -\\ One.ogg\n")
	requireContains(t, out, "\t@mkdir -p \"$@\"\n")
	requireContains(t, out, "oggenc --quiet --bitrate=128")
	if stderr != "" {
		t.Fatalf("expected no warnings for oggify, got %q", stderr)
	}
}

func TestAlbumsJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	writeAlbumSources(t)
	doc := writeDocument(t, "tracks.xml", albumDocument)
	env.writeConfig(t, "[sanity]\nwarnings = false\n")

	out, _, err := runCLI(t, []string{"albums", "--xml", doc, "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("albums: %v", err)
	}
	var albums []albumView
	if err := json.Unmarshal([]byte(out), &albums); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if len(albums) != 1 || albums[0].Name != "Band - Record" {
		t.Fatalf("unexpected albums: %#v", albums)
	}
	if len(albums[0].Tracks) != 2 || albums[0].Tracks[0].Kind != "flac" || albums[0].Tracks[1].Kind != "native" {
		t.Fatalf("unexpected tracks: %#v", albums[0].Tracks)
	}
}

func TestAlbumsTable(t *testing.T) {
	env := setupCLITestEnv(t)
	writeAlbumSources(t)

	out, _, err := runCLI(t, []string{"albums", "--simple-album", filepath.Join("src", "01 intro.flac")}, env.configPath)
	if err != nil {
		t.Fatalf("albums: %v", err)
	}
	requireContains(t, out, "Record")
	requireContains(t, out, "1 flac")
}

func TestAlbumsRequiresInput(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"albums"}, env.configPath); err == nil {
		t.Fatal("expected error without input")
	}
}

func TestDepsReportsStubbedTools(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.StubBinaries(t, filepath.Join(env.baseDir, "bin"), "flac", "metaflac")
	t.Setenv("PATH", filepath.Join(env.baseDir, "bin"))

	out, _, err := runCLI(t, []string{"deps", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("deps: %v", err)
	}
	var statuses []struct {
		Name      string `json:"name"`
		Available bool   `json:"available"`
	}
	if err := json.Unmarshal([]byte(out), &statuses); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if len(statuses) != 3 || !statuses[0].Available || !statuses[1].Available || statuses[2].Available {
		t.Fatalf("unexpected statuses: %#v", statuses)
	}
}

func TestDepsFailsWhenRequiredToolMissing(t *testing.T) {
	env := setupCLITestEnv(t)
	t.Setenv("PATH", env.baseDir)

	out, _, err := runCLI(t, []string{"deps"}, env.configPath)
	if err == nil {
		t.Fatal("expected error when flac is missing")
	}
	requireContains(t, out, "FLAC")
}

func TestLogLevelFlagValidated(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"--log-level", "loud", "deps"}, env.configPath)
	if !errors.Is(err, failure.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
