package encoding

import (
	"fmt"
	"strings"

	"trackforge/internal/config"
	"trackforge/internal/textutil"
	"trackforge/internal/track"
)

// Tools names the programs invoked by generated recipes.
type Tools struct {
	FLAC       string
	Metaflac   string
	Oggenc     string
	OggBitrate int
}

// DefaultTools returns the stock program names and bitrate.
func DefaultTools() Tools {
	return Tools{FLAC: "flac", Metaflac: "metaflac", Oggenc: "oggenc", OggBitrate: 128}
}

// ToolsFromConfig reads the [tools] section.
func ToolsFromConfig(cfg *config.Config) Tools {
	if cfg == nil {
		return DefaultTools()
	}
	return Tools{
		FLAC:       cfg.Tools.FLAC,
		Metaflac:   cfg.Tools.Metaflac,
		Oggenc:     cfg.Tools.Oggenc,
		OggBitrate: cfg.Tools.OggBitrate,
	}.withDefaults()
}

func (t Tools) withDefaults() Tools {
	def := DefaultTools()
	if strings.TrimSpace(t.FLAC) == "" {
		t.FLAC = def.FLAC
	}
	if strings.TrimSpace(t.Metaflac) == "" {
		t.Metaflac = def.Metaflac
	}
	if strings.TrimSpace(t.Oggenc) == "" {
		t.Oggenc = def.Oggenc
	}
	if t.OggBitrate <= 0 {
		t.OggBitrate = def.OggBitrate
	}
	return t
}

// DecodeCommand writes the track's raw audio to stdout.
func (t Tools) DecodeCommand(tr *track.Track) string {
	t = t.withDefaults()
	if tr.Kind == track.KindFLAC {
		return fmt.Sprintf("%s --decode --silent --stdout \"%s\"", t.FLAC, tr.Filename)
	}
	return fmt.Sprintf("cat \"%s\"", tr.Filename)
}

// ArchiveEncodeCommand reads audio from stdin and writes a FLAC file to
// target at maximum compression.
func (t Tools) ArchiveEncodeCommand(tr *track.Track, target string, useEchoE bool) string {
	t = t.withDefaults()
	var b strings.Builder
	fmt.Fprintf(&b, "%s --silent --output-name=\"%s\" --best", t.FLAC, target)
	writeTagArgs(&b, "--tag", tr, useEchoE)
	b.WriteString(" -")
	return b.String()
}

// OggEncodeCommand reads audio from stdin and writes an Ogg Vorbis file to
// target.
func (t Tools) OggEncodeCommand(tr *track.Track, target string, useEchoE bool) string {
	t = t.withDefaults()
	var b strings.Builder
	fmt.Fprintf(&b, "%s --quiet --bitrate=%d --output=\"%s\"", t.Oggenc, t.OggBitrate, target)
	writeTagArgs(&b, "--comment", tr, useEchoE)
	b.WriteString(" -")
	return b.String()
}

// writeTagArgs emits one flag per tag. Values pass through an echo command
// substitution because a raw newline cannot appear in a Makefile recipe.
func writeTagArgs(b *strings.Builder, flag string, tr *track.Track, useEchoE bool) {
	echo := textutil.Ternary(useEchoE, "echo -e ", "echo ")
	for _, tag := range tr.Tags().List() {
		value := textutil.EscapeShellValue(tag.Value, true, true)
		fmt.Fprintf(b, " %s=%s=\"$$(%s%s)\"", flag, tag.Name, echo, value)
	}
}
