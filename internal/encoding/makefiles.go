package encoding

import (
	"fmt"
	"log/slog"
	"math"

	"trackforge/internal/album"
	"trackforge/internal/logging"
	"trackforge/internal/makefile"
	"trackforge/internal/tags"
	"trackforge/internal/textutil"
	"trackforge/internal/track"
)

const defaultTarget = "all"

var (
	archiveNames = textutil.FileNameOptions{Strict: true, Lowercase: true, NoSpace: true}
	oggNames     = textutil.FileNameOptions{Strict: true}
)

// Options controls recipe generation.
type Options struct {
	// Verbose lets make echo full recipes instead of target names.
	Verbose bool
	// UseEchoE expands escaped newlines in tag values with echo -e.
	UseEchoE bool
	Tools    Tools
	Logger   *slog.Logger
}

func (o Options) quiet() string {
	return textutil.Ternary(o.Verbose, "", "@")
}

// numberWidth is the digit count of the album's track count.
func numberWidth(count int) int {
	if count < 1 {
		return 1
	}
	return int(math.Log10(float64(count))) + 1
}

func title(tr *track.Track) string {
	value, _ := tr.First(tags.Title)
	return value
}

func newMakefile() (*makefile.Makefile, *makefile.Rule) {
	m := makefile.New()
	phony := makefile.NewRule()
	phony.AddTarget(makefile.Phony)
	phony.AddPrereq(defaultTarget)
	m.Append(phony)

	all := makefile.NewRule()
	all.AddTarget(defaultTarget)
	return m, all
}

// Archive builds a Makefile that re-encodes every track to FLAC and applies
// album replay gain. The "all" rule comes first so it is make's default goal.
func Archive(albums []*album.Album, opts Options) *makefile.Makefile {
	m, all := newMakefile()
	q := opts.quiet()

	for _, a := range albums {
		gainFile := textutil.SanitizeFileName(a.Name+".replay_gain", archiveNames)
		gain := makefile.NewRule()
		gain.AddTarget(gainFile)
		all.AddPrereq(gainFile)
		gainCommand := fmt.Sprintf("%s%s --add-replay-gain", q, opts.Tools.withDefaults().Metaflac)

		width := numberWidth(len(a.Tracks))
		for j, tr := range a.Tracks {
			name := fmt.Sprintf("%s - %0*d - %s.flac", a.Name, width, j+1, title(tr))
			target := textutil.SanitizeFileName(name, archiveNames)

			rule := makefile.NewRule()
			rule.AddTarget(target)
			gain.AddPrereq(target)
			all.AddPrereq(target)
			gainCommand += " " + target

			rule.AddPrereq(tr.Filename)
			if !opts.Verbose {
				rule.AddCommand("@echo " + target)
			}
			rule.AddCommand(fmt.Sprintf("%s%s | %s", q,
				opts.Tools.DecodeCommand(tr),
				opts.Tools.ArchiveEncodeCommand(tr, target, opts.UseEchoE)))
			m.Append(rule)
		}

		gain.AddCommand("@echo " + gainFile)
		gain.AddCommand(gainCommand)
		m.Append(gain)

		phony := makefile.NewRule()
		phony.AddTarget(makefile.Phony)
		phony.AddPrereq(gainFile)
		m.Append(phony)
	}

	m.Prepend(all)
	logGenerated(opts.Logger, "archive", albums, m)
	return m
}

// Oggify builds a Makefile that encodes every track to Ogg Vorbis inside a
// directory named after its album.
func Oggify(albums []*album.Album, opts Options) *makefile.Makefile {
	m, all := newMakefile()
	q := opts.quiet()

	for _, a := range albums {
		dir := textutil.SanitizeFileName(a.Name, oggNames)
		mkdir := makefile.NewRule()
		mkdir.AddTarget(dir)
		mkdir.AddCommand(q + `mkdir -p "$@"`)
		m.Append(mkdir)
		all.AddPrereq(dir)

		width := numberWidth(len(a.Tracks))
		for j, tr := range a.Tracks {
			base := textutil.SanitizeFileName(fmt.Sprintf("%0*d - %s.ogg", width, j+1, title(tr)), oggNames)
			target := dir + "/" + base

			rule := makefile.NewRule()
			rule.AddTarget(target)
			all.AddPrereq(target)
			rule.AddPrereq(tr.Filename)
			if !opts.Verbose {
				rule.AddCommand(`@echo "$@"`)
			}
			rule.AddCommand(fmt.Sprintf("%s%s | %s", q,
				opts.Tools.DecodeCommand(tr),
				opts.Tools.OggEncodeCommand(tr, target, opts.UseEchoE)))
			m.Append(rule)
		}
	}

	m.Prepend(all)
	logGenerated(opts.Logger, "oggify", albums, m)
	return m
}

func logGenerated(logger *slog.Logger, kind string, albums []*album.Album, m *makefile.Makefile) {
	if logger == nil {
		return
	}
	logger = logging.NewComponentLogger(logger, "encoding")
	for _, a := range albums {
		logger.Debug("album scheduled", logging.Args(
			logging.String(logging.FieldAlbum, a.Name),
			logging.Int("tracks", len(a.Tracks)),
		)...)
	}
	logger.Debug("makefile generated", logging.Args(
		logging.String("kind", kind),
		logging.Int("albums", len(albums)),
		logging.Int("rules", m.Len()),
	)...)
}
