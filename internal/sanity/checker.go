package sanity

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"trackforge/internal/failure"
	"trackforge/internal/logging"
	"trackforge/internal/tags"
	"trackforge/internal/track"
)

// Check identifies the rule behind a warning.
type Check string

const (
	CheckDuplicate          Check = "duplicate"
	CheckMissingExpected    Check = "missing_expected"
	CheckUnexpected         Check = "unexpected"
	CheckLeadingWhitespace  Check = "leading_whitespace"
	CheckTrailingWhitespace Check = "trailing_whitespace"
	CheckLineBreak          Check = "line_break"
	CheckInvalidTrackNumber Check = "invalid_track_number"
	CheckTrackOrder         Check = "track_order"
)

// Warning is an advisory policy violation.
type Warning struct {
	File    string
	Tag     string
	Check   Check
	Message string
}

func (w Warning) String() string { return w.Message }

// Checker applies the metadata policy.
type Checker struct {
	warnings bool
	logger   *slog.Logger
}

// NewChecker returns a checker that logs warnings through logger when
// warnings is set. A nil logger discards output.
func NewChecker(warnings bool, logger *slog.Logger) *Checker {
	return &Checker{
		warnings: warnings,
		logger:   logging.NewComponentLogger(logger, "sanity"),
	}
}

// WarningsEnabled reports whether warnings are logged.
func (c *Checker) WarningsEnabled() bool {
	return c != nil && c.warnings
}

// CheckTrack validates a single track. A missing required tag is returned as
// an error and stops the check; all other findings are warnings.
func (c *Checker) CheckTrack(tr *track.Track) ([]Warning, error) {
	file := tr.Filename
	table := tr.Tags()

	for _, name := range Required {
		if !table.Has(name) {
			msg := fmt.Sprintf("track '%s' is missing tag '%s'", file, name)
			return nil, failure.Wrap(failure.ErrMissingTag, "", "", msg, nil)
		}
	}

	var out []Warning
	add := func(check Check, tag, format string, args ...any) {
		w := Warning{File: file, Tag: tag, Check: check, Message: fmt.Sprintf(format, args...)}
		out = append(out, w)
		c.report(w)
	}

	for _, name := range Single {
		if table.HasDuplicates(name) {
			add(CheckDuplicate, name, "track '%s' contains multiple tags '%s'", file, name)
		}
	}

	for _, name := range Expected {
		if !table.Has(name) {
			add(CheckMissingExpected, name, "track '%s' is missing tag '%s'", file, name)
		}
	}

	list := table.List()
	for _, tag := range list {
		if !isKnown(tag.Name) {
			add(CheckUnexpected, tag.Name, "track '%s' contains unexpected tag '%s'", file, tag.Name)
		}
	}

	for _, tag := range list {
		if first, _ := utf8.DecodeRuneInString(tag.Value); unicode.IsSpace(first) {
			add(CheckLeadingWhitespace, tag.Name, "track '%s' has tag '%s' with leading whitespace", file, tag.Name)
		}
		if last, _ := utf8.DecodeLastRuneInString(tag.Value); unicode.IsSpace(last) {
			add(CheckTrailingWhitespace, tag.Name, "track '%s' has tag '%s' with trailing whitespace", file, tag.Name)
		}
	}

	for _, tag := range list {
		for range strings.Count(tag.Value, "\n") {
			add(CheckLineBreak, tag.Name, "track '%s' has tag '%s' with line breaks", file, tag.Name)
		}
	}

	return out, nil
}

// CheckSequence validates the track numbers of an album's tracks against
// their 1-based positions. It fails when no track carries a track number
// equal to its position.
func (c *Checker) CheckSequence(album string, tracks []*track.Track) ([]Warning, error) {
	var out []Warning
	valid := false
	for i, tr := range tracks {
		position := i + 1
		text, ok := tr.First(tags.TrackNumber)
		if !ok {
			continue
		}
		number, ok := parseLeadingInt(text)
		var w Warning
		switch {
		case !ok:
			w = Warning{
				File:    tr.Filename,
				Tag:     tags.TrackNumber,
				Check:   CheckInvalidTrackNumber,
				Message: fmt.Sprintf("track '%s' contains invalid track number", tr.Filename),
			}
		case number != int64(position):
			w = Warning{
				File:    tr.Filename,
				Tag:     tags.TrackNumber,
				Check:   CheckTrackOrder,
				Message: fmt.Sprintf("track '%s' contains out-of-order track number (got %d, expected %d)", tr.Filename, number, position),
			}
		default:
			valid = true
			continue
		}
		out = append(out, w)
		c.report(w)
	}
	if !valid {
		msg := fmt.Sprintf("album '%s' has no track with a valid track number", album)
		return out, failure.Wrap(failure.ErrTrackNumbers, "", "", msg, nil)
	}
	return out, nil
}

func (c *Checker) report(w Warning) {
	if !c.WarningsEnabled() {
		return
	}
	c.logger.Warn(w.Message, logging.Args(
		logging.String(logging.FieldFile, w.File),
		logging.String(logging.FieldTag, w.Tag),
		logging.String(logging.FieldCheck, string(w.Check)),
	)...)
}

func isKnown(name string) bool {
	for _, known := range Known {
		if strings.EqualFold(name, known) {
			return true
		}
	}
	return false
}
