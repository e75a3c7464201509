// Package track defines an audio file reference together with its metadata.
package track

import (
	"strconv"

	"trackforge/internal/tags"
)

// Kind identifies the container format of a track's source file.
type Kind int

const (
	// KindNative is any file that is not FLAC; it is decoded with cat.
	KindNative Kind = iota
	// KindFLAC is a FLAC stream.
	KindFLAC
)

func (k Kind) String() string {
	switch k {
	case KindFLAC:
		return "flac"
	default:
		return "native"
	}
}

// Track is an audio file and the tags that describe it. Tracks are shared by
// pointer; the tag table belongs to the track alone.
type Track struct {
	Filename string
	Kind     Kind
	tags     tags.Table
}

// New returns a track with an empty tag table.
func New(filename string, kind Kind) *Track {
	return &Track{Filename: filename, Kind: kind}
}

// AddTag appends a tag.
func (t *Track) AddTag(tag tags.Tag) {
	t.tags.Add(tag)
}

// AddTags appends tags in order.
func (t *Track) AddTags(list []tags.Tag) {
	for _, tag := range list {
		t.tags.Add(tag)
	}
}

// Tags exposes the track's table.
func (t *Track) Tags() *tags.Table {
	return &t.tags
}

// First returns the first value recorded under name.
func (t *Track) First(name string) (string, bool) {
	return t.tags.First(name)
}

// NumberSequentially adds a tracknumber tag to each track with its 1-based
// position. Existing tracknumber tags are kept.
func NumberSequentially(tracks []*Track) {
	for i, tr := range tracks {
		tr.AddTag(tags.New(tags.TrackNumber, strconv.Itoa(i+1)))
	}
}
