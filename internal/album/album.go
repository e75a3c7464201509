// Package album groups tracks into albums by their artist, album, and
// performer tags.
package album

import (
	"cmp"
	"fmt"

	"trackforge/internal/sanity"
	"trackforge/internal/tags"
	"trackforge/internal/track"
)

// Key identifies an album. Absent components are nil.
type Key struct {
	Artist    *string
	Album     *string
	Performer *string
}

// Compare orders keys by artist, then album, then performer. An absent
// component sorts before any present one.
func (k Key) Compare(other Key) int {
	if c := compareOptional(k.Artist, other.Artist); c != 0 {
		return c
	}
	if c := compareOptional(k.Album, other.Album); c != 0 {
		return c
	}
	return compareOptional(k.Performer, other.Performer)
}

func compareOptional(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return cmp.Compare(*a, *b)
}

// mapKey is the comparable form of Key used for lookups.
type mapKey struct {
	artist, album, performer          string
	hasArtist, hasAlbum, hasPerformer bool
}

func (k Key) mapKey() mapKey {
	var m mapKey
	if k.Artist != nil {
		m.artist, m.hasArtist = *k.Artist, true
	}
	if k.Album != nil {
		m.album, m.hasAlbum = *k.Album, true
	}
	if k.Performer != nil {
		m.performer, m.hasPerformer = *k.Performer, true
	}
	return m
}

// Album is a named, ordered list of tracks. Tracks are shared with the input
// list, not copied.
type Album struct {
	Name   string
	Key    Key
	Tracks []*track.Track
}

// Options controls grouping.
type Options struct {
	// SimpleAlbum groups by album title alone and names albums by title.
	SimpleAlbum bool
	// AutoTrackNumbers adds a tracknumber tag with each track's position in
	// its album before album checks run.
	AutoTrackNumbers bool
}

// Name formats the display name for an album.
func Name(simple bool, artist, album string, performer *string) string {
	if simple {
		return album
	}
	if performer != nil {
		return fmt.Sprintf("%s - %s - %s", artist, album, *performer)
	}
	return fmt.Sprintf("%s - %s", artist, album)
}

// Group partitions tracks into albums in order of first appearance. Every
// track is checked before grouping and every album afterwards; the first
// failure aborts the whole operation and no albums are returned.
func Group(tracks []*track.Track, opts Options, checker *sanity.Checker) ([]*Album, error) {
	if checker == nil {
		checker = sanity.NewChecker(false, nil)
	}

	index := make(map[mapKey]*Album)
	var albums []*Album

	for _, tr := range tracks {
		if _, err := checker.CheckTrack(tr); err != nil {
			return nil, err
		}

		// Required tags are guaranteed by CheckTrack.
		artist, _ := tr.First(tags.Artist)
		title, _ := tr.First(tags.Album)
		var performer *string
		if value, ok := tr.First(tags.Performer); ok {
			performer = &value
		}

		key := Key{Album: &title}
		if !opts.SimpleAlbum {
			key.Artist = &artist
			key.Performer = performer
		}

		a, ok := index[key.mapKey()]
		if !ok {
			a = &Album{
				Name: Name(opts.SimpleAlbum, artist, title, performer),
				Key:  key,
			}
			index[key.mapKey()] = a
			albums = append(albums, a)
		}
		a.Tracks = append(a.Tracks, tr)
	}

	if opts.AutoTrackNumbers {
		for _, a := range albums {
			track.NumberSequentially(a.Tracks)
		}
	}

	for _, a := range albums {
		if _, err := checker.CheckSequence(a.Name, a.Tracks); err != nil {
			return nil, err
		}
	}

	return albums, nil
}

// Flatten concatenates the albums' track lists in album order.
func Flatten(albums []*Album) []*track.Track {
	var out []*track.Track
	for _, a := range albums {
		out = append(out, a.Tracks...)
	}
	return out
}
