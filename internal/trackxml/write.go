package trackxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"unicode"

	"trackforge/internal/failure"
	"trackforge/internal/track"
)

const declaration = `<?xml version="1.0"?>` + "\n"

// Write serializes tracks as a track-list document. When createGlobal is set
// an empty global section is emitted ahead of the tracks for hand editing.
// Nothing is written if a tag name is not a valid XML element name.
func Write(w io.Writer, tracks []*track.Track, createGlobal bool) error {
	var b strings.Builder
	b.WriteString(declaration)

	if !createGlobal && len(tracks) == 0 {
		fmt.Fprintf(&b, "<%s></%s>\n", elementTrackList, elementTrackList)
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintf(&b, "<%s>\n", elementTrackList)
	if createGlobal {
		fmt.Fprintf(&b, "  <%s>\n", elementGlobal)
		fmt.Fprintf(&b, "    <%s></%s>\n", elementTagList, elementTagList)
		fmt.Fprintf(&b, "  </%s>\n", elementGlobal)
	}
	for _, tr := range tracks {
		fmt.Fprintf(&b, "  <%s %s=\"%s\">\n", elementTrack, attrFilename, escape(tr.Filename))
		list := tr.Tags().List()
		if len(list) == 0 {
			fmt.Fprintf(&b, "    <%s></%s>\n", elementTagList, elementTagList)
		} else {
			fmt.Fprintf(&b, "    <%s>\n", elementTagList)
			for _, tag := range list {
				if !isName(tag.Name) {
					return failure.Wrap(failure.ErrDocument, "trackxml", "write", fmt.Sprintf("tag name %q in %s is not a valid XML name", tag.Name, tr.Filename), nil)
				}
				fmt.Fprintf(&b, "      <%s>%s</%s>\n", tag.Name, escape(tag.Value), tag.Name)
			}
			fmt.Fprintf(&b, "    </%s>\n", elementTagList)
		}
		fmt.Fprintf(&b, "  </%s>\n", elementTrack)
	}
	fmt.Fprintf(&b, "</%s>\n", elementTrackList)

	_, err := io.WriteString(w, b.String())
	return err
}

func escape(text string) string {
	var b strings.Builder
	// strings.Builder never fails.
	_ = xml.EscapeText(&b, []byte(text))
	return b.String()
}

// isName reports whether name can be used as an element name.
func isName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 {
			if !(unicode.IsLetter(r) || r == '_') {
				return false
			}
			continue
		}
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.Is(unicode.Mn, r), unicode.Is(unicode.Mc, r):
		case r == '-', r == '.', r == '_', r == '·':
		default:
			return false
		}
	}
	return true
}
