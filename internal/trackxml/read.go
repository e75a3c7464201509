package trackxml

import (
	"fmt"
	"io"
	"os"

	"trackforge/internal/audiofile"
	"trackforge/internal/failure"
	"trackforge/internal/tags"
	"trackforge/internal/track"
)

const (
	elementTrackList = "track_list"
	elementGlobal    = "global"
	elementTagList   = "tag_list"
	elementTrack     = "track"
	attrFilename     = "filename"
)

// KindDetector classifies the audio file behind a track filename.
type KindDetector func(path string) track.Kind

// Reader parses track-list documents.
type Reader struct {
	// DetectKind defaults to audiofile.DetectKind.
	DetectKind KindDetector
}

// Read parses a document from r using audiofile.DetectKind for track kinds.
func Read(r io.Reader) ([]*track.Track, error) {
	return Reader{}.Read(r)
}

// ReadFile parses the document stored at path.
func ReadFile(path string) ([]*track.Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, failure.Wrap(failure.ErrDocument, "trackxml", "open", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a document from r. Any structural problem is reported as a
// failure.ErrDocument error and no tracks are returned.
func (rd Reader) Read(r io.Reader) ([]*track.Track, error) {
	detect := rd.DetectKind
	if detect == nil {
		detect = audiofile.DetectKind
	}

	root, err := parseTree(r)
	if err != nil {
		return nil, failure.Wrap(failure.ErrDocument, "trackxml", "parse", "", err)
	}
	if root == nil {
		return nil, documentError("missing root element '%s'", elementTrackList)
	}
	if root.name != elementTrackList {
		return nil, documentError("root element is '%s', expected '%s'", root.name, elementTrackList)
	}
	return parseTrackList(root, detect)
}

func documentError(format string, args ...any) error {
	return failure.Wrap(failure.ErrDocument, "", "", fmt.Sprintf(format, args...), nil)
}

func rejectAttrs(el *node) error {
	if len(el.attrs) > 0 {
		return documentError("XML element '%s' contains invalid property '%s'", el.name, el.attrs[0].Name.Local)
	}
	return nil
}

// structuralChildren returns the element children of el, rejecting
// non-whitespace text.
func structuralChildren(el *node) ([]*node, error) {
	var out []*node
	for _, child := range el.children {
		if child.isText() {
			if !isAllSpace(child.text) {
				return nil, documentError("XML element '%s' contains non-whitespace text", el.name)
			}
			continue
		}
		out = append(out, child)
	}
	return out, nil
}

func parseTrackList(el *node, detect KindDetector) ([]*track.Track, error) {
	if err := rejectAttrs(el); err != nil {
		return nil, err
	}
	children, err := structuralChildren(el)
	if err != nil {
		return nil, err
	}

	var (
		tracks     []*track.Track
		globalTags []tags.Tag
		seenGlobal bool
	)
	for _, child := range children {
		switch child.name {
		case elementGlobal:
			if seenGlobal {
				return nil, documentError("XML element '%s' contains multiple elements '%s'", el.name, elementGlobal)
			}
			seenGlobal = true
			globalTags, err = parseGlobal(child)
			if err != nil {
				return nil, err
			}
		case elementTrack:
			tr, err := parseTrack(child, detect)
			if err != nil {
				return nil, err
			}
			tracks = append(tracks, tr)
		default:
			return nil, documentError("XML element '%s' contains invalid element '%s'", el.name, child.name)
		}
	}

	for _, tr := range tracks {
		tr.AddTags(globalTags)
	}
	return tracks, nil
}

// parseSingleTagList handles the shared body of global and track elements:
// at most one tag_list and nothing else.
func parseSingleTagList(el *node) ([]tags.Tag, error) {
	children, err := structuralChildren(el)
	if err != nil {
		return nil, err
	}
	var (
		list []tags.Tag
		seen bool
	)
	for _, child := range children {
		if child.name != elementTagList {
			return nil, documentError("XML element '%s' contains invalid element '%s'", el.name, child.name)
		}
		if seen {
			return nil, documentError("XML element '%s' contains multiple elements '%s'", el.name, elementTagList)
		}
		seen = true
		list, err = parseTagList(child)
		if err != nil {
			return nil, err
		}
	}
	return list, nil
}

func parseGlobal(el *node) ([]tags.Tag, error) {
	if err := rejectAttrs(el); err != nil {
		return nil, err
	}
	return parseSingleTagList(el)
}

func parseTrack(el *node, detect KindDetector) (*track.Track, error) {
	var (
		filename string
		found    bool
	)
	for _, attr := range el.attrs {
		if attr.Name.Local != attrFilename {
			return nil, documentError("XML element '%s' contains invalid attribute '%s'", el.name, attr.Name.Local)
		}
		if found {
			return nil, documentError("XML element '%s' contains multiple attributes '%s'", el.name, attr.Name.Local)
		}
		filename = attr.Value
		found = true
	}
	if !found {
		return nil, documentError("XML element '%s' is missing attribute '%s'", el.name, attrFilename)
	}

	list, err := parseSingleTagList(el)
	if err != nil {
		return nil, err
	}
	tr := track.New(filename, detect(filename))
	tr.AddTags(list)
	return tr, nil
}

func parseTagList(el *node) ([]tags.Tag, error) {
	if err := rejectAttrs(el); err != nil {
		return nil, err
	}
	children, err := structuralChildren(el)
	if err != nil {
		return nil, err
	}
	list := make([]tags.Tag, 0, len(children))
	for _, child := range children {
		tag, err := parseTag(child)
		if err != nil {
			return nil, err
		}
		list = append(list, tag)
	}
	return list, nil
}

func parseTag(el *node) (tags.Tag, error) {
	if err := rejectAttrs(el); err != nil {
		return tags.Tag{}, err
	}
	var value []byte
	for _, child := range el.children {
		if !child.isText() {
			return tags.Tag{}, documentError("XML element '%s' contains invalid element '%s'", el.name, child.name)
		}
		value = append(value, child.text...)
	}
	return tags.New(el.name, string(value)), nil
}
