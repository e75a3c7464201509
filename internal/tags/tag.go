package tags

import (
	"errors"
	"strings"
)

var (
	// ErrNoSeparator reports assignment text without a separator.
	ErrNoSeparator = errors.New("no tag separator found in text")
	// ErrNoValue reports assignment text with an empty value.
	ErrNoValue = errors.New("no value found in text")
)

// Tag is a single metadata entry.
type Tag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// New returns a tag with the given name and value.
func New(name, value string) Tag {
	return Tag{Name: name, Value: value}
}

// ParseAssignment splits text of the form NAME<sep>VALUE on the first
// separator.
func ParseAssignment(text string, sep rune) (Tag, error) {
	name, value, ok := strings.Cut(text, string(sep))
	if !ok {
		return Tag{}, ErrNoSeparator
	}
	if value == "" {
		return Tag{}, ErrNoValue
	}
	return Tag{Name: name, Value: value}, nil
}
