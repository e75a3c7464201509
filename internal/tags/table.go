package tags

import (
	"sort"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	folder = cases.Fold()

	// collate.Collator is not safe for concurrent use.
	collatorMu sync.Mutex
	collator   = collate.New(language.Und)
)

// foldName returns the case-insensitive identity of a tag name.
func foldName(name string) string {
	return folder.String(name)
}

func compareKeys(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	if c := collator.CompareString(a, b); c != 0 {
		return c
	}
	// Collation may treat distinct strings as equal; fall back to bytes so the
	// order stays total.
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

type bucket struct {
	key  string
	tags []Tag
}

// Table maps case-insensitive tag names to the tags added under them.
// The zero value is an empty table ready for use.
type Table struct {
	index   map[string]*bucket
	ordered []*bucket
	count   int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// Add stores tag in the bucket for its name, creating the bucket when needed.
// Adding under an existing name appends a duplicate.
func (t *Table) Add(tag Tag) {
	if t.index == nil {
		t.index = make(map[string]*bucket)
	}
	key := foldName(tag.Name)
	b, ok := t.index[key]
	if !ok {
		b = &bucket{key: key}
		t.index[key] = b
		pos := sort.Search(len(t.ordered), func(i int) bool {
			return compareKeys(t.ordered[i].key, key) > 0
		})
		t.ordered = append(t.ordered, nil)
		copy(t.ordered[pos+1:], t.ordered[pos:])
		t.ordered[pos] = b
	}
	b.tags = append(b.tags, tag)
	t.count++
}

// Lookup returns the tags stored under name in insertion order, or nil.
func (t *Table) Lookup(name string) []Tag {
	if t == nil || t.index == nil {
		return nil
	}
	b, ok := t.index[foldName(name)]
	if !ok {
		return nil
	}
	out := make([]Tag, len(b.tags))
	copy(out, b.tags)
	return out
}

// First returns the value of the first tag added under name.
func (t *Table) First(name string) (string, bool) {
	if t == nil || t.index == nil {
		return "", false
	}
	b, ok := t.index[foldName(name)]
	if !ok || len(b.tags) == 0 {
		return "", false
	}
	return b.tags[0].Value, true
}

// Has reports whether any tag is stored under name.
func (t *Table) Has(name string) bool {
	_, ok := t.First(name)
	return ok
}

// HasDuplicates reports whether more than one tag is stored under name.
func (t *Table) HasDuplicates(name string) bool {
	if t == nil || t.index == nil {
		return false
	}
	b, ok := t.index[foldName(name)]
	return ok && len(b.tags) > 1
}

// List flattens the table, bucket by bucket in collated name order.
func (t *Table) List() []Tag {
	if t == nil {
		return nil
	}
	out := make([]Tag, 0, t.count)
	for _, b := range t.ordered {
		out = append(out, b.tags...)
	}
	return out
}

// Len returns the total number of tags.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}
