package tags_test

import (
	"errors"
	"testing"

	"trackforge/internal/tags"
)

func TestTableCaseInsensitiveBuckets(t *testing.T) {
	table := tags.NewTable()
	table.Add(tags.New("ARTIST", "First"))
	table.Add(tags.New("artist", "Second"))

	got := table.Lookup("Artist")
	if len(got) != 2 {
		t.Fatalf("expected 2 tags in bucket, got %d", len(got))
	}
	if got[0].Value != "First" || got[1].Value != "Second" {
		t.Fatalf("unexpected bucket order: %+v", got)
	}
	if value, ok := table.First("artist"); !ok || value != "First" {
		t.Fatalf("First returned %q, %v", value, ok)
	}
	if !table.HasDuplicates("ARTIST") {
		t.Fatal("expected duplicates")
	}
	if table.Len() != 2 {
		t.Fatalf("Len = %d, want 2", table.Len())
	}
}

func TestTableLookupMissing(t *testing.T) {
	table := tags.NewTable()
	if got := table.Lookup("title"); got != nil {
		t.Fatalf("expected nil lookup, got %+v", got)
	}
	if table.Has("title") {
		t.Fatal("expected Has to be false")
	}
	var zero tags.Table
	zero.Add(tags.New("title", "x"))
	if !zero.Has("TITLE") {
		t.Fatal("zero-value table should accept tags")
	}
}

func TestTableListOrdersByName(t *testing.T) {
	table := tags.NewTable()
	table.Add(tags.New("title", "Song"))
	table.Add(tags.New("Artist", "Band"))
	table.Add(tags.New("album", "Record"))
	table.Add(tags.New("artist", "Guest"))

	want := []tags.Tag{
		{Name: "album", Value: "Record"},
		{Name: "Artist", Value: "Band"},
		{Name: "artist", Value: "Guest"},
		{Name: "title", Value: "Song"},
	}
	got := table.List()
	if len(got) != len(want) {
		t.Fatalf("List length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("List[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    tags.Tag
		wantErr error
	}{
		{name: "simple", text: "TITLE=Song", want: tags.New("TITLE", "Song")},
		{name: "first separator wins", text: "comment=a=b", want: tags.New("comment", "a=b")},
		{name: "empty name", text: "=value", want: tags.New("", "value")},
		{name: "no separator", text: "TITLE", wantErr: tags.ErrNoSeparator},
		{name: "no value", text: "TITLE=", wantErr: tags.ErrNoValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tags.ParseAssignment(tt.text, '=')
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
