package track_test

import (
	"testing"

	"trackforge/internal/tags"
	"trackforge/internal/track"
)

func TestNumberSequentiallyAppends(t *testing.T) {
	first := track.New("a.flac", track.KindFLAC)
	first.AddTag(tags.New(tags.TrackNumber, "7"))
	second := track.New("b.wav", track.KindNative)

	track.NumberSequentially([]*track.Track{first, second})

	got := first.Tags().Lookup(tags.TrackNumber)
	if len(got) != 2 || got[0].Value != "7" || got[1].Value != "1" {
		t.Fatalf("unexpected first track numbers: %+v", got)
	}
	if value, ok := second.First(tags.TrackNumber); !ok || value != "2" {
		t.Fatalf("second track number = %q, %v", value, ok)
	}
}

func TestKindString(t *testing.T) {
	if track.KindFLAC.String() != "flac" || track.KindNative.String() != "native" {
		t.Fatalf("unexpected kind names: %s %s", track.KindFLAC, track.KindNative)
	}
}
