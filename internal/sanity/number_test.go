package sanity

import (
	"math"
	"testing"
)

func TestParseLeadingInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int64
		wantOK bool
	}{
		{"7", 7, true},
		{"  12", 12, true},
		{"03/10", 3, true},
		{"+4", 4, true},
		{"-2", -2, true},
		{"", 0, false},
		{"x1", 0, false},
		{"-", 0, false},
		{"99999999999999999999", math.MaxInt64, true},
	}
	for _, tt := range tests {
		got, ok := parseLeadingInt(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Fatalf("parseLeadingInt(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
