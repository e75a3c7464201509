package makefile_test

import (
	"bytes"
	"slices"
	"testing"

	"trackforge/internal/makefile"
)

func TestRuleOrdering(t *testing.T) {
	rule := makefile.NewRule()
	rule.AddTarget("first")
	rule.AddTarget("second")
	rule.AddPrereq("a b")
	rule.AddPrereq("c")
	rule.AddCommand("echo one")
	rule.AddCommand("echo two")

	m := makefile.New()
	m.Append(rule)

	want := makefile.Header + "second first: a\\ b c\n\techo one\n\techo two\n\n"
	if got := m.String(); got != want {
		t.Fatalf("unexpected text:\n%q\nwant\n%q", got, want)
	}

	if got := rule.Targets(); !slices.Equal(got, []string{"second", "first"}) {
		t.Fatalf("Targets = %q", got)
	}
	if got := rule.Prereqs(); !slices.Equal(got, []string{"a\\ b", "c"}) {
		t.Fatalf("Prereqs = %q", got)
	}
	if got := rule.Commands(); !slices.Equal(got, []string{"echo one", "echo two"}) {
		t.Fatalf("Commands = %q", got)
	}
}

func TestMakefilePrepend(t *testing.T) {
	m := makefile.New()
	phony := makefile.NewRule()
	phony.AddTarget(makefile.Phony)
	phony.AddPrereq("all")
	m.Append(phony)

	all := makefile.NewRule()
	all.AddTarget("all")
	all.AddPrereq("x.flac")
	m.Prepend(all)

	want := makefile.Header + "all: x.flac\n\n.PHONY: all\n\n"
	if got := m.String(); got != want {
		t.Fatalf("unexpected text:\n%q\nwant\n%q", got, want)
	}
	if m.Len() != 2 {
		t.Fatalf("Len = %d", m.Len())
	}

	var buf bytes.Buffer
	n, err := m.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if int(n) != len(want) || buf.String() != want {
		t.Fatalf("WriteTo wrote %d bytes %q", n, buf.String())
	}
}

func TestEmptyMakefileIsHeaderOnly(t *testing.T) {
	if got := makefile.New().String(); got != makefile.Header {
		t.Fatalf("got %q", got)
	}
}
