// Package makefile models GNU make rules and renders them as Makefile text.
package makefile

import (
	"io"
	"strings"

	"trackforge/internal/textutil"
)

// Header is written before the first rule.
const Header = "# vim: set filetype=make:\n\n"

// Phony is the special target that marks rules as not producing files.
const Phony = ".PHONY"

// Rule is a make rule. Targets and prerequisites are stored make-escaped.
type Rule struct {
	targets  []string
	prereqs  []string
	commands []string
}

// NewRule returns an empty rule.
func NewRule() *Rule {
	return &Rule{}
}

// AddTarget escapes name and places it before the existing targets.
func (r *Rule) AddTarget(name string) {
	r.targets = append([]string{textutil.EscapeMake(name)}, r.targets...)
}

// AddPrereq escapes name and appends it to the prerequisites.
func (r *Rule) AddPrereq(name string) {
	r.prereqs = append(r.prereqs, textutil.EscapeMake(name))
}

// AddCommand appends a recipe line verbatim.
func (r *Rule) AddCommand(command string) {
	r.commands = append(r.commands, command)
}

func (r *Rule) Targets() []string  { return append([]string(nil), r.targets...) }
func (r *Rule) Prereqs() []string  { return append([]string(nil), r.prereqs...) }
func (r *Rule) Commands() []string { return append([]string(nil), r.commands...) }

func (r *Rule) writeTo(b *strings.Builder) {
	for i, target := range r.targets {
		b.WriteString(target)
		if i < len(r.targets)-1 {
			b.WriteByte(' ')
		} else {
			b.WriteByte(':')
		}
	}
	for _, prereq := range r.prereqs {
		b.WriteByte(' ')
		b.WriteString(prereq)
	}
	b.WriteByte('\n')
	for _, command := range r.commands {
		b.WriteByte('\t')
		b.WriteString(command)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

// Makefile is an ordered list of rules.
type Makefile struct {
	rules []*Rule
}

// New returns an empty Makefile.
func New() *Makefile {
	return &Makefile{}
}

// Append adds rule after the existing rules.
func (m *Makefile) Append(rule *Rule) {
	m.rules = append(m.rules, rule)
}

// Prepend adds rule before the existing rules.
func (m *Makefile) Prepend(rule *Rule) {
	m.rules = append([]*Rule{rule}, m.rules...)
}

// Rules returns the rules in output order.
func (m *Makefile) Rules() []*Rule {
	return append([]*Rule(nil), m.rules...)
}

// Len returns the number of rules.
func (m *Makefile) Len() int {
	return len(m.rules)
}

// String renders the Makefile text.
func (m *Makefile) String() string {
	var b strings.Builder
	b.WriteString(Header)
	for _, rule := range m.rules {
		rule.writeTo(&b)
	}
	return b.String()
}

// WriteTo writes the rendered text to w.
func (m *Makefile) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.String())
	return int64(n), err
}
