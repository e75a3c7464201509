package textutil

import (
	"strings"
	"unicode"
)

// FileNameOptions selects the conversions SanitizeFileName applies.
type FileNameOptions struct {
	// Strict replaces punctuation, symbols, and non a-z letters with '_'.
	// '-' and the final '.' survive so extensions stay intact.
	Strict bool
	// Lowercase folds letters to lower case before any other check.
	Lowercase bool
	// NoSpace replaces whitespace with '_'.
	NoSpace bool
}

// SanitizeFileName converts name rune by rune according to opts.
func SanitizeFileName(name string, opts FileNameOptions) string {
	dotTotal := 0
	if opts.Strict {
		dotTotal = strings.Count(name, ".")
	}

	var b strings.Builder
	b.Grow(len(name))
	dotSeen := 0
	for _, r := range name {
		if r == '.' {
			dotSeen++
		}
		if opts.Lowercase {
			r = unicode.ToLower(r)
		}
		if opts.NoSpace && unicode.IsSpace(r) {
			r = '_'
		}
		if opts.Strict && isPunct(r) && r != '-' && (r != '.' || dotSeen < dotTotal) {
			r = '_'
		}
		if opts.Strict && unicode.IsLetter(r) {
			if lower := unicode.ToLower(r); lower < 'a' || lower > 'z' {
				r = '_'
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isPunct matches punctuation and symbol categories.
func isPunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// EscapeMake prefixes each space with a backslash so make keeps the name as a
// single word.
func EscapeMake(name string) string {
	if !strings.Contains(name, " ") {
		return name
	}
	return strings.ReplaceAll(name, " ", `\ `)
}

// EscapeShellValue escapes text for use inside a double-quoted shell
// argument. Backslash, quotes, '&' and '#' are prefixed with a backslash, as
// are parentheses when escapeParens is set. With escapeNewlines a raw newline
// becomes the escaped sequence `\\n`, which echo -e turns back into a line
// break.
func EscapeShellValue(text string, escapeNewlines, escapeParens bool) string {
	var b strings.Builder
	b.Grow(len(text) + 8)
	for _, r := range text {
		switch {
		case r == '\\', r == '"', r == '\'', r == '&', r == '#':
			b.WriteByte('\\')
		case escapeParens && (r == '(' || r == ')'):
			b.WriteByte('\\')
		}
		if escapeNewlines && r == '\n' {
			b.WriteString(`\\n`)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
