// Package tokenize splits a raw command line into an argument vector.
//
// The vector layout is fixed:
//
//	Args[0]  the raw text following the command token, verbatim
//	Args[1]  the command name ("" when the line has no command)
//	Args[2:] positional arguments with surrounding quotes removed
//
// For example:
//
//	echo "hello world" foo
//	Args = {`"hello world" foo`, "echo", "hello world", "foo"}
package tokenize

import (
	"strings"
	"unicode"
)

// Args is a tokenized command line. It always has at least two elements.
type Args []string

// Parse tokenizes line.
//
// A double quote toggles quoted mode and is never part of a token; there is
// no escape for a literal quote. Outside quoted mode a space ends the current
// token. A quote left open at end of line absorbs the rest of the line.
// Empty tokens are dropped, so an explicit "" argument disappears. A line
// without any letter or digit yields the empty sentinel {"", ""}.
func Parse(line string) Args {
	if !hasContent(line) {
		return Args{"", ""}
	}

	var (
		tokens  []string
		curr    strings.Builder
		raw     strings.Builder
		inArgs  bool
		inQuote bool
	)

	// Both delimiters are ASCII, so scanning bytes keeps multi-byte and
	// invalid sequences intact.
	for i := 0; i < len(line); i++ {
		c := line[i]
		if inArgs {
			raw.WriteByte(c)
		}
		switch {
		case c == '"':
			inQuote = !inQuote
		case !inQuote && c == ' ':
			tokens = append(tokens, curr.String())
			curr.Reset()
			inArgs = true
		default:
			curr.WriteByte(c)
		}
	}
	tokens = append(tokens, curr.String())

	out := make(Args, 1, len(tokens)+1)
	out[0] = raw.String()
	for _, t := range tokens {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func hasContent(line string) bool {
	for _, r := range line {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// Raw returns element 0, the verbatim argument text.
func (a Args) Raw() string {
	return a.At(0)
}

// Command returns element 1, the command name.
func (a Args) Command() string {
	return a.At(1)
}

// Positional returns the arguments after the command name.
func (a Args) Positional() []string {
	if len(a) <= 2 {
		return nil
	}
	return a[2:]
}

// Len returns the number of elements, including the raw text and command.
func (a Args) Len() int {
	return len(a)
}

// At returns element i, or "" when i is out of range.
func (a Args) At(i int) string {
	if i < 0 || i >= len(a) {
		return ""
	}
	return a[i]
}

// Empty reports whether the line carried no command.
func (a Args) Empty() bool {
	return a.Command() == ""
}
