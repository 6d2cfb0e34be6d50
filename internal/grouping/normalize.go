package grouping

import (
	"html"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var canonical = transform.Chain(
	norm.NFC,
	runes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}),
	runes.Remove(runes.In(unicode.Cc)),
)

// Normalize canonicalizes raw element or ingredient text: entities are
// unescaped, whitespace runs (including NBSP) collapse to one space, control
// characters are dropped and the result is trimmed.
func Normalize(s string) string {
	s = html.UnescapeString(s)
	out, _, err := transform.String(canonical, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(out), " ")
}
