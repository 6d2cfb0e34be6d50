package grouping

import (
	"regexp"
	"unicode/utf8"
)

var (
	// markerPattern matches an inline group tag such as "(A)" or "(12)".
	markerPattern = regexp.MustCompile(`^\([A-Za-z0-9]+\)`)

	// cjkPattern matches a leading character in one of:
	//   Han ideographs       U+4E00–U+9FAF
	//   Hiragana             U+3040–U+309F
	//   Katakana             U+30A0–U+30FF
	//   Halfwidth Katakana   U+FF66–U+FF9F
	cjkPattern = regexp.MustCompile(`^[\x{4E00}-\x{9FAF}\x{3040}-\x{309F}\x{30A0}-\x{30FF}\x{FF66}-\x{FF9F}]`)
)

// Marker returns the leading "(X)" tag of ingredient, if any. The tag is left
// in place in the ingredient text.
func Marker(ingredient string) (string, bool) {
	m := markerPattern.FindString(ingredient)
	return m, m != ""
}

// IsNonCJK reports whether r lies outside the Han, Hiragana, Katakana and
// halfwidth Katakana ranges. Latin letters and symbols such as '✳' are used as
// informal section markers in Japanese ingredient lists.
func IsNonCJK(r rune) bool {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	return !cjkPattern.Match(buf[:n])
}

// firstRune returns the first character of s.
func firstRune(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}
