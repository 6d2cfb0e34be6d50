package grouping

import (
	"strings"

	"golang.org/x/text/language"
)

// IsCJKLanguage reports whether tag names a locale whose ingredient lists
// are written in Han/Kana script. "jp" is accepted as a common misspelling
// of "ja".
func IsCJKLanguage(tag string) bool {
	tag = strings.TrimSpace(tag)
	if strings.EqualFold(tag, "jp") {
		return true
	}
	t, err := language.Parse(tag)
	if err != nil {
		return false
	}
	base, _ := t.Base()
	switch base.String() {
	case "ja", "zh":
		return true
	}
	return false
}

// Flat groups an already extracted ingredient list without any markup. Inline
// markers always form their own groups; for CJK languages a leading non-CJK
// character does as well. Everything else lands in the default bucket. Groups,
// the default one included, are created on first use, so no group is empty.
func Flat(ingredients []string, lang string) []IngredientGroup {
	cjk := IsCJKLanguage(lang)
	groups := newGroupSet()

	for _, ing := range ingredients {
		if m, ok := Marker(ing); ok {
			groups.add(Named(m), ing)
			continue
		}
		if r, ok := firstRune(ing); ok && cjk && IsNonCJK(r) {
			groups.add(Named(string(r)), ing)
			continue
		}
		groups.add(DefaultKey, ing)
	}

	return groups.result(false)
}
