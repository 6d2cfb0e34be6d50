package grouping

import (
	"github.com/PuerkitoBio/goquery"
)

// StructuralOptions tunes Structural. The zero value matches with Dice.
type StructuralOptions struct {
	Scorer Scorer
}

// Structural groups ingredients by the heading elements that precede the item
// elements in doc. Every emitted ingredient is resolved against ingredients,
// so the output never contains text that is not in the authoritative list.
//
// The item selector must match exactly len(ingredients) elements; otherwise a
// *GroupCountMismatchError is returned.
func Structural(ingredients []string, doc *goquery.Selection, headingSel, itemSel string, opts StructuralOptions) ([]IngredientGroup, error) {
	found := doc.Find(itemSel).Length()
	if found != len(ingredients) {
		return nil, &GroupCountMismatchError{Found: found, Expected: len(ingredients)}
	}

	groups := newGroupSet()
	current := DefaultKey

	var err error
	doc.Find(headingSel + ", " + itemSel).EachWithBreak(func(_ int, el *goquery.Selection) bool {
		if isHeading(el, headingSel) {
			current = headingKey(Normalize(el.Text()))
			groups.ensure(current)
			return true
		}
		var match string
		match, _, err = BestMatchWith(opts.Scorer, Normalize(el.Text()), ingredients)
		if err != nil {
			return false
		}
		groups.add(current, match)
		return true
	})
	if err != nil {
		return nil, err
	}

	return groups.result(true), nil
}

// isHeading checks el against the heading matches of its own parent so that
// headings nested inside item lists are still recognised.
func isHeading(el *goquery.Selection, headingSel string) bool {
	parent := el.Parent()
	if parent.Length() == 0 {
		return el.Is(headingSel)
	}
	return parent.Find(headingSel).IsSelection(el)
}
