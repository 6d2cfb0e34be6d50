package grouping

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// ClassifyOptions describes the markup conventions of one site for Classify.
// Only ContainerSel is required.
type ClassifyOptions struct {
	// ContainerSel selects the ingredient list containers; their li
	// descendants are the items.
	ContainerSel string
	// HeaderClass marks an item as a section header.
	HeaderClass string
	// GroupItemClass marks an item as belonging to the preceding header.
	// Items without it fall back to the default bucket.
	GroupItemClass string
	// QuantitySel selects an item's quantity element; an empty one turns the
	// item into a section header.
	QuantitySel string
}

// line is one list item reduced to what the grouping decision needs.
type line struct {
	text      string
	header    bool
	ungrouped bool
}

// classifier carries the state of one Classify pass.
type classifier struct {
	groups  *groupSet
	current Key
}

func newClassifier() *classifier {
	groups := newGroupSet()
	groups.ensure(DefaultKey)
	return &classifier{groups: groups, current: DefaultKey}
}

// step applies one item. Headers switch the current purpose and contribute no
// ingredient. Ingredients with an inline marker or a leading non-CJK character
// go to that marker's group without touching the current purpose.
func (c *classifier) step(l line) {
	if l.header {
		c.current = headingKey(l.text)
		c.groups.ensure(c.current)
		return
	}
	if l.text == "" {
		return
	}
	if m, ok := Marker(l.text); ok {
		c.groups.add(Named(m), l.text)
		return
	}
	if r, _ := firstRune(l.text); IsNonCJK(r) {
		c.groups.add(Named(string(r)), l.text)
		return
	}
	if l.ungrouped {
		c.current = DefaultKey
	}
	c.groups.add(c.current, l.text)
}

func (c *classifier) result() []IngredientGroup {
	c.groups.dropEmptyDefault()
	return c.groups.result(false)
}

// Classify groups the li items under opts.ContainerSel, in document order,
// using whichever of the configured header conventions apply. Groups created
// by a header are kept even when no ingredient follows them.
func Classify(doc *goquery.Selection, opts ClassifyOptions) ([]IngredientGroup, error) {
	c := newClassifier()

	var err error
	doc.Find(opts.ContainerSel).EachWithBreak(func(_ int, container *goquery.Selection) bool {
		container.Find("li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
			var l line
			l, err = readLine(li, opts)
			if err != nil {
				return false
			}
			c.step(l)
			return true
		})
		return err == nil
	})
	if err != nil {
		return nil, err
	}

	return c.result(), nil
}

func readLine(li *goquery.Selection, opts ClassifyOptions) (line, error) {
	l := line{text: Normalize(li.Text())}

	if opts.HeaderClass != "" && li.HasClass(opts.HeaderClass) {
		l.header = true
		return l, nil
	}

	if opts.QuantitySel != "" {
		qty := li.Find(opts.QuantitySel).First()
		if qty.Length() == 0 {
			return line{}, fmt.Errorf("quantity %q in item %q: %w", opts.QuantitySel, l.text, ErrMissingElement)
		}
		if qty.Text() == "" {
			l.header = true
			return l, nil
		}
	}

	l.ungrouped = opts.GroupItemClass != "" && !li.HasClass(opts.GroupItemClass)
	return l, nil
}
