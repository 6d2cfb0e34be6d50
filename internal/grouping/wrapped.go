package grouping

import (
	"github.com/PuerkitoBio/goquery"
)

// WrappedOptions describes lists whose groups are nested wrapper items:
//
//	<ul container>
//	  <li>loose ingredient</li>
//	  <li wrapper><span purpose>Sauce</span><ul><li item>...</li></ul></li>
//	</ul>
type WrappedOptions struct {
	ContainerSel string
	WrapperClass string
	PurposeSel   string
	ItemSel      string
}

// Wrapped groups the direct li children of the first container. Wrapper
// children contribute a labeled group of their items; any other child is a
// default-bucket ingredient. The default bucket is dropped when empty.
//
// ok is false when the document has no wrapper at all, in which case the
// caller should group by other means.
func Wrapped(doc *goquery.Selection, opts WrappedOptions) (groups []IngredientGroup, ok bool) {
	if doc.Find("li." + opts.WrapperClass).Length() == 0 {
		return nil, false
	}

	set := newGroupSet()
	set.ensure(DefaultKey)

	doc.Find(opts.ContainerSel).First().ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		if !li.HasClass(opts.WrapperClass) {
			set.add(DefaultKey, Normalize(li.Text()))
			return
		}
		key := headingKey(Normalize(li.Find(opts.PurposeSel).First().Text()))
		set.ensure(key)
		li.Find(opts.ItemSel).Each(func(_ int, item *goquery.Selection) {
			set.add(key, Normalize(item.Text()))
		})
	})

	set.dropEmptyDefault()
	return set.result(false), true
}
