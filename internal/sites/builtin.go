package sites

import (
	"github.com/mwhite7112/woodpantry-ingredient-groups/internal/grouping"
)

// structuralSite pairs heading and item selectors, validated against the
// ingredients already extracted from the page.
type structuralSite struct {
	host, name    string
	heading, item string
}

func (s structuralSite) Host() string         { return s.host }
func (s structuralSite) Name() string         { return s.name }
func (s structuralSite) Algorithm() Algorithm { return AlgorithmStructural }

func (s structuralSite) IngredientGroups(in Input) ([]grouping.IngredientGroup, error) {
	return grouping.Structural(in.Ingredients, in.Doc.Selection, s.heading, s.item,
		grouping.StructuralOptions{Scorer: in.Scorer})
}

// classifySite reads groups straight from the list markup.
type classifySite struct {
	host, name string
	opts       grouping.ClassifyOptions
}

func (s classifySite) Host() string         { return s.host }
func (s classifySite) Name() string         { return s.name }
func (s classifySite) Algorithm() Algorithm { return AlgorithmClassify }

func (s classifySite) IngredientGroups(in Input) ([]grouping.IngredientGroup, error) {
	return grouping.Classify(in.Doc.Selection, s.opts)
}

func CookPad() Site {
	return structuralSite{
		host:    "cookpad.com",
		name:    "Cookpad",
		heading: ".headline li",
		item:    ".not-headline li",
	}
}

func Kurashiru() Site {
	return classifySite{
		host: "kurashiru.com",
		name: "Kurashiru",
		opts: grouping.ClassifyOptions{
			ContainerSel: ".ingredient-list-item",
			HeaderClass:  "group-title",
		},
	}
}

func DelishKitchen() Site {
	return classifySite{
		host: "delishkitchen.tv",
		name: "Delish Kitchen",
		opts: grouping.ClassifyOptions{
			ContainerSel: ".ingredient-list",
			HeaderClass:  "ingredient-group__header",
			QuantitySel:  ".ingredient-serving",
		},
	}
}

func RakutenRecipe() Site {
	return classifySite{
		host: "recipe.rakuten.co.jp",
		name: "Rakuten Recipe",
		opts: grouping.ClassifyOptions{
			ContainerSel: ".recipe_material__list",
			QuantitySel:  ".recipe_material__item_serving",
		},
	}
}

// Macaroni groups nested wrapper items when the page has any and otherwise
// falls back to a Japanese flat-list grouping.
type Macaroni struct{}

var macaroniLayout = grouping.WrappedOptions{
	ContainerSel: "ul.articleShow__contentsMaterialItems",
	WrapperClass: "articleShow__contentsMateriialItem--groupWrapper",
	PurposeSel:   "span.articleShow__contentsMaterialName--strong",
	ItemSel:      "li.articleShow__contentsMateriialItem",
}

func (Macaroni) Host() string         { return "macaro-ni.jp" }
func (Macaroni) Name() string         { return "Macaroni" }
func (Macaroni) Algorithm() Algorithm { return AlgorithmWrapped }

func (Macaroni) IngredientGroups(in Input) ([]grouping.IngredientGroup, error) {
	if groups, ok := grouping.Wrapped(in.Doc.Selection, macaroniLayout); ok {
		return groups, nil
	}
	return grouping.Flat(in.Ingredients, "ja"), nil
}

// Flat is used for hosts without markup support of their own.
type Flat struct{}

func (Flat) Host() string         { return "" }
func (Flat) Name() string         { return "Generic" }
func (Flat) Algorithm() Algorithm { return AlgorithmFlat }

func (Flat) IngredientGroups(in Input) ([]grouping.IngredientGroup, error) {
	return grouping.Flat(in.Ingredients, in.Language), nil
}
