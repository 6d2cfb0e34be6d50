package sites

import (
	"errors"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mwhite7112/woodpantry-ingredient-groups/internal/grouping"
)

// Algorithm names the grouping strategy a site uses.
type Algorithm string

const (
	AlgorithmStructural Algorithm = "structural"
	AlgorithmClassify   Algorithm = "classify"
	AlgorithmWrapped    Algorithm = "wrapped"
	AlgorithmFlat       Algorithm = "flat"
)

// FallbackCountMismatch is reported when structural grouping could not account
// for every ingredient and all of them were returned ungrouped instead.
const FallbackCountMismatch = "count_mismatch"

// Input is everything a site needs to group one recipe page.
type Input struct {
	Doc         *goquery.Document
	Ingredients []string
	Language    string
	Scorer      grouping.Scorer
}

// Site groups the ingredients of one recipe host.
type Site interface {
	Host() string
	Name() string
	Algorithm() Algorithm
	IngredientGroups(in Input) ([]grouping.IngredientGroup, error)
}

// Outcome is the result of Group. Cause is the error that triggered a
// fallback.
type Outcome struct {
	Groups   []grouping.IngredientGroup
	Fallback string
	Cause    error
}

// Group runs site over in. A count mismatch is not an error: the supplied
// ingredients come back as a single default group and Fallback says why.
func Group(site Site, in Input) (Outcome, error) {
	groups, err := site.IngredientGroups(in)
	if err != nil {
		var mismatch *grouping.GroupCountMismatchError
		if errors.As(err, &mismatch) {
			return Outcome{Groups: ungrouped(in.Ingredients), Fallback: FallbackCountMismatch, Cause: err}, nil
		}
		return Outcome{}, err
	}
	return Outcome{Groups: groups}, nil
}

func ungrouped(ingredients []string) []grouping.IngredientGroup {
	items := make([]string, len(ingredients))
	copy(items, ingredients)
	return []grouping.IngredientGroup{{Ingredients: items}}
}

// Registry maps hosts to sites.
type Registry struct {
	sites    map[string]Site
	fallback Site
}

// NewRegistry returns a registry of the given sites. Hosts without a site are
// grouped by the flat-list fallback.
func NewRegistry(sites ...Site) *Registry {
	r := &Registry{sites: make(map[string]Site, len(sites)), fallback: Flat{}}
	for _, s := range sites {
		r.sites[canonicalHost(s.Host())] = s
	}
	return r
}

// Default returns a registry of every built-in site.
func Default() *Registry {
	return NewRegistry(
		CookPad(),
		Kurashiru(),
		DelishKitchen(),
		RakutenRecipe(),
		Macaroni{},
	)
}

// Lookup returns the site registered for host. The boolean is false when the
// flat-list fallback was returned instead.
func (r *Registry) Lookup(host string) (Site, bool) {
	if s, ok := r.sites[canonicalHost(host)]; ok {
		return s, true
	}
	return r.fallback, false
}

// Sites lists registered sites ordered by host.
func (r *Registry) Sites() []Site {
	out := make([]Site, 0, len(r.sites))
	for _, s := range r.sites {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Host() < out[j].Host() })
	return out
}

func canonicalHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	return strings.TrimPrefix(host, "www.")
}
