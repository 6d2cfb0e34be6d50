package grouping

// IngredientGroup is a run of ingredients sharing a purpose, e.g. "For the
// dressing". A nil Purpose is the default, unlabeled bucket.
type IngredientGroup struct {
	Purpose     *string  `json:"purpose"`
	Ingredients []string `json:"ingredients"`
}

// HasPurpose reports whether g is a labeled group.
func (g IngredientGroup) HasPurpose() bool {
	return g.Purpose != nil
}

// PurposeText returns the label, or "" for the default bucket.
func (g IngredientGroup) PurposeText() string {
	if g.Purpose == nil {
		return ""
	}
	return *g.Purpose
}

// Key identifies a group within a single grouping pass. The zero Key is the
// default bucket and never collides with a labeled key, including Named("").
type Key struct {
	purpose string
	named   bool
}

// DefaultKey is the unlabeled bucket.
var DefaultKey = Key{}

// Named returns the key for purpose.
func Named(purpose string) Key {
	return Key{purpose: purpose, named: true}
}

// headingKey maps an empty label to the default bucket.
func headingKey(text string) Key {
	if text == "" {
		return DefaultKey
	}
	return Named(text)
}

// groupSet is an insertion-ordered multimap from Key to ingredients.
type groupSet struct {
	keys  []Key
	items map[Key][]string
}

func newGroupSet() *groupSet {
	return &groupSet{items: make(map[Key][]string)}
}

// ensure creates an empty group for k if none exists yet.
func (s *groupSet) ensure(k Key) {
	if _, ok := s.items[k]; ok {
		return
	}
	s.keys = append(s.keys, k)
	s.items[k] = []string{}
}

func (s *groupSet) add(k Key, ingredient string) {
	s.ensure(k)
	s.items[k] = append(s.items[k], ingredient)
}

func (s *groupSet) remove(k Key) {
	if _, ok := s.items[k]; !ok {
		return
	}
	delete(s.items, k)
	for i, key := range s.keys {
		if key == k {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
}

// dropEmptyDefault removes the default bucket iff it holds nothing.
func (s *groupSet) dropEmptyDefault() {
	if items, ok := s.items[DefaultKey]; ok && len(items) == 0 {
		s.remove(DefaultKey)
	}
}

// result returns the groups in first-insertion order. When nonEmpty is set,
// groups without ingredients are left out.
func (s *groupSet) result(nonEmpty bool) []IngredientGroup {
	out := make([]IngredientGroup, 0, len(s.keys))
	for _, k := range s.keys {
		items := s.items[k]
		if nonEmpty && len(items) == 0 {
			continue
		}
		g := IngredientGroup{Ingredients: items}
		if k.named {
			p := k.purpose
			g.Purpose = &p
		}
		out = append(out, g)
	}
	return out
}
