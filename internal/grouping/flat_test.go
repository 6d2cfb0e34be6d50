package grouping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCJKLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want bool
	}{
		{tag: "ja", want: true},
		{tag: "ja-JP", want: true},
		{tag: "JA", want: true},
		{tag: "jp", want: true},
		{tag: "zh-Hant-TW", want: true},
		{tag: "en", want: false},
		{tag: "en-US", want: false},
		{tag: "ko", want: false},
		{tag: "", want: false},
		{tag: "not a tag", want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.tag, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, IsCJKLanguage(tc.tag))
		})
	}
}

func TestFlat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ingredients []string
		lang        string
		want        []IngredientGroup
	}{
		{
			name:        "japanese leading letters form groups",
			ingredients: []string{"A 砂糖", "塩", "B 醤油"},
			lang:        "ja",
			want: []IngredientGroup{
				{Purpose: ptr("A"), Ingredients: []string{"A 砂糖"}},
				{Purpose: nil, Ingredients: []string{"塩"}},
				{Purpose: ptr("B"), Ingredients: []string{"B 醤油"}},
			},
		},
		{
			name:        "non-CJK language keeps one default group in order",
			ingredients: []string{"A cup of flour", "2 eggs", "Butter"},
			lang:        "en",
			want: []IngredientGroup{
				{Purpose: nil, Ingredients: []string{"A cup of flour", "2 eggs", "Butter"}},
			},
		},
		{
			name:        "markers group in any language",
			ingredients: []string{"(A) soy sauce", "rice", "(A) mirin"},
			lang:        "en",
			want: []IngredientGroup{
				{Purpose: ptr("(A)"), Ingredients: []string{"(A) soy sauce", "(A) mirin"}},
				{Purpose: nil, Ingredients: []string{"rice"}},
			},
		},
		{
			name:        "marker wins over leading character",
			ingredients: []string{"(1)砂糖", "✳塩"},
			lang:        "ja",
			want: []IngredientGroup{
				{Purpose: ptr("(1)"), Ingredients: []string{"(1)砂糖"}},
				{Purpose: ptr("✳"), Ingredients: []string{"✳塩"}},
			},
		},
		{
			name:        "empty ingredient stays in the default group",
			ingredients: []string{"", "塩"},
			lang:        "ja",
			want: []IngredientGroup{
				{Purpose: nil, Ingredients: []string{"", "塩"}},
			},
		},
		{
			name:        "empty input yields no groups",
			ingredients: nil,
			lang:        "ja",
			want:        []IngredientGroup{},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Flat(tc.ingredients, tc.lang))
		})
	}
}

func TestFlat_Idempotent(t *testing.T) {
	t.Parallel()

	in := []string{"A 砂糖", "塩", "(B) 醤油", "B 酒"}
	assert.Equal(t, Flat(in, "ja"), Flat(in, "ja"))
}
