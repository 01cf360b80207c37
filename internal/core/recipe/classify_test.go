package recipe

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		item string
		want Category
	}{
		{"chicken breast", CategoryProtein},
		{"Rice", CategoryCarb},
		{"onion", CategoryVegetable},
		{"bell pepper", CategoryVegetable},
		{"olive oil", CategoryFat},
		{"sesame oil", CategoryFat},
		{"cheddar", CategoryOther},
		// 同時符合多個分類時以優先順序決定
		{"egg noodles", CategoryProtein},
		{"garlic bread", CategoryCarb},
		{"green beans", CategoryProtein},
		{"avocado", CategoryFat},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CategoryOf(tt.item), tt.item)
	}
}

func TestClassifyPartitions(t *testing.T) {
	items := []string{"chicken breast", "rice", "onion", "bell pepper", "butter", "feta", "tofu", "spinach"}
	c := Classify(items)

	assert.Equal(t, []string{"chicken breast", "tofu"}, c.Proteins)
	assert.Equal(t, []string{"rice"}, c.Carbs)
	assert.Equal(t, []string{"onion", "bell pepper", "spinach"}, c.Vegetables)
	assert.Equal(t, []string{"butter"}, c.Fats)
	assert.Equal(t, []string{"feta"}, c.Other)

	total := len(c.Proteins) + len(c.Carbs) + len(c.Vegetables) + len(c.Fats) + len(c.Other)
	assert.Equal(t, len(items), total)
}

func TestInferStyles(t *testing.T) {
	assert.Equal(t, []string{StyleClassic}, InferStyles(nil))
	assert.Equal(t, []string{StyleClassic}, InferStyles([]string{"salt"}))
	assert.Equal(t, []string{"Tex-Mex"}, InferStyles([]string{"salt", "Cumin"}))
	assert.Equal(t, []string{"Asian-inspired", "Italian-ish", "Herby-lemon"},
		InferStyles([]string{"soy sauce", "basil", "lemon"}))
}

func TestSeasoningBlend(t *testing.T) {
	assert.Empty(t, SeasoningBlend(nil, zeroRand{}))

	pantry := []string{"salt", "black pepper", "garlic powder", "paprika", "cumin", "oregano", "dill", "sriracha", "miso", "lime", "rice vinegar", "olive oil"}
	for seed := int64(0); seed < 50; seed++ {
		blend := SeasoningBlend(pantry, rand.New(rand.NewSource(seed)))
		require.GreaterOrEqual(t, len(blend), 2)
		assert.Equal(t, []string{"salt", "pepper"}, blend[:2])

		// 2 warm + 1 herb + 1 spicy + 1 umami + 1 acid
		assert.Len(t, blend, 8)

		for _, item := range blend[2:] {
			assert.Contains(t, pantry, item)
		}
	}

	// 只含參考項目字樣的常備品不算擁有該項目
	compound := []string{"rice vinegar", "lemon pepper", "smoked paprika"}
	for seed := int64(0); seed < 200; seed++ {
		blend := SeasoningBlend(compound, rand.New(rand.NewSource(seed)))
		assert.Equal(t, []string{"salt", "pepper", "rice vinegar"}, blend)
		assert.NotContains(t, blend, "vinegar")
		assert.NotContains(t, blend, "lemon")
		assert.NotContains(t, blend, "paprika")
	}

	assert.Equal(t, []string{"salt", "pepper", "paprika"}, SeasoningBlend([]string{" Paprika "}, zeroRand{}))

	// 常備品只有一項也一定有 salt 與 pepper
	assert.Equal(t, []string{"salt", "pepper"}, SeasoningBlend([]string{"flour"}, zeroRand{}))
}

func TestParseDiet(t *testing.T) {
	assert.Equal(t, DietFlags{LowCarb: true}, ParseDiet("Low Carb"))
	assert.Equal(t, DietFlags{LowCarb: true, HighProtein: true}, ParseDiet("keto, high protein"))
	assert.Equal(t, DietFlags{DairyFree: true}, ParseDiet("dairy free"))
	assert.Equal(t, DietFlags{Vegetarian: true}, ParseDiet("vegan"))
	assert.Equal(t, DietFlags{}, ParseDiet(""))
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": ModeStandard, "standard": ModeStandard, "Cheaper": ModeCheaper, " healthier ": ModeHealthier} {
		got, err := ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseMode("fancier")
	assert.Error(t, err)
}

func TestUserInputNormalize(t *testing.T) {
	in := UserInput{Ingredients: List{" rice ", ""}, Diet: "  keto "}.Normalize()
	assert.Equal(t, List{"rice"}, in.Ingredients)
	assert.Equal(t, Count(DefaultServings), in.Servings)
	assert.Equal(t, Count(DefaultMaxTime), in.MaxTime)
	assert.Equal(t, "keto", in.Diet)

	in = UserInput{Servings: -3, MaxTime: 2}.Normalize()
	assert.Equal(t, Count(MinServings), in.Servings)
	assert.Equal(t, Count(MinMaxTime), in.MaxTime)
}

func TestCountUnmarshal(t *testing.T) {
	var in UserInput
	require.NoError(t, json.Unmarshal([]byte(`{"servings":2.6,"maxTime":17.5}`), &in))
	assert.Equal(t, Count(3), in.Servings)
	assert.Equal(t, Count(18), in.MaxTime)

	require.NoError(t, json.Unmarshal([]byte(`{"servings":4,"maxTime":null}`), &in))
	assert.Equal(t, Count(4), in.Servings)
	assert.Equal(t, Count(0), in.MaxTime)

	assert.Error(t, json.Unmarshal([]byte(`{"servings":"two"}`), &in))
}

func TestListUnmarshal(t *testing.T) {
	var in UserInput
	require.NoError(t, json.Unmarshal([]byte(`{"ingredients":"chicken breast, rice,, onion ","pantry":["salt"," ","olive oil"]}`), &in))
	assert.Equal(t, List{"chicken breast", "rice", "onion"}, in.Ingredients)
	assert.Equal(t, List{"salt", "olive oil"}, in.Pantry)

	assert.Error(t, json.Unmarshal([]byte(`{"ingredients":42}`), &in))
}

func TestPickSome(t *testing.T) {
	items := []string{"a", "b", "c"}
	got := pickSome(rand.New(rand.NewSource(7)), items, 5)
	assert.ElementsMatch(t, items, got)
	assert.Equal(t, []string{"a", "b", "c"}, items)

	assert.Empty(t, pickSome(zeroRand{}, nil, 2))
	assert.Equal(t, "", pick(zeroRand{}, nil))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Chicken Breast", titleCase("chicken breast"))
	assert.Equal(t, "BBQ  Tofu", titleCase("bBQ  tofu"))
}
