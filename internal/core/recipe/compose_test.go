package recipe

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroRand 永遠選第一項
type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

// formatRand 抽格式時回傳指定索引，其餘一律為 0
type formatRand struct{ format int }

func (r formatRand) Intn(n int) int {
	if n == len(Formats) {
		return r.format
	}
	return 0
}

func exampleInput() UserInput {
	return UserInput{
		Ingredients: List{"chicken breast", "rice", "onion", "bell pepper"},
		Pantry:      List{"salt", "black pepper", "garlic powder", "paprika", "cumin", "olive oil"},
		Servings:    2,
		MaxTime:     30,
	}
}

// section 取出某段落標題到下一個標題之間的內容
func section(text, header string) string {
	start := strings.Index(text, header)
	if start < 0 {
		return ""
	}
	rest := text[start+len(header):]
	end := len(rest)
	for _, h := range Headers {
		if i := strings.Index(rest, "\n"+h); i >= 0 && i < end {
			end = i
		}
	}
	return rest[:end]
}

func TestComposeChickenRice(t *testing.T) {
	text, err := Compose(exampleInput(), ModeStandard, zeroRand{})
	require.NoError(t, err)

	expected := strings.Join([]string{
		"1) Recipe name",
		"Tex-Mex Chicken Breast Rice Skillet Bowl",
		"",
		"2) Quick summary",
		"Standard tex-mex recipe built from what you listed. Designed for ~30 minutes and 2 serving(s).",
		"",
		"3) Ingredients",
		"• 2 serving(s) worth of chicken breast (about 8–12 oz total)",
		"• rice (about 1 cup(s) dry / or enough for 2 servings)",
		"• Veggies: onion, bell pepper",
		"• olive oil (1–2 tbsp)",
		"• Seasoning blend: salt, pepper, garlic powder, paprika",
		"",
		"4) Steps",
		"1) Prep: chop/trim your ingredients. If using rice, get it cooking first so everything finishes together.",
		"2) In a skillet, warm olive oil. Cook chicken breast until done.",
		"3) Add veggies and cook until tender (7–10 min).",
		"4) Season with salt, pepper, garlic powder, paprika and add a squeeze of lemon/vinegar if available.",
		"5) Serve in bowls over rice.",
		"",
		"5) Time + servings",
		"• Time: ~30 minutes (approx)",
		"• Servings: 2",
		"",
		"6) Optional add-ons (up to 3 items)",
		"• a lemon/lime",
		"• a can of beans or chickpeas",
		"• frozen mixed vegetables",
		"",
		"7) Tips to make it better",
		"• Taste near the end and add a little acid (lemon/vinegar) if you have it.",
		"• Add salt in small pinches — it’s the fastest way to improve flavor.",
		"• If it feels flat, add a warm spice (paprika/cumin) or a tiny bit of heat.",
	}, "\n")
	assert.Equal(t, expected, text)
}

func TestComposeChickenRiceAnySeed(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		text, err := Compose(exampleInput(), ModeStandard, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		head := section(text, HeaderName) + section(text, HeaderIngreds)
		assert.True(t, strings.Contains(head, "chicken breast") || strings.Contains(head, "Chicken Breast"), "seed %d", seed)
		assert.Contains(t, text, "Time: ~30 minutes")
		assert.Contains(t, text, "Servings: 2")

		var seasoningLine string
		for _, line := range strings.Split(text, "\n") {
			if strings.HasPrefix(line, "• Seasoning blend: ") {
				seasoningLine = line
			}
		}
		assert.Contains(t, seasoningLine, "salt")
		assert.Contains(t, seasoningLine, "pepper")
	}
}

func TestComposeEmptyInput(t *testing.T) {
	text, err := Compose(UserInput{Ingredients: List{" ", ""}, Diet: "keto"}, ModeStandard, zeroRand{})
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Empty(t, text)
}

func TestComposeHeadersInOrder(t *testing.T) {
	inputs := []UserInput{
		exampleInput(),
		{Ingredients: List{"mystery grain"}},
		{Pantry: List{"soy sauce", "ginger", "cheddar cheese"}},
	}
	for _, mode := range []Mode{ModeStandard, ModeCheaper, ModeHealthier} {
		for _, in := range inputs {
			for seed := int64(0); seed < 20; seed++ {
				text, err := Compose(in, mode, rand.New(rand.NewSource(seed)))
				require.NoError(t, err)
				require.NotEmpty(t, text)

				last := -1
				for _, h := range Headers {
					i := strings.Index(text, h)
					require.Greater(t, i, last, "header %q out of order", h)
					last = i
				}
			}
		}
	}
}

func TestComposeLowCarbSuppressesCarb(t *testing.T) {
	in := exampleInput()
	for _, diet := range []string{"low carb please", "Keto"} {
		in.Diet = diet
		for seed := int64(0); seed < 30; seed++ {
			rng := rand.New(rand.NewSource(seed))
			plan := NewPlan(in.Normalize(), ModeStandard, rng)
			assert.Equal(t, "rice", plan.Carb)
			assert.Empty(t, plan.UseCarb)

			text := plan.Render()
			ingredients := section(text, HeaderIngreds)
			assert.NotContains(t, ingredients, "rice (about")
			assert.NotContains(t, section(text, HeaderName), "Rice")
			assert.Contains(t, text, "Low-carb note:")
		}
	}
}

func TestComposeModes(t *testing.T) {
	in := exampleInput()
	in.Pantry = append(in.Pantry, "cheddar cheese")

	text, err := Compose(in, ModeCheaper, zeroRand{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(section(text, HeaderName), "\nBudget "))
	assert.Contains(t, text, "Budget-first tex-mex recipe")
	assert.Contains(t, text, "Extra tweaks (Budget-first):")
	assert.Contains(t, text, "Optional: a sprinkle of cheese")

	text, err = Compose(in, ModeHealthier, zeroRand{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(section(text, HeaderName), "\nLight "))
	assert.Contains(t, text, "Extra tweaks (Healthier):")
	assert.NotContains(t, text, "sprinkle of cheese")

	text, err = Compose(in, ModeStandard, zeroRand{})
	require.NoError(t, err)
	assert.NotContains(t, text, "Extra tweaks")
	assert.Contains(t, text, "Optional: a sprinkle of cheese")

	in.Diet = "dairy-free"
	text, err = Compose(in, ModeStandard, zeroRand{})
	require.NoError(t, err)
	assert.NotContains(t, text, "sprinkle of cheese")
}

func TestComposeVegetarianUsesFirstOther(t *testing.T) {
	in := UserInput{Ingredients: List{"mystery grain", "seitan"}, Diet: "vegetarian"}
	plan := NewPlan(in.Normalize(), ModeStandard, zeroRand{})

	assert.Equal(t, "mystery grain", plan.Protein)
	assert.Equal(t, StyleClassic, plan.Style)
	assert.Equal(t, "oil", plan.Fat)
	assert.Empty(t, plan.Blend)
	assert.Equal(t, []string{"mystery grain", "seitan"}, plan.Vegetables)
	assert.Equal(t, "Mystery Grain Skillet Bowl", plan.Name())
}

func TestComposePantryOnly(t *testing.T) {
	text, err := Compose(UserInput{Pantry: List{"soy sauce", "sesame oil"}}, ModeStandard, zeroRand{})
	require.NoError(t, err)

	assert.Contains(t, text, "Asian Skillet Bowl")
	assert.Contains(t, text, "worth of your main ingredient")
	assert.Contains(t, text, "• sesame oil (1–2 tbsp)")
	assert.Contains(t, text, "• Optional sauce from pantry: soy sauce (to taste)")
	assert.Contains(t, text, "• Seasoning blend: salt, pepper, soy sauce")
}

func TestStepsPerFormat(t *testing.T) {
	in := exampleInput().Normalize()
	lowCarb := in
	lowCarb.Diet = "keto"

	tests := []struct {
		format Format
		in     UserInput
		steps  int
		last   string
	}{
		{FormatSkilletBowl, in, 5, "5) Serve in bowls over rice."},
		{FormatSheetPanRoast, in, 4, "4) Finish: add a splash of lemon/vinegar if you have it. Serve over rice."},
		{FormatOnePot, in, 5, "5) Season well with salt, pepper, garlic powder, paprika and finish with something acidic (lemon/vinegar) if you have it."},
		{FormatOnePot, lowCarb, 4, "4) Season well with salt, pepper, garlic powder, paprika and finish with something acidic (lemon/vinegar) if you have it."},
		{FormatStirFry, in, 5, "5) Serve over rice."},
		{FormatTacosWraps, in, 5, "5) Optional: serve with any side you have (rice, salad, roasted veg)."},
		{FormatSoupStew, in, 5, "5) Finish with acid (lemon/vinegar) if available, then taste and adjust seasoning."},
		{FormatSoupStew, lowCarb, 4, "4) Finish with acid (lemon/vinegar) if available, then taste and adjust seasoning."},
		{FormatPastaish, in, 5, "5) Finish and serve. Taste, adjust salt, and add pepper/acid."},
	}

	for _, tt := range tests {
		t.Run(string(tt.format)+"/"+tt.in.Diet, func(t *testing.T) {
			idx := -1
			for i, f := range Formats {
				if f == tt.format {
					idx = i
				}
			}
			require.GreaterOrEqual(t, idx, 0)

			plan := NewPlan(tt.in, ModeStandard, formatRand{format: idx})
			require.Equal(t, tt.format, plan.Format)

			steps := plan.Steps()
			require.Len(t, steps, tt.steps)
			assert.True(t, strings.HasPrefix(steps[0], "1) Prep:"))
			assert.Equal(t, tt.last, steps[len(steps)-1])
		})
	}
}

func TestStepsQuickTimings(t *testing.T) {
	in := exampleInput()
	in.MaxTime = 15
	plan := NewPlan(in.Normalize(), ModeStandard, zeroRand{})

	assert.Contains(t, plan.Steps()[2], "(5–7 min)")
}

func TestServiceCompose(t *testing.T) {
	svc := NewService(func() Rand { return zeroRand{} })

	text, err := svc.Compose(exampleInput(), ModeStandard)
	require.NoError(t, err)
	assert.Contains(t, text, "Tex-Mex Chicken Breast Rice Skillet Bowl")

	_, err = svc.Compose(UserInput{}, ModeStandard)
	assert.ErrorIs(t, err, ErrEmptyInput)

	// 預設隨機來源
	text, err = NewService(nil).Compose(exampleInput(), ModeHealthier)
	require.NoError(t, err)
	assert.Contains(t, text, HeaderTips)
}
