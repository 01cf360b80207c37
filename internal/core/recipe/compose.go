package recipe

import (
	"fmt"
	"strings"

	"recipe-suggester/internal/pkg/common"
)

// 輸出的七個段落標題，順序固定
const (
	HeaderName     = "1) Recipe name"
	HeaderSummary  = "2) Quick summary"
	HeaderIngreds  = "3) Ingredients"
	HeaderSteps    = "4) Steps"
	HeaderTime     = "5) Time + servings"
	HeaderAddOns   = "6) Optional add-ons (up to 3 items)"
	HeaderTips     = "7) Tips to make it better"
	bullet         = "• "
	tweaksTemplate = "Extra tweaks (%s):"
)

// Headers 依輸出順序排列的段落標題
var Headers = []string{HeaderName, HeaderSummary, HeaderIngreds, HeaderSteps, HeaderTime, HeaderAddOns, HeaderTips}

var baseTips = []string{
	"Taste near the end and add a little acid (lemon/vinegar) if you have it.",
	"Add salt in small pinches — it’s the fastest way to improve flavor.",
	"If it feels flat, add a warm spice (paprika/cumin) or a tiny bit of heat.",
}

// ErrEmptyInput 食材與常備品皆為空
var ErrEmptyInput = common.ErrEmptyInput

// Compose 由使用者輸入組合食譜文字
func Compose(in UserInput, mode Mode, rng Rand) (string, error) {
	in = in.Normalize()
	if in.IsEmpty() {
		return "", ErrEmptyInput
	}
	return NewPlan(in, mode, rng).Render(), nil
}

// Summary 一句話摘要
func (p *Plan) Summary() string {
	return fmt.Sprintf("%s %s recipe built from what you listed. Designed for ~%d minutes and %d serving(s).",
		p.Mode.Note(), strings.ToLower(p.Style), p.MaxTime, p.Servings)
}

// IngredientLines 食材段落（含大約份量）
func (p *Plan) IngredientLines() []string {
	lines := []string{
		fmt.Sprintf("%d serving(s) worth of %s (about %d–%d oz total)",
			p.Servings, firstNonEmpty(p.Protein, p.ProteinFallback, mainIngredientFallback), p.Servings*4, p.Servings*6),
	}
	if p.UseCarb != "" {
		lines = append(lines, fmt.Sprintf("%s (about %d cup(s) dry / or enough for %d servings)", p.UseCarb, (p.Servings+1)/2, p.Servings))
	}
	if len(p.Vegetables) > 0 {
		lines = append(lines, "Veggies: "+strings.Join(p.Vegetables, ", "))
	}
	lines = append(lines, fmt.Sprintf("%s (1–2 tbsp)", p.Fat))
	if len(p.Blend) > 0 {
		lines = append(lines, "Seasoning blend: "+strings.Join(p.Blend, ", "))
	}
	if p.Sauce != "" {
		lines = append(lines, fmt.Sprintf("Optional sauce from pantry: %s (to taste)", p.Sauce))
	}
	if p.Cheese {
		lines = append(lines, "Optional: a sprinkle of cheese (if you want)")
	}
	return lines
}

// Tweaks 模式與飲食相關的額外建議
func (p *Plan) Tweaks() []string {
	var tweaks []string
	switch p.Mode {
	case ModeCheaper:
		tweaks = append(tweaks,
			"Lean on pantry staples (rice/pasta/beans) and skip optional extras.",
			"Stretch the protein by adding more veggies or beans if you have them.",
			"Use cheaper seasoning combos (salt, pepper, garlic powder, paprika) and a splash of vinegar/lemon to boost flavor.",
		)
	case ModeHealthier:
		tweaks = append(tweaks,
			"Use a bit less oil and keep veggies slightly crisp (don’t overcook).",
			"Add an extra veggie if you have it; use whole grains if available.",
			"Balance the plate: protein + lots of veg + modest carbs.",
		)
	}
	if p.Diet.HighProtein && p.Protein == "" && p.ProteinFallback != "" {
		tweaks = append(tweaks, "High-protein note: your best protein option here is "+p.ProteinFallback+".")
	}
	if p.Diet.LowCarb {
		tweaks = append(tweaks, "Low-carb note: skip grains; serve as a veggie bowl or wrap in lettuce if you have it.")
	}
	return tweaks
}

// Render 將計畫組成最終文字
func (p *Plan) Render() string {
	var lines []string
	section := func(header string, body ...string) {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, header)
		lines = append(lines, body...)
	}

	section(HeaderName, p.Name())
	section(HeaderSummary, p.Summary())
	section(HeaderIngreds, bullets(p.IngredientLines())...)
	section(HeaderSteps, p.Steps()...)
	section(HeaderTime,
		fmt.Sprintf("%sTime: ~%d minutes (approx)", bullet, p.MaxTime),
		fmt.Sprintf("%sServings: %d", bullet, p.Servings),
	)
	section(HeaderAddOns, bullets(p.AddOns)...)
	section(HeaderTips, bullets(baseTips)...)

	if tweaks := p.Tweaks(); len(tweaks) > 0 {
		section(fmt.Sprintf(tweaksTemplate, p.Mode.Note()), bullets(tweaks)...)
	}

	return strings.Join(lines, "\n")
}

func bullets(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = bullet + item
	}
	return out
}
