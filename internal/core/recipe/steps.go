package recipe

import "fmt"

// Format 食譜格式模板
type Format string

const (
	FormatSkilletBowl   Format = "Skillet Bowl"
	FormatSheetPanRoast Format = "Sheet Pan Roast"
	FormatOnePot        Format = "One-Pot"
	FormatStirFry       Format = "Stir-Fry"
	FormatTacosWraps    Format = "Tacos/Wraps"
	FormatSoupStew      Format = "Soup/Stew"
	FormatPastaish      Format = "Pasta-ish"
)

// Formats 可供抽選的七種格式
var Formats = []Format{
	FormatSkilletBowl,
	FormatSheetPanRoast,
	FormatOnePot,
	FormatStirFry,
	FormatTacosWraps,
	FormatSoupStew,
	FormatPastaish,
}

// stepWriters 每種格式的步驟文字；通用的備料步驟由 Steps 加在最前面
var stepWriters = map[Format]func(p *Plan) []string{
	FormatSheetPanRoast: sheetPanSteps,
	FormatSoupStew:      soupSteps,
	FormatStirFry:       stirFrySteps,
	FormatOnePot:        onePotSteps,
	FormatTacosWraps:    tacoSteps,
	FormatPastaish:      pastaSteps,
	FormatSkilletBowl:   skilletSteps,
}

// Steps 依格式產生已編號的步驟
func (p *Plan) Steps() []string {
	steps := []string{
		fmt.Sprintf("Prep: chop/trim your ingredients. If using %s, get it cooking first so everything finishes together.", firstNonEmpty(p.UseCarb, "a grain")),
	}

	writer, ok := stepWriters[p.Format]
	if !ok {
		writer = skilletSteps
	}
	steps = append(steps, writer(p)...)

	numbered := make([]string, len(steps))
	for i, s := range steps {
		numbered[i] = fmt.Sprintf("%d) %s", i+1, s)
	}
	return numbered
}

func sheetPanSteps(p *Plan) []string {
	what := "your ingredients"
	if len(p.Vegetables) > 0 {
		what = "your veggies"
	}
	minutes := "18–25"
	if p.quick() {
		minutes = "12–18"
	}
	return []string{
		fmt.Sprintf("Heat oven to 425°F. Toss %s with %s, salt + pepper, and any spices you like.", what, p.Fat),
		fmt.Sprintf("Add %s to the pan, season, and roast until cooked through (about %s min, depending on size).", p.mainIngredient(), minutes),
		fmt.Sprintf("Finish: add a splash of %s if you have it. Serve%s.", p.sauceOr("lemon/vinegar"), p.overCarb()),
	}
}

func soupSteps(p *Plan) []string {
	minutes := "20–30"
	if p.quick() {
		minutes = "10–15"
	}
	steps := []string{
		fmt.Sprintf("In a pot, warm %s. Sauté onions/veg first (5 min), then add %s and cook until lightly browned.", p.Fat, p.mainIngredient()),
		fmt.Sprintf("Add liquid if you have it (broth/stock/water). Simmer %s min. Season as you go with %s.", minutes, p.seasoning()),
	}
	if p.UseCarb != "" {
		steps = append(steps, fmt.Sprintf("Add %s near the end if it’s quick-cooking (or serve the stew over it).", p.UseCarb))
	}
	return append(steps,
		fmt.Sprintf("Finish with %s if available, then taste and adjust seasoning.", p.sauceOr("acid (lemon/vinegar)")),
	)
}

func stirFrySteps(p *Plan) []string {
	minutes := "6–8"
	if p.quick() {
		minutes = "4–6"
	}
	return []string{
		fmt.Sprintf("Heat a skillet on medium-high. Add %s. Cook %s until browned/cooked.", p.Fat, p.mainIngredient()),
		fmt.Sprintf("Add veggies and cook until crisp-tender (%s min).", minutes),
		fmt.Sprintf("Season with %s and add %s to brighten.", p.seasoning(), p.sauceOr("a splash of vinegar/lemon")),
		fmt.Sprintf("Serve%s.", p.overCarb()),
	}
}

func onePotSteps(p *Plan) []string {
	steps := []string{
		fmt.Sprintf("Warm %s in a pot. Sauté aromatics/veg (3–5 min). Add %s and cook until lightly browned.", p.Fat, p.mainIngredient()),
	}
	if p.UseCarb != "" {
		minutes := "18–25"
		if p.quick() {
			minutes = "12–18"
		}
		steps = append(steps,
			fmt.Sprintf("Add %s + enough water/broth to cook it. Bring to a simmer and cover.", p.UseCarb),
			fmt.Sprintf("Cook until tender, stirring once or twice (%s min).", minutes),
		)
	} else {
		minutes := "12–18"
		if p.quick() {
			minutes = "8–12"
		}
		steps = append(steps,
			fmt.Sprintf("Add a little water/broth if needed and cover to steam veggies until tender (%s min).", minutes),
		)
	}
	return append(steps,
		fmt.Sprintf("Season well with %s and finish with %s if you have it.", p.seasoning(), p.sauceOr("something acidic (lemon/vinegar)")),
	)
}

func tacoSteps(p *Plan) []string {
	return []string{
		fmt.Sprintf("In a skillet, cook %s in %s with spices (%s).", p.mainIngredient(), p.Fat, p.seasoning()),
		"Add veggies and cook until tender. Taste and adjust seasoning.",
		fmt.Sprintf("Build wraps/tacos with what you have. Add %s if available.", p.sauceOr("a squeeze of lemon/lime")),
		"Optional: serve with any side you have (rice, salad, roasted veg).",
	}
}

func pastaSteps(p *Plan) []string {
	return []string{
		fmt.Sprintf("Boil %s if you have it. Save a splash of cooking water.", firstNonEmpty(p.UseCarb, "pasta/noodles")),
		fmt.Sprintf("In a skillet, warm %s. Cook %s then add veggies.", p.Fat, p.mainIngredient()),
		fmt.Sprintf("Toss in cooked pasta + a splash of water. Season with %s and add %s if you have it.", p.seasoning(), p.sauceOr("tomato/soy/lemon")),
		"Finish and serve. Taste, adjust salt, and add pepper/acid.",
	}
}

func skilletSteps(p *Plan) []string {
	minutes := "7–10"
	if p.quick() {
		minutes = "5–7"
	}
	return []string{
		fmt.Sprintf("In a skillet, warm %s. Cook %s until done.", p.Fat, p.mainIngredient()),
		fmt.Sprintf("Add veggies and cook until tender (%s min).", minutes),
		fmt.Sprintf("Season with %s and add %s if available.", p.seasoning(), p.sauceOr("a squeeze of lemon/vinegar")),
		fmt.Sprintf("Serve in bowls%s.", p.overCarb()),
	}
}
