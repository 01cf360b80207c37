package recipe

import "strings"

const mainIngredientFallback = "your main ingredient"

var addOnIdeas = []string{
	"a lemon/lime",
	"a can of beans or chickpeas",
	"frozen mixed vegetables",
	"a jar sauce (marinara/teriyaki)",
	"tortillas or bread",
	"plain yogurt",
	"shredded cheese",
	"fresh herbs",
}

// Plan 單次組合的中間結果，組合完即丟棄
type Plan struct {
	Mode     Mode
	Servings int
	MaxTime  int
	Diet     DietFlags

	Format Format
	Style  string
	Blend  []string

	Protein         string
	ProteinFallback string
	Carb            string
	// UseCarb 實際使用的澱粉，低醣時為空
	UseCarb    string
	Vegetables []string
	Fat        string
	Sauce      string
	Cheese     bool
	AddOns     []string
}

// NewPlan 依輸入挑選各項組成；in 需先經 Normalize
//
// 隨機抽取順序固定：風格、調味、格式、蛋白質、澱粉、蔬菜、油脂、醬汁、加購。
func NewPlan(in UserInput, mode Mode, rng Rand) *Plan {
	c := Classify(in.Ingredients)
	diet := ParseDiet(in.Diet)

	p := &Plan{
		Mode:     mode,
		Servings: int(in.Servings),
		MaxTime:  int(in.MaxTime),
		Diet:     diet,
	}

	p.Style = pick(rng, InferStyles(in.Pantry))
	p.Blend = SeasoningBlend(in.Pantry, rng)
	p.Format = Formats[rng.Intn(len(Formats))]

	switch {
	case len(c.Proteins) > 0:
		p.Protein = pick(rng, c.Proteins)
	case diet.Vegetarian:
		p.Protein = findContaining(c.Other, "tofu")
		if p.Protein == "" && len(c.Other) > 0 {
			p.Protein = c.Other[0]
		}
	}
	p.Carb = pick(rng, c.Carbs)
	if len(c.Vegetables) > 0 {
		p.Vegetables = pickSome(rng, c.Vegetables, 3)
	} else {
		p.Vegetables = pickSome(rng, c.Other, 2)
	}

	if !diet.LowCarb {
		p.UseCarb = p.Carb
	}

	if len(c.Proteins) == 0 {
		for _, k := range []string{"beans", "lentil", "egg"} {
			if p.ProteinFallback = findContaining(c.Other, k); p.ProteinFallback != "" {
				break
			}
		}
	}

	p.Fat = cookingFat(c.Fats, in.Pantry, rng)
	p.Sauce = pick(rng, sauceCandidates(in.Pantry))
	p.Cheese = !diet.DairyFree && mode != ModeHealthier && hasCheese(in.Pantry)
	p.AddOns = pickSome(rng, addOnIdeas, 3)

	return p
}

func findContaining(items []string, keyword string) string {
	for _, item := range items {
		if strings.Contains(normalize(item), keyword) {
			return item
		}
	}
	return ""
}

// Name 食譜名稱
func (p *Plan) Name() string {
	var bits []string
	if prefix := p.Mode.namePrefix(); prefix != "" {
		bits = append(bits, prefix)
	}
	if p.Style != StyleClassic {
		bits = append(bits, strings.Replace(p.Style, "-inspired", "", 1))
	}
	if main := firstNonEmpty(p.Protein, p.ProteinFallback); main != "" {
		bits = append(bits, titleCase(main))
	}
	if p.UseCarb != "" {
		bits = append(bits, titleCase(p.UseCarb))
	}
	bits = append(bits, string(p.Format))
	return strings.Join(uniq(bits), " ")
}

// mainIngredient 步驟中提到的主食材
func (p *Plan) mainIngredient() string {
	return firstNonEmpty(p.Protein, mainIngredientFallback)
}

// seasoning 步驟中提到的調味
func (p *Plan) seasoning() string {
	if len(p.Blend) == 0 {
		return "salt + pepper"
	}
	return strings.Join(p.Blend, ", ")
}

// sauceOr 有醬汁時用醬汁，否則用替代文字
func (p *Plan) sauceOr(fallback string) string {
	return firstNonEmpty(p.Sauce, fallback)
}

// overCarb 例如 " over rice"，不使用澱粉時為空
func (p *Plan) overCarb() string {
	if p.UseCarb == "" {
		return ""
	}
	return " over " + p.UseCarb
}

func (p *Plan) quick() bool {
	return p.MaxTime <= 20
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
