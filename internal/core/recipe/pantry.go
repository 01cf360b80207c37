package recipe

import "strings"

// StyleClassic 沒有任何風格關鍵字時的預設風格
const StyleClassic = "Classic"

type styleRule struct {
	name     string
	keywords []string
}

var styleRules = []styleRule{
	{"Asian-inspired", []string{"soy sauce", "ginger", "sesame", "sriracha", "rice vinegar", "hoisin"}},
	{"Tex-Mex", []string{"cumin", "paprika", "chili", "taco", "lime", "cilantro"}},
	{"Italian-ish", []string{"oregano", "basil", "parmesan", "italian", "marinara"}},
	{"Curry-style", []string{"curry", "garam", "turmeric", "coriander"}},
	{"Herby-lemon", []string{"lemon", "dill", "thyme", "rosemary"}},
}

// InferStyles 掃描常備品，回傳所有符合的烹調風格
func InferStyles(pantry []string) []string {
	joined := normalize(strings.Join(pantry, " | "))
	var styles []string
	for _, rule := range styleRules {
		if containsAny(joined, rule.keywords) {
			styles = append(styles, rule.name)
		}
	}
	if len(styles) == 0 {
		styles = append(styles, StyleClassic)
	}
	return uniq(styles)
}

// 調味參考清單與各組抽樣數量
var (
	baseSeasonings = []string{"salt", "pepper"}

	seasoningGroups = []struct {
		items []string
		count int
	}{
		{[]string{"garlic powder", "onion powder", "paprika", "cumin", "chili powder"}, 2}, // warm
		{[]string{"oregano", "basil", "thyme", "rosemary", "dill", "parsley"}, 1},          // herb
		{[]string{"cayenne", "red pepper flakes", "hot sauce", "sriracha"}, 1},             // spicy
		{[]string{"soy sauce", "worcestershire", "fish sauce", "parmesan", "miso"}, 1},     // umami
		{[]string{"lemon", "lime", "vinegar", "rice vinegar"}, 1},                          // acid
	}
)

// SeasoningBlend 組合調味
//
// 常備品為空時回傳空清單；否則必含 salt 與 pepper，
// 其餘只從常備品中整項相符的參考項目抽樣。
func SeasoningBlend(pantry []string, rng Rand) []string {
	if len(pantry) == 0 {
		return nil
	}

	blend := append([]string(nil), baseSeasonings...)
	for _, group := range seasoningGroups {
		blend = append(blend, pickSome(rng, presentIn(pantry, group.items), group.count)...)
	}
	return uniq(blend)
}

// presentIn 回傳常備品中整項相符的參考項目
//
// "rice vinegar" 只提供 "rice vinegar"，不會提供 "vinegar"。
func presentIn(pantry []string, reference []string) []string {
	var have []string
	for _, ref := range reference {
		for _, item := range pantry {
			if strings.TrimSpace(normalize(item)) == ref {
				have = append(have, ref)
				break
			}
		}
	}
	return have
}

var sauceKeywords = []string{"soy sauce", "hot sauce", "sriracha", "marinara", "tomato sauce", "coconut milk", "broth", "stock", "vinegar", "lemon", "lime", "mayo", "mustard"}

// sauceCandidates 常備品中可當醬汁的項目
func sauceCandidates(pantry []string) []string {
	var out []string
	for _, item := range pantry {
		if containsAny(item, sauceKeywords) {
			out = append(out, item)
		}
	}
	return out
}

// cookingFat 優先用食材中的油脂，其次常備品中含 oil 的項目
func cookingFat(fats []string, pantry []string, rng Rand) string {
	if len(fats) > 0 {
		return pick(rng, fats)
	}
	for _, item := range pantry {
		if strings.Contains(normalize(item), "oil") {
			return item
		}
	}
	return "oil"
}

func hasCheese(pantry []string) bool {
	for _, item := range pantry {
		if strings.Contains(normalize(item), "cheese") {
			return true
		}
	}
	return false
}
