package recipe

// Category 食材分類
type Category string

const (
	CategoryProtein   Category = "protein"
	CategoryCarb      Category = "carb"
	CategoryVegetable Category = "vegetable"
	CategoryFat       Category = "fat"
	CategoryOther     Category = "other"
)

// Rule 分類規則：食材名稱包含任一關鍵字即屬於該分類
type Rule struct {
	Category Category
	Keywords []string
}

// ClassificationRules 依優先順序排列，第一個符合的規則勝出
var ClassificationRules = []Rule{
	{
		Category: CategoryProtein,
		Keywords: []string{"chicken", "turkey", "beef", "steak", "pork", "ham", "bacon", "salmon", "tuna", "shrimp", "fish", "tofu", "tempeh", "egg", "eggs", "lentil", "beans", "chickpea", "yogurt", "cottage", "ground"},
	},
	{
		Category: CategoryCarb,
		Keywords: []string{"rice", "pasta", "noodle", "bread", "tortilla", "wrap", "potato", "sweet potato", "quinoa", "couscous", "oats", "ramen"},
	},
	{
		Category: CategoryVegetable,
		Keywords: []string{"onion", "garlic", "pepper", "broccoli", "spinach", "kale", "tomato", "carrot", "zucchini", "mushroom", "corn", "peas", "green bean", "cucumber", "lettuce", "cabbage", "cauliflower"},
	},
	{
		Category: CategoryFat,
		Keywords: []string{"olive oil", "oil", "butter", "ghee", "avocado", "sesame oil", "coconut oil", "mayo", "mayonnaise"},
	},
}

// Classified 分類後的食材，保留輸入順序
type Classified struct {
	Proteins   []string
	Carbs      []string
	Vegetables []string
	Fats       []string
	Other      []string
}

// CategoryOf 回傳單一食材的分類
func CategoryOf(item string) Category {
	for _, rule := range ClassificationRules {
		if containsAny(item, rule.Keywords) {
			return rule.Category
		}
	}
	return CategoryOther
}

// Classify 將每個食材歸入恰好一個分類
func Classify(ingredients []string) Classified {
	var c Classified
	for _, item := range ingredients {
		switch CategoryOf(item) {
		case CategoryProtein:
			c.Proteins = append(c.Proteins, item)
		case CategoryCarb:
			c.Carbs = append(c.Carbs, item)
		case CategoryVegetable:
			c.Vegetables = append(c.Vegetables, item)
		case CategoryFat:
			c.Fats = append(c.Fats, item)
		default:
			c.Other = append(c.Other, item)
		}
	}
	return c
}
