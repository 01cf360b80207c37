package service

import (
	"fmt"
	"strconv"
	"strings"

	"recipe-suggester/internal/core/ai"
)

const (
	defaultPromptMaxTime  = 30
	defaultPromptServings = 2
)

// BuildPrompt 組出改寫食譜用的 prompt
//
// 食譜內容與限制條件原樣嵌入，不做任何跳脫。
func BuildPrompt(req ai.ImproveRequest) string {
	maxTime := req.MaxTime
	if maxTime == 0 {
		maxTime = defaultPromptMaxTime
	}
	servings := req.Servings
	if servings == 0 {
		servings = defaultPromptServings
	}
	diet := req.Diet
	if diet == "" {
		diet = "none"
	}

	var b strings.Builder
	b.WriteString("You are a cooking assistant. Improve the recipe text below.\n\n")
	b.WriteString("Constraints:\n")
	fmt.Fprintf(&b, "- Keep it within ~%s minutes\n", formatNumber(maxTime))
	fmt.Fprintf(&b, "- Make %s servings\n", formatNumber(servings))
	fmt.Fprintf(&b, "- Respect diet notes: \"%s\"\n", diet)
	b.WriteString("- Make steps clearer and more consistent\n")
	b.WriteString("- Add substitutions if ingredients are missing\n")
	b.WriteString("- Keep the same general dish idea\n")
	b.WriteString("Return ONLY the improved recipe text.\n\n")
	b.WriteString("RECIPE:\n")
	b.WriteString(req.Recipe)
	return strings.TrimRight(b.String(), " \t\r\n")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
