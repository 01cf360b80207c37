package recipe

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"recipe-suggester/internal/pkg/common"
)

const (
	// DefaultServings 未指定份量時的預設值
	DefaultServings = 2
	// MinServings 份量下限
	MinServings = 1
	// DefaultMaxTime 未指定時間（分鐘）時的預設值
	DefaultMaxTime = 30
	// MinMaxTime 時間下限（分鐘）
	MinMaxTime = 5
)

// Count 份量或分鐘數；JSON 可為任意數字，小數四捨五入
type Count int

// UnmarshalJSON 接受整數或小數
func (c *Count) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = 0
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("count must be a number")
	}
	*c = Count(math.Round(f))
	return nil
}

// UserInput 單次組合請求的使用者輸入
type UserInput struct {
	Ingredients List   `json:"ingredients"`
	Pantry      List   `json:"pantry"`
	Servings    Count  `json:"servings,omitempty"`
	MaxTime     Count  `json:"maxTime,omitempty"`
	Diet        string `json:"diet,omitempty"`
}

// Normalize 補上預設值、套用下限並清理清單
//
// 零值視為未填；小於下限的值夾到下限。
func (in UserInput) Normalize() UserInput {
	out := UserInput{
		Ingredients: List(cleanList(in.Ingredients)),
		Pantry:      List(cleanList(in.Pantry)),
		Servings:    in.Servings,
		MaxTime:     in.MaxTime,
		Diet:        strings.TrimSpace(in.Diet),
	}
	if out.Servings == 0 {
		out.Servings = DefaultServings
	}
	out.Servings = max(MinServings, out.Servings)
	if out.MaxTime == 0 {
		out.MaxTime = DefaultMaxTime
	}
	out.MaxTime = max(MinMaxTime, out.MaxTime)
	return out
}

// IsEmpty 食材與常備品皆為空
func (in UserInput) IsEmpty() bool {
	return len(cleanList(in.Ingredients)) == 0 && len(cleanList(in.Pantry)) == 0
}

// Mode 組合模式
type Mode string

const (
	ModeStandard  Mode = "standard"
	ModeCheaper   Mode = "cheaper"
	ModeHealthier Mode = "healthier"
)

// ParseMode 解析模式字串，空字串視為 standard
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeStandard:
		return ModeStandard, nil
	case ModeCheaper:
		return ModeCheaper, nil
	case ModeHealthier:
		return ModeHealthier, nil
	default:
		return "", common.ErrInvalidMode
	}
}

// Note 摘要與調整建議標題中使用的模式名稱
func (m Mode) Note() string {
	switch m {
	case ModeCheaper:
		return "Budget-first"
	case ModeHealthier:
		return "Healthier"
	default:
		return "Standard"
	}
}

// namePrefix 食譜名稱前綴
func (m Mode) namePrefix() string {
	switch m {
	case ModeCheaper:
		return "Budget"
	case ModeHealthier:
		return "Light"
	default:
		return ""
	}
}

// DietFlags 由飲食備註解析出的旗標
type DietFlags struct {
	LowCarb     bool
	HighProtein bool
	DairyFree   bool
	Vegetarian  bool
}

// ParseDiet 以子字串比對解析飲食備註
func ParseDiet(diet string) DietFlags {
	d := normalize(diet)
	return DietFlags{
		LowCarb:     strings.Contains(d, "low carb") || strings.Contains(d, "keto"),
		HighProtein: strings.Contains(d, "high protein") || strings.Contains(d, "protein"),
		DairyFree:   strings.Contains(d, "dairy-free") || strings.Contains(d, "dairy free"),
		Vegetarian:  strings.Contains(d, "vegetarian") || strings.Contains(d, "veg"),
	}
}
