package recipe

import (
	"recipe-suggester/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 食譜組合服務
//
// 每次組合都向 newRand 取得新的隨機來源，因此可被多個請求同時使用。
type Service struct {
	newRand func() Rand
}

// NewService 創建食譜組合服務，newRand 為 nil 時使用時間種子
func NewService(newRand func() Rand) *Service {
	if newRand == nil {
		newRand = NewRand
	}
	return &Service{newRand: newRand}
}

// Compose 組合食譜文字
func (s *Service) Compose(in UserInput, mode Mode) (string, error) {
	in = in.Normalize()
	if in.IsEmpty() {
		return "", ErrEmptyInput
	}

	plan := NewPlan(in, mode, s.newRand())

	common.LogDebug("食譜組合計畫",
		zap.String("mode", string(mode)),
		zap.String("format", string(plan.Format)),
		zap.String("style", plan.Style),
		zap.Int("ingredients", len(in.Ingredients)),
		zap.Int("pantry", len(in.Pantry)),
		zap.Bool("low_carb", plan.Diet.LowCarb),
		zap.Bool("use_carb", plan.UseCarb != ""),
	)

	return plan.Render(), nil
}
