package service

import (
	"context"
	"time"

	"recipe-suggester/internal/core/ai"
	"recipe-suggester/internal/core/ai/provider"
	"recipe-suggester/internal/infrastructure/config"
	"recipe-suggester/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 食譜改寫服務
type Service struct {
	config   config.OpenAIConfig
	provider provider.Provider
}

// NewService 創建食譜改寫服務
func NewService(cfg config.OpenAIConfig, p provider.Provider) *Service {
	return &Service{
		config:   cfg,
		provider: p,
	}
}

// Improve 把食譜送到 completion API 改寫
//
// 缺少 API 金鑰只在請求時才回報，不影響服務啟動。
func (s *Service) Improve(ctx context.Context, req ai.ImproveRequest, requestID string) (string, error) {
	if req.Recipe == "" {
		return "", common.ErrMissingRecipe
	}
	if !s.config.HasCredential() {
		common.LogError("OPENAI_API_KEY is not configured", zap.String("request_id", requestID))
		return "", common.ErrMissingAPIKey
	}

	prompt := BuildPrompt(req)
	common.LogDebug("Improve prompt built",
		zap.Int("recipe_length", len(req.Recipe)),
		zap.Int("prompt_length", len(prompt)),
		zap.String("request_id", requestID),
	)

	start := time.Now()
	res, err := s.provider.Complete(ctx, prompt)
	common.LogAICall(s.provider.GetModel(), time.Since(start), statusOf(res, err), err, requestID)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

func statusOf(res *ai.Completion, err error) int {
	if err != nil {
		return common.StatusOf(err)
	}
	return res.Status
}

// Model 目前使用的模型名稱
func (s *Service) Model() string {
	return s.provider.GetModel()
}

// Close 關閉底層提供者
func (s *Service) Close() error {
	return s.provider.Close()
}
