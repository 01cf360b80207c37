package openai

import (
	"context"
	"fmt"
	"strings"

	"recipe-suggester/internal/core/ai"
	"recipe-suggester/internal/infrastructure/config"
	"recipe-suggester/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const responsesPath = "/responses"

// Client completion API 客戶端
//
// 不重試、不快取，也不另設逾時；取消只透過傳入的 context。
type Client struct {
	config config.OpenAIConfig
	client *resty.Client
}

// NewClient 創建新的 completion API 客戶端
func NewClient(cfg config.OpenAIConfig) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if cfg.HasCredential() {
		client.SetAuthToken(cfg.APIKey)
	}

	return &Client{
		config: cfg,
		client: client,
	}
}

// Complete 送出 prompt 並解析改寫結果
func (c *Client) Complete(ctx context.Context, prompt string) (*ai.Completion, error) {
	req := ai.Request{
		Model: c.config.Model,
		Input: prompt,
	}

	common.LogDebug("Sending request to completion API",
		zap.String("model", req.Model),
		zap.Int("prompt_length", len(prompt)),
	)

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(responsesPath)
	if err != nil {
		return nil, common.NewTransportError(fmt.Errorf("failed to send request to completion API: %w", err))
	}

	// 非成功狀態原樣轉發
	if !resp.IsSuccess() {
		return nil, &common.UpstreamError{
			Status:      resp.StatusCode(),
			ContentType: resp.Header().Get("Content-Type"),
			Body:        resp.Body(),
		}
	}

	var result ai.Response
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return nil, common.NewTransportError(fmt.Errorf("failed to parse completion response: %w", err))
	}

	text := result.Text()
	if text == "" {
		common.LogWarn("Empty text in completion response",
			zap.String("model", req.Model),
			zap.String("response_id", result.ID),
		)
	}

	return &ai.Completion{
		Text:   text,
		Model:  req.Model,
		Status: resp.StatusCode(),
		Usage:  result.Usage,
	}, nil
}

// GetModel 獲取當前使用的模型名稱
func (c *Client) GetModel() string {
	return c.config.Model
}

// Close 關閉客戶端
func (c *Client) Close() error {
	if hc := c.client.GetClient(); hc != nil {
		hc.CloseIdleConnections()
	}
	return nil
}
