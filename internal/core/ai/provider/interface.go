package provider

import (
	"context"

	"recipe-suggester/internal/core/ai"
)

// Provider 定義 completion 提供者介面
//
// Complete 遇到非成功狀態時回傳 *common.UpstreamError，
// 網路或解析失敗時回傳 TRANSPORT_ERROR 類的 *common.CustomError。
type Provider interface {
	// Complete 送出單一 prompt 並取得結果
	Complete(ctx context.Context, prompt string) (*ai.Completion, error)

	// GetModel 獲取當前使用的模型名稱
	GetModel() string

	// Close 關閉提供者連接
	Close() error
}
