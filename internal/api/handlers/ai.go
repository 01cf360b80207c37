package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"recipe-suggester/internal/core/ai"
	"recipe-suggester/internal/core/ai/service"
	"recipe-suggester/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AIHandler AI 改寫處理器
type AIHandler struct {
	aiService *service.Service
}

// NewAIHandler 創建 AI 處理器
func NewAIHandler(aiService *service.Service) *AIHandler {
	return &AIHandler{
		aiService: aiService,
	}
}

// Improve 把食譜轉交 completion API 改寫
//
// 錯誤一律以純文字回應；上游的非成功回應原樣轉發。
func (h *AIHandler) Improve(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.Header("Allow", http.MethodPost)
		common.WriteTextError(c, http.StatusMethodNotAllowed, common.ErrMethodNotAllowed.Message)
		return
	}

	requestID := common.RequestID(c)

	body, err := c.GetRawData()
	if err != nil {
		common.LogWarn("讀取請求內容失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		common.WriteTextError(c, http.StatusBadRequest, common.ErrInvalidBody.Message)
		return
	}

	// 空內容視同未提供 recipe
	var req ai.ImproveRequest
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}
	if err := common.ParseJSONBytes(body, &req); err != nil {
		common.LogWarn("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		common.WriteTextError(c, http.StatusBadRequest, common.ErrInvalidBody.Message)
		return
	}

	common.LogInfo("開始處理食譜改寫請求",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
		zap.Int("recipe_length", len(req.Recipe)),
	)

	improved, err := h.aiService.Improve(c.Request.Context(), req, requestID)
	if err != nil {
		writeImproveError(c, err)
		return
	}

	c.JSON(http.StatusOK, ai.ImproveResponse{Improved: improved})
}

func writeImproveError(c *gin.Context, err error) {
	var ue *common.UpstreamError
	if errors.As(err, &ue) {
		contentType := ue.ContentType
		if contentType == "" {
			contentType = "text/plain; charset=utf-8"
		}
		c.Data(ue.Status, contentType, ue.Body)
		c.Abort()
		return
	}
	common.WriteTextError(c, common.StatusOf(err), err.Error())
}
