package recipe

import (
	"net/http"

	recipeService "recipe-suggester/internal/core/recipe"
	"recipe-suggester/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ComposeRequest 組合食譜請求
//
// ingredients 與 pantry 可為字串陣列或逗號分隔字串。
type ComposeRequest struct {
	recipeService.UserInput
	Mode string `json:"mode,omitempty"` // standard、cheaper 或 healthier，空白視為 standard
}

// ComposeResponse 組合食譜回應
type ComposeResponse struct {
	Recipe string `json:"recipe"`
	Mode   string `json:"mode"`
}

// Handler 食譜處理程序
type Handler struct {
	recipeService *recipeService.Service
}

// NewHandler 創建新的食譜處理程序
func NewHandler(recipeService *recipeService.Service) *Handler {
	return &Handler{
		recipeService: recipeService,
	}
}

// HandleCompose 依食材與常備品組合食譜
func (h *Handler) HandleCompose(c *gin.Context) {
	requestID := common.RequestID(c)

	body, err := c.GetRawData()
	if err != nil {
		common.LogWarn("讀取請求內容失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		common.WriteErrorResponse(c, common.ErrInvalidBody)
		return
	}

	var req ComposeRequest
	if err := common.ParseJSONBytes(body, &req); err != nil {
		common.LogWarn("請求格式無效",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		common.WriteErrorResponse(c, common.ErrInvalidBody)
		return
	}

	mode, err := recipeService.ParseMode(req.Mode)
	if err != nil {
		common.LogWarn("未知的模式",
			zap.String("mode", req.Mode),
			zap.String("request_id", requestID),
		)
		common.WriteErrorResponse(c, err)
		return
	}

	text, err := h.recipeService.Compose(req.UserInput, mode)
	if err != nil {
		common.LogWarn("食譜組合失敗",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		common.WriteErrorResponse(c, err)
		return
	}

	common.LogInfo("食譜組合成功",
		zap.String("request_id", requestID),
		zap.String("mode", string(mode)),
		zap.Int("ingredients", len(req.Ingredients)),
		zap.Int("pantry", len(req.Pantry)),
	)

	c.JSON(http.StatusOK, ComposeResponse{Recipe: text, Mode: string(mode)})
}
