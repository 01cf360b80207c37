package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"recipe-suggester/internal/pkg/common"
)

// ErrCodeBodyTooLarge 請求體過大
const ErrCodeBodyTooLarge = "BODY_TOO_LARGE"

// BodySizeLimit 限制請求體大小的中間件
//
// 宣告的 Content-Length 超過上限時直接回 413；未宣告長度的請求在讀取時截斷，
// 由處理器當作無效內容回報。
func BodySizeLimit(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			common.LogWarn("Request body too large",
				zap.Int64("content_length", c.Request.ContentLength),
				zap.Int64("max_size", maxSize),
				zap.String("client_ip", c.ClientIP()),
				zap.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, common.ErrorResponse{
				Code:    ErrCodeBodyTooLarge,
				Message: "Request body too large",
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)

		c.Next()
	}
}
