package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GenerateUUID 生成 UUID
func GenerateUUID() string {
	return uuid.New().String()
}

// RequestID 取得或補上請求 ID
func RequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = c.Writer.Header().Get("X-Request-ID")
	}
	if requestID == "" {
		requestID = GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}

// WriteErrorResponse 寫入 JSON 錯誤響應
func WriteErrorResponse(c *gin.Context, err error) {
	resp := ErrorResponse{Code: ErrCodeInternalError, Message: http.StatusText(http.StatusInternalServerError)}
	var ce *CustomError
	if errors.As(err, &ce) {
		resp.Code = ce.Code
		resp.Message = ce.Message
	}
	c.AbortWithStatusJSON(StatusOf(err), resp)
}

// WriteTextError 寫入純文字錯誤響應
func WriteTextError(c *gin.Context, status int, message string) {
	c.Data(status, "text/plain; charset=utf-8", []byte(message))
	c.Abort()
}
