package common

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Code    string `json:"code"`              // 錯誤代碼
	Message string `json:"error"`             // 錯誤信息
	Details string `json:"details,omitempty"` // 詳細信息（僅在開發模式顯示）
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 錯誤信息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap 回傳原始錯誤
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Is 以錯誤代碼比對，讓 errors.Is(err, ErrEmptyInput) 可用於包裝過的錯誤
func (e *CustomError) Is(target error) bool {
	t, ok := target.(*CustomError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// UpstreamError 外部 completion 服務回傳非成功狀態，狀態碼與內容原樣轉發
type UpstreamError struct {
	Status      int
	ContentType string
	Body        []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.Status, string(e.Body))
}

// 錯誤代碼
const (
	ErrCodeInvalidRequest   = "INVALID_REQUEST"    // 400
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED" // 405
	ErrCodeInternalError    = "INTERNAL_ERROR"     // 500

	// 食譜建議服務的錯誤分類
	ErrCodeInputError     = "INPUT_ERROR"     // 使用者輸入問題，可由使用者修正
	ErrCodeConfigError    = "CONFIG_ERROR"    // 伺服器設定缺失
	ErrCodeUpstreamError  = "UPSTREAM_ERROR"  // 外部服務非成功回應
	ErrCodeTransportError = "TRANSPORT_ERROR" // 網路或解析失敗
)

// 預定義錯誤
var (
	ErrMethodNotAllowed = NewError(ErrCodeMethodNotAllowed, "Method Not Allowed", http.StatusMethodNotAllowed, nil)

	ErrEmptyInput       = NewError(ErrCodeInputError, "Add at least some ingredients or pantry items first.", http.StatusBadRequest, nil)
	ErrInvalidMode      = NewError(ErrCodeInputError, "Unknown mode; use standard, cheaper or healthier.", http.StatusBadRequest, nil)
	ErrMissingRecipe    = NewError(ErrCodeInputError, "Missing recipe", http.StatusBadRequest, nil)
	ErrInvalidBody      = NewError(ErrCodeInputError, "Invalid JSON body", http.StatusBadRequest, nil)
	ErrMissingAPIKey    = NewError(ErrCodeConfigError, "Missing OPENAI_API_KEY", http.StatusInternalServerError, nil)
	ErrAIServiceFailure = NewError(ErrCodeTransportError, "AI service request failed", http.StatusInternalServerError, nil)
)

// NewTransportError 包裝網路或解析失敗，訊息沿用原始錯誤
func NewTransportError(err error) *CustomError {
	return NewError(ErrCodeTransportError, ErrAIServiceFailure.Message, http.StatusInternalServerError, err)
}

// IsInputError 是否為使用者輸入錯誤
func IsInputError(err error) bool {
	var ce *CustomError
	return errors.As(err, &ce) && ce.Code == ErrCodeInputError
}

// StatusOf 取得錯誤對應的 HTTP 狀態碼
func StatusOf(err error) int {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Status
	}
	var ce *CustomError
	if errors.As(err, &ce) && ce.Status != 0 {
		return ce.Status
	}
	return http.StatusInternalServerError
}
