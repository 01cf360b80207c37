package ai

import "strings"

// ImproveRequest /api/improve 的請求內容
type ImproveRequest struct {
	Recipe   string  `json:"recipe"`
	Diet     string  `json:"diet,omitempty"`
	MaxTime  float64 `json:"maxTime,omitempty"`
	Servings float64 `json:"servings,omitempty"`
}

// ImproveResponse /api/improve 的成功回應
type ImproveResponse struct {
	Improved string `json:"improved"`
}

// Request completion API 請求，整段 prompt 放在單一 input 欄位
type Request struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

// Response completion API 回應中用得到的欄位
type Response struct {
	ID         string       `json:"id,omitempty"`
	Output     []OutputItem `json:"output,omitempty"`
	OutputText string       `json:"output_text,omitempty"`
	Usage      *Usage       `json:"usage,omitempty"`
}

// OutputItem 輸出項目
type OutputItem struct {
	Type    string        `json:"type,omitempty"`
	Role    string        `json:"role,omitempty"`
	Content []ContentPart `json:"content,omitempty"`
}

// ContentPart 輸出內容片段
type ContentPart struct {
	Type string `json:"type,omitempty"`
	Text string `json:"text,omitempty"`
}

// Usage 使用量
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Text 取出改寫後的文字
//
// 優先串接第一個輸出項目的 content 文字，為空時改用 output_text，
// 都沒有時回傳空字串。
func (r *Response) Text() string {
	if len(r.Output) > 0 {
		var b strings.Builder
		for _, part := range r.Output[0].Content {
			b.WriteString(part.Text)
		}
		if b.Len() > 0 {
			return b.String()
		}
	}
	return r.OutputText
}

// Completion 一次 completion 呼叫的結果
type Completion struct {
	Text   string
	Model  string
	Status int
	Usage  *Usage
}
