package recipe

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// List 食材清單，JSON 可為字串陣列或以逗號分隔的單一字串
type List []string

// UnmarshalJSON 同時接受 ["a","b"] 與 "a, b"
func (l *List) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = List(cleanList(items))
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*l = List(ParseList(raw))
		return nil
	}

	return fmt.Errorf("list must be a string or an array of strings")
}

// ParseList 以逗號切分並去除空白與空項目
func ParseList(s string) []string {
	return cleanList(strings.Split(s, ","))
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if t := strings.TrimSpace(item); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(s)
}

// containsAny 正規化後的字串是否包含任一關鍵字
func containsAny(s string, keywords []string) bool {
	h := normalize(s)
	for _, k := range keywords {
		if strings.Contains(h, k) {
			return true
		}
	}
	return false
}

// uniq 去除重複並保留首次出現順序
func uniq(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// titleCase 每個單字首字母大寫，其餘字元不變
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
