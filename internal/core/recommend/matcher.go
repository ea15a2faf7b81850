package recommend

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FindKeyword 依詞庫順序回傳第一個出現在 text 中的詞（不分大小寫），已首字大寫
func FindKeyword(text string, keywords []string) (string, bool) {
	if text == "" || len(keywords) == 0 {
		return "", false
	}
	lowered := strings.ToLower(text)
	for _, keyword := range keywords {
		k := strings.ToLower(keyword)
		if k == "" {
			continue
		}
		if strings.Contains(lowered, k) {
			return Capitalize(k), true
		}
	}
	return "", false
}

// Capitalize 首字母大寫，其餘不變
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
