// Package session 處理 user_<id> 形式的會話識別碼
package session

import (
	"strconv"
	"strings"

	"vinai-server/internal/pkg/common"
)

const prefix = "user_"

// Format 由使用者 ID 產生會話識別碼
func Format(userID int64) string {
	return prefix + strconv.FormatInt(userID, 10)
}

// Parse 解析會話識別碼，只接受 Format 產生的標準形式，否則回傳 ErrSessionInvalid
func Parse(id string) (int64, error) {
	if !strings.HasPrefix(id, prefix) {
		return 0, common.ErrSessionInvalid
	}
	userID, err := strconv.ParseInt(strings.TrimPrefix(id, prefix), 10, 64)
	if err != nil || userID <= 0 || Format(userID) != id {
		return 0, common.ErrSessionInvalid
	}
	return userID, nil
}

// IsUser 是否為已登入使用者的會話
func IsUser(id string) bool {
	_, err := Parse(id)
	return err == nil
}

// Anonymous 識別碼不是登入後的格式（尚未登入）
func Anonymous(id string) bool {
	return !strings.HasPrefix(id, prefix)
}
