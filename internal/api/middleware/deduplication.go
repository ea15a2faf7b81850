package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"vinai-server/internal/infrastructure/cache"
	"vinai-server/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deduplication 拒絕 window 內重複送達的 POST（相同路徑與請求體）
func Deduplication(store cache.Store, window time.Duration) gin.HandlerFunc {
	if window <= 0 {
		window = time.Second
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost || c.Request.Body == nil {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			common.LogError("Failed to read request body", zap.Error(err))
			common.WriteError(c, common.ErrInvalidRequest)
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		sum := sha256.Sum256(body)
		fingerprint := c.Request.Method + ":" + c.Request.URL.Path + ":" + hex.EncodeToString(sum[:])

		fresh, err := store.SetIfAbsent(c.Request.Context(), fingerprint, window)
		if err != nil {
			// 儲存不可用時不阻擋請求
			common.LogWarn("去重檢查失敗", zap.Error(err))
			c.Next()
			return
		}
		if !fresh {
			common.LogInfo("重複請求已拒絕",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", common.RequestID(c)),
			)
			common.WriteError(c, common.ErrTooManyRequests)
			return
		}

		c.Next()
	}
}
