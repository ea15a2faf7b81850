package actions

import (
	"net/http"

	"vinai-server/internal/api/middleware"
	"vinai-server/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler webhook 處理器
type Handler struct {
	registry *Registry
}

// NewHandler 創建 webhook 處理器
func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

// HandleWebhook POST /webhook，執行 next_action 並回傳事件與訊息
func (h *Handler) HandleWebhook(c *gin.Context) {
	var req Request
	if err := common.DecodeJSON(c.Request.Body, &req); err != nil {
		common.LogWarn("無效的 webhook 請求",
			zap.Error(err),
			zap.String("request_id", common.RequestID(c)),
		)
		common.WriteError(c, common.ErrInvalidRequest)
		return
	}
	c.Set(middleware.ActionKey, req.NextAction)

	action, ok := h.registry.Lookup(req.NextAction)
	if !ok {
		common.LogWarn("未註冊的動作", zap.String("action", req.NextAction))
		c.JSON(http.StatusNotFound, gin.H{
			"error":       "action not found",
			"action_name": req.NextAction,
		})
		return
	}

	out := action(c.Request.Context(), req)
	common.LogDebug("動作完成",
		zap.String("action", req.NextAction),
		zap.String("sender_id", req.SessionID()),
		zap.Int("responses", len(out.Messages)),
		zap.Int("events", len(out.Events)),
	)
	c.JSON(http.StatusOK, newResponse(out))
}

// HandleList GET /actions
func (h *Handler) HandleList(c *gin.Context) {
	names := h.registry.Names()
	list := make([]gin.H, 0, len(names))
	for _, name := range names {
		list = append(list, gin.H{"name": name})
	}
	c.JSON(http.StatusOK, list)
}
