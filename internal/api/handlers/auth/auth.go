// Package auth 網頁前端使用的註冊與登入 REST 介面
package auth

import (
	"net/http"

	"vinai-server/internal/core/profile"
	"vinai-server/internal/core/session"
	"vinai-server/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRequest 註冊請求
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest 登入請求，密碼目前不驗證
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response 註冊與登入的響應
type Response struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Code     string `json:"code,omitempty"`
	UserID   string `json:"user_id,omitempty"`
	Username string `json:"username,omitempty"`
}

// Handler 帳號處理器
type Handler struct {
	profile *profile.Service
}

// NewHandler 創建帳號處理器
func NewHandler(svc *profile.Service) *Handler {
	return &Handler{profile: svc}
}

// HandleRegister POST /public_register 與 /api/v1/auth/register
func (h *Handler) HandleRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, common.ErrInvalidRequest)
		return
	}

	user, err := h.profile.RegisterWithUsername(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response{
		Success:  true,
		Message:  "¡Registro exitoso! Ahora puedes iniciar sesión.",
		UserID:   session.Format(user.ID),
		Username: user.Username,
	})
}

// HandleLogin POST /public_login 與 /api/v1/auth/login
func (h *Handler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, common.ErrInvalidRequest)
		return
	}

	sess, err := h.profile.Login(c.Request.Context(), req.Email)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success:  true,
		Message:  "Sesión iniciada.",
		UserID:   sess.ID,
		Username: sess.Username,
	})
}

// writeError 錯誤響應保持 success/message 格式，前端直接顯示 message
func writeError(c *gin.Context, err error) {
	status := common.StatusOf(err)
	if status >= http.StatusInternalServerError {
		common.LogError("帳號請求失敗",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", common.RequestID(c)),
		)
	}
	resp := common.ToErrorResponse(err)
	c.AbortWithStatusJSON(status, Response{
		Success: false,
		Message: resp.Message,
		Code:    resp.Code,
	})
}
