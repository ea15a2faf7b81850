package common

import (
	"errors"
	"net/http"
)

// ErrorResponse 定義 API 錯誤響應結構
type ErrorResponse struct {
	Code    string `json:"code"`              // 錯誤代碼
	Message string `json:"message"`           // 錯誤信息
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
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap 取得原始錯誤
func (e *CustomError) Unwrap() error {
	return e.Err
}

// Is 以錯誤代碼比對，讓包裝過的錯誤仍可用 errors.Is 判斷
func (e *CustomError) Is(target error) bool {
	t, ok := target.(*CustomError)
	if !ok {
		return false
	}
	return e.Code == t.Code
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

// Wrap 保留 sentinel 的代碼與狀態，附加原始錯誤
func Wrap(sentinel *CustomError, err error) error {
	return NewError(sentinel.Code, sentinel.Message, sentinel.Status, err)
}

// StatusOf 取得錯誤對應的 HTTP 狀態碼
func StatusOf(err error) int {
	var ce *CustomError
	if errors.As(err, &ce) && ce.Status != 0 {
		return ce.Status
	}
	return http.StatusInternalServerError
}

// ToErrorResponse 轉成對外的錯誤響應，不包含底層錯誤細節
func ToErrorResponse(err error) ErrorResponse {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ErrorResponse{Code: ce.Code, Message: ce.Message}
	}
	return ErrorResponse{Code: ErrCodeInternalError, Message: ErrInternalError.Message}
}

// 預定義錯誤代碼
const (
	// 客戶端錯誤 (4xx)
	ErrCodeInvalidRequest   = "INVALID_REQUEST"    // 400
	ErrCodeInvalidInput     = "INVALID_INPUT"      // 400
	ErrCodeSessionInvalid   = "SESSION_INVALID"    // 401
	ErrCodeNotFound         = "NOT_FOUND"          // 404
	ErrCodeDuplicateEmail   = "DUPLICATE_EMAIL"    // 409
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"  // 429
	ErrCodeInsufficientData = "INSUFFICIENT_CRITERIA"

	// 服務器錯誤 (5xx)
	ErrCodeInternalError      = "INTERNAL_ERROR"      // 500
	ErrCodeStorageUnavailable = "STORAGE_UNAVAILABLE" // 503
	ErrCodeGatewayTimeout     = "GATEWAY_TIMEOUT"     // 504
)

// 預定義錯誤
var (
	// 客戶端錯誤
	ErrInvalidRequest       = NewError(ErrCodeInvalidRequest, "solicitud inválida", http.StatusBadRequest, nil)
	ErrInvalidInput         = NewError(ErrCodeInvalidInput, "faltan datos requeridos", http.StatusBadRequest, nil)
	ErrSessionInvalid       = NewError(ErrCodeSessionInvalid, "sesión inválida", http.StatusUnauthorized, nil)
	ErrNotFound             = NewError(ErrCodeNotFound, "no encontrado", http.StatusNotFound, nil)
	ErrDuplicateEmail       = NewError(ErrCodeDuplicateEmail, "el email ya está registrado", http.StatusConflict, nil)
	ErrTooManyRequests      = NewError(ErrCodeTooManyRequests, "demasiadas solicitudes", http.StatusTooManyRequests, nil)
	ErrInsufficientCriteria = NewError(ErrCodeInsufficientData, "no hay criterios suficientes", http.StatusUnprocessableEntity, nil)

	// 服務器錯誤
	ErrInternalError      = NewError(ErrCodeInternalError, "error interno", http.StatusInternalServerError, nil)
	ErrStorageUnavailable = NewError(ErrCodeStorageUnavailable, "almacenamiento no disponible", http.StatusServiceUnavailable, nil)
	ErrGatewayTimeout     = NewError(ErrCodeGatewayTimeout, "tiempo de espera agotado", http.StatusGatewayTimeout, nil)
)
