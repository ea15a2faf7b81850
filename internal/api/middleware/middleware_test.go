package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vinai-server/internal/infrastructure/cache"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	r.POST("/echo", ok)
	r.GET("/echo", ok)
	return r
}

func post(r http.Handler, body string) int {
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestDeduplicationRejectsReplayInWindow(t *testing.T) {
	r := newEngine(Deduplication(cache.NewMemoryStore(), time.Minute))

	assert.Equal(t, http.StatusOK, post(r, `{"a":1}`))
	assert.Equal(t, http.StatusTooManyRequests, post(r, `{"a":1}`))
	assert.Equal(t, http.StatusOK, post(r, `{"a":2}`))

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

type brokenStore struct{}

func (brokenStore) SetIfAbsent(context.Context, string, time.Duration) (bool, error) {
	return false, errors.New("redis down")
}
func (brokenStore) Close() error { return nil }

func TestDeduplicationFailsOpen(t *testing.T) {
	r := newEngine(Deduplication(brokenStore{}, time.Minute))
	assert.Equal(t, http.StatusOK, post(r, `{"a":1}`))
	assert.Equal(t, http.StatusOK, post(r, `{"a":1}`))
}

func TestBodySizeLimit(t *testing.T) {
	r := newEngine(BodySizeLimit(8))
	assert.Equal(t, http.StatusRequestEntityTooLarge, post(r, strings.Repeat("x", 9)))
	assert.Equal(t, http.StatusOK, post(r, "small"))

	r = newEngine(BodySizeLimit(0))
	assert.Equal(t, http.StatusOK, post(r, strings.Repeat("x", 64)))
}

func TestRateLimitPerClient(t *testing.T) {
	r := newEngine(RateLimit(2, time.Hour))

	assert.Equal(t, http.StatusOK, post(r, "1"))
	assert.Equal(t, http.StatusOK, post(r, "2"))
	assert.Equal(t, http.StatusTooManyRequests, post(r, "3"))

	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("4"))
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterRefills(t *testing.T) {
	rl := NewRateLimiter(1, time.Second)
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, rl.allowAt("10.0.0.1", start))
	assert.False(t, rl.allowAt("10.0.0.1", start.Add(100*time.Millisecond)))
	assert.True(t, rl.allowAt("10.0.0.2", start.Add(100*time.Millisecond)))
	assert.True(t, rl.allowAt("10.0.0.1", start.Add(1100*time.Millisecond)))
}

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 50; i++ {
		assert.True(t, rl.allowAt(fmt.Sprintf("10.0.1.%d", i), start))
	}
	assert.Equal(t, 50, rl.Len())

	// 一個 window 後只有仍在使用的 key 會留下
	assert.True(t, rl.allowAt("10.0.2.1", start.Add(time.Minute)))
	assert.Equal(t, 1, rl.Len())
}

func TestRateLimiterKeepsActiveClientState(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, rl.allowAt("10.0.0.1", start))
	assert.True(t, rl.allowAt("10.0.0.1", start.Add(time.Second)))
	assert.False(t, rl.allowAt("10.0.0.1", start.Add(2*time.Second)))
	assert.Equal(t, 1, rl.Len())
}

func TestTimeoutWritesGatewayTimeout(t *testing.T) {
	r := gin.New()
	r.Use(Timeout(10 * time.Millisecond))
	r.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})

	req := httptest.NewRequest(http.MethodGet, "/slow", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestRecoveryReturnsInternalError(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
}
