package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"travel-assistant/config"
	"travel-assistant/pkg/log"
)

func newEngine(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.CORS())
	r.POST("/chat", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func post(r http.Handler, remote string) int {
	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	req.RemoteAddr = remote
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimit_PerClient(t *testing.T) {
	// 60/min gives a burst of 6.
	mw := New(log.NewNop(), config.RateLimitConfig{Enabled: true, RequestsPerMin: 60}, config.CORSConfig{})
	r := newEngine(mw)

	for i := 0; i < 6; i++ {
		assert.Equal(t, http.StatusOK, post(r, "10.0.0.1:1234"), "request %d", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, post(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, post(r, "10.0.0.2:1234"), "other clients keep their budget")
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := New(log.NewNop(), config.RateLimitConfig{Enabled: false, RequestsPerMin: 1}, config.CORSConfig{})
	r := newEngine(mw)

	for i := 0; i < 20; i++ {
		assert.Equal(t, http.StatusOK, post(r, "10.0.0.1:1234"))
	}
}

func TestCORS(t *testing.T) {
	t.Run("wildcard by default", func(t *testing.T) {
		r := newEngine(New(log.NewNop(), config.RateLimitConfig{}, config.CORSConfig{}))
		req := httptest.NewRequest(http.MethodOptions, "/chat", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("explicit origins", func(t *testing.T) {
		mw := New(log.NewNop(), config.RateLimitConfig{}, config.CORSConfig{AllowedOrigins: []string{"https://app.example.com"}})
		r := newEngine(mw)

		req := httptest.NewRequest(http.MethodPost, "/chat", nil)
		req.Header.Set("Origin", "https://app.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

		req = httptest.NewRequest(http.MethodPost, "/chat", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
