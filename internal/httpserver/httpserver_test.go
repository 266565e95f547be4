package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-assistant/config"
	"travel-assistant/internal/agent/handlers"
	"travel-assistant/internal/agent/orchestrator"
	"travel-assistant/internal/conversation/repository/memory"
	"travel-assistant/internal/conversation/usecase"
	"travel-assistant/internal/router"
	"travel-assistant/pkg/datemath"
	"travel-assistant/pkg/llmprovider"
	"travel-assistant/pkg/log"
	"travel-assistant/pkg/metrics"
	"travel-assistant/pkg/travelmock"
)

func newServer(t *testing.T) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	llm := llmprovider.NewMockProvider()
	data, err := travelmock.New()
	require.NoError(t, err)
	dates, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	m := metrics.New()

	o := orchestrator.New(router.New(llm, l, time.UTC), handlers.NewRegistry(data, dates, l), llm, l,
		orchestrator.WithMetrics(m))
	srv, err := New(l, Config{
		Logger:              l,
		Port:                8000,
		Mode:                gin.TestMode,
		Environment:         "test",
		RateLimit:           config.RateLimitConfig{Enabled: true, RequestsPerMin: 600},
		CORS:                config.CORSConfig{AllowedOrigins: []string{"*"}},
		ConversationUseCase: usecase.New(o, memory.New(16, 0), l),
		Metrics:             m,
	})
	require.NoError(t, err)
	return srv
}

func TestSystemRoutes(t *testing.T) {
	h := newServer(t).Handler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"AI Travel Assistant API is running"}`, w.Body.String())

	for path, status := range map[string]string{"/health": "healthy", "/ready": "ready", "/live": "alive"} {
		w = httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, w.Code, path)

		var body struct {
			Data healthResp `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), path)
		assert.Equal(t, status, body.Data.Status, path)
		assert.Equal(t, ServiceName, body.Data.Service)
		assert.Equal(t, "test", body.Data.Environment)
	}
}

func TestChatThenSessionThenMetrics(t *testing.T) {
	h := newServer(t).Handler()

	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"message":"I want to plan a trip to Paris in June"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var chat struct {
		Response  string `json:"response"`
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &chat))
	assert.NotEmpty(t, chat.SessionID)
	assert.Contains(t, chat.Response, "Paris")

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sessions/"+chat.SessionID, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"destination":"Paris"`)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "start_draft")
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Port: 8000, Mode: gin.TestMode})
	assert.Error(t, err)
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv := newServer(t)
	srv.port = 0
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
