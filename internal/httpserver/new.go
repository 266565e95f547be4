package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"travel-assistant/config"
	"travel-assistant/internal/conversation"
	"travel-assistant/pkg/log"
	"travel-assistant/pkg/metrics"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   config.RateLimitConfig
	cors        config.CORSConfig
	startedAt   time.Time

	// Conversation domain
	conversationUC conversation.UseCase

	metrics *metrics.Metrics
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	RateLimit   config.RateLimitConfig
	CORS        config.CORSConfig

	ConversationUseCase conversation.UseCase

	// Metrics is optional; /metrics is only mounted when set.
	Metrics *metrics.Metrics
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		rateLimit:      cfg.RateLimit,
		cors:           cfg.CORS,
		startedAt:      time.Now(),
		conversationUC: cfg.ConversationUseCase,
		metrics:        cfg.Metrics,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.conversationUC == nil {
		return errors.New("conversation use case is required")
	}
	return nil
}
