package orchestrator

import (
	"math/rand"
	"time"

	"travel-assistant/internal/agent"
	"travel-assistant/internal/model"
	"travel-assistant/internal/router"
	"travel-assistant/pkg/llmprovider"
	pkgLog "travel-assistant/pkg/log"
	"travel-assistant/pkg/metrics"
)

// Orchestrator drives a turn through classify, route, handle and respond.
// It holds no per-session data and is safe for concurrent turns.
type Orchestrator struct {
	router   router.Router
	registry *agent.Registry
	llm      llmprovider.Provider
	l        pkgLog.Logger
	metrics  *metrics.Metrics
	window   int
	now      func() time.Time
	pick     func(n int) int
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithMetrics records turns and fallbacks in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Orchestrator) { o.metrics = m }
}

// WithContextWindow sets how many recent messages the classifier sees.
func WithContextWindow(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.window = n
		}
	}
}

// WithClock sets the timestamp source for new states.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// WithPicker sets how a generic fallback reply is chosen; pick returns an
// index in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(o *Orchestrator) { o.pick = pick }
}

func New(r router.Router, registry *agent.Registry, llm llmprovider.Provider, l pkgLog.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		router:   r,
		registry: registry,
		llm:      llm,
		l:        l,
		window:   agent.DefaultContextWindow,
		now:      time.Now,
		pick:     rand.Intn,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NewState builds a turn state using the orchestrator's clock.
func (o *Orchestrator) NewState(input string, prior []model.Message, opts ...agent.StateOption) *agent.State {
	return agent.NewState(input, prior, append([]agent.StateOption{agent.WithClock(o.now)}, opts...)...)
}
