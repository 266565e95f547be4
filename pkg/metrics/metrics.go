package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fallback stages.
const (
	StageClassify = "classify"
	StageRespond  = "respond"
)

// Metrics records pipeline activity. A nil *Metrics discards everything.
type Metrics struct {
	turns        *prometheus.CounterVec
	fallbacks    *prometheus.CounterVec
	turnDuration prometheus.Histogram
	llmCalls     *prometheus.CounterVec
	llmLatency   *prometheus.HistogramVec
	gatherer     prometheus.Gatherer
}

// Outcomes of a single language-model call.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// New creates the collectors and registers them with a fresh registry, so
// several instances can coexist in one process.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		turns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "travel_assistant_turns_total",
				Help: "Total number of completed turns by intent",
			},
			[]string{"intent"},
		),
		fallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "travel_assistant_fallbacks_total",
				Help: "Total number of fallbacks taken by pipeline stage",
			},
			[]string{"stage"},
		),
		turnDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "travel_assistant_turn_duration_seconds",
				Help:    "Duration of a full turn",
				Buckets: prometheus.DefBuckets,
			},
		),
		llmCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "travel_assistant_llm_calls_total",
				Help: "Language model calls by provider and outcome, retries included",
			},
			[]string{"provider", "outcome"},
		),
		llmLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "travel_assistant_llm_call_duration_seconds",
				Help:    "Duration of a single language model call",
				Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"provider"},
		),
		gatherer: reg,
	}
	reg.MustRegister(m.turns, m.fallbacks, m.turnDuration, m.llmCalls, m.llmLatency)
	return m
}

// ObserveTurn counts a finished turn and its duration.
func (m *Metrics) ObserveTurn(intent string, d time.Duration) {
	if m == nil {
		return
	}
	m.turns.WithLabelValues(intent).Inc()
	m.turnDuration.Observe(d.Seconds())
}

// Fallback counts a fallback taken at stage.
func (m *Metrics) Fallback(stage string) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(stage).Inc()
}

// ObserveProviderCall records one attempt against a language model provider.
func (m *Metrics) ObserveProviderCall(provider string, err error, d time.Duration) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.llmCalls.WithLabelValues(provider, outcome).Inc()
	m.llmLatency.WithLabelValues(provider).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
