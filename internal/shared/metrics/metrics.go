// Package metrics exposes service counters in Prometheus format.
package metrics

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "resume"

// Outcome labels for render counters.
const (
	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
)

// Recorder holds the service metrics on its own registry.
type Recorder struct {
	registry       *prom.Registry
	analyses       *prom.CounterVec
	renders        *prom.CounterVec
	fallbacks      *prom.CounterVec
	renderDuration *prom.HistogramVec
}

// NewRecorder registers the service metrics on reg, or on a fresh registry
// when reg is nil.
func NewRecorder(reg *prom.Registry) *Recorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	r := &Recorder{
		registry: reg,
		analyses: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Résumé analyses by outcome",
		}, []string{"outcome"}),
		renders: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Document renders by format and outcome",
		}, []string{"format", "outcome"}),
		fallbacks: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "render_fallbacks_total",
			Help:      "Renders served as plain text because the backend was unavailable",
		}, []string{"format"}),
		renderDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Render duration by format",
			Buckets:   prom.DefBuckets,
		}, []string{"format"}),
	}
	reg.MustRegister(r.analyses, r.renders, r.fallbacks, r.renderDuration)
	return r
}

var (
	defaultOnce     sync.Once
	defaultRecorder *Recorder
)

// Default is the process-wide recorder.
func Default() *Recorder {
	defaultOnce.Do(func() {
		defaultRecorder = NewRecorder(nil)
	})
	return defaultRecorder
}

// Registry is the registry the recorder's metrics live on.
func (r *Recorder) Registry() *prom.Registry {
	return r.registry
}

// IncAnalysis counts one analysis with the given outcome.
func (r *Recorder) IncAnalysis(outcome string) {
	if r == nil {
		return
	}
	r.analyses.WithLabelValues(outcome).Inc()
}

// ObserveRender counts one render and records its duration.
func (r *Recorder) ObserveRender(format, outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.renders.WithLabelValues(format, outcome).Inc()
	r.renderDuration.WithLabelValues(format).Observe(d.Seconds())
	if outcome == OutcomeFallback {
		r.fallbacks.WithLabelValues(format).Inc()
	}
}

// Handler serves the registry in Prometheus text format.
func (r *Recorder) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
