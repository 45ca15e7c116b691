package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/tianzige/pkg/errors"
	"github.com/matzehuels/tianzige/pkg/observability"
)

const namespace = "tianzige"

// Metrics implements the observability hooks with Prometheus collectors.
type Metrics struct {
	resolves        *prometheus.CounterVec
	renders         *prometheus.CounterVec
	renderBytes     prometheus.Histogram
	stageDuration   *prometheus.HistogramVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		resolves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolves_total",
			Help:      "Grid resolutions by page, mode and outcome code.",
		}, []string{"page", "mode", "code"}),
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "PDF renders by page and outcome code.",
		}, []string{"page", "code"}),
		renderBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_bytes",
			Help:      "Size of rendered PDF documents.",
			Buckets:   prometheus.ExponentialBuckets(1024, 2, 10),
		}),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Duration of pipeline stages.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"stage"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
	reg.MustRegister(m.resolves, m.renders, m.renderBytes, m.stageDuration, m.requests, m.requestDuration)
	return m
}

// Install makes m the process-wide pipeline and HTTP hooks.
func (m *Metrics) Install() {
	observability.SetPipelineHooks(m)
	observability.SetHTTPHooks(m)
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if code := errors.GetCode(err); code != "" {
		return string(code)
	}
	return string(errors.ErrCodeInternal)
}

// OnResolveStart implements observability.PipelineHooks.
func (m *Metrics) OnResolveStart(context.Context, string) {}

// OnResolveComplete implements observability.PipelineHooks.
func (m *Metrics) OnResolveComplete(_ context.Context, page, mode string, d time.Duration, err error) {
	m.resolves.WithLabelValues(page, mode, outcome(err)).Inc()
	m.stageDuration.WithLabelValues("resolve").Observe(d.Seconds())
}

// OnRenderStart implements observability.PipelineHooks.
func (m *Metrics) OnRenderStart(context.Context, string) {}

// OnRenderComplete implements observability.PipelineHooks.
func (m *Metrics) OnRenderComplete(_ context.Context, page string, size int, d time.Duration, err error) {
	m.renders.WithLabelValues(page, outcome(err)).Inc()
	m.stageDuration.WithLabelValues("render").Observe(d.Seconds())
	if err == nil {
		m.renderBytes.Observe(float64(size))
	}
}

// OnRequest implements observability.HTTPHooks.
func (m *Metrics) OnRequest(context.Context, string, string) {}

// OnResponse implements observability.HTTPHooks.
func (m *Metrics) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(d.Seconds())
}

// instrument reports every request to the HTTP hooks, labelled with the
// matched route pattern.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, route, status, time.Since(start))
	})
}

var (
	_ observability.PipelineHooks = (*Metrics)(nil)
	_ observability.HTTPHooks     = (*Metrics)(nil)
)
