// Package metrics exposes Prometheus metrics for render and transport
// activity.
//
// A Recorder implements core.RenderObserver, so it can be passed to
// core.WithObserver. The server records sessions, events and websocket
// errors on the same Recorder and serves it on the metrics path:
//
//	rec := metrics.New(metrics.WithNamespace("myapp"))
//	session := core.NewSession(core.WithObserver(rec))
//	mux.Handle("/metrics", rec.Handler())
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kview-dev/kview/pkg/engine"
)

// Config configures a Recorder.
type Config struct {
	// Namespace is the metrics namespace (default: "kview").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for patch duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry registers and gathers the metrics.
	// Default: a new private registry.
	Registry *prometheus.Registry
}

// Option configures a Recorder.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the patch duration histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "kview",
		Buckets:   prometheus.DefBuckets,
	}
}

// Recorder holds the Prometheus collectors.
type Recorder struct {
	registry *prometheus.Registry

	patchesTotal   *prometheus.CounterVec
	patchDuration  *prometheus.HistogramVec
	nodesTotal     *prometheus.CounterVec
	batchesTotal   *prometheus.CounterVec
	batchBlocks    prometheus.Histogram
	activeSessions prometheus.Gauge
	eventsTotal    *prometheus.CounterVec
	framesSent     prometheus.Counter
	wsErrors       *prometheus.CounterVec
}

// New creates a Recorder and registers its collectors.
func New(opts ...Option) *Recorder {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.Registry == nil {
		config.Registry = prometheus.NewRegistry()
	}
	factory := promauto.With(config.Registry)

	return &Recorder{
		registry: config.Registry,

		patchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patches_total",
			Help:        "Total number of patches applied per root",
			ConstLabels: config.ConstLabels,
		}, []string{"root"}),

		patchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patch_duration_seconds",
			Help:        "Render and patch duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"root"}),

		nodesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "nodes_total",
			Help:        "Total number of nodes touched by patches, by operation",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		batchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "async_batches_total",
			Help:        "Total number of flushed asynchronous render batches",
			ConstLabels: config.ConstLabels,
		}, []string{"root"}),

		batchBlocks: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "async_batch_blocks",
			Help:        "Number of blocks coalesced into one asynchronous batch",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{1, 2, 4, 8, 16, 32, 64},
		}),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_sessions",
			Help:        "Number of active websocket sessions",
			ConstLabels: config.ConstLabels,
		}),

		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "events_total",
			Help:        "Total number of browser events dispatched, by type and status",
			ConstLabels: config.ConstLabels,
		}, []string{"type", "status"}),

		framesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "frames_sent_total",
			Help:        "Total number of frames sent to clients",
			ConstLabels: config.ConstLabels,
		}),

		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "websocket_errors_total",
			Help:        "Total websocket errors by type",
			ConstLabels: config.ConstLabels,
		}, []string{"type"}),
	}
}

// ObservePatch records one patch of root.
func (r *Recorder) ObservePatch(root string, elapsed time.Duration, stats engine.Stats) {
	r.patchesTotal.WithLabelValues(root).Inc()
	r.patchDuration.WithLabelValues(root).Observe(elapsed.Seconds())
	r.nodesTotal.WithLabelValues("created").Add(float64(stats.Created))
	r.nodesTotal.WithLabelValues("patched").Add(float64(stats.Patched))
	r.nodesTotal.WithLabelValues("removed").Add(float64(stats.Removed))
	r.nodesTotal.WithLabelValues("moved").Add(float64(stats.Moved))
}

// ObserveBatch records one asynchronous batch of root.
func (r *Recorder) ObserveBatch(root string, blocks int) {
	r.batchesTotal.WithLabelValues(root).Inc()
	r.batchBlocks.Observe(float64(blocks))
}

// SessionOpened records a new websocket session.
func (r *Recorder) SessionOpened() { r.activeSessions.Inc() }

// SessionClosed records the end of a websocket session.
func (r *Recorder) SessionClosed() { r.activeSessions.Dec() }

// ObserveEvent records a dispatched browser event. A non-nil err counts
// as an error.
func (r *Recorder) ObserveEvent(eventType string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	r.eventsTotal.WithLabelValues(eventType, status).Inc()
}

// FramesSent records n frames written to a client.
func (r *Recorder) FramesSent(n int) { r.framesSent.Add(float64(n)) }

// WebSocketError records a websocket error of the given kind.
func (r *Recorder) WebSocketError(kind string) {
	r.wsErrors.WithLabelValues(kind).Inc()
}

// Registry returns the registry the collectors are registered with.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
