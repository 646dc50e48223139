package server

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/kview-dev/kview/pkg/render"
)

// Config configures the HTTP and websocket server.
type Config struct {
	// Address is the listen address (host:port).
	Address string

	// WSPath is the websocket endpoint.
	WSPath string

	// ClientPath is where the browser client is served.
	ClientPath string

	// MetricsPath serves the Observer's handler when it has one.
	MetricsPath string

	// Title is the page title.
	Title string

	// SyncMode renders every requested re-render immediately.
	SyncMode bool

	// ReadTimeout is the websocket read deadline, renewed by every frame.
	ReadTimeout time.Duration

	// WriteTimeout is the deadline of every websocket write.
	WriteTimeout time.Duration

	// PingInterval is how often the server pings an attached client.
	PingInterval time.Duration

	// ResumeWindow is how long a detached session waits for a websocket.
	ResumeWindow time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// MaxSessions caps live sessions. Zero means unlimited.
	MaxSessions int

	// AllowedOrigins lists accepted websocket origins besides same-origin.
	AllowedOrigins []string

	// StyleSheets are linked from every page.
	StyleSheets []string

	// Debug makes the client log frames.
	Debug bool

	Logger   *slog.Logger
	Observer Observer
	Tracer   trace.Tracer
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Address:         "localhost:8080",
		WSPath:          "/_kview/ws",
		ClientPath:      render.DefaultClientScript,
		MetricsPath:     "/metrics",
		Title:           "kview",
		ReadTimeout:     60 * time.Second,
		WriteTimeout:    10 * time.Second,
		PingInterval:    30 * time.Second,
		ResumeWindow:    30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// withDefaults returns a copy of c with unset fields taken from
// DefaultConfig.
func (c *Config) withDefaults() *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	out := *c
	if out.Address == "" {
		out.Address = d.Address
	}
	if out.WSPath == "" {
		out.WSPath = d.WSPath
	}
	if out.ClientPath == "" {
		out.ClientPath = d.ClientPath
	}
	if out.MetricsPath == "" {
		out.MetricsPath = d.MetricsPath
	}
	if out.ReadTimeout <= 0 {
		out.ReadTimeout = d.ReadTimeout
	}
	if out.WriteTimeout <= 0 {
		out.WriteTimeout = d.WriteTimeout
	}
	if out.PingInterval <= 0 {
		out.PingInterval = d.PingInterval
	}
	if out.ResumeWindow <= 0 {
		out.ResumeWindow = d.ResumeWindow
	}
	if out.ShutdownTimeout <= 0 {
		out.ShutdownTimeout = d.ShutdownTimeout
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	if out.Observer == nil {
		out.Observer = nopObserver{}
	}
	return &out
}

// checkOrigin accepts same-origin requests, requests without an Origin
// header and the configured origins.
func (c *Config) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if u.Host == r.Host {
		return true
	}
	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
