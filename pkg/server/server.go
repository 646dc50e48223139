package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	clientdist "github.com/kview-dev/kview/client/dist"
	"github.com/kview-dev/kview/pkg/render"
)

// Server is the HTTP and websocket server of a kview application.
type Server struct {
	app      App
	config   *Config
	sessions *SessionManager
	renderer *render.Renderer
	router   chi.Router
	upgrader websocket.Upgrader

	httpServer *http.Server
	logger     *slog.Logger
}

// New creates a server for app. A nil config uses DefaultConfig.
func New(app App, config *Config) *Server {
	config = config.withDefaults()
	s := &Server{
		app:      app,
		config:   config,
		sessions: NewSessionManager(config),
		renderer: render.NewRenderer(render.RendererConfig{
			ClientScript: config.ClientPath,
			Debug:        config.Debug,
		}),
		logger: config.Logger.With("component", "server"),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     config.checkOrigin,
	}
	s.router = s.routes()
	return s
}

// routes builds the chi router.
func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Get(s.config.WSPath, s.handleWebSocket)
	r.Get(s.config.ClientPath, s.handleClient)
	if h, ok := s.config.Observer.(interface{ Handler() http.Handler }); ok {
		r.Method(http.MethodGet, s.config.MetricsPath, h.Handler())
	}
	return r
}

// requestLogger logs every request through slog.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the server's router.
func (s *Server) Handler() http.Handler { return s.router }

// Router returns the chi router so applications can mount extra routes.
func (s *Server) Router() chi.Router { return s.router }

// Sessions returns the session manager.
func (s *Server) Sessions() *SessionManager { return s.sessions }

// Config returns the effective configuration.
func (s *Server) Config() *Config { return s.config }

// handlePage creates a session and renders its page.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Create(s.app)
	if err != nil {
		if errors.Is(err, ErrMaxSessionsReached) {
			http.Error(w, "Server busy", http.StatusServiceUnavailable)
			return
		}
		s.logger.Error("session create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	body, err := sess.RenderPage(s.renderer, render.PageData{
		Title:       s.config.Title,
		StyleSheets: s.config.StyleSheets,
		WSPath:      s.config.WSPath,
	})
	if err != nil {
		s.logger.Error("page render failed", "session_id", sess.ID, "error", err)
		sess.Close()
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(body)
}

// handleWebSocket attaches a websocket to the session named by the
// session query parameter.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session")
	if _, ok := s.sessions.Get(id); !ok {
		http.Error(w, "Unknown session", http.StatusNotFound)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.config.Observer.WebSocketError("upgrade")
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	err = s.sessions.Attach(id, func(sess *Session) error { return sess.Attach(conn) })
	if err != nil {
		s.logger.Warn("websocket attach failed", "session_id", id, "error", err)
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error()),
			time.Now().Add(time.Second))
		conn.Close()
	}
}

// handleClient serves the browser client.
func (s *Server) handleClient(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(clientdist.KViewJS)
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.config.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown closes every session and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.sessions.Shutdown()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}
