package server

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kview-dev/kview/internal/errors"
	"github.com/kview-dev/kview/pkg/core"
	"github.com/kview-dev/kview/pkg/dom"
	"github.com/kview-dev/kview/pkg/loop"
	"github.com/kview-dev/kview/pkg/protocol"
	"github.com/kview-dev/kview/pkg/render"
)

// App builds the user interface of one session. It runs on the session
// loop and usually mounts one or more roots:
//
//	func(s *core.Session) error {
//	    s.Document().AppendMount("main")
//	    core.NewRoot(s, "main", core.WithInit(func(r *core.Root) { ... }))
//	    return nil
//	}
type App func(s *core.Session) error

// callTimeout bounds waiting for the loop from an HTTP handler.
const callTimeout = 10 * time.Second

// Session is one browser page backed by a server-side document.
type Session struct {
	// Identity
	ID        string
	CreatedAt time.Time

	// Loop-owned state
	loop  *loop.Loop
	sched *flushingScheduler
	ui    *core.Session
	doc   *dom.Document
	seq   uint64
	drag  *dom.DataTransfer

	// Connection
	mu       sync.Mutex // Protects conn and writes
	conn     *websocket.Conn
	connDone chan struct{}
	closed   atomic.Bool
	done     chan struct{}
	cancel   context.CancelFunc

	config   *Config
	logger   *slog.Logger
	observer Observer
	tracer   trace.Tracer

	opened   bool
	onDetach func(*Session)
	onClose  func(*Session)

	// Metrics
	eventCount atomic.Uint64
	frameCount atomic.Uint64
}

// newSession creates a session, starts its loop and runs app on it.
func newSession(app App, config *Config) (*Session, error) {
	id := uuid.NewString()
	logger := config.Logger.With("session_id", id)
	tracer := config.Tracer
	if tracer == nil {
		tracer = otel.Tracer("github.com/kview-dev/kview/pkg/server")
	}

	s := &Session{
		ID:        id,
		CreatedAt: time.Now(),
		loop:      loop.New(loop.WithLogger(logger)),
		doc:       dom.NewDocument(),
		done:      make(chan struct{}),
		config:    config,
		logger:    logger,
		observer:  config.Observer,
		tracer:    tracer,
	}
	s.sched = &flushingScheduler{loop: s.loop, flush: s.flush}

	opts := []core.SessionOption{
		core.WithDocument(s.doc),
		core.WithScheduler(s.sched),
		core.WithLogger(logger),
		core.WithObserver(config.Observer),
		core.WithSyncMode(config.SyncMode),
	}
	if config.Tracer != nil {
		opts = append(opts, core.WithTracer(config.Tracer))
	}
	s.ui = core.NewSession(opts...)

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.loop.Run(ctx)

	var buildErr error
	err := s.call(func() {
		defer func() {
			if r := recover(); r != nil {
				buildErr = fmt.Errorf("server: app panic: %v", r)
				logger.Error("app panic", "panic", r, "stack", string(debug.Stack()))
			}
		}()
		buildErr = app(s.ui)
	})
	if err == nil {
		err = buildErr
	}
	if err != nil {
		s.Close()
		return nil, err
	}
	s.opened = true
	config.Observer.SessionOpened()
	logger.Debug("session created")
	return s, nil
}

// call runs fn on the loop and waits for it.
func (s *Session) call(fn func()) error {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()
	return s.loop.Call(ctx, fn)
}

// Dispatch queues fn on the session loop. Mutations fn causes are sent to
// the client when it returns. It is safe to call from any goroutine.
func (s *Session) Dispatch(fn func()) bool {
	if s.closed.Load() {
		return false
	}
	return s.sched.Dispatch(fn)
}

// UI returns the render session. It must only be used on the loop.
func (s *Session) UI() *core.Session { return s.ui }

// Document returns the session document. It must only be used on the loop.
func (s *Session) Document() *dom.Document { return s.doc }

// RenderPage renders the live page of the session.
func (s *Session) RenderPage(r *render.Renderer, page render.PageData) ([]byte, error) {
	var buf bytes.Buffer
	var renderErr error
	page.Document = s.doc
	page.SessionID = s.ID
	if err := s.call(func() { renderErr = r.RenderPage(&buf, page) }); err != nil {
		return nil, err
	}
	return buf.Bytes(), renderErr
}

// Attach binds a websocket to the session, sends the init frame and starts
// the connection goroutines.
func (s *Session) Attach(conn *websocket.Conn) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}
	s.mu.Lock()
	if s.conn != nil {
		s.mu.Unlock()
		return ErrAlreadyAttached
	}
	resync := s.frameCount.Load() > 0
	s.conn = conn
	s.connDone = make(chan struct{})
	connDone := s.connDone
	s.mu.Unlock()

	var sendErr error
	err := s.call(func() {
		s.doc.StartRecording()
		s.doc.TakeMutations()
		f, err := protocol.Encode(protocol.FrameInit, protocol.Init{
			Session: s.ID,
			Title:   s.config.Title,
			HTML:    s.doc.Body().OuterHTML(true),
		})
		if err != nil {
			sendErr = err
			return
		}
		f.Flags = protocol.FlagFinal
		if resync {
			f.Flags |= protocol.FlagResync
		}
		sendErr = s.write(f)
	})
	if err == nil {
		err = sendErr
	}
	if err != nil {
		s.detach(conn)
		return err
	}

	s.logger.Info("session attached", "resync", resync)
	go s.readLoop(conn)
	go s.pingLoop(connDone)
	return nil
}

// Attached reports whether a websocket is bound to the session.
func (s *Session) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn != nil
}

// detach unbinds conn if it is still the session connection.
func (s *Session) detach(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn != conn {
		s.mu.Unlock()
		return
	}
	s.conn = nil
	close(s.connDone)
	s.mu.Unlock()

	conn.Close()
	s.loop.Dispatch(s.doc.StopRecording)
	s.logger.Info("session detached")
	if s.onDetach != nil && !s.closed.Load() {
		s.onDetach(s)
	}
}

// flush sends the mutations recorded since the last flush. It runs on the
// loop after every scheduled task.
func (s *Session) flush() {
	muts := s.doc.TakeMutations()
	if len(muts) == 0 {
		return
	}
	s.seq++
	f, err := protocol.Encode(protocol.FrameMutations, protocol.Mutations{Seq: s.seq, Mutations: muts})
	if err != nil {
		s.logger.Error("mutation encode failed", "seq", s.seq, "error", err)
		return
	}
	f.Flags = protocol.FlagFinal
	if err := s.write(f); err != nil && err != ErrNoConnection {
		s.logger.Warn("mutation write failed", "seq", s.seq, "error", err)
	}
}

// write sends one frame to the attached client.
func (s *Session) write(f *protocol.Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return ErrNoConnection
	}
	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	if err := s.conn.WriteMessage(websocket.BinaryMessage, f.Encode()); err != nil {
		s.observer.WebSocketError("write")
		s.conn.Close()
		return err
	}
	s.frameCount.Add(1)
	s.observer.FramesSent(1)
	return nil
}

// handleEvent dispatches a client event on the node it targets. It runs on
// the loop.
func (s *Session) handleEvent(ev *protocol.Event) {
	_, span := s.tracer.Start(context.Background(), "kview.event",
		trace.WithAttributes(
			attribute.String("kview.session", s.ID),
			attribute.String("kview.event.type", ev.Type),
			attribute.Int64("kview.event.nid", int64(ev.NID)),
		))
	defer span.End()
	s.eventCount.Add(1)

	for _, r := range ev.Rects {
		if n, ok := s.doc.NodeByNID(r.NID); ok {
			n.SetBoundingClientRect(r.Rect())
		}
	}

	node, ok := s.doc.NodeByNID(ev.NID)
	if !ok {
		err := errors.New("E161").WithDetailf("node %d (%s)", ev.NID, ev.Type)
		s.logger.Debug("event target gone", "nid", ev.NID, "type", ev.Type)
		span.RecordError(err)
		s.observer.ObserveEvent(ev.Type, err)
		return
	}

	domEv := s.dragEvent(ev)
	err := s.safeExecute(node, ev, domEv)
	switch ev.Type {
	case "dragstart":
		s.drag = domEv.DataTransfer
	case "dragend":
		s.drag = nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "listener panic")
	}
	s.observer.ObserveEvent(ev.Type, err)
}

// dragEvent converts ev, carrying the data transfer of an in-progress drag
// across the events of one drag and drop gesture.
func (s *Session) dragEvent(ev *protocol.Event) *dom.Event {
	domEv := ev.DOMEvent()
	switch ev.Type {
	case "dragstart":
		domEv.DataTransfer = dom.NewDataTransfer()
	case "dragenter", "dragover", "dragleave", "drop", "dragend":
		if s.drag != nil {
			domEv.DataTransfer = s.drag
		}
	}
	return domEv
}

// safeExecute dispatches domEv on node with panic recovery.
func (s *Session) safeExecute(node *dom.Node, ev *protocol.Event, domEv *dom.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			s.logger.Error("listener panic",
				"panic", r,
				"nid", ev.NID,
				"type", ev.Type,
				"stack", string(stack))
			err = NewHandlerError(s.ID, ev.NID, ev.Type, r, stack)
			s.sendError("panic", "Internal error")
		}
	}()
	node.DispatchEvent(domEv)
	return nil
}

// sendError sends an error frame to the client.
func (s *Session) sendError(code, message string) {
	f, err := protocol.Encode(protocol.FrameError, protocol.Error{Code: code, Message: message})
	if err != nil {
		return
	}
	if err := s.write(f); err != nil && err != ErrNoConnection {
		s.logger.Warn("error frame write failed", "error", err)
	}
}

// Close disposes the user interface and stops the session.
func (s *Session) Close() {
	if s.closed.Swap(true) {
		return
	}
	close(s.done)

	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn != nil {
		s.mu.Lock()
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		s.mu.Unlock()
		s.detach(conn)
	}

	if err := s.call(s.ui.DisposeAll); err != nil {
		s.logger.Warn("dispose on close failed", "error", err)
	}
	s.cancel()

	if s.opened {
		s.observer.SessionClosed()
	}
	if s.onClose != nil {
		s.onClose(s)
	}
	s.logger.Info("session closed",
		"events", s.eventCount.Load(),
		"frames", s.frameCount.Load())
}

// IsClosed returns whether the session is closed.
func (s *Session) IsClosed() bool {
	return s.closed.Load()
}

// Done returns a channel that's closed when the session is done.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// SessionStats is a snapshot of session counters.
type SessionStats struct {
	ID       string
	Attached bool
	Events   uint64
	Frames   uint64
	Age      time.Duration
}

// Stats returns a snapshot of the session counters.
func (s *Session) Stats() SessionStats {
	return SessionStats{
		ID:       s.ID,
		Attached: s.Attached(),
		Events:   s.eventCount.Load(),
		Frames:   s.frameCount.Load(),
		Age:      time.Since(s.CreatedAt),
	}
}
