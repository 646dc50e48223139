package core

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/kview-dev/kview/pkg/dom"
	"github.com/kview-dev/kview/pkg/engine"
	"github.com/kview-dev/kview/pkg/loop"
	"github.com/kview-dev/kview/pkg/vdom"
)

// Patcher applies virtual trees to a document. *engine.Patcher implements
// it; tests wrap it to observe patch calls.
type Patcher interface {
	Mount(el *dom.Node, v *vdom.VNode) *vdom.VNode
	Patch(old, v *vdom.VNode) *vdom.VNode
}

// RenderObserver receives render cycle measurements.
type RenderObserver interface {
	ObservePatch(root string, elapsed time.Duration, stats engine.Stats)
	ObserveBatch(root string, blocks int)
}

type nopObserver struct{}

func (nopObserver) ObservePatch(string, time.Duration, engine.Stats) {}
func (nopObserver) ObserveBatch(string, int)                         {}

// Session owns everything roots share: the document, the scheduler, the
// patch engine and the registries of roots, styles and modals.
type Session struct {
	doc      *dom.Document
	sched    loop.Scheduler
	logger   *slog.Logger
	observer RenderObserver
	tracer   trace.Tracer
	manager  *engine.Manager
	patcher  Patcher
	syncMode bool

	roots         []*Root
	styles        []*Style
	modals        []Component
	stylesVersion uint64
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithDocument sets the document roots mount into.
func WithDocument(doc *dom.Document) SessionOption {
	return func(s *Session) { s.doc = doc }
}

// WithScheduler sets the scheduler used for async batches.
func WithScheduler(sched loop.Scheduler) SessionOption {
	return func(s *Session) { s.sched = sched }
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) { s.logger = logger }
}

// WithObserver sets the render observer.
func WithObserver(o RenderObserver) SessionOption {
	return func(s *Session) { s.observer = o }
}

// WithTracer sets the tracer used for patch spans.
func WithTracer(t trace.Tracer) SessionOption {
	return func(s *Session) { s.tracer = t }
}

// WithManager sets the engine manager patchers are taken from.
func WithManager(m *engine.Manager) SessionOption {
	return func(s *Session) { s.manager = m }
}

// WithPatcher bypasses the manager and uses p for every patch.
func WithPatcher(p Patcher) SessionOption {
	return func(s *Session) { s.patcher = p }
}

// WithSyncMode makes SingleRenderAsync behave like SingleRender.
func WithSyncMode(sync bool) SessionOption {
	return func(s *Session) { s.syncMode = sync }
}

// NewSession creates a session. Without options it gets a fresh document,
// an unstarted loop.Loop and the default engine manager.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		logger:   slog.Default(),
		observer: nopObserver{},
		tracer:   otel.Tracer("github.com/kview-dev/kview/pkg/core"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.doc == nil {
		s.doc = dom.NewDocument()
	}
	if s.sched == nil {
		s.sched = loop.New(loop.WithLogger(s.logger))
	}
	if s.manager == nil {
		s.manager = engine.Default()
	}
	return s
}

var (
	defaultSessionOnce sync.Once
	defaultSession     *Session
)

// DefaultSession returns the process-wide session.
func DefaultSession() *Session {
	defaultSessionOnce.Do(func() {
		defaultSession = NewSession()
	})
	return defaultSession
}

// Document returns the session document.
func (s *Session) Document() *dom.Document { return s.doc }

// Scheduler returns the session scheduler.
func (s *Session) Scheduler() loop.Scheduler { return s.sched }

// Logger returns the session logger.
func (s *Session) Logger() *slog.Logger { return s.logger }

// SyncMode reports whether async batches run synchronously.
func (s *Session) SyncMode() bool { return s.syncMode }

// SetSyncMode switches async batching on or off.
func (s *Session) SetSyncMode(sync bool) { s.syncMode = sync }

// Run runs the session loop until ctx is done. It returns immediately when
// the scheduler is not a *loop.Loop.
func (s *Session) Run(ctx context.Context) {
	if l, ok := s.sched.(*loop.Loop); ok {
		l.Run(ctx)
	}
}

func (s *Session) patcherFor() (Patcher, error) {
	if s.patcher != nil {
		return s.patcher, nil
	}
	p, err := s.manager.Patcher(s.doc)
	if err != nil {
		return nil, err
	}
	s.patcher = p
	return p, nil
}

// Roots returns the registered roots in creation order.
func (s *Session) Roots() []*Root {
	out := make([]*Root, len(s.roots))
	copy(out, s.roots)
	return out
}

// FirstRoot returns the root that emits styles and modals.
func (s *Session) FirstRoot() (*Root, bool) {
	for _, r := range s.roots {
		if r.isFirstRoot {
			return r, true
		}
	}
	return nil, false
}

func (s *Session) registerRoot(r *Root) {
	s.roots = append(s.roots, r)
}

func (s *Session) unregisterRoot(r *Root) {
	for i, cur := range s.roots {
		if cur == r {
			s.roots = append(s.roots[:i:i], s.roots[i+1:]...)
			return
		}
	}
}

// DisposeAll disposes every registered root.
func (s *Session) DisposeAll() {
	for _, r := range s.Roots() {
		r.Dispose()
	}
}

// Styles returns the registered styles in registration order.
func (s *Session) Styles() []*Style {
	out := make([]*Style, len(s.styles))
	copy(out, s.styles)
	return out
}

func (s *Session) registerStyle(st *Style) {
	s.styles = append(s.styles, st)
	s.stylesVersion++
}

func (s *Session) unregisterStyle(st *Style) bool {
	for i, cur := range s.styles {
		if cur == st {
			s.styles = append(s.styles[:i:i], s.styles[i+1:]...)
			s.stylesVersion++
			return true
		}
	}
	return false
}

// ClearStyles empties the style registry.
func (s *Session) ClearStyles() {
	s.styles = nil
	s.stylesVersion++
}

// Modals returns the registered modal components.
func (s *Session) Modals() []Component {
	out := make([]Component, len(s.modals))
	copy(out, s.modals)
	return out
}

// AddModal registers c to be rendered after the first root's children,
// detaching it from its current container first.
func (s *Session) AddModal(c Component) {
	for _, m := range s.modals {
		if m == c {
			return
		}
	}
	if old := c.Parent(); old != nil {
		old.Remove(c)
	}
	s.modals = append(s.modals, c)
	if r, ok := s.FirstRoot(); ok {
		c.SetParent(r)
		r.ReRender()
	}
}

// RemoveModal unregisters a modal.
func (s *Session) RemoveModal(c Component) {
	for i, m := range s.modals {
		if m != c {
			continue
		}
		s.modals = append(s.modals[:i:i], s.modals[i+1:]...)
		if r, ok := s.FirstRoot(); ok {
			if c.Parent() == Container(r) {
				c.SetParent(nil)
			}
			r.ReRender()
		}
		return
	}
}
