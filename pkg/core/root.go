package core

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kview-dev/kview/internal/errors"
	"github.com/kview-dev/kview/pkg/dom"
	"github.com/kview-dev/kview/pkg/engine"
	"github.com/kview-dev/kview/pkg/loop"
	"github.com/kview-dev/kview/pkg/vdom"
)

// Root is the container bound to a mount element of the session document.
// It decides when the tree is patched into the document.
type Root struct {
	SimplePanel

	session     *Session
	mountID     string
	mountEl     *dom.Node
	isFirstRoot bool

	lastVNode *vdom.VNode
	patches   int

	singleRenderCount int
	renderingDisabled bool
	patching          bool
	rerenderPending   bool
	closed            bool

	asyncQueue []func()
	asyncTimer loop.Timer

	styleVersion uint64
	styleValid   bool
	styleText    string
}

// RootOption configures a Root.
type RootOption func(*rootConfig)

type rootConfig struct {
	init      func(r *Root)
	className string
}

// WithInit populates the root inside a single-render scope, so the initial
// mount is one patch.
func WithInit(fn func(r *Root)) RootOption {
	return func(c *rootConfig) { c.init = fn }
}

// WithRootClassName sets the root element's class name.
func WithRootClassName(name string) RootOption {
	return func(c *rootConfig) { c.className = name }
}

// NewRoot creates a root mounted at the element with the given id. When no
// such element exists the root stays disconnected and never patches.
func NewRoot(session *Session, id string, opts ...RootOption) *Root {
	var cfg rootConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Root{session: session, mountID: id}
	r.InitPanel(r, "div", WithID(id), WithClassName(cfg.className))
	r.isFirstRoot = len(session.roots) == 0
	session.registerRoot(r)

	if el, ok := session.doc.GetElementByID(id); ok {
		r.mountEl = el
	} else {
		session.logger.Warn("root mount element not found", "id", id)
	}
	if r.isFirstRoot {
		for _, m := range session.modals {
			m.SetParent(r)
		}
	}

	if cfg.init != nil {
		r.SingleRender(func() { cfg.init(r) })
	} else {
		r.ReRender()
	}
	return r
}

// Session returns the owning session.
func (r *Root) Session() *Session { return r.session }

// MountID returns the id of the mount element.
func (r *Root) MountID() string { return r.mountID }

// IsFirstRoot reports whether this root emits styles and modals.
func (r *Root) IsFirstRoot() bool { return r.isFirstRoot }

// Connected reports whether a mount element was found.
func (r *Root) Connected() bool { return r.mountEl != nil }

// LastVNode returns the most recently patched tree.
func (r *Root) LastVNode() *vdom.VNode { return r.lastVNode }

// PatchCount returns the number of patches issued.
func (r *Root) PatchCount() int { return r.patches }

// Render renders the style sheet (first root only), the children and the
// modals (first root only).
func (r *Root) Render() *vdom.VNode {
	var children []*vdom.VNode
	if r.isFirstRoot {
		if css := r.styles(); css != "" {
			children = append(children, vdom.StyleEl(vdom.Key("kv_styles"), css))
		}
	}
	children = append(children, r.ChildrenVNodes()...)
	if r.isFirstRoot {
		for _, m := range r.session.modals {
			children = append(children, m.RenderVNode())
		}
	}
	return r.RenderTag("div", children...)
}

// RenderVNode always renders the root.
func (r *Root) RenderVNode() *vdom.VNode { return r.Render() }

func (r *Root) styles() string {
	if !r.styleValid || r.styleVersion != r.session.stylesVersion {
		r.styleText = styleSheet(r.session.styles)
		r.styleVersion = r.session.stylesVersion
		r.styleValid = true
	}
	return r.styleText
}

// RefreshStyles rebuilds the style sheet and re-renders.
func (r *Root) RefreshStyles() {
	r.styleValid = false
	r.ReRender()
}

// SetRenderingDisabled stops or resumes patching. Resuming re-renders.
func (r *Root) SetRenderingDisabled(disabled bool) {
	if r.renderingDisabled == disabled {
		return
	}
	r.renderingDisabled = disabled
	if !disabled {
		r.ReRender()
	}
}

func (r *Root) canPatch() bool {
	return !r.closed && r.mountEl != nil && !r.renderingDisabled
}

// ReRender patches the document with a fresh render, unless a
// single-render scope is open. A call made while a patch is running is
// performed once that patch returns.
func (r *Root) ReRender() {
	if r.singleRenderCount > 0 || !r.canPatch() {
		return
	}
	r.runPatch(func(p Patcher) {
		v := r.RenderVNode()
		if r.lastVNode == nil {
			r.lastVNode = p.Mount(r.mountEl, v)
		} else {
			r.lastVNode = p.Patch(r.lastVNode, v)
		}
	})
}

// Restart patches to an empty element and then to a fresh render, so the
// whole subtree is rebuilt.
func (r *Root) Restart() {
	if r.singleRenderCount > 0 || !r.canPatch() {
		return
	}
	if r.lastVNode == nil {
		r.ReRender()
		return
	}
	r.runPatch(func(p Patcher) {
		r.lastVNode = p.Patch(r.lastVNode, vdom.Div(vdom.ID(r.mountID)))
	})
	r.runPatch(func(p Patcher) {
		r.lastVNode = p.Patch(r.lastVNode, r.RenderVNode())
	})
}

func (r *Root) runPatch(apply func(p Patcher)) {
	if r.patching {
		r.rerenderPending = true
		return
	}
	p, err := r.session.patcherFor()
	if err != nil {
		r.session.logger.Error("patch engine unavailable", "root", r.mountID, "error", err)
		return
	}

	r.patching = true
	defer func() { r.patching = false }()
	r.patchOnce(p, apply)
	for r.rerenderPending && r.canPatch() {
		r.patchOnce(p, func(p Patcher) {
			r.lastVNode = p.Patch(r.lastVNode, r.RenderVNode())
		})
	}
	r.rerenderPending = false
}

func (r *Root) patchOnce(p Patcher, apply func(p Patcher)) {
	r.rerenderPending = false
	_, span := r.session.tracer.Start(context.Background(), "kview.root.patch",
		trace.WithAttributes(attribute.String("kview.root", r.mountID)))
	defer span.End()

	start := time.Now()
	apply(p)
	r.patches++

	var stats engine.Stats
	if sp, ok := p.(interface{ LastStats() engine.Stats }); ok {
		stats = sp.LastStats()
	}
	span.SetAttributes(
		attribute.Int("kview.nodes.created", stats.Created),
		attribute.Int("kview.nodes.removed", stats.Removed),
	)
	r.session.observer.ObservePatch(r.mountID, time.Since(start), stats)
}

// SingleRender runs fn with patching suppressed and patches once when the
// outermost scope exits.
func (r *Root) SingleRender(fn func()) {
	r.singleRenderCount++
	func() {
		defer func() { r.singleRenderCount-- }()
		fn()
	}()
	r.ReRender()
}

// SingleRenderAsync queues fn behind a zero-delay timer. When it fires,
// every queued block runs in order inside one SingleRender. A root has at
// most one pending flush; blocks queued while it is pending join it. In
// sync mode fn runs immediately inside SingleRender.
func (r *Root) SingleRenderAsync(fn func()) {
	if r.session.syncMode {
		r.SingleRender(fn)
		return
	}
	r.asyncQueue = append(r.asyncQueue, fn)
	if r.asyncTimer != nil {
		return
	}
	r.asyncTimer = r.session.sched.AfterFunc(0, r.flushAsync)
}

// PendingAsync returns the number of queued blocks.
func (r *Root) PendingAsync() int { return len(r.asyncQueue) }

func (r *Root) flushAsync() {
	r.asyncTimer = nil
	queue := r.asyncQueue
	r.asyncQueue = nil
	if r.closed || len(queue) == 0 {
		return
	}
	r.SingleRender(func() {
		for _, fn := range queue {
			fn()
		}
	})
	r.session.observer.ObserveBatch(r.mountID, len(queue))
}

// Disposed reports whether the root was disposed.
func (r *Root) Disposed() bool { return r.closed }

// CheckOpen returns E104 once the root is disposed.
func (r *Root) CheckOpen() error {
	if r.closed {
		return errors.New("E104").WithDetailf("root %q", r.mountID)
	}
	return nil
}

// Dispose stops patching, disposes the tree and unregisters the root. The
// first root also clears the session styles.
func (r *Root) Dispose() {
	if r.closed {
		return
	}
	r.closed = true
	if r.asyncTimer != nil {
		r.asyncTimer.Stop()
		r.asyncTimer = nil
	}
	r.asyncQueue = nil
	r.SimplePanel.Dispose()
	r.session.unregisterRoot(r)
	if r.isFirstRoot {
		r.session.ClearStyles()
	}
}
