package core

import (
	"io"
	"log/slog"
	"testing"

	"github.com/kview-dev/kview/pkg/dom"
	"github.com/kview-dev/kview/pkg/engine"
	"github.com/kview-dev/kview/pkg/loop"
	"github.com/kview-dev/kview/pkg/vdom"
)

// countingPatcher records every patch call before delegating to the engine.
type countingPatcher struct {
	inner *engine.Patcher
	calls int
	last  *vdom.VNode
}

func (c *countingPatcher) Mount(el *dom.Node, v *vdom.VNode) *vdom.VNode {
	c.calls++
	c.last = v
	return c.inner.Mount(el, v)
}

func (c *countingPatcher) Patch(old, v *vdom.VNode) *vdom.VNode {
	c.calls++
	c.last = v
	return c.inner.Patch(old, v)
}

type testEnv struct {
	session *Session
	doc     *dom.Document
	patcher *countingPatcher
	sched   *loop.Manual
}

func newTestEnv(t *testing.T, opts ...SessionOption) *testEnv {
	t.Helper()
	doc := dom.NewDocument()
	doc.AppendMount("app")
	sched := loop.NewManual()
	cp := &countingPatcher{inner: engine.Init(doc, engine.DefaultModules()...)}
	base := []SessionOption{
		WithDocument(doc),
		WithScheduler(sched),
		WithPatcher(cp),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	s := NewSession(append(base, opts...)...)
	return &testEnv{session: s, doc: doc, patcher: cp, sched: sched}
}

// probe is a widget overriding every lifecycle callback.
type probe struct {
	Widget
	events []string
}

func newProbe(opts ...WidgetOption) *probe {
	p := &probe{}
	p.InitWidget(p, "section", opts...)
	return p
}

func (p *probe) Render() *vdom.VNode {
	return p.RenderTag(p.Tag(), vdom.Text("probe"))
}

func (p *probe) AfterInsert(v *vdom.VNode) { p.events = append(p.events, "insert") }
func (p *probe) AfterPatch(v *vdom.VNode)  { p.events = append(p.events, "patch") }
func (p *probe) AfterDestroy()             { p.events = append(p.events, "destroy") }

func count(events []string, name string) int {
	n := 0
	for _, e := range events {
		if e == name {
			n++
		}
	}
	return n
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
