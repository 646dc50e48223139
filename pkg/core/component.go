package core

import (
	"github.com/kview-dev/kview/pkg/builder"
	"github.com/kview-dev/kview/pkg/dom"
	"github.com/kview-dev/kview/pkg/vdom"
)

// Component is a node of the UI tree.
type Component interface {
	// Key is the stable identity used when reconciling children.
	Key() string
	Parent() Container
	// SetParent only updates the back link. Use Container.Add and Remove
	// to move components.
	SetParent(p Container)
	Visible() bool
	SetVisible(v bool)
	// Render builds the node for a visible component.
	Render() *vdom.VNode
	// RenderVNode is what containers call: Render when visible, a hidden
	// placeholder otherwise.
	RenderVNode() *vdom.VNode
	Element() (*dom.Node, bool)
	Refresh()
	Dispose()
}

// Container is a Component with ordered children.
type Container interface {
	Component
	Add(child Component)
	AddAt(position int, child Component)
	AddAll(children ...Component)
	Remove(child Component)
	RemoveAt(index int)
	RemoveAll()
	Children() []Component
}

// widgetSelf is the method set Widget dispatches through, so embedding
// types can override rendering and lifecycle callbacks.
type widgetSelf interface {
	Component
	BuildAttributeSet(b *builder.AttributeSetBuilder)
	BuildClassSet(b *builder.ClassSetBuilder)
	AfterInsert(v *vdom.VNode)
	AfterPatch(v *vdom.VNode)
	AfterDestroy()
}

// RootOf walks parent links from c and returns the first Root.
func RootOf(c Component) (*Root, bool) {
	for cur := c; cur != nil; {
		if r, ok := cur.(*Root); ok {
			return r, true
		}
		p := cur.Parent()
		if p == nil {
			return nil, false
		}
		cur = p
	}
	return nil, false
}

// SingleRender runs fn inside a single-render scope of c's root, or runs it
// directly when c is detached.
func SingleRender(c Component, fn func()) {
	if r, ok := RootOf(c); ok {
		r.SingleRender(fn)
		return
	}
	fn()
}

// SingleRenderAsync queues fn on c's root, or runs it directly when c is
// detached.
func SingleRenderAsync(c Component, fn func()) {
	if r, ok := RootOf(c); ok {
		r.SingleRenderAsync(fn)
		return
	}
	fn()
}
