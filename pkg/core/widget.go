package core

import (
	"strconv"
	"sync/atomic"

	"github.com/kview-dev/kview/internal/errors"
	"github.com/kview-dev/kview/pkg/builder"
	"github.com/kview-dev/kview/pkg/dom"
	"github.com/kview-dev/kview/pkg/vdom"
)

var widgetCounter atomic.Uint64

// nextKey returns a process-unique key of the form kv_<n>.
func nextKey() string {
	return "kv_" + strconv.FormatUint(widgetCounter.Add(1), 10)
}

// Widget is the base Component. Embed it and call InitWidget with the
// embedding value so overridden methods are used when rendering.
type Widget struct {
	StyledComponent

	self widgetSelf
	tag  string
	key  string

	className  string
	classes    []string
	attributes map[string]string

	id        Field[string]
	title     Field[string]
	role      Field[string]
	tabindex  Field[int]
	draggable Field[bool]

	visible bool
	parent  Container

	listenerSeq int
	internal    []listener
	user        []listener
	direct      []listener
	directElm   *dom.Node
	directBound map[int]dom.ListenerID

	dragStartID int
	dropIDs     []int

	attrCache  lazy[map[string]string]
	classCache lazy[map[string]bool]
	onCache    lazy[map[string][]vdom.Handler]
	hookCache  lazy[*vdom.Hooks]

	vnode              *vdom.VNode
	afterInsertHooks   []func(v *vdom.VNode)
	afterDestroyHooks  []func()
	beforeDisposeHooks []func()
	disposed           bool
}

type listener struct {
	id      int
	event   string
	handler vdom.Handler
}

// WidgetOption configures a Widget at construction.
type WidgetOption func(w *Widget)

// WithClassName sets the static class name. It may hold several
// space-separated classes.
func WithClassName(name string) WidgetOption {
	return func(w *Widget) { w.className = name }
}

// WithID sets the id attribute.
func WithID(id string) WidgetOption {
	return func(w *Widget) { w.id.Set(id) }
}

// WithAttribute sets an arbitrary attribute.
func WithAttribute(name, value string) WidgetOption {
	return func(w *Widget) { w.SetAttribute(name, value) }
}

// WithVisible sets the initial visibility.
func WithVisible(visible bool) WidgetOption {
	return func(w *Widget) { w.visible = visible }
}

// WithWidgetInit runs fn on the widget after the other options.
func WithWidgetInit(fn func(w *Widget)) WidgetOption {
	return func(w *Widget) { fn(w) }
}

// NewWidget creates a plain widget rendering the given tag.
func NewWidget(tag string, opts ...WidgetOption) *Widget {
	w := &Widget{}
	w.InitWidget(w, tag, opts...)
	return w
}

// InitWidget prepares an embedded Widget. self must be the embedding value.
func (w *Widget) InitWidget(self Component, tag string, opts ...WidgetOption) {
	ws, ok := self.(widgetSelf)
	if !ok {
		panic("core: InitWidget requires a type embedding Widget")
	}
	w.self = ws
	w.tag = tag
	w.key = nextKey()
	w.visible = true

	for _, f := range []*Field[string]{&w.id, &w.title, &w.role} {
		f.OnChange(w.Refresh)
	}
	w.tabindex.OnChange(w.Refresh)
	w.draggable.OnChange(w.Refresh)

	contributor, _ := self.(StyleContributor)
	w.bindStyle(contributor, w.Refresh)

	for _, opt := range opts {
		opt(w)
	}
}

// Key returns the widget's stable key.
func (w *Widget) Key() string { return w.key }

// Tag returns the element name the widget renders.
func (w *Widget) Tag() string { return w.tag }

// Parent returns the containing component, or nil.
func (w *Widget) Parent() Container { return w.parent }

// SetParent updates the parent back link.
func (w *Widget) SetParent(p Container) { w.parent = p }

// ParentRoot returns the Root this widget is attached to.
func (w *Widget) ParentRoot() (*Root, bool) { return RootOf(w.self) }

// Visible reports whether the widget renders its content.
func (w *Widget) Visible() bool { return w.visible }

// SetVisible shows or hides the widget.
func (w *Widget) SetVisible(v bool) {
	if w.visible == v {
		return
	}
	w.visible = v
	w.Refresh()
}

// Show makes the widget visible.
func (w *Widget) Show() { w.SetVisible(true) }

// Hide makes the widget invisible.
func (w *Widget) Hide() { w.SetVisible(false) }

// ToggleVisible flips visibility.
func (w *Widget) ToggleVisible() { w.SetVisible(!w.visible) }

// Identity attributes

func (w *Widget) ID() (string, bool)      { return w.id.Get() }
func (w *Widget) SetID(id string)         { w.id.Set(id) }
func (w *Widget) ClearID()                { w.id.Clear() }
func (w *Widget) Title() (string, bool)   { return w.title.Get() }
func (w *Widget) SetTitle(t string)       { w.title.Set(t) }
func (w *Widget) ClearTitle()             { w.title.Clear() }
func (w *Widget) Role() (string, bool)    { return w.role.Get() }
func (w *Widget) SetRole(r string)        { w.role.Set(r) }
func (w *Widget) ClearRole()              { w.role.Clear() }
func (w *Widget) TabIndex() (int, bool)   { return w.tabindex.Get() }
func (w *Widget) SetTabIndex(i int)       { w.tabindex.Set(i) }
func (w *Widget) ClearTabIndex()          { w.tabindex.Clear() }
func (w *Widget) Draggable() (bool, bool) { return w.draggable.Get() }
func (w *Widget) SetDraggable(d bool)     { w.draggable.Set(d) }
func (w *Widget) ClearDraggable()         { w.draggable.Clear() }

// ClassName returns the static class name.
func (w *Widget) ClassName() string { return w.className }

// SetClassName replaces the static class name.
func (w *Widget) SetClassName(name string) {
	if w.className == name {
		return
	}
	w.className = name
	w.Refresh()
}

// AddCSSClass adds a class to the widget's class set.
func (w *Widget) AddCSSClass(name string) {
	for _, c := range w.classes {
		if c == name {
			return
		}
	}
	w.classes = append(w.classes, name)
	w.Refresh()
}

// RemoveCSSClass removes a class added with AddCSSClass.
func (w *Widget) RemoveCSSClass(name string) {
	for i, c := range w.classes {
		if c == name {
			w.classes = append(w.classes[:i:i], w.classes[i+1:]...)
			w.Refresh()
			return
		}
	}
}

// HasCSSClass reports whether the widget renders the given class.
func (w *Widget) HasCSSClass(name string) bool {
	return w.classSet()[name]
}

// AddStyle applies a registered Style by its class name.
func (w *Widget) AddStyle(s *Style) { w.AddCSSClass(s.ClassName()) }

// RemoveStyle removes a Style added with AddStyle.
func (w *Widget) RemoveStyle(s *Style) { w.RemoveCSSClass(s.ClassName()) }

// Attribute returns an attribute set with SetAttribute.
func (w *Widget) Attribute(name string) (string, bool) {
	v, ok := w.attributes[name]
	return v, ok
}

// SetAttribute sets an arbitrary attribute.
func (w *Widget) SetAttribute(name, value string) {
	if cur, ok := w.attributes[name]; ok && cur == value {
		return
	}
	if w.attributes == nil {
		w.attributes = make(map[string]string)
	}
	w.attributes[name] = value
	w.Refresh()
}

// RemoveAttribute removes an attribute set with SetAttribute.
func (w *Widget) RemoveAttribute(name string) {
	if _, ok := w.attributes[name]; !ok {
		return
	}
	delete(w.attributes, name)
	w.Refresh()
}

// Refresh drops every cached snapshot and asks the root to re-render.
// Detached widgets only drop their caches.
func (w *Widget) Refresh() {
	w.attrCache.clear()
	w.classCache.clear()
	w.onCache.clear()
	w.hookCache.clear()
	w.InvalidateStyle()
	if r, ok := w.ParentRoot(); ok {
		r.ReRender()
	}
}

// BuildAttributeSet adds the widget's attributes. Overriding types should
// call the embedded implementation.
func (w *Widget) BuildAttributeSet(b *builder.AttributeSetBuilder) {
	if v, ok := w.id.Get(); ok {
		b.Add("id", v)
	}
	if v, ok := w.title.Get(); ok {
		b.Add("title", v)
	}
	if v, ok := w.role.Get(); ok {
		b.Add("role", v)
	}
	if v, ok := w.tabindex.Get(); ok {
		b.Add("tabindex", strconv.Itoa(v))
	}
	if v, ok := w.draggable.Get(); ok {
		b.Add("draggable", strconv.FormatBool(v))
	}
	b.AddAll(w.attributes)
}

// BuildClassSet adds the static class name and the added classes.
func (w *Widget) BuildClassSet(b *builder.ClassSetBuilder) {
	b.AddSpaced(w.className)
	b.AddAll(w.classes...)
}

// AfterInsert is called once the widget's element is in the document.
func (w *Widget) AfterInsert(v *vdom.VNode) {}

// AfterPatch is called after the widget's element was patched.
func (w *Widget) AfterPatch(v *vdom.VNode) {}

// AfterDestroy is called after the widget's element was removed.
func (w *Widget) AfterDestroy() {}

func (w *Widget) attributeSet() map[string]string {
	return w.attrCache.get(func() map[string]string {
		return builder.Attributes(w.self.BuildAttributeSet)
	})
}

func (w *Widget) classSet() map[string]bool {
	return w.classCache.get(func() map[string]bool {
		return builder.Classes(w.self.BuildClassSet).Map()
	})
}

// handlers merges internal listeners before user listeners.
func (w *Widget) handlers() map[string][]vdom.Handler {
	return w.onCache.get(func() map[string][]vdom.Handler {
		if len(w.internal) == 0 && len(w.user) == 0 {
			return nil
		}
		on := make(map[string][]vdom.Handler)
		for _, l := range w.internal {
			on[l.event] = append(on[l.event], l.handler)
		}
		for _, l := range w.user {
			on[l.event] = append(on[l.event], l.handler)
		}
		return on
	})
}

func (w *Widget) hooks() *vdom.Hooks {
	return w.hookCache.get(func() *vdom.Hooks {
		return &vdom.Hooks{
			Insert: func(v *vdom.VNode) {
				w.vnode = v
				w.bindDirect(v.Elm)
				w.self.AfterInsert(v)
				for _, h := range w.afterInsertHooks {
					h(v)
				}
			},
			Postpatch: func(_, v *vdom.VNode) {
				w.vnode = v
				w.bindDirect(v.Elm)
				w.self.AfterPatch(v)
			},
			Destroy: func(v *vdom.VNode) {
				if w.disposed || w.vnode == nil || w.vnode.Elm != v.Elm {
					return
				}
				w.destroyed()
			},
		}
	})
}

// destroyed runs internal cleanup and the after-destroy callbacks.
func (w *Widget) destroyed() {
	w.unbindDirect()
	w.vnode = nil
	w.self.AfterDestroy()
	for _, h := range w.afterDestroyHooks {
		h()
	}
}

// Render builds the widget's node. Types with children override it and
// call RenderTag.
func (w *Widget) Render() *vdom.VNode {
	return w.RenderTag(w.tag)
}

// RenderTag builds a node for tag carrying the widget's key and cached
// render data.
func (w *Widget) RenderTag(tag string, children ...*vdom.VNode) *vdom.VNode {
	data := &vdom.Data{
		Attrs: w.attributeSet(),
		Class: w.classSet(),
		Style: w.StyleList(),
		On:    w.handlers(),
		Hook:  w.hooks(),
	}
	return vdom.H(tag, vdom.Key(w.key), data, children)
}

// RenderVNode renders the widget, or a placeholder with the same tag and
// key that only carries the id and the class "hidden" when invisible.
func (w *Widget) RenderVNode() *vdom.VNode {
	if w.visible {
		return w.self.Render()
	}
	var id vdom.Attr
	if v, ok := w.id.Get(); ok {
		id = vdom.ID(v)
	}
	return vdom.H(w.tag, vdom.Key(w.key), id, vdom.Class("hidden"), w.hooks())
}

// Element returns the live element while the widget is in the document.
func (w *Widget) Element() (*dom.Node, bool) {
	if w.vnode == nil || w.vnode.Elm == nil {
		return nil, false
	}
	return w.vnode.Elm, true
}

// RequireElement returns the live element or an E101 error.
func (w *Widget) RequireElement() (*dom.Node, error) {
	el, ok := w.Element()
	if !ok {
		return nil, errors.New("E101").WithDetailf("widget %s is not in the document", w.key)
	}
	return el, nil
}

// MustElement returns the live element and panics with E101 when the
// widget is not in the document.
func (w *Widget) MustElement() *dom.Node {
	el, err := w.RequireElement()
	if err != nil {
		panic(err)
	}
	return el
}

// Focus focuses the live element, if any.
func (w *Widget) Focus() {
	if el, ok := w.Element(); ok {
		el.Focus()
	}
}

// Blur removes focus from the live element, if any.
func (w *Widget) Blur() {
	if el, ok := w.Element(); ok {
		el.Blur()
	}
}

// Lifecycle hooks

// AddAfterInsertHook registers fn to run after each insertion.
func (w *Widget) AddAfterInsertHook(fn func(v *vdom.VNode)) {
	w.afterInsertHooks = append(w.afterInsertHooks, fn)
}

// AddAfterDestroyHook registers fn to run after each removal.
func (w *Widget) AddAfterDestroyHook(fn func()) {
	w.afterDestroyHooks = append(w.afterDestroyHooks, fn)
}

// AddBeforeDisposeHook registers fn to run once inside Dispose.
func (w *Widget) AddBeforeDisposeHook(fn func()) {
	w.beforeDisposeHooks = append(w.beforeDisposeHooks, fn)
}

// Disposed reports whether Dispose has run.
func (w *Widget) Disposed() bool { return w.disposed }

// Dispose ends the widget's life. If the widget is in the document the
// destroy cleanup and after-destroy callbacks run first; the before-dispose
// hooks run last. Later calls do nothing.
func (w *Widget) Dispose() {
	if w.disposed {
		return
	}
	if w.vnode != nil {
		w.destroyed()
	}
	w.disposed = true
	for _, h := range w.beforeDisposeHooks {
		h()
	}
}
