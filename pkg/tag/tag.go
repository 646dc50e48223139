// Package tag provides a generic HTML element widget with optional text or
// HTML content. A Tag is also a container: children render after the
// content.
package tag

import (
	"github.com/kview-dev/kview/pkg/core"
	"github.com/kview-dev/kview/pkg/engine"
	"github.com/kview-dev/kview/pkg/vdom"
)

// Tag renders an arbitrary element.
type Tag struct {
	core.SimplePanel

	content core.Field[string]
	rich    core.Field[bool]
}

// New creates a Tag rendering content as text.
func New(name, content string, opts ...core.WidgetOption) *Tag {
	t := &Tag{}
	t.InitPanel(t, name, opts...)
	t.content.OnChange(t.Refresh)
	t.rich.OnChange(t.Refresh)
	if content != "" {
		t.content.Set(content)
	}
	return t
}

// NewRich creates a Tag whose content is parsed as HTML.
func NewRich(name, html string, opts ...core.WidgetOption) *Tag {
	t := New(name, html, opts...)
	t.rich.Set(true)
	return t
}

// Content returns the content string.
func (t *Tag) Content() (string, bool) { return t.content.Get() }

// SetContent replaces the content.
func (t *Tag) SetContent(s string) { t.content.Set(s) }

// ClearContent removes the content.
func (t *Tag) ClearContent() { t.content.Clear() }

// Rich reports whether the content is rendered as HTML.
func (t *Tag) Rich() bool { return t.rich.Value() }

// SetRich switches between text and HTML content.
func (t *Tag) SetRich(rich bool) { t.rich.Set(rich) }

// Render renders the content followed by the children.
func (t *Tag) Render() *vdom.VNode {
	var children []*vdom.VNode
	if c := t.contentNode(); c != nil {
		children = append(children, c)
	}
	children = append(children, t.ChildrenVNodes()...)
	return t.RenderTag(t.Tag(), children...)
}

func (t *Tag) contentNode() *vdom.VNode {
	s, ok := t.content.Get()
	if !ok || s == "" {
		return nil
	}
	if !t.rich.Value() {
		return vdom.Text(s)
	}
	v, err := engine.Virtualize(s)
	if err != nil {
		return vdom.Text(s)
	}
	return v
}
