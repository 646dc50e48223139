package panel

import (
	"github.com/kview-dev/kview/pkg/core"
	"github.com/kview-dev/kview/pkg/vdom"
)

// StackPanel renders only its active child. The other children are not
// rendered at all.
type StackPanel struct {
	core.SimplePanel

	activeIndex  core.Field[int]
	activateLast bool
}

// NewStackPanel creates a stack panel. With activateLast set, every added
// child becomes the active one.
func NewStackPanel(activateLast bool, opts ...core.WidgetOption) *StackPanel {
	p := &StackPanel{activateLast: activateLast}
	p.InitPanel(p, "div", opts...)
	p.activeIndex.OnChange(p.Refresh)
	p.activeIndex.Set(-1)
	return p
}

// ActiveIndex returns the index of the rendered child, or -1.
func (p *StackPanel) ActiveIndex() int { return p.activeIndex.Value() }

// SetActiveIndex selects the rendered child. Out of range values render
// nothing.
func (p *StackPanel) SetActiveIndex(i int) { p.activeIndex.Set(i) }

// ActiveChild returns the rendered child.
func (p *StackPanel) ActiveChild() (core.Component, bool) {
	children := p.Children()
	i := p.ActiveIndex()
	if i < 0 || i >= len(children) {
		return nil, false
	}
	return children[i], true
}

// SetActiveChild selects child if it belongs to the panel.
func (p *StackPanel) SetActiveChild(child core.Component) {
	if i := p.IndexOf(child); i >= 0 {
		p.SetActiveIndex(i)
	}
}

// ActivateLast reports the activate-on-add policy.
func (p *StackPanel) ActivateLast() bool { return p.activateLast }

// SetActivateLast sets the activate-on-add policy.
func (p *StackPanel) SetActivateLast(v bool) { p.activateLast = v }

// AddAt inserts child and, with activate-last, activates it.
func (p *StackPanel) AddAt(position int, child core.Component) {
	core.SingleRender(p, func() {
		p.SimplePanel.AddAt(position, child)
		if p.activateLast {
			p.SetActiveIndex(p.IndexOf(child))
		} else if i := p.IndexOf(child); i <= p.ActiveIndex() {
			p.SetActiveIndex(p.ActiveIndex() + 1)
		}
	})
}

// RemoveAt removes the child at index, keeping the active child selected
// when it survives.
func (p *StackPanel) RemoveAt(index int) {
	if index < 0 || index >= p.Len() {
		return
	}
	core.SingleRender(p, func() {
		active := p.ActiveIndex()
		p.SimplePanel.RemoveAt(index)
		switch {
		case index < active:
			p.SetActiveIndex(active - 1)
		case active >= p.Len():
			p.SetActiveIndex(p.Len() - 1)
		}
	})
}

// RemoveAll removes every child and clears the selection.
func (p *StackPanel) RemoveAll() {
	core.SingleRender(p, func() {
		p.SimplePanel.RemoveAll()
		p.SetActiveIndex(-1)
	})
}

// Render renders the active child only.
func (p *StackPanel) Render() *vdom.VNode {
	if c, ok := p.ActiveChild(); ok {
		return p.RenderTag(p.Tag(), c.RenderVNode())
	}
	return p.RenderTag(p.Tag())
}
