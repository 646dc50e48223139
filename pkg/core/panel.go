package core

import (
	"github.com/kview-dev/kview/internal/errors"
	"github.com/kview-dev/kview/pkg/vdom"
)

// SimplePanel is the basic container: its children render in order inside
// one element.
type SimplePanel struct {
	Widget

	container Container
	children  []Component
}

// NewSimplePanel creates a <div> panel.
func NewSimplePanel(opts ...WidgetOption) *SimplePanel {
	p := &SimplePanel{}
	p.InitPanel(p, "div", opts...)
	return p
}

// InitPanel prepares an embedded SimplePanel. self must be the embedding
// value; children get it as their parent.
func (p *SimplePanel) InitPanel(self Container, tag string, opts ...WidgetOption) {
	p.container = self
	p.InitWidget(self, tag, opts...)
}

// Render renders the panel element with its children.
func (p *SimplePanel) Render() *vdom.VNode {
	return p.RenderTag(p.Tag(), p.ChildrenVNodes()...)
}

// ChildrenVNodes renders every child in order.
func (p *SimplePanel) ChildrenVNodes() []*vdom.VNode {
	out := make([]*vdom.VNode, 0, len(p.children))
	for _, c := range p.children {
		out = append(out, c.RenderVNode())
	}
	return out
}

// Children returns a copy of the child list.
func (p *SimplePanel) Children() []Component {
	out := make([]Component, len(p.children))
	copy(out, p.children)
	return out
}

// Len returns the number of children.
func (p *SimplePanel) Len() int { return len(p.children) }

// IndexOf returns the position of child, or -1.
func (p *SimplePanel) IndexOf(child Component) int {
	for i, c := range p.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Add appends child, detaching it from its previous container.
func (p *SimplePanel) Add(child Component) {
	p.container.AddAt(len(p.children), child)
}

// AddAt inserts child at position, clamped to the child list bounds.
func (p *SimplePanel) AddAt(position int, child Component) {
	SingleRender(p.container, func() {
		if old := child.Parent(); old != nil {
			old.Remove(child)
		}
		if position < 0 {
			position = 0
		}
		if position > len(p.children) {
			position = len(p.children)
		}
		p.children = append(p.children, nil)
		copy(p.children[position+1:], p.children[position:])
		p.children[position] = child
		child.SetParent(p.container)
		p.Refresh()
	})
}

// AddAll appends children inside one single-render scope.
func (p *SimplePanel) AddAll(children ...Component) {
	SingleRender(p.container, func() {
		for _, c := range children {
			p.container.Add(c)
		}
	})
}

// Remove removes child. Unknown children are ignored.
func (p *SimplePanel) Remove(child Component) {
	if i := p.IndexOf(child); i >= 0 {
		p.container.RemoveAt(i)
	}
}

// RemoveChecked removes child or returns E102 when it is not a child.
func (p *SimplePanel) RemoveChecked(child Component) error {
	i := p.IndexOf(child)
	if i < 0 {
		return errors.New("E102").WithDetailf("component %s is not a child of %s", child.Key(), p.Key())
	}
	p.container.RemoveAt(i)
	return nil
}

// RemoveAt removes the child at index. Out of range indexes are ignored.
func (p *SimplePanel) RemoveAt(index int) {
	if index < 0 || index >= len(p.children) {
		return
	}
	child := p.children[index]
	p.children = append(p.children[:index:index], p.children[index+1:]...)
	child.SetParent(nil)
	p.Refresh()
}

// RemoveAll removes every child inside one single-render scope.
func (p *SimplePanel) RemoveAll() {
	SingleRender(p.container, func() {
		for _, c := range p.children {
			c.SetParent(nil)
		}
		p.children = nil
		p.Refresh()
	})
}

// DisposeAll removes and disposes every child.
func (p *SimplePanel) DisposeAll() {
	SingleRender(p.container, func() {
		children := p.Children()
		p.container.RemoveAll()
		for _, c := range children {
			c.Dispose()
		}
	})
}

// Dispose disposes the panel and then its children.
func (p *SimplePanel) Dispose() {
	if p.Disposed() {
		return
	}
	p.Widget.Dispose()
	for _, c := range p.children {
		c.Dispose()
	}
}
