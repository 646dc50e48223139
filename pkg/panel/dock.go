package panel

import (
	"github.com/kview-dev/kview/pkg/core"
	"github.com/kview-dev/kview/pkg/css"
	"github.com/kview-dev/kview/pkg/vdom"
)

// Side is a DockPanel slot.
type Side int

const (
	Up Side = iota
	Left
	Center
	Right
	Down
)

var sideNames = [...]string{"up", "left", "center", "right", "down"}

func (s Side) String() string {
	if s < Up || s > Down {
		return "unknown"
	}
	return sideNames[s]
}

// DockPanel has five fixed slots. Up, the middle row and Down stack in a
// column; Left, Center and Right sit in the middle row. Widgets in the
// slots report the dock as their parent.
type DockPanel struct {
	core.Widget

	main   *FlexPanel
	middle *FlexPanel
	slots  [5]core.Component
}

// NewDockPanel creates an empty dock.
func NewDockPanel(opts ...core.WidgetOption) *DockPanel {
	p := &DockPanel{}
	p.InitWidget(p, "div", append([]core.WidgetOption{core.WithClassName("dockpanel")}, opts...)...)
	p.main = NewVPanel()
	p.main.SetParent(p)
	p.middle = NewHPanel()
	p.main.AddItem(p.middle, Order(2), Grow(1))
	p.middle.SetParent(p)
	return p
}

// Slot returns the widget docked at side.
func (p *DockPanel) Slot(side Side) (core.Component, bool) {
	if side < Up || side > Down || p.slots[side] == nil {
		return nil, false
	}
	return p.slots[side], true
}

// AddSide docks child at side. A widget already there is removed and
// disposed.
func (p *DockPanel) AddSide(child core.Component, side Side) {
	if side < Up || side > Down {
		return
	}
	core.SingleRender(p, func() {
		if old := child.Parent(); old != nil {
			old.Remove(child)
		}
		if prev := p.slots[side]; prev != nil {
			p.removeSide(side)
			prev.Dispose()
		}
		p.slots[side] = child
		switch side {
		case Up:
			p.main.AddItem(child, Order(1))
		case Down:
			p.main.AddItem(child, Order(3))
		case Left:
			p.middle.AddItem(child, Order(1))
		case Center:
			p.middle.AddItem(child, Order(2), Grow(1))
		case Right:
			p.middle.AddItem(child, Order(3))
		}
		child.SetParent(p)
		p.Refresh()
	})
}

func (p *DockPanel) removeSide(side Side) {
	child := p.slots[side]
	p.slots[side] = nil
	if side == Up || side == Down {
		p.main.RemoveAt(p.main.IndexOf(child))
	} else {
		p.middle.RemoveAt(p.middle.IndexOf(child))
	}
	child.SetParent(nil)
}

// Add docks child at the center.
func (p *DockPanel) Add(child core.Component) { p.AddSide(child, Center) }

// AddAt docks child at Side(position).
func (p *DockPanel) AddAt(position int, child core.Component) { p.AddSide(child, Side(position)) }

// AddAll docks children in order at the free slots, center first.
func (p *DockPanel) AddAll(children ...core.Component) {
	order := []Side{Center, Left, Right, Up, Down}
	core.SingleRender(p, func() {
		for _, c := range children {
			for _, s := range order {
				if p.slots[s] == nil {
					p.AddSide(c, s)
					break
				}
			}
		}
	})
}

// Remove undocks child. Unknown children are ignored.
func (p *DockPanel) Remove(child core.Component) {
	for s, c := range p.slots {
		if c == child {
			core.SingleRender(p, func() { p.removeSide(Side(s)) })
			return
		}
	}
}

// RemoveSide undocks the widget at side.
func (p *DockPanel) RemoveSide(side Side) {
	if c, ok := p.Slot(side); ok {
		p.Remove(c)
	}
}

// RemoveAt undocks the index-th docked widget in Children order.
func (p *DockPanel) RemoveAt(index int) {
	children := p.Children()
	if index < 0 || index >= len(children) {
		return
	}
	p.Remove(children[index])
}

// RemoveAll undocks every widget.
func (p *DockPanel) RemoveAll() {
	core.SingleRender(p, func() {
		for s, c := range p.slots {
			if c != nil {
				p.removeSide(Side(s))
			}
		}
	})
}

// Children returns the docked widgets in slot order: up, left, center,
// right, down.
func (p *DockPanel) Children() []core.Component {
	var out []core.Component
	for _, c := range p.slots {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// ContributeStyle lays the dock out as a column.
func (p *DockPanel) ContributeStyle(add func(name, value string)) {
	add("display", string(css.DisplayFlex))
	add("flex-direction", string(css.DirColumn))
}

// Render renders the outer column.
func (p *DockPanel) Render() *vdom.VNode {
	return p.RenderTag(p.Tag(), p.main.RenderVNode())
}

// Dispose disposes the dock and every docked widget.
func (p *DockPanel) Dispose() {
	if p.Disposed() {
		return
	}
	p.Widget.Dispose()
	p.main.Dispose()
}
