package panel

import (
	"github.com/kview-dev/kview/pkg/core"
	"github.com/kview-dev/kview/pkg/dom"
	"github.com/kview-dev/kview/pkg/tag"
	"github.com/kview-dev/kview/pkg/vdom"
)

// TabPanel pairs a navigation list with a StackPanel. Both share the
// active index; the active nav item carries the class "active".
type TabPanel struct {
	core.Widget

	nav     *tag.Tag
	content *StackPanel
	items   []*tag.Tag
}

// NewTabPanel creates an empty tab panel.
func NewTabPanel(opts ...core.WidgetOption) *TabPanel {
	p := &TabPanel{}
	p.InitWidget(p, "div", append([]core.WidgetOption{core.WithClassName("tabpanel")}, opts...)...)
	p.nav = tag.New("ul", "", core.WithClassName("nav nav-tabs"))
	p.nav.SetParent(p)
	p.content = NewStackPanel(false, core.WithClassName("tab-content"))
	p.content.SetParent(p)
	return p
}

// Nav returns the navigation list.
func (p *TabPanel) Nav() *tag.Tag { return p.nav }

// Content returns the stack holding the tab contents.
func (p *TabPanel) Content() *StackPanel { return p.content }

// AddTab appends a tab.
func (p *TabPanel) AddTab(title string, child core.Component) {
	p.AddTabAt(p.content.Len(), title, child)
}

// AddTabAt inserts a tab at position. The first tab added becomes active.
func (p *TabPanel) AddTabAt(position int, title string, child core.Component) {
	core.SingleRender(p, func() {
		if old := child.Parent(); old != nil {
			old.Remove(child)
		}
		if position < 0 {
			position = 0
		}
		if position > len(p.items) {
			position = len(p.items)
		}

		item := tag.New("li", "", core.WithClassName("nav-item"))
		link := tag.New("a", title, core.WithClassName("nav-link"), core.WithAttribute("href", "#"))
		item.Add(link)
		item.SetEventListener("click", func(e *dom.Event) {
			e.PreventDefault()
			if i := p.nav.IndexOf(item); i >= 0 {
				p.SetActiveIndex(i)
			}
		})

		p.items = append(p.items, nil)
		copy(p.items[position+1:], p.items[position:])
		p.items[position] = item
		p.nav.AddAt(position, item)
		p.content.AddAt(position, child)
		child.SetParent(p)

		if p.content.ActiveIndex() < 0 {
			p.content.SetActiveIndex(0)
		}
		p.syncActive()
	})
}

// TabTitle returns the title of the tab at index.
func (p *TabPanel) TabTitle(index int) (string, bool) {
	if index < 0 || index >= len(p.items) {
		return "", false
	}
	for _, c := range p.items[index].Children() {
		if link, ok := c.(*tag.Tag); ok {
			return link.Content()
		}
	}
	return "", false
}

// ActiveIndex returns the active tab, or -1.
func (p *TabPanel) ActiveIndex() int { return p.content.ActiveIndex() }

// SetActiveIndex activates the tab at i.
func (p *TabPanel) SetActiveIndex(i int) {
	core.SingleRender(p, func() {
		p.content.SetActiveIndex(i)
		p.syncActive()
	})
}

func (p *TabPanel) syncActive() {
	active := p.content.ActiveIndex()
	for i, item := range p.items {
		if i == active {
			item.AddCSSClass("active")
		} else {
			item.RemoveCSSClass("active")
		}
	}
}

// Add appends child as an untitled tab.
func (p *TabPanel) Add(child core.Component) { p.AddTab("", child) }

// AddAt inserts child as an untitled tab.
func (p *TabPanel) AddAt(position int, child core.Component) { p.AddTabAt(position, "", child) }

// AddAll appends children as untitled tabs.
func (p *TabPanel) AddAll(children ...core.Component) {
	core.SingleRender(p, func() {
		for _, c := range children {
			p.Add(c)
		}
	})
}

// Remove removes child's tab. Unknown children are ignored.
func (p *TabPanel) Remove(child core.Component) {
	if i := p.content.IndexOf(child); i >= 0 {
		p.RemoveAt(i)
	}
}

// RemoveAt removes the tab at index.
func (p *TabPanel) RemoveAt(index int) {
	if index < 0 || index >= len(p.items) {
		return
	}
	core.SingleRender(p, func() {
		item := p.items[index]
		p.items = append(p.items[:index:index], p.items[index+1:]...)
		p.nav.Remove(item)
		item.Dispose()
		p.content.RemoveAt(index)
		p.syncActive()
	})
}

// RemoveAll removes every tab.
func (p *TabPanel) RemoveAll() {
	core.SingleRender(p, func() {
		for _, item := range p.items {
			item.Dispose()
		}
		p.items = nil
		p.nav.RemoveAll()
		p.content.RemoveAll()
	})
}

// Children returns the tab contents in order.
func (p *TabPanel) Children() []core.Component { return p.content.Children() }

// Render renders the navigation list followed by the active content.
func (p *TabPanel) Render() *vdom.VNode {
	return p.RenderTag(p.Tag(), p.nav.RenderVNode(), p.content.RenderVNode())
}

// Dispose disposes the panel, its navigation and the tab contents.
func (p *TabPanel) Dispose() {
	if p.Disposed() {
		return
	}
	p.Widget.Dispose()
	p.nav.Dispose()
	p.content.Dispose()
}
