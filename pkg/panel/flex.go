package panel

import (
	"strconv"

	"github.com/kview-dev/kview/pkg/core"
	"github.com/kview-dev/kview/pkg/css"
	"github.com/kview-dev/kview/pkg/vdom"
)

// FlexPanel lays out children with CSS flexbox.
type FlexPanel struct {
	core.SimplePanel

	direction    core.Field[css.FlexDirection]
	wrap         core.Field[css.FlexWrap]
	justify      core.Field[css.JustifyContent]
	alignItems   core.Field[css.AlignItems]
	alignContent core.Field[css.AlignContent]
	spacing      core.Field[int]

	items itemStore
}

// NewFlexPanel creates a flex container with the given direction.
func NewFlexPanel(direction css.FlexDirection, opts ...core.WidgetOption) *FlexPanel {
	p := &FlexPanel{items: make(itemStore)}
	p.InitPanel(p, "div", opts...)
	for _, f := range []interface{ OnChange(func()) }{
		&p.direction, &p.wrap, &p.justify, &p.alignItems, &p.alignContent, &p.spacing,
	} {
		f.OnChange(p.Refresh)
	}
	p.direction.Set(direction)
	return p
}

// NewHPanel creates a row flex container.
func NewHPanel(opts ...core.WidgetOption) *FlexPanel { return NewFlexPanel(css.DirRow, opts...) }

// NewVPanel creates a column flex container.
func NewVPanel(opts ...core.WidgetOption) *FlexPanel { return NewFlexPanel(css.DirColumn, opts...) }

func (p *FlexPanel) Direction() (css.FlexDirection, bool)   { return p.direction.Get() }
func (p *FlexPanel) SetDirection(d css.FlexDirection)       { p.direction.Set(d) }
func (p *FlexPanel) Wrap() (css.FlexWrap, bool)             { return p.wrap.Get() }
func (p *FlexPanel) SetWrap(w css.FlexWrap)                 { p.wrap.Set(w) }
func (p *FlexPanel) Justify() (css.JustifyContent, bool)    { return p.justify.Get() }
func (p *FlexPanel) SetJustify(j css.JustifyContent)        { p.justify.Set(j) }
func (p *FlexPanel) AlignItems() (css.AlignItems, bool)     { return p.alignItems.Get() }
func (p *FlexPanel) SetAlignItems(a css.AlignItems)         { p.alignItems.Set(a) }
func (p *FlexPanel) AlignContent() (css.AlignContent, bool) { return p.alignContent.Get() }
func (p *FlexPanel) SetAlignContent(a css.AlignContent)     { p.alignContent.Set(a) }

// Spacing returns the gap in pixels inserted between wrappers.
func (p *FlexPanel) Spacing() (int, bool) { return p.spacing.Get() }

// SetSpacing sets the gap in pixels inserted between wrappers.
func (p *FlexPanel) SetSpacing(px int) { p.spacing.Set(px) }

// ContributeStyle emits the flex container declarations.
func (p *FlexPanel) ContributeStyle(add func(name, value string)) {
	add("display", string(css.DisplayFlex))
	contribute(add, "flex-direction", p.direction, func(v css.FlexDirection) string { return string(v) })
	contribute(add, "flex-wrap", p.wrap, func(v css.FlexWrap) string { return string(v) })
	contribute(add, "justify-content", p.justify, func(v css.JustifyContent) string { return string(v) })
	contribute(add, "align-items", p.alignItems, func(v css.AlignItems) string { return string(v) })
	contribute(add, "align-content", p.alignContent, func(v css.AlignContent) string { return string(v) })
}

// AddItem appends child with flex placement options.
func (p *FlexPanel) AddItem(child core.Component, opts ...ItemOption) {
	p.AddItemAt(p.Len(), child, opts...)
}

// AddItemAt inserts child at position with flex placement options.
func (p *FlexPanel) AddItemAt(position int, child core.Component, opts ...ItemOption) {
	core.SingleRender(p, func() {
		p.AddAt(position, child)
		p.items[child] = newItem(opts)
	})
}

// RemoveAt removes the child at index and its placement.
func (p *FlexPanel) RemoveAt(index int) {
	children := p.Children()
	if index >= 0 && index < len(children) {
		delete(p.items, children[index])
	}
	p.SimplePanel.RemoveAt(index)
}

// RemoveAll removes every child and its placement.
func (p *FlexPanel) RemoveAll() {
	p.items = make(itemStore)
	p.SimplePanel.RemoveAll()
}

// Render wraps each child in a flex item wrapper.
func (p *FlexPanel) Render() *vdom.VNode {
	children := p.Children()
	wrappers := make([]*vdom.VNode, 0, len(children))
	for i, c := range children {
		var extra []vdom.StyleDecl
		if gap, ok := p.spacing.Get(); ok && gap > 0 && i < len(children)-1 {
			extra = append(extra, vdom.StyleDecl{Name: p.spacingProperty(), Value: strconv.Itoa(gap) + "px"})
		}
		wrappers = append(wrappers, p.items.get(c).wrap(c, extra...))
	}
	return p.RenderTag(p.Tag(), wrappers...)
}

func (p *FlexPanel) spacingProperty() string {
	switch p.direction.Value() {
	case css.DirColumn:
		return "margin-bottom"
	case css.DirColumnReverse:
		return "margin-top"
	case css.DirRowReverse:
		return "margin-left"
	default:
		return "margin-right"
	}
}
