package panel

import (
	"strconv"
	"strings"

	"github.com/kview-dev/kview/pkg/core"
	"github.com/kview-dev/kview/pkg/css"
	"github.com/kview-dev/kview/pkg/vdom"
)

// GridPanel lays out children with CSS grid.
type GridPanel struct {
	core.SimplePanel

	autoColumns     core.Field[string]
	autoRows        core.Field[string]
	autoFlow        core.Field[css.GridAutoFlow]
	templateColumns core.Field[string]
	templateRows    core.Field[string]
	templateAreas   core.Field[string]
	columnGap       core.Field[int]
	rowGap          core.Field[int]
	justifyItems    core.Field[css.JustifyItems]
	alignItems      core.Field[css.AlignItems]
	justifyContent  core.Field[css.JustifyContent]
	alignContent    core.Field[css.AlignContent]

	items itemStore
}

// NewGridPanel creates a grid container.
func NewGridPanel(opts ...core.WidgetOption) *GridPanel {
	p := &GridPanel{items: make(itemStore)}
	p.InitPanel(p, "div", opts...)
	for _, f := range []interface{ OnChange(func()) }{
		&p.autoColumns, &p.autoRows, &p.autoFlow, &p.templateColumns, &p.templateRows,
		&p.templateAreas, &p.columnGap, &p.rowGap, &p.justifyItems, &p.alignItems,
		&p.justifyContent, &p.alignContent,
	} {
		f.OnChange(p.Refresh)
	}
	return p
}

func (p *GridPanel) SetAutoColumns(v string)                { p.autoColumns.Set(v) }
func (p *GridPanel) SetAutoRows(v string)                   { p.autoRows.Set(v) }
func (p *GridPanel) SetAutoFlow(v css.GridAutoFlow)         { p.autoFlow.Set(v) }
func (p *GridPanel) SetTemplateColumns(v string)            { p.templateColumns.Set(v) }
func (p *GridPanel) SetTemplateRows(v string)               { p.templateRows.Set(v) }
func (p *GridPanel) SetColumnGap(px int)                    { p.columnGap.Set(px) }
func (p *GridPanel) SetRowGap(px int)                       { p.rowGap.Set(px) }
func (p *GridPanel) SetJustifyItems(v css.JustifyItems)     { p.justifyItems.Set(v) }
func (p *GridPanel) SetAlignItems(v css.AlignItems)         { p.alignItems.Set(v) }
func (p *GridPanel) SetJustifyContent(v css.JustifyContent) { p.justifyContent.Set(v) }
func (p *GridPanel) SetAlignContent(v css.AlignContent)     { p.alignContent.Set(v) }

// SetTemplateAreas sets grid-template-areas, one string per row.
func (p *GridPanel) SetTemplateAreas(rows ...string) {
	quoted := make([]string, len(rows))
	for i, r := range rows {
		quoted[i] = strconv.Quote(r)
	}
	p.templateAreas.Set(strings.Join(quoted, " "))
}

// ContributeStyle emits the grid container declarations.
func (p *GridPanel) ContributeStyle(add func(name, value string)) {
	str := func(v string) string { return v }
	px := func(v int) string { return strconv.Itoa(v) + "px" }
	add("display", string(css.DisplayGrid))
	contribute(add, "grid-auto-columns", p.autoColumns, str)
	contribute(add, "grid-auto-rows", p.autoRows, str)
	contribute(add, "grid-auto-flow", p.autoFlow, func(v css.GridAutoFlow) string { return string(v) })
	contribute(add, "grid-template-columns", p.templateColumns, str)
	contribute(add, "grid-template-rows", p.templateRows, str)
	contribute(add, "grid-template-areas", p.templateAreas, str)
	contribute(add, "column-gap", p.columnGap, px)
	contribute(add, "row-gap", p.rowGap, px)
	contribute(add, "justify-items", p.justifyItems, func(v css.JustifyItems) string { return string(v) })
	contribute(add, "align-items", p.alignItems, func(v css.AlignItems) string { return string(v) })
	contribute(add, "justify-content", p.justifyContent, func(v css.JustifyContent) string { return string(v) })
	contribute(add, "align-content", p.alignContent, func(v css.AlignContent) string { return string(v) })
}

// AddItem appends child with grid placement options.
func (p *GridPanel) AddItem(child core.Component, opts ...ItemOption) {
	core.SingleRender(p, func() {
		p.Add(child)
		p.items[child] = newItem(opts)
	})
}

// RemoveAt removes the child at index and its placement.
func (p *GridPanel) RemoveAt(index int) {
	children := p.Children()
	if index >= 0 && index < len(children) {
		delete(p.items, children[index])
	}
	p.SimplePanel.RemoveAt(index)
}

// RemoveAll removes every child and its placement.
func (p *GridPanel) RemoveAll() {
	p.items = make(itemStore)
	p.SimplePanel.RemoveAll()
}

// Render wraps each child in a grid item wrapper.
func (p *GridPanel) Render() *vdom.VNode {
	children := p.Children()
	wrappers := make([]*vdom.VNode, 0, len(children))
	for _, c := range children {
		wrappers = append(wrappers, p.items.get(c).wrap(c))
	}
	return p.RenderTag(p.Tag(), wrappers...)
}
