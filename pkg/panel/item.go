package panel

import (
	"strconv"
	"strings"

	"github.com/kview-dev/kview/pkg/core"
	"github.com/kview-dev/kview/pkg/css"
	"github.com/kview-dev/kview/pkg/vdom"
)

// item holds the placement of one child inside its wrapper.
type item struct {
	order, grow, shrink intField
	basis               core.Field[css.Size]
	alignSelf           core.Field[css.AlignSelf]

	columnStart, columnEnd intField
	rowStart, rowEnd       intField
	area                   core.Field[string]
	justifySelf            core.Field[css.JustifyItems]

	className string
}

type intField = core.Field[int]

// ItemOption sets the placement of a child added to a FlexPanel or
// GridPanel.
type ItemOption func(*item)

// Order sets the flex order.
func Order(n int) ItemOption { return func(it *item) { it.order.Set(n) } }

// Grow sets the flex grow factor.
func Grow(n int) ItemOption { return func(it *item) { it.grow.Set(n) } }

// Shrink sets the flex shrink factor.
func Shrink(n int) ItemOption { return func(it *item) { it.shrink.Set(n) } }

// Basis sets the flex basis.
func Basis(s css.Size) ItemOption { return func(it *item) { it.basis.Set(s) } }

// AlignSelf overrides the container's cross-axis alignment.
func AlignSelf(a css.AlignSelf) ItemOption { return func(it *item) { it.alignSelf.Set(a) } }

// Column places a grid child between two column lines.
func Column(start, end int) ItemOption {
	return func(it *item) {
		it.columnStart.Set(start)
		it.columnEnd.Set(end)
	}
}

// Row places a grid child between two row lines.
func Row(start, end int) ItemOption {
	return func(it *item) {
		it.rowStart.Set(start)
		it.rowEnd.Set(end)
	}
}

// Area places a grid child in a named template area.
func Area(name string) ItemOption { return func(it *item) { it.area.Set(name) } }

// JustifySelf aligns a grid child on the inline axis.
func JustifySelf(j css.JustifyItems) ItemOption {
	return func(it *item) { it.justifySelf.Set(j) }
}

// ItemClassName sets classes on the wrapper element.
func ItemClassName(name string) ItemOption { return func(it *item) { it.className = name } }

func newItem(opts []ItemOption) *item {
	it := &item{}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

func (it *item) style(extra ...vdom.StyleDecl) []vdom.StyleDecl {
	var out []vdom.StyleDecl
	addInt := func(name string, f intField) {
		if v, ok := f.Get(); ok {
			out = append(out, vdom.StyleDecl{Name: name, Value: strconv.Itoa(v)})
		}
	}
	addInt("order", it.order)
	addInt("flex-grow", it.grow)
	addInt("flex-shrink", it.shrink)
	if v, ok := it.basis.Get(); ok {
		out = append(out, vdom.StyleDecl{Name: "flex-basis", Value: v.String()})
	}
	if v, ok := it.alignSelf.Get(); ok {
		out = append(out, vdom.StyleDecl{Name: "align-self", Value: string(v)})
	}
	addInt("grid-column-start", it.columnStart)
	addInt("grid-column-end", it.columnEnd)
	addInt("grid-row-start", it.rowStart)
	addInt("grid-row-end", it.rowEnd)
	if v, ok := it.area.Get(); ok {
		out = append(out, vdom.StyleDecl{Name: "grid-area", Value: v})
	}
	if v, ok := it.justifySelf.Get(); ok {
		out = append(out, vdom.StyleDecl{Name: "justify-self", Value: string(v)})
	}
	return append(out, extra...)
}

// wrap renders child inside a wrapper element keyed after the child.
func (it *item) wrap(child core.Component, extra ...vdom.StyleDecl) *vdom.VNode {
	data := &vdom.Data{Style: it.style(extra...)}
	if names := strings.Fields(it.className); len(names) > 0 {
		data.Class = make(map[string]bool, len(names))
		for _, n := range names {
			data.Class[n] = true
		}
	}
	return vdom.H("div", vdom.Key(child.Key()+"_w"), data, child.RenderVNode())
}

// itemStore maps children to their placement.
type itemStore map[core.Component]*item

func (s itemStore) get(c core.Component) *item {
	if it, ok := s[c]; ok {
		return it
	}
	return &item{}
}

// contribute emits name: value when f is set.
func contribute[T comparable](add func(name, value string), name string, f core.Field[T], format func(T) string) {
	if v, ok := f.Get(); ok {
		add(name, format(v))
	}
}
