package panel

import (
	"sort"
	"strconv"

	"github.com/kview-dev/kview/pkg/core"
	"github.com/kview-dev/kview/pkg/vdom"
)

// GridSize is the breakpoint used in column class names.
type GridSize string

const (
	SizeXS GridSize = "xs"
	SizeSM GridSize = "sm"
	SizeMD GridSize = "md"
	SizeLG GridSize = "lg"
	SizeXL GridSize = "xl"
)

// MaxColumns is the column budget of one row.
const MaxColumns = 12

type cell struct {
	child        core.Component
	row, col     int
	size, offset int
}

// ResponsiveGridPanel places children at (row, column) coordinates in a
// twelve column row layout. In auto mode the budget is divided evenly
// between the populated columns and empty cells render as placeholders;
// in manual mode each cell uses its own size and offset.
type ResponsiveGridPanel struct {
	core.Widget

	gridSize core.Field[GridSize]
	auto     core.Field[bool]
	cells    []*cell
	rows     int
	cols     int
}

// NewResponsiveGridPanel creates an auto-mode grid with the md breakpoint.
func NewResponsiveGridPanel(opts ...core.WidgetOption) *ResponsiveGridPanel {
	p := &ResponsiveGridPanel{}
	p.InitWidget(p, "div", append([]core.WidgetOption{core.WithClassName("container-fluid")}, opts...)...)
	p.gridSize.OnChange(p.Refresh)
	p.auto.OnChange(p.Refresh)
	p.gridSize.Set(SizeMD)
	p.auto.Set(true)
	return p
}

// GridSize returns the breakpoint.
func (p *ResponsiveGridPanel) GridSize() GridSize { return p.gridSize.Value() }

// SetGridSize sets the breakpoint.
func (p *ResponsiveGridPanel) SetGridSize(s GridSize) { p.gridSize.Set(s) }

// Auto reports whether column sizes are computed.
func (p *ResponsiveGridPanel) Auto() bool { return p.auto.Value() }

// SetAuto switches between auto and manual mode.
func (p *ResponsiveGridPanel) SetAuto(auto bool) { p.auto.Set(auto) }

// Rows returns the number of rows.
func (p *ResponsiveGridPanel) Rows() int { return p.rows }

// Cols returns the number of columns.
func (p *ResponsiveGridPanel) Cols() int { return p.cols }

// AddCell places child at (row, col). size and offset are column counts
// used in manual mode; zero means unset. A child already at that cell is
// replaced.
func (p *ResponsiveGridPanel) AddCell(child core.Component, row, col, size, offset int) {
	if row < 0 || col < 0 {
		return
	}
	core.SingleRender(p, func() {
		if old := child.Parent(); old != nil {
			old.Remove(child)
		}
		if prev := p.at(row, col); prev != nil {
			p.Remove(prev.child)
		}
		p.cells = append(p.cells, &cell{child: child, row: row, col: col, size: size, offset: offset})
		p.sortCells()
		child.SetParent(p)
		p.resize()
		p.Refresh()
	})
}

// At returns the child at (row, col).
func (p *ResponsiveGridPanel) At(row, col int) (core.Component, bool) {
	if c := p.at(row, col); c != nil {
		return c.child, true
	}
	return nil, false
}

func (p *ResponsiveGridPanel) at(row, col int) *cell {
	for _, c := range p.cells {
		if c.row == row && c.col == col {
			return c
		}
	}
	return nil
}

func (p *ResponsiveGridPanel) sortCells() {
	sort.SliceStable(p.cells, func(i, j int) bool {
		if p.cells[i].row != p.cells[j].row {
			return p.cells[i].row < p.cells[j].row
		}
		return p.cells[i].col < p.cells[j].col
	})
}

func (p *ResponsiveGridPanel) resize() {
	p.rows, p.cols = 0, 0
	for _, c := range p.cells {
		p.rows = max(p.rows, c.row+1)
		p.cols = max(p.cols, c.col+1)
	}
}

// Add places child in the first row, after the last column.
func (p *ResponsiveGridPanel) Add(child core.Component) {
	col := 0
	for _, c := range p.cells {
		if c.row == 0 && c.col >= col {
			col = c.col + 1
		}
	}
	p.AddCell(child, 0, col, 0, 0)
}

// AddAt places child in the first row at column position.
func (p *ResponsiveGridPanel) AddAt(position int, child core.Component) {
	p.AddCell(child, 0, max(position, 0), 0, 0)
}

// AddAll adds children one after another in the first row.
func (p *ResponsiveGridPanel) AddAll(children ...core.Component) {
	core.SingleRender(p, func() {
		for _, c := range children {
			p.Add(c)
		}
	})
}

// Remove removes child. Unknown children are ignored.
func (p *ResponsiveGridPanel) Remove(child core.Component) {
	for i, c := range p.cells {
		if c.child == child {
			p.RemoveAt(i)
			return
		}
	}
}

// RemoveAt removes the index-th child in row-major order.
func (p *ResponsiveGridPanel) RemoveAt(index int) {
	if index < 0 || index >= len(p.cells) {
		return
	}
	c := p.cells[index]
	p.cells = append(p.cells[:index:index], p.cells[index+1:]...)
	c.child.SetParent(nil)
	p.resize()
	p.Refresh()
}

// RemoveAll removes every child.
func (p *ResponsiveGridPanel) RemoveAll() {
	core.SingleRender(p, func() {
		for _, c := range p.cells {
			c.child.SetParent(nil)
		}
		p.cells = nil
		p.resize()
		p.Refresh()
	})
}

// Children returns the children in row-major order.
func (p *ResponsiveGridPanel) Children() []core.Component {
	out := make([]core.Component, len(p.cells))
	for i, c := range p.cells {
		out[i] = c.child
	}
	return out
}

func (p *ResponsiveGridPanel) colClass(n int) string {
	return "col-" + string(p.GridSize()) + "-" + strconv.Itoa(n)
}

// Render renders one "row" element per row.
func (p *ResponsiveGridPanel) Render() *vdom.VNode {
	rows := make([]*vdom.VNode, 0, p.rows)
	auto := p.Auto()
	autoSize := 0
	if p.cols > 0 {
		autoSize = max(MaxColumns/p.cols, 1)
	}
	for r := 0; r < p.rows; r++ {
		var cols []*vdom.VNode
		for c := 0; c < p.cols; c++ {
			ce := p.at(r, c)
			switch {
			case ce == nil && auto:
				cols = append(cols, vdom.Div(
					vdom.Key(p.Key()+"_p_"+strconv.Itoa(r)+"_"+strconv.Itoa(c)),
					vdom.Class(p.colClass(autoSize)),
				))
			case ce == nil:
			default:
				cols = append(cols, p.renderCell(ce, auto, autoSize))
			}
		}
		rows = append(rows, vdom.Div(vdom.Key(p.Key()+"_r_"+strconv.Itoa(r)), vdom.Class("row"), cols))
	}
	return p.RenderTag(p.Tag(), rows...)
}

func (p *ResponsiveGridPanel) renderCell(ce *cell, auto bool, autoSize int) *vdom.VNode {
	var classes []string
	switch {
	case auto:
		classes = append(classes, p.colClass(autoSize))
	case ce.size > 0:
		classes = append(classes, p.colClass(ce.size))
	default:
		classes = append(classes, "col")
	}
	if !auto && ce.offset > 0 {
		classes = append(classes, "offset-"+string(p.GridSize())+"-"+strconv.Itoa(ce.offset))
	}
	return vdom.Div(vdom.Key(ce.child.Key()+"_w"), vdom.Class(classes...), ce.child.RenderVNode())
}

// Dispose disposes the grid and its children.
func (p *ResponsiveGridPanel) Dispose() {
	if p.Disposed() {
		return
	}
	p.Widget.Dispose()
	for _, c := range p.cells {
		c.child.Dispose()
	}
}
