// Package split resizes two sibling elements by dragging a gutter element
// placed between them.
//
// All direct manipulation of live elements for split layouts happens here;
// callers work with the typed Handle returned by Library.Split.
package split

import (
	"math"
	"strconv"

	"github.com/kview-dev/kview/pkg/dom"
)

// Direction is the axis along which the pair is split.
type Direction int

const (
	// Horizontal places the pair side by side and resizes widths.
	Horizontal Direction = iota
	// Vertical stacks the pair and resizes heights.
	Vertical
)

func (d Direction) dimension() string {
	if d == Vertical {
		return "height"
	}
	return "width"
}

// Options configure a split.
type Options struct {
	Direction Direction
	// Sizes are the initial percentages of the first and second element.
	// Defaults to an even split.
	Sizes []float64
	// MinSize is the minimum size of each element in pixels.
	MinSize float64
	// GutterSize is the size of the gutter in pixels. Defaults to 10.
	GutterSize float64
	OnDrag     func(sizes []float64)
	OnDragEnd  func(sizes []float64)
}

// Handle controls a live split.
type Handle interface {
	Sizes() []float64
	SetSizes(sizes []float64)
	Destroy()
}

// Library creates splits.
type Library interface {
	Split(first, second, gutter *dom.Node, opts Options) Handle
}

// Splitter is the default Library.
type Splitter struct{}

// New returns the default split library.
func New() *Splitter { return &Splitter{} }

// Split wires gutter to resize first and second and applies the initial
// sizes.
func (*Splitter) Split(first, second, gutter *dom.Node, opts Options) Handle {
	if opts.GutterSize <= 0 {
		opts.GutterSize = 10
	}
	h := &handle{first: first, second: second, gutter: gutter, opts: opts}
	h.SetSizes(opts.Sizes)

	h.ids = append(h.ids, bound{gutter, gutter.AddEventListener("mousedown", h.onMouseDown)})
	if parent := gutter.ParentNode(); parent != nil {
		h.ids = append(h.ids,
			bound{parent, parent.AddEventListener("mousemove", h.onMouseMove)},
			bound{parent, parent.AddEventListener("mouseup", h.onMouseUp)},
		)
	}
	return h
}

type bound struct {
	node *dom.Node
	id   dom.ListenerID
}

type handle struct {
	first, second, gutter *dom.Node
	opts                  Options
	sizes                 []float64
	ids                   []bound
	dragging              bool
	destroyed             bool
}

func (h *handle) Sizes() []float64 {
	return []float64{h.sizes[0], h.sizes[1]}
}

// SetSizes applies percentages to the pair. Anything other than two
// values resets to an even split.
func (h *handle) SetSizes(sizes []float64) {
	if len(sizes) != 2 {
		sizes = []float64{50, 50}
	}
	h.sizes = []float64{sizes[0], sizes[1]}
	if h.destroyed {
		return
	}
	dim := h.opts.Direction.dimension()
	half := h.opts.GutterSize / 2
	h.first.SetStyle(dim, calc(h.sizes[0], half))
	h.second.SetStyle(dim, calc(h.sizes[1], half))
	h.gutter.SetStyle(dim, formatFloat(h.opts.GutterSize)+"px")
}

func (h *handle) Destroy() {
	if h.destroyed {
		return
	}
	h.destroyed = true
	for _, b := range h.ids {
		b.node.RemoveEventListener(b.id)
	}
	h.ids = nil
}

func (h *handle) onMouseDown(e *dom.Event) {
	e.PreventDefault()
	h.dragging = true
}

func (h *handle) onMouseMove(e *dom.Event) {
	if !h.dragging {
		return
	}
	h.drag(e)
	if h.opts.OnDrag != nil {
		h.opts.OnDrag(h.Sizes())
	}
}

func (h *handle) onMouseUp(e *dom.Event) {
	if !h.dragging {
		return
	}
	h.dragging = false
	if h.opts.OnDragEnd != nil {
		h.opts.OnDragEnd(h.Sizes())
	}
}

// drag recomputes sizes from the pointer position relative to the pair.
func (h *handle) drag(e *dom.Event) {
	a, b := h.first.BoundingClientRect(), h.second.BoundingClientRect()
	var start, total, pos float64
	if h.opts.Direction == Vertical {
		start, total, pos = a.Y, a.Height+b.Height, e.ClientY
	} else {
		start, total, pos = a.X, a.Width+b.Width, e.ClientX
	}
	total += h.opts.GutterSize
	if total <= h.opts.GutterSize {
		return
	}

	offset := pos - start
	lo := h.opts.MinSize + h.opts.GutterSize/2
	hi := total - h.opts.MinSize - h.opts.GutterSize/2
	offset = math.Max(lo, math.Min(hi, offset))

	p := round(offset / total * 100)
	h.SetSizes([]float64{p, round(100 - p)})
}

func calc(percent, gutter float64) string {
	return "calc(" + formatFloat(percent) + "% - " + formatFloat(gutter) + "px)"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func round(v float64) float64 {
	return math.Round(v*100) / 100
}
