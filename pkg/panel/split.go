package panel

import (
	"math"

	"github.com/kview-dev/kview/internal/errors"
	"github.com/kview-dev/kview/pkg/core"
	"github.com/kview-dev/kview/pkg/css"
	"github.com/kview-dev/kview/pkg/dom"
	"github.com/kview-dev/kview/pkg/split"
	"github.com/kview-dev/kview/pkg/vdom"
)

// Orientation is the orientation of the splitter bar.
type Orientation int

const (
	// SplitVertical places the children side by side with a vertical bar.
	SplitVertical Orientation = iota
	// SplitHorizontal stacks the children with a horizontal bar.
	SplitHorizontal
)

func (o Orientation) String() string {
	if o == SplitHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// SplitPanel shows exactly two children separated by a draggable splitter.
// With any other number of children it renders no children at all.
type SplitPanel struct {
	core.SimplePanel

	orientation Orientation
	library     split.Library
	splitter    *core.Widget
	handle      split.Handle
	bound       [3]*dom.Node
}

// NewSplitPanel creates a split panel.
func NewSplitPanel(o Orientation, opts ...core.WidgetOption) *SplitPanel {
	p := &SplitPanel{orientation: o, library: split.New()}
	p.InitPanel(p, "div", append([]core.WidgetOption{
		core.WithClassName("splitpanel-" + o.String()),
		core.WithAttribute(dom.MeasureAttr, "children"),
	}, opts...)...)
	p.splitter = core.NewWidget("div", core.WithClassName("splitter-"+o.String()))
	p.splitter.SetParent(p)
	p.AddBeforeDisposeHook(p.unsplit)
	return p
}

// Orientation returns the splitter orientation.
func (p *SplitPanel) Orientation() Orientation { return p.orientation }

// SetLibrary replaces the split implementation. It applies to splits
// created afterwards.
func (p *SplitPanel) SetLibrary(lib split.Library) { p.library = lib }

// Splitter returns the splitter widget.
func (p *SplitPanel) Splitter() core.Component { return p.splitter }

// Handle returns the live split, if any.
func (p *SplitPanel) Handle() (split.Handle, bool) { return p.handle, p.handle != nil }

// Validate returns E103 unless the panel has exactly two children.
func (p *SplitPanel) Validate() error {
	if n := p.Len(); n != 2 {
		return errors.New("E103").WithDetailf("split panel %s has %d children", p.Key(), n)
	}
	return nil
}

// ContributeStyle lays the pair out along the split axis.
func (p *SplitPanel) ContributeStyle(add func(name, value string)) {
	add("display", string(css.DisplayFlex))
	if p.orientation == SplitHorizontal {
		add("flex-direction", string(css.DirColumn))
	} else {
		add("flex-direction", string(css.DirRow))
	}
}

// Render renders first child, splitter, second child; or nothing when the
// panel does not have exactly two children.
func (p *SplitPanel) Render() *vdom.VNode {
	children := p.Children()
	if len(children) != 2 {
		return p.RenderTag(p.Tag())
	}
	return p.RenderTag(p.Tag(),
		children[0].RenderVNode(),
		p.splitter.RenderVNode(),
		children[1].RenderVNode(),
	)
}

// sizable is satisfied by every widget embedding core.StyledComponent.
type sizable interface {
	Width() (css.Size, bool)
	Height() (css.Size, bool)
	SetWidth(css.Size)
	SetHeight(css.Size)
}

func (p *SplitPanel) size(c core.Component) (css.Size, bool) {
	s, ok := c.(sizable)
	if !ok {
		return css.Size{}, false
	}
	if p.orientation == SplitHorizontal {
		return s.Height()
	}
	return s.Width()
}

func (p *SplitPanel) setSize(c core.Component, v css.Size) {
	s, ok := c.(sizable)
	if !ok {
		return
	}
	if p.orientation == SplitHorizontal {
		s.SetHeight(v)
	} else {
		s.SetWidth(v)
	}
}

// initialSizes uses explicit percent sizes when both children have them,
// otherwise the measured element sizes.
func (p *SplitPanel) initialSizes(first, second core.Component, a, b *dom.Node) []float64 {
	s1, ok1 := p.size(first)
	s2, ok2 := p.size(second)
	if ok1 && ok2 && s1.IsPerc() && s2.IsPerc() {
		return []float64{s1.Value, s2.Value}
	}
	r1, r2 := a.BoundingClientRect(), b.BoundingClientRect()
	m1, m2 := r1.Width, r2.Width
	if p.orientation == SplitHorizontal {
		m1, m2 = r1.Height, r2.Height
	}
	if m1+m2 <= 0 {
		return []float64{50, 50}
	}
	first1 := math.Round(m1/(m1+m2)*10000) / 100
	return []float64{first1, math.Round((100-first1)*100) / 100}
}

// resplit creates the split for the current elements, replacing a split
// bound to older ones.
func (p *SplitPanel) resplit() {
	children := p.Children()
	if len(children) != 2 {
		p.unsplit()
		return
	}
	el, ok := p.Element()
	if !ok || len(el.ChildNodes()) != 3 {
		p.unsplit()
		return
	}
	nodes := el.ChildNodes()
	a, g, b := nodes[0], nodes[1], nodes[2]
	if p.handle != nil && p.bound == [3]*dom.Node{a, b, g} {
		return
	}
	p.unsplit()

	dir := split.Horizontal
	if p.orientation == SplitHorizontal {
		dir = split.Vertical
	}
	p.bound = [3]*dom.Node{a, b, g}
	p.handle = p.library.Split(a, b, g, split.Options{
		Direction: dir,
		Sizes:     p.initialSizes(children[0], children[1], a, b),
		OnDragEnd: p.persist,
	})
}

func (p *SplitPanel) unsplit() {
	if p.handle != nil {
		p.handle.Destroy()
	}
	p.handle = nil
	p.bound = [3]*dom.Node{}
}

// persist stores the dragged sizes on the children as percentages.
func (p *SplitPanel) persist(sizes []float64) {
	children := p.Children()
	if len(children) != 2 || len(sizes) != 2 {
		return
	}
	core.SingleRender(p, func() {
		p.setSize(children[0], css.Perc(sizes[0]))
		p.setSize(children[1], css.Perc(sizes[1]))
	})
}

// AfterInsert creates the split once the pair is in the document.
func (p *SplitPanel) AfterInsert(*vdom.VNode) { p.resplit() }

// AfterPatch rebinds the split when the pair's elements were replaced.
func (p *SplitPanel) AfterPatch(*vdom.VNode) { p.resplit() }

// AfterDestroy releases the split.
func (p *SplitPanel) AfterDestroy() { p.unsplit() }
