// Package showcase is a demo application that places every layout panel
// in one page. The kview CLI serves and exports it.
package showcase

import (
	"strconv"

	"github.com/kview-dev/kview/pkg/core"
	"github.com/kview-dev/kview/pkg/css"
	"github.com/kview-dev/kview/pkg/dom"
	"github.com/kview-dev/kview/pkg/panel"
	"github.com/kview-dev/kview/pkg/tag"
)

// MountID is the id of the element the showcase root mounts on.
const MountID = "kview"

// Showcase holds the widgets tests and callers interact with.
type Showcase struct {
	Root    *core.Root
	Tabs    *panel.TabPanel
	Stack   *panel.StackPanel
	Split   *panel.SplitPanel
	Details *tag.Tag
	Toggle  *tag.Tag
	Counter *tag.Tag
	Next    *tag.Tag

	clicks int
}

// App builds the showcase into s. It has the signature the server and the
// exporter expect.
func App(s *core.Session) error {
	_, err := Build(s)
	return err
}

// Build mounts the showcase in s and returns its widgets.
func Build(s *core.Session) (*Showcase, error) {
	if _, ok := s.Document().GetElementByID(MountID); !ok {
		s.Document().AppendMount(MountID)
	}

	header := core.NewStyle(s, core.WithStyleClassName("kv-showcase-header"), core.WithStyleInit(func(st *core.Style) {
		st.SetPadding(css.Px(8))
		st.SetColor(css.Named("white"))
		st.SetBackground(css.ColorBackground(css.Hex(0x20232a)))
	}))
	cell := core.NewStyle(s, core.WithStyleClassName("kv-showcase-cell"), core.WithStyleInit(func(st *core.Style) {
		st.SetPadding(css.Px(4))
		st.SetBorder(css.NewBorder(css.Px(1), css.BorderSolid, css.Named("silver")))
	}))

	sc := &Showcase{}
	sc.Tabs = panel.NewTabPanel(core.WithClassName("kv-showcase-tabs"))
	sc.Tabs.AddTab("Flex", sc.flexDemo(cell))
	sc.Tabs.AddTab("Grid", sc.gridDemo(cell))
	sc.Tabs.AddTab("Split", sc.splitDemo())
	sc.Tabs.AddTab("Dock", sc.dockDemo(cell))
	sc.Tabs.AddTab("Responsive", sc.responsiveDemo(cell))
	sc.Tabs.AddTab("Stack", sc.stackDemo())

	title := tag.New("h1", "kview showcase")
	title.AddStyle(header)

	sc.Root = core.NewRoot(s, MountID, core.WithInit(func(r *core.Root) {
		r.Add(title)
		r.Add(sc.Tabs)
	}))
	return sc, nil
}

func text(name, content string, style *core.Style) *tag.Tag {
	t := tag.New(name, content)
	if style != nil {
		t.AddStyle(style)
	}
	return t
}

// flexDemo shows a row with a growing middle item, a counter button and a
// button that hides and shows a details paragraph.
func (sc *Showcase) flexDemo(cell *core.Style) core.Component {
	row := panel.NewHPanel(core.WithClassName("kv-showcase-flex"))
	row.SetSpacing(8)
	row.SetJustify(css.JustifySpaceBetween)
	row.AddItem(text("div", "left", cell))
	row.AddItem(text("div", "grows", cell), panel.Grow(1))
	row.AddItem(text("div", "right", cell), panel.Order(1))

	sc.Counter = tag.New("button", "clicked 0 times", core.WithClassName("kv-counter"))
	sc.Counter.SetEventListener("click", func(*dom.Event) {
		sc.clicks++
		sc.Counter.SetContent("clicked " + strconv.Itoa(sc.clicks) + " times")
	})

	sc.Details = tag.New("p", "Hidden widgets keep their place in the tree.", core.WithClassName("kv-details"))
	sc.Toggle = tag.New("button", "toggle details", core.WithClassName("kv-toggle"))
	sc.Toggle.SetEventListener("click", func(*dom.Event) {
		sc.Details.ToggleVisible()
	})

	col := panel.NewVPanel()
	col.SetSpacing(4)
	col.AddItem(row)
	col.AddItem(sc.Counter)
	col.AddItem(sc.Toggle)
	col.AddItem(sc.Details)
	return col
}

func (sc *Showcase) gridDemo(cell *core.Style) core.Component {
	grid := panel.NewGridPanel(core.WithClassName("kv-showcase-grid"))
	grid.SetTemplateColumns("200px 1fr")
	grid.SetTemplateAreas("head head", "side main")
	grid.SetColumnGap(4)
	grid.SetRowGap(4)
	grid.AddItem(text("header", "head", cell), panel.Area("head"))
	grid.AddItem(text("nav", "side", cell), panel.Area("side"))
	grid.AddItem(text("main", "main", cell), panel.Area("main"))
	return grid
}

func (sc *Showcase) splitDemo() core.Component {
	sc.Split = panel.NewSplitPanel(panel.SplitVertical, core.WithClassName("kv-showcase-split"))
	sc.Split.SetHeight(css.Px(200))
	sc.Split.Add(tag.New("div", "drag the bar"))
	sc.Split.Add(tag.New("div", "to resize"))
	return sc.Split
}

func (sc *Showcase) dockDemo(cell *core.Style) core.Component {
	dock := panel.NewDockPanel(core.WithClassName("kv-showcase-dock"))
	dock.AddSide(text("div", "up", cell), panel.Up)
	dock.AddSide(text("div", "left", cell), panel.Left)
	dock.AddSide(text("div", "center", cell), panel.Center)
	dock.AddSide(text("div", "right", cell), panel.Right)
	dock.AddSide(text("div", "down", cell), panel.Down)
	return dock
}

func (sc *Showcase) responsiveDemo(cell *core.Style) core.Component {
	grid := panel.NewResponsiveGridPanel(core.WithClassName("kv-showcase-responsive"))
	grid.SetGridSize(panel.SizeMD)
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			grid.AddCell(text("div", strconv.Itoa(row)+","+strconv.Itoa(col), cell), row, col, 0, 0)
		}
	}
	return grid
}

// stackDemo shows one card at a time; the next button cycles through them.
func (sc *Showcase) stackDemo() core.Component {
	sc.Stack = panel.NewStackPanel(false, core.WithClassName("kv-showcase-stack"))
	for _, name := range []string{"first", "second", "third"} {
		sc.Stack.Add(tag.New("div", name+" card"))
	}
	sc.Stack.SetActiveIndex(0)

	sc.Next = tag.New("button", "next card", core.WithClassName("kv-next"))
	sc.Next.SetEventListener("click", func(*dom.Event) {
		sc.Stack.SetActiveIndex((sc.Stack.ActiveIndex() + 1) % sc.Stack.Len())
	})

	col := panel.NewVPanel()
	col.AddItem(sc.Next)
	col.AddItem(sc.Stack)
	return col
}
