package panel

import (
	"testing"

	"github.com/kview-dev/kview/pkg/core"
)

func TestDockPanelLayout(t *testing.T) {
	p := NewDockPanel()
	up, left, center, right, down := core.NewWidget("div"), core.NewWidget("div"),
		core.NewWidget("div"), core.NewWidget("div"), core.NewWidget("div")
	p.AddSide(center, Center)
	p.AddSide(down, Down)
	p.AddSide(right, Right)
	p.AddSide(up, Up)
	p.AddSide(left, Left)

	want := []string{up.Key(), left.Key(), center.Key(), right.Key(), down.Key()}
	var got []string
	for _, c := range p.Children() {
		got = append(got, c.Key())
		if c.Parent() != core.Container(p) {
			t.Errorf("%s parent should be the dock", c.Key())
		}
	}
	if !sameStrings(got, want) {
		t.Errorf("children = %v, want %v", got, want)
	}

	main := p.Render().Children[0]
	if d, _ := main.StyleValue("flex-direction"); d != "column" {
		t.Errorf("outer direction = %q", d)
	}
	if len(main.Children) != 3 {
		t.Fatalf("outer wrappers = %d, want 3", len(main.Children))
	}
	orders := map[string]string{}
	for _, w := range main.Children {
		o, _ := w.StyleValue("order")
		orders[w.Children[0].Key] = o
	}
	if orders[up.Key()] != "1" || orders[down.Key()] != "3" {
		t.Errorf("outer orders = %v", orders)
	}
	var middle []string
	for _, w := range main.Children {
		if o, _ := w.StyleValue("order"); o == "2" {
			for _, inner := range w.Children[0].Children {
				middle = append(middle, inner.Children[0].Key)
			}
		}
	}
	if len(middle) != 3 {
		t.Errorf("middle row = %v", middle)
	}
}

func TestDockPanelReplaceSlot(t *testing.T) {
	p := NewDockPanel()
	first, second, other := core.NewWidget("div"), core.NewWidget("div"), core.NewWidget("div")
	p.AddSide(first, Left)
	p.AddSide(other, Right)
	p.AddSide(second, Left)

	if !first.Disposed() || first.Parent() != nil {
		t.Error("replaced widget should be disposed and detached")
	}
	if other.Disposed() {
		t.Error("other slots must be untouched")
	}
	if c, _ := p.Slot(Left); c != second {
		t.Error("slot should hold the new widget")
	}
}

func TestDockPanelRemove(t *testing.T) {
	p := NewDockPanel()
	a, b := core.NewWidget("div"), core.NewWidget("div")
	p.AddAll(a, b)
	if c, _ := p.Slot(Center); c != a {
		t.Error("AddAll should fill the center first")
	}
	if c, _ := p.Slot(Left); c != b {
		t.Error("AddAll should fill left second")
	}

	p.AddSide(a, Down)
	if _, ok := p.Slot(Center); ok {
		t.Error("moving a widget should free its old slot")
	}
	p.RemoveSide(Down)
	if a.Parent() != nil || len(p.Children()) != 1 {
		t.Error("RemoveSide should detach the widget")
	}
	p.RemoveAll()
	if b.Parent() != nil || len(p.Children()) != 0 {
		t.Error("RemoveAll should detach every widget")
	}
}

func TestDockPanelMounted(t *testing.T) {
	p := NewDockPanel()
	mount(t, p)
	w := core.NewWidget("div", core.WithID("center"))
	p.Add(w)
	if _, ok := w.Element(); !ok {
		t.Error("docked widget should be rendered")
	}
	w.Hide()
	el, _ := w.Element()
	if !el.HasClass("hidden") {
		t.Error("refresh from a docked widget should reach the root")
	}
}
