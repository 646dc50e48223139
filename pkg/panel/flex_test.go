package panel

import (
	"testing"

	"github.com/kview-dev/kview/pkg/core"
	"github.com/kview-dev/kview/pkg/css"
	"github.com/kview-dev/kview/pkg/vdom"
)

func TestFlexPanelContainerStyle(t *testing.T) {
	p := NewHPanel()
	p.SetWrap(css.WrapWrap)
	p.SetJustify(css.JustifySpaceBetween)
	p.SetAlignItems(css.AlignItemsCenter)

	want := "display: flex; flex-direction: row; flex-wrap: wrap; justify-content: space-between; align-items: center;"
	if got := p.StyleString(); got != want {
		t.Errorf("StyleString() = %q\nwant %q", got, want)
	}

	p.SetDirection(css.DirColumn)
	if v, _ := p.Render().StyleValue("flex-direction"); v != "column" {
		t.Errorf("flex-direction = %q after change", v)
	}
}

func TestFlexPanelWrappers(t *testing.T) {
	p := NewVPanel()
	p.SetSpacing(4)
	a, b := core.NewWidget("span"), core.NewWidget("span")
	p.AddItem(a, Order(2), Grow(1), Basis(css.Perc(50)), AlignSelf(css.AlignSelfCenter), ItemClassName("left pad"))
	p.AddItem(b)

	v := p.Render()
	if len(v.Children) != 2 {
		t.Fatalf("wrappers = %d, want 2", len(v.Children))
	}
	wa, wb := v.Children[0], v.Children[1]
	if wa.Key != a.Key()+"_w" || wa.Children[0].Key != a.Key() {
		t.Errorf("wrapper key %q wraps %q", wa.Key, wa.Children[0].Key)
	}
	want := []vdom.StyleDecl{
		{Name: "order", Value: "2"},
		{Name: "flex-grow", Value: "1"},
		{Name: "flex-basis", Value: "50%"},
		{Name: "align-self", Value: "center"},
		{Name: "margin-bottom", Value: "4px"},
	}
	if len(wa.Data.Style) != len(want) {
		t.Fatalf("style = %v, want %v", wa.Data.Style, want)
	}
	for i := range want {
		if wa.Data.Style[i] != want[i] {
			t.Errorf("style[%d] = %v, want %v", i, wa.Data.Style[i], want[i])
		}
	}
	if !wa.HasClass("left") || !wa.HasClass("pad") {
		t.Errorf("wrapper classes = %v", wa.Data.Class)
	}
	if _, ok := wb.StyleValue("margin-bottom"); ok {
		t.Error("last wrapper should not get spacing")
	}
}

func TestFlexPanelRemoveDropsPlacement(t *testing.T) {
	p := NewHPanel()
	a := core.NewWidget("div")
	p.AddItem(a, Order(5))
	p.Remove(a)
	if len(p.items) != 0 {
		t.Error("placement should be dropped with the child")
	}
	p.Add(a)
	if _, ok := p.Render().Children[0].StyleValue("order"); ok {
		t.Error("re-added child should not keep old placement")
	}
	if a.Parent() != core.Container(p) {
		t.Error("child parent should be the panel")
	}
}

func TestGridPanel(t *testing.T) {
	p := NewGridPanel()
	p.SetTemplateColumns("1fr 2fr")
	p.SetTemplateAreas("head head", "side main")
	p.SetColumnGap(8)
	a := core.NewWidget("div")
	p.AddItem(a, Column(1, 3), Row(2, 3), Area("main"), JustifySelf(css.JustifyItemsEnd))

	want := `display: grid; grid-template-columns: 1fr 2fr; grid-template-areas: "head head" "side main"; column-gap: 8px;`
	if got := p.StyleString(); got != want {
		t.Errorf("StyleString() = %q\nwant %q", got, want)
	}

	w := p.Render().Children[0]
	for name, value := range map[string]string{
		"grid-column-start": "1", "grid-column-end": "3",
		"grid-row-start": "2", "grid-row-end": "3",
		"grid-area": "main", "justify-self": "end",
	} {
		if got, _ := w.StyleValue(name); got != value {
			t.Errorf("%s = %q, want %q", name, got, value)
		}
	}

	p.RemoveAll()
	if p.Len() != 0 || len(p.items) != 0 || a.Parent() != nil {
		t.Error("RemoveAll should drop children, placements and parent links")
	}
}

func TestFlexPanelMountedReorder(t *testing.T) {
	p := NewHPanel()
	ws := widgets(3)
	p.AddAll(ws[0], ws[1], ws[2])
	mount(t, p)
	first := ws[0].MustElement()

	p.AddAt(2, ws[0])
	el := p.MustElement()
	if got := el.ChildNodes()[2].FirstChild(); got != first {
		t.Error("moved child should keep its element")
	}
}
