package panel

import (
	"testing"

	"github.com/kview-dev/kview/pkg/core"
	"github.com/kview-dev/kview/pkg/dom"
)

func TestTabPanelSync(t *testing.T) {
	p := NewTabPanel()
	ws := widgets(3)
	p.AddTab("One", ws[0])
	p.AddTab("Two", ws[1])
	p.AddTab("Three", ws[2])

	if p.ActiveIndex() != 0 {
		t.Fatalf("active = %d, want 0", p.ActiveIndex())
	}
	for i, w := range ws {
		if w.Parent() != core.Container(p) {
			t.Errorf("tab %d parent should be the tab panel", i)
		}
	}
	if title, _ := p.TabTitle(1); title != "Two" {
		t.Errorf("TabTitle(1) = %q", title)
	}

	p.SetActiveIndex(2)
	items := p.Nav().Children()
	for i, it := range items {
		active := it.(interface{ HasCSSClass(string) bool }).HasCSSClass("active")
		if active != (i == 2) {
			t.Errorf("nav item %d active = %v", i, active)
		}
	}
	content := p.Content().Render().Children
	if len(content) != 1 || content[0].Key != ws[2].Key() {
		t.Errorf("content = %v, want only tab 2", keys(content))
	}
}

func TestTabPanelClick(t *testing.T) {
	p := NewTabPanel()
	ws := widgets(2)
	p.AddTab("A", ws[0])
	p.AddTab("B", ws[1])
	mount(t, p)

	navItems := p.Nav().MustElement().ChildNodes()
	if len(navItems) != 2 {
		t.Fatalf("nav items = %d", len(navItems))
	}
	link := navItems[1].FirstChild()
	if link.DispatchEvent(dom.NewEvent("click")) {
		t.Error("tab click should prevent the default action")
	}
	if p.ActiveIndex() != 1 {
		t.Errorf("active = %d after click, want 1", p.ActiveIndex())
	}
	if _, ok := ws[0].Element(); ok {
		t.Error("inactive tab content should leave the document")
	}
	if !navItems[1].HasClass("active") || navItems[0].HasClass("active") {
		t.Error("active class should follow the click")
	}
}

func TestTabPanelRemove(t *testing.T) {
	p := NewTabPanel()
	ws := widgets(3)
	p.AddAll(ws[0], ws[1], ws[2])
	p.SetActiveIndex(2)

	p.Remove(ws[0])
	if p.ActiveIndex() != 1 || len(p.Nav().Children()) != 2 {
		t.Errorf("active = %d, nav = %d", p.ActiveIndex(), len(p.Nav().Children()))
	}
	if ws[0].Parent() != nil {
		t.Error("removed tab should be detached")
	}
	if c := p.Children(); len(c) != 2 || c[1] != ws[2] {
		t.Error("children out of sync")
	}

	p.RemoveAll()
	if len(p.Children()) != 0 || len(p.Nav().Children()) != 0 || p.ActiveIndex() != -1 {
		t.Error("RemoveAll should clear tabs and selection")
	}
}

func TestTabPanelMoveBetweenPanels(t *testing.T) {
	p := NewTabPanel()
	host := core.NewSimplePanel()
	w := core.NewWidget("div")
	host.Add(w)
	p.AddTab("moved", w)
	if host.Len() != 0 || w.Parent() != core.Container(p) {
		t.Error("adding a tab should detach it from its previous container")
	}
	host.Add(w)
	if len(p.Children()) != 0 {
		t.Error("moving the content away should remove the tab")
	}
}
