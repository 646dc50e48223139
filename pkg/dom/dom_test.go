package dom

import (
	"reflect"
	"strings"
	"testing"
)

func TestDocumentStructure(t *testing.T) {
	d := NewDocument()
	if d.Body().ParentNode() != d.DocumentElement() {
		t.Fatal("body is not a child of html")
	}
	mount := d.AppendMount("app")
	got, ok := d.GetElementByID("app")
	if !ok || got != mount {
		t.Fatalf("GetElementByID(app) = %v, %v", got, ok)
	}
	if _, ok := d.GetElementByID("missing"); ok {
		t.Error("GetElementByID(missing) should fail")
	}
}

func TestInsertBeforeAndRemove(t *testing.T) {
	d := NewDocument()
	parent := d.CreateElement("ul")
	a := parent.AppendChild(d.CreateElement("li"))
	c := parent.AppendChild(d.CreateElement("li"))
	b := parent.InsertBefore(d.CreateElement("li"), c)

	if !reflect.DeepEqual(parent.ChildNodes(), []*Node{a, b, c}) {
		t.Fatalf("unexpected order")
	}
	if a.NextSibling() != b || c.NextSibling() != nil {
		t.Error("NextSibling mismatch")
	}
	parent.RemoveChild(b)
	if b.ParentNode() != nil || len(parent.ChildNodes()) != 2 {
		t.Error("RemoveChild did not detach")
	}

	other := d.CreateElement("ol")
	other.AppendChild(a)
	if a.ParentNode() != other || len(parent.ChildNodes()) != 1 {
		t.Error("AppendChild did not reparent")
	}
}

func TestClassAndStyle(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("div")
	el.AddClass("a")
	el.AddClass("b")
	el.AddClass("a")
	el.RemoveClass("a")
	if got, _ := el.GetAttribute("class"); got != "b" {
		t.Errorf("class = %q", got)
	}
	el.SetStyle("width", "10px")
	el.SetStyle("color", "red")
	el.SetStyle("width", "20px")
	if got, _ := el.GetAttribute("style"); got != "width: 20px; color: red;" {
		t.Errorf("style = %q", got)
	}
	el.RemoveStyle("width")
	if _, ok := el.Style("width"); ok {
		t.Error("width still set")
	}
}

func TestMutationRecording(t *testing.T) {
	d := NewDocument()
	mount := d.AppendMount("app")
	detached := d.CreateElement("span")
	d.StartRecording()

	detached.SetAttribute("title", "ignored")
	if n := len(d.TakeMutations()); n != 0 {
		t.Fatalf("detached changes recorded: %d", n)
	}

	mount.AppendChild(detached)
	detached.SetAttribute("title", "x")
	detached.SetTextContent("hi")
	mount.RemoveChild(detached)

	ms := d.TakeMutations()
	ops := make([]MutationOp, len(ms))
	for i, m := range ms {
		ops[i] = m.Op
	}
	want := []MutationOp{OpInsert, OpSetAttr, OpInsert, OpRemove}
	if !reflect.DeepEqual(ops, want) {
		t.Fatalf("ops = %v, want %v", ops, want)
	}
	if ms[0].Parent != mount.NID() || !strings.Contains(ms[0].HTML, NIDAttr) {
		t.Errorf("insert record = %+v", ms[0])
	}
	if _, ok := d.NodeByNID(detached.NID()); ok {
		t.Error("removed node still indexed")
	}
}

func TestDispatchBubbles(t *testing.T) {
	d := NewDocument()
	outer := d.CreateElement("div")
	inner := outer.AppendChild(d.CreateElement("button"))

	var seen []string
	inner.AddEventListener("click", func(e *Event) { seen = append(seen, "inner") })
	id := outer.AddEventListener("click", func(e *Event) {
		seen = append(seen, "outer")
		if e.Target != inner || e.CurrentTarget != outer {
			t.Error("target/currentTarget mismatch")
		}
	})
	inner.DispatchEvent(NewEvent("click"))
	if !reflect.DeepEqual(seen, []string{"inner", "outer"}) {
		t.Fatalf("seen = %v", seen)
	}

	outer.RemoveEventListener(id)
	seen = nil
	inner.AddEventListener("click", func(e *Event) { e.StopPropagation() })
	inner.DispatchEvent(NewEvent("click"))
	if !reflect.DeepEqual(seen, []string{"inner"}) {
		t.Fatalf("seen after removal = %v", seen)
	}
}

func TestRender(t *testing.T) {
	d := NewDocument()
	el := d.CreateElement("p")
	el.SetAttribute("id", "x")
	el.AddClass("lead")
	el.AppendChild(d.CreateTextNode("a < b"))
	el.AppendChild(d.CreateElement("br"))

	got := el.OuterHTML(false)
	want := `<p class="lead" id="x">a &lt; b<br/></p>`
	if got != want {
		t.Errorf("OuterHTML = %s, want %s", got, want)
	}
	if !strings.Contains(el.OuterHTML(true), "<!--kv:") {
		t.Error("text markers missing with node ids")
	}
}
