package core

import (
	"testing"

	"github.com/kview-dev/kview/pkg/css"
	"github.com/kview-dev/kview/pkg/vdom"
)

func TestFieldEqualityPolicy(t *testing.T) {
	calls := 0
	f := NewField[string](func() { calls++ })

	if f.IsSet() {
		t.Error("new field should be unset")
	}
	f.Set("a")
	f.Set("a")
	if calls != 1 {
		t.Errorf("calls = %d, want 1 after setting the same value twice", calls)
	}
	f.Set("b")
	if v, ok := f.Get(); !ok || v != "b" {
		t.Errorf("Get() = %q, %v", v, ok)
	}
	f.Clear()
	f.Clear()
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if f.Value() != "" {
		t.Errorf("Value() = %q, want zero", f.Value())
	}

	var zero Field[int]
	if !zero.Set(0) {
		t.Error("setting the zero value on an unset field is a change")
	}
}

func TestStyleListOrder(t *testing.T) {
	var s StyledComponent
	s.SetColor(css.Red)
	s.SetMarginTop(css.Px(5))
	s.SetWidth(css.Px(10))

	got := s.StyleList()
	want := []vdom.StyleDecl{
		{Name: "width", Value: "10px"},
		{Name: "margin-top", Value: "5px"},
		{Name: "color", Value: "red"},
	}
	if len(got) != len(want) {
		t.Fatalf("StyleList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("StyleList()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestStyleListFullOrder(t *testing.T) {
	var s StyledComponent
	b := css.NewBorder(css.Px(1), css.BorderSolid, css.Black)
	s.SetBackground(css.ColorBackground(css.White))
	s.SetOpacity(0.5)
	s.SetPaddingLeft(css.Em(1))
	s.SetPadding(css.Px(2))
	s.SetMarginLeft(css.Perc(3))
	s.SetMargin(css.Px(4))
	s.SetBorderLeft(b)
	s.SetBorder(b)
	s.SetMaxHeight(css.Vh(90))
	s.SetHeight(css.Px(100))
	s.SetMinWidth(css.Rem(1.5))

	var names []string
	for _, d := range s.StyleList() {
		names = append(names, d.Name)
	}
	want := []string{
		"min-width", "height", "max-height", "border", "border-left",
		"margin", "margin-left", "padding", "padding-left",
		"opacity", "background",
	}
	if !equalStrings(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
	if got := s.StyleList()[0].Value; got != "1.5rem" {
		t.Errorf("min-width = %q, want 1.5rem", got)
	}
}

func TestStyleCacheInvalidation(t *testing.T) {
	var s StyledComponent
	changes := 0
	s.bindStyle(nil, func() { changes++ })

	s.SetWidth(css.Px(10))
	first := s.StyleList()
	s.SetWidth(css.Px(10))
	if changes != 1 {
		t.Errorf("changes = %d, want 1", changes)
	}
	s.SetWidth(css.Px(20))
	second := s.StyleList()
	if first[0].Value != "10px" || second[0].Value != "20px" {
		t.Errorf("stale style list: %v then %v", first, second)
	}
	s.ClearWidth()
	if len(s.StyleList()) != 0 {
		t.Errorf("StyleList() = %v, want empty", s.StyleList())
	}
}

type contributing struct {
	StyledComponent
}

func (c *contributing) ContributeStyle(add func(name, value string)) {
	add("display", "flex")
}

func TestStyleContributorAndString(t *testing.T) {
	c := &contributing{}
	c.bindStyle(c, nil)
	c.SetWidth(css.Px(1))
	c.SetOpacity(0.25)

	if got, want := c.StyleString(), "width: 1px; opacity: 0.25; display: flex;"; got != want {
		t.Errorf("StyleString() = %q, want %q", got, want)
	}
}
