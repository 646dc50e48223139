package core

import (
	"strconv"
	"strings"

	"github.com/kview-dev/kview/pkg/css"
	"github.com/kview-dev/kview/pkg/vdom"
)

// StyleContributor is implemented by types embedding StyledComponent that
// add their own declarations after the box-model ones.
type StyleContributor interface {
	ContributeStyle(add func(name, value string))
}

// StyledComponent holds inline style properties. Every property is optional.
// Changing a property invalidates the cached declaration list and calls the
// change callback installed with bindStyle.
type StyledComponent struct {
	width, minWidth, maxWidth    Field[css.Size]
	height, minHeight, maxHeight Field[css.Size]

	border, borderTop, borderRight, borderBottom, borderLeft Field[css.Border]

	margin, marginTop, marginRight, marginBottom, marginLeft      Field[css.Size]
	padding, paddingTop, paddingRight, paddingBottom, paddingLeft Field[css.Size]

	color      Field[css.Color]
	opacity    Field[float64]
	background Field[css.Background]

	styles      lazy[[]vdom.StyleDecl]
	contributor StyleContributor
	onChange    func()
}

func (s *StyledComponent) bindStyle(contributor StyleContributor, onChange func()) {
	s.contributor = contributor
	s.onChange = onChange
}

// InvalidateStyle drops the cached declaration list.
func (s *StyledComponent) InvalidateStyle() { s.styles.clear() }

func (s *StyledComponent) styleChanged(changed bool) {
	if !changed {
		return
	}
	s.styles.clear()
	if s.onChange != nil {
		s.onChange()
	}
}

// StyleList returns the set declarations in fixed order: sizes, borders,
// margins, paddings, color, opacity, background, then contributed ones.
func (s *StyledComponent) StyleList() []vdom.StyleDecl {
	return s.styles.get(s.buildStyleList)
}

func (s *StyledComponent) buildStyleList() []vdom.StyleDecl {
	var out []vdom.StyleDecl
	add := func(name, value string) {
		out = append(out, vdom.StyleDecl{Name: name, Value: value})
	}
	size := func(name string, f *Field[css.Size]) {
		if v, ok := f.Get(); ok {
			add(name, v.String())
		}
	}
	border := func(name string, f *Field[css.Border]) {
		if v, ok := f.Get(); ok {
			add(name, v.String())
		}
	}

	size("width", &s.width)
	size("min-width", &s.minWidth)
	size("max-width", &s.maxWidth)
	size("height", &s.height)
	size("min-height", &s.minHeight)
	size("max-height", &s.maxHeight)
	border("border", &s.border)
	border("border-top", &s.borderTop)
	border("border-right", &s.borderRight)
	border("border-bottom", &s.borderBottom)
	border("border-left", &s.borderLeft)
	size("margin", &s.margin)
	size("margin-top", &s.marginTop)
	size("margin-right", &s.marginRight)
	size("margin-bottom", &s.marginBottom)
	size("margin-left", &s.marginLeft)
	size("padding", &s.padding)
	size("padding-top", &s.paddingTop)
	size("padding-right", &s.paddingRight)
	size("padding-bottom", &s.paddingBottom)
	size("padding-left", &s.paddingLeft)
	if v, ok := s.color.Get(); ok {
		add("color", v.String())
	}
	if v, ok := s.opacity.Get(); ok {
		add("opacity", strconv.FormatFloat(v, 'f', -1, 64))
	}
	if v, ok := s.background.Get(); ok {
		add("background", v.String())
	}
	if s.contributor != nil {
		s.contributor.ContributeStyle(add)
	}
	return out
}

// StyleString joins StyleList as "name: value;" pairs.
func (s *StyledComponent) StyleString() string {
	var b strings.Builder
	for i, d := range s.StyleList() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.Name)
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteByte(';')
	}
	return b.String()
}

// Sizes

func (s *StyledComponent) Width() (css.Size, bool)     { return s.width.Get() }
func (s *StyledComponent) SetWidth(v css.Size)         { s.styleChanged(s.width.Set(v)) }
func (s *StyledComponent) ClearWidth()                 { s.styleChanged(s.width.Clear()) }
func (s *StyledComponent) MinWidth() (css.Size, bool)  { return s.minWidth.Get() }
func (s *StyledComponent) SetMinWidth(v css.Size)      { s.styleChanged(s.minWidth.Set(v)) }
func (s *StyledComponent) ClearMinWidth()              { s.styleChanged(s.minWidth.Clear()) }
func (s *StyledComponent) MaxWidth() (css.Size, bool)  { return s.maxWidth.Get() }
func (s *StyledComponent) SetMaxWidth(v css.Size)      { s.styleChanged(s.maxWidth.Set(v)) }
func (s *StyledComponent) ClearMaxWidth()              { s.styleChanged(s.maxWidth.Clear()) }
func (s *StyledComponent) Height() (css.Size, bool)    { return s.height.Get() }
func (s *StyledComponent) SetHeight(v css.Size)        { s.styleChanged(s.height.Set(v)) }
func (s *StyledComponent) ClearHeight()                { s.styleChanged(s.height.Clear()) }
func (s *StyledComponent) MinHeight() (css.Size, bool) { return s.minHeight.Get() }
func (s *StyledComponent) SetMinHeight(v css.Size)     { s.styleChanged(s.minHeight.Set(v)) }
func (s *StyledComponent) ClearMinHeight()             { s.styleChanged(s.minHeight.Clear()) }
func (s *StyledComponent) MaxHeight() (css.Size, bool) { return s.maxHeight.Get() }
func (s *StyledComponent) SetMaxHeight(v css.Size)     { s.styleChanged(s.maxHeight.Set(v)) }
func (s *StyledComponent) ClearMaxHeight()             { s.styleChanged(s.maxHeight.Clear()) }

// Borders

func (s *StyledComponent) Border() (css.Border, bool)       { return s.border.Get() }
func (s *StyledComponent) SetBorder(v css.Border)           { s.styleChanged(s.border.Set(v)) }
func (s *StyledComponent) ClearBorder()                     { s.styleChanged(s.border.Clear()) }
func (s *StyledComponent) BorderTop() (css.Border, bool)    { return s.borderTop.Get() }
func (s *StyledComponent) SetBorderTop(v css.Border)        { s.styleChanged(s.borderTop.Set(v)) }
func (s *StyledComponent) ClearBorderTop()                  { s.styleChanged(s.borderTop.Clear()) }
func (s *StyledComponent) BorderRight() (css.Border, bool)  { return s.borderRight.Get() }
func (s *StyledComponent) SetBorderRight(v css.Border)      { s.styleChanged(s.borderRight.Set(v)) }
func (s *StyledComponent) ClearBorderRight()                { s.styleChanged(s.borderRight.Clear()) }
func (s *StyledComponent) BorderBottom() (css.Border, bool) { return s.borderBottom.Get() }
func (s *StyledComponent) SetBorderBottom(v css.Border)     { s.styleChanged(s.borderBottom.Set(v)) }
func (s *StyledComponent) ClearBorderBottom()               { s.styleChanged(s.borderBottom.Clear()) }
func (s *StyledComponent) BorderLeft() (css.Border, bool)   { return s.borderLeft.Get() }
func (s *StyledComponent) SetBorderLeft(v css.Border)       { s.styleChanged(s.borderLeft.Set(v)) }
func (s *StyledComponent) ClearBorderLeft()                 { s.styleChanged(s.borderLeft.Clear()) }

// Margins

func (s *StyledComponent) Margin() (css.Size, bool)       { return s.margin.Get() }
func (s *StyledComponent) SetMargin(v css.Size)           { s.styleChanged(s.margin.Set(v)) }
func (s *StyledComponent) ClearMargin()                   { s.styleChanged(s.margin.Clear()) }
func (s *StyledComponent) MarginTop() (css.Size, bool)    { return s.marginTop.Get() }
func (s *StyledComponent) SetMarginTop(v css.Size)        { s.styleChanged(s.marginTop.Set(v)) }
func (s *StyledComponent) ClearMarginTop()                { s.styleChanged(s.marginTop.Clear()) }
func (s *StyledComponent) MarginRight() (css.Size, bool)  { return s.marginRight.Get() }
func (s *StyledComponent) SetMarginRight(v css.Size)      { s.styleChanged(s.marginRight.Set(v)) }
func (s *StyledComponent) ClearMarginRight()              { s.styleChanged(s.marginRight.Clear()) }
func (s *StyledComponent) MarginBottom() (css.Size, bool) { return s.marginBottom.Get() }
func (s *StyledComponent) SetMarginBottom(v css.Size)     { s.styleChanged(s.marginBottom.Set(v)) }
func (s *StyledComponent) ClearMarginBottom()             { s.styleChanged(s.marginBottom.Clear()) }
func (s *StyledComponent) MarginLeft() (css.Size, bool)   { return s.marginLeft.Get() }
func (s *StyledComponent) SetMarginLeft(v css.Size)       { s.styleChanged(s.marginLeft.Set(v)) }
func (s *StyledComponent) ClearMarginLeft()               { s.styleChanged(s.marginLeft.Clear()) }

// Paddings

func (s *StyledComponent) Padding() (css.Size, bool)       { return s.padding.Get() }
func (s *StyledComponent) SetPadding(v css.Size)           { s.styleChanged(s.padding.Set(v)) }
func (s *StyledComponent) ClearPadding()                   { s.styleChanged(s.padding.Clear()) }
func (s *StyledComponent) PaddingTop() (css.Size, bool)    { return s.paddingTop.Get() }
func (s *StyledComponent) SetPaddingTop(v css.Size)        { s.styleChanged(s.paddingTop.Set(v)) }
func (s *StyledComponent) ClearPaddingTop()                { s.styleChanged(s.paddingTop.Clear()) }
func (s *StyledComponent) PaddingRight() (css.Size, bool)  { return s.paddingRight.Get() }
func (s *StyledComponent) SetPaddingRight(v css.Size)      { s.styleChanged(s.paddingRight.Set(v)) }
func (s *StyledComponent) ClearPaddingRight()              { s.styleChanged(s.paddingRight.Clear()) }
func (s *StyledComponent) PaddingBottom() (css.Size, bool) { return s.paddingBottom.Get() }
func (s *StyledComponent) SetPaddingBottom(v css.Size)     { s.styleChanged(s.paddingBottom.Set(v)) }
func (s *StyledComponent) ClearPaddingBottom()             { s.styleChanged(s.paddingBottom.Clear()) }
func (s *StyledComponent) PaddingLeft() (css.Size, bool)   { return s.paddingLeft.Get() }
func (s *StyledComponent) SetPaddingLeft(v css.Size)       { s.styleChanged(s.paddingLeft.Set(v)) }
func (s *StyledComponent) ClearPaddingLeft()               { s.styleChanged(s.paddingLeft.Clear()) }

// Color, opacity and background

func (s *StyledComponent) Color() (css.Color, bool)           { return s.color.Get() }
func (s *StyledComponent) SetColor(v css.Color)               { s.styleChanged(s.color.Set(v)) }
func (s *StyledComponent) ClearColor()                        { s.styleChanged(s.color.Clear()) }
func (s *StyledComponent) Opacity() (float64, bool)           { return s.opacity.Get() }
func (s *StyledComponent) SetOpacity(v float64)               { s.styleChanged(s.opacity.Set(v)) }
func (s *StyledComponent) ClearOpacity()                      { s.styleChanged(s.opacity.Clear()) }
func (s *StyledComponent) Background() (css.Background, bool) { return s.background.Get() }
func (s *StyledComponent) SetBackground(v css.Background)     { s.styleChanged(s.background.Set(v)) }
func (s *StyledComponent) ClearBackground()                   { s.styleChanged(s.background.Clear()) }
