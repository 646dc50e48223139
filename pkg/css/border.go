package css

import "strings"

// BorderStyle is the line style of a border.
type BorderStyle string

const (
	BorderNone   BorderStyle = "none"
	BorderHidden BorderStyle = "hidden"
	BorderDotted BorderStyle = "dotted"
	BorderDashed BorderStyle = "dashed"
	BorderSolid  BorderStyle = "solid"
	BorderDouble BorderStyle = "double"
	BorderGroove BorderStyle = "groove"
	BorderRidge  BorderStyle = "ridge"
	BorderInset  BorderStyle = "inset"
	BorderOutset BorderStyle = "outset"
)

// Border is a shorthand border value. Zero parts are omitted.
type Border struct {
	Width    Size
	HasWidth bool
	Style    BorderStyle
	Color    Color
	HasColor bool
}

// NewBorder returns a border with all three parts set.
func NewBorder(width Size, style BorderStyle, color Color) Border {
	return Border{Width: width, HasWidth: true, Style: style, Color: color, HasColor: true}
}

// String serializes the border shorthand as "width style color".
func (b Border) String() string {
	parts := make([]string, 0, 3)
	if b.HasWidth {
		parts = append(parts, b.Width.String())
	}
	if b.Style != "" {
		parts = append(parts, string(b.Style))
	}
	if b.HasColor {
		parts = append(parts, b.Color.String())
	}
	return strings.Join(parts, " ")
}
