package css

import (
	"fmt"
	"strconv"
)

// ColorKind discriminates how a Color serializes.
type ColorKind uint8

const (
	ColorNamed ColorKind = iota
	ColorHex
	ColorRGBA
)

// Color is a CSS color value.
type Color struct {
	Kind  ColorKind
	Name  string
	R     uint8
	G     uint8
	B     uint8
	Alpha float64
}

// Named returns a named color such as "red" or "transparent".
func Named(name string) Color {
	return Color{Kind: ColorNamed, Name: name}
}

// Hex returns a color from a 0xRRGGBB value.
func Hex(rgb uint32) Color {
	return Color{
		Kind: ColorHex,
		R:    uint8(rgb >> 16),
		G:    uint8(rgb >> 8),
		B:    uint8(rgb),
	}
}

// RGBA returns a color with an alpha channel in the 0..1 range.
func RGBA(r, g, b uint8, alpha float64) Color {
	return Color{Kind: ColorRGBA, R: r, G: g, B: b, Alpha: alpha}
}

// String serializes the color.
func (c Color) String() string {
	switch c.Kind {
	case ColorHex:
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	case ColorRGBA:
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.Alpha, 'f', -1, 64))
	default:
		return c.Name
	}
}

// Common named colors.
var (
	Black       = Named("black")
	White       = Named("white")
	Red         = Named("red")
	Green       = Named("green")
	Blue        = Named("blue")
	Gray        = Named("gray")
	Transparent = Named("transparent")
)
