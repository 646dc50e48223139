package css

import "strings"

// BgRepeat controls background image tiling.
type BgRepeat string

const (
	BgRepeatRepeat   BgRepeat = "repeat"
	BgRepeatRepeatX  BgRepeat = "repeat-x"
	BgRepeatRepeatY  BgRepeat = "repeat-y"
	BgRepeatNoRepeat BgRepeat = "no-repeat"
)

// BgSize controls background image scaling.
type BgSize string

const (
	BgSizeCover   BgSize = "cover"
	BgSizeContain BgSize = "contain"
)

// Background is a shorthand background value. Zero parts are omitted.
type Background struct {
	Color    Color
	HasColor bool
	Image    string
	// PositionX and PositionY are written together when HasPosition is set.
	PositionX   Size
	PositionY   Size
	HasPosition bool
	Size        BgSize
	Repeat      BgRepeat
}

// ColorBackground returns a background consisting only of a color.
func ColorBackground(c Color) Background {
	return Background{Color: c, HasColor: true}
}

// String serializes the background shorthand.
func (b Background) String() string {
	parts := make([]string, 0, 5)
	if b.HasColor {
		parts = append(parts, b.Color.String())
	}
	if b.Image != "" {
		parts = append(parts, "url("+b.Image+")")
	}
	if b.HasPosition {
		pos := b.PositionX.String() + " " + b.PositionY.String()
		if b.Size != "" {
			pos += "/" + string(b.Size)
		}
		parts = append(parts, pos)
	}
	if b.Repeat != "" {
		parts = append(parts, string(b.Repeat))
	}
	return strings.Join(parts, " ")
}
