package css

import "strconv"

// Unit is a CSS length unit.
type Unit uint8

const (
	UnitPx Unit = iota
	UnitPt
	UnitEm
	UnitCm
	UnitMm
	UnitIn
	UnitPc
	UnitCh
	UnitRem
	UnitVw
	UnitVh
	UnitVmin
	UnitVmax
	UnitPerc
)

// String returns the literal suffix appended to a magnitude.
func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitPt:
		return "pt"
	case UnitEm:
		return "em"
	case UnitCm:
		return "cm"
	case UnitMm:
		return "mm"
	case UnitIn:
		return "in"
	case UnitPc:
		return "pc"
	case UnitCh:
		return "ch"
	case UnitRem:
		return "rem"
	case UnitVw:
		return "vw"
	case UnitVh:
		return "vh"
	case UnitVmin:
		return "vmin"
	case UnitVmax:
		return "vmax"
	case UnitPerc:
		return "%"
	default:
		return ""
	}
}

// Size is a CSS length: a magnitude and the unit it is expressed in.
type Size struct {
	Value float64
	Unit  Unit
}

// String concatenates the magnitude and the unit suffix.
func (s Size) String() string {
	return strconv.FormatFloat(s.Value, 'f', -1, 64) + s.Unit.String()
}

// IsPerc reports whether the size is expressed in percent.
func (s Size) IsPerc() bool {
	return s.Unit == UnitPerc
}

// Px returns a size in pixels.
func Px(v float64) Size { return Size{Value: v, Unit: UnitPx} }

// Pt returns a size in points.
func Pt(v float64) Size { return Size{Value: v, Unit: UnitPt} }

// Em returns a size relative to the element font size.
func Em(v float64) Size { return Size{Value: v, Unit: UnitEm} }

// Rem returns a size relative to the root font size.
func Rem(v float64) Size { return Size{Value: v, Unit: UnitRem} }

// Perc returns a size in percent.
func Perc(v float64) Size { return Size{Value: v, Unit: UnitPerc} }

// Vw returns a size relative to the viewport width.
func Vw(v float64) Size { return Size{Value: v, Unit: UnitVw} }

// Vh returns a size relative to the viewport height.
func Vh(v float64) Size { return Size{Value: v, Unit: UnitVh} }

// Of returns a size with an explicit unit.
func Of(v float64, u Unit) Size { return Size{Value: v, Unit: u} }
