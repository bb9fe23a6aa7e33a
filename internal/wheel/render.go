package wheel

import (
	"image/color"
	"math"
)

const (
	// RimMargin is the gap between the wheel and the edge of its surface.
	RimMargin = 20
	// LabelInset is how far a label's right edge sits inside the rim.
	LabelInset = 20
	// LabelBaseline nudges labels down so they sit centred on the mid-angle.
	LabelBaseline = 5

	LabelFontSize       = 16
	PlaceholderFontSize = 20
	PlaceholderText     = "Add names to begin"
)

// Align is the horizontal anchor of a label relative to its origin.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Label is text drawn in a frame translated to (OriginX, OriginY) and
// rotated by Angle, at local offset (X, Y). Y is the baseline.
type Label struct {
	Text     string
	OriginX  float64
	OriginY  float64
	Angle    float64
	X        float64
	Y        float64
	Align    Align
	FontSize float64
	Color    color.Color
}

// Surface is the 2D drawing target the wheel is rendered onto.
type Surface interface {
	Size() (width, height float64)
	FillWedge(cx, cy, radius, start, end float64, fill color.Color)
	FillCircle(cx, cy, radius float64, fill color.Color)
	DrawLabel(l Label)
}

// Frame holds everything a single render needs.
type Frame struct {
	Names      []string
	Rotation   float64
	WheelColor color.Color
	TextColor  color.Color
}

// Geometry returns the wheel center and radius for a surface of the given size.
func Geometry(width, height float64) (cx, cy, radius float64) {
	cx, cy = width/2, height/2
	radius = math.Min(cx, cy) - RimMargin
	if radius < 0 {
		radius = 0
	}
	return cx, cy, radius
}

// Render draws f onto s.
func Render(s Surface, f Frame) {
	cx, cy, radius := Geometry(s.Size())

	if len(f.Names) == 0 {
		s.FillCircle(cx, cy, radius, f.WheelColor)
		s.DrawLabel(Label{
			Text:     PlaceholderText,
			OriginX:  cx,
			OriginY:  cy,
			Align:    AlignCenter,
			FontSize: PlaceholderFontSize,
			Color:    f.TextColor,
		})
		return
	}

	for _, sl := range Slices(len(f.Names), f.Rotation) {
		s.FillWedge(cx, cy, radius, sl.Start, sl.End, f.WheelColor)
		s.DrawLabel(Label{
			Text:     f.Names[sl.Index],
			OriginX:  cx,
			OriginY:  cy,
			Angle:    sl.Mid(),
			X:        radius - LabelInset,
			Y:        LabelBaseline,
			Align:    AlignEnd,
			FontSize: LabelFontSize,
			Color:    f.TextColor,
		})
	}
}
