package render

import (
	"image/color"
)

// Rect is an axis aligned bounding box in screen space
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// RectAround returns the square bounding box of the given half size
// centered at (x, y)
func RectAround(x, y, half float64) Rect {
	return Rect{X0: x - half, Y0: y - half, X1: x + half, Y1: y + half}
}

// Style defines the visual attributes for a single draw call
type Style struct {
	Color color.RGBA
	// Thickness is the stroke width in pixels for lines, arcs and
	// unfilled circles
	Thickness int
	// Filled renders circles filled instead of stroked
	Filled bool
	// TextSize is the text height in pixels
	TextSize float64
}

// Canvas is the set of primitive draw operations the overlay renderer
// depends on.  Backends implement it against their native graphics API.
//
// Angles follow the screen convention: degrees increase clockwise from the
// positive x axis since y grows downward.
type Canvas interface {
	// Height returns the surface height in pixels
	Height() int
	// Text draws s with its baseline origin at (x, y)
	Text(s string, x, y float64, style Style)
	// Circle draws a circle of the given radius centered at (x, y)
	Circle(x, y, radius float64, style Style)
	// Line draws a line segment between the two points
	Line(x1, y1, x2, y2 float64, style Style)
	// Arc strokes the elliptical arc inscribed in bounds, starting at
	// startAngle degrees and sweeping through sweep degrees clockwise
	Arc(bounds Rect, startAngle, sweep float64, style Style)
}

// Mapper translates model space coordinates from the pose estimator into
// screen space pixels of the target surface
type Mapper struct {
	TranslateX func(x float64) float64
	TranslateY func(y float64) float64
}

// IdentityMapper returns a Mapper that leaves coordinates unchanged, for
// surfaces matching the estimator's frame size
func IdentityMapper() Mapper {
	same := func(v float64) float64 { return v }
	return Mapper{TranslateX: same, TranslateY: same}
}
