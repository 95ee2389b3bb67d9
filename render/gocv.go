package render

import (
	"image"

	"gocv.io/x/gocv"
)

// hersheyUnitHeight approximates the pixel height of Hershey simplex text
// at scale 1.0, used to map Style.TextSize to a font scale
const hersheyUnitHeight = 22.0

// MatCanvas implements Canvas on a gocv Mat so overlays draw directly onto
// OpenCV video frames
type MatCanvas struct {
	Mat *gocv.Mat
}

func (m MatCanvas) Height() int {
	return m.Mat.Rows()
}

func (m MatCanvas) Text(s string, x, y float64, style Style) {
	scale := style.TextSize / hersheyUnitHeight
	gocv.PutTextWithParams(m.Mat, s, image.Pt(int(x), int(y)),
		gocv.FontHersheySimplex, scale, style.Color, textThickness(style),
		gocv.LineAA, false)
}

// textThickness maps a style's stroke width to a PutText thickness, which
// must be at least one
func textThickness(style Style) int {

	if style.Thickness < 1 {
		return 1
	}

	return style.Thickness
}

func (m MatCanvas) Circle(x, y, radius float64, style Style) {

	thickness := style.Thickness

	if style.Filled {
		thickness = -1
	}

	gocv.Circle(m.Mat, image.Pt(int(x), int(y)), int(radius),
		style.Color, thickness)
}

func (m MatCanvas) Line(x1, y1, x2, y2 float64, style Style) {
	gocv.Line(m.Mat, image.Pt(int(x1), int(y1)), image.Pt(int(x2), int(y2)),
		style.Color, style.Thickness)
}

// Arc strokes an elliptical arc.  OpenCV's ellipse uses the same y down
// clockwise angle convention the Canvas contract specifies, so angles pass
// straight through
func (m MatCanvas) Arc(bounds Rect, startAngle, sweep float64, style Style) {

	center := image.Pt(int((bounds.X0+bounds.X1)/2), int((bounds.Y0+bounds.Y1)/2))
	axes := image.Pt(int((bounds.X1-bounds.X0)/2), int((bounds.Y1-bounds.Y0)/2))

	gocv.EllipseWithParams(m.Mat, center, axes, 0, startAngle,
		startAngle+sweep, style.Color, style.Thickness, gocv.LineAA, 0)
}
