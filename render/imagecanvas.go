package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ImageCanvas implements Canvas on a standard library RGBA image.  It keeps
// the renderer usable and testable without an OpenCV build; text uses the
// fixed size basicfont face so Style.TextSize is ignored
type ImageCanvas struct {
	Img *image.RGBA
}

func (ic ImageCanvas) Height() int {
	return ic.Img.Bounds().Dy()
}

func (ic ImageCanvas) Text(s string, x, y float64, style Style) {

	dr := &font.Drawer{
		Dst:  ic.Img,
		Src:  image.NewUniform(style.Color),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(x), int(y)),
	}

	dr.DrawString(s)
}

func (ic ImageCanvas) Circle(x, y, radius float64, style Style) {

	if style.Filled {
		r2 := radius * radius
		ri := int(math.Ceil(radius))

		for dy := -ri; dy <= ri; dy++ {
			for dx := -ri; dx <= ri; dx++ {
				if float64(dx*dx+dy*dy) <= r2 {
					ic.set(int(x)+dx, int(y)+dy, style.Color)
				}
			}
		}

		return
	}

	// stroke the outline by sampling one degree steps
	for deg := 0; deg < 360; deg++ {
		rad := float64(deg) * math.Pi / 180
		px := x + radius*math.Cos(rad)
		py := y + radius*math.Sin(rad)
		ic.brush(px, py, style)
	}
}

func (ic ImageCanvas) Line(x1, y1, x2, y2 float64, style Style) {

	dx := x2 - x1
	dy := y2 - y1
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))

	if steps == 0 {
		ic.brush(x1, y1, style)
		return
	}

	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		ic.brush(x1+dx*f, y1+dy*f, style)
	}
}

// Arc strokes the arc as a polyline sampled in one degree steps, in the y
// down clockwise convention
func (ic ImageCanvas) Arc(bounds Rect, startAngle, sweep float64, style Style) {

	cx := (bounds.X0 + bounds.X1) / 2
	cy := (bounds.Y0 + bounds.Y1) / 2
	rx := (bounds.X1 - bounds.X0) / 2
	ry := (bounds.Y1 - bounds.Y0) / 2

	steps := int(math.Abs(sweep))

	if steps < 1 {
		steps = 1
	}

	for i := 0; i <= steps; i++ {
		deg := startAngle + sweep*float64(i)/float64(steps)
		rad := deg * math.Pi / 180
		ic.brush(cx+rx*math.Cos(rad), cy+ry*math.Sin(rad), style)
	}
}

// brush plots a square of the style's thickness centered at (x, y)
func (ic ImageCanvas) brush(x, y float64, style Style) {

	half := style.Thickness / 2

	if half < 0 {
		half = 0
	}

	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			ic.set(int(x)+dx, int(y)+dy, style.Color)
		}
	}
}

func (ic ImageCanvas) set(x, y int, clr color.RGBA) {

	if !image.Pt(x, y).In(ic.Img.Bounds()) {
		return
	}

	ic.Img.SetRGBA(x, y, clr)
}
