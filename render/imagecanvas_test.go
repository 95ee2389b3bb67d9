package render

import (
	"image"
	"testing"
)

func newTestCanvas(w, h int) ImageCanvas {
	return ImageCanvas{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func TestImageCanvasHeight(t *testing.T) {

	c := newTestCanvas(320, 240)

	if c.Height() != 240 {
		t.Errorf("expected height 240, got %d", c.Height())
	}
}

func TestImageCanvasLine(t *testing.T) {

	c := newTestCanvas(100, 100)

	c.Line(10, 50, 90, 50, Style{Color: Green, Thickness: 1})

	// midpoint of the segment must be painted
	if got := c.Img.RGBAAt(50, 50); got != Green {
		t.Errorf("expected midpoint pixel %v, got %v", Green, got)
	}

	// a pixel off the segment stays untouched
	if got := c.Img.RGBAAt(50, 60); got.A != 0 {
		t.Errorf("expected untouched pixel, got %v", got)
	}
}

func TestImageCanvasFilledCircle(t *testing.T) {

	c := newTestCanvas(100, 100)

	c.Circle(50, 50, 10, Style{Color: White, Filled: true})

	if got := c.Img.RGBAAt(50, 50); got != White {
		t.Errorf("expected filled center pixel, got %v", got)
	}

	if got := c.Img.RGBAAt(50, 58); got != White {
		t.Errorf("expected pixel inside radius painted, got %v", got)
	}

	if got := c.Img.RGBAAt(50, 65); got.A != 0 {
		t.Errorf("expected pixel outside radius untouched, got %v", got)
	}
}

func TestImageCanvasStrokedCircle(t *testing.T) {

	c := newTestCanvas(100, 100)

	c.Circle(50, 50, 10, Style{Color: White, Thickness: 1})

	// center stays empty for a stroked circle
	if got := c.Img.RGBAAt(50, 50); got.A != 0 {
		t.Errorf("expected hollow center, got %v", got)
	}

	// rightmost point of the ring is painted
	if got := c.Img.RGBAAt(60, 50); got != White {
		t.Errorf("expected ring pixel painted, got %v", got)
	}
}

func TestImageCanvasArc(t *testing.T) {

	c := newTestCanvas(100, 100)

	// quarter sweep from the positive x axis, clockwise in the y down
	// convention: passes through the bottom of the bounding circle
	c.Arc(RectAround(50, 50, 20), 0, 90, Style{Color: White, Thickness: 1})

	if got := c.Img.RGBAAt(70, 50); got != White {
		t.Errorf("expected arc start pixel painted, got %v", got)
	}

	if got := c.Img.RGBAAt(50, 70); got != White {
		t.Errorf("expected arc end pixel painted, got %v", got)
	}

	// the top of the circle is outside the sweep
	if got := c.Img.RGBAAt(50, 30); got.A != 0 {
		t.Errorf("expected pixel outside sweep untouched, got %v", got)
	}
}

func TestImageCanvasText(t *testing.T) {

	c := newTestCanvas(100, 100)

	c.Text("90", 10, 50, Style{Color: White, TextSize: 30})

	var painted int

	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if c.Img.RGBAAt(x, y) == White {
				painted++
			}
		}
	}

	if painted == 0 {
		t.Error("expected text to paint pixels")
	}
}

func TestImageCanvasClipsOutOfBounds(t *testing.T) {

	c := newTestCanvas(50, 50)

	// drawing past the edges must not panic
	c.Line(-20, -20, 100, 100, Style{Color: White, Thickness: 3})
	c.Circle(0, 0, 30, Style{Color: White, Filled: true})
}
