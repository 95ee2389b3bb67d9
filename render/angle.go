package render

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// InteriorAngle returns the angle in degrees at vertex B between the rays
// BA and BC, using screen space x,y only.  The cosine is clamped to [-1,1]
// so colinear points survive floating point rounding.  A zero length ray
// has an undefined angle and yields NaN, which callers pass through
func InteriorAngle(ax, ay, bx, by, cx, cy float64) float64 {

	ba := []float64{ax - bx, ay - by}
	bc := []float64{cx - bx, cy - by}

	cos := floats.Dot(ba, bc) / (floats.Norm(ba, 2) * floats.Norm(bc, 2))

	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}

	return math.Acos(cos) * 180 / math.Pi
}

// ArcSpec describes the arc glyph that visualizes a joint angle
type ArcSpec struct {
	// Bounds is the square box the arc's ellipse is inscribed in,
	// centered on the joint vertex
	Bounds Rect
	// StartAngle is the arc's start in degrees, measured clockwise from
	// the positive x axis in the y down screen convention
	StartAngle float64
	// Sweep is the arc extent in degrees, clockwise, passed through
	// un-normalized
	Sweep float64
}

// AngleArc computes the arc glyph for an angle at vertex B, with A the far
// end of the reference ray.  Both points are screen space.  The radius is
// half the distance between the two points and the arc starts along the
// B to A direction
func AngleArc(ax, ay, bx, by, sweep float64) ArcSpec {

	radius := math.Hypot(ax-bx, ay-by) / 2
	start := math.Atan2(ay-by, ax-bx) * 180 / math.Pi

	return ArcSpec{
		Bounds:     RectAround(bx, by, radius),
		StartAngle: start,
		Sweep:      sweep,
	}
}
