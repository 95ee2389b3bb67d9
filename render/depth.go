package render

import (
	"image/color"
	"math"
)

// defaultZRange is the absolute relative-depth range in pixel units used
// when rescaling is disabled.  Depth values outside it clamp to the
// gradient ends
const defaultZRange = 200.0

// DepthColor returns the draw color for a point or line at relative depth z.
// When visualize is false the base color is returned unchanged.  Otherwise
// the color is interpolated along the depth gradient keyed by where z falls
// within [zMin, zMax] when rescale is set, or within the fixed absolute
// range otherwise.  An empty or degenerate range falls back to the base
// color so a first sample is never poisoned by unset extrema
func DepthColor(base color.RGBA, z, zMin, zMax float64, visualize, rescale bool) color.RGBA {

	if !visualize {
		return base
	}

	lo, hi := -defaultZRange, defaultZRange

	if rescale {
		lo, hi = zMin, zMax
	}

	den := hi - lo

	if math.IsNaN(den) || math.IsInf(den, 0) || den <= 0 {
		return base
	}

	// a NaN depth cannot be placed in the range, keep the base color
	if math.IsNaN(z) {
		return base
	}

	n := (z - lo) / den

	if n < 0 {
		n = 0
	}
	if n > 1 {
		n = 1
	}

	return gradientAt(n)
}

// gradientAt interpolates the depth gradient at position n in [0,1]
func gradientAt(n float64) color.RGBA {

	segments := len(depthGradient) - 1
	pos := n * float64(segments)
	i := int(pos)

	if i >= segments {
		return depthGradient[segments]
	}

	f := pos - float64(i)
	a := depthGradient[i]
	b := depthGradient[i+1]

	return color.RGBA{
		R: lerpU8(a.R, b.R, f),
		G: lerpU8(a.G, b.G, f),
		B: lerpU8(a.B, b.B, f),
		A: 255,
	}
}

func lerpU8(a, b uint8, f float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*f + 0.5)
}
