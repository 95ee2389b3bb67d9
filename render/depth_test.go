package render

import (
	"math"
	"testing"
)

func TestDepthColorDisabled(t *testing.T) {

	got := DepthColor(Green, 50, 0, 100, false, false)

	if got != Green {
		t.Errorf("expected base color when visualization disabled, got %v", got)
	}
}

func TestDepthColorUnsetExtrema(t *testing.T) {

	// extrema never folded: range is (+Inf, -Inf), base color applies
	got := DepthColor(White, 0.5, math.Inf(1), math.Inf(-1), true, true)

	if got != White {
		t.Errorf("expected base color for unset extrema, got %v", got)
	}
}

func TestDepthColorDegenerateRange(t *testing.T) {

	got := DepthColor(White, 5, 5, 5, true, true)

	if got != White {
		t.Errorf("expected base color for zero width range, got %v", got)
	}
}

func TestDepthColorNaNDepth(t *testing.T) {

	// half precision tensors can decode to NaN depths, which must keep
	// the base color rather than fault the gradient lookup
	got := DepthColor(White, math.NaN(), -1, 1, true, true)

	if got != White {
		t.Errorf("expected base color for NaN depth, got %v", got)
	}

	// same for the fixed absolute range path
	got = DepthColor(Green, math.NaN(), 0, 0, true, false)

	if got != Green {
		t.Errorf("expected base color for NaN depth, got %v", got)
	}
}

func TestDepthColorRescaledEndpoints(t *testing.T) {

	near := DepthColor(White, -1, -1, 1, true, true)

	if near != depthGradient[0] {
		t.Errorf("expected nearest gradient stop %v, got %v", depthGradient[0], near)
	}

	far := DepthColor(White, 1, -1, 1, true, true)

	last := depthGradient[len(depthGradient)-1]

	if far != last {
		t.Errorf("expected farthest gradient stop %v, got %v", last, far)
	}
}

func TestDepthColorClamped(t *testing.T) {

	// values outside the range clamp to the gradient ends
	below := DepthColor(White, -100, -1, 1, true, true)

	if below != depthGradient[0] {
		t.Errorf("expected nearest stop for out of range depth, got %v", below)
	}

	above := DepthColor(White, 100, -1, 1, true, true)

	last := depthGradient[len(depthGradient)-1]

	if above != last {
		t.Errorf("expected farthest stop for out of range depth, got %v", above)
	}
}

func TestDepthColorAbsoluteRange(t *testing.T) {

	// with rescaling off the fixed absolute range applies and the
	// extrema arguments are ignored
	got := DepthColor(White, -defaultZRange, 7, 9, true, false)

	if got != depthGradient[0] {
		t.Errorf("expected nearest gradient stop, got %v", got)
	}
}

func TestGradientMidpoint(t *testing.T) {

	// the gradient has an odd number of stops so 0.5 lands on the middle
	got := gradientAt(0.5)

	mid := depthGradient[len(depthGradient)/2]

	if got != mid {
		t.Errorf("expected middle stop %v, got %v", mid, got)
	}
}
