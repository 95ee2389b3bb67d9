package posekit

import (
	"fmt"
	"math"

	"github.com/x448/float16"
)

// halfToFloat maps every raw half precision bit pattern to its float32
// value, so decoding a landmark tensor never branches per value
var halfToFloat [1 << 16]float32

func init() {
	for bits := range halfToFloat {
		halfToFloat[bits] = float16.Frombits(uint16(bits)).Float32()
	}
}

// landmarkStride is the number of values per landmark in the raw tensor:
// normalized x, y, z followed by the visibility and presence logits
const landmarkStride = 5

// DecodeLandmarksF32 converts a raw float32 landmark tensor into a Pose.
// The tensor holds NumLandmarks points of landmarkStride values each, with
// x and y normalized to [0,1] relative to the model input frame.  Positions
// are scaled into pixel space of a width x height frame and z is scaled by
// the frame width, keeping depth in the same pixel scale as x
func DecodeLandmarksF32(buf []float32, width, height int) (Pose, error) {

	if len(buf) != NumLandmarks*landmarkStride {
		return Pose{}, fmt.Errorf("landmark tensor has %d values, want %d",
			len(buf), NumLandmarks*landmarkStride)
	}

	lms := make([]Landmark, NumLandmarks)

	for i := 0; i < NumLandmarks; i++ {
		off := i * landmarkStride

		lms[i] = Landmark{
			Type:       LandmarkType(i),
			X:          buf[off] * float32(width),
			Y:          buf[off+1] * float32(height),
			Z:          buf[off+2] * float32(width),
			Likelihood: sigmoid(buf[off+3]),
		}
	}

	return Pose{Landmarks: lms}, nil
}

// DecodeLandmarksF16 converts a raw half precision landmark tensor into a
// Pose.  Models exported with float16 output write each value as the raw
// 16 bit pattern, converted here through the precomputed lookup table
func DecodeLandmarksF16(buf []uint16, width, height int) (Pose, error) {

	if len(buf) != NumLandmarks*landmarkStride {
		return Pose{}, fmt.Errorf("landmark tensor has %d values, want %d",
			len(buf), NumLandmarks*landmarkStride)
	}

	f32 := make([]float32, len(buf))

	for i, bits := range buf {
		f32[i] = halfToFloat[bits]
	}

	return DecodeLandmarksF32(f32, width, height)
}

// sigmoid maps the visibility logit to a likelihood in [0,1]
func sigmoid(x float32) float32 {
	return float32(1.0 / (1.0 + math.Exp(-float64(x))))
}
