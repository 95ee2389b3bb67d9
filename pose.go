package posekit

// Landmark is a single body joint detected in one frame
type Landmark struct {
	// Type is the joint label
	Type LandmarkType
	// X, Y is the screen space position in pixels
	X float32
	Y float32
	// Z is the relative depth in the same pixel scale, smaller values are
	// closer to the camera.  It is not a distance in fixed units
	Z float32
	// Likelihood is the confidence score in [0,1] that the landmark is
	// correctly located and inside the frame
	Likelihood float32
}

// Pose is the full set of landmarks detected in one frame.  It is produced
// once per frame by the pose estimator and only read by the renderer
type Pose struct {
	Landmarks []Landmark
}

// Landmark returns the first landmark of the given type and whether it was
// detected this frame
func (p Pose) Landmark(t LandmarkType) (Landmark, bool) {

	for _, lm := range p.Landmarks {
		if lm.Type == t {
			return lm, true
		}
	}

	return Landmark{}, false
}
