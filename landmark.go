package posekit

// LandmarkType identifies a body joint in the BlazePose 33 point topology
type LandmarkType int

const (
	Nose LandmarkType = iota
	LeftEyeInner
	LeftEye
	LeftEyeOuter
	RightEyeInner
	RightEye
	RightEyeOuter
	LeftEar
	RightEar
	MouthLeft
	MouthRight
	LeftShoulder
	RightShoulder
	LeftElbow
	RightElbow
	LeftWrist
	RightWrist
	LeftPinky
	RightPinky
	LeftIndex
	RightIndex
	LeftThumb
	RightThumb
	LeftHip
	RightHip
	LeftKnee
	RightKnee
	LeftAnkle
	RightAnkle
	LeftHeel
	RightHeel
	LeftFootIndex
	RightFootIndex
)

// NumLandmarks is the number of keypoints in the BlazePose topology
const NumLandmarks = 33

var landmarkNames = [NumLandmarks]string{
	"nose",
	"left_eye_inner", "left_eye", "left_eye_outer",
	"right_eye_inner", "right_eye", "right_eye_outer",
	"left_ear", "right_ear",
	"mouth_left", "mouth_right",
	"left_shoulder", "right_shoulder",
	"left_elbow", "right_elbow",
	"left_wrist", "right_wrist",
	"left_pinky", "right_pinky",
	"left_index", "right_index",
	"left_thumb", "right_thumb",
	"left_hip", "right_hip",
	"left_knee", "right_knee",
	"left_ankle", "right_ankle",
	"left_heel", "right_heel",
	"left_foot_index", "right_foot_index",
}

// ParseLandmarkType returns the landmark type for its snake case name
func ParseLandmarkType(name string) (LandmarkType, bool) {

	for i, n := range landmarkNames {
		if n == name {
			return LandmarkType(i), true
		}
	}

	return 0, false
}

// String returns the snake case name of the landmark type as used by the
// upstream model's card
func (t LandmarkType) String() string {
	if t < 0 || int(t) >= len(landmarkNames) {
		return "unknown"
	}
	return landmarkNames[t]
}
