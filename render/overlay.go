package render

import (
	"fmt"
	"image"
	"math"

	"github.com/posekit/posekit"
)

const (
	dotRadius              = 8.0
	strokeWidth            = 10
	likelihoodTextSize     = 30.0
	classificationTextSize = 60.0
	arcThickness           = 5
	regionThickness        = 2
	// regionInflate is how far the highlight outline sits outside the
	// tracked joint polygon
	regionInflate = dotRadius * 2
)

// trackedJoints are the joints the overlay marks with dots and measures
// the shoulder angle across
var trackedJoints = [3]posekit.LandmarkType{
	posekit.LeftShoulder,
	posekit.LeftElbow,
	posekit.LeftHip,
}

// Config holds the display options for one overlay
type Config struct {
	// ShowLikelihood draws each landmark's in frame likelihood score
	// beside its position
	ShowLikelihood bool
	// VisualizeZ modulates point and line colors by relative depth
	VisualizeZ bool
	// RescaleZ keys the depth coloring to the depth range observed over
	// the tracked joints in this render pass, instead of the fixed
	// absolute range
	RescaleZ bool
	// ShowRegion draws an inflated outline around the tracked joints
	ShowRegion bool
	// Classifications are activity labels drawn bottom anchored, most
	// recent last
	Classifications []string
	// Mapper translates model space coordinates to screen space.  When
	// left zero an identity mapping is used
	Mapper Mapper
}

// Overlay draws one frame's pose estimation result onto a Canvas.  Build a
// fresh Overlay per frame; instances are not safe for concurrent use
type Overlay struct {
	pose posekit.Pose
	cfg  Config

	classificationStyle Style
	whiteStyle          Style
	leftStyle           Style
}

// NewOverlay returns an Overlay for the given pose and display options
func NewOverlay(pose posekit.Pose, cfg Config) *Overlay {

	if cfg.Mapper.TranslateX == nil || cfg.Mapper.TranslateY == nil {
		cfg.Mapper = IdentityMapper()
	}

	return &Overlay{
		pose: pose,
		cfg:  cfg,
		classificationStyle: Style{
			Color:    White,
			TextSize: classificationTextSize,
		},
		whiteStyle: Style{
			Color:     White,
			Thickness: strokeWidth,
			Filled:    true,
			TextSize:  likelihoodTextSize,
		},
		leftStyle: Style{
			Color:     Green,
			Thickness: strokeWidth,
		},
	}
}

// Render issues the overlay's draw calls against the canvas.  A pose with
// no landmarks renders nothing.  If any of the tracked joints is missing
// the skeletal lines, angle and arc are skipped while classification text
// and dots already drawn remain
func (o *Overlay) Render(c Canvas) {

	lms := o.pose.Landmarks

	if len(lms) == 0 {
		return
	}

	o.drawClassifications(c)

	// depth extrema are scoped to this render pass.  Dots are colored
	// with the extrema folded so far, lines with the final extrema
	zMin := math.Inf(1)
	zMax := math.Inf(-1)

	for _, lm := range lms {

		if !isTracked(lm.Type) {
			continue
		}

		o.drawPoint(c, lm, zMin, zMax)

		// skip non-finite depths so they don't poison the extrema
		if o.cfg.VisualizeZ && o.cfg.RescaleZ && isFinite(float64(lm.Z)) {
			zMin = math.Min(zMin, float64(lm.Z))
			zMax = math.Max(zMax, float64(lm.Z))
		}
	}

	shoulder, okS := o.pose.Landmark(posekit.LeftShoulder)
	elbow, okE := o.pose.Landmark(posekit.LeftElbow)
	hip, okH := o.pose.Landmark(posekit.LeftHip)

	if !okS || !okE || !okH {
		return
	}

	if o.cfg.ShowRegion {
		o.drawRegion(c, shoulder, elbow, hip)
	}

	// left body
	o.drawLine(c, shoulder, elbow, zMin, zMax)
	o.drawLine(c, shoulder, hip, zMin, zMax)

	// interior angle at the shoulder between the elbow and hip rays,
	// computed on model space positions
	angle := InteriorAngle(
		float64(elbow.X), float64(elbow.Y),
		float64(shoulder.X), float64(shoulder.Y),
		float64(hip.X), float64(hip.Y),
	)

	arc := AngleArc(
		o.tx(elbow.X), o.ty(elbow.Y),
		o.tx(shoulder.X), o.ty(shoulder.Y),
		angle,
	)

	// the arc outline style is fixed and never depth modulated
	arcStyle := Style{Color: Black, Thickness: arcThickness}
	c.Arc(arc.Bounds, arc.StartAngle, arc.Sweep, arcStyle)

	c.Text(fmt.Sprintf("%.0f", angle),
		o.tx(shoulder.X), o.ty(shoulder.Y), o.whiteStyle)

	if o.cfg.ShowLikelihood {
		for _, lm := range lms {
			c.Text(fmt.Sprintf("%.2f", lm.Likelihood),
				o.tx(lm.X), o.ty(lm.Y), o.whiteStyle)
		}
	}
}

// drawClassifications stacks the classification labels upward from the
// bottom of the canvas at a small left margin
func (o *Overlay) drawClassifications(c Canvas) {

	x := classificationTextSize * 0.5
	n := len(o.cfg.Classifications)

	for i, label := range o.cfg.Classifications {
		y := float64(c.Height()) - classificationTextSize*1.5*float64(n-i)
		c.Text(label, x, y, o.classificationStyle)
	}
}

// drawPoint draws a filled dot at the landmark's translated position
func (o *Overlay) drawPoint(c Canvas, lm posekit.Landmark, zMin, zMax float64) {

	style := o.whiteStyle
	style.Color = DepthColor(style.Color, float64(lm.Z), zMin, zMax,
		o.cfg.VisualizeZ, o.cfg.RescaleZ)

	c.Circle(o.tx(lm.X), o.ty(lm.Y), dotRadius, style)
}

// drawLine draws a skeletal line between two landmarks, depth modulated by
// the average z of its endpoints
func (o *Overlay) drawLine(c Canvas, a, b posekit.Landmark, zMin, zMax float64) {

	avgZ := float64(a.Z+b.Z) / 2

	style := o.leftStyle
	style.Color = DepthColor(style.Color, avgZ, zMin, zMax,
		o.cfg.VisualizeZ, o.cfg.RescaleZ)

	c.Line(o.tx(a.X), o.ty(a.Y), o.tx(b.X), o.ty(b.Y), style)
}

// drawRegion draws the inflated highlight outline around the tracked
// joint polygon as a closed line loop
func (o *Overlay) drawRegion(c Canvas, joints ...posekit.Landmark) {

	pts := make([]image.Point, 0, len(joints))

	for _, lm := range joints {
		pts = append(pts, image.Pt(int(o.tx(lm.X)), int(o.ty(lm.Y))))
	}

	outline := InflateRegion(pts, regionInflate)

	if len(outline) < 2 {
		return
	}

	style := Style{Color: Yellow, Thickness: regionThickness}

	for i := 1; i <= len(outline); i++ {
		p0 := outline[i-1]
		p1 := outline[i%len(outline)]
		c.Line(float64(p0.X), float64(p0.Y), float64(p1.X), float64(p1.Y), style)
	}
}

func (o *Overlay) tx(x float32) float64 {
	return o.cfg.Mapper.TranslateX(float64(x))
}

func (o *Overlay) ty(y float32) float64 {
	return o.cfg.Mapper.TranslateY(float64(y))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isTracked(t posekit.LandmarkType) bool {

	for _, j := range trackedJoints {
		if t == j {
			return true
		}
	}

	return false
}
