package render

import (
	"image"

	clipper "github.com/ctessum/go.clipper"
)

// InflateRegion offsets a closed polygon outward by distance pixels using
// round joins, producing the highlight outline drawn around a joint group.
// Returns nil when fewer than three points are given or the offset yields
// no solution
func InflateRegion(pts []image.Point, distance float64) []image.Point {

	if len(pts) < 3 {
		return nil
	}

	// Clipper offsets outward only for positively oriented paths
	if signedArea(pts) < 0 {
		rev := make([]image.Point, len(pts))
		for i, pt := range pts {
			rev[len(pts)-1-i] = pt
		}
		pts = rev
	}

	// convert the points to a Clipper Path
	var path clipper.Path

	for _, pt := range pts {
		path = append(path, &clipper.IntPoint{
			X: clipper.CInt(pt.X),
			Y: clipper.CInt(pt.Y),
		})
	}

	// create a ClipperOffset object and add the path
	co := clipper.NewClipperOffset()
	co.AddPath(path, clipper.JtRound, clipper.EtClosedPolygon)

	// execute the offset operation
	solution := co.Execute(distance)

	var points []image.Point

	for _, sol := range solution {
		for _, pt := range sol {
			points = append(points, image.Point{X: int(pt.X), Y: int(pt.Y)})
		}
	}

	return points
}

// signedArea returns twice the shoelace area of the polygon
func signedArea(pts []image.Point) int {

	var area int

	for i := 0; i < len(pts); i++ {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}

	return area
}
