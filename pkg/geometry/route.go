package geometry

import "image"

// RouteStub is how far a routed path travels straight out of a handle
// before it turns.
const RouteStub = 2

// Route returns an orthogonal polyline from one handle to another. The
// path leaves from along fromHandle's outward direction, enters to along
// toHandle's outward direction, and joins the two stubs with one elbow.
// Consecutive duplicate points are removed.
func Route(from image.Point, fromHandle Handle, to image.Point, toHandle Handle) []image.Point {
	a := from.Add(Direction(fromHandle).Mul(RouteStub))
	b := to.Add(Direction(toHandle).Mul(RouteStub))

	// Turn where the first stub's axis meets the second stub's end.
	var elbow image.Point
	if fromHandle == HandleLeft || fromHandle == HandleRight {
		elbow = image.Pt(b.X, a.Y)
	} else {
		elbow = image.Pt(a.X, b.Y)
	}

	pts := []image.Point{from, a, elbow, b, to}
	out := pts[:1]
	for _, p := range pts[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}
