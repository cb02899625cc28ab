// Package geometry maps node positions and named attachment points
// ("handles") to absolute canvas coordinates. Everything here is pure.
package geometry

import (
	"image"
	"math"
)

// Shared node footprint in canvas cells. Every node has the same size.
const (
	NodeWidth  = 24
	NodeHeight = 5
)

// HandleRadius is how far (inclusive) a point may be from a handle and
// still count as being on it.
const HandleRadius = 1.0

// Handle names one of the four attachment points on a node's bounding box.
type Handle string

const (
	HandleTop    Handle = "top"
	HandleRight  Handle = "right"
	HandleBottom Handle = "bottom"
	HandleLeft   Handle = "left"
)

// Handles lists every handle. Ties in NearestHandle resolve in this order.
var Handles = []Handle{HandleTop, HandleRight, HandleBottom, HandleLeft}

// Valid reports whether h is one of the four known handles.
func (h Handle) Valid() bool {
	switch h {
	case HandleTop, HandleRight, HandleBottom, HandleLeft:
		return true
	}
	return false
}

// Bounds returns the bounding box of a node whose top-left corner is origin.
func Bounds(origin image.Point) image.Rectangle {
	return image.Rect(origin.X, origin.Y, origin.X+NodeWidth, origin.Y+NodeHeight)
}

// Center returns the centre of a node whose top-left corner is origin.
func Center(origin image.Point) image.Point {
	return image.Pt(origin.X+NodeWidth/2, origin.Y+NodeHeight/2)
}

// HandleCoordinates returns the midpoint of the requested edge of the
// node's bounding box. An unknown handle falls back to the origin.
func HandleCoordinates(origin image.Point, h Handle) image.Point {
	switch h {
	case HandleTop:
		return image.Pt(origin.X+NodeWidth/2, origin.Y)
	case HandleRight:
		return image.Pt(origin.X+NodeWidth, origin.Y+NodeHeight/2)
	case HandleBottom:
		return image.Pt(origin.X+NodeWidth/2, origin.Y+NodeHeight)
	case HandleLeft:
		return image.Pt(origin.X, origin.Y+NodeHeight/2)
	default:
		return origin
	}
}

// Distance is the Euclidean distance between two points.
func Distance(a, b image.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Hypot(dx, dy)
}

// NearestHandle returns the handle of the node at origin closest to pt.
func NearestHandle(origin, pt image.Point) Handle {
	best := Handles[0]
	bestDist := math.Inf(1)
	for _, h := range Handles {
		d := Distance(pt, HandleCoordinates(origin, h))
		if d < bestDist {
			best, bestDist = h, d
		}
	}
	return best
}

// HandleAt reports which handle of the node at origin, if any, lies within
// HandleRadius of pt.
func HandleAt(origin, pt image.Point) (Handle, bool) {
	h := NearestHandle(origin, pt)
	if Distance(pt, HandleCoordinates(origin, h)) <= HandleRadius {
		return h, true
	}
	return "", false
}

// Direction is the outward unit step for a handle; zero for unknown handles.
func Direction(h Handle) image.Point {
	switch h {
	case HandleTop:
		return image.Pt(0, -1)
	case HandleRight:
		return image.Pt(1, 0)
	case HandleBottom:
		return image.Pt(0, 1)
	case HandleLeft:
		return image.Pt(-1, 0)
	}
	return image.Point{}
}
