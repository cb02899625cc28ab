// Package graphmodel provides a generic spatial graph with positioned nodes,
// edges carrying caller data, stable insertion order, hit testing, and
// value snapshots for undo history.
package graphmodel

import "image"

// Spatial is the minimal interface for a positioned, sized element.
type Spatial interface {
	Pos() image.Point
	Size() image.Point
}

// BoundsOf returns the rectangle a Spatial element covers. Hit tests and
// viewport queries both use it.
func BoundsOf(s Spatial) image.Rectangle {
	p := s.Pos()
	sz := s.Size()
	return image.Rect(p.X, p.Y, p.X+sz.X, p.Y+sz.Y)
}
