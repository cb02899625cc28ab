package drawutil

import (
	"image"

	"github.com/wesen/studio/pkg/cellbuf"
)

// pointChar returns the line character for a point based on its local
// direction (looking at the next or previous point).
func pointChar(pts []image.Point, i int) rune {
	var d image.Point
	if i < len(pts)-1 {
		d = pts[i+1].Sub(pts[i])
	} else if i > 0 {
		d = pts[i].Sub(pts[i-1])
	}
	return LineChar(d.X, d.Y)
}

// DrawDashedLine draws a line with every third point skipped. It marks
// connections that are still being drawn.
func DrawDashedLine(buf *cellbuf.Buffer, from, to image.Point, style cellbuf.StyleKey) {
	pts := Bresenham(from.X, from.Y, to.X, to.Y)
	for i, p := range pts {
		if i%3 != 2 {
			buf.Set(p, pointChar(pts, i), style)
		}
	}
}

// DrawRoute draws a polyline through pts with rounded corners at each
// interior vertex and an arrowhead on the last point.
func DrawRoute(buf *cellbuf.Buffer, pts []image.Point, lineStyle, arrowStyle cellbuf.StyleKey) {
	if len(pts) < 2 {
		return
	}
	var dir image.Point
	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		next := sign(b.Sub(a))
		if i == 0 {
			buf.Set(a, LineChar(next.X, next.Y), lineStyle)
		} else {
			buf.Set(a, CornerChar(dir, next), lineStyle)
		}
		seg := Bresenham(a.X, a.Y, b.X, b.Y)
		for j := 1; j < len(seg)-1; j++ {
			buf.Set(seg[j], pointChar(seg, j), lineStyle)
		}
		dir = next
	}
	buf.Set(pts[len(pts)-1], ArrowChar(dir.X, dir.Y), arrowStyle)
}
