package drawutil

import (
	"image"

	"github.com/wesen/studio/pkg/cellbuf"
)

// DrawGrid puts a '·' on every plane point whose coordinates are
// multiples of spacing, over the region the buffer currently shows.
// A zero spacing component disables the grid.
func DrawGrid(buf *cellbuf.Buffer, spacing image.Point, style cellbuf.StyleKey) {
	if spacing.X <= 0 || spacing.Y <= 0 {
		return
	}
	r := buf.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		if mod(y, spacing.Y) != 0 {
			continue
		}
		for x := r.Min.X; x < r.Max.X; x++ {
			if mod(x, spacing.X) == 0 {
				buf.Set(image.Pt(x, y), '·', style)
			}
		}
	}
}

// mod returns a non-negative modulus (Go's % can return negative for negative operands).
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
