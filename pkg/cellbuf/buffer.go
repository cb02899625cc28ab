// Package cellbuf provides a 2D character buffer with per-cell styling
// and run-merging Lipgloss rendering.
//
// A Buffer is a window onto an unbounded integer plane: Origin is the
// plane coordinate shown in the top-left cell, and every drawing call
// takes plane coordinates. Panning a view is just moving Origin.
//
// Each cell holds a rune and a StyleKey. At render time the caller maps
// StyleKeys to lipgloss styles, so the buffer knows nothing of colors.
//
// Limitation: all runes are assumed to be single-width.
package cellbuf

import "image"

// StyleKey identifies a visual style.
type StyleKey int

// Cell is a single character with an associated style.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Buffer is a W×H grid of styled cells.
type Buffer struct {
	W, H   int
	Origin image.Point
	cells  []Cell // row-major
	bg     StyleKey
}

// New creates a Buffer of the given size filled with spaces in style bg.
// Negative sizes are treated as zero.
func New(w, h int, bg StyleKey) *Buffer {
	w, h = max(w, 0), max(h, 0)
	b := &Buffer{W: w, H: h, cells: make([]Cell, w*h), bg: bg}
	b.Fill(bg)
	return b
}

// Bounds returns the visible region in plane coordinates.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rectangle{Min: b.Origin, Max: b.Origin.Add(image.Pt(b.W, b.H))}
}

func (b *Buffer) index(p image.Point) (int, bool) {
	q := p.Sub(b.Origin)
	if q.X < 0 || q.X >= b.W || q.Y < 0 || q.Y >= b.H {
		return 0, false
	}
	return q.Y*b.W + q.X, true
}

// At returns the cell at plane point p. Points outside the buffer read as
// blank background cells.
func (b *Buffer) At(p image.Point) Cell {
	if i, ok := b.index(p); ok {
		return b.cells[i]
	}
	return Cell{Ch: ' ', Style: b.bg}
}

// Set writes one character at p. Writes outside the buffer are dropped.
func (b *Buffer) Set(p image.Point, ch rune, style StyleKey) {
	if i, ok := b.index(p); ok {
		b.cells[i] = Cell{Ch: ch, Style: style}
	}
}

// Text writes s starting at p, at most width runes. When s is longer than
// width its last visible rune becomes '…'. width <= 0 means unlimited.
func (b *Buffer) Text(p image.Point, s string, width int, style StyleKey) {
	runes := []rune(s)
	if width > 0 && len(runes) > width {
		runes = append(runes[:width-1], '…')
	}
	for i, ch := range runes {
		b.Set(p.Add(image.Pt(i, 0)), ch, style)
	}
}

// FillRect paints every cell of r with spaces in style.
func (b *Buffer) FillRect(r image.Rectangle, style StyleKey) {
	r = r.Intersect(b.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			b.Set(image.Pt(x, y), ' ', style)
		}
	}
}

// Fill resets every cell to a space in style.
func (b *Buffer) Fill(style StyleKey) {
	for i := range b.cells {
		b.cells[i] = Cell{Ch: ' ', Style: style}
	}
}

// Box draws a rounded single-line border along the inside edge of r.
// Rectangles smaller than 2×2 are ignored.
func (b *Buffer) Box(r image.Rectangle, style StyleKey) {
	if r.Dx() < 2 || r.Dy() < 2 {
		return
	}
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	for x := x0 + 1; x < x1; x++ {
		b.Set(image.Pt(x, y0), '─', style)
		b.Set(image.Pt(x, y1), '─', style)
	}
	for y := y0 + 1; y < y1; y++ {
		b.Set(image.Pt(x0, y), '│', style)
		b.Set(image.Pt(x1, y), '│', style)
	}
	b.Set(image.Pt(x0, y0), '╭', style)
	b.Set(image.Pt(x1, y0), '╮', style)
	b.Set(image.Pt(x0, y1), '╰', style)
	b.Set(image.Pt(x1, y1), '╯', style)
}
