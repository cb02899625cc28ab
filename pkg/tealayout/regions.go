// Package tealayout provides declarative layout computation, hit-testing
// and common chrome layer builders for Bubbletea v2 + Lipgloss v2 apps.
package tealayout

import "image"

// Region is a named rectangular area of the terminal.
type Region struct {
	Name string
	Rect image.Rectangle
}

// Contains reports whether the terminal cell pt lies in the region.
func (r Region) Contains(pt image.Point) bool { return pt.In(r.Rect) }

// Local converts a terminal point to region-local coordinates.
func (r Region) Local(pt image.Point) image.Point { return pt.Sub(r.Rect.Min) }

// Layout holds the computed regions for a given terminal size.
type Layout struct {
	TermW, TermH int
	Regions      map[string]Region
	order        []string
}

// Get returns the region with the given name, or a zero Region.
func (l Layout) Get(name string) Region {
	return l.Regions[name]
}

// At returns the region containing pt. Regions never overlap, so at most
// one matches.
func (l Layout) At(pt image.Point) (Region, bool) {
	for _, name := range l.order {
		if r := l.Regions[name]; r.Contains(pt) {
			return r, true
		}
	}
	return Region{}, false
}

// LayoutBuilder accumulates fixed regions and computes the remainder.
//
// Full-width rows (TopFixed, BottomFixed) must be reserved before side
// columns (LeftFixed, RightFixed), and columns before TopInset.
type LayoutBuilder struct {
	termW, termH int
	top, bottom  int // rows consumed from top/bottom
	left, right  int // columns consumed from left/right
	inset        int // rows consumed from the top of the centre column
	regions      []Region
}

// NewLayoutBuilder creates a builder for the given terminal size.
func NewLayoutBuilder(termW, termH int) *LayoutBuilder {
	return &LayoutBuilder{termW: termW, termH: termH}
}

// TopFixed reserves rows from the top. Returns the builder for chaining.
func (b *LayoutBuilder) TopFixed(name string, height int) *LayoutBuilder {
	y := b.top
	b.add(name, image.Rect(0, y, b.termW, y+height))
	b.top += height
	return b
}

// BottomFixed reserves rows from the bottom. Returns the builder for chaining.
func (b *LayoutBuilder) BottomFixed(name string, height int) *LayoutBuilder {
	y := b.termH - b.bottom - height
	b.add(name, image.Rect(0, y, b.termW, y+height))
	b.bottom += height
	return b
}

// LeftFixed reserves columns from the left, spanning the area between
// top and bottom fixed regions.
func (b *LayoutBuilder) LeftFixed(name string, width int) *LayoutBuilder {
	x := b.left
	b.add(name, image.Rect(x, b.top, x+width, b.termH-b.bottom))
	b.left += width
	return b
}

// RightFixed reserves columns from the right, spanning the area between
// top and bottom fixed regions. Returns the builder for chaining.
func (b *LayoutBuilder) RightFixed(name string, width int) *LayoutBuilder {
	x := b.termW - b.right - width
	b.add(name, image.Rect(x, b.top, x+width, b.termH-b.bottom))
	b.right += width
	return b
}

// TopInset reserves rows at the top of the centre column, between the
// side columns. Used for tab strips that belong to the main view.
func (b *LayoutBuilder) TopInset(name string, height int) *LayoutBuilder {
	y := b.top + b.inset
	b.add(name, image.Rect(b.left, y, b.termW-b.right, y+height))
	b.inset += height
	return b
}

// Remaining assigns whatever rectangle is left after fixed allocations.
// If the remaining area is degenerate (negative width or height), an
// empty rectangle is used.
func (b *LayoutBuilder) Remaining(name string) *LayoutBuilder {
	x0, y0 := b.left, b.top+b.inset
	x1 := b.termW - b.right
	y1 := b.termH - b.bottom
	var rect image.Rectangle
	if x1 > x0 && y1 > y0 {
		rect = image.Rect(x0, y0, x1, y1)
	}
	b.add(name, rect)
	return b
}

func (b *LayoutBuilder) add(name string, r image.Rectangle) {
	b.regions = append(b.regions, Region{Name: name, Rect: r})
}

// Build computes and returns the final Layout.
func (b *LayoutBuilder) Build() Layout {
	l := Layout{
		TermW:   b.termW,
		TermH:   b.termH,
		Regions: make(map[string]Region, len(b.regions)),
	}
	for _, r := range b.regions {
		// Clamp degenerate regions (where min > max on either axis) to empty
		if r.Rect.Min.X >= r.Rect.Max.X || r.Rect.Min.Y >= r.Rect.Max.Y {
			r.Rect = image.Rectangle{}
		}
		l.Regions[r.Name] = r
		l.order = append(l.order, r.Name)
	}
	return l
}
