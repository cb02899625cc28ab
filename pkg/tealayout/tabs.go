package tealayout

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Tab is one entry of a tab strip.
type Tab struct {
	ID    string
	Label string
}

// TabSpan is the horizontal extent [X0, X1) of a rendered tab, relative to
// the start of the strip.
type TabSpan struct {
	ID     string
	X0, X1 int
}

// TabStrip renders tabs left to right on one line. Tabs that would not fit
// in width are dropped. It returns the line and the span of each drawn tab
// so mouse clicks can be mapped back to tab IDs.
func TabStrip(tabs []Tab, activeID string, width int, normal, active lipgloss.Style) (string, []TabSpan) {
	var sb strings.Builder
	var spans []TabSpan
	x := 0
	for i, t := range tabs {
		style := normal
		if t.ID == activeID {
			style = active
		}
		cell := style.Render(t.Label)
		w := lipgloss.Width(cell)
		gap := 0
		if i > 0 {
			gap = 1
		}
		if x+gap+w > width {
			break
		}
		if gap > 0 {
			sb.WriteString(" ")
			x += gap
		}
		sb.WriteString(cell)
		spans = append(spans, TabSpan{ID: t.ID, X0: x, X1: x + w})
		x += w
	}
	return sb.String(), spans
}

// HitTab returns the ID of the tab whose span contains column x.
func HitTab(spans []TabSpan, x int) (string, bool) {
	for _, s := range spans {
		if x >= s.X0 && x < s.X1 {
			return s.ID, true
		}
	}
	return "", false
}
