package tealayout

import (
	"image"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestLayoutBasic(t *testing.T) {
	l := NewLayoutBuilder(80, 24).
		TopFixed("toolbar", 3).
		BottomFixed("footer", 1).
		RightFixed("panel", 34).
		Remaining("canvas").
		Build()

	if l.TermW != 80 || l.TermH != 24 {
		t.Fatalf("term size: expected 80x24, got %dx%d", l.TermW, l.TermH)
	}

	tb := l.Get("toolbar")
	if tb.Rect != image.Rect(0, 0, 80, 3) {
		t.Errorf("toolbar: expected (0,0)-(80,3), got %v", tb.Rect)
	}

	ft := l.Get("footer")
	if ft.Rect != image.Rect(0, 23, 80, 24) {
		t.Errorf("footer: expected (0,23)-(80,24), got %v", ft.Rect)
	}

	pn := l.Get("panel")
	if pn.Rect != image.Rect(46, 3, 80, 23) {
		t.Errorf("panel: expected (46,3)-(80,23), got %v", pn.Rect)
	}

	cv := l.Get("canvas")
	if cv.Rect != image.Rect(0, 3, 46, 23) {
		t.Errorf("canvas: expected (0,3)-(46,23), got %v", cv.Rect)
	}
}

func TestLayoutRemainingOnly(t *testing.T) {
	l := NewLayoutBuilder(80, 24).
		Remaining("full").
		Build()

	r := l.Get("full")
	if r.Rect != image.Rect(0, 0, 80, 24) {
		t.Errorf("full: expected (0,0)-(80,24), got %v", r.Rect)
	}
}

func TestLayoutZeroSize(t *testing.T) {
	l := NewLayoutBuilder(0, 0).
		TopFixed("toolbar", 3).
		Remaining("canvas").
		Build()

	cv := l.Get("canvas")
	// With 0-height terminal and 3 rows consumed from top, remaining is negative → clamped to zero
	if cv.Rect.Dx() != 0 || cv.Rect.Dy() != 0 {
		t.Errorf("zero term canvas: expected empty rect, got %v", cv.Rect)
	}
}

func TestLayoutNoOverlap(t *testing.T) {
	l := NewLayoutBuilder(80, 24).
		TopFixed("toolbar", 3).
		BottomFixed("footer", 1).
		RightFixed("panel", 34).
		Remaining("canvas").
		Build()

	regions := []Region{
		l.Get("toolbar"),
		l.Get("footer"),
		l.Get("panel"),
		l.Get("canvas"),
	}

	for i := 0; i < len(regions); i++ {
		for j := i + 1; j < len(regions); j++ {
			ri, rj := regions[i], regions[j]
			if ri.Rect.Overlaps(rj.Rect) {
				t.Errorf("overlap: %s %v and %s %v",
					ri.Name, ri.Rect, rj.Name, rj.Rect)
			}
		}
	}
}

func TestLayoutCanvasDimensions(t *testing.T) {
	l := NewLayoutBuilder(80, 24).
		TopFixed("toolbar", 3).
		BottomFixed("footer", 1).
		RightFixed("panel", 34).
		Remaining("canvas").
		Build()

	cv := l.Get("canvas")
	// 80 - 34 = 46 wide, 24 - 3 - 1 = 20 tall
	if cv.Rect.Dx() != 46 || cv.Rect.Dy() != 20 {
		t.Errorf("canvas dims: expected 46x20, got %dx%d", cv.Rect.Dx(), cv.Rect.Dy())
	}
}

func TestGetNonExistent(t *testing.T) {
	l := NewLayoutBuilder(80, 24).Build()
	r := l.Get("missing")
	if r.Name != "" {
		t.Errorf("non-existent: expected empty, got %v", r)
	}
}

func TestModalLayer(t *testing.T) {
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Width(20).
		Padding(1, 2)

	layer := ModalLayer("test content", 80, 24, style)
	if layer.GetID() != "modal" {
		t.Errorf("modal ID: expected 'modal', got %q", layer.GetID())
	}
	if layer.GetZ() != 100 {
		t.Errorf("modal Z: expected 100, got %d", layer.GetZ())
	}
	// Should be roughly centered
	x, y := layer.GetX(), layer.GetY()
	if x < 20 || x > 40 {
		t.Errorf("modal X not centered: %d", x)
	}
	if y < 5 || y > 15 {
		t.Errorf("modal Y not centered: %d", y)
	}
}

func TestFillLayer(t *testing.T) {
	r := Region{Name: "test", Rect: image.Rect(10, 5, 30, 15)}
	style := lipgloss.NewStyle().Background(lipgloss.Color("#080e0b"))
	layer := FillLayer(r, style, "bg", 0)

	if layer.GetID() != "bg" {
		t.Errorf("fill ID: expected 'bg', got %q", layer.GetID())
	}
	if layer.GetX() != 10 || layer.GetY() != 5 {
		t.Errorf("fill pos: expected (10,5), got (%d,%d)", layer.GetX(), layer.GetY())
	}
}

func TestFillLayerEmpty(t *testing.T) {
	r := Region{Name: "empty", Rect: image.Rectangle{}}
	style := lipgloss.NewStyle()
	layer := FillLayer(r, style, "bg", 0)
	// Should not panic, returns empty layer
	if layer.GetContent() != "" {
		t.Error("empty fill should have no content")
	}
}

// ── Side columns and insets ──

func studioLayout(w, h int) Layout {
	return NewLayoutBuilder(w, h).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		LeftFixed("palette", 20).
		RightFixed("panel", 30).
		TopInset("tabs", 1).
		Remaining("canvas").
		Build()
}

func TestLayoutLeftFixedAndInset(t *testing.T) {
	l := studioLayout(100, 30)

	if got := l.Get("palette").Rect; got != image.Rect(0, 1, 20, 29) {
		t.Errorf("palette: expected (0,1)-(20,29), got %v", got)
	}
	if got := l.Get("panel").Rect; got != image.Rect(70, 1, 100, 29) {
		t.Errorf("panel: expected (70,1)-(100,29), got %v", got)
	}
	if got := l.Get("tabs").Rect; got != image.Rect(20, 1, 70, 2) {
		t.Errorf("tabs: expected (20,1)-(70,2), got %v", got)
	}
	if got := l.Get("canvas").Rect; got != image.Rect(20, 2, 70, 29) {
		t.Errorf("canvas: expected (20,2)-(70,29), got %v", got)
	}

	names := []string{"toolbar", "footer", "palette", "panel", "tabs", "canvas"}
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			if l.Get(names[i]).Rect.Overlaps(l.Get(names[j]).Rect) {
				t.Errorf("overlap: %s and %s", names[i], names[j])
			}
		}
	}
}

func TestLayoutTooNarrow(t *testing.T) {
	l := studioLayout(40, 30)
	if cv := l.Get("canvas"); !cv.Rect.Empty() {
		t.Errorf("narrow canvas: expected empty rect, got %v", cv.Rect)
	}
}

func TestLayoutAt(t *testing.T) {
	l := studioLayout(100, 30)
	tests := []struct {
		pt   image.Point
		want string
	}{
		{image.Pt(0, 0), "toolbar"},
		{image.Pt(5, 10), "palette"},
		{image.Pt(20, 1), "tabs"},
		{image.Pt(45, 15), "canvas"},
		{image.Pt(99, 28), "panel"},
		{image.Pt(50, 29), "footer"},
	}
	for _, tc := range tests {
		r, ok := l.At(tc.pt)
		if !ok || r.Name != tc.want {
			t.Errorf("At(%v): expected %s, got %q (ok=%v)", tc.pt, tc.want, r.Name, ok)
		}
	}
	if _, ok := l.At(image.Pt(100, 0)); ok {
		t.Error("At outside terminal should miss")
	}
}

func TestRegionLocal(t *testing.T) {
	r := Region{Name: "canvas", Rect: image.Rect(20, 2, 70, 29)}
	if got := r.Local(image.Pt(25, 4)); got != image.Pt(5, 2) {
		t.Errorf("Local: expected (5,2), got %v", got)
	}
}

// ── Chrome ──

func TestPanelLayerFillsRegion(t *testing.T) {
	r := Region{Name: "panel", Rect: image.Rect(5, 2, 15, 6)}
	layer := PanelLayer("a very long line that must be clipped\nb", r, lipgloss.NewStyle(), "panel", 2)
	if layer.GetX() != 5 || layer.GetY() != 2 || layer.GetZ() != 2 {
		t.Errorf("panel pos: expected (5,2,z2), got (%d,%d,z%d)", layer.GetX(), layer.GetY(), layer.GetZ())
	}
	content := layer.GetContent()
	if w := lipgloss.Width(content); w > 10 {
		t.Errorf("panel width: expected <= 10, got %d", w)
	}
	if h := lipgloss.Height(content); h != 4 {
		t.Errorf("panel height: expected 4, got %d", h)
	}
}

func TestVerticalSeparator(t *testing.T) {
	layer := VerticalSeparator(20, 1, 3, lipgloss.NewStyle(), "sep")
	if layer.GetContent() != "│\n│\n│" {
		t.Errorf("separator: unexpected content %q", layer.GetContent())
	}
	if layer.GetID() != "sep" {
		t.Errorf("separator ID: expected 'sep', got %q", layer.GetID())
	}
}

// ── Tabs ──

func TestTabStrip(t *testing.T) {
	tabs := []Tab{{ID: "canvas", Label: "Canvas"}, {ID: "a", Label: "Insights"}, {ID: "b", Label: "Report"}}
	line, spans := TabStrip(tabs, "a", 80, lipgloss.NewStyle(), lipgloss.NewStyle())

	if line != "Canvas Insights Report" {
		t.Fatalf("tab strip: unexpected line %q", line)
	}
	want := []TabSpan{{"canvas", 0, 6}, {"a", 7, 15}, {"b", 16, 22}}
	if len(spans) != len(want) {
		t.Fatalf("expected %d spans, got %d", len(want), len(spans))
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Errorf("span %d: expected %v, got %v", i, want[i], spans[i])
		}
	}

	if id, ok := HitTab(spans, 9); !ok || id != "a" {
		t.Errorf("HitTab(9): expected a, got %q", id)
	}
	if _, ok := HitTab(spans, 6); ok {
		t.Error("HitTab on the gap should miss")
	}
}

func TestTabStripDropsOverflow(t *testing.T) {
	tabs := []Tab{{ID: "a", Label: "Alpha"}, {ID: "b", Label: "Bravo"}}
	line, spans := TabStrip(tabs, "", 8, lipgloss.NewStyle(), lipgloss.NewStyle())
	if line != "Alpha" || len(spans) != 1 {
		t.Errorf("overflow: expected only Alpha, got %q (%d spans)", line, len(spans))
	}
}
