package cellbuf

import (
	"image"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

const (
	testBG   StyleKey = 0
	testRed  StyleKey = 1
	testBlue StyleKey = 2
)

func testStyles() map[StyleKey]lipgloss.Style {
	return map[StyleKey]lipgloss.Style{
		testBG:   lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
		testRed:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		testBlue: lipgloss.NewStyle().Foreground(lipgloss.Color("#0000ff")),
	}
}

// ── Construction ──

func TestNew(t *testing.T) {
	b := New(10, 5, testBG)
	if b.W != 10 || b.H != 5 {
		t.Fatalf("expected 10x5, got %dx%d", b.W, b.H)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			c := b.At(image.Pt(x, y))
			if c.Ch != ' ' || c.Style != testBG {
				t.Fatalf("cell (%d,%d): expected space/testBG, got %q/%d", x, y, c.Ch, c.Style)
			}
		}
	}
}

func TestNewNegativeSize(t *testing.T) {
	b := New(-5, -3, testBG)
	if b.W != 0 || b.H != 0 {
		t.Fatalf("expected 0x0 for negative sizes, got %dx%d", b.W, b.H)
	}
	if got := b.Render(testStyles()); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
}

// ── Plane coordinates ──

func TestOriginShiftsCoordinates(t *testing.T) {
	b := New(4, 2, testBG)
	b.Origin = image.Pt(-10, 5)

	if want := image.Rect(-10, 5, -6, 7); b.Bounds() != want {
		t.Fatalf("bounds: expected %v, got %v", want, b.Bounds())
	}
	b.Set(image.Pt(-10, 5), 'A', testRed)
	b.Set(image.Pt(-7, 6), 'B', testRed)
	b.Set(image.Pt(0, 0), 'C', testRed) // outside

	if got := b.String(); got != "A   \n   B" {
		t.Fatalf("expected A/B at corners, got %q", got)
	}
}

func TestSetOutOfBounds(t *testing.T) {
	b := New(10, 5, testBG)
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {10, 0}, {0, 5}, {100, 100}} {
		b.Set(p, 'X', testRed)
	}
	if strings.ContainsRune(b.String(), 'X') {
		t.Fatal("out-of-bounds Set modified the buffer")
	}
	if c := b.At(image.Pt(-1, -1)); c.Ch != ' ' {
		t.Errorf("At outside: expected blank, got %q", c.Ch)
	}
}

// ── Text ──

func TestText(t *testing.T) {
	b := New(10, 1, testBG)
	b.Text(image.Pt(2, 0), "Hello", 0, testBlue)
	if got := b.String(); got != "  Hello   " {
		t.Fatalf("expected text at column 2, got %q", got)
	}
	if c := b.At(image.Pt(2, 0)); c.Style != testBlue {
		t.Errorf("expected testBlue, got %d", c.Style)
	}
}

func TestTextTruncatesWithEllipsis(t *testing.T) {
	b := New(10, 1, testBG)
	b.Text(image.Pt(0, 0), "Forecasting", 6, testRed)
	if got := b.String(); got != "Forec…    " {
		t.Fatalf("expected truncated text, got %q", got)
	}
}

func TestTextClipsAtBounds(t *testing.T) {
	b := New(5, 1, testBG)
	b.Text(image.Pt(3, 0), "Hello", 0, testRed)
	if got := b.String(); got != "   He" {
		t.Fatalf("expected clipped text, got %q", got)
	}
}

// ── Shapes ──

func TestBox(t *testing.T) {
	b := New(5, 3, testBG)
	b.Box(image.Rect(0, 0, 5, 3), testRed)
	want := "╭───╮\n│   │\n╰───╯"
	if got := b.String(); got != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestBoxTooSmall(t *testing.T) {
	b := New(3, 3, testBG)
	b.Box(image.Rect(0, 0, 1, 3), testRed)
	if strings.TrimSpace(strings.ReplaceAll(b.String(), "\n", "")) != "" {
		t.Fatal("1-wide box should draw nothing")
	}
}

func TestFillRect(t *testing.T) {
	b := New(4, 2, testBG)
	b.FillRect(image.Rect(1, 0, 10, 1), testBlue)
	for x := 0; x < 4; x++ {
		want := testBlue
		if x == 0 {
			want = testBG
		}
		if got := b.At(image.Pt(x, 0)).Style; got != want {
			t.Errorf("cell (%d,0): expected style %d, got %d", x, want, got)
		}
	}
	if got := b.At(image.Pt(1, 1)).Style; got != testBG {
		t.Errorf("row 1 should be untouched, got style %d", got)
	}
}

func TestFill(t *testing.T) {
	b := New(5, 3, testBG)
	b.Set(image.Pt(2, 1), 'X', testRed)
	b.Fill(testBlue)
	if c := b.At(image.Pt(2, 1)); c.Ch != ' ' || c.Style != testBlue {
		t.Fatalf("Fill: expected space/testBlue, got %q/%d", c.Ch, c.Style)
	}
}

// ── Render ──

func TestRenderLineCount(t *testing.T) {
	b := New(20, 5, testBG)
	lines := strings.Split(b.Render(testStyles()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
}

func TestRenderContent(t *testing.T) {
	b := New(10, 1, testBG)
	b.Text(image.Pt(2, 0), "Hi", 0, testRed)
	result := b.Render(testStyles())
	if !strings.Contains(result, "Hi") {
		t.Fatalf("rendered output doesn't contain 'Hi': %q", result)
	}
}

func TestRenderMergesRuns(t *testing.T) {
	styles := testStyles()
	uniform := New(50, 1, testBG).Render(styles)

	b := New(50, 1, testBG)
	for x := 0; x < 50; x++ {
		style := testRed
		if x%2 == 1 {
			style = testBlue
		}
		b.Set(image.Pt(x, 0), '.', style)
	}
	alternating := b.Render(styles)

	if len(uniform) >= len(alternating) {
		t.Errorf("uniform render (%d bytes) should be shorter than alternating (%d bytes)",
			len(uniform), len(alternating))
	}
}

func TestRenderMissingStyle(t *testing.T) {
	b := New(5, 1, StyleKey(99))
	b.Text(image.Pt(0, 0), "plain", 0, StyleKey(99))
	if got := b.Render(testStyles()); got != "plain" {
		t.Fatalf("missing style should render plain text, got %q", got)
	}
}

// BenchmarkRenderCanvas approximates a studio canvas: mostly background,
// grid dots and a few node boxes.
func BenchmarkRenderCanvas(b *testing.B) {
	styles := testStyles()
	buf := New(150, 40, testBG)
	for y := 0; y < 40; y += 3 {
		for x := 0; x < 150; x += 6 {
			buf.Set(image.Pt(x, y), '·', testRed)
		}
	}
	for i := 0; i < 5; i++ {
		buf.Box(image.Rect(i*28, i*6, i*28+24, i*6+5), testBlue)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.Render(styles)
	}
}
