package cellbuf

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render converts the buffer into a styled string, one line per row.
//
// Consecutive cells with the same StyleKey are merged into runs and
// rendered with one Style.Render call per run. Keys missing from styles
// render as plain text. An empty buffer returns "".
func (b *Buffer) Render(styles map[StyleKey]lipgloss.Style) string {
	return b.render(func(k StyleKey, s string) string {
		if st, ok := styles[k]; ok {
			return st.Render(s)
		}
		return s
	})
}

// String returns the buffer contents without styling.
func (b *Buffer) String() string {
	return b.render(func(_ StyleKey, s string) string { return s })
}

func (b *Buffer) render(run func(StyleKey, string) string) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}
	lines := make([]string, b.H)
	chunk := make([]rune, 0, b.W)
	for y := 0; y < b.H; y++ {
		var sb strings.Builder
		row := b.cells[y*b.W : (y+1)*b.W]
		chunk = chunk[:0]
		style := row[0].Style
		for _, c := range row {
			if c.Style != style {
				sb.WriteString(run(style, string(chunk)))
				chunk = chunk[:0]
				style = c.Style
			}
			chunk = append(chunk, c.Ch)
		}
		sb.WriteString(run(style, string(chunk)))
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
