package studioui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wesen/studio/internal/catalog"
)

// paletteHeader is the number of palette rows above the first entry:
// title, search field and separator.
const paletteHeader = 3

// paletteRow is either a category heading or a draggable template.
type paletteRow struct {
	heading  string
	template *catalog.Template
	category int
}

// paletteRows lists the palette entries matching the current search.
func (m Model) paletteRows() []paletteRow {
	if m.catalog == nil {
		return nil
	}
	var rows []paletteRow
	for _, cat := range m.catalog.Filter(m.search.Value()) {
		idx := m.categoryIndex(cat.Label)
		rows = append(rows, paletteRow{heading: cat.Label, category: idx})
		for i := range cat.Templates {
			rows = append(rows, paletteRow{template: &cat.Templates[i], category: idx})
		}
	}
	return rows
}

// paletteRowAt maps a palette-local row to an entry.
func paletteRowAt(rows []paletteRow, y int) (paletteRow, bool) {
	i := y - paletteHeader
	if i < 0 || i >= len(rows) {
		return paletteRow{}, false
	}
	return rows[i], true
}

// categoryIndex returns the position of a category in the full catalog,
// which selects its accent color.
func (m Model) categoryIndex(label string) int {
	for i, cat := range m.catalog.Categories() {
		if cat.Label == label {
			return i
		}
	}
	return 0
}

// categoryOf returns the accent index for a node type.
func (m Model) categoryOf(typeTag string) int {
	if m.catalog == nil {
		return 0
	}
	t, ok := m.catalog.Lookup(typeTag)
	if !ok {
		return 0
	}
	return m.categoryIndex(t.Category)
}

func (m Model) renderPalette(width int) string {
	lines := []string{
		panelTitleStyle.Render(" TOOLS"),
		" " + m.search.View(),
		panelDimStyle.Render(strings.Repeat("─", max(width-1, 0))),
	}
	rows := m.paletteRows()
	if len(rows) == 0 {
		lines = append(lines, panelDimStyle.Render("  no matching tools"))
	}
	for _, row := range rows {
		accent := categoryColors[row.category%len(categoryColors)]
		if row.template == nil {
			lines = append(lines, lipgloss.NewStyle().Foreground(accent).Bold(true).
				Render(" "+strings.ToUpper(row.heading)))
			continue
		}
		icon := row.template.Icon
		if icon == "" {
			icon = "•"
		}
		lines = append(lines,
			"  "+lipgloss.NewStyle().Foreground(accent).Render(icon)+" "+row.template.Name)
	}
	return strings.Join(lines, "\n")
}
