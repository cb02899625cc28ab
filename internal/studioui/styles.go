package studioui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/wesen/studio/pkg/cellbuf"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Color palette: dark slate with one accent per palette category.
var (
	colorBG      = c("#0d1117")
	colorPanelBG = c("#161b22")
	colorChrome  = c("#c9d1d9")
	colorDim     = c("#6e7681")
	colorAccent  = c("#58a6ff")
	colorWarn    = c("#f0883e")
	colorSel     = c("#ffd33d")

	// categoryColors cycles by category position in the palette.
	categoryColors = []color.Color{
		c("#3fb950"), // sources
		c("#a371f7"), // modeling
		c("#58a6ff"), // analysis
		c("#f778ba"), // output
	}
)

// cellbuf style keys for the canvas layer. Node keys are allocated per
// category starting at styleNodeBase.
const (
	styleBG cellbuf.StyleKey = iota
	styleGrid
	styleEdge
	styleArrow
	stylePreview
	styleHandle
	styleSelected
	styleNodeText
	styleNodeDim
	styleNodeBase
)

func nodeStyleKey(category int) cellbuf.StyleKey {
	return styleNodeBase + cellbuf.StyleKey(category%len(categoryColors))
}

// canvasStyles maps cellbuf keys to lipgloss styles. With color disabled
// every key renders plain.
func canvasStyles(colored bool) map[cellbuf.StyleKey]lipgloss.Style {
	if !colored {
		return nil
	}
	base := lipgloss.NewStyle().Background(colorBG)
	styles := map[cellbuf.StyleKey]lipgloss.Style{
		styleBG:       base,
		styleGrid:     base.Foreground(c("#21262d")),
		styleEdge:     base.Foreground(colorDim),
		styleArrow:    base.Foreground(colorChrome).Bold(true),
		stylePreview:  base.Foreground(colorAccent),
		styleHandle:   base.Foreground(colorAccent),
		styleSelected: base.Foreground(colorSel).Bold(true),
		styleNodeText: base.Foreground(colorChrome).Bold(true),
		styleNodeDim:  base.Foreground(colorDim),
	}
	for i, col := range categoryColors {
		styles[nodeStyleKey(i)] = base.Foreground(col)
	}
	return styles
}

// Chrome styles.
var (
	toolbarStyle = lipgloss.NewStyle().
			Background(c("#010409")).
			Foreground(colorChrome).
			Bold(true)

	toolbarOffStyle = lipgloss.NewStyle().
			Background(c("#010409")).
			Foreground(colorDim)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	bgStyle = lipgloss.NewStyle().
		Background(colorBG)

	panelStyle = lipgloss.NewStyle().
			Background(colorPanelBG).
			Foreground(colorChrome)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	sepStyle = lipgloss.NewStyle().
			Foreground(c("#30363d"))

	tabStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Padding(0, 1)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(colorBG).
			Background(colorAccent).
			Bold(true).
			Padding(0, 1)

	ghostStyle = lipgloss.NewStyle().
			Foreground(colorBG).
			Background(colorAccent).
			Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Background(colorPanelBG).
			Foreground(colorChrome).
			Width(52).
			Padding(1, 2)

	dangerModalStyle = modalStyle.
				BorderForeground(colorWarn)
)
