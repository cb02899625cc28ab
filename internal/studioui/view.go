package studioui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesen/studio/internal/studio"
	"github.com/wesen/studio/pkg/tealayout"
)

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	layout := m.layout()
	canvasRegion := layout.Get(regionCanvas)
	paletteRegion := layout.Get(regionPalette)
	panelRegion := layout.Get(regionPanel)
	tabsRegion := layout.Get(regionTabs)

	var layers []*lipgloss.Layer

	// Backgrounds
	layers = append(layers,
		tealayout.FillLayer(layout.Get(regionToolbar), toolbarStyle, "toolbar-bg", 0),
		tealayout.FillLayer(canvasRegion, bgStyle, "canvas-bg", 0),
		tealayout.FillLayer(tabsRegion, bgStyle, "tabs-bg", 0),
		tealayout.FillLayer(layout.Get(regionFooter), footerStyle, "footer-bg", 0),
	)

	layers = append(layers,
		tealayout.ToolbarLayer(m.toolbarContent(), m.Width, toolbarStyle),
		tealayout.FooterLayer(m.footerContent(), m.Width, m.Height-1, footerStyle),
	)

	// Palette, with a separator on its right edge
	if r := paletteRegion.Rect; !r.Empty() {
		inner := tealayout.Region{Name: regionPalette, Rect: r}
		inner.Rect.Max.X--
		layers = append(layers,
			tealayout.PanelLayer(m.renderPalette(inner.Rect.Dx()), inner, panelStyle, "palette", 1),
			tealayout.VerticalSeparator(r.Max.X-1, r.Min.Y, r.Dy(), sepStyle, "palette-sep"),
		)
	}

	// Side panel: inspector or help
	if r := panelRegion.Rect; !r.Empty() {
		inner := tealayout.Region{Name: regionPanel, Rect: r}
		inner.Rect.Min.X++
		layers = append(layers,
			tealayout.VerticalSeparator(r.Min.X, r.Min.Y, r.Dy(), sepStyle, "panel-sep"),
			tealayout.PanelLayer(m.sidePanel(inner.Rect.Dx()), inner, panelStyle, "panel", 1),
		)
	}

	// Tab strip
	if !tabsRegion.Rect.Empty() {
		strip, _ := m.tabStrip(tabsRegion.Rect.Dx())
		layers = append(layers,
			lipgloss.NewLayer(strip).X(tabsRegion.Rect.Min.X).Y(tabsRegion.Rect.Min.Y).Z(1).ID("tabs"))
	}

	// Main view: canvas or the active tab body
	if r := canvasRegion.Rect; !r.Empty() {
		if m.ctrl.Tabs().CanvasActive() {
			buf := m.renderCanvas(r.Dx(), r.Dy())
			layers = append(layers,
				lipgloss.NewLayer(buf.Render(canvasStyles(m.ui.Color))).X(r.Min.X).Y(r.Min.Y).Z(1).ID("canvas"))
		} else {
			layers = append(layers,
				tealayout.PanelLayer(indent(m.tabBody(r.Dx()-2)), canvasRegion, bgStyle, "tab-body", 1))
		}
	}

	// Palette drag ghost follows the pointer
	if m.drag != nil {
		ghost := ghostStyle.Render(fmt.Sprintf(" %s %s ", m.drag.icon, m.drag.payload.Name))
		layers = append(layers,
			lipgloss.NewLayer(ghost).X(m.drag.at.X).Y(m.drag.at.Y).Z(50).ID("drag-ghost"))
	}

	// Modals
	if m.confirmDelete != "" {
		if l := buildConfirmDeleteLayer(m, m.Width, m.Height); l != nil {
			layers = append(layers, l)
		}
	}
	if m.welcome {
		layers = append(layers, buildWelcomeLayer(m.Width, m.Height))
	}

	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)

	v := tea.NewView(canvas.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

func (m Model) toolbarContent() string {
	state := m.ctrl.State()
	undo, redo := toolbarOffStyle.Render("[u]ndo"), toolbarOffStyle.Render("[r]edo")
	if state.CanUndo {
		undo = toolbarStyle.Render("[u]ndo")
	}
	if state.CanRedo {
		redo = toolbarStyle.Render("[r]edo")
	}
	store := m.ctrl.Store()
	return fmt.Sprintf(" DESIGN STUDIO  │  %s %s %d/%d  │  %d nodes  %d links  │  %s  │  [q] back",
		undo, redo, m.ctrl.HistoryIndex()+1, m.ctrl.HistoryLen(),
		store.Len(), len(store.Connections()),
		studio.InteractionName(store.Interaction()))
}

func (m Model) footerContent() string {
	sel := "none"
	if n, ok := m.ctrl.Store().Node(m.Selected); ok {
		sel = fmt.Sprintf("%s v%d", n.Data.Name, n.Data.Version)
	}
	world := m.toWorld(m.Mouse)
	s := fmt.Sprintf(" Pos: (%d,%d)  Cam: (%d,%d)  Sel: %s", world.X, world.Y, m.Cam.X, m.Cam.Y, sel)
	if m.Status != "" {
		s += "  │  " + m.Status
	}
	return s
}
