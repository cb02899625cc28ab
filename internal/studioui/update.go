package studioui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/wesen/studio/internal/studio"
	"github.com/wesen/studio/internal/views"
	"github.com/wesen/studio/pkg/tealayout"
)

const panStep = 3

// Layout dimensions and region names.
const (
	paletteWidth = 26
	panelWidth   = 34

	regionToolbar = "toolbar"
	regionFooter  = "footer"
	regionPalette = "palette"
	regionPanel   = "panel"
	regionTabs    = "tabs"
	regionCanvas  = "canvas"
)

// layout computes the screen regions. It must be the only source of
// region geometry so that View and mouse handling agree.
func (m Model) layout() tealayout.Layout {
	return tealayout.NewLayoutBuilder(m.Width, m.Height).
		TopFixed(regionToolbar, 1).
		BottomFixed(regionFooter, 1).
		LeftFixed(regionPalette, paletteWidth).
		RightFixed(regionPanel, panelWidth).
		TopInset(regionTabs, 1).
		Remaining(regionCanvas).
		Build()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	}

	return m, nil
}

// handleKeys routes keys to whichever mode currently owns the keyboard.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.welcome:
		return m.handleWelcomeKeys(key)
	case m.confirmDelete != "":
		return m.handleConfirmKeys(key), nil
	case m.searching:
		return m.handleSearchKeys(msg)
	}

	switch key {
	case "q", "b":
		return m, tea.Quit

	case "up":
		m.Cam.Y -= panStep
	case "down":
		m.Cam.Y += panStep
	case "left":
		m.Cam.X -= panStep
	case "right":
		m.Cam.X += panStep

	case "u", "ctrl+z":
		if m.ctrl.Dispatch(studio.Undo{}) {
			m.Status = "undo"
		}
		m.pruneSelection()
	case "r", "ctrl+y":
		if m.ctrl.Dispatch(studio.Redo{}) {
			m.Status = "redo"
		}
		m.pruneSelection()

	case "d", "delete":
		if _, ok := m.ctrl.Store().Node(m.Selected); ok {
			m.confirmDelete = m.Selected
		}

	case "enter":
		if m.Selected != "" {
			m.ctrl.Dispatch(studio.Activate{NodeID: m.Selected})
		}

	case "tab":
		m.ctrl.Tabs().Cycle()

	case "esc":
		if !m.ctrl.Tabs().CanvasActive() {
			m.ctrl.Tabs().Activate(views.CanvasView)
		} else {
			m.ctrl.Inspector().Close()
		}

	case "x":
		if !m.ctrl.Tabs().CanvasActive() {
			m.ctrl.Tabs().Close(m.ctrl.Tabs().Active())
		}

	case "/":
		m.searching = true
		return m, m.search.Focus()

	case "c":
		m = m.copyGraph()
	}

	return m, nil
}

func (m Model) handleWelcomeKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "w", "enter":
		m.welcome = false
		if m.prefs != nil {
			if err := m.prefs.DismissWelcome(); err != nil {
				m.logger.Warn("saving preferences", zap.Error(err))
			}
		}
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleConfirmKeys(key string) Model {
	switch key {
	case "y":
		id := m.confirmDelete
		m.confirmDelete = ""
		if m.ctrl.Dispatch(studio.DeleteNode{NodeID: id}) {
			m.Status = "deleted node"
		}
		if m.Selected == id {
			m.Selected = ""
		}
	case "n", "esc":
		m.confirmDelete = ""
	}
	return m
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.SetValue("")
		fallthrough
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// copyGraph puts the YAML export of the graph on the clipboard.
func (m Model) copyGraph() Model {
	out, err := studio.MarshalYAML(m.ctrl.Committed())
	if err == nil {
		err = m.clipboard(string(out))
	}
	if err != nil {
		m.logger.Warn("copying graph", zap.Error(err))
		m.Status = "copy failed"
		return m
	}
	m.Status = fmt.Sprintf("copied %d nodes to clipboard", m.ctrl.Store().Len())
	return m
}

// pruneSelection drops the selection when its node no longer exists.
func (m *Model) pruneSelection() {
	if _, ok := m.ctrl.Store().Node(m.Selected); !ok {
		m.Selected = ""
	}
}
