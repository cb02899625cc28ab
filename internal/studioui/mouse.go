package studioui

import (
	"image"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/wesen/studio/internal/studio"
	"github.com/wesen/studio/pkg/tealayout"
)

// handleMouse turns mouse messages into palette drags and controller
// pointer events.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	mouse := msg.Mouse()
	pt := image.Pt(mouse.X, mouse.Y)
	m.Mouse = pt

	// Modals swallow the mouse.
	if m.welcome || m.confirmDelete != "" {
		return m
	}

	region, _ := m.layout().At(pt)

	switch msg.(type) {
	case tea.MouseClickMsg:
		if mouse.Button != tea.MouseLeft {
			return m
		}
		switch region.Name {
		case regionPalette:
			m = m.pressPalette(region.Local(pt))
		case regionTabs:
			m.pressTab(region.Local(pt).X)
		case regionCanvas:
			if m.ctrl.Tabs().CanvasActive() {
				m = m.pressCanvas(m.toWorld(pt))
			}
		}

	case tea.MouseMotionMsg:
		if m.drag != nil {
			m.drag.at = pt
			return m
		}
		if m.gestureActive() {
			m.ctrl.Dispatch(studio.PointerMove{At: m.toWorld(pt)})
		}

	case tea.MouseReleaseMsg:
		if m.drag != nil {
			m = m.dropTemplate(region, pt)
			return m
		}
		if m.gestureActive() {
			target := studio.OnCanvas()
			if region.Name == regionCanvas {
				target = m.ctrl.TargetAt(m.toWorld(pt))
			}
			m.ctrl.Dispatch(studio.PointerUp{At: m.toWorld(pt), Target: target})
		}
	}

	return m
}

func (m Model) gestureActive() bool {
	_, idle := m.ctrl.Store().Interaction().(studio.Idle)
	return !idle
}

// pressCanvas starts a node drag or connection, or activates a node on
// a double click.
func (m Model) pressCanvas(world image.Point) Model {
	target := m.ctrl.TargetAt(world)
	now := m.now()

	if target.Kind == studio.TargetNode &&
		m.lastPress.nodeID == target.NodeID &&
		now.Sub(m.lastPress.at) <= m.doubleClickWindow() {
		m.lastPress = press{}
		m.ctrl.Dispatch(studio.Activate{NodeID: target.NodeID})
		return m
	}

	m.Selected = target.NodeID
	m.lastPress = press{}
	if target.Kind == studio.TargetNode {
		m.lastPress = press{nodeID: target.NodeID, at: now}
	}
	m.ctrl.Dispatch(studio.PointerDown{At: world, Target: target})
	return m
}

// pressPalette starts dragging the template under local palette point p.
func (m Model) pressPalette(p image.Point) Model {
	row, ok := paletteRowAt(m.paletteRows(), p.Y)
	if !ok || row.template == nil {
		return m
	}
	m.drag = &paletteDrag{
		payload: row.template.Payload(),
		icon:    row.template.Icon,
		at:      m.Mouse,
	}
	return m
}

// dropTemplate finishes a palette drag. Releasing anywhere but over the
// visible canvas cancels it.
func (m Model) dropTemplate(region tealayout.Region, pt image.Point) Model {
	drag := m.drag
	m.drag = nil
	if region.Name != regionCanvas || !m.ctrl.Tabs().CanvasActive() {
		return m
	}
	if m.ctrl.Dispatch(studio.DropTemplate{Fields: drag.payload.Encode(), At: m.toWorld(pt)}) {
		nodes := m.ctrl.Store().Nodes()
		m.Selected = nodes[len(nodes)-1].ID
		m.Status = "placed " + drag.payload.Name
	} else {
		m.logger.Debug("drop ignored", zap.String("type", drag.payload.Type))
	}
	return m
}

// pressTab focuses the tab under strip column x.
func (m Model) pressTab(x int) {
	_, spans := m.tabStrip(m.layout().Get(regionTabs).Rect.Dx())
	if id, ok := tealayout.HitTab(spans, x); ok {
		m.ctrl.Tabs().Activate(id)
	}
}
