package studioui

import (
	"fmt"
	"image"

	"github.com/wesen/studio/internal/studio"
	"github.com/wesen/studio/pkg/cellbuf"
	"github.com/wesen/studio/pkg/drawutil"
	"github.com/wesen/studio/pkg/geometry"
)

// renderCanvas draws the visible part of the graph into a cell buffer:
// grid, nodes, handles, committed connections and the line being drawn.
func (m Model) renderCanvas(w, h int) *cellbuf.Buffer {
	buf := cellbuf.New(w, h, styleBG)
	buf.Origin = m.Cam
	drawutil.DrawGrid(buf, image.Pt(m.ui.GridSpacingX, m.ui.GridSpacingY), styleGrid)

	store := m.ctrl.Store()
	// handles sit on or just outside the box
	for _, n := range store.Visible(buf.Bounds().Inset(-1)) {
		drawNode(buf, n, m.nodeStyle(n))
	}

	for _, conn := range store.Connections() {
		from, okFrom := store.Node(conn.FromID)
		to, okTo := store.Node(conn.ToID)
		if !okFrom || !okTo {
			continue
		}
		pts := geometry.Route(
			geometry.HandleCoordinates(from.Data.Pos(), conn.Data.FromHandle), conn.Data.FromHandle,
			geometry.HandleCoordinates(to.Data.Pos(), conn.Data.ToHandle), conn.Data.ToHandle)
		drawutil.DrawRoute(buf, pts, styleEdge, styleArrow)
	}

	if line, ok := store.Interaction().(studio.Connecting); ok {
		drawutil.DrawDashedLine(buf, line.Start, line.End, stylePreview)
	}
	return buf
}

func (m Model) nodeStyle(n studio.Node) cellbuf.StyleKey {
	if n.ID == m.Selected {
		return styleSelected
	}
	return nodeStyleKey(m.categoryOf(n.Data.Type))
}

// drawNode draws a node box with its name on the first inner row, its
// type tag and version on the second, and a dot on each handle.
func drawNode(buf *cellbuf.Buffer, n studio.Node, border cellbuf.StyleKey) {
	origin := n.Data.Pos()
	bounds := geometry.Bounds(origin)
	buf.FillRect(bounds, styleBG)
	buf.Box(bounds, border)

	inner := geometry.NodeWidth - 4
	title := n.Data.Name
	if n.Data.Icon != "" {
		title = n.Data.Icon + " " + title
	}
	buf.Text(origin.Add(image.Pt(2, 1)), title, inner, styleNodeText)
	buf.Text(origin.Add(image.Pt(2, 2)), fmt.Sprintf("%s · v%d", n.Data.Type, n.Data.Version), inner, styleNodeDim)

	for _, h := range geometry.Handles {
		buf.Set(geometry.HandleCoordinates(origin, h), '•', styleHandle)
	}
}
