package studioui

import (
	"image"
	"strconv"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesen/studio/internal/catalog"
	"github.com/wesen/studio/internal/config"
	"github.com/wesen/studio/internal/prefs"
	"github.com/wesen/studio/internal/studio"
	"github.com/wesen/studio/internal/views"
	"github.com/wesen/studio/pkg/geometry"
)

// Screen geometry at 120x40: the canvas starts at (26,2).
var canvasMin = image.Pt(paletteWidth, 2)

// Palette rows for the built-in catalog, in screen y.
const (
	rowDataImport = 1 + paletteHeader + 1
	rowInsights   = 1 + paletteHeader + 8
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func screen(world image.Point) image.Point { return world.Add(canvasMin) }

func keyPress(s string) tea.KeyPressMsg { return tea.KeyPressMsg{Code: rune(s[0]), Text: s} }

func special(code rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: code} }

func click(p image.Point) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: p.X, Y: p.Y, Button: tea.MouseLeft}
}

func motion(p image.Point) tea.MouseMotionMsg {
	return tea.MouseMotionMsg{X: p.X, Y: p.Y, Button: tea.MouseLeft}
}

func release(p image.Point) tea.MouseReleaseMsg {
	return tea.MouseReleaseMsg{X: p.X, Y: p.Y, Button: tea.MouseLeft}
}

type harness struct {
	t         *testing.T
	m         Model
	clock     *fakeClock
	clipboard string
	prefs     *prefs.Store
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cat, err := catalog.Builtin()
	require.NoError(t, err)

	h := &harness{t: t, clock: &fakeClock{t: time.Unix(1_700_000_000, 0)}, prefs: prefs.NewStore(t.TempDir())}
	next := 0
	h.m = NewModel(Options{
		Catalog: cat,
		UI:      config.Default().UI,
		Prefs:   h.prefs,
		Clipboard: func(s string) error {
			h.clipboard = s
			return nil
		},
		Now: h.clock.Now,
		NewID: func() string {
			next++
			return "n" + strconv.Itoa(next)
		},
	})
	h.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	return h
}

func (h *harness) send(msgs ...tea.Msg) {
	for _, msg := range msgs {
		next, _ := h.m.Update(msg)
		h.m = next.(Model)
	}
}

func (h *harness) dismissWelcome() {
	h.send(keyPress("w"))
	require.False(h.t, h.m.welcome)
}

// place drags a palette row onto the canvas at world point at.
func (h *harness) place(row int, at image.Point) string {
	h.send(click(image.Pt(5, row)), motion(screen(at)), release(screen(at)))
	nodes := h.m.Controller().Store().Nodes()
	require.NotEmpty(h.t, nodes)
	return nodes[len(nodes)-1].ID
}

func (h *harness) node(id string) studio.Node {
	n, ok := h.m.Controller().Store().Node(id)
	require.True(h.t, ok, "node %s", id)
	return n
}

// ── Welcome ──

func TestWelcomeBlocksInputUntilDismissed(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.m.welcome)

	h.send(click(image.Pt(5, rowDataImport)))
	assert.Nil(t, h.m.drag, "welcome modal swallows the mouse")
	h.send(keyPress("u"))

	h.dismissWelcome()
	dismissed, err := h.prefs.WelcomeDismissed()
	require.NoError(t, err)
	assert.True(t, dismissed)

	again := NewModel(Options{Catalog: h.m.catalog, Prefs: h.prefs})
	assert.False(t, again.welcome, "dismissal persists across sessions")
}

// ── Palette ──

func TestPaletteDragPlacesNodeCenteredOnDrop(t *testing.T) {
	h := newHarness(t)
	h.dismissWelcome()

	h.send(click(image.Pt(5, rowDataImport)))
	require.NotNil(t, h.m.drag)
	assert.Equal(t, "data-import", h.m.drag.payload.Type)

	h.send(motion(screen(image.Pt(24, 8))))
	assert.Equal(t, screen(image.Pt(24, 8)), h.m.drag.at)
	h.send(release(screen(image.Pt(24, 8))))

	assert.Nil(t, h.m.drag)
	nodes := h.m.Controller().Store().Nodes()
	require.Len(t, nodes, 1)
	assert.Equal(t, "data-import", nodes[0].Data.Type)
	assert.Equal(t, image.Pt(12, 6), nodes[0].Data.Pos())
	assert.Equal(t, nodes[0].ID, h.m.Selected)
	assert.Contains(t, h.m.Status, "placed")
}

func TestPaletteDropOutsideCanvasIsCancelled(t *testing.T) {
	h := newHarness(t)
	h.dismissWelcome()

	h.send(click(image.Pt(5, rowDataImport)), release(image.Pt(100, 10)))
	assert.Nil(t, h.m.drag)
	assert.Zero(t, h.m.Controller().Store().Len())
}

func TestPaletteHeadingIsNotDraggable(t *testing.T) {
	h := newHarness(t)
	h.dismissWelcome()
	h.send(click(image.Pt(5, rowDataImport-1)))
	assert.Nil(t, h.m.drag)
}

func TestSearchFiltersPalette(t *testing.T) {
	h := newHarness(t)
	h.dismissWelcome()

	h.send(keyPress("/"))
	require.True(t, h.m.searching)
	h.send(keyPress("f"), keyPress("o"), keyPress("r"), keyPress("e"))
	h.send(special(tea.KeyEnter))
	assert.False(t, h.m.searching)

	var types []string
	for _, row := range h.m.paletteRows() {
		if row.template != nil {
			types = append(types, row.template.Type)
		}
	}
	assert.Equal(t, []string{"forecasting"}, types)

	// keys go back to the canvas once search ends
	h.send(keyPress("/"), special(tea.KeyEscape))
	assert.Empty(t, h.m.search.Value())
}

// ── Canvas gestures ──

func TestDragNodeAndUndo(t *testing.T) {
	h := newHarness(t)
	h.dismissWelcome()
	id := h.place(rowDataImport, image.Pt(24, 8)) // origin (12,6)

	h.send(click(screen(image.Pt(14, 8))))
	assert.Equal(t, "dragging", studio.InteractionName(h.m.Controller().Store().Interaction()))
	h.send(motion(screen(image.Pt(30, 20))), release(screen(image.Pt(30, 20))))

	assert.Equal(t, image.Pt(28, 18), h.node(id).Data.Pos())
	assert.True(t, h.m.Controller().State().CanUndo)

	h.send(keyPress("u"))
	assert.Equal(t, image.Pt(12, 6), h.node(id).Data.Pos())
	h.send(tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl})
	assert.Equal(t, image.Pt(28, 18), h.node(id).Data.Pos())
}

func TestConnectByDraggingFromHandle(t *testing.T) {
	h := newHarness(t)
	h.dismissWelcome()
	a := h.place(rowDataImport, image.Pt(24, 8)) // origin (12,6)
	b := h.place(rowInsights, image.Pt(50, 18))  // origin (38,16)

	right := geometry.HandleCoordinates(h.node(a).Data.Pos(), geometry.HandleRight)
	h.send(click(screen(right)))
	require.IsType(t, studio.Connecting{}, h.m.Controller().Store().Interaction())

	h.send(motion(screen(image.Pt(39, 18))), release(screen(image.Pt(39, 18))))
	conns := h.m.Controller().Store().Connections()
	require.Len(t, conns, 1)
	assert.Equal(t, a, conns[0].FromID)
	assert.Equal(t, b, conns[0].ToID)
	assert.Equal(t, geometry.HandleLeft, conns[0].Data.ToHandle)
}

func TestDoubleClickOpensDetailTab(t *testing.T) {
	h := newHarness(t)
	h.dismissWelcome()
	id := h.place(rowInsights, image.Pt(24, 8))
	body := screen(image.Pt(14, 8))

	h.send(click(body), release(body))
	h.clock.Advance(100 * time.Millisecond)
	h.send(click(body), release(body))

	assert.Equal(t, id, h.m.Controller().Tabs().Active())
	_, kind := h.m.renderers.Resolve("insights")
	assert.Equal(t, views.KindTab, kind)

	h.send(special(tea.KeyEscape))
	assert.True(t, h.m.Controller().Tabs().CanvasActive())
	assert.Equal(t, []string{id}, h.m.Controller().Tabs().List())
}

func TestSlowSecondClickDoesNotActivate(t *testing.T) {
	h := newHarness(t)
	h.dismissWelcome()
	h.place(rowInsights, image.Pt(24, 8))
	body := screen(image.Pt(14, 8))

	h.send(click(body), release(body))
	h.clock.Advance(time.Second)
	h.send(click(body), release(body))

	assert.True(t, h.m.Controller().Tabs().CanvasActive())
	assert.Empty(t, h.m.Controller().Tabs().List())
}

func TestEnterOpensInspectorForInlineType(t *testing.T) {
	h := newHarness(t)
	h.dismissWelcome()
	// pricing is the first Modeling entry
	id := h.place(1+paletteHeader+4, image.Pt(24, 8))
	require.Equal(t, "pricing", h.node(id).Data.Type)

	h.send(special(tea.KeyEnter))
	bound, ok := h.m.Controller().Inspector().Bound()
	assert.True(t, ok)
	assert.Equal(t, id, bound)
	assert.Contains(t, h.m.sidePanel(panelWidth), "INSPECTOR")

	h.send(special(tea.KeyEscape))
	_, ok = h.m.Controller().Inspector().Bound()
	assert.False(t, ok)
	assert.Contains(t, h.m.sidePanel(panelWidth), "HELP")
}

// ── Commands ──

func TestDeleteAsksForConfirmation(t *testing.T) {
	h := newHarness(t)
	h.dismissWelcome()
	id := h.place(rowDataImport, image.Pt(24, 8))

	h.send(keyPress("d"))
	assert.Equal(t, id, h.m.confirmDelete)
	h.send(keyPress("n"))
	assert.Empty(t, h.m.confirmDelete)
	assert.Equal(t, 1, h.m.Controller().Store().Len())

	h.send(keyPress("d"), keyPress("y"))
	assert.Zero(t, h.m.Controller().Store().Len())
	assert.Empty(t, h.m.Selected)

	h.send(keyPress("u"))
	assert.Equal(t, 1, h.m.Controller().Store().Len(), "deletion can be undone")
}

func TestDeleteWithoutSelectionDoesNothing(t *testing.T) {
	h := newHarness(t)
	h.dismissWelcome()
	h.send(keyPress("d"))
	assert.Empty(t, h.m.confirmDelete)
}

func TestCopyGraphToClipboard(t *testing.T) {
	h := newHarness(t)
	h.dismissWelcome()
	h.place(rowDataImport, image.Pt(24, 8))

	h.send(keyPress("c"))
	assert.Contains(t, h.clipboard, "type: data-import")
	assert.Contains(t, h.m.Status, "copied 1 nodes")
}

func TestArrowKeysPan(t *testing.T) {
	h := newHarness(t)
	h.dismissWelcome()
	h.send(special(tea.KeyRight), special(tea.KeyDown))
	assert.Equal(t, image.Pt(panStep, panStep), h.m.Cam)
	assert.Equal(t, image.Pt(panStep, panStep), h.m.toWorld(canvasMin))
}

func TestQuit(t *testing.T) {
	h := newHarness(t)
	h.dismissWelcome()
	_, cmd := h.m.Update(keyPress("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewRenders(t *testing.T) {
	h := newHarness(t)
	assert.NotPanics(t, func() { h.m.View() })
	h.dismissWelcome()
	id := h.place(rowDataImport, image.Pt(24, 8))
	h.place(rowInsights, image.Pt(60, 18))
	h.send(keyPress("d"))
	assert.NotPanics(t, func() { h.m.View() })
	h.send(keyPress("n"))
	h.m.Controller().Dispatch(studio.Activate{NodeID: id})
	assert.NotPanics(t, func() { h.m.View() })
}

func TestCanvasRendersNodesAndRoutes(t *testing.T) {
	h := newHarness(t)
	h.dismissWelcome()
	a := h.place(rowDataImport, image.Pt(24, 8))
	h.place(rowInsights, image.Pt(50, 18))
	right := geometry.HandleCoordinates(h.node(a).Data.Pos(), geometry.HandleRight)
	h.send(click(screen(right)), release(screen(image.Pt(39, 18))))

	out := h.m.renderCanvas(60, 37).String()
	assert.Contains(t, out, "Data Import")
	assert.Contains(t, out, "insights · v1")
	assert.Contains(t, out, "►")
}

func TestCanvasSkipsNodesOutsideViewport(t *testing.T) {
	h := newHarness(t)
	h.dismissWelcome()
	h.place(rowDataImport, image.Pt(24, 8))

	h.m.Cam = image.Pt(200, 200)
	out := h.m.renderCanvas(60, 37).String()
	assert.NotContains(t, out, "Data Import")
	assert.NotContains(t, out, "•")

	// a node just above the view still shows its bottom handle
	h.m.Cam = image.Pt(0, 11)
	out = h.m.renderCanvas(60, 37).String()
	assert.NotContains(t, out, "Data Import")
	assert.Contains(t, out, "•")
}
