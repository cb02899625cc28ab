// Package views tracks which nodes are open as detail tabs or bound to the
// side-panel inspector, and which renderer a node type is shown with.
package views

import "slices"

// CanvasView is the active-view id meaning "show the canvas".
const CanvasView = "canvas"

// Tabs is the ordered set of open detail tabs plus the active view.
// Tabs are kept in the order they were opened.
type Tabs struct {
	open   []string
	active string
}

// NewTabs returns an empty tab set showing the canvas.
func NewTabs() *Tabs {
	return &Tabs{active: CanvasView}
}

// Open shows a tab for id, adding it if it is not open yet.
func (t *Tabs) Open(id string) {
	if !slices.Contains(t.open, id) {
		t.open = append(t.open, id)
	}
	t.active = id
}

// Close removes the tab for id. When it was active, the most recently
// opened remaining tab becomes active, or the canvas if none remain.
func (t *Tabs) Close(id string) bool {
	i := slices.Index(t.open, id)
	if i < 0 {
		return false
	}
	t.open = slices.Delete(t.open, i, i+1)
	if t.active == id {
		t.fallback()
	}
	return true
}

// Activate focuses an open tab or the canvas. Unknown ids are ignored.
func (t *Tabs) Activate(id string) bool {
	if id != CanvasView && !slices.Contains(t.open, id) {
		return false
	}
	t.active = id
	return true
}

// Cycle moves focus to the next view: canvas, then each tab in order,
// then back to the canvas.
func (t *Tabs) Cycle() {
	if len(t.open) == 0 {
		t.active = CanvasView
		return
	}
	i := slices.Index(t.open, t.active) // -1 for the canvas
	if i+1 < len(t.open) {
		t.active = t.open[i+1]
	} else {
		t.active = CanvasView
	}
}

// Retain closes every tab whose id does not satisfy keep.
func (t *Tabs) Retain(keep func(id string) bool) {
	t.open = slices.DeleteFunc(t.open, func(id string) bool { return !keep(id) })
	if t.active != CanvasView && !slices.Contains(t.open, t.active) {
		t.fallback()
	}
}

func (t *Tabs) fallback() {
	if len(t.open) > 0 {
		t.active = t.open[len(t.open)-1]
	} else {
		t.active = CanvasView
	}
}

// Active returns the active view id: CanvasView or a node id.
func (t *Tabs) Active() string { return t.active }

// CanvasActive reports whether the canvas is showing.
func (t *Tabs) CanvasActive() bool { return t.active == CanvasView }

// IsOpen reports whether id has a tab.
func (t *Tabs) IsOpen(id string) bool { return slices.Contains(t.open, id) }

// List returns the open tab ids in open order.
func (t *Tabs) List() []string { return slices.Clone(t.open) }

// Inspector is the side-panel configuration view. At most one is open,
// bound to exactly one node.
type Inspector struct {
	nodeID string
}

// Open binds the inspector to id, replacing any previous binding.
func (in *Inspector) Open(id string) { in.nodeID = id }

// Close unbinds the inspector.
func (in *Inspector) Close() { in.nodeID = "" }

// CloseIf unbinds the inspector when it is bound to id.
func (in *Inspector) CloseIf(id string) bool {
	if in.nodeID == "" || in.nodeID != id {
		return false
	}
	in.nodeID = ""
	return true
}

// Bound returns the node the inspector shows, if open.
func (in *Inspector) Bound() (string, bool) {
	return in.nodeID, in.nodeID != ""
}
