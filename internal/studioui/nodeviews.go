package studioui

import (
	"fmt"
	"strings"

	"github.com/wesen/studio/internal/catalog"
	"github.com/wesen/studio/internal/studio"
	"github.com/wesen/studio/internal/views"
	"github.com/wesen/studio/pkg/tealayout"
)

// NodeView is what a renderer gets to draw one node's configuration.
type NodeView struct {
	Node     studio.Node
	Template catalog.Template
	Incoming []string // "Name (handle)" of upstream nodes
	Outgoing []string
	Width    int
}

// Renderer draws a node configuration view as plain text lines.
type Renderer func(v NodeView) string

// newRegistry binds every inline template to the inspector and the known
// analysis/output types to their detail tabs. Everything else gets the
// placeholder.
func newRegistry(cat *catalog.Catalog) *views.Registry[Renderer] {
	r := views.NewRegistry[Renderer](renderPlaceholder)
	if cat == nil {
		return r
	}
	for _, t := range cat.Templates() {
		if t.Inline {
			r.RegisterSidePanel(t.Type, renderInspector)
		}
	}
	r.RegisterTab("data-import", renderSourceTab)
	r.RegisterTab("crm-sync", renderSourceTab)
	r.RegisterTab("insights", renderAnalysisTab)
	r.RegisterTab("anomaly-detection", renderAnalysisTab)
	r.RegisterTab("cohort-analysis", renderAnalysisTab)
	r.RegisterTab("report", renderOutputTab)
	r.RegisterTab("alert", renderOutputTab)
	return r
}

// nodeView gathers what renderers need about node id.
func (m Model) nodeView(id string, width int) (NodeView, bool) {
	store := m.ctrl.Store()
	n, ok := store.Node(id)
	if !ok {
		return NodeView{}, false
	}
	v := NodeView{Node: n, Width: width}
	if m.catalog != nil {
		v.Template, _ = m.catalog.Lookup(n.Data.Type)
	}
	for _, conn := range store.Incoming(id) {
		v.Incoming = append(v.Incoming, m.endpointLabel(conn.FromID, string(conn.Data.ToHandle)))
	}
	for _, conn := range store.Outgoing(id) {
		v.Outgoing = append(v.Outgoing, m.endpointLabel(conn.ToID, string(conn.Data.FromHandle)))
	}
	return v, true
}

func (m Model) endpointLabel(id, handle string) string {
	n, ok := m.ctrl.Store().Node(id)
	if !ok {
		return id
	}
	return fmt.Sprintf("%s v%d (%s)", n.Data.Name, n.Data.Version, handle)
}

func header(v NodeView) []string {
	return []string{
		fmt.Sprintf("%s  v%d", v.Node.Data.Name, v.Node.Data.Version),
		"type: " + v.Node.Data.Type,
		strings.Repeat("─", max(v.Width-2, 0)),
	}
}

func links(v NodeView) []string {
	var lines []string
	lines = append(lines, fmt.Sprintf("inputs (%d)", len(v.Incoming)))
	for _, s := range v.Incoming {
		lines = append(lines, "  ← "+s)
	}
	lines = append(lines, fmt.Sprintf("outputs (%d)", len(v.Outgoing)))
	for _, s := range v.Outgoing {
		lines = append(lines, "  → "+s)
	}
	return lines
}

func renderInspector(v NodeView) string {
	lines := header(v)
	if v.Template.Description != "" {
		lines = append(lines, v.Template.Description, "")
	}
	lines = append(lines, links(v)...)
	lines = append(lines, "", "[esc] close inspector")
	return strings.Join(lines, "\n")
}

func renderSourceTab(v NodeView) string {
	lines := header(v)
	lines = append(lines, "SOURCE", v.Template.Description, "")
	lines = append(lines, fmt.Sprintf("feeds %d downstream step(s)", len(v.Outgoing)))
	lines = append(lines, links(v)...)
	return strings.Join(lines, "\n")
}

func renderAnalysisTab(v NodeView) string {
	lines := header(v)
	lines = append(lines, "ANALYSIS", v.Template.Description, "")
	if len(v.Incoming) == 0 {
		lines = append(lines, "! no input connected", "")
	}
	lines = append(lines, links(v)...)
	return strings.Join(lines, "\n")
}

func renderOutputTab(v NodeView) string {
	lines := header(v)
	lines = append(lines, "OUTPUT", v.Template.Description, "")
	lines = append(lines, links(v)...)
	return strings.Join(lines, "\n")
}

// renderPlaceholder is used for types without a registered view. It
// still names the type so users can tell nodes apart.
func renderPlaceholder(v NodeView) string {
	lines := header(v)
	lines = append(lines,
		fmt.Sprintf("No configuration view for %q yet.", v.Node.Data.Type),
		"")
	lines = append(lines, links(v)...)
	return strings.Join(lines, "\n")
}

// tabStrip renders the canvas tab followed by one tab per open node.
func (m Model) tabStrip(width int) (string, []tealayout.TabSpan) {
	tabs := []tealayout.Tab{{ID: views.CanvasView, Label: "Canvas"}}
	for _, id := range m.ctrl.Tabs().List() {
		label := id
		if n, ok := m.ctrl.Store().Node(id); ok {
			label = fmt.Sprintf("%s v%d", n.Data.Name, n.Data.Version)
		}
		tabs = append(tabs, tealayout.Tab{ID: id, Label: label})
	}
	return tealayout.TabStrip(tabs, m.ctrl.Tabs().Active(), width, tabStyle, tabActiveStyle)
}

// tabBody renders the active node tab.
func (m Model) tabBody(width int) string {
	v, ok := m.nodeView(m.ctrl.Tabs().Active(), width)
	if !ok {
		return ""
	}
	render, _ := m.renderers.Resolve(v.Node.Data.Type)
	return render(v)
}

// sidePanel renders the inspector when bound, otherwise help.
func (m Model) sidePanel(width int) string {
	if id, ok := m.ctrl.Inspector().Bound(); ok {
		if v, ok := m.nodeView(id, width); ok {
			render, kind := m.renderers.Resolve(v.Node.Data.Type)
			if kind == views.KindSidePanel {
				return panelTitleStyle.Render(" INSPECTOR") + "\n" + indent(render(v))
			}
		}
	}
	return panelTitleStyle.Render(" HELP") + "\n" + indent(strings.Join(helpLines, "\n"))
}

var helpLines = []string{
	"drag tool → canvas  place",
	"drag node           move",
	"drag • handle       connect",
	"double-click node   open",
	"",
	"[u] undo   [r] redo",
	"[d] delete selected",
	"[enter] open selected",
	"[tab] next view [x] close tab",
	"[esc] back to canvas",
	"[/] search tools",
	"[c] copy graph as YAML",
	"arrows  pan    [q] back",
}

func indent(s string) string {
	return " " + strings.ReplaceAll(s, "\n", "\n ")
}
