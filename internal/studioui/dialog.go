package studioui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wesen/studio/pkg/tealayout"
)

// buildWelcomeLayer shows the first-run introduction until dismissed.
func buildWelcomeLayer(termW, termH int) *lipgloss.Layer {
	lines := []string{
		panelTitleStyle.Render("Welcome to the Design Studio"),
		"",
		"Build a workflow by dragging tools from the",
		"palette on the left onto the canvas.",
		"",
		"• drag a node to move it",
		"• drag from a • handle to another node to connect",
		"  (nodes of the same type cannot be connected)",
		"• double-click a node to configure it",
		"",
		panelDimStyle.Render("[w] or [enter] to start  ·  [q] quit"),
	}
	return tealayout.ModalLayer(strings.Join(lines, "\n"), termW, termH, modalStyle)
}

// buildConfirmDeleteLayer asks before a node is deleted.
func buildConfirmDeleteLayer(m Model, termW, termH int) *lipgloss.Layer {
	n, ok := m.ctrl.Store().Node(m.confirmDelete)
	if !ok {
		return nil
	}
	links := len(m.ctrl.Store().Incoming(n.ID)) + len(m.ctrl.Store().Outgoing(n.ID))
	lines := []string{
		lipgloss.NewStyle().Foreground(colorWarn).Bold(true).Render("Delete node?"),
		"",
		fmt.Sprintf("%s v%d (%s)", n.Data.Name, n.Data.Version, n.Data.Type),
		fmt.Sprintf("and its %d connection(s) will be removed.", links),
		"",
		panelDimStyle.Render("[y] delete  ·  [n] cancel"),
	}
	return tealayout.ModalLayer(strings.Join(lines, "\n"), termW, termH, dangerModalStyle)
}
