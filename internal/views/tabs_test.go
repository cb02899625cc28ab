package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenFocusesWithoutDuplicating(t *testing.T) {
	tabs := NewTabs()
	assert.True(t, tabs.CanvasActive())

	tabs.Open("a")
	tabs.Open("b")
	tabs.Open("a")

	assert.Equal(t, []string{"a", "b"}, tabs.List())
	assert.Equal(t, "a", tabs.Active())
}

func TestCloseActiveFallsBackToMostRecent(t *testing.T) {
	tabs := NewTabs()
	tabs.Open("a")
	tabs.Open("b")
	tabs.Open("c")
	tabs.Activate("b")

	assert.True(t, tabs.Close("b"))
	assert.Equal(t, "c", tabs.Active())

	tabs.Close("c")
	assert.Equal(t, "a", tabs.Active())

	tabs.Close("a")
	assert.Equal(t, CanvasView, tabs.Active())
	assert.Empty(t, tabs.List())
}

func TestCloseInactiveKeepsFocus(t *testing.T) {
	tabs := NewTabs()
	tabs.Open("a")
	tabs.Open("b")

	tabs.Close("a")
	assert.Equal(t, "b", tabs.Active())
	assert.False(t, tabs.Close("missing"))
}

func TestActivate(t *testing.T) {
	tabs := NewTabs()
	tabs.Open("a")

	assert.True(t, tabs.Activate(CanvasView))
	assert.True(t, tabs.CanvasActive())
	assert.False(t, tabs.Activate("never-opened"))
	assert.True(t, tabs.CanvasActive())
}

func TestCycle(t *testing.T) {
	tabs := NewTabs()
	tabs.Cycle()
	assert.True(t, tabs.CanvasActive(), "no tabs: stays on canvas")

	tabs.Open("a")
	tabs.Open("b")
	tabs.Activate(CanvasView)

	tabs.Cycle()
	assert.Equal(t, "a", tabs.Active())
	tabs.Cycle()
	assert.Equal(t, "b", tabs.Active())
	tabs.Cycle()
	assert.Equal(t, CanvasView, tabs.Active())
}

func TestRetain(t *testing.T) {
	tabs := NewTabs()
	tabs.Open("a")
	tabs.Open("b")
	tabs.Open("c")

	tabs.Retain(func(id string) bool { return id != "c" })
	assert.Equal(t, []string{"a", "b"}, tabs.List())
	assert.Equal(t, "b", tabs.Active())

	tabs.Activate(CanvasView)
	tabs.Retain(func(string) bool { return false })
	assert.Equal(t, CanvasView, tabs.Active())
}

func TestInspector(t *testing.T) {
	var in Inspector
	_, open := in.Bound()
	assert.False(t, open)

	in.Open("a")
	in.Open("b")
	id, open := in.Bound()
	assert.True(t, open)
	assert.Equal(t, "b", id, "only one inspector at a time")

	assert.False(t, in.CloseIf("a"))
	assert.True(t, in.CloseIf("b"))
	_, open = in.Bound()
	assert.False(t, open)

	in.Open("c")
	in.Close()
	_, open = in.Bound()
	assert.False(t, open)
}

func TestInspectorIndependentOfTabs(t *testing.T) {
	tabs := NewTabs()
	var in Inspector
	tabs.Open("a")
	in.Open("b")
	in.Close()
	assert.Equal(t, "a", tabs.Active())
	assert.Equal(t, []string{"a"}, tabs.List())
}
