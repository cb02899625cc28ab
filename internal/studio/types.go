// Package studio is the editing core of the Design Studio canvas: the
// graph store, the pointer-driven interaction state machine and the
// undo history. It is synchronous and single-threaded; front ends feed it
// one Event at a time through Controller.Dispatch.
package studio

import (
	"image"
	"slices"

	"github.com/wesen/studio/pkg/geometry"
	"github.com/wesen/studio/pkg/graphmodel"
)

// NodeData is a placed instance of a tool template.
type NodeData struct {
	Type string `json:"type" yaml:"type"`
	Name string `json:"name" yaml:"name"`
	// Version is the ordinal of this node among nodes of the same type at
	// the time it was placed, starting at 1. Display only.
	Version int    `json:"version" yaml:"version"`
	Icon    string `json:"icon,omitempty" yaml:"icon,omitempty"`
	X       int    `json:"x" yaml:"x"`
	Y       int    `json:"y" yaml:"y"`
}

// Pos implements graphmodel.Spatial.
func (n NodeData) Pos() image.Point { return image.Pt(n.X, n.Y) }

// Size implements graphmodel.Spatial. All nodes share one size.
func (n NodeData) Size() image.Point { return image.Pt(geometry.NodeWidth, geometry.NodeHeight) }

// SetPos is the setter for graphmodel.MoveNode.
func SetPos(n *NodeData, p image.Point) {
	n.X = p.X
	n.Y = p.Y
}

// Link records which handles a connection attaches to.
type Link struct {
	FromHandle geometry.Handle `json:"from_handle" yaml:"from_handle"`
	ToHandle   geometry.Handle `json:"to_handle" yaml:"to_handle"`
}

// Node is a node in the studio graph.
type Node = graphmodel.Node[NodeData]

// Connection is a directed edge between two node handles.
type Connection = graphmodel.Edge[Link]

// Graph is the concrete graph type for the studio.
type Graph = graphmodel.Graph[NodeData, Link]

// Snapshot is a value copy of the whole graph, as stored in the history.
type Snapshot struct {
	Nodes       []Node       `json:"nodes" yaml:"nodes"`
	Connections []Connection `json:"connections" yaml:"connections"`
}

// Equal reports whether two snapshots hold the same graph.
func (s Snapshot) Equal(o Snapshot) bool {
	return slices.Equal(s.Nodes, o.Nodes) && slices.Equal(s.Connections, o.Connections)
}

// CommandState is what a toolbar needs to enable its undo/redo buttons.
type CommandState struct {
	CanUndo bool `json:"can_undo"`
	CanRedo bool `json:"can_redo"`
}
