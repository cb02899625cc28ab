package studio

import (
	"image"

	"github.com/wesen/studio/pkg/geometry"
)

// TargetKind says what kind of thing is under the pointer.
type TargetKind int

const (
	TargetCanvas TargetKind = iota
	TargetNode
	TargetHandle
)

// Target is what a pointer event landed on.
type Target struct {
	Kind   TargetKind
	NodeID string
	Handle geometry.Handle
}

// OnCanvas targets the canvas background.
func OnCanvas() Target { return Target{Kind: TargetCanvas} }

// OnNode targets a node body.
func OnNode(id string) Target { return Target{Kind: TargetNode, NodeID: id} }

// OnHandle targets one handle of a node.
func OnHandle(id string, h geometry.Handle) Target {
	return Target{Kind: TargetHandle, NodeID: id, Handle: h}
}

// Event is a command for Controller.Dispatch.
type Event interface {
	eventName() string
}

// PointerDown starts a gesture at At.
type PointerDown struct {
	At     image.Point
	Target Target
}

// PointerMove reports pointer motion during a gesture.
type PointerMove struct {
	At image.Point
}

// PointerUp ends the current gesture at At.
type PointerUp struct {
	At     image.Point
	Target Target
}

// DropTemplate places a node from a palette drag. Fields is the encoded
// drag payload (see catalog.Payload).
type DropTemplate struct {
	Fields map[string]string
	At     image.Point
}

// DeleteNode removes a node and its connections. Front ends ask the user
// to confirm before dispatching it.
type DeleteNode struct {
	NodeID string
}

// Activate is a double activation on a node: it opens the node's
// inspector or detail tab.
type Activate struct {
	NodeID string
}

// Undo steps the graph back one committed state.
type Undo struct{}

// Redo steps the graph forward one committed state.
type Redo struct{}

func (PointerDown) eventName() string  { return "pointer_down" }
func (PointerMove) eventName() string  { return "pointer_move" }
func (PointerUp) eventName() string    { return "pointer_up" }
func (DropTemplate) eventName() string { return "drop" }
func (DeleteNode) eventName() string   { return "delete" }
func (Activate) eventName() string     { return "activate" }
func (Undo) eventName() string         { return "undo" }
func (Redo) eventName() string         { return "redo" }

// EventName returns the wire name of an event kind.
func EventName(ev Event) string { return ev.eventName() }
