package studio

import (
	"image"

	"github.com/wesen/studio/pkg/geometry"
)

// Interaction is the transient pointer state of a session. Exactly one
// variant is current: Idle, Dragging or Connecting.
type Interaction interface {
	interactionName() string
}

// Idle means no gesture is in progress.
type Idle struct{}

// Dragging moves a node. Offset is pointer minus node origin at
// pointer-down, so the node stays under the cursor without jumping.
type Dragging struct {
	NodeID string
	Offset image.Point
}

// Connecting draws an uncommitted connection line from a handle. Start is
// fixed at the handle; End follows the pointer.
type Connecting struct {
	FromID     string
	FromHandle geometry.Handle
	Start      image.Point
	End        image.Point
}

func (Idle) interactionName() string       { return "idle" }
func (Dragging) interactionName() string   { return "dragging" }
func (Connecting) interactionName() string { return "connecting" }

// InteractionName returns "idle", "dragging" or "connecting".
func InteractionName(i Interaction) string {
	if i == nil {
		return Idle{}.interactionName()
	}
	return i.interactionName()
}
