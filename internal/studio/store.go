package studio

import (
	"image"
	"slices"

	"github.com/wesen/studio/pkg/graphmodel"
)

// Store owns the graph of one editing session and its current
// interaction. Only the Controller mutates it; everything else reads.
type Store struct {
	graph       *Graph
	interaction Interaction
}

// NewStore returns an empty store. newID generates node IDs.
func NewStore(newID func() string) *Store {
	var opts []graphmodel.Option
	if newID != nil {
		opts = append(opts, graphmodel.WithIDs(newID))
	}
	return &Store{
		graph:       graphmodel.New[NodeData, Link](opts...),
		interaction: Idle{},
	}
}

// Interaction returns the gesture in progress.
func (s *Store) Interaction() Interaction { return s.interaction }

// Node returns a copy of the node with the given ID.
func (s *Store) Node(id string) (Node, bool) {
	n := s.graph.Node(id)
	if n == nil {
		return Node{}, false
	}
	return *n, true
}

// Nodes returns copies of all nodes in placement order. Later nodes draw
// on top of earlier ones.
func (s *Store) Nodes() []Node {
	nodes, _ := s.graph.Snapshot()
	return nodes
}

// Connections returns a copy of the connection list.
func (s *Store) Connections() []Connection {
	return slices.Clone(s.graph.Edges())
}

// Outgoing returns connections that start at id.
func (s *Store) Outgoing(id string) []Connection { return s.graph.OutEdges(id) }

// Incoming returns connections that end at id.
func (s *Store) Incoming(id string) []Connection { return s.graph.InEdges(id) }

// Len returns the node count.
func (s *Store) Len() int { return s.graph.Len() }

// Visible returns copies of the nodes whose box overlaps r, in placement
// order.
func (s *Store) Visible(r image.Rectangle) []Node {
	var nodes []Node
	for _, n := range s.graph.NodesInRect(r) {
		nodes = append(nodes, *n)
	}
	return nodes
}

// Snapshot returns a value copy of the graph.
func (s *Store) Snapshot() Snapshot {
	nodes, conns := s.graph.Snapshot()
	return Snapshot{Nodes: nodes, Connections: conns}
}

func (s *Store) restore(snap Snapshot) {
	s.graph.Restore(snap.Nodes, snap.Connections)
	s.interaction = Idle{}
}
