package graphmodel

import (
	"image"
	"strconv"
)

// Node wraps a user-supplied data value with a string ID.
type Node[N Spatial] struct {
	ID   string `json:"id" yaml:"id"`
	Data N      `json:"data" yaml:",inline"`
}

// Edge connects two nodes. Data carries caller metadata such as the
// attachment points used at each end.
type Edge[E comparable] struct {
	FromID string `json:"from" yaml:"from"`
	ToID   string `json:"to" yaml:"to"`
	Data   E      `json:"data" yaml:",inline"`
}

// Option configures a Graph.
type Option func(*config)

type config struct {
	newID func() string
}

// WithIDs sets the generator used for new node IDs. Generated IDs must be
// unique within the graph.
func WithIDs(gen func() string) Option {
	return func(c *config) { c.newID = gen }
}

// Graph is a generic spatial graph with stable insertion-order iteration.
type Graph[N Spatial, E comparable] struct {
	nodes    map[string]*Node[N]
	edges    []Edge[E]
	orderIDs []string // insertion order for deterministic iteration
	newID    func() string
}

// New creates an empty graph. Without WithIDs, IDs are "1", "2", ...
func New[N Spatial, E comparable](opts ...Option) *Graph[N, E] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.newID == nil {
		next := 0
		c.newID = func() string {
			next++
			return strconv.Itoa(next)
		}
	}
	return &Graph[N, E]{
		nodes: make(map[string]*Node[N]),
		newID: c.newID,
	}
}

// ── Node operations ──

// AddNode inserts a node and returns its assigned ID.
func (g *Graph[N, E]) AddNode(data N) string {
	id := g.newID()
	g.nodes[id] = &Node[N]{ID: id, Data: data}
	g.orderIDs = append(g.orderIDs, id)
	return id
}

// Node returns a pointer to the node with the given ID, or nil.
func (g *Graph[N, E]) Node(id string) *Node[N] {
	return g.nodes[id]
}

// Nodes returns all nodes in insertion order.
func (g *Graph[N, E]) Nodes() []*Node[N] {
	result := make([]*Node[N], 0, len(g.orderIDs))
	for _, id := range g.orderIDs {
		if n, ok := g.nodes[id]; ok {
			result = append(result, n)
		}
	}
	return result
}

// Len returns the number of nodes.
func (g *Graph[N, E]) Len() int { return len(g.orderIDs) }

// Count returns how many nodes satisfy pred.
func (g *Graph[N, E]) Count(pred func(N) bool) int {
	n := 0
	for _, id := range g.orderIDs {
		if pred(g.nodes[id].Data) {
			n++
		}
	}
	return n
}

// RemoveNode deletes the node and every edge that starts or ends at it.
// It returns false when the node does not exist.
func (g *Graph[N, E]) RemoveNode(id string) bool {
	if _, ok := g.nodes[id]; !ok {
		return false
	}
	delete(g.nodes, id)

	for i, oid := range g.orderIDs {
		if oid == id {
			g.orderIDs = append(g.orderIDs[:i], g.orderIDs[i+1:]...)
			break
		}
	}

	filtered := g.edges[:0]
	for _, e := range g.edges {
		if e.FromID != id && e.ToID != id {
			filtered = append(filtered, e)
		}
	}
	g.edges = filtered
	return true
}

// MoveNode updates the position of a node. The caller provides a setter
// function since Go generics don't support interface setters cleanly.
func (g *Graph[N, E]) MoveNode(id string, pos image.Point, setPos func(*N, image.Point)) bool {
	n, ok := g.nodes[id]
	if !ok {
		return false
	}
	setPos(&n.Data, pos)
	return true
}

// ── Edge operations ──

// AddEdge adds an edge between two existing nodes. It returns false when
// either endpoint is missing or an identical edge already exists.
func (g *Graph[N, E]) AddEdge(fromID, toID string, data E) bool {
	if g.nodes[fromID] == nil || g.nodes[toID] == nil {
		return false
	}
	e := Edge[E]{FromID: fromID, ToID: toID, Data: data}
	for _, existing := range g.edges {
		if existing == e {
			return false
		}
	}
	g.edges = append(g.edges, e)
	return true
}

// Edges returns all edges in insertion order. The slice is shared with
// the graph; clone it before keeping it across mutations.
func (g *Graph[N, E]) Edges() []Edge[E] {
	return g.edges
}

// OutEdges returns edges originating from the given node.
func (g *Graph[N, E]) OutEdges(fromID string) []Edge[E] {
	var result []Edge[E]
	for _, e := range g.edges {
		if e.FromID == fromID {
			result = append(result, e)
		}
	}
	return result
}

// InEdges returns edges terminating at the given node.
func (g *Graph[N, E]) InEdges(toID string) []Edge[E] {
	var result []Edge[E]
	for _, e := range g.edges {
		if e.ToID == toID {
			result = append(result, e)
		}
	}
	return result
}

// ── Snapshots ──

// Snapshot returns value copies of the nodes (in insertion order) and
// edges. Later mutations of the graph do not affect the returned slices.
func (g *Graph[N, E]) Snapshot() ([]Node[N], []Edge[E]) {
	nodes := make([]Node[N], 0, len(g.orderIDs))
	for _, id := range g.orderIDs {
		nodes = append(nodes, *g.nodes[id])
	}
	edges := make([]Edge[E], len(g.edges))
	copy(edges, g.edges)
	return nodes, edges
}

// Restore replaces the graph contents with copies of nodes and edges.
func (g *Graph[N, E]) Restore(nodes []Node[N], edges []Edge[E]) {
	g.nodes = make(map[string]*Node[N], len(nodes))
	g.orderIDs = make([]string, 0, len(nodes))
	for _, n := range nodes {
		n := n
		g.nodes[n.ID] = &n
		g.orderIDs = append(g.orderIDs, n.ID)
	}
	g.edges = make([]Edge[E], len(edges))
	copy(g.edges, edges)
}

// ── Spatial queries ──

// HitTest returns the topmost (last-inserted) node containing the point,
// or nil if no node contains it.
func (g *Graph[N, E]) HitTest(pt image.Point) *Node[N] {
	for i := len(g.orderIDs) - 1; i >= 0; i-- {
		n := g.nodes[g.orderIDs[i]]
		if n != nil && pt.In(BoundsOf(n.Data)) {
			return n
		}
	}
	return nil
}

// NodesInRect returns all nodes whose bounds intersect the given rectangle,
// in insertion order.
func (g *Graph[N, E]) NodesInRect(r image.Rectangle) []*Node[N] {
	var result []*Node[N]
	for _, id := range g.orderIDs {
		n := g.nodes[id]
		if n != nil && BoundsOf(n.Data).Overlaps(r) {
			result = append(result, n)
		}
	}
	return result
}
