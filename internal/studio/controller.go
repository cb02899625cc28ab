package studio

import (
	"image"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wesen/studio/internal/catalog"
	"github.com/wesen/studio/internal/views"
	"github.com/wesen/studio/pkg/geometry"
	"github.com/wesen/studio/pkg/history"
)

// Templates is the part of the tool catalog the controller needs.
type Templates interface {
	Lookup(typeTag string) (catalog.Template, bool)
	IsInline(typeTag string) bool
}

// Options configures a Controller.
type Options struct {
	Logger *zap.Logger
	// HistoryLimit caps the number of kept history entries; 0 is unbounded.
	HistoryLimit int
	// NewID generates node IDs. Defaults to uuid.NewString.
	NewID func() string
}

// Controller is the single write path into a session. It owns the store,
// the undo history and the tab/inspector state.
type Controller struct {
	store     *Store
	history   *history.History[Snapshot]
	templates Templates
	tabs      *views.Tabs
	inspector *views.Inspector
	logger    *zap.Logger
}

// NewController creates a session with an empty graph.
func NewController(templates Templates, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	store := NewStore(newID)
	return &Controller{
		store: store,
		history: history.New(store.Snapshot(), Snapshot.Equal,
			history.WithLimit(opts.HistoryLimit)),
		templates: templates,
		tabs:      views.NewTabs(),
		inspector: &views.Inspector{},
		logger:    logger.Named("controller"),
	}
}

// Store returns the read side of the session.
func (c *Controller) Store() *Store { return c.store }

// Tabs returns the open detail tabs.
func (c *Controller) Tabs() *views.Tabs { return c.tabs }

// Inspector returns the side-panel inspector.
func (c *Controller) Inspector() *views.Inspector { return c.inspector }

// State reports whether undo and redo are available.
func (c *Controller) State() CommandState {
	return CommandState{CanUndo: c.history.CanUndo(), CanRedo: c.history.CanRedo()}
}

// HistoryLen returns the number of kept history entries.
func (c *Controller) HistoryLen() int { return c.history.Len() }

// HistoryIndex returns the position of the current state in the history,
// 0 being the oldest kept entry.
func (c *Controller) HistoryIndex() int { return c.history.Index() }

// Committed returns the last committed graph. Unlike Store().Snapshot()
// it never includes a node moved by a drag still in progress.
func (c *Controller) Committed() Snapshot { return c.history.Current() }

// TargetAt resolves what is under pt. Nodes are checked topmost first;
// a handle wins over its own node's body, but never over the body of a
// node stacked above it.
func (c *Controller) TargetAt(pt image.Point) Target {
	body := c.store.graph.HitTest(pt)
	nodes := c.store.graph.Nodes()
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		if h, ok := geometry.HandleAt(n.Data.Pos(), pt); ok {
			return OnHandle(n.ID, h)
		}
		if body != nil && n.ID == body.ID {
			return OnNode(n.ID)
		}
	}
	return OnCanvas()
}

// Dispatch applies one event. It reports whether the history moved, that
// is whether a new state was committed or an undo/redo was applied.
func (c *Controller) Dispatch(ev Event) bool {
	switch ev := ev.(type) {
	case PointerDown:
		return c.pointerDown(ev)
	case PointerMove:
		c.pointerMove(ev)
		return false
	case PointerUp:
		return c.pointerUp(ev)
	case DropTemplate:
		return c.drop(ev)
	case DeleteNode:
		return c.deleteNode(ev.NodeID)
	case Activate:
		c.activate(ev.NodeID)
		return false
	case Undo:
		return c.undo()
	case Redo:
		return c.redo()
	}
	return false
}

// ── Pointer gestures ──

func (c *Controller) pointerDown(ev PointerDown) bool {
	committed := false
	if _, idle := c.store.interaction.(Idle); !idle {
		c.logger.Debug("pointer down during active gesture, finishing it",
			zap.String("state", InteractionName(c.store.interaction)))
		committed = c.pointerUp(PointerUp{At: ev.At, Target: OnCanvas()})
	}

	n := c.store.graph.Node(ev.Target.NodeID)
	if n == nil {
		return committed
	}
	switch ev.Target.Kind {
	case TargetHandle:
		if !ev.Target.Handle.Valid() {
			return committed
		}
		c.store.interaction = Connecting{
			FromID:     n.ID,
			FromHandle: ev.Target.Handle,
			Start:      geometry.HandleCoordinates(n.Data.Pos(), ev.Target.Handle),
			End:        ev.At,
		}
	case TargetNode:
		c.store.interaction = Dragging{NodeID: n.ID, Offset: ev.At.Sub(n.Data.Pos())}
	}
	return committed
}

func (c *Controller) pointerMove(ev PointerMove) {
	switch st := c.store.interaction.(type) {
	case Dragging:
		c.store.graph.MoveNode(st.NodeID, ev.At.Sub(st.Offset), SetPos)
	case Connecting:
		st.End = ev.At
		c.store.interaction = st
	}
}

func (c *Controller) pointerUp(ev PointerUp) bool {
	switch st := c.store.interaction.(type) {
	case Dragging:
		c.store.interaction = Idle{}
		return c.commit("move")
	case Connecting:
		c.store.interaction = Idle{}
		return c.connect(st, ev)
	}
	return false
}

func (c *Controller) connect(st Connecting, ev PointerUp) bool {
	if ev.Target.Kind == TargetCanvas || ev.Target.NodeID == st.FromID {
		c.logger.Debug("connection discarded", zap.String("from", st.FromID))
		return false
	}
	from := c.store.graph.Node(st.FromID)
	to := c.store.graph.Node(ev.Target.NodeID)
	if from == nil || to == nil {
		return false
	}
	if from.Data.Type == to.Data.Type {
		c.logger.Debug("connection rejected: same node type",
			zap.String("type", from.Data.Type),
			zap.String("from", from.ID),
			zap.String("to", to.ID))
		return false
	}
	link := Link{
		FromHandle: st.FromHandle,
		ToHandle:   geometry.NearestHandle(to.Data.Pos(), ev.At),
	}
	if !c.store.graph.AddEdge(from.ID, to.ID, link) {
		c.logger.Debug("connection already exists",
			zap.String("from", from.ID), zap.String("to", to.ID))
		return false
	}
	return c.commit("connect")
}

// ── Commands ──

func (c *Controller) drop(ev DropTemplate) bool {
	p, err := catalog.DecodePayload(ev.Fields)
	if err != nil {
		c.logger.Warn("invalid drop payload", zap.Error(err))
		return false
	}
	tpl, ok := c.templates.Lookup(p.Type)
	if !ok {
		c.logger.Warn("unknown template type in drop", zap.String("type", p.Type))
		return false
	}
	version := c.store.graph.Count(func(d NodeData) bool { return d.Type == tpl.Type }) + 1
	origin := ev.At.Sub(image.Pt(geometry.NodeWidth/2, geometry.NodeHeight/2))
	id := c.store.graph.AddNode(NodeData{
		Type:    tpl.Type,
		Name:    tpl.Name,
		Version: version,
		Icon:    tpl.Icon,
		X:       origin.X,
		Y:       origin.Y,
	})
	c.logger.Info("node placed",
		zap.String("id", id),
		zap.String("type", tpl.Type),
		zap.Int("version", version))
	return c.commit("place")
}

func (c *Controller) deleteNode(id string) bool {
	if c.store.graph.Node(id) == nil {
		return false
	}
	// A gesture in flight gets its own history entry before the delete.
	if _, idle := c.store.interaction.(Idle); !idle {
		c.logger.Debug("delete during active gesture, finishing it",
			zap.String("state", InteractionName(c.store.interaction)))
		c.pointerUp(PointerUp{Target: OnCanvas()})
	}
	c.store.graph.RemoveNode(id)
	c.tabs.Close(id)
	c.inspector.CloseIf(id)
	c.logger.Info("node deleted", zap.String("id", id))
	return c.commit("delete")
}

func (c *Controller) activate(id string) {
	n := c.store.graph.Node(id)
	if n == nil {
		return
	}
	if c.templates.IsInline(n.Data.Type) {
		c.inspector.Open(id)
		return
	}
	c.tabs.Open(id)
}

func (c *Controller) undo() bool {
	if !c.history.CanUndo() {
		return false
	}
	c.restore(c.history.Undo())
	return true
}

func (c *Controller) redo() bool {
	if !c.history.CanRedo() {
		return false
	}
	c.restore(c.history.Redo())
	return true
}

func (c *Controller) restore(snap Snapshot) {
	c.store.restore(snap)
	exists := func(id string) bool { return c.store.graph.Node(id) != nil }
	c.tabs.Retain(exists)
	if id, ok := c.inspector.Bound(); ok && !exists(id) {
		c.inspector.Close()
	}
}

func (c *Controller) commit(reason string) bool {
	if !c.history.Commit(c.store.Snapshot()) {
		c.logger.Debug("nothing to commit", zap.String("reason", reason))
		return false
	}
	c.logger.Debug("committed",
		zap.String("reason", reason),
		zap.Int("entries", c.history.Len()))
	return true
}
