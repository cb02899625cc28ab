// Package history provides a linear undo/redo stack of whole-state
// snapshots. Committing after an undo discards the redo future, and a
// commit equal to the current entry is ignored.
package history

// Option configures a History.
type Option func(*options)

type options struct {
	limit int
}

// WithLimit caps the number of retained entries; the oldest entries are
// dropped first. A limit <= 0 means unbounded.
func WithLimit(n int) Option {
	return func(o *options) { o.limit = n }
}

// History is an ordered list of snapshots plus a cursor. It is not safe
// for concurrent use.
type History[T any] struct {
	entries []T
	index   int
	equal   func(a, b T) bool
	limit   int
}

// New creates a history whose first entry (index 0) is initial. equal
// decides whether two snapshots are the same state.
func New[T any](initial T, equal func(a, b T) bool, opts ...Option) *History[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &History[T]{
		entries: []T{initial},
		equal:   equal,
		limit:   o.limit,
	}
}

// Commit records s as the newest state. It returns false, and changes
// nothing, when s equals the current entry.
func (h *History[T]) Commit(s T) bool {
	if h.equal(h.entries[h.index], s) {
		return false
	}
	h.entries = append(h.entries[:h.index+1], s)
	h.index = len(h.entries) - 1

	if h.limit > 0 && len(h.entries) > h.limit {
		drop := len(h.entries) - h.limit
		h.entries = append(h.entries[:0:0], h.entries[drop:]...)
		h.index -= drop
	}
	return true
}

// Undo steps back one entry and returns it. At the oldest entry it
// returns the current entry unchanged.
func (h *History[T]) Undo() T {
	if h.index > 0 {
		h.index--
	}
	return h.entries[h.index]
}

// Redo steps forward one entry and returns it. At the newest entry it
// returns the current entry unchanged.
func (h *History[T]) Redo() T {
	if h.index < len(h.entries)-1 {
		h.index++
	}
	return h.entries[h.index]
}

// Current returns the entry at the cursor.
func (h *History[T]) Current() T { return h.entries[h.index] }

// CanUndo reports whether Undo would move the cursor.
func (h *History[T]) CanUndo() bool { return h.index > 0 }

// CanRedo reports whether Redo would move the cursor.
func (h *History[T]) CanRedo() bool { return h.index < len(h.entries)-1 }

// Len returns the number of retained entries.
func (h *History[T]) Len() int { return len(h.entries) }

// Index returns the cursor position.
func (h *History[T]) Index() int { return h.index }
