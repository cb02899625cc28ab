package api

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wesen/studio/internal/apperr"
	"github.com/wesen/studio/internal/studio"
)

// Session is one editing canvas. Its mutex serialises events so they are
// applied strictly in arrival order.
type Session struct {
	ID string

	mu   sync.Mutex
	ctrl *studio.Controller
}

// Do runs fn with exclusive access to the session's controller.
func (s *Session) Do(fn func(c *studio.Controller)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ctrl)
}

// Manager owns the open sessions.
type Manager struct {
	templates    studio.Templates
	historyLimit int
	logger       *zap.Logger
	metrics      *Metrics

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager.
func NewManager(templates studio.Templates, historyLimit int, logger *zap.Logger, metrics *Metrics) *Manager {
	return &Manager{
		templates:    templates,
		historyLimit: historyLimit,
		logger:       logger,
		metrics:      metrics,
		sessions:     make(map[string]*Session),
	}
}

// Create opens a new session with an empty graph.
func (m *Manager) Create() *Session {
	id := uuid.NewString()
	s := &Session{
		ID: id,
		ctrl: studio.NewController(m.templates, studio.Options{
			Logger:       m.logger.With(zap.String("session", id)),
			HistoryLimit: m.historyLimit,
		}),
	}
	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()
	m.metrics.SessionOpened()
	m.logger.Info("session created", zap.String("session", id))
	return s
}

// Get returns the session with the given id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, apperr.NewNotFound("session %s not found", id)
	}
	return s, nil
}

// Delete closes a session.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return apperr.NewNotFound("session %s not found", id)
	}
	m.metrics.SessionClosed()
	m.logger.Info("session closed", zap.String("session", id))
	return nil
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
