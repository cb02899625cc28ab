package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/wesen/studio/internal/apperr"
	"github.com/wesen/studio/internal/studio"
)

// TabsResponse lists open detail tabs and the active view.
type TabsResponse struct {
	Open   []string `json:"open"`
	Active string   `json:"active"`
}

// StateResponse is the full observable state of a session.
type StateResponse struct {
	ID          string              `json:"id"`
	Nodes       []studio.Node       `json:"nodes"`
	Connections []studio.Connection `json:"connections"`
	Interaction string              `json:"interaction"`
	Tabs        TabsResponse        `json:"tabs"`
	Inspector   string              `json:"inspector,omitempty"`
	CanUndo     bool                `json:"can_undo"`
	CanRedo     bool                `json:"can_redo"`
	HistoryLen  int                 `json:"history_len"`
	HistoryPos  int                 `json:"history_index"`
}

// EventResponse reports whether an event moved the history, plus the
// resulting state.
type EventResponse struct {
	Committed bool          `json:"committed"`
	State     StateResponse `json:"state"`
}

func stateOf(id string, c *studio.Controller) StateResponse {
	st := c.State()
	resp := StateResponse{
		ID:          id,
		Nodes:       c.Store().Nodes(),
		Connections: c.Store().Connections(),
		Interaction: studio.InteractionName(c.Store().Interaction()),
		Tabs:        TabsResponse{Open: c.Tabs().List(), Active: c.Tabs().Active()},
		CanUndo:     st.CanUndo,
		CanRedo:     st.CanRedo,
		HistoryLen:  c.HistoryLen(),
		HistoryPos:  c.HistoryIndex(),
	}
	if resp.Nodes == nil {
		resp.Nodes = []studio.Node{}
	}
	if resp.Connections == nil {
		resp.Connections = []studio.Connection{}
	}
	if resp.Tabs.Open == nil {
		resp.Tabs.Open = []string{}
	}
	if id, ok := c.Inspector().Bound(); ok {
		resp.Inspector = id
	}
	return resp
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": s.sessions.Len(),
	})
}

func (s *Server) palette(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"categories": s.catalog.Categories(),
	})
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Create()
	var resp StateResponse
	sess.Do(func(c *studio.Controller) { resp = stateOf(sess.ID, c) })
	s.respondJSON(w, http.StatusCreated, resp)
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.respondAppError(w, err)
		return
	}
	var resp StateResponse
	sess.Do(func(c *studio.Controller) { resp = stateOf(sess.ID, c) })
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(chi.URLParam(r, "id")); err != nil {
		s.respondAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) postEvent(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.respondAppError(w, err)
		return
	}

	var req EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validateRequest(req); err != nil {
		s.respondAppError(w, err)
		return
	}

	var (
		resp  EventResponse
		evErr error
	)
	sess.Do(func(c *studio.Controller) {
		ev, err := req.toEvent(c.TargetAt)
		if err != nil {
			evErr = err
			return
		}
		resp.Committed = c.Dispatch(ev)
		resp.State = stateOf(sess.ID, c)
		s.metrics.RecordEvent(studio.EventName(ev), resp.Committed)
	})
	if evErr != nil {
		s.respondAppError(w, evErr)
		return
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) undo(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, studio.Undo{})
}

func (s *Server) redo(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, studio.Redo{})
}

func (s *Server) dispatch(w http.ResponseWriter, r *http.Request, ev studio.Event) {
	sess, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.respondAppError(w, err)
		return
	}
	var resp EventResponse
	sess.Do(func(c *studio.Controller) {
		resp.Committed = c.Dispatch(ev)
		resp.State = stateOf(sess.ID, c)
	})
	s.metrics.RecordEvent(studio.EventName(ev), resp.Committed)
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) export(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(chi.URLParam(r, "id"))
	if err != nil {
		s.respondAppError(w, err)
		return
	}
	var snap studio.Snapshot
	sess.Do(func(c *studio.Controller) { snap = c.Committed() })
	out, err := studio.MarshalYAML(snap)
	if err != nil {
		s.respondAppError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]any{
		"error":   true,
		"message": message,
		"code":    status,
	})
}

// respondAppError maps the error taxonomy to HTTP status codes.
func (s *Server) respondAppError(w http.ResponseWriter, err error) {
	message := err.Error()
	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	switch apperr.TypeOf(err) {
	case apperr.TypeValidation:
		s.respondError(w, http.StatusBadRequest, message)
	case apperr.TypeNotFound:
		s.respondError(w, http.StatusNotFound, message)
	case apperr.TypeConflict:
		s.respondError(w, http.StatusConflict, message)
	default:
		s.logger.Error("request failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
