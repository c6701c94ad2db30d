package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jwebster45206/courtside/internal/storage"
	"github.com/jwebster45206/courtside/pkg/chat"
	"github.com/jwebster45206/courtside/pkg/session"
)

// SessionHandler manages conversation lifecycle: create, inspect, and
// the explicit "clear chat" reset.
type SessionHandler struct {
	store  storage.SessionStore
	logger *slog.Logger
}

func NewSessionHandler(store storage.SessionStore, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		store:  store,
		logger: logger,
	}
}

func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch r.Method {
	case http.MethodPost:
		h.create(w, r)
	case http.MethodGet:
		h.get(w, r)
	case http.MethodDelete:
		h.reset(w, r)
	default:
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed.")
	}
}

// sessionID pulls the ID path segment from /v1/session/{id}.
func sessionID(r *http.Request) (uuid.UUID, bool) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	idStr := parts[len(parts)-1]
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (h *SessionHandler) create(w http.ResponseWriter, r *http.Request) {
	s := session.New()
	if err := h.store.SaveSession(r.Context(), s); err != nil {
		h.logger.Error("Failed to save new session", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to create session.")
		return
	}
	h.logger.Info("Session created", "id", s.ID)
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(s); err != nil {
		h.logger.Error("Error encoding session response", "error", err)
	}
}

func (h *SessionHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid session ID.")
		return
	}
	s, err := h.store.LoadSession(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load session", "id", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load session.")
		return
	}
	if s == nil {
		writeError(w, h.logger, http.StatusNotFound, "Session not found.")
		return
	}
	if err := json.NewEncoder(w).Encode(s); err != nil {
		h.logger.Error("Error encoding session response", "error", err)
	}
}

// reset clears remembered entities and the transcript but keeps the
// session ID valid, mirroring the chat client's "clear chat" action.
func (h *SessionHandler) reset(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(r)
	if !ok {
		writeError(w, h.logger, http.StatusBadRequest, "Invalid session ID.")
		return
	}
	s, err := h.store.LoadSession(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to load session", "id", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load session.")
		return
	}
	if s == nil {
		writeError(w, h.logger, http.StatusNotFound, "Session not found.")
		return
	}
	s.Reset()
	if err := h.store.SaveSession(r.Context(), s); err != nil {
		h.logger.Error("Failed to save reset session", "id", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to reset session.")
		return
	}
	h.logger.Info("Session reset", "id", id)
	if err := json.NewEncoder(w).Encode(s); err != nil {
		h.logger.Error("Error encoding session response", "error", err)
	}
}

func writeError(w http.ResponseWriter, logger *slog.Logger, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(chat.ChatResponse{Error: msg}); err != nil {
		logger.Error("Error encoding error response", "error", err)
	}
}
