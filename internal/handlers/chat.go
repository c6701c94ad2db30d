package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/jwebster45206/courtside/internal/storage"
	"github.com/jwebster45206/courtside/pkg/chat"
	"github.com/jwebster45206/courtside/pkg/engine"
)

// ChatHandler answers one conversational turn per request: it loads the
// caller's dialogue state, runs the engine, and persists the updated
// state alongside the transcript.
type ChatHandler struct {
	engine *engine.Engine
	store  storage.SessionStore
	logger *slog.Logger
}

func NewChatHandler(eng *engine.Engine, store storage.SessionStore, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		engine: eng,
		store:  store,
		logger: logger,
	}
}

func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		h.logger.Warn("Method not allowed for chat endpoint",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Only POST is supported.")
		return
	}

	var request chat.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.logger.Warn("Invalid request body", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "Invalid request body. Expected JSON with 'session_id' and 'message' fields.")
		return
	}
	if err := request.Validate(); err != nil {
		h.logger.Warn("Invalid chat request", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	s, err := h.store.LoadSession(ctx, request.SessionID)
	if err != nil {
		h.logger.Error("Failed to load session", "id", request.SessionID, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load session.")
		return
	}
	if s == nil {
		writeError(w, h.logger, http.StatusNotFound, "Session not found. Create one with POST /v1/session.")
		return
	}

	reply := h.engine.HandleTurn(ctx, request.Message, s)
	s.Append(chat.ChatRoleUser, request.Message)
	s.Append(chat.ChatRoleAgent, reply)

	if err := h.store.SaveSession(ctx, s); err != nil {
		// The reply is still good; losing carry-over state is worth a
		// log line, not a failed turn.
		h.logger.Error("Failed to save session after turn", "id", s.ID, "error", err)
	}

	h.logger.Info("Chat turn handled",
		"session_id", s.ID,
		"last_player", s.LastPlayer,
		"last_season", s.LastSeason)

	response := chat.ChatResponse{
		SessionID:   s.ID,
		Message:     reply,
		ChatHistory: s.ChatHistory,
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("Error encoding chat response", "error", err)
	}
}
