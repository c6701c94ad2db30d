package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/courtside/pkg/chat"
)

// Session is the dialogue state for one conversation. LastPlayer and
// LastSeason hold the most recently resolved entities, which later turns
// fall back to when the utterance omits them. A turn that fails to
// resolve a field leaves that field unchanged.
type Session struct {
	ID          uuid.UUID          `json:"id"`
	LastPlayer  string             `json:"last_player,omitempty"` // canonical roster full name
	LastSeason  string             `json:"last_season,omitempty"` // calendar year, e.g. "2022"
	ChatHistory []chat.ChatMessage `json:"chat_history,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func New() *Session {
	now := time.Now().UTC()
	return &Session{
		ID:          uuid.New(),
		ChatHistory: make([]chat.ChatMessage, 0),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Reset clears all remembered state but keeps the session ID, so a
// "clear chat" action does not invalidate the caller's handle.
func (s *Session) Reset() {
	s.LastPlayer = ""
	s.LastSeason = ""
	s.ChatHistory = s.ChatHistory[:0]
	s.UpdatedAt = time.Now().UTC()
}

// Append records one message on the conversation transcript.
func (s *Session) Append(role, content string) {
	s.ChatHistory = append(s.ChatHistory, chat.ChatMessage{Role: role, Content: content})
	s.UpdatedAt = time.Now().UTC()
}
