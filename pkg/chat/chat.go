package chat

import (
	"fmt"

	"github.com/google/uuid"
)

const MaxMessageLength = 512

const (
	ChatRoleUser  = "user"
	ChatRoleAgent = "assistant"
)

// ChatMessage is a single message on a conversation transcript.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is a chat turn submitted to the courtside api.
type ChatRequest struct {
	SessionID uuid.UUID `json:"session_id"`
	Message   string    `json:"message"`
}

// ChatResponse is the reply for one turn. ChatHistory carries the full
// transcript so stateless clients can re-render the conversation.
type ChatResponse struct {
	SessionID   uuid.UUID     `json:"session_id"`
	Message     string        `json:"message,omitempty"`
	ChatHistory []ChatMessage `json:"chat_history,omitempty"`
	Error       string        `json:"error,omitempty"`
}

func (cr *ChatRequest) Validate() error {
	if cr.Message == "" {
		return fmt.Errorf("message cannot be empty")
	}
	if len(cr.Message) > MaxMessageLength {
		return fmt.Errorf("message exceeds maximum length of %d characters", MaxMessageLength)
	}
	if cr.SessionID == uuid.Nil {
		return fmt.Errorf("session_id is required")
	}
	return nil
}
