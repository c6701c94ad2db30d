package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/jwebster45206/courtside/pkg/session"
)

// SessionStore defines the interface for conversation-state persistence.
type SessionStore interface {
	// Ping tests the store connection
	Ping(ctx context.Context) error

	// Close closes the store connection
	Close() error

	// SaveSession saves a session under its ID
	SaveSession(ctx context.Context, s *session.Session) error

	// LoadSession retrieves a session by ID.
	// Returns nil if the session doesn't exist.
	LoadSession(ctx context.Context, id uuid.UUID) (*session.Session, error)

	// DeleteSession removes a session by ID
	DeleteSession(ctx context.Context, id uuid.UUID) error
}
