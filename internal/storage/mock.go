package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jwebster45206/courtside/pkg/session"
)

// MockStore is an in-memory SessionStore for tests and single-process
// development runs.
type MockStore struct {
	sessions  map[uuid.UUID]*session.Session
	pingError error
	saveError error
}

var _ SessionStore = (*MockStore)(nil)

func NewMockStore() *MockStore {
	return &MockStore{
		sessions: make(map[uuid.UUID]*session.Session),
	}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStore) SetPingError(err error) {
	m.pingError = err
}

// SetSaveError configures the mock to fail on save with the given error
func (m *MockStore) SetSaveError(err error) {
	m.saveError = err
}

func (m *MockStore) Ping(ctx context.Context) error {
	return m.pingError
}

func (m *MockStore) Close() error {
	return nil
}

func (m *MockStore) SaveSession(ctx context.Context, s *session.Session) error {
	if m.saveError != nil {
		return m.saveError
	}
	if s == nil {
		return errors.New("session cannot be nil")
	}
	m.sessions[s.ID] = s
	return nil
}

func (m *MockStore) LoadSession(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}

func (m *MockStore) DeleteSession(ctx context.Context, id uuid.UUID) error {
	delete(m.sessions, id)
	return nil
}
