package services

import (
	"context"

	"github.com/jwebster45206/courtside/pkg/engine"
)

// HealthChecker defines basic health check capabilities
type HealthChecker interface {
	// Ping tests the service connection
	Ping(ctx context.Context) error
}

// Closer defines cleanup capabilities
type Closer interface {
	// Close closes the service connection
	Close() error
}

// StatsService is a stats backend with lifecycle methods. The engine
// only sees the query surface (engine.StatsBackend); the api server also
// needs ping and close.
type StatsService interface {
	engine.StatsBackend
	HealthChecker
	Closer
}
