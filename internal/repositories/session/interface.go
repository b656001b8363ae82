package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/hakem/internal/repositories/session Repository

import (
	"context"

	gamesession "github.com/KirkDiggler/hakem/internal/session"
)

// Repository defines the interface for session persistence
type Repository interface {
	// SaveSession stores a snapshot, replacing any earlier one with the same ID
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*gamesession.Session, error)

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
