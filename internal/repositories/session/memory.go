package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	gamesession "github.com/KirkDiggler/hakem/internal/session"
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// memoryRepository implements the Repository interface with a map.
// Snapshots are cloned on the way in and out so callers never share state
// with the store.
type memoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]gamesession.Session
}

// NewMemory creates a new in-memory session repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		sessions: make(map[string]gamesession.Session),
	}
}

// SaveSession stores a copy of the session
func (r *memoryRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}
	if input.Session.ID() == "" {
		return errors.New("session ID cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[input.Session.ID()] = input.Session.Clone()
	return nil
}

// GetSession returns a copy of the stored session
func (r *memoryRepository) GetSession(ctx context.Context, input *GetSessionInput) (*gamesession.Session, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.sessions[input.SessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, input.SessionID)
	}

	out := stored.Clone()
	return &out, nil
}

// DeleteSession removes a session. Deleting an unknown ID is not an error.
func (r *memoryRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, input.SessionID)
	return nil
}
