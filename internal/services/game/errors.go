package game

import "github.com/KirkDiggler/hakem/internal/models"

// GameError is a custom error type for game service errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilRepository    GameError = "session repository cannot be nil"
	ErrNilShuffler      GameError = "shuffler cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
	ErrNilInput         GameError = "input cannot be nil"
)

// Rule violations reported by the session, re-exported for callers that
// only import the service
const (
	ErrValidation         = models.ErrValidation
	ErrIllegalGuessTarget = models.ErrIllegalGuessTarget
	ErrIllegalTransition  = models.ErrIllegalTransition
)
