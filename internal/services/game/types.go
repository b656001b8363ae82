package game

import (
	"github.com/KirkDiggler/hakem/internal/common/clock"
	"github.com/KirkDiggler/hakem/internal/common/uuid"
	"github.com/KirkDiggler/hakem/internal/models"
	sessionRepo "github.com/KirkDiggler/hakem/internal/repositories/session"
	"github.com/KirkDiggler/hakem/internal/session"
	"github.com/KirkDiggler/hakem/internal/shuffle"
	"go.uber.org/zap"
)

// Config holds configuration for the game service
type Config struct {
	// Repository stores session snapshots
	Repository sessionRepo.Repository

	// Shuffler deals roles each round
	Shuffler shuffle.Permuter

	// Clock stamps round results
	Clock clock.Clock

	// UUIDGenerator names sessions and results
	UUIDGenerator uuid.UUID

	// Logger is optional; a no-op logger is used when nil
	Logger *zap.Logger

	// Award is the points banked by a round's winner. Zero or less means
	// the default of 100.
	Award int
}

type StartGameInput struct {
	Names []string
}

type StartGameOutput struct {
	View session.View
}

type ShuffleRolesInput struct{}

type ShuffleRolesOutput struct {
	View session.View
}

type RevealRoleInput struct{}

type RevealRoleOutput struct {
	View session.View
}

type ConfirmRoleInput struct{}

type ConfirmRoleOutput struct {
	View session.View

	// AllAssigned is true once the last player has confirmed
	AllAssigned bool
}

type BeginGuessingInput struct{}

type BeginGuessingOutput struct {
	View session.View
}

type RevealHakemInput struct{}

type RevealHakemOutput struct {
	View session.View
}

type SubmitGuessInput struct {
	Guess string
}

type SubmitGuessOutput struct {
	View   session.View
	Result models.RoundResult
}

type EndRoundInput struct{}

type EndRoundOutput struct {
	View session.View

	// Banked is the result that was just committed
	Banked models.RoundResult
}

type EndGameInput struct{}

type EndGameOutput struct {
	View session.View
}

type ResetGameInput struct{}

type ResetGameOutput struct {
	View session.View
}

type GetSessionInput struct{}

type GetSessionOutput struct {
	View session.View
}

type GetLeaderboardInput struct{}

type GetLeaderboardOutput struct {
	Leaderboard []models.Standing
	Scores      map[string]int
}

type GetHistoryInput struct{}

type GetHistoryOutput struct {
	History []models.RoundResult
	Stats   models.Stats
}
