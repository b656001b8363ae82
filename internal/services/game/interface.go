package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/hakem/internal/services/game Service

import "context"

// Service defines the interface for driving a hot-seat session. Every
// mutating call returns the public view of the session after it.
type Service interface {
	// StartGame seats four players and opens round one
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// ShuffleRoles deals the roles for the current round
	ShuffleRoles(ctx context.Context, input *ShuffleRolesInput) (*ShuffleRolesOutput, error)

	// RevealRole shows the player holding the device their role
	RevealRole(ctx context.Context, input *RevealRoleInput) (*RevealRoleOutput, error)

	// ConfirmRole hands the device to the next player
	ConfirmRole(ctx context.Context, input *ConfirmRoleInput) (*ConfirmRoleOutput, error)

	// BeginGuessing moves a fully assigned round to the Hakem reveal
	BeginGuessing(ctx context.Context, input *BeginGuessingInput) (*BeginGuessingOutput, error)

	// RevealHakem makes the Hakem public
	RevealHakem(ctx context.Context, input *RevealHakemInput) (*RevealHakemOutput, error)

	// SubmitGuess resolves the round on the Jalad's accusation
	SubmitGuess(ctx context.Context, input *SubmitGuessInput) (*SubmitGuessOutput, error)

	// EndRound banks the pending result and starts the next round
	EndRound(ctx context.Context, input *EndRoundInput) (*EndRoundOutput, error)

	// EndGame closes the session and shows final standings
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)

	// ResetGame throws the session away and starts an empty one
	ResetGame(ctx context.Context, input *ResetGameInput) (*ResetGameOutput, error)

	// GetSession returns the current public view
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// GetLeaderboard returns the standings
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetHistory returns committed rounds, oldest first
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)
}
