package models

import (
	"time"
)

// RoundResult records how one round ended. Values are treated as
// immutable; use Clone before handing one out.
type RoundResult struct {
	// ID is the unique identifier for the result
	ID string

	// Round is the 1-based round number
	Round int

	// Roles is the full role map of the round, public once it is resolved
	Roles RoleMap

	// Guesser is the player who held the Jalad role
	Guesser string

	// Guess is the player the Jalad accused
	Guess string

	// ActualHarami is the player who really held the Harami role
	ActualHarami string

	// CorrectGuess is true when Guess == ActualHarami
	CorrectGuess bool

	// Winner is the player credited with Points
	Winner string

	// Points is the award banked by Winner
	Points int

	// ResolvedAt is when the guess was evaluated
	ResolvedAt time.Time
}

// Clone returns a deep copy of the result
func (r RoundResult) Clone() RoundResult {
	r.Roles = r.Roles.Clone()
	return r
}
