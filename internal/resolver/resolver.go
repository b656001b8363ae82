package resolver

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/hakem/internal/models"
)

// DefaultAward is the points banked by the winner of a round
const DefaultAward = 100

// Input carries everything needed to settle one accusation
type Input struct {
	// ID is the identifier given to the result
	ID string

	// Round is the round number being resolved
	Round int

	// Roster is the session roster
	Roster models.Roster

	// Roles is the completed role map of the round
	Roles models.RoleMap

	// HakemRevealed must be true; the Hakem has to step forward before the
	// Jalad may accuse anyone
	HakemRevealed bool

	// Guess is the player the Jalad accuses
	Guess string

	// Award is the points for the winner; zero or less means DefaultAward
	Award int

	// Now is stamped on the result
	Now time.Time
}

// Resolve evaluates the Jalad's guess. The outcome depends only on the
// role map and the guess: a correct guess credits the Jalad, a wrong one
// credits the Harami. The Mofatish is not credited.
func Resolve(in Input) (models.RoundResult, error) {
	if !in.Roles.IsBijection(in.Roster) {
		return models.RoundResult{}, fmt.Errorf("%w: roles are not fully assigned", models.ErrIllegalTransition)
	}
	if !in.HakemRevealed {
		return models.RoundResult{}, fmt.Errorf("%w: the Hakem must reveal before a guess", models.ErrIllegalTransition)
	}

	hakem := in.Roles.Holder(models.RoleHakem)
	if !in.Roster.Contains(in.Guess) {
		return models.RoundResult{}, fmt.Errorf("%w: %q is not playing", models.ErrIllegalGuessTarget, in.Guess)
	}
	if in.Guess == hakem {
		return models.RoundResult{}, fmt.Errorf("%w: %q is the Hakem", models.ErrIllegalGuessTarget, in.Guess)
	}

	award := in.Award
	if award <= 0 {
		award = DefaultAward
	}

	jalad := in.Roles.Holder(models.RoleJalad)
	harami := in.Roles.Holder(models.RoleHarami)
	correct := in.Guess == harami

	winner := harami
	if correct {
		winner = jalad
	}

	return models.RoundResult{
		ID:           in.ID,
		Round:        in.Round,
		Roles:        in.Roles.Clone(),
		Guesser:      jalad,
		Guess:        in.Guess,
		ActualHarami: harami,
		CorrectGuess: correct,
		Winner:       winner,
		Points:       award,
		ResolvedAt:   in.Now,
	}, nil
}

// Candidates lists who the Jalad may accuse, in roster order: everyone
// except the Hakem. The Jalad is not excluded.
func Candidates(roster models.Roster, roles models.RoleMap) []string {
	hakem := roles.Holder(models.RoleHakem)
	out := make([]string, 0, len(roster))
	for _, player := range roster {
		if player != hakem {
			out = append(out, player)
		}
	}
	return out
}
