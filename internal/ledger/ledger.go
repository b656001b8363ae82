package ledger

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/hakem/internal/models"
)

// Ledger keeps each player's running score and the ordered history of
// committed rounds. Scores are accumulated on commit, never recomputed from
// history, so the two are kept in step by Commit alone.
type Ledger struct {
	roster  models.Roster
	scores  map[string]int
	history []models.RoundResult
}

// New returns a ledger with every roster member at zero
func New(roster models.Roster) Ledger {
	scores := make(map[string]int, len(roster))
	for _, player := range roster {
		scores[player] = 0
	}
	return Ledger{
		roster: roster.Clone(),
		scores: scores,
	}
}

// Commit banks a result: the winner gains its points and the result is
// appended to history. The receiver is left unchanged.
func (l Ledger) Commit(result models.RoundResult) (Ledger, error) {
	if !l.roster.Contains(result.Winner) {
		return l, fmt.Errorf("%w: winner %q is not on the roster", models.ErrValidation, result.Winner)
	}
	if result.Points < 0 {
		return l, fmt.Errorf("%w: negative award %d", models.ErrValidation, result.Points)
	}

	scores := make(map[string]int, len(l.scores))
	for player, score := range l.scores {
		scores[player] = score
	}
	scores[result.Winner] += result.Points

	history := make([]models.RoundResult, len(l.history), len(l.history)+1)
	copy(history, l.history)
	history = append(history, result.Clone())

	return Ledger{
		roster:  l.roster,
		scores:  scores,
		history: history,
	}, nil
}

// Score returns a player's points
func (l Ledger) Score(player string) (int, bool) {
	score, ok := l.scores[player]
	return score, ok
}

// Scores returns a copy of all scores
func (l Ledger) Scores() map[string]int {
	out := make(map[string]int, len(l.scores))
	for player, score := range l.scores {
		out[player] = score
	}
	return out
}

// History returns the committed results, oldest first
func (l Ledger) History() []models.RoundResult {
	out := make([]models.RoundResult, len(l.history))
	for i, result := range l.history {
		out[i] = result.Clone()
	}
	return out
}

// Len is the number of committed rounds
func (l Ledger) Len() int {
	return len(l.history)
}

// Clone returns a ledger that shares no maps or slices with the receiver
func (l Ledger) Clone() Ledger {
	out := Ledger{roster: l.roster.Clone()}
	if l.scores != nil {
		out.scores = make(map[string]int, len(l.scores))
		for player, score := range l.scores {
			out.scores[player] = score
		}
	}
	if l.history != nil {
		out.history = make([]models.RoundResult, len(l.history))
		for i, result := range l.history {
			out.history[i] = result.Clone()
		}
	}
	return out
}

// Leaderboard sorts players by descending score. Ties keep roster order.
func (l Ledger) Leaderboard() []models.Standing {
	standings := make([]models.Standing, 0, len(l.roster))
	for _, player := range l.roster {
		standings = append(standings, models.Standing{
			Player: player,
			Score:  l.scores[player],
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})

	for i := range standings {
		standings[i].Position = i + 1
	}
	return standings
}

// Leaders returns every player sharing the top score, in roster order.
// Empty when the roster is empty.
func (l Ledger) Leaders() []string {
	board := l.Leaderboard()
	if len(board) == 0 {
		return nil
	}

	var leaders []string
	for _, standing := range board {
		if standing.Score != board[0].Score {
			break
		}
		leaders = append(leaders, standing.Player)
	}
	return leaders
}

// Stats counts correct and wrong guesses across history
func (l Ledger) Stats() models.Stats {
	stats := models.Stats{Rounds: len(l.history)}
	for _, result := range l.history {
		if result.CorrectGuess {
			stats.CorrectGuesses++
		} else {
			stats.WrongGuesses++
		}
	}
	return stats
}

// Consistent reports whether summing each player's winnings from history
// reproduces the running scores
func (l Ledger) Consistent() bool {
	sums := make(map[string]int, len(l.roster))
	for _, result := range l.history {
		sums[result.Winner] += result.Points
	}
	for _, player := range l.roster {
		if sums[player] != l.scores[player] {
			return false
		}
	}
	return len(l.scores) == len(l.roster)
}
