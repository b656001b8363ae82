package session

import (
	"github.com/KirkDiggler/hakem/internal/assignment"
	"github.com/KirkDiggler/hakem/internal/models"
	"github.com/KirkDiggler/hakem/internal/resolver"
)

// View is what may be shown on the shared screen. Roles of a round still in
// play never appear, except the current player's own role while revealed
// and the Hakem once they have stepped forward.
type View struct {
	SessionID string
	Phase     models.Phase
	Stage     models.Stage
	Round     int
	Roster    []string

	Scores      map[string]int
	Leaderboard []models.Standing
	History     []models.RoundResult
	Stats       models.Stats

	// Assignment stage
	AssignmentState assignment.State
	CurrentPlayer   string
	RevealedRole    models.Role
	Confirmed       []string

	// Guessing stage
	HakemRevealed bool
	Hakem         string
	Candidates    []string

	// Scoring stage; the round is over so its roles are public
	Pending *models.RoundResult

	// Results phase
	Leaders []string
}

// View projects the session onto what every player may see
func (s Session) View() View {
	v := View{
		SessionID:   s.id,
		Phase:       s.phase,
		Stage:       s.Stage(),
		Round:       s.round,
		Roster:      s.roster.Clone(),
		Scores:      s.ledger.Scores(),
		Leaderboard: s.ledger.Leaderboard(),
		History:     s.ledger.History(),
		Stats:       s.ledger.Stats(),
	}

	if s.phase == models.PhaseResults {
		v.Leaders = s.ledger.Leaders()
	}
	if s.current == nil {
		return v
	}

	a := s.current.assignment
	switch s.current.stage {
	case models.StageAssignment:
		v.AssignmentState = a.State()
		v.CurrentPlayer, _ = a.CurrentPlayer()
		v.RevealedRole, _ = a.VisibleRole()
		v.Confirmed = a.Confirmed()

	case models.StageGuessing:
		v.AssignmentState = a.State()
		v.HakemRevealed = s.current.hakemRevealed
		if s.current.hakemRevealed {
			roles, _ := a.RoleMap()
			v.Hakem = roles.Holder(models.RoleHakem)
			v.Candidates = resolver.Candidates(s.roster, roles)
		}

	case models.StageScoring:
		v.AssignmentState = a.State()
		v.HakemRevealed = true
		if pending, ok := s.Pending(); ok {
			v.Hakem = pending.Roles.Holder(models.RoleHakem)
			v.Pending = &pending
		}
	}

	return v
}
