package session

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/hakem/internal/assignment"
	"github.com/KirkDiggler/hakem/internal/ledger"
	"github.com/KirkDiggler/hakem/internal/models"
	"github.com/KirkDiggler/hakem/internal/resolver"
	"github.com/KirkDiggler/hakem/internal/shuffle"
)

// Session is an immutable snapshot of one game. Every transition returns a
// new Session; on error it returns the receiver unchanged alongside the
// error, so callers can always keep the value they get back.
//
// Round data lives in current, which is only non-nil while the session is
// playing. Setup and Results therefore cannot carry half-finished rounds.
type Session struct {
	id      string
	phase   models.Phase
	roster  models.Roster
	round   int
	ledger  ledger.Ledger
	current *roundState
}

type roundState struct {
	stage         models.Stage
	assignment    assignment.RoleAssignment
	hakemRevealed bool
	pending       *models.RoundResult
}

// New returns an empty session in setup
func New(id string) Session {
	return Session{
		id:     id,
		phase:  models.PhaseSetup,
		round:  1,
		ledger: ledger.New(nil),
	}
}

// Start seats the four players and opens round one. It is only valid in
// setup; a validation failure leaves the session in setup untouched.
func (s Session) Start(names []string) (Session, error) {
	if s.phase != models.PhaseSetup {
		return s, fmt.Errorf("%w: cannot start a game while %s", models.ErrIllegalTransition, s.phase)
	}

	roster, err := models.NewRoster(names)
	if err != nil {
		return s, err
	}

	return Session{
		id:      s.id,
		phase:   models.PhasePlaying,
		roster:  roster,
		round:   1,
		ledger:  ledger.New(roster),
		current: newRound(roster),
	}, nil
}

// Shuffle deals the roles for the current round
func (s Session) Shuffle(p shuffle.Permuter) (Session, error) {
	if err := s.requireStage(models.StageAssignment); err != nil {
		return s, err
	}

	a, err := s.current.assignment.Shuffle(p)
	if err != nil {
		return s, err
	}
	return s.withAssignment(a), nil
}

// Reveal shows the player holding the device their role
func (s Session) Reveal() (Session, error) {
	if err := s.requireStage(models.StageAssignment); err != nil {
		return s, err
	}

	a, err := s.current.assignment.RevealCurrent()
	if err != nil {
		return s, err
	}
	return s.withAssignment(a), nil
}

// Confirm locks in the current player's role and moves to the next player
func (s Session) Confirm() (Session, error) {
	if err := s.requireStage(models.StageAssignment); err != nil {
		return s, err
	}

	a, err := s.current.assignment.ConfirmCurrent()
	if err != nil {
		return s, err
	}
	return s.withAssignment(a), nil
}

// BeginGuessing moves a fully assigned round on to the Hakem reveal
func (s Session) BeginGuessing() (Session, error) {
	if err := s.requireStage(models.StageAssignment); err != nil {
		return s, err
	}
	if state := s.current.assignment.State(); state != assignment.StateAllAssigned {
		return s, fmt.Errorf("%w: roles are still %s", models.ErrIllegalTransition, state)
	}

	next := *s.current
	next.stage = models.StageGuessing
	s.current = &next
	return s, nil
}

// RevealHakem records that the Hakem has stepped forward. Calling it again
// changes nothing.
func (s Session) RevealHakem() (Session, error) {
	if err := s.requireStage(models.StageGuessing); err != nil {
		return s, err
	}
	if s.current.hakemRevealed {
		return s, nil
	}

	next := *s.current
	next.hakemRevealed = true
	s.current = &next
	return s, nil
}

// SubmitGuess settles the round on the Jalad's accusation. The result is
// held as pending until EndRound or EndGame banks it. One guess per round.
func (s Session) SubmitGuess(guess, resultID string, now time.Time, award int) (Session, error) {
	if err := s.requireStage(models.StageGuessing); err != nil {
		return s, err
	}

	roles, ok := s.current.assignment.RoleMap()
	if !ok {
		return s, fmt.Errorf("%w: roles are not assigned", models.ErrIllegalTransition)
	}

	result, err := resolver.Resolve(resolver.Input{
		ID:            resultID,
		Round:         s.round,
		Roster:        s.roster,
		Roles:         roles,
		HakemRevealed: s.current.hakemRevealed,
		Guess:         guess,
		Award:         award,
		Now:           now,
	})
	if err != nil {
		return s, err
	}

	next := *s.current
	next.stage = models.StageScoring
	next.pending = &result
	s.current = &next
	return s, nil
}

// EndRound banks the pending result and deals a fresh, independent round
func (s Session) EndRound() (Session, error) {
	if err := s.requireStage(models.StageScoring); err != nil {
		return s, err
	}

	l, err := s.ledger.Commit(*s.current.pending)
	if err != nil {
		return s, err
	}

	s.ledger = l
	s.round++
	s.current = newRound(s.roster)
	return s, nil
}

// EndGame closes the session for results. A resolved but unbanked round is
// committed first. The round counter is left where it is.
func (s Session) EndGame() (Session, error) {
	if s.phase != models.PhasePlaying {
		return s, fmt.Errorf("%w: cannot end a game while %s", models.ErrIllegalTransition, s.phase)
	}

	if s.current.pending != nil {
		l, err := s.ledger.Commit(*s.current.pending)
		if err != nil {
			return s, err
		}
		s.ledger = l
	}

	s.phase = models.PhaseResults
	s.current = nil
	return s, nil
}

// Reset discards everything and returns an empty setup session under id
func (s Session) Reset(id string) Session {
	return New(id)
}

// ID returns the session identifier
func (s Session) ID() string {
	return s.id
}

// Phase returns the top-level phase
func (s Session) Phase() models.Phase {
	return s.phase
}

// Stage returns the current round's stage, or StageNone outside play
func (s Session) Stage() models.Stage {
	if s.current == nil {
		return models.StageNone
	}
	return s.current.stage
}

// Round returns the current round number
func (s Session) Round() int {
	return s.round
}

// Roster returns a copy of the players in reveal order
func (s Session) Roster() models.Roster {
	return s.roster.Clone()
}

// Ledger returns the score ledger
func (s Session) Ledger() ledger.Ledger {
	return s.ledger
}

// Assignment returns the current round's role assignment
func (s Session) Assignment() (assignment.RoleAssignment, bool) {
	if s.current == nil {
		return assignment.RoleAssignment{}, false
	}
	return s.current.assignment, true
}

// HakemRevealed reports whether the Hakem has stepped forward this round
func (s Session) HakemRevealed() bool {
	return s.current != nil && s.current.hakemRevealed
}

// Pending returns the resolved, not yet banked result
func (s Session) Pending() (models.RoundResult, bool) {
	if s.current == nil || s.current.pending == nil {
		return models.RoundResult{}, false
	}
	return s.current.pending.Clone(), true
}

// Clone returns a deep copy, ledger included. Transitions never write
// through shared state, so this is only needed by stores that must not
// alias their callers.
func (s Session) Clone() Session {
	s.roster = s.roster.Clone()
	s.ledger = s.ledger.Clone()
	if s.current != nil {
		c := *s.current
		if c.pending != nil {
			p := c.pending.Clone()
			c.pending = &p
		}
		s.current = &c
	}
	return s
}

func newRound(roster models.Roster) *roundState {
	return &roundState{
		stage:      models.StageAssignment,
		assignment: assignment.New(roster),
	}
}

func (s Session) requireStage(stage models.Stage) error {
	if s.phase != models.PhasePlaying {
		return fmt.Errorf("%w: no round in progress while %s", models.ErrIllegalTransition, s.phase)
	}
	if s.current.stage != stage {
		return fmt.Errorf("%w: round is in %s, not %s", models.ErrIllegalTransition, s.current.stage, stage)
	}
	return nil
}

func (s Session) withAssignment(a assignment.RoleAssignment) Session {
	next := *s.current
	next.assignment = a
	s.current = &next
	return s
}
