package assignment

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/hakem/internal/models"
	"github.com/KirkDiggler/hakem/internal/shuffle"
)

// State is the progress of a role assignment. It only ever moves forward:
// unshuffled, then revealing player 0..3, then all assigned.
type State string

const (
	// StateUnshuffled indicates the roles have not been dealt yet
	StateUnshuffled State = "unshuffled"

	// StateRevealing indicates players are taking turns to see their role
	StateRevealing State = "revealing"

	// StateAllAssigned indicates every player has confirmed their role
	StateAllAssigned State = "all_assigned"
)

// ErrBadPermutation is returned when a Permuter hands back something that
// is not an ordering of the four roles
var ErrBadPermutation = errors.New("permuter returned an invalid permutation")

// RoleAssignment deals the four roles to the roster and walks the players
// through a private reveal one at a time. It is a value: every operation
// returns a new RoleAssignment and leaves the receiver as it was.
type RoleAssignment struct {
	roster    models.Roster
	dealt     []models.Role // positional with roster; nil until shuffled
	index     int
	revealed  bool
	confirmed models.RoleMap
}

// New returns an unshuffled assignment for roster
func New(roster models.Roster) RoleAssignment {
	return RoleAssignment{
		roster:    roster.Clone(),
		confirmed: models.RoleMap{},
	}
}

// State reports where the assignment is in its lifecycle
func (a RoleAssignment) State() State {
	switch {
	case a.dealt == nil:
		return StateUnshuffled
	case a.index >= len(a.roster):
		return StateAllAssigned
	default:
		return StateRevealing
	}
}

// Shuffle deals a uniformly random ordering of the roles to the roster in
// roster order. It is only allowed once per assignment: a later call would
// change pairings players have already confirmed.
func (a RoleAssignment) Shuffle(p shuffle.Permuter) (RoleAssignment, error) {
	if a.State() != StateUnshuffled {
		return a, fmt.Errorf("%w: roles are already dealt for this round", models.ErrIllegalTransition)
	}
	if len(a.roster) != models.RosterSize {
		return a, fmt.Errorf("%w: need %d players to deal roles, have %d", models.ErrValidation, models.RosterSize, len(a.roster))
	}

	roles := models.Roles()
	perm := p.Permutation(len(roles))
	if !isPermutation(perm, len(roles)) {
		return a, fmt.Errorf("%w: %v", ErrBadPermutation, perm)
	}

	dealt := make([]models.Role, len(roles))
	for i, j := range perm {
		dealt[i] = roles[j]
	}

	return RoleAssignment{
		roster:    a.roster,
		dealt:     dealt,
		index:     0,
		revealed:  false,
		confirmed: models.RoleMap{},
	}, nil
}

// RevealCurrent shows the current player their role. Revealing twice is a
// no-op; it never touches confirmed pairings.
func (a RoleAssignment) RevealCurrent() (RoleAssignment, error) {
	if a.State() != StateRevealing {
		return a, fmt.Errorf("%w: no role to reveal while %s", models.ErrIllegalTransition, a.State())
	}

	a.revealed = true
	return a, nil
}

// ConfirmCurrent locks the current player's role in and passes the device
// to the next player. The role must have been revealed first.
func (a RoleAssignment) ConfirmCurrent() (RoleAssignment, error) {
	if a.State() != StateRevealing {
		return a, fmt.Errorf("%w: nothing to confirm while %s", models.ErrIllegalTransition, a.State())
	}
	if !a.revealed {
		return a, fmt.Errorf("%w: %s has not revealed their role yet", models.ErrIllegalTransition, a.roster[a.index])
	}

	confirmed := a.confirmed.Clone()
	confirmed[a.roster[a.index]] = a.dealt[a.index]

	a.confirmed = confirmed
	a.index++
	a.revealed = false
	return a, nil
}

// Index is the position in the roster of the player whose turn it is
func (a RoleAssignment) Index() int {
	return a.index
}

// CurrentPlayer returns the player who should be holding the device
func (a RoleAssignment) CurrentPlayer() (string, bool) {
	if a.State() != StateRevealing {
		return "", false
	}
	return a.roster[a.index], true
}

// Revealed reports whether the current player's role is showing
func (a RoleAssignment) Revealed() bool {
	return a.State() == StateRevealing && a.revealed
}

// VisibleRole returns the current player's role, but only while it is
// revealed
func (a RoleAssignment) VisibleRole() (models.Role, bool) {
	if !a.Revealed() {
		return "", false
	}
	return a.dealt[a.index], true
}

// Confirmed lists the players who have confirmed, in roster order
func (a RoleAssignment) Confirmed() []string {
	players := make([]string, 0, len(a.confirmed))
	for _, player := range a.roster {
		if _, ok := a.confirmed[player]; ok {
			players = append(players, player)
		}
	}
	return players
}

// RoleMap returns the completed role map once every player has confirmed
func (a RoleAssignment) RoleMap() (models.RoleMap, bool) {
	if a.State() != StateAllAssigned {
		return nil, false
	}
	return a.confirmed.Clone(), true
}

func isPermutation(perm []int, n int) bool {
	if len(perm) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range perm {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
