package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// RosterSize is the fixed number of players in a session
	RosterSize = 4

	// MaxNameLength is the longest player name accepted, in runes
	MaxNameLength = 20
)

// Roster is the ordered list of player names for a session.
// Order decides who reveals their role first.
type Roster []string

// NewRoster trims and validates names. It fails with ErrValidation unless
// there are exactly four non-empty, distinct names of at most MaxNameLength.
func NewRoster(names []string) (Roster, error) {
	if len(names) != RosterSize {
		return nil, fmt.Errorf("%w: need exactly %d players, got %d", ErrValidation, RosterSize, len(names))
	}

	roster := make(Roster, 0, RosterSize)
	seen := make(map[string]bool, RosterSize)
	for i, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, fmt.Errorf("%w: player %d has no name", ErrValidation, i+1)
		}
		if utf8.RuneCountInString(name) > MaxNameLength {
			return nil, fmt.Errorf("%w: name %q is longer than %d characters", ErrValidation, name, MaxNameLength)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: name %q is used more than once", ErrValidation, name)
		}
		seen[name] = true
		roster = append(roster, name)
	}

	return roster, nil
}

// Index returns the position of name in the roster, or -1
func (r Roster) Index(name string) int {
	for i, player := range r {
		if player == name {
			return i
		}
	}
	return -1
}

// Contains reports whether name is on the roster
func (r Roster) Contains(name string) bool {
	return r.Index(name) >= 0
}

// Clone returns an independent copy
func (r Roster) Clone() Roster {
	if r == nil {
		return nil
	}
	out := make(Roster, len(r))
	copy(out, r)
	return out
}
