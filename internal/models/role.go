package models

// Role is a secret identity dealt to one player for one round
type Role string

const (
	// RoleHakem is the judge; revealed publicly first each round
	RoleHakem Role = "Hakem"

	// RoleJalad is the accuser who must name the Harami
	RoleJalad Role = "Jalad"

	// RoleHarami is the thief being hunted
	RoleHarami Role = "Harami"

	// RoleMofatish is the inspector
	RoleMofatish Role = "Mofatish"
)

// Roles returns the four roles in canonical order
func Roles() []Role {
	return []Role{RoleHakem, RoleJalad, RoleHarami, RoleMofatish}
}

// Valid reports whether r is one of the four roles
func (r Role) Valid() bool {
	switch r {
	case RoleHakem, RoleJalad, RoleHarami, RoleMofatish:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// RoleMap binds each player name to the role dealt for a single round
type RoleMap map[string]Role

// Holder returns the player holding role, or "" if nobody does
func (m RoleMap) Holder(role Role) string {
	for player, r := range m {
		if r == role {
			return player
		}
	}
	return ""
}

// Clone returns an independent copy of the map
func (m RoleMap) Clone() RoleMap {
	if m == nil {
		return nil
	}
	out := make(RoleMap, len(m))
	for player, role := range m {
		out[player] = role
	}
	return out
}

// IsBijection reports whether the map gives every roster member a distinct
// role and uses each of the four roles exactly once
func (m RoleMap) IsBijection(roster Roster) bool {
	if len(m) != len(roster) || len(roster) != RosterSize {
		return false
	}
	seen := make(map[Role]bool, RosterSize)
	for _, player := range roster {
		role, ok := m[player]
		if !ok || !role.Valid() || seen[role] {
			return false
		}
		seen[role] = true
	}
	return true
}
