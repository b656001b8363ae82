package resolver

import (
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/hakem/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testRoster = models.Roster{"Alice", "Bob", "Carol", "Dave"}
	testRoles  = models.RoleMap{
		"Alice": models.RoleJalad,
		"Bob":   models.RoleHakem,
		"Carol": models.RoleHarami,
		"Dave":  models.RoleMofatish,
	}
	testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
)

func input(guess string) Input {
	return Input{
		ID:            "round-id",
		Round:         1,
		Roster:        testRoster,
		Roles:         testRoles,
		HakemRevealed: true,
		Guess:         guess,
		Now:           testTime,
	}
}

func TestResolve_WrongGuessCreditsHarami(t *testing.T) {
	result, err := Resolve(input("Dave"))
	require.NoError(t, err)

	assert.Equal(t, models.RoundResult{
		ID:           "round-id",
		Round:        1,
		Roles:        testRoles,
		Guesser:      "Alice",
		Guess:        "Dave",
		ActualHarami: "Carol",
		CorrectGuess: false,
		Winner:       "Carol",
		Points:       100,
		ResolvedAt:   testTime,
	}, result)
}

func TestResolve_CorrectGuessCreditsJalad(t *testing.T) {
	result, err := Resolve(input("Carol"))
	require.NoError(t, err)

	assert.True(t, result.CorrectGuess)
	assert.Equal(t, "Alice", result.Winner)
	assert.Equal(t, DefaultAward, result.Points)
	assert.Equal(t, "Carol", result.ActualHarami)
}

func TestResolve_JaladMayNameThemselves(t *testing.T) {
	result, err := Resolve(input("Alice"))
	require.NoError(t, err)

	assert.False(t, result.CorrectGuess)
	assert.Equal(t, "Carol", result.Winner)
}

func TestResolve_CustomAward(t *testing.T) {
	in := input("Carol")
	in.Award = 250

	result, err := Resolve(in)
	require.NoError(t, err)
	assert.Equal(t, 250, result.Points)
}

func TestResolve_Deterministic(t *testing.T) {
	for _, guess := range []string{"Alice", "Carol", "Dave"} {
		first, err := Resolve(input(guess))
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := Resolve(input(guess))
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	}
}

func TestResolve_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *Input)
		wantErr error
	}{
		{
			name:    "guess is the hakem",
			mutate:  func(in *Input) { in.Guess = "Bob" },
			wantErr: models.ErrIllegalGuessTarget,
		},
		{
			name:    "guess is not on the roster",
			mutate:  func(in *Input) { in.Guess = "Eve" },
			wantErr: models.ErrIllegalGuessTarget,
		},
		{
			name:    "empty guess",
			mutate:  func(in *Input) { in.Guess = "" },
			wantErr: models.ErrIllegalGuessTarget,
		},
		{
			name:    "hakem not revealed",
			mutate:  func(in *Input) { in.HakemRevealed = false },
			wantErr: models.ErrIllegalTransition,
		},
		{
			name: "roles incomplete",
			mutate: func(in *Input) {
				in.Roles = models.RoleMap{"Alice": models.RoleJalad}
			},
			wantErr: models.ErrIllegalTransition,
		},
		{
			name: "role used twice",
			mutate: func(in *Input) {
				in.Roles = models.RoleMap{
					"Alice": models.RoleJalad,
					"Bob":   models.RoleHakem,
					"Carol": models.RoleHarami,
					"Dave":  models.RoleHarami,
				}
			},
			wantErr: models.ErrIllegalTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := input("Carol")
			tt.mutate(&in)

			result, err := Resolve(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Zero(t, result)
		})
	}
}

func TestResolve_ResultOwnsItsRoleMap(t *testing.T) {
	roles := testRoles.Clone()
	in := input("Carol")
	in.Roles = roles

	result, err := Resolve(in)
	require.NoError(t, err)

	roles["Alice"] = models.RoleMofatish
	assert.Equal(t, models.RoleJalad, result.Roles["Alice"])
}

func TestCandidates(t *testing.T) {
	assert.Equal(t, []string{"Alice", "Carol", "Dave"}, Candidates(testRoster, testRoles))
}
