package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/KirkDiggler/hakem/internal/models"
	"github.com/KirkDiggler/hakem/internal/session"
	"github.com/stretchr/testify/assert"
)

func newTestRenderer() (*renderer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &renderer{out: out, c: newPalette(true)}, out
}

func TestRenderLeaderboard(t *testing.T) {
	r, out := newTestRenderer()

	r.leaderboard([]models.Standing{
		{Position: 1, Player: "Carol", Score: 200},
		{Position: 2, Player: "Alice", Score: 100},
	})

	lines := out.String()
	assert.Contains(t, strings.ToLower(lines), "scoreboard")
	assert.Less(t, strings.Index(lines, "Carol"), strings.Index(lines, "Alice"))
	assert.Contains(t, lines, "200")
}

func TestRenderHistory(t *testing.T) {
	r, out := newTestRenderer()

	r.history(nil, models.Stats{})
	assert.Contains(t, out.String(), "No rounds played yet.")

	out.Reset()
	r.history([]models.RoundResult{
		{Round: 1, Guesser: "Alice", Guess: "Dave", ActualHarami: "Carol", Winner: "Carol", Points: 100},
		{Round: 2, Guesser: "Bob", Guess: "Dave", ActualHarami: "Dave", CorrectGuess: true, Winner: "Bob", Points: 100},
	}, models.Stats{Rounds: 2, CorrectGuesses: 1, WrongGuesses: 1})

	assert.Contains(t, out.String(), "wrong")
	assert.Contains(t, out.String(), "correct")
	assert.Contains(t, out.String(), "1 / 1")
}

func TestRenderResults_Ties(t *testing.T) {
	r, out := newTestRenderer()

	r.results(session.View{Leaders: []string{"Alice", "Bob", "Carol"}})
	assert.Contains(t, out.String(), "It's a tie between Alice, Bob and Carol!")

	out.Reset()
	r.results(session.View{Leaders: []string{"Dave"}})
	assert.Contains(t, out.String(), "Dave wins the game!")
}

func TestRenderResult_ShowsEveryRole(t *testing.T) {
	r, out := newTestRenderer()

	r.result(models.RoundResult{
		Round: 3,
		Roles: models.RoleMap{
			"Alice": models.RoleJalad,
			"Bob":   models.RoleHakem,
			"Carol": models.RoleHarami,
			"Dave":  models.RoleMofatish,
		},
		Guesser:      "Alice",
		Guess:        "Carol",
		ActualHarami: "Carol",
		CorrectGuess: true,
		Winner:       "Alice",
		Points:       100,
	}, []string{"Alice", "Bob", "Carol", "Dave"})

	text := out.String()
	assert.Contains(t, text, "Correct! Alice found the Harami.")
	assert.Contains(t, strings.ToLower(text), "round 3 roles")
	for _, role := range models.Roles() {
		assert.Contains(t, text, role.String())
	}
}
