package ledger

import (
	"errors"
	"testing"

	"github.com/KirkDiggler/hakem/internal/models"
	"github.com/stretchr/testify/suite"
)

type LedgerTestSuite struct {
	suite.Suite
	roster models.Roster
	ledger Ledger
}

func (s *LedgerTestSuite) SetupTest() {
	s.roster = models.Roster{"Alice", "Bob", "Carol", "Dave"}
	s.ledger = New(s.roster)
}

func TestLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) result(round int, winner string, correct bool) models.RoundResult {
	return models.RoundResult{
		ID:           "result",
		Round:        round,
		Winner:       winner,
		Points:       100,
		CorrectGuess: correct,
		Roles: models.RoleMap{
			"Alice": models.RoleJalad,
			"Bob":   models.RoleHakem,
			"Carol": models.RoleHarami,
			"Dave":  models.RoleMofatish,
		},
	}
}

func (s *LedgerTestSuite) commit(results ...models.RoundResult) {
	for _, r := range results {
		var err error
		s.ledger, err = s.ledger.Commit(r)
		s.Require().NoError(err)
	}
}

func (s *LedgerTestSuite) TestNew_AllZero() {
	s.Equal(map[string]int{"Alice": 0, "Bob": 0, "Carol": 0, "Dave": 0}, s.ledger.Scores())
	s.Empty(s.ledger.History())
	s.Equal(models.Stats{}, s.ledger.Stats())
	s.True(s.ledger.Consistent())
}

func (s *LedgerTestSuite) TestCommit_AddsPointsAndHistory() {
	s.commit(s.result(1, "Carol", false))

	score, ok := s.ledger.Score("Carol")
	s.True(ok)
	s.Equal(100, score)
	s.Equal(map[string]int{"Alice": 0, "Bob": 0, "Carol": 100, "Dave": 0}, s.ledger.Scores())
	s.Require().Len(s.ledger.History(), 1)
	s.Equal(1, s.ledger.Len())
}

func (s *LedgerTestSuite) TestCommit_LeavesReceiverUntouched() {
	before := s.ledger

	after, err := before.Commit(s.result(1, "Alice", true))
	s.Require().NoError(err)

	s.Equal(0, before.Scores()["Alice"])
	s.Empty(before.History())
	s.Equal(100, after.Scores()["Alice"])
}

func (s *LedgerTestSuite) TestCommit_Rejections() {
	_, err := s.ledger.Commit(s.result(1, "Eve", false))
	s.True(errors.Is(err, models.ErrValidation))

	bad := s.result(1, "Alice", true)
	bad.Points = -5
	_, err = s.ledger.Commit(bad)
	s.True(errors.Is(err, models.ErrValidation))

	s.Empty(s.ledger.History())
}

func (s *LedgerTestSuite) TestHistory_ChronologicalAndCopied() {
	s.commit(
		s.result(1, "Carol", false),
		s.result(2, "Alice", true),
		s.result(3, "Carol", false),
	)

	history := s.ledger.History()
	s.Require().Len(history, 3)
	for i, r := range history {
		s.Equal(i+1, r.Round)
	}

	history[0].Winner = "Dave"
	history[0].Roles["Alice"] = models.RoleHarami
	s.Equal("Carol", s.ledger.History()[0].Winner)
	s.Equal(models.RoleJalad, s.ledger.History()[0].Roles["Alice"])
}

func (s *LedgerTestSuite) TestClone_SharesNothing() {
	s.commit(s.result(1, "Carol", false))

	clone := s.ledger.Clone()
	s.Equal(s.ledger, clone)

	clone.scores["Carol"] = 999
	clone.history[0].Winner = "Dave"
	clone.history[0].Roles["Alice"] = models.RoleHarami
	clone.roster[0] = "Mallory"

	score, _ := s.ledger.Score("Carol")
	s.Equal(100, score)
	s.Equal("Carol", s.ledger.History()[0].Winner)
	s.Equal(models.RoleJalad, s.ledger.History()[0].Roles["Alice"])
	s.Equal("Alice", s.ledger.Leaderboard()[1].Player)
}

func (s *LedgerTestSuite) TestClone_KeepsEmptyLedgerEqual() {
	s.Equal(Ledger{}, Ledger{}.Clone())
	s.Equal(s.ledger, s.ledger.Clone())
}

func (s *LedgerTestSuite) TestScoresNeverDecreaseAndStayConsistent() {
	winners := []string{"Carol", "Alice", "Dave", "Carol", "Bob", "Alice"}
	prev := s.ledger.Scores()

	for i, winner := range winners {
		s.commit(s.result(i+1, winner, i%2 == 1))

		current := s.ledger.Scores()
		for player, score := range current {
			s.GreaterOrEqual(score, prev[player])
		}
		prev = current
		s.True(s.ledger.Consistent())
	}
}

func (s *LedgerTestSuite) TestLeaderboard_TiesKeepRosterOrder() {
	s.commit(
		s.result(1, "Dave", false),
		s.result(2, "Bob", true),
		s.result(3, "Dave", false),
	)

	s.Equal([]models.Standing{
		{Position: 1, Player: "Dave", Score: 200},
		{Position: 2, Player: "Bob", Score: 100},
		{Position: 3, Player: "Alice", Score: 0},
		{Position: 4, Player: "Carol", Score: 0},
	}, s.ledger.Leaderboard())
}

func (s *LedgerTestSuite) TestLeaders() {
	s.Equal([]string{"Alice", "Bob", "Carol", "Dave"}, s.ledger.Leaders())

	s.commit(s.result(1, "Carol", false), s.result(2, "Alice", true))
	s.Equal([]string{"Alice", "Carol"}, s.ledger.Leaders())

	s.commit(s.result(3, "Carol", false))
	s.Equal([]string{"Carol"}, s.ledger.Leaders())

	s.Nil(Ledger{}.Leaders())
}

func (s *LedgerTestSuite) TestStats() {
	s.commit(
		s.result(1, "Carol", false),
		s.result(2, "Alice", true),
		s.result(3, "Carol", false),
	)

	s.Equal(models.Stats{Rounds: 3, CorrectGuesses: 1, WrongGuesses: 2}, s.ledger.Stats())
}
