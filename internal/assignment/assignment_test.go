package assignment

import (
	"errors"
	"fmt"
	"testing"

	"github.com/KirkDiggler/hakem/internal/models"
	"github.com/KirkDiggler/hakem/internal/shuffle"
	shuffleMocks "github.com/KirkDiggler/hakem/internal/shuffle/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AssignmentTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockPermuter *shuffleMocks.MockPermuter

	roster models.Roster
}

func (s *AssignmentTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPermuter = shuffleMocks.NewMockPermuter(s.mockCtrl)
	s.roster = models.Roster{"Alice", "Bob", "Carol", "Dave"}
}

func (s *AssignmentTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAssignmentTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentTestSuite))
}

// dealt shuffles with a permutation giving Alice=Jalad, Bob=Hakem,
// Carol=Harami, Dave=Mofatish
func (s *AssignmentTestSuite) dealt() RoleAssignment {
	s.mockPermuter.EXPECT().Permutation(4).Return([]int{1, 0, 2, 3})

	a, err := New(s.roster).Shuffle(s.mockPermuter)
	s.Require().NoError(err)
	return a
}

func (s *AssignmentTestSuite) TestNew_Unshuffled() {
	a := New(s.roster)

	s.Equal(StateUnshuffled, a.State())
	_, ok := a.CurrentPlayer()
	s.False(ok)
	_, ok = a.RoleMap()
	s.False(ok)
	s.Empty(a.Confirmed())
}

func (s *AssignmentTestSuite) TestShuffle_DealsPositionally() {
	a := s.dealt()

	s.Equal(StateRevealing, a.State())
	s.Equal(0, a.Index())
	player, ok := a.CurrentPlayer()
	s.True(ok)
	s.Equal("Alice", player)
	s.False(a.Revealed())

	a, err := a.RevealCurrent()
	s.Require().NoError(err)
	role, ok := a.VisibleRole()
	s.True(ok)
	s.Equal(models.RoleJalad, role)
}

func (s *AssignmentTestSuite) TestShuffle_OnlyOnce() {
	a := s.dealt()

	again, err := a.Shuffle(s.mockPermuter)
	s.Require().Error(err)
	s.True(errors.Is(err, models.ErrIllegalTransition))
	s.Equal(a, again)
}

func (s *AssignmentTestSuite) TestShuffle_RejectsBadPermutation() {
	cases := [][]int{
		{0, 1, 2},
		{0, 0, 1, 2},
		{0, 1, 2, 4},
		{-1, 0, 1, 2},
	}

	for _, perm := range cases {
		s.mockPermuter.EXPECT().Permutation(4).Return(perm)

		a := New(s.roster)
		got, err := a.Shuffle(s.mockPermuter)
		s.Require().Error(err, "perm %v", perm)
		s.True(errors.Is(err, ErrBadPermutation))
		s.Equal(StateUnshuffled, got.State())
	}
}

func (s *AssignmentTestSuite) TestShuffle_ShortRoster() {
	a := New(models.Roster{"Alice", "Bob"})

	_, err := a.Shuffle(s.mockPermuter)
	s.Require().Error(err)
	s.True(errors.Is(err, models.ErrValidation))
}

func (s *AssignmentTestSuite) TestRevealCurrent_BeforeShuffle() {
	_, err := New(s.roster).RevealCurrent()
	s.Require().Error(err)
	s.True(errors.Is(err, models.ErrIllegalTransition))
}

func (s *AssignmentTestSuite) TestRevealCurrent_Idempotent() {
	a := s.dealt()

	once, err := a.RevealCurrent()
	s.Require().NoError(err)
	twice, err := once.RevealCurrent()
	s.Require().NoError(err)

	s.Equal(once, twice)
	s.Empty(twice.Confirmed())
}

func (s *AssignmentTestSuite) TestConfirmCurrent_RequiresReveal() {
	a := s.dealt()

	got, err := a.ConfirmCurrent()
	s.Require().Error(err)
	s.True(errors.Is(err, models.ErrIllegalTransition))
	s.Equal(0, got.Index())
}

func (s *AssignmentTestSuite) TestFullWalkthrough() {
	a := s.dealt()
	expected := models.RoleMap{
		"Alice": models.RoleJalad,
		"Bob":   models.RoleHakem,
		"Carol": models.RoleHarami,
		"Dave":  models.RoleMofatish,
	}

	var err error
	for i, player := range s.roster {
		current, ok := a.CurrentPlayer()
		s.Require().True(ok)
		s.Equal(player, current)

		a, err = a.RevealCurrent()
		s.Require().NoError(err)
		role, ok := a.VisibleRole()
		s.Require().True(ok)
		s.Equal(expected[player], role)

		a, err = a.ConfirmCurrent()
		s.Require().NoError(err)
		s.False(a.Revealed())
		s.Len(a.Confirmed(), i+1)

		_, ok = a.VisibleRole()
		s.False(ok, "role must be hidden again after confirming")
	}

	s.Equal(StateAllAssigned, a.State())
	roles, ok := a.RoleMap()
	s.Require().True(ok)
	s.Equal(expected, roles)
	s.True(roles.IsBijection(s.roster))

	_, err = a.RevealCurrent()
	s.True(errors.Is(err, models.ErrIllegalTransition))
	_, err = a.ConfirmCurrent()
	s.True(errors.Is(err, models.ErrIllegalTransition))
}

func (s *AssignmentTestSuite) TestOperationsDoNotMutateReceiver() {
	a := s.dealt()
	a, err := a.RevealCurrent()
	s.Require().NoError(err)

	before := a
	next, err := a.ConfirmCurrent()
	s.Require().NoError(err)

	s.Equal(before, a)
	s.Empty(a.Confirmed())
	s.Equal([]string{"Alice"}, next.Confirmed())
}

func (s *AssignmentTestSuite) TestRoleMapIsACopy() {
	a := s.dealt()
	var err error
	for range s.roster {
		a, err = a.RevealCurrent()
		s.Require().NoError(err)
		a, err = a.ConfirmCurrent()
		s.Require().NoError(err)
	}

	roles, _ := a.RoleMap()
	roles["Alice"] = models.RoleHarami

	again, _ := a.RoleMap()
	s.Equal(models.RoleJalad, again["Alice"])
}

func TestShuffle_RealShufflerReachesEveryRoleMap(t *testing.T) {
	roster := models.Roster{"Alice", "Bob", "Carol", "Dave"}
	sh := shuffle.New(&shuffle.Config{Seed: 3})

	seen := make(map[string]bool)
	for i := 0; i < 2000; i++ {
		a, err := New(roster).Shuffle(sh)
		if err != nil {
			t.Fatalf("shuffle failed: %v", err)
		}
		for range roster {
			a, _ = a.RevealCurrent()
			a, _ = a.ConfirmCurrent()
		}
		roles, ok := a.RoleMap()
		if !ok || !roles.IsBijection(roster) {
			t.Fatalf("role map is not a bijection: %v", roles)
		}
		seen[fmt.Sprint(roles["Alice"], roles["Bob"], roles["Carol"], roles["Dave"])] = true
	}

	if len(seen) != 24 {
		t.Fatalf("saw %d distinct role maps, want 24", len(seen))
	}
}
