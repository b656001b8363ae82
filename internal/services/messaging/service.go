package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
)

// service implements the Service interface
type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var seed uint64
	if config != nil {
		seed = config.Seed
	}
	if seed == 0 {
		seed = rand.Uint64()
	}

	return &service{
		rand: rand.New(rand.NewPCG(seed, seed)),
	}, nil
}

// GetRoundResultMessage returns a quip about how a round ended
func (s *service) GetRoundResultMessage(ctx context.Context, input *GetRoundResultMessageInput) (*GetRoundResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	tone := input.PreferredTone

	if input.Correct {
		if tone == "" {
			tone = ToneCelebration
		}
		messages = []string{
			fmt.Sprintf("%s had the eyes of a hawk. %s never stood a chance.", input.Guesser, input.Harami),
			fmt.Sprintf("Caught red-handed! %s, hand back whatever you took.", input.Harami),
			fmt.Sprintf("Justice is served. %s reads this table like a book.", input.Guesser),
			fmt.Sprintf("%s tried to look innocent. It didn't work.", input.Harami),
		}
	} else {
		if tone == "" {
			tone = ToneSarcastic
		}
		messages = []string{
			fmt.Sprintf("Poor %s, wrongly accused. %s is still counting the loot.", input.Accused, input.Harami),
			fmt.Sprintf("%s walks free and a little richer. Nice poker face.", input.Harami),
			fmt.Sprintf("%s, you had one job.", input.Guesser),
			fmt.Sprintf("The real thief was %s all along. Nobody saw that coming, least of all %s.", input.Harami, input.Guesser),
		}
	}

	return &GetRoundResultMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetGameOverMessage returns a closing line for the final standings
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	switch {
	case input.Rounds == 0:
		messages = []string{
			"Leaving before a single round? The Harami didn't even get to steal anything.",
			"No rounds played. Everyone's reputation is intact, for now.",
		}
	case len(input.Leaders) == 1:
		messages = []string{
			fmt.Sprintf("%s takes the crown after %d rounds. Watch your pockets around them.", input.Leaders[0], input.Rounds),
			fmt.Sprintf("After %d rounds, %s stands above the rest. Suspicious, if you ask me.", input.Rounds, input.Leaders[0]),
			fmt.Sprintf("%s wins! Whether by honest detective work or clever thievery, we'll never know.", input.Leaders[0]),
		}
	default:
		names := strings.Join(input.Leaders, " and ")
		messages = []string{
			fmt.Sprintf("%s share the top spot. Sounds like a rematch is in order.", names),
			fmt.Sprintf("A tie after %d rounds! %s, settle this next game.", input.Rounds, names),
		}
	}

	return &GetGameOverMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetLeaderboardMessage returns a comment on one player's place
func (s *service) GetLeaderboardMessage(ctx context.Context, input *GetLeaderboardMessageInput) (*GetLeaderboardMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	switch {
	case input.Rank == 0:
		messages = []string{
			fmt.Sprintf("%s leads with %d points. Either a great detective or a great thief.", input.PlayerName, input.Score),
			fmt.Sprintf("First place: %s with %d points. Keep an eye on that one.", input.PlayerName, input.Score),
		}
	case input.Rank == input.TotalPlayers-1:
		messages = []string{
			fmt.Sprintf("%s brings up the rear with %d points. Honest to a fault.", input.PlayerName, input.Score),
			fmt.Sprintf("Last place: %s with %d points. Maybe steal something next time?", input.PlayerName, input.Score),
		}
	default:
		messages = []string{
			fmt.Sprintf("%s sits on %d points. Quietly dangerous.", input.PlayerName, input.Score),
			fmt.Sprintf("%s: %d points and plenty to prove.", input.PlayerName, input.Score),
		}
	}

	return &GetLeaderboardMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetErrorMessage returns a friendly line for a rejected action
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var messages []string
	switch input.ErrorType {
	case ErrorTypeValidation:
		messages = []string{
			"Four players, four different names. No nameless strangers at this table.",
			"The Hakem needs to know who's who. Give everyone their own name.",
			"Two of you can't share a name. One of you would get blamed for the other's crimes.",
		}
	case ErrorTypeIllegalGuess:
		messages = []string{
			"The Hakem is above suspicion. Pick someone else.",
			"You can only accuse someone sitting at this table.",
			"Nice try, but that accusation won't stand.",
		}
	case ErrorTypeIllegalTransition:
		messages = []string{
			"Not yet! Finish what you're doing first.",
			"Patience. The game isn't ready for that.",
		}
	default:
		messages = []string{
			"Something went wrong! Try again.",
			"The Hakem is confused. Try that again.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.IntN(len(messages))]
}
