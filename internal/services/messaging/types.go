package messaging

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneSarcastic is a sarcastic tone
	ToneSarcastic MessageTone = "sarcastic"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ErrorType names the kind of rejected action
type ErrorType string

const (
	// ErrorTypeValidation is bad setup input
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeIllegalGuess is an accusation of the Hakem or a stranger
	ErrorTypeIllegalGuess ErrorType = "illegal_guess"

	// ErrorTypeIllegalTransition is an action out of turn
	ErrorTypeIllegalTransition ErrorType = "illegal_transition"
)

// GetRoundResultMessageInput contains parameters for a round result message
type GetRoundResultMessageInput struct {
	// Guesser is the player who held the Jalad role
	Guesser string

	// Accused is the player the Jalad named
	Accused string

	// Harami is the player who really held the Harami role
	Harami string

	// Correct is true when the Jalad found the Harami
	Correct bool

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetRoundResultMessageOutput contains the round result message
type GetRoundResultMessageOutput struct {
	// Message is the generated message
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}

// GetGameOverMessageInput contains parameters for a game over message
type GetGameOverMessageInput struct {
	// Leaders are the players sharing the top score
	Leaders []string

	// Rounds is the number of rounds banked
	Rounds int
}

// GetGameOverMessageOutput contains the game over message
type GetGameOverMessageOutput struct {
	// Message is the generated message
	Message string
}

// GetLeaderboardMessageInput contains parameters for a leaderboard comment
type GetLeaderboardMessageInput struct {
	// PlayerName is the player being described
	PlayerName string

	// Rank is the zero-based place on the leaderboard
	Rank int

	// TotalPlayers is the number of players on the leaderboard
	TotalPlayers int

	// Score is the player's points
	Score int
}

// GetLeaderboardMessageOutput contains the leaderboard comment
type GetLeaderboardMessageOutput struct {
	// Message is the generated message
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// ErrorType is the type of error
	ErrorType ErrorType

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	// Message is the generated message
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed makes message choice repeatable; zero picks a random seed
	Seed uint64
}
