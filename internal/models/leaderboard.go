package models

// Standing is one row of the leaderboard
type Standing struct {
	// Position is the 1-based place after sorting
	Position int

	// Player is the player's name
	Player string

	// Score is the player's banked points
	Score int
}

// Stats summarises the rounds played so far
type Stats struct {
	// Rounds is the number of committed rounds
	Rounds int

	// CorrectGuesses counts rounds where the Jalad found the Harami
	CorrectGuesses int

	// WrongGuesses counts rounds where the Harami escaped
	WrongGuesses int
}
