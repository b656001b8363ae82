package models

// Phase is the top-level state of a session
type Phase string

const (
	// PhaseSetup indicates no game is running; names are being entered
	PhaseSetup Phase = "setup"

	// PhasePlaying indicates rounds are being played
	PhasePlaying Phase = "playing"

	// PhaseResults indicates the game has ended and final standings are shown
	PhaseResults Phase = "results"
)

// Stage is the step of the current round. It only has meaning while the
// session is in PhasePlaying.
type Stage string

const (
	// StageNone is reported outside PhasePlaying
	StageNone Stage = ""

	// StageAssignment indicates roles are being dealt and privately revealed
	StageAssignment Stage = "assignment"

	// StageGuessing indicates the Hakem reveal and the Jalad's accusation
	StageGuessing Stage = "guessing"

	// StageScoring indicates a result is pending and waiting to be banked
	StageScoring Stage = "scoring"
)
