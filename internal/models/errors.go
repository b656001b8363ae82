package models

// GameError is a custom error type for rule violations. Operations wrap one
// of the constants below with detail, so match with errors.Is.
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

const (
	// ErrValidation covers bad setup input: wrong player count, blank or
	// duplicate names
	ErrValidation GameError = "validation error"

	// ErrIllegalGuessTarget covers accusations of a non-member or of the
	// revealed Hakem
	ErrIllegalGuessTarget GameError = "illegal guess target"

	// ErrIllegalTransition covers any operation invoked outside the phase
	// or stage it requires
	ErrIllegalTransition GameError = "illegal transition"
)
