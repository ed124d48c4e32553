package hangman

import "errors"

var (
	// ErrInvalidInput is returned for an empty player name or a guess
	// outside A-Z. The operation is rejected with no state change.
	ErrInvalidInput = errors.New("hangman: invalid input")

	// ErrEmptyWordBank is returned by StartRound when no words are available.
	ErrEmptyWordBank = errors.New("hangman: word bank is empty")

	// ErrInvalidState is returned when a guess reaches a round that is not
	// in progress. It indicates a shell routing bug, not a user mistake.
	ErrInvalidState = errors.New("hangman: round is not in progress")
)
