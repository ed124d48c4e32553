package hangman

// DisplayChanged is emitted after a round starts and after every guess
// that leaves the round in progress.
type DisplayChanged struct {
	Masked  string // e.g. "C _ _"
	Stage   int    // gallows stage, MaxLives - Lives
	Lives   int
	Guessed string // letters tried this round, in guess order
}

// ScoreChanged is emitted when the active player's score is loaded or changes.
// Player is empty when no player has been set.
type ScoreChanged struct {
	Player string
	Score  int
}

// RoundEnded is emitted when a round is won or lost, before the next round starts.
type RoundEnded struct {
	Outcome Status
	Word    string
	Player  string
	Score   int
}
