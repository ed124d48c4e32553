// Package hangman implements the Hangman round state machine and the
// controller that drives rounds, scoring and score persistence.
// It has no UI dependencies; shells observe it through callbacks.
package hangman

import (
	"fmt"
	"strings"
)

const (
	// MaxLives is the number of wrong guesses allowed per round.
	MaxLives = 6

	// WinPoints is added to the player's score for every won round.
	WinPoints = 10

	// Placeholder marks an unrevealed letter in the masked word.
	Placeholder = '_'
)

// Status is the state of a round.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Round holds the mutable state of one play-through.
// The zero value is a round that has not been started; Guess rejects it.
type Round struct {
	word     string
	revealed []byte
	guessed  []byte // in guess order
	lives    int
	status   Status
}

// Start resets the round for word. It is valid from any state.
// The word is trimmed and uppercased.
func (r *Round) Start(word string) {
	r.word = strings.ToUpper(strings.TrimSpace(word))
	r.revealed = make([]byte, len(r.word))
	for i := range r.revealed {
		r.revealed[i] = Placeholder
	}
	r.guessed = r.guessed[:0]
	r.lives = MaxLives
	r.status = StatusInProgress
}

// Guess applies an uppercase letter to the round.
// It reports whether the letter was new; a repeated letter changes nothing.
func (r *Round) Guess(letter byte) (bool, error) {
	if r.word == "" || r.status != StatusInProgress {
		return false, fmt.Errorf("guess %q: %w", letter, ErrInvalidState)
	}
	if r.HasGuessed(letter) {
		return false, nil
	}
	r.guessed = append(r.guessed, letter)

	hit := false
	for i := 0; i < len(r.word); i++ {
		if r.word[i] == letter {
			r.revealed[i] = letter
			hit = true
		}
	}
	if !hit && r.lives > 0 {
		r.lives--
	}

	switch {
	case !r.hasPlaceholder():
		r.status = StatusWon
	case r.lives <= 0:
		r.status = StatusLost
	}
	return true, nil
}

func (r *Round) hasPlaceholder() bool {
	for _, c := range r.revealed {
		if c == Placeholder {
			return true
		}
	}
	return false
}

// HasGuessed reports whether letter was already tried this round.
func (r *Round) HasGuessed(letter byte) bool {
	for _, g := range r.guessed {
		if g == letter {
			return true
		}
	}
	return false
}

// Word returns the selected word.
func (r *Round) Word() string { return r.word }

// Lives returns the remaining wrong guesses.
func (r *Round) Lives() int { return r.lives }

// Status returns the round status.
func (r *Round) Status() Status { return r.status }

// Started reports whether Start has been called.
func (r *Round) Started() bool { return r.word != "" }

// Stage returns the gallows stage index, 0 (empty) to MaxLives (complete).
func (r *Round) Stage() int {
	if !r.Started() {
		return 0
	}
	return MaxLives - r.lives
}

// Revealed returns a copy of the revealed slots.
func (r *Round) Revealed() []byte {
	return append([]byte(nil), r.revealed...)
}

// Guessed returns a copy of the guessed letters in guess order.
func (r *Round) Guessed() []byte {
	return append([]byte(nil), r.guessed...)
}

// Masked returns the revealed slots separated by spaces, e.g. "C _ T".
func (r *Round) Masked() string {
	if len(r.revealed) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(r.revealed) * 2)
	for i, c := range r.revealed {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// Misses returns how many guessed letters are not in the word.
func (r *Round) Misses() int {
	n := 0
	for _, g := range r.guessed {
		if strings.IndexByte(r.word, g) < 0 {
			n++
		}
	}
	return n
}

// RoundSnapshot is a read-only copy of a round.
type RoundSnapshot struct {
	Word     string
	Revealed string
	Masked   string
	Guessed  string
	Lives    int
	Stage    int
	Status   Status
}

// Snapshot returns a copy of the current round state.
func (r *Round) Snapshot() RoundSnapshot {
	return RoundSnapshot{
		Word:     r.word,
		Revealed: string(r.revealed),
		Masked:   r.Masked(),
		Guessed:  string(r.guessed),
		Lives:    r.lives,
		Stage:    r.Stage(),
		Status:   r.status,
	}
}
