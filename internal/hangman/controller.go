package hangman

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// ScoreKey returns the preference key holding a player's score.
func ScoreKey(player string) string {
	return "score_" + player
}

// ScoreStore is a durable key-value store of integer scores.
// Get returns 0 for a missing key.
type ScoreStore interface {
	Get(key string) (int, error)
	Set(key string, value int) error
}

// WordSource is the candidate word list for a controller.
type WordSource interface {
	Len() int
	Word(i int) string
}

// Random picks word indexes. *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// RoundResult describes a finished round for history storage.
type RoundResult struct {
	RoundID    string
	Player     string
	Word       string
	Outcome    Status
	Guesses    int
	Misses     int
	ScoreAfter int
	Duration   time.Duration
}

// RoundRecorder stores finished rounds. Recording is best-effort.
type RoundRecorder interface {
	SaveRound(result RoundResult) error
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand sets the random source used to pick words.
func WithRand(r Random) Option {
	return func(c *Controller) { c.rng = r }
}

// WithLogger sets the controller logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithRecorder stores every finished round in rec.
func WithRecorder(rec RoundRecorder) Option {
	return func(c *Controller) { c.recorder = rec }
}

// Controller runs rounds for one player context.
// It is not safe for concurrent use; shells deliver input one event at a time.
type Controller struct {
	words    WordSource
	store    ScoreStore
	rng      Random
	recorder RoundRecorder
	logger   *log.Logger
	now      func() time.Time

	round     Round
	roundID   string
	startedAt time.Time

	player string
	score  int

	displayObservers []func(DisplayChanged)
	scoreObservers   []func(ScoreChanged)
	endObservers     []func(RoundEnded)
}

// NewController creates a controller. No round is started until StartRound.
func NewController(words WordSource, store ScoreStore, opts ...Option) *Controller {
	c := &Controller{
		words: words,
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = newTimeSeededRand()
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	return c
}

// OnDisplayChanged registers a callback for display updates.
func (c *Controller) OnDisplayChanged(fn func(DisplayChanged)) {
	c.displayObservers = append(c.displayObservers, fn)
}

// OnScoreChanged registers a callback for score updates.
func (c *Controller) OnScoreChanged(fn func(ScoreChanged)) {
	c.scoreObservers = append(c.scoreObservers, fn)
}

// OnRoundEnded registers a callback for won and lost rounds.
func (c *Controller) OnRoundEnded(fn func(RoundEnded)) {
	c.endObservers = append(c.endObservers, fn)
}

// SetPlayer makes name the active player and loads their saved score.
// The current round is left untouched.
func (c *Controller) SetPlayer(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("set player: empty name: %w", ErrInvalidInput)
	}

	score := 0
	if c.store != nil {
		saved, err := c.store.Get(ScoreKey(name))
		if err != nil {
			return fmt.Errorf("hangman: load score for %q: %w", name, err)
		}
		score = saved
	}

	c.player = name
	c.score = score
	c.logger.Debug("player set", "player", name, "score", score)
	c.emitScore()
	return nil
}

// StartRound picks a random word and starts a fresh round.
func (c *Controller) StartRound() error {
	if c.words == nil || c.words.Len() == 0 {
		return ErrEmptyWordBank
	}

	word := c.words.Word(c.rng.Intn(c.words.Len()))
	c.round.Start(word)
	c.roundID = uuid.NewString()
	c.startedAt = c.now()

	c.logger.Debug("round started", "round", c.roundID, "letters", len(c.round.Word()))
	c.emitDisplay()
	return nil
}

// Restart abandons the current round and starts a new one.
// The score is not affected.
func (c *Controller) Restart() error {
	return c.StartRound()
}

// SubmitGuess applies a letter guess. Lowercase letters are accepted.
// A won or lost round is scored, reported and replaced by a new round.
func (c *Controller) SubmitGuess(letter rune) error {
	if letter > unicode.MaxASCII {
		return fmt.Errorf("submit guess %q: %w", letter, ErrInvalidInput)
	}
	upper := unicode.ToUpper(letter)
	if upper < 'A' || upper > 'Z' {
		return fmt.Errorf("submit guess %q: %w", letter, ErrInvalidInput)
	}

	if _, err := c.round.Guess(byte(upper)); err != nil {
		return err
	}

	switch c.round.Status() {
	case StatusWon:
		c.score += WinPoints
	case StatusLost:
		c.score = 0
	default:
		c.emitDisplay()
		return nil
	}

	c.finishRound()
	return c.StartRound()
}

// finishRound persists and reports a round that just reached a terminal state.
func (c *Controller) finishRound() {
	outcome := c.round.Status()

	c.persistScore()
	c.emitScore()

	ended := RoundEnded{
		Outcome: outcome,
		Word:    c.round.Word(),
		Player:  c.player,
		Score:   c.score,
	}
	for _, fn := range c.endObservers {
		fn(ended)
	}

	c.logger.Info("round ended",
		"round", c.roundID,
		"player", c.player,
		"outcome", outcome,
		"word", ended.Word,
		"score", c.score,
	)

	if c.recorder != nil {
		result := RoundResult{
			RoundID:    c.roundID,
			Player:     c.player,
			Word:       ended.Word,
			Outcome:    outcome,
			Guesses:    len(c.round.Guessed()),
			Misses:     c.round.Misses(),
			ScoreAfter: c.score,
			Duration:   c.now().Sub(c.startedAt),
		}
		if err := c.recorder.SaveRound(result); err != nil {
			c.logger.Warn("could not record round", "round", c.roundID, "error", err)
		}
	}
}

// persistScore writes the active player's score. Anonymous scores stay in memory.
func (c *Controller) persistScore() {
	if c.player == "" || c.store == nil {
		return
	}
	if err := c.store.Set(ScoreKey(c.player), c.score); err != nil {
		c.logger.Warn("could not save score", "player", c.player, "error", err)
	}
}

func (c *Controller) emitDisplay() {
	ev := DisplayChanged{
		Masked:  c.round.Masked(),
		Stage:   c.round.Stage(),
		Lives:   c.round.Lives(),
		Guessed: string(c.round.Guessed()),
	}
	for _, fn := range c.displayObservers {
		fn(ev)
	}
}

func (c *Controller) emitScore() {
	ev := ScoreChanged{Player: c.player, Score: c.score}
	for _, fn := range c.scoreObservers {
		fn(ev)
	}
}

// Player returns the active player name, or "" if none is set.
func (c *Controller) Player() string { return c.player }

// Score returns the active player's current score.
func (c *Controller) Score() int { return c.score }

// Round returns a snapshot of the current round.
func (c *Controller) Round() RoundSnapshot { return c.round.Snapshot() }

// RoundID returns the identifier of the current round.
func (c *Controller) RoundID() string { return c.roundID }
