package hangman

import (
	"errors"
	"testing"
)

type wordList []string

func (w wordList) Len() int          { return len(w) }
func (w wordList) Word(i int) string { return w[i] }

// fixedRand always picks index n (mod the list length).
type fixedRand int

func (f fixedRand) Intn(n int) int { return int(f) % n }

type memScores struct {
	values map[string]int
	sets   int
	getErr error
	setErr error
}

func newMemScores() *memScores {
	return &memScores{values: make(map[string]int)}
}

func (m *memScores) Get(key string) (int, error) {
	if m.getErr != nil {
		return 0, m.getErr
	}
	return m.values[key], nil
}

func (m *memScores) Set(key string, value int) error {
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

type recorder struct {
	results []RoundResult
}

func (r *recorder) SaveRound(result RoundResult) error {
	r.results = append(r.results, result)
	return nil
}

func newTestController(t *testing.T, words wordList, store ScoreStore, opts ...Option) *Controller {
	t.Helper()
	opts = append([]Option{WithRand(fixedRand(0))}, opts...)
	return NewController(words, store, opts...)
}

func guessAll(t *testing.T, c *Controller, letters string) {
	t.Helper()
	for _, l := range letters {
		if err := c.SubmitGuess(l); err != nil {
			t.Fatalf("SubmitGuess(%q) failed: %v", l, err)
		}
	}
}

func TestControllerStartRound(t *testing.T) {
	c := newTestController(t, wordList{"CAT", "DOG"}, newMemScores(), WithRand(fixedRand(1)))

	var got []DisplayChanged
	c.OnDisplayChanged(func(ev DisplayChanged) { got = append(got, ev) })

	if err := c.StartRound(); err != nil {
		t.Fatalf("StartRound() failed: %v", err)
	}

	if c.Round().Word != "DOG" {
		t.Errorf("word = %q, want DOG", c.Round().Word)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 display event, got %d", len(got))
	}
	if got[0].Masked != "_ _ _" || got[0].Stage != 0 || got[0].Lives != MaxLives {
		t.Errorf("unexpected display event: %+v", got[0])
	}
	if c.RoundID() == "" {
		t.Error("round ID should be set")
	}
}

func TestControllerEmptyWordBank(t *testing.T) {
	c := newTestController(t, wordList{}, newMemScores())
	if err := c.StartRound(); !errors.Is(err, ErrEmptyWordBank) {
		t.Errorf("StartRound() err = %v, want ErrEmptyWordBank", err)
	}

	c = NewController(nil, nil)
	if err := c.StartRound(); !errors.Is(err, ErrEmptyWordBank) {
		t.Errorf("StartRound() with nil words err = %v, want ErrEmptyWordBank", err)
	}
}

func TestControllerSetPlayer(t *testing.T) {
	store := newMemScores()
	store.values["score_alice"] = 30
	c := newTestController(t, wordList{"CAT"}, store)

	var scores []ScoreChanged
	c.OnScoreChanged(func(ev ScoreChanged) { scores = append(scores, ev) })

	if err := c.SetPlayer("  alice  "); err != nil {
		t.Fatalf("SetPlayer() failed: %v", err)
	}
	if c.Player() != "alice" || c.Score() != 30 {
		t.Errorf("player = %q score = %d, want alice/30", c.Player(), c.Score())
	}
	if len(scores) != 1 || scores[0] != (ScoreChanged{Player: "alice", Score: 30}) {
		t.Errorf("unexpected score events: %+v", scores)
	}

	if err := c.SetPlayer("bob"); err != nil {
		t.Fatal(err)
	}
	if c.Score() != 0 {
		t.Errorf("new player should default to 0, got %d", c.Score())
	}
	if store.sets != 0 {
		t.Errorf("SetPlayer should not write scores, got %d writes", store.sets)
	}
}

func TestControllerSetPlayerEmpty(t *testing.T) {
	store := newMemScores()
	c := newTestController(t, wordList{"CAT"}, store)

	for _, name := range []string{"", "   ", "\t\n"} {
		if err := c.SetPlayer(name); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("SetPlayer(%q) err = %v, want ErrInvalidInput", name, err)
		}
	}
	if c.Player() != "" {
		t.Errorf("player should stay unset, got %q", c.Player())
	}
	if len(store.values) != 0 || store.sets != 0 {
		t.Error("no record should be created for an empty name")
	}
}

func TestControllerSetPlayerStoreError(t *testing.T) {
	store := newMemScores()
	store.getErr = errors.New("disk gone")
	c := newTestController(t, wordList{"CAT"}, store)

	if err := c.SetPlayer("alice"); err == nil {
		t.Fatal("expected error from failing store")
	}
	if c.Player() != "" {
		t.Errorf("player should stay unset after failed lookup, got %q", c.Player())
	}
}

func TestControllerSetPlayerKeepsRound(t *testing.T) {
	c := newTestController(t, wordList{"CAT"}, newMemScores())
	if err := c.StartRound(); err != nil {
		t.Fatal(err)
	}
	guessAll(t, c, "CX")
	before := c.Round()

	if err := c.SetPlayer("alice"); err != nil {
		t.Fatal(err)
	}
	if after := c.Round(); after != before {
		t.Errorf("SetPlayer changed the round: %+v -> %+v", before, after)
	}
}

func TestControllerWinScenario(t *testing.T) {
	store := newMemScores()
	store.values["score_alice"] = 20
	rec := &recorder{}
	c := newTestController(t, wordList{"CAT"}, store, WithRecorder(rec))
	if err := c.SetPlayer("alice"); err != nil {
		t.Fatal(err)
	}
	if err := c.StartRound(); err != nil {
		t.Fatal(err)
	}

	var displays []DisplayChanged
	var scores []ScoreChanged
	var ended []RoundEnded
	c.OnDisplayChanged(func(ev DisplayChanged) { displays = append(displays, ev) })
	c.OnScoreChanged(func(ev ScoreChanged) { scores = append(scores, ev) })
	c.OnRoundEnded(func(ev RoundEnded) { ended = append(ended, ev) })

	guessAll(t, c, "CA")
	if len(displays) != 2 || displays[0].Masked != "C _ _" || displays[1].Masked != "C A _" {
		t.Fatalf("unexpected displays before win: %+v", displays)
	}

	if err := c.SubmitGuess('T'); err != nil {
		t.Fatal(err)
	}

	if c.Score() != 30 || store.values["score_alice"] != 30 {
		t.Errorf("score = %d stored = %d, want 30", c.Score(), store.values["score_alice"])
	}
	if len(scores) != 1 || scores[0].Score != 30 {
		t.Errorf("unexpected score events: %+v", scores)
	}
	if len(ended) != 1 || ended[0].Outcome != StatusWon || ended[0].Word != "CAT" {
		t.Errorf("unexpected round end events: %+v", ended)
	}

	// A fresh round is started right after the win.
	if len(displays) != 3 || displays[2].Masked != "_ _ _" {
		t.Errorf("expected a fresh round display, got %+v", displays)
	}
	if snap := c.Round(); snap.Status != StatusInProgress || snap.Guessed != "" {
		t.Errorf("next round should be fresh, got %+v", snap)
	}

	if len(rec.results) != 1 {
		t.Fatalf("expected 1 recorded round, got %d", len(rec.results))
	}
	res := rec.results[0]
	if res.Player != "alice" || res.Outcome != StatusWon || res.Guesses != 3 || res.Misses != 0 || res.ScoreAfter != 30 {
		t.Errorf("unexpected round result: %+v", res)
	}
}

func TestControllerLossScenario(t *testing.T) {
	store := newMemScores()
	store.values["score_bob"] = 90
	c := newTestController(t, wordList{"DOG"}, store)
	if err := c.SetPlayer("bob"); err != nil {
		t.Fatal(err)
	}
	if err := c.StartRound(); err != nil {
		t.Fatal(err)
	}

	var lives []int
	var ended []RoundEnded
	c.OnDisplayChanged(func(ev DisplayChanged) { lives = append(lives, ev.Lives) })
	c.OnRoundEnded(func(ev RoundEnded) { ended = append(ended, ev) })

	guessAll(t, c, "XYZQV")
	want := []int{5, 4, 3, 2, 1}
	for i := range want {
		if lives[i] != want[i] {
			t.Fatalf("lives sequence = %v, want %v", lives, want)
		}
	}

	if err := c.SubmitGuess('W'); err != nil {
		t.Fatal(err)
	}
	if c.Score() != 0 || store.values["score_bob"] != 0 {
		t.Errorf("score after loss = %d stored = %d, want 0", c.Score(), store.values["score_bob"])
	}
	if len(ended) != 1 || ended[0].Outcome != StatusLost || ended[0].Word != "DOG" {
		t.Errorf("unexpected round end events: %+v", ended)
	}
	if c.Round().Lives != MaxLives {
		t.Errorf("new round should have full lives, got %d", c.Round().Lives)
	}
}

func TestControllerLowercaseGuess(t *testing.T) {
	lower := newTestController(t, wordList{"CAT"}, newMemScores())
	upper := newTestController(t, wordList{"CAT"}, newMemScores())
	for _, c := range []*Controller{lower, upper} {
		if err := c.StartRound(); err != nil {
			t.Fatal(err)
		}
	}

	if err := lower.SubmitGuess('c'); err != nil {
		t.Fatal(err)
	}
	if err := upper.SubmitGuess('C'); err != nil {
		t.Fatal(err)
	}
	if lower.Round() != upper.Round() {
		t.Errorf("'c' and 'C' diverged: %+v vs %+v", lower.Round(), upper.Round())
	}
	if lower.Round().Masked != "C _ _" {
		t.Errorf("masked = %q, want C _ _", lower.Round().Masked)
	}
}

func TestControllerInvalidGuess(t *testing.T) {
	c := newTestController(t, wordList{"CAT"}, newMemScores())
	if err := c.StartRound(); err != nil {
		t.Fatal(err)
	}
	before := c.Round()

	for _, r := range []rune{'1', ' ', '_', 'é', 'Ж', 'ı', 'ſ'} {
		if err := c.SubmitGuess(r); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("SubmitGuess(%q) err = %v, want ErrInvalidInput", r, err)
		}
	}
	if c.Round() != before {
		t.Error("invalid guesses must not change the round")
	}
}

func TestControllerGuessBeforeStart(t *testing.T) {
	c := newTestController(t, wordList{"CAT"}, newMemScores())
	if err := c.SubmitGuess('C'); !errors.Is(err, ErrInvalidState) {
		t.Errorf("SubmitGuess before StartRound err = %v, want ErrInvalidState", err)
	}
}

func TestControllerRepeatedGuess(t *testing.T) {
	c := newTestController(t, wordList{"CAT"}, newMemScores())
	if err := c.StartRound(); err != nil {
		t.Fatal(err)
	}
	guessAll(t, c, "X")
	before := c.Round()

	guessAll(t, c, "XxX")
	if c.Round() != before {
		t.Errorf("repeated guess changed state: %+v -> %+v", before, c.Round())
	}
}

func TestControllerAnonymousScore(t *testing.T) {
	store := newMemScores()
	c := newTestController(t, wordList{"A"}, store)
	if err := c.StartRound(); err != nil {
		t.Fatal(err)
	}

	var scores []ScoreChanged
	c.OnScoreChanged(func(ev ScoreChanged) { scores = append(scores, ev) })

	guessAll(t, c, "A")
	if c.Score() != WinPoints {
		t.Errorf("anonymous score = %d, want %d", c.Score(), WinPoints)
	}
	if store.sets != 0 {
		t.Errorf("anonymous score should not be persisted, got %d writes", store.sets)
	}
	if len(scores) != 1 || scores[0].Player != "" {
		t.Errorf("unexpected score events: %+v", scores)
	}
}

func TestControllerSaveFailureIsBestEffort(t *testing.T) {
	store := newMemScores()
	store.setErr = errors.New("read-only")
	c := newTestController(t, wordList{"A"}, store)
	if err := c.SetPlayer("alice"); err != nil {
		t.Fatal(err)
	}
	if err := c.StartRound(); err != nil {
		t.Fatal(err)
	}

	if err := c.SubmitGuess('A'); err != nil {
		t.Fatalf("SubmitGuess should not fail on a save error: %v", err)
	}
	if c.Score() != WinPoints {
		t.Errorf("score = %d, want %d", c.Score(), WinPoints)
	}
}

func TestControllerRestartKeepsScore(t *testing.T) {
	c := newTestController(t, wordList{"A", "BB"}, newMemScores())
	if err := c.StartRound(); err != nil {
		t.Fatal(err)
	}
	guessAll(t, c, "A")
	first := c.RoundID()

	if err := c.Restart(); err != nil {
		t.Fatal(err)
	}
	if c.RoundID() == first {
		t.Error("restart should start a new round")
	}
	if c.Score() != WinPoints {
		t.Errorf("restart changed score to %d", c.Score())
	}
}

func TestControllerScoreLaws(t *testing.T) {
	for _, start := range []int{0, 10, 250} {
		store := newMemScores()
		store.values["score_p"] = start
		c := newTestController(t, wordList{"AB"}, store)
		if err := c.SetPlayer("p"); err != nil {
			t.Fatal(err)
		}
		if err := c.StartRound(); err != nil {
			t.Fatal(err)
		}
		guessAll(t, c, "AB")
		if store.values["score_p"] != start+WinPoints {
			t.Errorf("win from %d stored %d, want %d", start, store.values["score_p"], start+WinPoints)
		}

		guessAll(t, c, "CDEFGH")
		if store.values["score_p"] != 0 {
			t.Errorf("loss from %d stored %d, want 0", start+WinPoints, store.values["score_p"])
		}
	}
}

func TestControllerRejectsLettersFoldingToASCII(t *testing.T) {
	c := newTestController(t, wordList{"IS"}, newMemScores())
	if err := c.StartRound(); err != nil {
		t.Fatal(err)
	}

	for _, r := range []rune{'ı', 'ſ', 'K'} { // dotless i, long s, Kelvin sign
		if err := c.SubmitGuess(r); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("SubmitGuess(%q) err = %v, want ErrInvalidInput", r, err)
		}
	}
	if got := c.Round().Masked; got != "_ _" {
		t.Errorf("masked = %q, want _ _", got)
	}
}
