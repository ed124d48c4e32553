package hangman

// Page is a screen the shell can show.
type Page int

const (
	PageStart Page = iota
	PageGame
	PageHelp
	PageScores
)

// String returns the page name.
func (p Page) String() string {
	switch p {
	case PageStart:
		return "start"
	case PageGame:
		return "game"
	case PageHelp:
		return "help"
	case PageScores:
		return "scores"
	default:
		return "unknown"
	}
}

// Shell is the user-facing side of the game: it shows alerts and switches
// pages. The controller never renders or navigates on its own.
type Shell interface {
	ShowAlert(title, message string)
	NavigateTo(page Page)
}

// AttachShell shows a win or loss alert on sh at the end of every round.
func AttachShell(c *Controller, sh Shell) {
	c.OnRoundEnded(func(ev RoundEnded) {
		title, message := OutcomeMessage(ev)
		sh.ShowAlert(title, message)
	})
}

// OutcomeMessage returns the alert title and message for a finished round.
func OutcomeMessage(ev RoundEnded) (title, message string) {
	if ev.Outcome == StatusWon {
		return "You Win!", "You guessed the word!"
	}
	return "Game Over", "The word was: " + ev.Word
}
