package core

import "unicode"

// Action represents a semantic game action, abstracted from physical key presses.
// The platform maps keys to actions so game code never sees raw key names.
type Action int

const (
	ActionNone       Action = iota
	ActionGuess             // a-z - guess a letter
	ActionConfirm           // Enter - confirm name / dismiss alert
	ActionBack              // Esc - back to the start page
	ActionRestart           // Ctrl+R - pick a new word
	ActionHelp              // F1 - show the rules
	ActionScoreboard        // Tab - show top players
	ActionQuit              // Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionGuess:
		return "Guess"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is one decoded key press. Letter is set only for ActionGuess
// and is always an uppercase A-Z rune.
type Input struct {
	Action Action
	Letter rune
}

// GuessInput builds an ActionGuess input for r if r is an ASCII letter.
// Any other rune yields ActionNone.
func GuessInput(r rune) Input {
	if r > unicode.MaxASCII || !unicode.IsLetter(r) {
		return Input{Action: ActionNone}
	}
	return Input{Action: ActionGuess, Letter: unicode.ToUpper(r)}
}
