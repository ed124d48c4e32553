package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hangman/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Guess   key.Binding
	Confirm key.Binding
	Back    key.Binding
	Restart key.Binding
	Help    key.Binding
	Scores  key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Guess: key.NewBinding(
			key.WithKeys(letterKeys()...),
			key.WithHelp("a-z", "guess"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Restart: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "new word"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "rules"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func letterKeys() []string {
	keys := make([]string, 0, 26)
	for r := 'a'; r <= 'z'; r++ {
		keys = append(keys, string(r))
	}
	return keys
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Guess, k.Restart, k.Scores, k.Help, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Guess, k.Restart},
		{k.Scores, k.Help},
		{k.Back, k.Quit},
	}
}

// MapKey translates a key message to a game input.
// Single letters become ActionGuess; anything unbound is ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Input {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Input{Action: core.ActionQuit}
	case key.Matches(msg, k.Confirm):
		return core.Input{Action: core.ActionConfirm}
	case key.Matches(msg, k.Back):
		return core.Input{Action: core.ActionBack}
	case key.Matches(msg, k.Restart):
		return core.Input{Action: core.ActionRestart}
	case key.Matches(msg, k.Help):
		return core.Input{Action: core.ActionHelp}
	case key.Matches(msg, k.Scores):
		return core.Input{Action: core.ActionScoreboard}
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
		return core.GuessInput(msg.Runes[0])
	}
	return core.Input{Action: core.ActionNone}
}
