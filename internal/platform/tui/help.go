package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

var rules = []string{
	"Guess the hidden word one letter at a time.",
	fmt.Sprintf("Every wrong letter adds a part to the gallows. %d misses lose the round.", hangman.MaxLives),
	fmt.Sprintf("Guessing the whole word earns %d points.", hangman.WinPoints),
	"Losing a round resets your score to 0.",
	"A new word is picked after every round.",
}

func (m Model) viewHelp() string {
	lines := []string{titleStyle.Render("HOW TO PLAY"), ""}
	lines = append(lines, rules...)
	lines = append(lines, "", m.help.FullHelpView(m.keys.FullHelp()))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
