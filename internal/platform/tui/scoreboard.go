package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hangman/internal/storage"
)

// Scoreboard layout constants
const (
	maxScores      = 50 // Max players to load
	tableMinHeight = 5
)

// ScoreboardModel shows the top players in a scrollable table.
type ScoreboardModel struct {
	store   Store
	players []storage.PlayerScore
	err     error
	table   table.Model
	width   int
	height  int
}

// NewScoreboardModel creates a scoreboard and loads the current scores.
func NewScoreboardModel(store Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.Reload()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 16},
		{Title: "Score", Width: 8},
		{Title: "Updated", Width: 14},
	}

	// Give spare width to the player column
	if extra := m.width - 4 - 50; extra > 0 {
		columns[1].Width += min(extra, 16)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, tableMinHeight)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Reload fetches the top players from the store.
func (m *ScoreboardModel) Reload() {
	m.players, m.err = nil, nil
	if m.store != nil {
		m.players, m.err = m.store.TopPlayers(maxScores)
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.players))
	for i, p := range m.players {
		updated := ""
		if !p.UpdatedAt.IsZero() {
			updated = p.UpdatedAt.Local().Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			p.Player,
			fmt.Sprintf("%d", p.Score),
			updated,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Players returns the loaded rows.
func (m ScoreboardModel) Players() []storage.PlayerScore {
	return m.players
}

// Update handles resize and scrolling.
func (m ScoreboardModel) Update(msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		m.table = m.createTable()
		m.updateTableRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("TOP PLAYERS"))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.err != nil {
		return emptyStyle.Render("Scores are unavailable right now.")
	}
	if len(m.players) == 0 {
		return emptyStyle.Render("No scores recorded yet.\nWin a round to get on the board!")
	}
	return m.table.View()
}
