package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hangman/internal/core"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
	"github.com/vovakirdan/tui-hangman/internal/storage"
)

// Store is the score storage shared by sessions.
// Both storage.Store and storage.Memory satisfy it.
type Store interface {
	hangman.ScoreStore
	BestScore() (int, error)
	TopPlayers(limit int) ([]storage.PlayerScore, error)
}

// Options configures a session model.
type Options struct {
	Words    hangman.WordSource
	Store    Store
	Recorder hangman.RoundRecorder // optional round history
	Rand     hangman.Random        // nil picks a time-seeded source
	Logger   *log.Logger           // nil discards logs
	Player   string                // pre-filled player name
	Width    int
	Height   int
}

const (
	lettersPerRow = 13
	boardPadding  = 3
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	letterStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	hitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Faint(true).
			Padding(0, 1)
	missStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Faint(true).
			Strikethrough(true).
			Padding(0, 1)
	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("229")).
			Padding(1, 4).
			Align(lipgloss.Center)
)

type alert struct {
	title   string
	message string
}

// shell is the hangman.Shell of one session. Bubble Tea copies the Model on
// every update, so everything the controller callbacks write lives here.
type shell struct {
	page    hangman.Page
	back    hangman.Page // page that esc returns to from help and scores
	alert   *alert
	display hangman.DisplayChanged
	score   int
	best    int
}

func (s *shell) ShowAlert(title, message string) {
	s.alert = &alert{title: title, message: message}
}

func (s *shell) NavigateTo(page hangman.Page) {
	if s.page == hangman.PageStart || s.page == hangman.PageGame {
		s.back = s.page
	}
	s.page = page
}

// Model is the Bubble Tea model for one hangman session.
type Model struct {
	ctrl       *hangman.Controller
	logger     *log.Logger
	ui         *shell
	keys       KeyMap
	help       help.Model
	name       textinput.Model
	scoreboard ScoreboardModel
	width      int
	height     int
	quitting   bool
}

// NewModel creates a session model on the start page.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ctrlOpts := []hangman.Option{hangman.WithLogger(logger)}
	if opts.Rand != nil {
		ctrlOpts = append(ctrlOpts, hangman.WithRand(opts.Rand))
	}
	if opts.Recorder != nil {
		ctrlOpts = append(ctrlOpts, hangman.WithRecorder(opts.Recorder))
	}

	// Keep a nil Store from becoming a non-nil interface
	var scores hangman.ScoreStore
	if opts.Store != nil {
		scores = opts.Store
	}
	ctrl := hangman.NewController(opts.Words, scores, ctrlOpts...)

	ui := &shell{page: hangman.PageStart, back: hangman.PageStart}
	ui.best = loadBest(opts.Store, logger)

	hangman.AttachShell(ctrl, ui)
	ctrl.OnDisplayChanged(func(ev hangman.DisplayChanged) { ui.display = ev })
	ctrl.OnScoreChanged(func(ev hangman.ScoreChanged) { ui.score = ev.Score })
	ctrl.OnRoundEnded(func(hangman.RoundEnded) { ui.best = loadBest(opts.Store, logger) })

	name := textinput.New()
	name.Placeholder = "your name"
	name.CharLimit = 24
	name.Width = 24
	name.SetValue(opts.Player)
	name.Focus()

	h := help.New()
	h.Width = opts.Width

	return Model{
		ctrl:       ctrl,
		logger:     logger,
		ui:         ui,
		keys:       DefaultKeyMap(),
		help:       h,
		name:       name,
		scoreboard: NewScoreboardModel(opts.Store, opts.Width, opts.Height),
		width:      opts.Width,
		height:     opts.Height,
	}
}

// loadBest reads best_score. Errors are logged and shown as 0.
func loadBest(store Store, logger *log.Logger) int {
	if store == nil {
		return 0
	}
	best, err := store.BestScore()
	if err != nil {
		logger.Warn("could not load best score", "error", err)
		return 0
	}
	return best
}

// Init starts the cursor blink of the name field.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		var cmd tea.Cmd
		m.scoreboard, cmd = m.scoreboard.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.ui.page == hangman.PageStart {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input for the current page.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.keys.MapKey(msg)
	if in.Action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Any key dismisses an open alert and is not passed on
	if m.ui.alert != nil {
		m.ui.alert = nil
		return m, nil
	}

	switch m.ui.page {
	case hangman.PageStart:
		switch in.Action {
		case core.ActionConfirm:
			m.startGame()
			return m, nil
		case core.ActionHelp:
			m.ui.NavigateTo(hangman.PageHelp)
			return m, nil
		case core.ActionScoreboard:
			m.openScores()
			return m, nil
		}
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd

	case hangman.PageGame:
		m.handleGameInput(in)

	case hangman.PageHelp:
		switch in.Action {
		case core.ActionBack, core.ActionConfirm, core.ActionHelp:
			m.ui.NavigateTo(m.ui.back)
		}

	case hangman.PageScores:
		switch in.Action {
		case core.ActionBack, core.ActionScoreboard:
			m.ui.NavigateTo(m.ui.back)
			return m, nil
		}
		var cmd tea.Cmd
		m.scoreboard, cmd = m.scoreboard.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleGameInput applies one input on the game page.
func (m *Model) handleGameInput(in core.Input) {
	switch in.Action {
	case core.ActionGuess:
		// Guessed letters are disabled until the next round
		if strings.ContainsRune(m.ui.display.Guessed, in.Letter) {
			return
		}
		if err := m.ctrl.SubmitGuess(in.Letter); err != nil {
			m.logger.Warn("guess rejected", "letter", string(in.Letter), "error", err)
		}
	case core.ActionRestart:
		if err := m.ctrl.Restart(); err != nil {
			m.logger.Error("cannot start round", "error", err)
			m.ui.ShowAlert("Error", "There are no words to play.")
		}
	case core.ActionBack:
		m.ui.NavigateTo(hangman.PageStart)
	case core.ActionHelp:
		m.ui.NavigateTo(hangman.PageHelp)
	case core.ActionScoreboard:
		m.openScores()
	}
}

// startGame sets the player from the name field and starts a round.
func (m *Model) startGame() {
	if err := m.ctrl.SetPlayer(m.name.Value()); err != nil {
		if errors.Is(err, hangman.ErrInvalidInput) {
			m.ui.ShowAlert("Name Required", "Please enter your name before starting.")
			return
		}
		m.logger.Error("cannot load player", "error", err)
		m.ui.ShowAlert("Error", "Your score could not be loaded. Please try again.")
		return
	}

	if err := m.ctrl.StartRound(); err != nil {
		m.logger.Error("cannot start round", "error", err)
		m.ui.ShowAlert("Error", "There are no words to play.")
		return
	}
	m.ui.NavigateTo(hangman.PageGame)
}

func (m *Model) openScores() {
	m.scoreboard.Reload()
	m.ui.NavigateTo(hangman.PageScores)
}

// View renders the current page, or the open alert.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch {
	case m.ui.alert != nil:
		body = m.viewAlert()
	case m.ui.page == hangman.PageGame:
		body = m.viewGame()
	case m.ui.page == hangman.PageHelp:
		body = m.viewHelp()
	case m.ui.page == hangman.PageScores:
		body = lipgloss.JoinVertical(lipgloss.Left,
			m.scoreboard.View(),
			"",
			mutedStyle.Render(m.help.ShortHelpView([]key.Binding{m.keys.Back, m.keys.Quit})),
		)
	default:
		body = m.viewStart()
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

func (m Model) viewStart() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("H A N G M A N"),
		"",
		fmt.Sprintf("Best Score: %d", m.ui.best),
		"",
		"Enter your name:",
		m.name.View(),
		"",
		mutedStyle.Render(m.help.ShortHelpView([]key.Binding{
			m.keys.Confirm, m.keys.Help, m.keys.Scores, m.keys.Quit,
		})),
	)
}

func (m Model) viewGame() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(fmt.Sprintf("Hello %s, Score: %d", m.ctrl.Player(), m.ui.score)),
		"",
		RenderScreen(drawBoard(m.ui.display)),
		"",
		m.viewLetters(),
		"",
		mutedStyle.Render(m.help.View(m.keys)),
	)
}

// drawBoard draws the gallows, masked word and lives inside a frame.
func drawBoard(d hangman.DisplayChanged) *core.Screen {
	lives := fmt.Sprintf("Lives: %d/%d", d.Lives, hangman.MaxLives)
	inner := max(hangman.GallowsWidth, len(d.Masked), len(lives))
	frame := core.NewRect(0, 0, inner+boardPadding*2, hangman.GallowsHeight+6)

	board := core.NewScreen(frame.W, frame.H)
	board.DrawBox(frame)
	hangman.DrawGallows(board, (frame.W-hangman.GallowsWidth)/2, 1, d.Stage)
	board.DrawTextCentered(hangman.GallowsHeight+2, d.Masked)
	board.DrawTextCentered(hangman.GallowsHeight+4, lives)
	return board
}

// viewLetters renders the A-Z grid. Guessed letters are greyed out.
func (m Model) viewLetters() string {
	var rows []string
	var cells []string
	for r := 'A'; r <= 'Z'; r++ {
		style := letterStyle
		if strings.ContainsRune(m.ui.display.Guessed, r) {
			style = missStyle
			if strings.ContainsRune(m.ui.display.Masked, r) {
				style = hitStyle
			}
		}
		cells = append(cells, style.Render(string(r)))
		if len(cells) == lettersPerRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
			cells = nil
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewAlert() string {
	return alertStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(m.ui.alert.title),
		"",
		m.ui.alert.message,
		"",
		mutedStyle.Render("press any key"),
	))
}

// Page returns the page currently shown.
func (m Model) Page() hangman.Page {
	return m.ui.page
}

// Alert returns the open alert, if any.
func (m Model) Alert() (title, message string, ok bool) {
	if m.ui.alert == nil {
		return "", "", false
	}
	return m.ui.alert.title, m.ui.alert.message, true
}

// Controller returns the session's game controller.
func (m Model) Controller() *hangman.Controller {
	return m.ctrl
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
