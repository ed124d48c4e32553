package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
)

var flagName string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play hangman in this terminal",
	Long: `Start a hangman session in this terminal.

Controls:
  Enter      - Start with the entered name
  A-Z        - Guess a letter
  Ctrl+R     - New word (score is kept)
  Tab        - Top players
  F1         - Rules
  Esc        - Back
  Ctrl+C     - Quit

The terminal is used for the game, so logs are only written when
log.file is set in the config.

Examples:
  hangman play
  hangman play --name alice
  hangman play --words ./animals.txt --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name to pre-fill")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg := mustLoadConfig(cmd)

	logger, closeLog, err := playLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	bank := loadWords(cfg, logger)
	store, recorder, closeStore := openStore(cfg, logger)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.Run(tui.Options{
		Words:    bank,
		Store:    store,
		Recorder: recorder,
		Rand:     hangman.NewRand(flagSeed),
		Logger:   logger,
		Player:   flagName,
		Width:    width,
		Height:   height,
	})

	// Close before potential exit
	closeStore()
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playLogger logs to log.file, or nowhere when it is unset.
func playLogger(cfg config.Config) (*log.Logger, func(), error) {
	if cfg.Log.File == "" {
		return newLogger(io.Discard, cfg, "hangman"), func() {}, nil
	}

	path := cfg.Log.File
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	closeLog := func() {
		//nolint:errcheck // Best-effort close on exit
		f.Close()
	}
	return newLogger(f, cfg, "hangman"), closeLog, nil
}
