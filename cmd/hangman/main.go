// hangman is a terminal word-guessing game that can also be played over SSH.
//
// Usage:
//
//	hangman play               - Play in this terminal
//	hangman serve              - Start SSH server for remote play
//	hangman scores [player]    - Show top players or one player's rounds
//	hangman words              - Show the loaded word list
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.hangman/configs, ./configs)
//	--db <path>         - Set database path (default: ~/.hangman/hangman.db)
//	--words <path>      - Word list, one word per line
//	--seed <value>      - Set RNG seed for reproducible word picks
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/config"
	"github.com/vovakirdan/tui-hangman/internal/hangman"
	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
	"github.com/vovakirdan/tui-hangman/internal/storage"
	"github.com/vovakirdan/tui-hangman/internal/words"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagWords    string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Hangman - guess the word before the gallows is complete",
	Long: `Hangman is a terminal word-guessing game.

Guess the hidden word one letter at a time. Six wrong letters and the
round is lost. Every won round is worth 10 points; a lost round resets
your score.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View top players and round history
  words    - Show the loaded word list

Examples:
  hangman play --name alice
  hangman serve --ssh :2222
  hangman scores
  hangman scores alice
  hangman words --words ./words.txt`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hangman/hangman.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagWords, "words", "", "Path to word list (default: built-in list)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(wordsCmd)
}

// loadConfig loads the config file and applies global flags that were set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("words") {
		cfg.Words.File = flagWords
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// mustLoadConfig is loadConfig for commands, exiting on error.
func mustLoadConfig(cmd *cobra.Command) config.Config {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func newLogger(w io.Writer, cfg config.Config, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           cfg.Log.LogLevel(),
	})
}

// loadWords loads the configured word list, falling back to the built-in one.
func loadWords(cfg config.Config, logger *log.Logger) *words.Bank {
	bank := words.LoadFile(cfg.Words.File)
	if bank.IsFallback() && cfg.Words.File != "" {
		logger.Warn("word list unusable, using built-in words", "file", cfg.Words.File)
	}
	logger.Debug("words loaded", "count", bank.Len(), "fallback", bank.IsFallback())
	return bank
}

// openStore opens the scores database. If it cannot be opened the game
// continues with in-memory scores and no round history.
func openStore(cfg config.Config, logger *log.Logger) (tui.Store, hangman.RoundRecorder, func()) {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("using in-memory scores", "error", err)
		return storage.NewMemory(), nil, func() {}
	}
	return store, store, func() {
		if err := store.Close(); err != nil {
			logger.Warn("could not close scores database", "error", err)
		}
	}
}
