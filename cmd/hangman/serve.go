package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hangman/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the hangman SSH server",
	Long: `Start an SSH server that allows users to connect and play hangman.

Each SSH connection gets its own game, with the SSH user name
pre-filled as the player name. All users share the same scores.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise uses server.host_key_path from the config
  - The key is generated if the file does not exist

Examples:
  hangman serve                           # Listen on the configured address
  hangman serve --ssh :2222               # Listen on port 2222
  hangman serve --host-key ./my_host_key  # Use specific host key
  hangman serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":2222", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if missing)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg := mustLoadConfig(cmd)

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.Server.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		cfg.Server.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	logger := newLogger(os.Stderr, cfg, "hangman-ssh")
	bank := loadWords(cfg, logger)
	store, recorder, closeStore := openStore(cfg, logger)
	defer closeStore()

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKeyPath,
		IdleTimeout: cfg.Server.IdleTimeout,
		Words:       bank,
		Store:       store,
		Recorder:    recorder,
		Seed:        flagSeed,
		Logger:      logger,
	})
	if err != nil {
		closeStore()
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting hangman SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		closeStore()
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
