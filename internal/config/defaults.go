package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/hangman.yaml
var defaultYAML []byte

// DefaultConfig returns the hard-coded default configuration.
func DefaultConfig() Config {
	return Config{
		Words: WordsConfig{
			File: "",
		},
		Storage: StorageConfig{
			DBPath: "~/.hangman/hangman.db",
		},
		Server: ServerConfig{
			Address:     ":2222",
			HostKeyPath: ".ssh/hangman_ed25519",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
