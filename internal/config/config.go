// Package config provides YAML-based configuration loading for the
// hangman game and its SSH server.
package config

import (
	"time"

	"github.com/charmbracelet/log"
)

// Config is the full application configuration.
type Config struct {
	Words   WordsConfig   `yaml:"words"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// WordsConfig points at the word list. An empty file means the embedded list.
type WordsConfig struct {
	File string `yaml:"file"`
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig defines SSH server parameters.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
	File  string `yaml:"file"`  // only used by play; empty discards logs
}

// LogLevel parses the configured level, falling back to info.
func (c LogConfig) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
