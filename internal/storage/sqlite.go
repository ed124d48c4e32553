// Package storage provides persistence for player scores and round history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// BestScoreKey holds the highest score any player has reached.
// It is maintained by Set and never written by the game itself.
const BestScoreKey = "best_score"

var scorePrefix = hangman.ScoreKey("")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// PlayerScore is a player's current score.
type PlayerScore struct {
	Player    string
	Score     int
	UpdatedAt time.Time
}

// RoundEntry is one recorded round.
type RoundEntry struct {
	ID         int64
	RoundID    string
	Player     string
	Word       string
	Outcome    string
	Guesses    int
	Misses     int
	ScoreAfter int
	Duration   time.Duration
	CreatedAt  time.Time
}

// PlayerStats contains aggregated statistics for a player.
type PlayerStats struct {
	Player     string
	Score      int
	Rounds     int
	Wins       int
	Losses     int
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	// SSH sessions write concurrently; wait on locks instead of failing.
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot set busy timeout: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS preferences (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL,
			word TEXT NOT NULL,
			outcome TEXT NOT NULL,
			guesses INTEGER NOT NULL DEFAULT 0,
			misses INTEGER NOT NULL DEFAULT 0,
			score_after INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_rounds_player ON rounds(player, created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the integer stored under key, or 0 if the key is missing.
func (s *Store) Get(key string) (int, error) {
	var value int
	err := s.db.QueryRow("SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %q: %w", key, err)
	}
	return value, nil
}

// Set stores value under key. Writing a player score also raises
// best_score when the new value is higher.
func (s *Store) Set(key string, value int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.Exec(
		`INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %q: %w", key, err)
	}

	if strings.HasPrefix(key, scorePrefix) {
		_, err = tx.Exec(
			`INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			 ON CONFLICT(key) DO UPDATE SET value = MAX(value, excluded.value), updated_at = excluded.updated_at`,
			BestScoreKey, value,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot update best score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// BestScore returns the highest score reached by any player.
func (s *Store) BestScore() (int, error) {
	return s.Get(BestScoreKey)
}

// TopPlayers returns players ordered by current score, highest first.
func (s *Store) TopPlayers(limit int) ([]PlayerScore, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT substr(key, ?), value, updated_at
		 FROM preferences
		 WHERE substr(key, 1, ?) = ?
		 ORDER BY value DESC, key ASC
		 LIMIT ?`,
		len(scorePrefix)+1, len(scorePrefix), scorePrefix, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query players: %w", err)
	}
	defer rows.Close()

	var players []PlayerScore
	for rows.Next() {
		var p PlayerScore
		var updatedAt any
		if err := rows.Scan(&p.Player, &p.Score, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.UpdatedAt = parseTime(updatedAt)
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return players, nil
}

// SaveRound records a finished round. It implements hangman.RoundRecorder.
func (s *Store) SaveRound(result hangman.RoundResult) error {
	_, err := s.db.Exec(
		`INSERT INTO rounds
		 (round_id, player, word, outcome, guesses, misses, score_after, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		result.RoundID,
		result.Player,
		result.Word,
		result.Outcome.String(),
		result.Guesses,
		result.Misses,
		result.ScoreAfter,
		result.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save round: %w", err)
	}
	return nil
}

// Ensure Store implements the game's persistence contracts.
var (
	_ hangman.ScoreStore    = (*Store)(nil)
	_ hangman.RoundRecorder = (*Store)(nil)
)

// RecentRounds returns the most recent rounds, newest first.
// An empty player returns rounds for everyone.
func (s *Store) RecentRounds(player string, limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, round_id, player, word, outcome, guesses, misses, score_after, duration_ms, created_at
		 FROM rounds`
	args := []any{}
	if player != "" {
		query += " WHERE player = ?"
		args = append(args, player)
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		var durationMS int64
		var createdAt any
		if err := rows.Scan(
			&e.ID,
			&e.RoundID,
			&e.Player,
			&e.Word,
			&e.Outcome,
			&e.Guesses,
			&e.Misses,
			&e.ScoreAfter,
			&durationMS,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// GetPlayerStats returns aggregated statistics for a player.
func (s *Store) GetPlayerStats(player string) (*PlayerStats, error) {
	stats := &PlayerStats{Player: player}

	score, err := s.Get(hangman.ScoreKey(player))
	if err != nil {
		return nil, err
	}
	stats.Score = score

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        MAX(created_at)
		 FROM rounds WHERE player = ?`,
		hangman.StatusWon.String(), hangman.StatusLost.String(), player,
	).Scan(&stats.Rounds, &stats.Wins, &stats.Losses, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get player stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearPlayer deletes a player's score and round history.
// best_score is left as is.
func (s *Store) ClearPlayer(player string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec("DELETE FROM preferences WHERE key = ?", hangman.ScoreKey(player)); err != nil {
		return fmt.Errorf("storage: cannot clear score: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM rounds WHERE player = ?", player); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime values from SQLite.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
