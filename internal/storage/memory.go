package storage

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vovakirdan/tui-hangman/internal/hangman"
)

// Memory is an in-process score store. It is used when the database
// cannot be opened, so the game keeps working without persistence.
type Memory struct {
	mu      sync.Mutex
	values  map[string]int
	updated map[string]time.Time
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		values:  make(map[string]int),
		updated: make(map[string]time.Time),
	}
}

// Get returns the value under key, or 0 if missing.
func (m *Memory) Get(key string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

// Set stores value under key and keeps best_score up to date.
func (m *Memory) Set(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	m.values[key] = value
	m.updated[key] = now
	if strings.HasPrefix(key, scorePrefix) && value > m.values[BestScoreKey] {
		m.values[BestScoreKey] = value
		m.updated[BestScoreKey] = now
	}
	return nil
}

// BestScore returns the highest score reached by any player.
func (m *Memory) BestScore() (int, error) {
	return m.Get(BestScoreKey)
}

// TopPlayers returns players ordered by score, highest first.
func (m *Memory) TopPlayers(limit int) ([]PlayerScore, error) {
	if limit <= 0 {
		limit = 10
	}

	m.mu.Lock()
	players := make([]PlayerScore, 0, len(m.values))
	for key, value := range m.values {
		if !strings.HasPrefix(key, scorePrefix) {
			continue
		}
		players = append(players, PlayerScore{
			Player:    strings.TrimPrefix(key, scorePrefix),
			Score:     value,
			UpdatedAt: m.updated[key],
		})
	}
	m.mu.Unlock()

	sort.Slice(players, func(i, j int) bool {
		if players[i].Score != players[j].Score {
			return players[i].Score > players[j].Score
		}
		return players[i].Player < players[j].Player
	})
	if len(players) > limit {
		players = players[:limit]
	}
	return players, nil
}

var _ hangman.ScoreStore = (*Memory)(nil)
