package hangman

import (
	"math/rand"
	"time"
)

// NewRand returns a seeded random source. A zero seed uses the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func newTimeSeededRand() *rand.Rand {
	return NewRand(0)
}
