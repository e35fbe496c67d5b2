package simulation

import (
	"math/rand"
	"time"
)

// NewRand returns a random source seeded with seed, or with the current
// time when seed is zero. Every engine owns its own source, so a run can
// be reproduced by fixing the seed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
