package maze

import (
	"math/rand"
	"time"
)

// Source is a uniform random integer generator. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform integer in [0, n). n is always positive.
	Intn(n int) int
}

// NewSource returns a pseudo-random Source. A zero seed selects a time-based seed.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
