package pkg

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Random is the only source of chance in the game: who starts, which mark
// the bot takes, tie-breaks between equivalent cells and the thinking delay.
type Random interface {
	// IntInRange returns a uniform integer in [low, high].
	IntInRange(low, high int) int
	Bool() bool
}

type pcgRandom struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandom returns a Random seeded with seed. A zero seed takes the
// current time.
func NewRandom(seed uint64) Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &pcgRandom{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (that *pcgRandom) IntInRange(low, high int) int {
	if high <= low {
		return low
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	return low + that.rnd.IntN(high-low+1)
}

func (that *pcgRandom) Bool() bool {
	return that.IntInRange(0, 1) == 1
}

// Pick returns a uniformly chosen element of candidates and false when
// there is nothing to choose from.
func Pick[T any](rnd Random, candidates []T) (T, bool) {
	var zero T
	if len(candidates) == 0 {
		return zero, false
	}

	return candidates[rnd.IntInRange(0, len(candidates)-1)], true
}
