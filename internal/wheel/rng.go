package wheel

import (
	"math/rand/v2"
	"time"
)

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

type pcgRNG struct {
	r *rand.Rand
}

// NewRNG returns a uniform source. A zero seed picks one from the clock.
func NewRNG(seed int64) RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return pcgRNG{r: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

func (p pcgRNG) Intn(n int) int { return p.r.IntN(n) }

// Draw picks an index in [0, n), folding out-of-range source values back into range.
func Draw(rng RNG, n int) (int, error) {
	if n <= 0 {
		return 0, ErrEmptyRewardList
	}
	return ((rng.Intn(n) % n) + n) % n, nil
}
