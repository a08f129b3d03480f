package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Rand is the randomness source threaded through every stochastic
// operation in the simulation. *rand.Rand from math/rand/v2 satisfies
// it; tests inject scripted sources to force specific branches.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewRand returns a PCG-backed source derived from seed. The same seed
// reproduces an identical run.
func NewRand(seed int64) Rand {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// shuffleTributes shuffles in place (Fisher-Yates).
func shuffleTributes(rng Rand, ts []*Tribute) {
	for i := len(ts) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		ts[i], ts[j] = ts[j], ts[i]
	}
}

// sampleTributes draws k distinct tributes from pool without
// replacement. The pool itself is left untouched.
func sampleTributes(rng Rand, pool []*Tribute, k int) []*Tribute {
	c := make([]*Tribute, len(pool))
	copy(c, pool)
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(c)-i)
		c[i], c[j] = c[j], c[i]
	}
	return c[:k]
}
