// Package entropy provides the single seedable random source shared by every
// stochastic system in a run. Reproducible runs depend on all draws going
// through one Source in a fixed call order: terrain generation, then per-tick
// event rolls, then per-action yield rolls, then combat rolls.
package entropy

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand/v2"
)

// Source is a deterministic PCG generator. It is not safe for concurrent use;
// the scheduler's sequential loop is its only caller.
type Source struct {
	seed  int64
	rng   *rand.Rand
	draws uint64
}

// New returns a Source seeded from seed.
func New(seed int64) *Source {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return &Source{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b"))),
	}
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Draws returns how many values have been drawn so far.
func (s *Source) Draws() uint64 {
	return s.draws
}

// Float returns a float64 in [0, 1).
func (s *Source) Float() float64 {
	s.draws++
	return s.rng.Float64()
}

// Chance reports whether a roll in [0, 1) falls below p.
// A probability of zero never fires and still consumes one draw.
func (s *Source) Chance(p float64) bool {
	return s.Float() < p
}

// Intn returns an int in [0, n). n <= 0 returns 0 without drawing.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	s.draws++
	return s.rng.IntN(n)
}

// Range returns an int in [lo, hi], inclusive.
func (s *Source) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.Intn(hi-lo+1)
}

// Weighted picks an index with probability proportional to weights[i].
// Non-positive weights are never picked; an all-zero table returns 0.
func (s *Source) Weighted(weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return 0
	}
	roll := s.Intn(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if roll < w {
			return i
		}
		roll -= w
	}
	return len(weights) - 1
}

// Round converts x to an int using stochastic rounding: the fractional part
// is the probability of rounding up. Exactly integral values never round up.
func (s *Source) Round(x float64) int {
	if x <= 0 {
		return 0
	}
	whole := math.Floor(x)
	frac := x - whole
	if s.Float() < frac {
		whole++
	}
	return int(whole)
}
