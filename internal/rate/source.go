package rate

import (
	"math/rand/v2"
	"sync"
)

// Source yields a uniform integer in [0, n).
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// GlobalSource draws from math/rand/v2's shared generator, which is safe for
// concurrent use.
func GlobalSource() Source { return globalSource{} }

type seededSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededSource returns a reproducible source guarded by a mutex.
func NewSeededSource(seed uint64) Source {
	return &seededSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// SourceFromSeed returns nil for seed 0 so callers fall back to GlobalSource.
func SourceFromSeed(seed uint64) Source {
	if seed == 0 {
		return nil
	}
	return NewSeededSource(seed)
}

// MinSource always returns 0.
type MinSource struct{}

func (MinSource) IntN(int) int { return 0 }

// between draws uniformly from [lo, hi] inclusive.
func between(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}
