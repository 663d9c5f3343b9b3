// ================== internal/pkg/random/random.go ==================
package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source yields values for the exploration bonus in candidate scoring.
// Tests inject a fixed source so ranking becomes deterministic.
type Source interface {
	// Float64InRange returns a value in [min, max).
	Float64InRange(min, max float64) float64
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a time-seeded Source safe for concurrent use.
func New() Source {
	return &lockedSource{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *lockedSource) Float64InRange(min, max float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.rng.Float64()*(max-min)
}

// Fixed is a Source that always returns the same value. Useful in tests.
type Fixed float64

func (f Fixed) Float64InRange(min, max float64) float64 { return float64(f) }
