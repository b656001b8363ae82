package shuffle

import (
	"math/rand/v2"
	"sync"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_permuter.go github.com/KirkDiggler/hakem/internal/shuffle Permuter

// Permuter produces random orderings
type Permuter interface {
	// Permutation returns a permutation of 0..n-1 in which every ordering
	// is equally likely
	Permutation(n int) []int
}

// Shuffler provides uniform permutations backed by a PCG source
type Shuffler struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the shuffler
type Config struct {
	// Optional seed for testing
	Seed uint64
}

// New creates a new shuffler
func New(cfg *Config) *Shuffler {
	var seed1, seed2 uint64
	if cfg != nil && cfg.Seed != 0 {
		seed1, seed2 = cfg.Seed, cfg.Seed
	} else {
		seed1, seed2 = rand.Uint64(), rand.Uint64()
	}

	return &Shuffler{
		random: rand.New(rand.NewPCG(seed1, seed2)),
	}
}

// Permutation runs a Fisher-Yates shuffle over the identity permutation.
// Each step draws j uniformly from [0, i], so all n! orderings have equal
// probability. Sorting with a random comparator does not have this property.
func (s *Shuffler) Permutation(n int) []int {
	if n < 0 {
		n = 0
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := n - 1; i > 0; i-- {
		j := s.random.IntN(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}

	return perm
}
