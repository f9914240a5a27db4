package rng

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_random.go github.com/drinkosaur/palmier/internal/common/rng Random

// Random is the source of randomness for shuffling and mini-game rolls.
// Injected so tests can force deterministic outcomes.
type Random interface {
	// Float64 returns a value in [0.0, 1.0)
	Float64() float64

	// Shuffle pseudo-randomizes the order of n elements
	Shuffle(n int, swap func(i, j int))
}

// Config for the default random source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// DefaultRandom implements Random over math/rand
type DefaultRandom struct {
	random *rand.Rand
}

// New creates a new random source, seeded from the wall clock unless a
// seed is configured
func New(cfg *Config) *DefaultRandom {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &DefaultRandom{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns a value in [0.0, 1.0)
func (r *DefaultRandom) Float64() float64 {
	return r.random.Float64()
}

// Shuffle pseudo-randomizes the order of n elements
func (r *DefaultRandom) Shuffle(n int, swap func(i, j int)) {
	r.random.Shuffle(n, swap)
}
