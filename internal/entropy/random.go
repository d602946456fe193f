// Package entropy provides the random source behind every stochastic system
// in the game: weather walks, event placement, customer populations, tips,
// and reviews. Production flows use an unseeded crypto/rand-backed source;
// tests inject a seeded one so generator output becomes reproducible.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand"
)

// Source yields random values. Implementations need not be safe for
// concurrent use; each game flow owns its own source.
type Source interface {
	// Float returns a uniform float64 in [0, 1).
	Float() float64
	// Intn returns a uniform int in [0, n). Panics if n <= 0.
	Intn(n int) int
	// IntBetween returns a uniform int in [min, max] inclusive.
	IntBetween(min, max int) int
}

// System is a Source backed by crypto/rand. The zero value is ready to use.
type System struct{}

func (System) Float() float64 {
	return cryptoRandFloat()
}

func (s System) Intn(n int) int {
	if n <= 0 {
		panic("entropy: Intn with non-positive n")
	}
	return int(s.Float() * float64(n))
}

func (s System) IntBetween(min, max int) int {
	return min + s.Intn(max-min+1)
}

// Seeded is a deterministic Source for tests and reproducible simulations.
type Seeded struct {
	rng *mathrand.Rand
}

// NewSeeded creates a deterministic source from a seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rng: mathrand.New(mathrand.NewSource(seed))}
}

func (s *Seeded) Float() float64 { return s.rng.Float64() }

func (s *Seeded) Intn(n int) int { return s.rng.Intn(n) }

func (s *Seeded) IntBetween(min, max int) int {
	return min + s.rng.Intn(max-min+1)
}

// cryptoRandFloat generates a random float64 using crypto/rand.
func cryptoRandFloat() float64 {
	var buf [8]byte
	_, err := rand.Read(buf[:])
	if err != nil {
		// This should never happen but return 0.5 as a safe default.
		return 0.5
	}
	// Use only 53 bits for a uniform float64 in [0, 1).
	n := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}

// Chance returns true with probability p.
func Chance(src Source, p float64) bool {
	return src.Float() < p
}

// Pick returns a uniformly chosen element of options.
func Pick[T any](src Source, options []T) T {
	return options[src.Intn(len(options))]
}
