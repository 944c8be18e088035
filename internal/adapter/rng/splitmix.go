// Package rng provides the concrete usecase.RNG adapter over math/rand,
// with SplitMix64-style stream derivation so parallel sampler workers get
// independent, reproducible substreams from a single root seed.
package rng

import (
	"math/rand"

	"github.com/strongfield/adk-sampler/internal/usecase"
)

// SplitMix64RNG wraps a *rand.Rand behind the usecase.RNG interface.
// math/rand.Rand is not goroutine-safe; a SplitMix64RNG must not be
// shared across goroutines — use Derive to hand each worker its own.
type SplitMix64RNG struct {
	r *rand.Rand
}

// NewSplitMix64RNG returns a deterministic RNG seeded from seed. seed==0
// is remapped to a fixed non-zero default so callers always get a
// well-defined stream.
func NewSplitMix64RNG(seed int64) *SplitMix64RNG {
	return &SplitMix64RNG{r: rand.New(rand.NewSource(normalizeSeed(seed)))}
}

func normalizeSeed(seed int64) int64 {
	if seed == 0 {
		return 1
	}
	return seed
}

// Uniform returns a draw in [0,1).
func (s *SplitMix64RNG) Uniform() float64 {
	return s.r.Float64()
}

// Derive produces an independent, reproducible child stream for the
// given stream id. It consumes one Int63 draw from the receiver to
// decorrelate successive derivations before mixing in the stream id.
// Because it mutates the receiver's *rand.Rand, Derive must only ever be
// called from the single goroutine that owns s (see the type doc);
// concurrent callers sharing one root RNG should use DeriveSeed instead.
func (s *SplitMix64RNG) Derive(stream uint64) usecase.RNG {
	parent := s.r.Int63()
	seed := splitMix64Seed(parent, stream)
	return &SplitMix64RNG{r: rand.New(rand.NewSource(seed))}
}

// DeriveSeed mixes a root seed and a stream id into a new 64-bit seed
// with the same SplitMix64 finalizer Derive uses, but as a pure function
// with no shared mutable state — safe to call concurrently from many
// goroutines with the same rootSeed, and, unlike Derive, a deterministic
// function of (rootSeed, stream) alone: calling it twice with the same
// arguments always yields the same seed.
func DeriveSeed(rootSeed int64, stream uint64) int64 {
	return splitMix64Seed(rootSeed, stream)
}

// splitMix64Seed mixes a parent seed and a stream identifier into a new
// 64-bit seed via the canonical SplitMix64 finalizer (Vigna, 2014).
func splitMix64Seed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
