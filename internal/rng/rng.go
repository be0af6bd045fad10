// Package rng provides the pseudorandom streams used by yield and quality rolls.
//
// Tile-bound decisions (crops, slime balls) use a stream seeded from the tile,
// the day counter and the world id, so re-evaluating the same tile on the same
// day repeats the same draws. World forage uses an entropy stream whose seed is
// recorded for replay.
package rng

import (
	"math/rand/v2"
	"time"
)

// MaxGeometricDraws caps the geometric bonus loops
const MaxGeometricDraws = 100

// Stream is a source of uniform draws.
type Stream interface {
	// Float64 returns a uniform draw in [0,1)
	Float64() float64
	// IntRange returns a uniform integer in [lo, hi). hi <= lo returns lo.
	IntRange(lo, hi int) int
}

// Source is a PCG-backed Stream with a known seed.
type Source struct {
	seed uint64
	r    *rand.Rand
}

// New returns a Source seeded with seed
func New(seed uint64) *Source {
	// Non-cryptographic PRNG is intentional for deterministic simulation behavior.
	// #nosec G404
	return &Source{
		seed: seed,
		r:    rand.New(rand.NewPCG(mix64(seed), mix64(seed^0x6a09e667f3bcc909))),
	}
}

// NewEntropy returns a time-seeded Source. Seed() reports the seed that was used.
func NewEntropy() *Source {
	return New(uint64(time.Now().UnixNano()))
}

// Seed returns the seed the stream was created with
func (s *Source) Seed() uint64 {
	return s.seed
}

func (s *Source) Float64() float64 {
	return s.r.Float64()
}

func (s *Source) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.IntN(hi-lo)
}

// CropSeed is the seed of the row-crop stream for a tile on a given day
func CropSeed(x, y, daysPlayed int, worldID uint64) uint64 {
	return uint64(int64(x*7+y*11+daysPlayed)) + worldID
}

// SlimeSeed is the seed of the slime-ball stream for a tile on a given day
func SlimeSeed(x, y, daysPlayed int, worldID uint64) uint64 {
	return uint64(int64(daysPlayed+x*77+y*777+2)) + worldID
}

// ForCrop returns the deterministic crop stream for a tile and day
func ForCrop(x, y, daysPlayed int, worldID uint64) *Source {
	return New(CropSeed(x, y, daysPlayed, worldID))
}

// ForSlime returns the deterministic slime-ball stream for a tile and day
func ForSlime(x, y, daysPlayed int, worldID uint64) *Source {
	return New(SlimeSeed(x, y, daysPlayed, worldID))
}

// Geometric counts consecutive draws below p, stopping at the first failure
// or after MaxGeometricDraws successes.
func Geometric(s Stream, p float64) int {
	n := 0
	for n < MaxGeometricDraws && s.Float64() < p {
		n++
	}
	return n
}

func mix64(z uint64) uint64 {
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
