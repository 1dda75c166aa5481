// Package random provides a seedable random source safe for concurrent use.
package random

import (
	"math/rand/v2"
	"sync"
)

// Source is the subset of *rand.Rand the generators draw from.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// Locked serializes draws from a single PCG stream.
type Locked struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New seeds a PCG stream. A zero seed picks a random one.
func New(seed uint64) *Locked {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Locked{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a value in [0, n). n <= 0 yields 0.
func (l *Locked) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// Between draws an integer in [lo, hi].
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}

// Pick draws one element uniformly. items must be non-empty.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}

// PickTwo draws two distinct positions so the returned values differ when items has
// no duplicates. items must hold at least two elements.
func PickTwo[T any](src Source, items []T) (T, T) {
	i := src.IntN(len(items))
	j := src.IntN(len(items) - 1)
	if j >= i {
		j++
	}
	return items[i], items[j]
}

// Chance is true with probability p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}
