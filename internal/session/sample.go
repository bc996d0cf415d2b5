// Package session implements practice session generation and state.
package session

import (
	"math/rand"
	"time"

	"github.com/cypher-zh/cypher/internal/tonebank"
)

// Generator draws randomized question samples from a tone bank.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator returns a Generator seeded with the current time.
func NewGenerator() *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewGeneratorWithSource returns a Generator using the given source.
// Tests use this for deterministic draws.
func NewGeneratorWithSource(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// Sample draws min(n, len(pool)) entries uniformly without replacement.
// A non-positive n yields an empty sample.
func (g *Generator) Sample(pool []tonebank.Entry, n int) []tonebank.Entry {
	if n <= 0 || len(pool) == 0 {
		return nil
	}
	if n > len(pool) {
		n = len(pool)
	}
	perm := g.rnd.Perm(len(pool))
	result := make([]tonebank.Entry, 0, n)
	for _, idx := range perm[:n] {
		result = append(result, pool[idx])
	}
	return result
}

// SampleWeighted draws min(n, len(pool)) entries without replacement with a
// bias toward entries whose effective tone is in weakTones.
func (g *Generator) SampleWeighted(pool []tonebank.Entry, n int, weakTones map[int]struct{}, factor float64) []tonebank.Entry {
	if n <= 0 || len(pool) == 0 {
		return nil
	}
	if n > len(pool) {
		n = len(pool)
	}

	remaining := make([]tonebank.Entry, len(pool))
	copy(remaining, pool)
	weights := make([]float64, len(remaining))
	total := 0.0
	for i, entry := range remaining {
		w := 1.0
		if _, ok := weakTones[entry.EffectiveTone]; ok {
			w += factor
		}
		weights[i] = w
		total += w
	}

	result := make([]tonebank.Entry, 0, n)
	for len(result) < n {
		r := g.rnd.Float64() * total
		acc := 0.0
		idx := 0
		for j, w := range weights {
			acc += w
			if r <= acc {
				idx = j
				break
			}
		}
		result = append(result, remaining[idx])
		total -= weights[idx]
		remaining = append(remaining[:idx], remaining[idx+1:]...)
		weights = append(weights[:idx], weights[idx+1:]...)
	}
	return result
}
