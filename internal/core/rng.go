package core

import "math/rand/v2"

// Source yields uniform floats in [0, 1).
type Source interface {
	Float64() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// FillRandom marks each cell alive independently with probability p.
func FillRandom(src Source, cells []Cell, p float64) {
	for i := range cells {
		if src.Float64() < p {
			cells[i] = Alive
			continue
		}
		cells[i] = Dead
	}
}
