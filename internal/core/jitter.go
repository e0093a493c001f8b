package core

import (
	"math/rand/v2"
	"sync"
)

// Jitter is a source of uniform values in [0, 1) used to perturb
// simulated sensor readings.
type Jitter interface {
	Float64() float64
}

// NewJitter returns a Jitter safe for concurrent use. Seed 0 selects the
// runtime's randomly seeded generator; any other seed yields a
// reproducible sequence.
func NewJitter(seed uint64) Jitter {
	if seed == 0 {
		return globalJitter{}
	}
	return &seededJitter{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type globalJitter struct{}

func (globalJitter) Float64() float64 { return rand.Float64() }

type seededJitter struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (j *seededJitter) Float64() float64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.r.Float64()
}

// noiseAmplitude is the full width of one noise draw; draws fall in
// [-noiseAmplitude/2, noiseAmplitude/2).
const noiseAmplitude = 0.5

func noise(j Jitter) float64 {
	return (j.Float64() - 0.5) * noiseAmplitude
}
