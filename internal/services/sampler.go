package services

import (
	"delivery-time-simulator/internal/domain"
	"fmt"
	"math/rand/v2"
)

// Sampler draws fixed-size batches of independent samples from a
// seedable source. Every run owns its own Sampler, so no sampling
// state leaks between unrelated runs, and re-running with the same
// seed reproduces identical batches.
//
// All parameter checks happen before the first draw; an invalid
// parameter never consumes randomness and never yields a partial batch.
type Sampler struct {
	rng *rand.Rand
}

func NewSampler(seed uint64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Exponential draws n samples with mean 1/rate.
func (s *Sampler) Exponential(rate float64, n int) ([]float64, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("sample exponential: rate must be > 0 (got %g): %w", rate, domain.ErrInvalidParameter)
	}
	if n < 0 {
		return nil, fmt.Errorf("sample exponential: batch size must be >= 0 (got %d): %w", n, domain.ErrInvalidParameter)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = s.rng.ExpFloat64() / rate
	}
	return out, nil
}

// UniformInts draws n integers uniformly from the inclusive range [low, high].
func (s *Sampler) UniformInts(low, high, n int) ([]int, error) {
	if low > high {
		return nil, fmt.Errorf("sample uniform ints: range is malformed (low=%d high=%d): %w", low, high, domain.ErrInvalidParameter)
	}
	if n < 0 {
		return nil, fmt.Errorf("sample uniform ints: batch size must be >= 0 (got %d): %w", n, domain.ErrInvalidParameter)
	}

	span := high - low + 1
	out := make([]int, n)
	for i := range out {
		out[i] = low + s.rng.IntN(span)
	}
	return out, nil
}

// Bernoulli draws n indicators that are true with probability p.
func (s *Sampler) Bernoulli(p float64, n int) ([]bool, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("sample bernoulli: probability must be in [0,1] (got %g): %w", p, domain.ErrInvalidParameter)
	}
	if n < 0 {
		return nil, fmt.Errorf("sample bernoulli: batch size must be >= 0 (got %d): %w", n, domain.ErrInvalidParameter)
	}

	out := make([]bool, n)
	for i := range out {
		out[i] = s.rng.Float64() < p
	}
	return out, nil
}
