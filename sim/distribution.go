package sim

import "math/rand"

// NormalSampler produces normally distributed durations clamped to >= 0.
// A negative sample must never become a negative delay.
type NormalSampler struct {
	Mean   float64
	StdDev float64
}

func (s NormalSampler) Sample(rng *rand.Rand) float64 {
	val := rng.NormFloat64()*s.StdDev + s.Mean
	if val < 0 {
		return 0
	}
	return val
}

// ExponentialSampler produces exponentially distributed durations with the
// given mean.
type ExponentialSampler struct {
	Mean float64
}

func (s ExponentialSampler) Sample(rng *rand.Rand) float64 {
	return rng.ExpFloat64() * s.Mean
}

// Bernoulli draws true with probability p.
func Bernoulli(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}
