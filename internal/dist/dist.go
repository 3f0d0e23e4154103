// Package dist holds the distribution parameter table for every stochastic
// attribute of the synthetic cohort, including the linear temporal drift
// applied over the generation window. All sampling flows through an
// explicitly passed *rand.Rand so a fixed seed reproduces the full run.
package dist

import (
	"math/rand"
)

// Weighted is a categorical distribution over string categories.
type Weighted struct {
	categories []string
	cum        []float64
}

// NewWeighted builds a categorical sampler. Weights are normalized, so they
// do not need to sum to one.
func NewWeighted(categories []string, weights []float64) Weighted {
	if len(categories) != len(weights) {
		panic("dist: categories and weights length mismatch")
	}
	return Weighted{categories: categories, cum: cumulative(weights)}
}

// Sample draws one category.
func (w Weighted) Sample(r *rand.Rand) string {
	return w.categories[sampleIndex(r, w.cum)]
}

// WeightedIndex draws an index proportionally to weights.
func WeightedIndex(r *rand.Rand, weights []float64) int {
	return sampleIndex(r, cumulative(weights))
}

func cumulative(weights []float64) []float64 {
	var total float64
	for _, w := range weights {
		if w < 0 {
			panic("dist: negative weight")
		}
		total += w
	}
	if total <= 0 {
		panic("dist: weights sum to zero")
	}
	cum := make([]float64, len(weights))
	var run float64
	for i, w := range weights {
		run += w / total
		cum[i] = run
	}
	cum[len(cum)-1] = 1
	return cum
}

func sampleIndex(r *rand.Rand, cum []float64) int {
	u := r.Float64()
	for i, c := range cum {
		if u < c {
			return i
		}
	}
	return len(cum) - 1
}

// UniformInt draws an integer uniformly from [lo, hi] inclusive.
func UniformInt(r *rand.Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// UniformFloat draws a float uniformly from [lo, hi).
func UniformFloat(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Normal draws from a normal distribution clamped to [lo, hi].
func Normal(r *rand.Rand, mean, sd, lo, hi float64) float64 {
	v := r.NormFloat64()*sd + mean
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Bernoulli draws true with probability p.
func Bernoulli(r *rand.Rand, p float64) bool {
	return r.Float64() < p
}

// Normalize rescales weights in place to sum to one and returns them.
func Normalize(weights []float64) []float64 {
	var total float64
	for _, w := range weights {
		total += w
	}
	for i := range weights {
		weights[i] /= total
	}
	return weights
}
