package dist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightedSampleCoversCategories(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	w := NewWeighted([]string{"a", "b", "c"}, []float64{0.2, 0.5, 0.3})

	seen := map[string]int{}
	for i := 0; i < 10000; i++ {
		seen[w.Sample(r)]++
	}

	assert.Len(t, seen, 3)
	assert.InDelta(t, 5000, seen["b"], 300)
}

func TestWeightedPanicsOnMismatch(t *testing.T) {
	assert.Panics(t, func() {
		NewWeighted([]string{"a"}, []float64{0.5, 0.5})
	})
}

func TestWeightedIndexDeterministic(t *testing.T) {
	weights := []float64{0.1, 0.2, 0.7}

	r1 := rand.New(rand.NewSource(42))
	r2 := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		assert.Equal(t, WeightedIndex(r1, weights), WeightedIndex(r2, weights))
	}
}

func TestUniformIntInclusiveBounds(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := UniformInt(r, 3, 5)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 5)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
}

func TestNormalClamped(t *testing.T) {
	r := rand.New(rand.NewSource(9))

	for i := 0; i < 1000; i++ {
		v := Normal(r, 0, 10, -5, 5)
		require.GreaterOrEqual(t, v, -5.0)
		require.LessOrEqual(t, v, 5.0)
	}
}

func TestNormalizeSumsToOne(t *testing.T) {
	weights := Normalize([]float64{2, 2, 4})

	var total float64
	for _, w := range weights {
		total += w
	}
	assert.InDelta(t, 1.0, total, 1e-9)
	assert.InDelta(t, 0.25, weights[0], 1e-9)
}

func TestBernoulliExtremes(t *testing.T) {
	r := rand.New(rand.NewSource(3))

	for i := 0; i < 100; i++ {
		assert.False(t, Bernoulli(r, 0))
		assert.True(t, Bernoulli(r, 1))
	}
}
