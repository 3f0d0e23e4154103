package dist

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(weights []float64) float64 {
	var total float64
	for _, w := range weights {
		total += w
	}
	return total
}

func TestMaternalAgeWeightsDrift(t *testing.T) {
	table := NewTable()

	w2020 := table.MaternalAgeWeights(2020)
	w2024 := table.MaternalAgeWeights(2024)

	assert.InDelta(t, 1.0, sum(w2020), 1e-9)
	assert.InDelta(t, 1.0, sum(w2024), 1e-9)

	// The 35+ share grows over the window.
	assert.Greater(t, w2024[4]+w2024[5], w2020[4]+w2020[5])
	// Debited from the younger bands.
	assert.Less(t, w2024[1], w2020[1])
	assert.Less(t, w2024[2], w2020[2])
}

func TestMaternalAgeWithinBands(t *testing.T) {
	table := NewTable()
	r := rand.New(rand.NewSource(11))

	for i := 0; i < 5000; i++ {
		age := table.MaternalAge(r, 2022)
		require.GreaterOrEqual(t, age, 15)
		require.LessOrEqual(t, age, 45)
	}
}

func TestBMIWeightsDrift(t *testing.T) {
	table := NewTable()

	w2020 := table.BMIWeights(2020)
	w2024 := table.BMIWeights(2024)

	assert.InDelta(t, 1.0, sum(w2024), 1e-9)
	assert.Greater(t, w2024[3], w2020[3], "obesity should increase over time")
	assert.Less(t, w2024[1], w2020[1])
}

func TestBMIWithinPhysicalRange(t *testing.T) {
	table := NewTable()
	r := rand.New(rand.NewSource(13))

	for i := 0; i < 5000; i++ {
		bmi := table.BMI(r, 2023)
		require.GreaterOrEqual(t, bmi, 15.0)
		require.LessOrEqual(t, bmi, 45.0)
	}
}

func TestRateTrends(t *testing.T) {
	table := NewTable()

	assert.Greater(t, table.SmokingRate(2020), table.SmokingRate(2024))
	assert.GreaterOrEqual(t, table.SmokingRate(2060), 0.0, "smoking rate never goes negative")

	assert.Greater(t, table.MidwifeRate(2021), table.MidwifeRate(2017))
	assert.Equal(t, 0.40, table.MidwifeRate(2040), "midwife rate is capped")

	assert.InDelta(t, 0.202, table.InductionRate(1995), 1e-9)
	assert.Equal(t, 0.26, table.InductionRate(2030), "induction rate is capped")
}

func TestPostalCodeMatchesRegion(t *testing.T) {
	table := NewTable()
	r := rand.New(rand.NewSource(17))

	for i := 0; i < 200; i++ {
		region := table.Region(r)
		code := table.PostalCode(r, region)
		require.Len(t, code, 5)

		var matched bool
		for _, prefix := range postalPrefixes[region] {
			if strings.HasPrefix(code, prefix) {
				matched = true
				break
			}
		}
		assert.True(t, matched, "postal code %s should match a prefix of %s", code, region)
	}
}

func TestParityRange(t *testing.T) {
	table := NewTable()
	r := rand.New(rand.NewSource(19))

	counts := map[int]int{}
	for i := 0; i < 10000; i++ {
		p := table.Parity(r)
		require.GreaterOrEqual(t, p, 1)
		require.LessOrEqual(t, p, 4)
		counts[p]++
	}
	// ~40% primiparous
	assert.InDelta(t, 4000, counts[1], 300)
}

func TestVisitCountByGestationalLength(t *testing.T) {
	table := NewTable()
	r := rand.New(rand.NewSource(23))

	for i := 0; i < 500; i++ {
		require.LessOrEqual(t, table.VisitCount(r, 25), 4)
		require.LessOrEqual(t, table.VisitCount(r, 34), 7)
		require.GreaterOrEqual(t, table.VisitCount(r, 40), 7)
	}
}

func TestBirthWeightConditioning(t *testing.T) {
	table := NewTable()
	r := rand.New(rand.NewSource(29))

	var termTotal, pretermTotal int
	const n = 2000
	for i := 0; i < n; i++ {
		term := table.BirthWeight(r, 40, false)
		preterm := table.BirthWeight(r, 30, false)
		require.GreaterOrEqual(t, term, 500)
		require.LessOrEqual(t, term, 5500)
		termTotal += term
		pretermTotal += preterm
	}

	assert.Greater(t, termTotal/n, pretermTotal/n, "term infants weigh more on average")
	assert.InDelta(t, 3264, termTotal/n, 100)
}

func TestApgarRanges(t *testing.T) {
	table := NewTable()
	r := rand.New(rand.NewSource(31))

	for i := 0; i < 1000; i++ {
		a1, a5 := table.Apgar(r, 40, 3300)
		require.GreaterOrEqual(t, a1, 7)
		require.LessOrEqual(t, a1, 10)
		require.GreaterOrEqual(t, a5, 8)
		require.LessOrEqual(t, a5, 10)

		p1, p5 := table.Apgar(r, 30, 1600)
		require.GreaterOrEqual(t, p1, 4)
		require.LessOrEqual(t, p1, 9)
		require.GreaterOrEqual(t, p5, 6)
		require.LessOrEqual(t, p5, 10)
	}
}
