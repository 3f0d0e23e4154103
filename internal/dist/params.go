package dist

import (
	"math/rand"
	"strconv"
)

// Reference distributions derived from the ENP 2021 national perinatal
// survey, with linear year-on-year drift where the survey series shows one.

// AgeBand is an inclusive maternal age range.
type AgeBand struct {
	Lo, Hi int
}

var (
	ageBands       = []AgeBand{{15, 19}, {20, 24}, {25, 29}, {30, 34}, {35, 39}, {40, 45}}
	ageBaseWeights = []float64{0.015, 0.10, 0.30, 0.35, 0.192, 0.054}

	regions = Weighted{
		categories: []string{
			"Île-de-France",
			"Auvergne-Rhône-Alpes",
			"Nouvelle-Aquitaine",
			"Occitanie",
			"Hauts-de-France",
			"Provence-Alpes-Côte d'Azur",
			"Grand Est",
			"Pays de la Loire",
			"Bretagne",
			"Normandie",
			"Bourgogne-Franche-Comté",
			"Centre-Val de Loire",
			"Corse",
		},
		cum: cumulative([]float64{0.20, 0.12, 0.09, 0.09, 0.09, 0.08, 0.08, 0.06, 0.05, 0.05, 0.04, 0.04, 0.01}),
	}

	postalPrefixes = map[string][]string{
		"Île-de-France":              {"75", "77", "78", "91", "92", "93", "94", "95"},
		"Auvergne-Rhône-Alpes":       {"01", "03", "07", "15", "26", "38", "42", "43", "63", "69", "73", "74"},
		"Nouvelle-Aquitaine":         {"16", "17", "19", "23", "24", "33", "40", "47", "64", "79", "86", "87"},
		"Occitanie":                  {"09", "11", "12", "30", "31", "32", "34", "46", "48", "65", "66", "81", "82"},
		"Hauts-de-France":            {"02", "59", "60", "62", "80"},
		"Provence-Alpes-Côte d'Azur": {"04", "05", "06", "13", "83", "84"},
		"Grand Est":                  {"08", "10", "51", "52", "54", "55", "57", "67", "68", "88"},
		"Pays de la Loire":           {"44", "49", "53", "72", "85"},
		"Bretagne":                   {"22", "29", "35", "56"},
		"Normandie":                  {"14", "27", "50", "61", "76"},
		"Bourgogne-Franche-Comté":    {"21", "25", "39", "58", "70", "71", "89", "90"},
		"Centre-Val de Loire":        {"18", "28", "36", "37", "41", "45"},
		"Corse":                      {"2A", "2B"},
	}

	educationLevels = NewWeighted(
		[]string{"No diploma", "CAP/BEP", "Baccalauréat", "Bachelor", "Master+"},
		[]float64{0.10, 0.20, 0.20, 0.30, 0.20},
	)

	facilityTypes = NewWeighted(
		[]string{"Type I", "Type IIA", "Type IIB", "Type III", "Birth Center"},
		[]float64{0.30, 0.35, 0.15, 0.18, 0.02},
	)

	parityWeights = []float64{0.40, 0.35, 0.18, 0.07}

	breastfeeding = NewWeighted(
		[]string{"Exclusive", "Mixed", "Formula only"},
		[]float64{0.563, 0.25, 0.187},
	)

	painWithEpidural = NewWeighted(
		[]string{"None", "Mild", "Moderate", "Severe"},
		[]float64{0.30, 0.35, 0.169, 0.314},
	)
	painWithoutEpidural = NewWeighted(
		[]string{"Moderate", "Severe"},
		[]float64{0.3, 0.7},
	)
)

// Rates that do not drift over the generation window.
const (
	CesareanRate          = 0.214
	InstrumentalRate      = 0.124
	EpiduralRate          = 0.827
	MultipleGestationRate = 0.025
	EmploymentRate        = 0.75
	PartnerRate           = 0.87
	WelfareRate           = 0.09
	HealthInsuranceRate   = 0.99
	SupplementaryRate     = 0.93
	FrenchNationalityRate = 0.85
	AlcoholRate           = 0.03
	CannabisRate          = 0.011
	CovidInfectionRate    = 0.057
	PlacentalIssueRate    = 0.015
	ARMRate               = 0.332
	OxytocinRate          = 0.25
	EpisiotomyPrimiRate   = 0.165
	EpisiotomyMultiRate   = 0.029
	PerinealTearRate      = 0.30
	HemorrhageRate        = 0.05
	MidwifePresentRate    = 0.60
	T21ScreeningRate      = 0.918
)

// Table answers, for a calendar year and optional conditioning variables,
// with a sampled value from the matching target distribution.
type Table struct{}

// NewTable returns the ENP-2021 parameter table.
func NewTable() *Table {
	return &Table{}
}

// MaternalAgeWeights returns the age-band weights for a delivery year. The
// share of mothers 35 and over grows 0.5pp per year after 2020, debited
// evenly from the 20-24 and 25-29 bands.
func (t *Table) MaternalAgeWeights(year int) []float64 {
	adjustment := float64(year-2020) * 0.005
	if adjustment < 0 {
		adjustment = 0
	}

	weights := make([]float64, len(ageBaseWeights))
	copy(weights, ageBaseWeights)
	weights[4] += adjustment * 0.7
	weights[5] += adjustment * 0.3
	weights[1] -= adjustment * 0.5
	weights[2] -= adjustment * 0.5

	return Normalize(weights)
}

// MaternalAge samples a maternal age at delivery for the given year.
func (t *Table) MaternalAge(r *rand.Rand, year int) int {
	band := ageBands[WeightedIndex(r, t.MaternalAgeWeights(year))]
	return UniformInt(r, band.Lo, band.Hi)
}

// BMIWeights returns the under/normal/overweight/obese band weights for a
// year. Obesity grows 0.5pp per year after 2020 at the expense of the
// normal band.
func (t *Table) BMIWeights(year int) []float64 {
	weights := []float64{0.06, 0.63, 0.17, 0.144}
	increase := float64(year-2020) * 0.005
	if increase < 0 {
		increase = 0
	}
	weights[3] += increase
	weights[1] -= increase
	return Normalize(weights)
}

// BMI samples a pre-pregnancy BMI for the given year.
func (t *Table) BMI(r *rand.Rand, year int) float64 {
	var v float64
	switch WeightedIndex(r, t.BMIWeights(year)) {
	case 0:
		v = UniformFloat(r, 15.0, 18.4)
	case 1:
		v = UniformFloat(r, 18.5, 24.9)
	case 2:
		v = UniformFloat(r, 25.0, 29.9)
	default:
		v = UniformFloat(r, 30.0, 45.0)
	}
	return roundTo1(v)
}

// SmokingRate returns the third-trimester smoking prevalence for a year,
// falling 0.82pp per year from 16.3% in 2016.
func (t *Table) SmokingRate(year int) float64 {
	rate := 0.163 - float64(year-2016)*0.0082
	if rate < 0 {
		return 0
	}
	return rate
}

// MidwifeRate returns the share of prenatal visits led by a midwife,
// rising 5pp per year from 11.7% in 2016, capped at 40%.
func (t *Table) MidwifeRate(year int) float64 {
	rate := 0.117 + float64(year-2016)*0.05
	if rate > 0.40 {
		return 0.40
	}
	if rate < 0 {
		return 0
	}
	return rate
}

// InductionRate returns the labor induction rate for a year, rising
// 0.21pp per year from 20.2% in 1995, capped at 26%.
func (t *Table) InductionRate(year int) float64 {
	rate := 0.202 + float64(year-1995)*0.0021
	if rate > 0.26 {
		return 0.26
	}
	return rate
}

// Region samples an administrative region.
func (t *Table) Region(r *rand.Rand) string {
	return regions.Sample(r)
}

// PostalCode samples a postal code consistent with the region.
func (t *Table) PostalCode(r *rand.Rand, region string) string {
	prefixes, ok := postalPrefixes[region]
	if !ok {
		prefixes = []string{"75"}
	}
	prefix := prefixes[r.Intn(len(prefixes))]
	return prefix + strconv.Itoa(UniformInt(r, 100, 999))
}

// EducationLevel samples an education level.
func (t *Table) EducationLevel(r *rand.Rand) string {
	return educationLevels.Sample(r)
}

// FacilityType samples a maternity facility type.
func (t *Table) FacilityType(r *rand.Rand) string {
	return facilityTypes.Sample(r)
}

// Parity samples the number of pregnancies for one patient (1..4),
// roughly 40% primiparous.
func (t *Table) Parity(r *rand.Rand) int {
	return WeightedIndex(r, parityWeights) + 1
}

// GestationalWeeks samples a gestational length including preterm and
// post-term pregnancies.
func (t *Table) GestationalWeeks(r *rand.Rand) int {
	return UniformInt(r, 22, 43)
}

// VisitCount samples the number of prenatal visits given the gestational
// length; shorter pregnancies leave room for fewer visits.
func (t *Table) VisitCount(r *rand.Rand, gestationalWeeks int) int {
	switch {
	case gestationalWeeks < 28:
		return UniformInt(r, 2, 4)
	case gestationalWeeks < 37:
		return UniformInt(r, 4, 7)
	default:
		return UniformInt(r, 7, 12)
	}
}

// BirthWeight samples a birth weight in grams conditioned on term status
// and multiple gestation, clamped to [500, 5500].
func (t *Table) BirthWeight(r *rand.Rand, gestationalWeeks int, multiple bool) int {
	var w float64
	switch {
	case gestationalWeeks >= 37:
		w = Normal(r, 3264, 450, 500, 5500)
	case gestationalWeeks >= 32:
		w = Normal(r, 2200, 400, 500, 5500)
	default:
		w = Normal(r, 1500, 350, 500, 5500)
	}
	if multiple {
		w *= 0.85
	}
	grams := int(w)
	if grams < 500 {
		grams = 500
	}
	if grams > 5500 {
		grams = 5500
	}
	return grams
}

// Apgar samples 1- and 5-minute Apgar scores conditioned on term status and
// low birth weight.
func (t *Table) Apgar(r *rand.Rand, gestationalWeeks, birthWeightGrams int) (oneMin, fiveMin int) {
	if gestationalWeeks >= 37 && birthWeightGrams >= 2500 {
		oneMin = 7 + WeightedIndex(r, []float64{0.05, 0.15, 0.35, 0.45})
		fiveMin = 8 + WeightedIndex(r, []float64{0.10, 0.30, 0.60})
		return oneMin, fiveMin
	}
	oneMin = 4 + WeightedIndex(r, []float64{0.05, 0.10, 0.15, 0.25, 0.25, 0.20})
	fiveMin = 6 + WeightedIndex(r, []float64{0.05, 0.10, 0.25, 0.35, 0.25})
	return oneMin, fiveMin
}

// Breastfeeding samples the in-hospital feeding initiation status.
func (t *Table) Breastfeeding(r *rand.Rand) string {
	return breastfeeding.Sample(r)
}

// PainLevel samples the reported labor pain level, conditioned on epidural.
func (t *Table) PainLevel(r *rand.Rand, epidural bool) string {
	if epidural {
		return painWithEpidural.Sample(r)
	}
	return painWithoutEpidural.Sample(r)
}

func roundTo1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
