package generator

import (
	"math/rand"
	"strings"

	"github.com/kamlesh-analytics/maternal-health-analytics/internal/dist"
	"github.com/kamlesh-analytics/maternal-health-analytics/pkg/models"
)

// GenerateOutcomes fans one pregnancy out into birth outcome rows, one per
// infant. Weight and Apgar distributions are conditioned on term status and
// multiple gestation.
func GenerateOutcomes(r *rand.Rand, t *dist.Table, pregnancy models.Pregnancy, seq *Counter) []models.BirthOutcome {
	infants := 1
	if pregnancy.IsMultipleGestation {
		infants = 2
	}

	outcomes := make([]models.BirthOutcome, 0, infants)
	for infant := 1; infant <= infants; infant++ {
		weight := t.BirthWeight(r, pregnancy.GestationalWeeks, pregnancy.IsMultipleGestation)
		lowBirthWeight := weight < 2500

		length := clamp(45+float64(weight-2500)/100, 35, 58)
		headCircumference := clamp(32+float64(weight-2500)/150, 28, 38)

		apgar1, apgar5 := t.Apgar(r, pregnancy.GestationalWeeks, weight)

		sex := "Male"
		if dist.Bernoulli(r, 0.5) {
			sex = "Female"
		}

		var complications []string
		if pregnancy.Preterm() && dist.Bernoulli(r, 0.30) {
			complications = append(complications, "Respiratory distress")
		}
		if lowBirthWeight && dist.Bernoulli(r, 0.20) {
			complications = append(complications, "Hypoglycemia")
		}
		if apgar5 < 7 && dist.Bernoulli(r, 0.40) {
			complications = append(complications, "Birth asphyxia")
		}
		if dist.Bernoulli(r, 0.03) {
			complications = append(complications, "Jaundice requiring phototherapy")
		}
		var complicationsText *string
		if len(complications) > 0 {
			joined := strings.Join(complications, ", ")
			complicationsText = &joined
		}

		nicu := pregnancy.GestationalWeeks < 34 || weight < 1800 || apgar5 < 6 ||
			(len(complications) > 0 && dist.Bernoulli(r, 0.50))
		nicuDays := 0
		if nicu {
			nicuDays = dist.UniformInt(r, 3, 30)
		}

		outcomes = append(outcomes, models.BirthOutcome{
			OutcomeID:               outcomeID(seq.Next()),
			DeliveryID:              deliveryID(pregnancy.PregnancyID),
			PregnancyID:             pregnancy.PregnancyID,
			InfantNumber:            infant,
			Sex:                     sex,
			BirthWeightGrams:        weight,
			BirthLengthCm:           length,
			HeadCircumferenceCm:     headCircumference,
			Apgar1Min:               apgar1,
			Apgar5Min:               apgar5,
			GestationalAgeWeeks:     pregnancy.GestationalWeeks,
			LowBirthWeight:          lowBirthWeight,
			PretermBirth:            pregnancy.Preterm(),
			NeonatalComplications:   complicationsText,
			NICUAdmission:           nicu,
			NICUDays:                nicuDays,
			BreastfeedingInitiation: t.Breastfeeding(r),
		})
	}

	return outcomes
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
