package generator

import (
	"math/rand"
	"sort"
	"time"

	"github.com/kamlesh-analytics/maternal-health-analytics/internal/dist"
	apperrors "github.com/kamlesh-analytics/maternal-health-analytics/pkg/errors"
	"github.com/kamlesh-analytics/maternal-health-analytics/pkg/models"
)

// Spacing between consecutive deliveries of the same patient, in days,
// before jitter.
const pregnancySpacingDays = 600

// GeneratePregnancies fans one patient out into their pregnancies. Delivery
// dates spread symmetrically around the patient's anchor date, are clamped
// to the window, sorted, and numbered in date order. Maternal age is derived
// from the patient's birth date; derived ages outside [15, 45] shift the
// delivery date the way the survey data was cleaned, and anything still out
// of bounds is a fatal derivation error.
func GeneratePregnancies(r *rand.Rand, t *dist.Table, patient models.Patient, anchor time.Time, parity int, seq *Counter, window Window) ([]models.Pregnancy, error) {
	dates := make([]time.Time, parity)
	for i := 0; i < parity; i++ {
		offset := float64(i) - float64(parity-1)/2
		days := int(offset*pregnancySpacingDays) + dist.UniformInt(r, -120, 120)
		d := anchor.AddDate(0, 0, days)
		if d.Before(window.Start) {
			d = window.Start.AddDate(0, 0, dist.UniformInt(r, 0, 60))
		}
		if d.After(window.End) {
			d = window.End.AddDate(0, 0, -dist.UniformInt(r, 0, 60))
		}

		// Shift implausible derived ages back into [15, 45] rather than
		// resampling, so every draw consumes the same number of random
		// values. Normalizing before the sort keeps the numbering in
		// date order, and the shifted date is clamped into the window.
		if age := ageAt(patient.BirthDate, d); age < 15 {
			d = d.AddDate(15-age, 0, 0)
		} else if age > 45 {
			d = d.AddDate(45-age, 0, 0)
		}
		if d.Before(window.Start) {
			d = window.Start
		}
		if d.After(window.End) {
			d = window.End
		}
		dates[i] = d
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	pregnancies := make([]models.Pregnancy, 0, parity)
	for number := 1; number <= parity; number++ {
		deliveryDate := dates[number-1]
		maternalAge := ageAt(patient.BirthDate, deliveryDate)
		if maternalAge < 15 || maternalAge > 45 {
			return nil, apperrors.DerivationError("maternal age outside sane bounds", maternalAge).
				WithContext("patient_id", patient.PatientID)
		}

		gestationalWeeks := t.GestationalWeeks(r)
		lmpDate := deliveryDate.AddDate(0, 0, -gestationalWeeks*7)
		edd := lmpDate.AddDate(0, 0, 40*7)

		bmi := t.BMI(r, deliveryDate.Year())
		if bmi < 10 || bmi > 60 {
			return nil, apperrors.DerivationError("pre-pregnancy BMI outside sane bounds", bmi).
				WithContext("patient_id", patient.PatientID)
		}

		riskScore := 0
		if maternalAge >= 35 {
			riskScore += 2
		}
		if maternalAge >= 40 {
			riskScore += 3
		}
		if bmi >= 30 {
			riskScore += 2
		}
		if number == 1 {
			riskScore++
		}

		pregnancies = append(pregnancies, models.Pregnancy{
			PregnancyID:            pregnancyID(seq.Next()),
			PatientID:              patient.PatientID,
			PregnancyNumber:        number,
			LMPDate:                lmpDate,
			EDD:                    edd,
			DeliveryDate:           deliveryDate,
			MaternalAgeAtDelivery:  maternalAge,
			PrePregnancyBMI:        bmi,
			GestationalWeeks:       gestationalWeeks,
			InitialRiskScore:       riskScore,
			HasGestationalDiabetes: dist.Bernoulli(r, 0.05+float64(riskScore)*0.01),
			HasPreeclampsia:        dist.Bernoulli(r, 0.02+float64(riskScore)*0.008),
			HasPlacentalIssues:     dist.Bernoulli(r, dist.PlacentalIssueRate),
			IsMultipleGestation:    dist.Bernoulli(r, dist.MultipleGestationRate),
			Smoking3rdTrimester:    dist.Bernoulli(r, t.SmokingRate(deliveryDate.Year())),
			AlcoholDuringPregnancy: dist.Bernoulli(r, dist.AlcoholRate),
			CannabisUse:            dist.Bernoulli(r, dist.CannabisRate),
			CovidInfection:         deliveryDate.Year() >= 2020 && dist.Bernoulli(r, dist.CovidInfectionRate),
		})
	}

	return pregnancies, nil
}
