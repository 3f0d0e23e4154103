package generator

import (
	"math/rand"

	"github.com/kamlesh-analytics/maternal-health-analytics/internal/dist"
	"github.com/kamlesh-analytics/maternal-health-analytics/pkg/models"
)

// Assumed average height when deriving weight from BMI, in meters.
const assumedHeightM = 1.65

// GenerateVisits fans one pregnancy out into its prenatal visits. Visit
// dates spread proportionally between the LMP and the delivery date, so
// every generated visit precedes the delivery; the defect injector is the
// only source of rows violating that.
func GenerateVisits(r *rand.Rand, t *dist.Table, pregnancy models.Pregnancy, seq *Counter) []models.PrenatalVisit {
	count := t.VisitCount(r, pregnancy.GestationalWeeks)
	durationDays := int(pregnancy.DeliveryDate.Sub(pregnancy.LMPDate).Hours() / 24)

	preWeight := pregnancy.PrePregnancyBMI * assumedHeightM * assumedHeightM
	expectedGain := dist.UniformFloat(r, 9, 18)

	visits := make([]models.PrenatalVisit, 0, count)
	for number := 1; number <= count; number++ {
		proportion := float64(number) / float64(count+1)
		visitDate := pregnancy.LMPDate.AddDate(0, 0, int(float64(durationDays)*proportion))
		week := int(visitDate.Sub(pregnancy.LMPDate).Hours() / 24 / 7)

		providerType := "Obstetrician"
		if dist.Bernoulli(r, t.MidwifeRate(visitDate.Year())) {
			providerType = "Midwife"
		}

		// Blood pressure rises slightly through the pregnancy.
		bpIncrease := int(float64(week) * 0.3)
		systolic := dist.UniformInt(r, 100, 130) + bpIncrease + dist.UniformInt(r, -5, 5)
		diastolic := dist.UniformInt(r, 60, 85) + int(float64(bpIncrease)*0.6) + dist.UniformInt(r, -3, 3)

		if pregnancy.HasPreeclampsia && week > 20 {
			if elevated := dist.UniformInt(r, 140, 160); elevated > systolic {
				systolic = elevated
			}
			if elevated := dist.UniformInt(r, 90, 105); elevated > diastolic {
				diastolic = elevated
			}
		}

		weight := preWeight + float64(week)/40*expectedGain + dist.UniformFloat(r, -2, 2)

		var fundalHeight *int
		if week > 12 {
			h := week - dist.UniformInt(r, 0, 3)
			if h < 0 {
				h = 0
			}
			fundalHeight = &h
		}

		var fetalHeartRate *int
		if week > 10 {
			fhr := dist.UniformInt(r, 120, 160)
			fetalHeartRate = &fhr
		}

		riskScore := pregnancy.InitialRiskScore
		if systolic >= 140 || diastolic >= 90 {
			riskScore += 2
		}
		if pregnancy.HasGestationalDiabetes && week > 24 {
			riskScore += 2
		}
		if week < 37 && number == count {
			// Last visit of a pregnancy heading for preterm delivery.
			riskScore += 3
		}

		visits = append(visits, models.PrenatalVisit{
			VisitID:                   visitID(seq.Next()),
			PregnancyID:               pregnancy.PregnancyID,
			VisitNumber:               number,
			VisitDate:                 visitDate,
			GestationalWeek:           week,
			ProviderType:              providerType,
			BPSystolic:                &systolic,
			BPDiastolic:               diastolic,
			WeightKg:                  weight,
			FundalHeightCm:            fundalHeight,
			FetalHeartRate:            fetalHeartRate,
			ProteinInUrine:            systolic >= 140 && dist.Bernoulli(r, 0.3),
			GlucoseScreeningDone:      week >= 24 && week <= 28,
			DownSyndromeScreeningDone: week >= 11 && week <= 14 && dist.Bernoulli(r, dist.T21ScreeningRate),
			UltrasoundDone:            number == 1 || number == 3 || number == 5 || number == 7,
			RiskScoreAtVisit:          riskScore,
			NotesLength:               dist.UniformInt(r, 50, 500),
		})
	}

	return visits
}
