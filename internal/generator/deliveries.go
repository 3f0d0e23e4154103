package generator

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/kamlesh-analytics/maternal-health-analytics/internal/dist"
	"github.com/kamlesh-analytics/maternal-health-analytics/pkg/models"
)

// Delivery modes.
const (
	ModeCesarean     = "Cesarean"
	ModeInstrumental = "Instrumental vaginal"
	ModeSpontaneous  = "Spontaneous vaginal"
)

// GenerateDelivery produces the single delivery row for a pregnancy.
// Delivery mode probabilities are the survey marginals; induction drifts
// with the delivery year.
func GenerateDelivery(r *rand.Rand, f *gofakeit.Faker, t *dist.Table, pregnancy models.Pregnancy) models.Delivery {
	year := pregnancy.DeliveryDate.Year()

	facilityType := t.FacilityType(r)
	facilityName := fmt.Sprintf("%s %s Maternity", f.City(), facilityType)

	laborInduced := dist.Bernoulli(r, t.InductionRate(year))
	spontaneousLabor := !laborInduced

	mode, method := deliveryMode(r)

	epidural := dist.Bernoulli(r, dist.EpiduralRate)

	episiotomy := false
	if mode == ModeSpontaneous {
		rate := dist.EpisiotomyMultiRate
		if pregnancy.PregnancyNumber == 1 {
			rate = dist.EpisiotomyPrimiRate
		}
		episiotomy = dist.Bernoulli(r, rate)
	}

	perinealTear := !episiotomy && mode == ModeSpontaneous && dist.Bernoulli(r, dist.PerinealTearRate)
	var tearDegree *int
	if perinealTear {
		degree := dist.UniformInt(r, 1, 4)
		tearDegree = &degree
	}

	bloodLoss := dist.UniformInt(r, 200, 500)
	if mode == ModeCesarean {
		bloodLoss = dist.UniformInt(r, 400, 800)
	}
	if dist.Bernoulli(r, dist.HemorrhageRate) {
		bloodLoss = dist.UniformInt(r, 1000, 2000)
	}

	var duration int
	switch {
	case mode == ModeCesarean && laborInduced:
		duration = dist.UniformInt(r, 30, 180)
	case mode == ModeCesarean:
		duration = 0
	case pregnancy.PregnancyNumber == 1:
		duration = dist.UniformInt(r, 240, 960)
	default:
		duration = dist.UniformInt(r, 120, 480)
	}

	var complications []string
	if bloodLoss > 1000 {
		complications = append(complications, "Postpartum hemorrhage")
	}
	if dist.Bernoulli(r, 0.02) {
		complications = append(complications, "Infection")
	}
	if mode == ModeCesarean && dist.Bernoulli(r, 0.03) {
		complications = append(complications, "Surgical complications")
	}
	var complicationsText *string
	if len(complications) > 0 {
		joined := strings.Join(complications, ", ")
		complicationsText = &joined
	}

	var midwife *string
	if dist.Bernoulli(r, dist.MidwifePresentRate) {
		name := f.Name()
		midwife = &name
	}

	return models.Delivery{
		DeliveryID:                 deliveryID(pregnancy.PregnancyID),
		PregnancyID:                pregnancy.PregnancyID,
		DeliveryDate:               pregnancy.DeliveryDate,
		DeliveryTime:               fmt.Sprintf("%02d:%02d", dist.UniformInt(r, 0, 23), dist.UniformInt(r, 0, 59)),
		FacilityType:               facilityType,
		FacilityName:               facilityName,
		LaborInduced:               laborInduced,
		SpontaneousLabor:           spontaneousLabor,
		ArtificialRuptureMembranes: spontaneousLabor && dist.Bernoulli(r, dist.ARMRate),
		OxytocinAugmentation:       spontaneousLabor && dist.Bernoulli(r, dist.OxytocinRate),
		Epidural:                   epidural,
		PainLevel:                  t.PainLevel(r, epidural),
		DeliveryMode:               mode,
		DeliveryMethod:             method,
		Episiotomy:                 episiotomy,
		PerinealTear:               perinealTear,
		PerinealTearDegree:         tearDegree,
		LaborDurationMinutes:       duration,
		BloodLossMl:                bloodLoss,
		MaternalComplications:      complicationsText,
		AttendingObstetrician:      f.Name(),
		AttendingMidwife:           midwife,
	}
}

func deliveryMode(r *rand.Rand) (mode, method string) {
	u := r.Float64()
	switch {
	case u < dist.CesareanRate:
		if r.Float64() < 0.5 {
			return ModeCesarean, "Emergency cesarean"
		}
		return ModeCesarean, "Planned cesarean"
	case u < dist.CesareanRate+dist.InstrumentalRate:
		if r.Float64() < 0.5 {
			return ModeInstrumental, "Forceps"
		}
		return ModeInstrumental, "Vacuum extraction"
	default:
		return ModeSpontaneous, "Spontaneous"
	}
}
