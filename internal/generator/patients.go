package generator

import (
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/kamlesh-analytics/maternal-health-analytics/internal/dist"
	"github.com/kamlesh-analytics/maternal-health-analytics/pkg/models"
)

// GeneratePatient produces one root patient row plus the patient's anchor
// date: a uniformly sampled point in the window that the patient's
// pregnancies cluster around. The patient's birth date is derived backwards
// from the anchor so that the derived maternal age at the anchor follows the
// year-adjusted age distribution.
func GeneratePatient(r *rand.Rand, f *gofakeit.Faker, t *dist.Table, seq int, window Window) (models.Patient, time.Time) {
	anchor := window.Start.AddDate(0, 0, r.Intn(window.Days()+1))

	age := t.MaternalAge(r, anchor.Year())
	birthDate := anchor.AddDate(-age, 0, 0).AddDate(0, 0, -r.Intn(364))

	region := t.Region(r)
	education := t.EducationLevel(r)
	supplementary := dist.Bernoulli(r, dist.SupplementaryRate)

	nationality := "French"
	if !dist.Bernoulli(r, dist.FrenchNationalityRate) {
		nationality = f.Country()
	}

	return models.Patient{
		PatientID:                 patientID(seq),
		FirstName:                 f.FirstName(),
		LastName:                  f.LastName(),
		BirthDate:                 birthDate,
		Region:                    region,
		PostalCode:                t.PostalCode(r, region),
		EducationLevel:            &education,
		IsEmployed:                dist.Bernoulli(r, dist.EmploymentRate),
		HasPartner:                dist.Bernoulli(r, dist.PartnerRate),
		ReceivesWelfare:           dist.Bernoulli(r, dist.WelfareRate),
		HasHealthInsurance:        dist.Bernoulli(r, dist.HealthInsuranceRate),
		HasSupplementaryInsurance: &supplementary,
		Nationality:               nationality,
	}, anchor
}
