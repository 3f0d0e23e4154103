// Package defects corrupts a bounded, reproducibly selected subset of the
// generated rows so downstream data-quality tests have something to catch.
// It is the one sanctioned source of invalid output.
package defects

import (
	"math/rand"

	"github.com/kamlesh-analytics/maternal-health-analytics/internal/generator"
	apperrors "github.com/kamlesh-analytics/maternal-health-analytics/pkg/errors"
	"github.com/kamlesh-analytics/maternal-health-analytics/pkg/models"
)

// Days added to a corrupted visit date. Large enough to always land after
// the corresponding delivery date (max gestation is 43 weeks).
const corruptDateOffsetDays = 400

// Report holds the exact count of rows each defect type touched.
type Report struct {
	NullEducation     int
	NullInsurance     int
	NullBloodPressure int
	DuplicateVisits   int
	CorruptVisitDates int
}

// Apply mutates the dataset in place: field nullification, full-row visit
// duplication (appended, keeping the original visit_id so deduplication has
// real duplicates to find), and visit-date corruption. Selection is uniform
// over eligible rows; rows already null in the target field are ineligible.
func Apply(r *rand.Rand, ds *generator.Dataset, cfg models.DefectConfig) (*Report, error) {
	report := &Report{}

	// Null education levels on patients.
	eligible := make([]int, 0, len(ds.Patients))
	for i := range ds.Patients {
		if ds.Patients[i].EducationLevel != nil {
			eligible = append(eligible, i)
		}
	}
	picked, err := pick(r, eligible, cfg.NullEducation, "null_education")
	if err != nil {
		return nil, err
	}
	for _, i := range picked {
		ds.Patients[i].EducationLevel = nil
		report.NullEducation++
	}

	// Null supplementary insurance flags on patients.
	eligible = eligible[:0]
	for i := range ds.Patients {
		if ds.Patients[i].HasSupplementaryInsurance != nil {
			eligible = append(eligible, i)
		}
	}
	picked, err = pick(r, eligible, cfg.NullInsurance, "null_insurance")
	if err != nil {
		return nil, err
	}
	for _, i := range picked {
		ds.Patients[i].HasSupplementaryInsurance = nil
		report.NullInsurance++
	}

	// Null systolic blood pressure on visits.
	eligible = eligible[:0]
	for i := range ds.Visits {
		if ds.Visits[i].BPSystolic != nil {
			eligible = append(eligible, i)
		}
	}
	picked, err = pick(r, eligible, cfg.NullBloodPressure, "null_blood_pressure")
	if err != nil {
		return nil, err
	}
	for _, i := range picked {
		ds.Visits[i].BPSystolic = nil
		report.NullBloodPressure++
	}

	// Append verbatim duplicate visit rows.
	eligible = eligible[:0]
	for i := range ds.Visits {
		eligible = append(eligible, i)
	}
	picked, err = pick(r, eligible, cfg.DuplicateVisits, "duplicate_visits")
	if err != nil {
		return nil, err
	}
	for _, i := range picked {
		ds.Visits = append(ds.Visits, ds.Visits[i])
		report.DuplicateVisits++
	}

	// Push visit dates past the delivery date. Duplicated rows are eligible.
	eligible = eligible[:0]
	for i := range ds.Visits {
		eligible = append(eligible, i)
	}
	picked, err = pick(r, eligible, cfg.CorruptVisitDates, "corrupt_visit_dates")
	if err != nil {
		return nil, err
	}
	for _, i := range picked {
		ds.Visits[i].VisitDate = ds.Visits[i].VisitDate.AddDate(0, 0, corruptDateOffsetDays)
		report.CorruptVisitDates++
	}

	return report, nil
}

// pick draws n distinct indices uniformly from eligible.
func pick(r *rand.Rand, eligible []int, n int, defect string) ([]int, error) {
	if n < 0 {
		return nil, apperrors.New(apperrors.ErrCodeDefectInjection, "negative defect count").
			WithContext("defect", defect)
	}
	if n > len(eligible) {
		return nil, apperrors.New(apperrors.ErrCodeDefectInjection, "not enough eligible rows for defect").
			WithContext("defect", defect).
			WithContext("requested", n).
			WithContext("eligible", len(eligible))
	}

	picked := make([]int, n)
	for i, j := range r.Perm(len(eligible))[:n] {
		picked[i] = eligible[j]
	}
	return picked, nil
}
