package defects

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamlesh-analytics/maternal-health-analytics/internal/generator"
	"github.com/kamlesh-analytics/maternal-health-analytics/pkg/models"
)

func generateDataset(t *testing.T, patients int, seed int64) *generator.Dataset {
	t.Helper()
	cfg := models.DefaultConfig()
	cfg.Patients = patients
	cfg.Seed = seed

	pipeline, err := generator.NewPipeline(cfg)
	require.NoError(t, err)
	ds, err := pipeline.Run()
	require.NoError(t, err)
	return ds
}

func defectConfig() models.DefectConfig {
	return models.DefectConfig{
		NullEducation:     10,
		NullInsurance:     5,
		NullBloodPressure: 20,
		DuplicateVisits:   8,
		CorruptVisitDates: 4,
	}
}

func TestApplyReportsExactCounts(t *testing.T) {
	ds := generateDataset(t, 200, 42)
	visitsBefore := len(ds.Visits)

	report, err := Apply(rand.New(rand.NewSource(1)), ds, defectConfig())
	require.NoError(t, err)

	assert.Equal(t, 10, report.NullEducation)
	assert.Equal(t, 5, report.NullInsurance)
	assert.Equal(t, 20, report.NullBloodPressure)
	assert.Equal(t, 8, report.DuplicateVisits)
	assert.Equal(t, 4, report.CorruptVisitDates)

	var nullEducation, nullInsurance int
	for _, p := range ds.Patients {
		if p.EducationLevel == nil {
			nullEducation++
		}
		if p.HasSupplementaryInsurance == nil {
			nullInsurance++
		}
	}
	assert.Equal(t, 10, nullEducation)
	assert.Equal(t, 5, nullInsurance)

	var nullBP int
	for _, v := range ds.Visits {
		if v.BPSystolic == nil {
			nullBP++
		}
	}
	assert.Equal(t, 20, nullBP)

	assert.Len(t, ds.Visits, visitsBefore+8, "duplicates are appended, not replacing")
}

func TestApplyDuplicatesKeepVisitID(t *testing.T) {
	ds := generateDataset(t, 100, 7)
	visitsBefore := len(ds.Visits)

	cfg := models.DefectConfig{DuplicateVisits: 5}
	_, err := Apply(rand.New(rand.NewSource(2)), ds, cfg)
	require.NoError(t, err)

	ids := map[string]int{}
	for _, v := range ds.Visits {
		ids[v.VisitID]++
	}

	var duplicated int
	for _, n := range ids {
		if n > 1 {
			duplicated += n - 1
		}
	}
	assert.Equal(t, 5, duplicated, "each duplicate shares its source visit_id")
	assert.Len(t, ds.Visits, visitsBefore+5)
}

func TestApplyCorruptedDatesLandAfterDelivery(t *testing.T) {
	ds := generateDataset(t, 100, 9)

	deliveries := map[string]models.Delivery{}
	for _, d := range ds.Deliveries {
		deliveries[d.PregnancyID] = d
	}

	cfg := models.DefectConfig{CorruptVisitDates: 6}
	report, err := Apply(rand.New(rand.NewSource(3)), ds, cfg)
	require.NoError(t, err)
	require.Equal(t, 6, report.CorruptVisitDates)

	var corrupted int
	for _, v := range ds.Visits {
		if v.VisitDate.After(deliveries[v.PregnancyID].DeliveryDate) {
			corrupted++
		}
	}
	assert.Equal(t, 6, corrupted)
}

func TestApplySkipsAlreadyNullRows(t *testing.T) {
	ds := generateDataset(t, 60, 21)

	// Pre-null every patient but five; only those five stay eligible.
	for i := range ds.Patients {
		if i >= 5 {
			ds.Patients[i].EducationLevel = nil
		}
	}

	cfg := models.DefectConfig{NullEducation: 5}
	report, err := Apply(rand.New(rand.NewSource(4)), ds, cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, report.NullEducation)

	for _, p := range ds.Patients {
		assert.Nil(t, p.EducationLevel)
	}

	// Asking for more than the eligible rows is an error.
	ds2 := generateDataset(t, 60, 21)
	for i := range ds2.Patients {
		ds2.Patients[i].EducationLevel = nil
	}
	_, err = Apply(rand.New(rand.NewSource(5)), ds2, cfg)
	assert.Error(t, err)
}

func TestApplyReproducible(t *testing.T) {
	first := generateDataset(t, 150, 33)
	second := generateDataset(t, 150, 33)

	_, err := Apply(rand.New(rand.NewSource(6)), first, defectConfig())
	require.NoError(t, err)
	_, err = Apply(rand.New(rand.NewSource(6)), second, defectConfig())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestApplyRejectsNegativeCounts(t *testing.T) {
	ds := generateDataset(t, 50, 1)

	cfg := models.DefectConfig{NullEducation: -1}
	_, err := Apply(rand.New(rand.NewSource(7)), ds, cfg)
	assert.Error(t, err)
}
