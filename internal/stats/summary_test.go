package stats

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamlesh-analytics/maternal-health-analytics/internal/defects"
	"github.com/kamlesh-analytics/maternal-health-analytics/internal/generator"
	"github.com/kamlesh-analytics/maternal-health-analytics/pkg/models"
)

func generateDataset(t *testing.T, patients int) *generator.Dataset {
	t.Helper()
	cfg := models.DefaultConfig()
	cfg.Patients = patients

	pipeline, err := generator.NewPipeline(cfg)
	require.NoError(t, err)
	ds, err := pipeline.Run()
	require.NoError(t, err)
	return ds
}

func TestSummarizeCounts(t *testing.T) {
	ds := generateDataset(t, 200)
	s := Summarize(ds)

	assert.Equal(t, 200, s.PatientCount)
	assert.Equal(t, len(ds.Pregnancies), s.PregnancyCount)
	assert.Equal(t, len(ds.Visits), s.VisitCount)
	assert.Equal(t, s.PregnancyCount, s.DeliveryCount)
	assert.GreaterOrEqual(t, s.OutcomeCount, s.DeliveryCount, "multiple gestations fan out")
}

func TestSummarizeMetricsPlausible(t *testing.T) {
	ds := generateDataset(t, 500)
	s := Summarize(ds)

	assert.Greater(t, s.MedianMaternalAge, 25.0)
	assert.Less(t, s.MedianMaternalAge, 40.0)
	assert.Greater(t, s.CesareanPct, 10.0)
	assert.Less(t, s.CesareanPct, 35.0)
	assert.Greater(t, s.EpiduralPct, 70.0)
	assert.Greater(t, s.MeanBirthWeight, 2000.0)
	assert.Less(t, s.MeanBirthWeight, 4000.0)
}

func TestSummarizeEmptyDataset(t *testing.T) {
	s := Summarize(&generator.Dataset{})
	assert.Zero(t, s.PatientCount)
	assert.Zero(t, s.MedianMaternalAge)
	assert.Zero(t, s.CesareanPct)
}

func TestMedianInt(t *testing.T) {
	assert.Equal(t, 31.0, medianInt([]int{29, 31, 35}))
	assert.Equal(t, 31.5, medianInt([]int{29, 31, 32, 40}))
	assert.Equal(t, 20.0, medianInt([]int{20}))
}

func TestRenderIncludesAllSections(t *testing.T) {
	ds := generateDataset(t, 100)
	report := &defects.Report{
		NullEducation:     50,
		NullBloodPressure: 100,
		DuplicateVisits:   20,
		CorruptVisitDates: 10,
	}

	var buf bytes.Buffer
	Render(&buf, Summarize(ds), report)

	out := buf.String()
	assert.Contains(t, out, "patients")
	assert.Contains(t, out, "Median maternal age")
	assert.Contains(t, out, "Cesarean rate")
	assert.Contains(t, out, "Duplicate visit records")
	assert.Contains(t, out, "50")
}

func TestRenderWithoutReport(t *testing.T) {
	ds := generateDataset(t, 50)

	var buf bytes.Buffer
	Render(&buf, Summarize(ds), nil)
	assert.NotContains(t, buf.String(), "Injected data quality defects")
}
