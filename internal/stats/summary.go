// Package stats computes the aggregate metrics used to sanity-check a run
// against the published survey targets, and renders the console report.
package stats

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/kamlesh-analytics/maternal-health-analytics/internal/defects"
	"github.com/kamlesh-analytics/maternal-health-analytics/internal/generator"
)

// Summary holds per-table row counts and the key aggregate statistics.
type Summary struct {
	PatientCount   int
	PregnancyCount int
	VisitCount     int
	DeliveryCount  int
	OutcomeCount   int

	MedianMaternalAge float64
	Mothers35PlusPct  float64
	ObesityPct        float64
	CesareanPct       float64
	PretermPct        float64
	EpiduralPct       float64
	MeanBirthWeight   float64
}

// Summarize computes the summary over a generated dataset.
func Summarize(ds *generator.Dataset) Summary {
	s := Summary{
		PatientCount:   len(ds.Patients),
		PregnancyCount: len(ds.Pregnancies),
		VisitCount:     len(ds.Visits),
		DeliveryCount:  len(ds.Deliveries),
		OutcomeCount:   len(ds.Outcomes),
	}

	if len(ds.Pregnancies) > 0 {
		ages := make([]int, 0, len(ds.Pregnancies))
		var over35, obese, preterm int
		for _, p := range ds.Pregnancies {
			ages = append(ages, p.MaternalAgeAtDelivery)
			if p.MaternalAgeAtDelivery >= 35 {
				over35++
			}
			if p.PrePregnancyBMI >= 30 {
				obese++
			}
			if p.Preterm() {
				preterm++
			}
		}
		s.MedianMaternalAge = medianInt(ages)
		s.Mothers35PlusPct = pct(over35, len(ds.Pregnancies))
		s.ObesityPct = pct(obese, len(ds.Pregnancies))
		s.PretermPct = pct(preterm, len(ds.Pregnancies))
	}

	if len(ds.Deliveries) > 0 {
		var cesarean, epidural int
		for _, d := range ds.Deliveries {
			if d.DeliveryMode == generator.ModeCesarean {
				cesarean++
			}
			if d.Epidural {
				epidural++
			}
		}
		s.CesareanPct = pct(cesarean, len(ds.Deliveries))
		s.EpiduralPct = pct(epidural, len(ds.Deliveries))
	}

	if len(ds.Outcomes) > 0 {
		var total int
		for _, o := range ds.Outcomes {
			total += o.BirthWeightGrams
		}
		s.MeanBirthWeight = float64(total) / float64(len(ds.Outcomes))
	}

	return s
}

// Render prints the row counts, key metrics, and defect report as tables.
func Render(w io.Writer, s Summary, report *defects.Report) {
	bold := color.New(color.Bold)

	bold.Fprintln(w, "\nDataset overview")
	counts := tablewriter.NewWriter(w)
	counts.SetHeader([]string{"Table", "Rows"})
	counts.SetAlignment(tablewriter.ALIGN_LEFT)
	counts.Append([]string{"patients", formatCount(s.PatientCount)})
	counts.Append([]string{"pregnancies", formatCount(s.PregnancyCount)})
	counts.Append([]string{"prenatal_visits", formatCount(s.VisitCount)})
	counts.Append([]string{"deliveries", formatCount(s.DeliveryCount)})
	counts.Append([]string{"birth_outcomes", formatCount(s.OutcomeCount)})
	counts.Render()

	bold.Fprintln(w, "\nKey metrics (ENP 2021 targets)")
	metrics := tablewriter.NewWriter(w)
	metrics.SetHeader([]string{"Metric", "Value", "Target"})
	metrics.SetAlignment(tablewriter.ALIGN_LEFT)
	metrics.Append([]string{"Median maternal age", fmt.Sprintf("%.1f years", s.MedianMaternalAge), "~31.2"})
	metrics.Append([]string{"Mothers 35+", fmt.Sprintf("%.1f%%", s.Mothers35PlusPct), "~24.6%"})
	metrics.Append([]string{"Obesity (BMI >= 30)", fmt.Sprintf("%.1f%%", s.ObesityPct), "~14.4%"})
	metrics.Append([]string{"Cesarean rate", fmt.Sprintf("%.1f%%", s.CesareanPct), "~21.5%"})
	metrics.Append([]string{"Preterm births (<37w)", fmt.Sprintf("%.1f%%", s.PretermPct), ""})
	metrics.Append([]string{"Epidural rate", fmt.Sprintf("%.1f%%", s.EpiduralPct), "~82.7%"})
	metrics.Append([]string{"Mean birth weight", fmt.Sprintf("%.0fg", s.MeanBirthWeight), "~3264g at term"})
	metrics.Render()

	if report != nil {
		bold.Fprintln(w, "\nInjected data quality defects")
		dq := tablewriter.NewWriter(w)
		dq.SetHeader([]string{"Defect", "Rows"})
		dq.SetAlignment(tablewriter.ALIGN_LEFT)
		dq.Append([]string{"NULL education levels", strconv.Itoa(report.NullEducation)})
		dq.Append([]string{"NULL supplementary insurance", strconv.Itoa(report.NullInsurance)})
		dq.Append([]string{"NULL BP measurements", strconv.Itoa(report.NullBloodPressure)})
		dq.Append([]string{"Duplicate visit records", strconv.Itoa(report.DuplicateVisits)})
		dq.Append([]string{"Invalid date sequences", strconv.Itoa(report.CorruptVisitDates)})
		dq.Render()
	}
}

func medianInt(values []int) float64 {
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}

func pct(part, total int) float64 {
	return float64(part) / float64(total) * 100
}

func formatCount(n int) string {
	return strconv.Itoa(n)
}
