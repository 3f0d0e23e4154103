// Package generator produces the five related entity collections of the
// synthetic maternal health cohort in dependency order: patients,
// pregnancies, prenatal visits, deliveries, and birth outcomes.
//
// Every generator is a pure function of its parent entity, the explicitly
// threaded random source, and the distribution parameter table. Surrogate
// identifiers come from explicit sequence counters, so a fixed seed and
// configuration reproduce the full run.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/kamlesh-analytics/maternal-health-analytics/internal/dist"
	apperrors "github.com/kamlesh-analytics/maternal-health-analytics/pkg/errors"
	"github.com/kamlesh-analytics/maternal-health-analytics/pkg/models"
)

// Window is the calendar span deliveries fall into.
type Window struct {
	Start time.Time
	End   time.Time
}

// Days returns the window length in days.
func (w Window) Days() int {
	return int(w.End.Sub(w.Start).Hours() / 24)
}

// Counter issues sequential surrogate identifiers.
type Counter struct {
	n int
}

// Next returns the next sequence value, starting at 1.
func (c *Counter) Next() int {
	c.n++
	return c.n
}

// Dataset holds the fully generated entity collections.
type Dataset struct {
	Patients    []models.Patient
	Pregnancies []models.Pregnancy
	Visits      []models.PrenatalVisit
	Deliveries  []models.Delivery
	Outcomes    []models.BirthOutcome
}

// Pipeline runs the one-pass generation sequence.
type Pipeline struct {
	cfg    *models.Config
	rng    *rand.Rand
	faker  *gofakeit.Faker
	table  *dist.Table
	window Window

	pregnancySeq Counter
	visitSeq     Counter
	outcomeSeq   Counter
}

// NewPipeline validates the window and seeds the random source and faker.
func NewPipeline(cfg *models.Config) (*Pipeline, error) {
	start, end, err := cfg.Window()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeConfigInvalid, "invalid date range")
	}
	if !start.Before(end) {
		return nil, apperrors.ConfigError("start date must precede end date", "start_date")
	}
	if cfg.Patients <= 0 {
		return nil, apperrors.ConfigError("patient count must be positive", "patients")
	}

	return &Pipeline{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		faker:  gofakeit.New(uint64(cfg.Seed)),
		table:  dist.NewTable(),
		window: Window{Start: start, End: end},
	}, nil
}

// Rand exposes the pipeline's random source so the defect injector can
// continue the same stream, keeping the whole run reproducible from one seed.
func (p *Pipeline) Rand() *rand.Rand {
	return p.rng
}

// Run generates every table in dependency order. Any derivation failure
// aborts the whole run.
func (p *Pipeline) Run() (*Dataset, error) {
	ds := &Dataset{
		Patients: make([]models.Patient, 0, p.cfg.Patients),
	}

	for i := 1; i <= p.cfg.Patients; i++ {
		patient, anchor := GeneratePatient(p.rng, p.faker, p.table, i, p.window)
		ds.Patients = append(ds.Patients, patient)

		parity := p.table.Parity(p.rng)
		pregnancies, err := GeneratePregnancies(p.rng, p.table, patient, anchor, parity, &p.pregnancySeq, p.window)
		if err != nil {
			return nil, err
		}

		for _, pregnancy := range pregnancies {
			ds.Pregnancies = append(ds.Pregnancies, pregnancy)
			ds.Visits = append(ds.Visits, GenerateVisits(p.rng, p.table, pregnancy, &p.visitSeq)...)
			ds.Deliveries = append(ds.Deliveries, GenerateDelivery(p.rng, p.faker, p.table, pregnancy))
			ds.Outcomes = append(ds.Outcomes, GenerateOutcomes(p.rng, p.table, pregnancy, &p.outcomeSeq)...)
		}
	}

	return ds, nil
}

// ageAt returns completed years between birth and a reference date.
func ageAt(birth, reference time.Time) int {
	age := reference.Year() - birth.Year()
	if reference.Month() < birth.Month() ||
		(reference.Month() == birth.Month() && reference.Day() < birth.Day()) {
		age--
	}
	return age
}

func patientID(seq int) string {
	return fmt.Sprintf("PAT_%06d", seq)
}

func pregnancyID(seq int) string {
	return fmt.Sprintf("PREG_%06d", seq)
}

func visitID(seq int) string {
	return fmt.Sprintf("VISIT_%07d", seq)
}

// deliveryID shares the pregnancy sequence so the two stay one-to-one.
func deliveryID(pregnancyID string) string {
	return "DEL_" + pregnancyID[len("PREG_"):]
}

func outcomeID(seq int) string {
	return fmt.Sprintf("OUT_%06d", seq)
}
