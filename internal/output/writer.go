// Package output serializes the generated entity collections to delimited
// flat files with stable column ordering. Nulls are written as empty cells.
package output

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/kamlesh-analytics/maternal-health-analytics/internal/common"
	"github.com/kamlesh-analytics/maternal-health-analytics/internal/generator"
	apperrors "github.com/kamlesh-analytics/maternal-health-analytics/pkg/errors"
	"github.com/kamlesh-analytics/maternal-health-analytics/pkg/models"
)

// File names of the five entity collections.
const (
	PatientsFile      = "patients.csv"
	PregnanciesFile   = "pregnancies.csv"
	VisitsFile        = "prenatal_visits.csv"
	DeliveriesFile    = "deliveries.csv"
	BirthOutcomesFile = "birth_outcomes.csv"
)

// Writer writes CSV files into one output directory.
type Writer struct {
	dir string
}

// NewWriter validates and creates the output directory.
func NewWriter(dir string) (*Writer, error) {
	cleaned, err := common.CleanPath(dir)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInvalidPath, "invalid output directory")
	}
	if err := os.MkdirAll(cleaned, 0750); err != nil {
		return nil, apperrors.FileError("failed to create output directory", cleaned, err)
	}
	return &Writer{dir: cleaned}, nil
}

// Dir returns the resolved output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// WriteDataset writes all five tables.
func (w *Writer) WriteDataset(ds *generator.Dataset) error {
	if err := w.writeTable(PatientsFile, models.PatientColumns, records(ds.Patients)); err != nil {
		return err
	}
	if err := w.writeTable(PregnanciesFile, models.PregnancyColumns, records(ds.Pregnancies)); err != nil {
		return err
	}
	if err := w.writeTable(VisitsFile, models.PrenatalVisitColumns, records(ds.Visits)); err != nil {
		return err
	}
	if err := w.writeTable(DeliveriesFile, models.DeliveryColumns, records(ds.Deliveries)); err != nil {
		return err
	}
	return w.writeTable(BirthOutcomesFile, models.BirthOutcomeColumns, records(ds.Outcomes))
}

func (w *Writer) writeTable(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.dir, name)

	f, err := os.Create(path) // #nosec G304 - path is validated
	if err != nil {
		return apperrors.FileError("failed to create output file", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return apperrors.FileError("failed to write header", path, err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return apperrors.FileError("failed to write rows", path, err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return apperrors.FileError("failed to flush output file", path, err)
	}
	return f.Close()
}

func records[T interface{ Record() []string }](rows []T) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = row.Record()
	}
	return out
}
