// Package config loads and validates the generator configuration. Values
// resolve flags over environment variables over the config file over the
// documented defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kamlesh-analytics/maternal-health-analytics/internal/common"
	apperrors "github.com/kamlesh-analytics/maternal-health-analytics/pkg/errors"
	"github.com/kamlesh-analytics/maternal-health-analytics/pkg/models"
)

// Load reads a yaml config file over the defaults. An empty path returns
// the defaults; a missing file at an explicit path is an error.
func Load(path string) (*models.Config, error) {
	cfg := models.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	cleaned, err := common.CleanPath(path)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInvalidPath, "invalid config file path")
	}

	data, err := os.ReadFile(cleaned) // #nosec G304 - path is validated
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.New(apperrors.ErrCodeConfigNotFound, "config file not found").
				WithContext("path", cleaned)
		}
		return nil, apperrors.FileError("failed to read config file", cleaned, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeConfigInvalid, "failed to unmarshal config")
	}
	return cfg, nil
}

// Save writes the config as yaml.
func Save(cfg *models.Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to marshal config")
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return apperrors.FileError("failed to write config file", path, err)
	}
	return nil
}

// Validate rejects a config before any generation begins. Violations are
// fatal configuration errors.
func Validate(cfg *models.Config) error {
	if cfg.Patients <= 0 {
		return apperrors.ConfigError("patient count must be positive", "patients")
	}

	start, end, err := cfg.Window()
	if err != nil {
		return apperrors.ConfigError(fmt.Sprintf("invalid date: %v", err), "start_date/end_date")
	}
	if !start.Before(end) {
		return apperrors.ConfigError("start date must precede end date", "start_date")
	}

	if cfg.OutputDir == "" {
		return apperrors.ConfigError("output directory must be set", "output_dir")
	}

	defects := map[string]int{
		"defects.null_education":      cfg.Defects.NullEducation,
		"defects.null_insurance":      cfg.Defects.NullInsurance,
		"defects.null_blood_pressure": cfg.Defects.NullBloodPressure,
		"defects.duplicate_visits":    cfg.Defects.DuplicateVisits,
		"defects.corrupt_visit_dates": cfg.Defects.CorruptVisitDates,
	}
	for field, count := range defects {
		if count < 0 {
			return apperrors.ConfigError("defect count must not be negative", field)
		}
	}

	return nil
}
