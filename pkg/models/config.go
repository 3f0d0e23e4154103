package models

import "time"

// Config is the full configuration surface of the generator.
type Config struct {
	Patients  int          `yaml:"patients" mapstructure:"patients"`
	StartDate string       `yaml:"start_date" mapstructure:"start_date"`
	EndDate   string       `yaml:"end_date" mapstructure:"end_date"`
	Seed      int64        `yaml:"seed" mapstructure:"seed"`
	OutputDir string       `yaml:"output_dir" mapstructure:"output_dir"`
	Defects   DefectConfig `yaml:"defects" mapstructure:"defects"`
}

// DefectConfig sets how many rows each defect type corrupts after generation.
type DefectConfig struct {
	NullEducation     int `yaml:"null_education" mapstructure:"null_education"`
	NullInsurance     int `yaml:"null_insurance" mapstructure:"null_insurance"`
	NullBloodPressure int `yaml:"null_blood_pressure" mapstructure:"null_blood_pressure"`
	DuplicateVisits   int `yaml:"duplicate_visits" mapstructure:"duplicate_visits"`
	CorruptVisitDates int `yaml:"corrupt_visit_dates" mapstructure:"corrupt_visit_dates"`
}

// DefaultConfig returns the documented baseline: 10,000 patients over
// 2020-2024 with the standard defect counts.
func DefaultConfig() *Config {
	return &Config{
		Patients:  10000,
		StartDate: "2020-01-01",
		EndDate:   "2024-12-31",
		Seed:      42,
		OutputDir: "data/raw",
		Defects: DefectConfig{
			NullEducation:     50,
			NullInsurance:     25,
			NullBloodPressure: 100,
			DuplicateVisits:   20,
			CorruptVisitDates: 10,
		},
	}
}

// Window parses the configured date range.
func (c *Config) Window() (start, end time.Time, err error) {
	start, err = time.Parse(DateLayout, c.StartDate)
	if err != nil {
		return start, end, err
	}
	end, err = time.Parse(DateLayout, c.EndDate)
	return start, end, err
}
