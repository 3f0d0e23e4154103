package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kamlesh-analytics/maternal-health-analytics/pkg/models"
)

var rootCmd = &cobra.Command{
	Use:   "mhgen",
	Short: "Generate a synthetic maternal health cohort",
	Long: "mhgen - A CLI tool that generates an internally consistent synthetic maternal\n" +
		"health dataset (patients, pregnancies, prenatal visits, deliveries, birth\n" +
		"outcomes) matching ENP 2021 survey distributions, with deliberately injected\n" +
		"data quality defects for downstream testing.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(home + "/.mhgen")
	}

	// Registering every key makes MHGEN_* environment values visible to
	// viper.Unmarshal even when no config file was found.
	defaults := models.DefaultConfig()
	viper.SetDefault("patients", defaults.Patients)
	viper.SetDefault("start_date", defaults.StartDate)
	viper.SetDefault("end_date", defaults.EndDate)
	viper.SetDefault("seed", defaults.Seed)
	viper.SetDefault("output_dir", defaults.OutputDir)
	viper.SetDefault("defects.null_education", defaults.Defects.NullEducation)
	viper.SetDefault("defects.null_insurance", defaults.Defects.NullInsurance)
	viper.SetDefault("defects.null_blood_pressure", defaults.Defects.NullBloodPressure)
	viper.SetDefault("defects.duplicate_visits", defaults.Defects.DuplicateVisits)
	viper.SetDefault("defects.corrupt_visit_dates", defaults.Defects.CorruptVisitDates)

	viper.SetEnvPrefix("MHGEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found is okay; defaults and flags apply
	}
}
