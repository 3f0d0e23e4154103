package cmd

import (
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/kamlesh-analytics/maternal-health-analytics/internal/config"
	"github.com/kamlesh-analytics/maternal-health-analytics/internal/ui"
	"github.com/kamlesh-analytics/maternal-health-analytics/pkg/models"
)

// initCmd walks through an interactive setup and writes config.yaml.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Interactively create a generator config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ui.ShowHeader("Generator Setup")

		cfg := models.DefaultConfig()

		questions := []*survey.Question{
			{
				Name:     "patients",
				Prompt:   &survey.Input{Message: "Target patient count:", Default: strconv.Itoa(cfg.Patients)},
				Validate: positiveInt,
			},
			{
				Name:   "startDate",
				Prompt: &survey.Input{Message: "Start date (YYYY-MM-DD):", Default: cfg.StartDate},
			},
			{
				Name:   "endDate",
				Prompt: &survey.Input{Message: "End date (YYYY-MM-DD):", Default: cfg.EndDate},
			},
			{
				Name:   "seed",
				Prompt: &survey.Input{Message: "Random seed:", Default: strconv.FormatInt(cfg.Seed, 10)},
			},
			{
				Name:   "outputDir",
				Prompt: &survey.Input{Message: "Output directory:", Default: cfg.OutputDir},
			},
		}

		answers := struct {
			Patients  int
			StartDate string
			EndDate   string
			Seed      int64
			OutputDir string
		}{}

		if err := survey.Ask(questions, &answers); err != nil {
			if err == terminal.InterruptErr {
				return fmt.Errorf("setup cancelled")
			}
			return err
		}

		cfg.Patients = answers.Patients
		cfg.StartDate = answers.StartDate
		cfg.EndDate = answers.EndDate
		cfg.Seed = answers.Seed
		cfg.OutputDir = answers.OutputDir

		if err := config.Validate(cfg); err != nil {
			return err
		}

		path, _ := cmd.Flags().GetString("file")
		if err := config.Save(cfg, path); err != nil {
			return err
		}

		ui.ShowSuccess(fmt.Sprintf("Config written to %s", path))
		return nil
	},
}

func positiveInt(val interface{}) error {
	s, ok := val.(string)
	if !ok {
		return fmt.Errorf("expected a number")
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().String("file", "config.yaml", "Where to write the config file")
}
