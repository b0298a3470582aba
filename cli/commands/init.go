package commands

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/jsbundle/cli/internal/config"
	"github.com/satishbabariya/jsbundle/cli/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a .jsbundle.yaml config file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

var (
	initYes   bool
	initForce bool
)

func init() {
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Accept defaults without prompting")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := config.FileName + ".yaml"
	if len(args) > 0 {
		path = args[0]
	}

	exists, err := afero.Exists(config.AppFs, path)
	if err != nil {
		return err
	}
	if exists && !initForce {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}

	cfg := config.Default()
	if !initYes {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := config.SaveConfig(cfg, path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	ui.PrintSuccess("Created %s", path)
	ui.PrintSection("Next Steps")
	ui.PrintList([]string{
		"jsbundle compile        - write the library bundle",
		"jsbundle compile-tests  - render the browser test harness",
		"jsbundle serve          - serve the harness on :3000",
	})
	return nil
}

func promptConfig(cfg *config.Config) error {
	questions := []*survey.Question{
		{
			Name:     "SourcePath",
			Prompt:   &survey.Input{Message: "Source directory:", Default: cfg.SourcePath},
			Validate: survey.Required,
		},
		{
			Name:     "VersionPath",
			Prompt:   &survey.Input{Message: "Version file:", Default: cfg.VersionPath},
			Validate: survey.Required,
		},
		{
			Name:     "OutputPath",
			Prompt:   &survey.Input{Message: "Bundle output:", Default: cfg.OutputPath},
			Validate: survey.Required,
		},
		{
			Name:   "Product",
			Prompt: &survey.Input{Message: "Product name:", Default: cfg.Product},
		},
	}

	answers := struct {
		SourcePath  string
		VersionPath string
		OutputPath  string
		Product     string
	}{}
	if err := survey.Ask(questions, &answers); err != nil {
		return err
	}

	cfg.SourcePath = answers.SourcePath
	cfg.VersionPath = answers.VersionPath
	cfg.OutputPath = answers.OutputPath
	if answers.Product != "" {
		cfg.Product = answers.Product
	}
	return nil
}
