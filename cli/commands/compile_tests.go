package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/jsbundle/bundler"
	"github.com/satishbabariya/jsbundle/cli/internal/config"
	"github.com/satishbabariya/jsbundle/cli/internal/ui"
)

var compileTestsCmd = &cobra.Command{
	Use:   "compile-tests [output]",
	Short: "Render the browser test harness",
	Long: `Compile the library in memory and render it, together with the test
script, into the harness template. The template must contain the
{library} and {test_script} placeholders.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompileTests,
}

func init() {
	compileTestsCmd.Flags().StringP("output", "o", "", "Harness document (default test.html)")
	compileTestsCmd.Flags().String("test-script", "", "Test script (default test_script.js)")
	compileTestsCmd.Flags().String("template", "", "Harness template (default test_template.html)")

	rootCmd.AddCommand(compileTestsCmd)
}

func runCompileTests(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, map[string]string{
		config.KeyHarnessPath:    "output",
		config.KeyTestScriptPath: "test-script",
		config.KeyTemplatePath:   "template",
	})
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.HarnessPath = args[0]
	}

	bundle, err := buildBundle(cfg)
	if err != nil {
		return err
	}

	templater := bundler.NewTemplater(config.AppFs)
	if err := templater.RenderFile(cfg.TemplatePath, cfg.TestScriptPath, bundle.String(), cfg.HarnessPath); err != nil {
		return err
	}

	absPath, _ := filepath.Abs(cfg.HarnessPath)
	ui.PrintSuccess("Rendered test harness at %s", absPath)
	return nil
}
