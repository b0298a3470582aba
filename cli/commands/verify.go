package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/jsbundle/bundler"
	"github.com/satishbabariya/jsbundle/cli/internal/config"
	"github.com/satishbabariya/jsbundle/cli/internal/ui"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [bundle]",
	Short: "Check that a compiled library is up to date",
	Long: `Recompile the library in memory and compare it with an existing bundle.
The compile timestamp in the header is ignored; the product name, version and
every byte of the body must match.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

var verifyQuiet bool

func init() {
	verifyCmd.Flags().StringP("output", "o", "", "Bundle to check (default procuret.js)")
	verifyCmd.Flags().BoolVarP(&verifyQuiet, "quiet", "q", false, "Do not print a diff")

	rootCmd.AddCommand(verifyCmd)
}

// ErrStale is returned by verify when the bundle on disk is out of date.
var ErrStale = errors.New("bundle is out of date")

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, map[string]string{config.KeyOutputPath: "output"})
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.OutputPath = args[0]
	}

	existing, err := afero.ReadFile(config.AppFs, cfg.OutputPath)
	if err != nil {
		return &bundler.MissingInputError{Kind: "bundle", Path: cfg.OutputPath, Err: err}
	}

	fresh, err := buildBundle(cfg)
	if err != nil {
		return err
	}

	header, body := bundler.SplitHeader(string(existing))
	wantPrefix := fmt.Sprintf("/*%s %s compiled ", fresh.Product(), fresh.Version())

	headerOK := strings.HasPrefix(header, wantPrefix)
	bodyOK := body == fresh.Body()
	if headerOK && bodyOK {
		ui.PrintSuccess("%s is up to date (%d files)", cfg.OutputPath, len(fresh.Paths()))
		return nil
	}

	if !headerOK {
		ui.PrintWarning("Header mismatch: have %q, want prefix %q", header, wantPrefix)
	}
	if !bodyOK && !verifyQuiet {
		ui.PrintSection("Diff")
		ui.PrintDiff(body, fresh.Body())
	}
	return fmt.Errorf("%s: %w", cfg.OutputPath, ErrStale)
}
