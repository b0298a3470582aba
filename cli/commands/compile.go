package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/jsbundle/cli/internal/config"
	"github.com/satishbabariya/jsbundle/cli/internal/ui"
	"github.com/satishbabariya/jsbundle/cli/internal/watch"
)

var compileCmd = &cobra.Command{
	Use:   "compile [output]",
	Short: "Compile the source tree into a single library file",
	Long: `Compile every script below the source directory into one file.

The output starts with a header comment naming the product, the version read
from the version file and the compile time. Scripts that extend a library
type follow all scripts that do not. The file is only written once every
source has been read.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

var compileWatch bool

func init() {
	compileCmd.Flags().StringP("output", "o", "", "Output file (default procuret.js)")
	compileCmd.Flags().BoolVarP(&compileWatch, "watch", "w", false, "Recompile when sources change")

	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, map[string]string{config.KeyOutputPath: "output"})
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.OutputPath = args[0]
	}

	if compileWatch {
		return runCompileWatch(cfg)
	}

	spinner, _ := ui.PrintSpinner("Compiling library...")
	count, err := compileOnce(cfg)
	if spinner != nil {
		_ = spinner.Stop()
	}
	if err != nil {
		return err
	}

	absPath, _ := filepath.Abs(cfg.OutputPath)
	ui.PrintSuccess("Compiled %d files into %s", count, absPath)
	return nil
}

func compileOnce(cfg *config.Config) (int, error) {
	bundle, err := buildBundle(cfg)
	if err != nil {
		return 0, err
	}
	if err := newBundler(cfg).Save(bundle, cfg.OutputPath); err != nil {
		return 0, err
	}
	return len(bundle.Paths()), nil
}

func runCompileWatch(cfg *config.Config) error {
	ui.PrintHeader("jsbundle", "Watch Mode")

	rebuild := func() error {
		count, err := compileOnce(cfg)
		if err != nil {
			return err
		}
		ui.PrintSuccess("Compiled %d files into %s", count, cfg.OutputPath)
		return nil
	}

	watcher, err := watch.NewWatcher(cfg.SourcePath, cfg.Pattern, rebuild,
		watch.WithErrorHandler(func(err error) { ui.PrintError("%v", err) }),
		watch.WithIgnore(cfg.OutputPath, cfg.HarnessPath))
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Stop()

	if err := watcher.Start(); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	ui.PrintInfo("Watching %s for changes... (Press Ctrl+C to stop)", cfg.SourcePath)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	ui.PrintInfo("Stopping watch mode...")
	return nil
}
