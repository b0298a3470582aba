package commands

import (
	"github.com/spf13/cobra"

	"github.com/satishbabariya/jsbundle/cli/internal/version"
	"github.com/satishbabariya/jsbundle/internal/debug"
)

var (
	configFile string
	debugMode  bool
)

var rootCmd = &cobra.Command{
	Use:   "jsbundle",
	Short: "Compile a JavaScript source tree into a single library file",
	Long: `jsbundle concatenates every script below a source directory into one
library file headed by a version and timestamp comment.

Files that extend a library type are emitted after files that do not. The
same bundle can be rendered into an HTML test harness.`,
	Version:       version.Get().Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.Init(debugMode)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (default ./.jsbundle.yaml)")
	flags.BoolVar(&debugMode, "debug", false, "Enable debug logging")
	flags.StringP("source", "s", "", "Source directory (default ../source)")
	flags.String("pattern", "", "Source file pattern relative to the source directory (default **/*.js)")
	flags.String("version-file", "", "Version file (default ../VERSION)")
	flags.String("marker", "", "Text marking a file as dependent (default \" extends PR_\")")
	flags.String("product", "", "Product name written into the header")
}

// Execute is the main entry point for the CLI
func Execute() error {
	return rootCmd.Execute()
}
