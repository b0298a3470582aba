package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/jsbundle/cli/internal/version"
)

var versionFull bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		if versionFull {
			fmt.Fprintln(cmd.OutOrStdout(), info.FullString())
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), info.String())
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionFull, "full", false, "Print build details")

	rootCmd.AddCommand(versionCmd)
}
