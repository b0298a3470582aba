package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/jsbundle/bundler"
	"github.com/satishbabariya/jsbundle/cli/internal/ui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show how sources are classified and ordered",
	Args:  cobra.NoArgs,
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	classification, err := newCollector(cfg).Collect(cfg.SourcePath, cfg.Pattern)
	if err != nil {
		return err
	}

	ui.PrintSection("Emission order")
	rows := make([][]string, 0, classification.Len())
	for i, file := range classification.Ordered() {
		kind := bundler.Independent
		if file.Dependent {
			kind = bundler.Dependent
		}
		rows = append(rows, []string{fmt.Sprint(i + 1), kind.String(), file.Path, fmt.Sprint(len(file.Content))})
	}
	if err := ui.PrintTable([]string{"#", "Kind", "Path", "Bytes"}, rows); err != nil {
		return err
	}

	return ui.PrintMarkdown(inspectSummary(cfg.SourcePath, cfg.Marker, classification))
}

func inspectSummary(root, marker string, c *bundler.Classification) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## %s\n\n", root)
	fmt.Fprintf(&sb, "- **%d** independent files\n", len(c.Independents))
	fmt.Fprintf(&sb, "- **%d** dependent files (containing `%s`)\n\n", len(c.Dependents), strings.TrimSpace(marker))
	sb.WriteString("> Dependent files are emitted after every independent file. ")
	sb.WriteString("Chains between dependent files are not ordered.\n")
	return sb.String()
}
