package commands

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/jsbundle/cli/internal/config"
	"github.com/satishbabariya/jsbundle/cli/internal/serve"
	"github.com/satishbabariya/jsbundle/cli/internal/ui"
)

var serveCmd = &cobra.Command{
	Use:   "serve [port]",
	Short: "Serve the test harness over HTTP",
	Long: `Serve the directory containing the rendered test harness. Requests for
"/" return the harness document.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("output", "o", "", "Harness document (default test.html)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, map[string]string{config.KeyHarnessPath: "output"})
	if err != nil {
		return err
	}

	port := "3000"
	if len(args) > 0 {
		port = args[0]
	}

	dir := filepath.Dir(cfg.HarnessPath)
	index := filepath.Base(cfg.HarnessPath)
	handler := serve.NewHandler(config.AppFs, dir, index, cmd.OutOrStdout())
	server := serve.NewServer(":"+port, handler)

	ui.PrintHeader("jsbundle", "Test Server")
	ui.PrintInfo("Server running at http://localhost:%s/", port)
	ui.PrintInfo("Test harness: http://localhost:%s/%s", port, index)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
