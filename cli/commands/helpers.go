package commands

import (
	"github.com/spf13/cobra"

	"github.com/satishbabariya/jsbundle/bundler"
	"github.com/satishbabariya/jsbundle/cli/internal/config"
	"github.com/satishbabariya/jsbundle/cli/internal/ui"
	"github.com/satishbabariya/jsbundle/internal/debug"
)

// sharedBindings maps config keys to the persistent root flags.
var sharedBindings = map[string]string{
	config.KeySourcePath:  "source",
	config.KeyPattern:     "pattern",
	config.KeyVersionPath: "version-file",
	config.KeyMarker:      "marker",
	config.KeyProduct:     "product",
}

// loadConfig resolves configuration for cmd, binding the shared flags plus
// any command specific ones.
func loadConfig(cmd *cobra.Command, extra map[string]string) (*config.Config, error) {
	bindings := make(map[string]string, len(sharedBindings)+len(extra))
	for k, v := range sharedBindings {
		bindings[k] = v
	}
	for k, v := range extra {
		bindings[k] = v
	}

	return config.LoadConfig(config.Options{
		File:     configFile,
		Flags:    cmd.Flags(),
		Bindings: bindings,
	})
}

func newCollector(cfg *config.Config) *bundler.Collector {
	return bundler.NewCollector(config.AppFs, bundler.NewMarkerClassifier(cfg.Marker),
		bundler.WithExcludes(cfg.OutputPath, cfg.HarnessPath))
}

func newBundler(cfg *config.Config) *bundler.Bundler {
	return bundler.NewBundler(config.AppFs, bundler.WithProduct(cfg.Product))
}

// buildBundle runs the collection pass and composes the bundle in memory.
// A version string that is not a release version only produces a warning.
func buildBundle(cfg *config.Config) (*bundler.Bundle, error) {
	bundle, err := newBundler(cfg).Build(newCollector(cfg), cfg.SourcePath, cfg.Pattern, cfg.VersionPath)
	if err != nil {
		return nil, err
	}

	if err := bundler.CheckVersion(bundle.Version()); err != nil {
		debug.Warn("Version is not a release version", "version", bundle.Version(), "error", err)
		ui.PrintWarning("%v", err)
	}
	return bundle, nil
}
