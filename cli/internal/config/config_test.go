package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useMemFs(t *testing.T) afero.Fs {
	t.Helper()
	prev := AppFs
	fs := afero.NewMemMapFs()
	AppFs = fs
	t.Cleanup(func() { AppFs = prev })
	return fs
}

func TestLoadConfigDefaults(t *testing.T) {
	useMemFs(t)

	cfg, err := LoadConfig(Options{})
	require.NoError(t, err)

	want := Default()
	assert.Equal(t, want.SourcePath, cfg.SourcePath)
	assert.Equal(t, "../source", cfg.SourcePath)
	assert.Equal(t, "../VERSION", cfg.VersionPath)
	assert.Equal(t, "**/*.js", cfg.Pattern)
	assert.Equal(t, " extends PR_", cfg.Marker)
	assert.Equal(t, "procuret.js", cfg.OutputPath)
	assert.Equal(t, "test.html", cfg.HarnessPath)
	assert.Empty(t, cfg.File)
}

func TestLoadConfigFileEnvAndFlags(t *testing.T) {
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "/work/jsbundle.yaml", []byte(
		"source_path: src\nversion_path: VERSION\noutput_path: dist/lib.js\nproduct: Acme\n"), 0o644))

	t.Setenv("JSBUNDLE_OUTPUT_PATH", "env.js")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("source", "", "")
	flags.String("version-file", "", "")
	require.NoError(t, flags.Parse([]string{"--source", "flag-src"}))

	cfg, err := LoadConfig(Options{
		File:  "/work/jsbundle.yaml",
		Flags: flags,
		Bindings: map[string]string{
			KeySourcePath:  "source",
			KeyVersionPath: "version-file",
			KeyMarker:      "not-a-flag",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "flag-src", cfg.SourcePath, "changed flag wins")
	assert.Equal(t, "VERSION", cfg.VersionPath, "unchanged flag does not shadow the file")
	assert.Equal(t, "env.js", cfg.OutputPath, "environment beats the file")
	assert.Equal(t, "Acme", cfg.Product)
	assert.Equal(t, "/work/jsbundle.yaml", cfg.File)
}

func TestLoadConfigExplicitFileMissing(t *testing.T) {
	useMemFs(t)

	_, err := LoadConfig(Options{File: "/nowhere/jsbundle.yaml"})
	assert.Error(t, err)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	useMemFs(t)

	cfg := Default()
	cfg.SourcePath = "lib"
	cfg.Marker = " extends Base"
	require.NoError(t, SaveConfig(cfg, "/proj/.jsbundle.yaml"))

	loaded, err := LoadConfig(Options{File: "/proj/.jsbundle.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "lib", loaded.SourcePath)
	assert.Equal(t, " extends Base", loaded.Marker)
	assert.Equal(t, cfg.HarnessPath, loaded.HarnessPath)
}
