package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/satishbabariya/jsbundle/bundler"
)

// AppFs is the filesystem used for configuration, sources and outputs.
var AppFs = afero.NewOsFs()

const (
	// FileName is the config file name without extension
	FileName = ".jsbundle"
	// EnvPrefix prefixes every environment override, e.g. JSBUNDLE_SOURCE_PATH
	EnvPrefix = "JSBUNDLE"
)

// Config keys
const (
	KeySourcePath     = "source_path"
	KeyPattern        = "pattern"
	KeyVersionPath    = "version_path"
	KeyOutputPath     = "output_path"
	KeyMarker         = "marker"
	KeyProduct        = "product"
	KeyTestScriptPath = "test_script_path"
	KeyTemplatePath   = "template_path"
	KeyHarnessPath    = "harness_path"
)

// Config holds the application configuration
type Config struct {
	SourcePath     string `mapstructure:"source_path"`
	Pattern        string `mapstructure:"pattern"`
	VersionPath    string `mapstructure:"version_path"`
	OutputPath     string `mapstructure:"output_path"`
	Marker         string `mapstructure:"marker"`
	Product        string `mapstructure:"product"`
	TestScriptPath string `mapstructure:"test_script_path"`
	TemplatePath   string `mapstructure:"template_path"`
	HarnessPath    string `mapstructure:"harness_path"`

	// File is the config file that was read, if any
	File string `mapstructure:"-"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		SourcePath:     "../source",
		Pattern:        bundler.DefaultPattern,
		VersionPath:    "../VERSION",
		OutputPath:     "procuret.js",
		Marker:         bundler.DefaultMarker,
		Product:        bundler.DefaultProduct,
		TestScriptPath: "test_script.js",
		TemplatePath:   "test_template.html",
		HarnessPath:    "test.html",
	}
}

// Options controls LoadConfig
type Options struct {
	// File is an explicit config file; it must exist when set
	File string
	// Flags are bound to keys through Bindings
	Flags *pflag.FlagSet
	// Bindings maps config keys to flag names
	Bindings map[string]string
}

// LoadConfig loads configuration from defaults, the config file, .env files,
// JSBUNDLE_* environment variables and flags, in increasing priority.
func LoadConfig(opts Options) (*Config, error) {
	v := viper.New()
	v.SetFs(AppFs)

	defaults := Default()
	v.SetDefault(KeySourcePath, defaults.SourcePath)
	v.SetDefault(KeyPattern, defaults.Pattern)
	v.SetDefault(KeyVersionPath, defaults.VersionPath)
	v.SetDefault(KeyOutputPath, defaults.OutputPath)
	v.SetDefault(KeyMarker, defaults.Marker)
	v.SetDefault(KeyProduct, defaults.Product)
	v.SetDefault(KeyTestScriptPath, defaults.TestScriptPath)
	v.SetDefault(KeyTemplatePath, defaults.TemplatePath)
	v.SetDefault(KeyHarnessPath, defaults.HarnessPath)

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "jsbundle"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	loadDotEnv()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for key, name := range opts.Bindings {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	return cfg, nil
}

// loadDotEnv loads .env and then .env.local, which takes priority. Existing
// process variables are never overridden by .env.
func loadDotEnv() {
	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}
}

// SaveConfig writes cfg as YAML to path.
func SaveConfig(cfg *Config, path string) error {
	v := viper.New()
	v.SetFs(AppFs)

	v.Set(KeySourcePath, cfg.SourcePath)
	v.Set(KeyPattern, cfg.Pattern)
	v.Set(KeyVersionPath, cfg.VersionPath)
	v.Set(KeyOutputPath, cfg.OutputPath)
	v.Set(KeyMarker, cfg.Marker)
	v.Set(KeyProduct, cfg.Product)
	v.Set(KeyTestScriptPath, cfg.TestScriptPath)
	v.Set(KeyTemplatePath, cfg.TemplatePath)
	v.Set(KeyHarnessPath, cfg.HarnessPath)

	if dir := filepath.Dir(path); dir != "." {
		if err := AppFs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return v.WriteConfigAs(path)
}
