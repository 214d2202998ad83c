// Package config loads palettegen settings from defaults, an optional YAML
// file, a .env file, PALETTEGEN_* environment variables and command flags,
// in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/telugudelicacies/palettegen/internal/logging"
)

// EnvPrefix is the prefix for environment overrides, e.g. PALETTEGEN_SEEDS_PRIMARY.
const EnvPrefix = "PALETTEGEN"

// Storefront seed colours.
const (
	DefaultPrimary   = "#228B22"
	DefaultSecondary = "#FFD700"
	DefaultAccent    = "#8B0000"
)

// Seeds are the three colours a palette is generated from.
type Seeds struct {
	Primary   string `mapstructure:"primary"`
	Secondary string `mapstructure:"secondary"`
	Accent    string `mapstructure:"accent"`
}

// Config holds all runtime settings.
type Config struct {
	Seeds     Seeds    `mapstructure:"seeds"`
	Outputs   []string `mapstructure:"outputs"`
	OutputDir string   `mapstructure:"output_dir"`
	LogLevel  string   `mapstructure:"log_level"`
	Preview   string   `mapstructure:"preview"`
	DryRun    bool     `mapstructure:"dry_run"`

	// TemplatesDir holds custom output templates as {dir}/{plugin}/{file}.
	TemplatesDir string `mapstructure:"templates_dir"`
}

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// ConfigFile is an explicit YAML path. When empty, config.yaml is looked
	// up in DefaultConfigDir and a missing file is not an error.
	ConfigFile string

	// EnvFile is a dotenv file loaded into the process environment before
	// variables are read. A missing file is ignored.
	EnvFile string

	// Flags are bound to their config keys via FlagKeys.
	Flags *pflag.FlagSet
}

// FlagKeys maps command flag names to configuration keys.
var FlagKeys = map[string]string{
	"primary":    "seeds.primary",
	"secondary":  "seeds.secondary",
	"accent":     "seeds.accent",
	"outputs":    "outputs",
	"output-dir": "output_dir",
	"log-level":  "log_level",
	"preview":    "preview",
	"dry-run":    "dry_run",
	"templates":  "templates_dir",
}

// Preview modes.
const (
	PreviewAuto   = "auto"
	PreviewAlways = "always"
	PreviewNever  = "never"
)

// DefaultConfigDir returns $XDG_CONFIG_HOME/palettegen, falling back to
// ~/.config/palettegen.
func DefaultConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "palettegen")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "palettegen")
	}
	return "."
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("seeds.primary", DefaultPrimary)
	v.SetDefault("seeds.secondary", DefaultSecondary)
	v.SetDefault("seeds.accent", DefaultAccent)
	v.SetDefault("outputs", []string{"css"})
	v.SetDefault("output_dir", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("preview", PreviewAuto)
	v.SetDefault("dry_run", false)
	v.SetDefault("templates_dir", filepath.Join(DefaultConfigDir(), "templates"))
}

// Load reads configuration according to opts.
func Load(opts LoadOptions) (*Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", opts.EnvFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("yaml")
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(DefaultConfigDir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	if opts.Flags != nil {
		for name, key := range FlagKeys {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that can be checked without generating a palette.
// Seed colours are validated by the palette generator itself.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}

	switch c.Preview {
	case PreviewAuto, PreviewAlways, PreviewNever:
	default:
		return fmt.Errorf("invalid preview mode: %s (use auto, always or never)", c.Preview)
	}

	if len(c.Outputs) == 0 {
		return fmt.Errorf("no outputs configured")
	}
	return nil
}
