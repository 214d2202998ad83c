// Package cli provides the command-line interface for palettegen.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/telugudelicacies/palettegen/internal/config"
	"github.com/telugudelicacies/palettegen/internal/logging"
	"github.com/telugudelicacies/palettegen/internal/plugin/output"
	"github.com/telugudelicacies/palettegen/internal/plugin/output/css"
	"github.com/telugudelicacies/palettegen/internal/plugin/output/json"
	"github.com/telugudelicacies/palettegen/internal/plugin/output/tailwind"
	"github.com/telugudelicacies/palettegen/internal/version"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	verbose    bool
	quiet      bool
	configFile string
	envFile    string
	logLevel   string
}

// NewRootCmd builds the palettegen command tree. Each call returns an
// independent tree with its own output plugins and flag state.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}
	registry := newOutputRegistry()

	rootCmd := &cobra.Command{
		Use:   "palettegen",
		Short: "Generate accessible colour palettes for the storefront",
		Long: `palettegen builds a complete, WCAG-checked colour palette from three seed
colours (primary, secondary and accent) and renders it as CSS custom
properties, Tailwind theme files or JSON.

Each seed is expanded into a family of lighter and darker shades; neutral
greys are tinted with the primary hue, status colours are derived from the
seeds, and a readable text colour is chosen for every surface.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default: $XDG_CONFIG_HOME/palettegen/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file with PALETTEGEN_* overrides")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, off)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd(opts, registry))
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newAdjustCmd())
	rootCmd.AddCommand(newHarmonyCmd())
	rootCmd.AddCommand(newTemplatesCmd(opts, registry))

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// newOutputRegistry registers the built-in output plugins.
func newOutputRegistry() *output.Registry {
	registry := output.NewRegistry()
	registry.Register(css.New())
	registry.Register(tailwind.New())
	registry.Register(json.New())
	return registry
}

// loadConfig reads configuration with flags taking precedence.
func (o *globalOptions) loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	return config.Load(config.LoadOptions{
		ConfigFile: o.configFile,
		EnvFile:    o.envFile,
		Flags:      flags,
	})
}

// newLogger creates a command logger writing to the command's error stream.
func (o *globalOptions) newLogger(cmd *cobra.Command, level string) (hclog.Logger, error) {
	return logging.New(logging.Options{
		Name:    "palettegen",
		Level:   level,
		Verbose: o.verbose,
		Quiet:   o.quiet,
		Output:  cmd.ErrOrStderr(),
	})
}

// newVersionCmd represents the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
