package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/telugudelicacies/palettegen/internal/apply"
	"github.com/telugudelicacies/palettegen/internal/colour"
	"github.com/telugudelicacies/palettegen/internal/config"
	"github.com/telugudelicacies/palettegen/internal/plugin/output"
)

// generateOptions holds generate-only flags that are not configuration keys.
type generateOptions struct {
	savePalette string
}

// newGenerateCmd represents the generate command
func newGenerateCmd(global *globalOptions, registry *output.Registry) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [primary [secondary [accent]]]",
		Short: "Generate a palette and write it with the selected output plugins",
		Long:  buildGenerateHelp(registry),
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, global, opts, registry)
		},
	}

	// Seeds
	cmd.Flags().String("primary", "", "primary seed colour (default "+config.DefaultPrimary+")")
	cmd.Flags().String("secondary", "", "secondary seed colour (default "+config.DefaultSecondary+")")
	cmd.Flags().String("accent", "", "accent seed colour (default "+config.DefaultAccent+")")

	// Output plugin selection
	cmd.Flags().StringSliceP("outputs", "o", []string{"css"}, "Output plugins (comma-separated or 'all')")
	cmd.Flags().String("output-dir", "", "Write every output here instead of each plugin's directory")

	// General options
	cmd.Flags().Bool("dry-run", false, "Preview without writing files")
	cmd.Flags().String("preview", config.PreviewAuto, "Show colour swatches (auto, always, never)")
	cmd.Flags().String("templates", "", "Directory of custom output templates")
	cmd.Flags().StringVar(&opts.savePalette, "save-palette", "", "Save palette to file (JSON)")

	// Register plugin flags
	for _, plugin := range registry.All() {
		plugin.RegisterFlags(cmd)
	}

	return cmd
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string, global *globalOptions, opts *generateOptions, registry *output.Registry) error {
	cfg, err := global.loadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	// Positional seeds win over flags and configuration.
	seeds := []*string{&cfg.Seeds.Primary, &cfg.Seeds.Secondary, &cfg.Seeds.Accent}
	for i, arg := range args {
		*seeds[i] = arg
	}

	logger, err := global.newLogger(cmd, cfg.LogLevel)
	if err != nil {
		return err
	}

	plugins, err := registry.Select(cfg.Outputs)
	if err != nil {
		return err
	}

	dispatcher := &apply.Dispatcher{}
	unsubscribe := dispatcher.Subscribe(logPaletteUpdated(logger))
	defer unsubscribe()

	applier := apply.NewFileApplier(apply.FileApplierOptions{
		Plugins:     plugins,
		OutputDir:   cfg.OutputDir,
		DryRun:      cfg.DryRun,
		TemplateDir: cfg.TemplatesDir,
		Logger:      logger,
		Dispatcher:  dispatcher,
	})

	palette, err := apply.Update(cmd.Context(), applier, logger, cfg.Seeds.Primary, cfg.Seeds.Secondary, cfg.Seeds.Accent)
	if err != nil {
		return fmt.Errorf("error updating palette: %w", err)
	}

	if showPreview(cmd, cfg.Preview) {
		fmt.Fprintln(cmd.OutOrStdout(), palette.StringWithPreview(true))
	}

	if opts.savePalette != "" {
		if err := savePalette(palette, opts.savePalette); err != nil {
			return fmt.Errorf("failed to save palette: %w", err)
		}
		logger.Info("saved palette", "path", opts.savePalette)
	}

	return nil
}

// logPaletteUpdated reports applied palettes.
func logPaletteUpdated(logger hclog.Logger) apply.Listener {
	return func(_ context.Context, ev apply.Event) {
		logger.Debug(ev.Name, "files", strings.Join(ev.Files, ","), "dry_run", ev.DryRun)
	}
}

// showPreview decides whether swatches are printed. In auto mode they are
// shown only when stdout is a terminal; always also forces colour on.
func showPreview(cmd *cobra.Command, mode string) bool {
	switch mode {
	case config.PreviewAlways:
		color.NoColor = false
		return true
	case config.PreviewNever:
		return false
	}

	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// buildGenerateHelp builds the help text with the registered plugins.
func buildGenerateHelp(registry *output.Registry) string {
	var b strings.Builder
	b.WriteString(`Generate a colour palette from three seed colours and write it with the
selected output plugins.

Seeds come from positional arguments, --primary/--secondary/--accent, the
PALETTEGEN_SEEDS_* environment variables or the config file, in that order.
Seeds that are almost white, almost black or almost grey are nudged back into
a usable range before the palette is built.

Output Plugins:
`)

	for _, name := range registry.List() {
		plugin, _ := registry.Get(name)
		fmt.Fprintf(&b, "  %-12s - %s\n", name, plugin.Description())
	}

	b.WriteString(`  all          - Run all available output plugins

Examples:
  # Storefront defaults to palette.css
  palettegen generate

  # Festival theme, every output, into ./theme
  palettegen generate '#e65100' '#ffc107' '#4a148c' -o all --output-dir theme

  # Tailwind v4 theme file next to the page sources
  palettegen generate --primary '#228B22' -o tailwind --tailwind.format theme

  # Show swatches without writing anything
  palettegen generate --dry-run --preview always`)

	return b.String()
}

// savePalette saves a palette to a JSON file.
func savePalette(palette *colour.Palette, path string) error {
	data, err := palette.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal palette: %w", err)
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
