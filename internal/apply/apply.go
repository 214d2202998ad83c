// Package apply pushes a generated palette to its consumers: output plugins
// render it to files and subscribers are notified once it is in place.
package apply

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/telugudelicacies/palettegen/internal/colour"
	"github.com/telugudelicacies/palettegen/internal/plugin/output"
	"github.com/telugudelicacies/palettegen/internal/security"
)

// ErrNoOutputs is returned when every selected plugin failed or was skipped.
var ErrNoOutputs = errors.New("no output plugins succeeded")

// Applier makes a palette take effect.
type Applier interface {
	Apply(ctx context.Context, palette *colour.Palette) error
}

// FileApplierOptions configures a FileApplier.
type FileApplierOptions struct {
	Plugins []output.Plugin

	// OutputDir, when set, replaces every plugin's DefaultOutputDir.
	OutputDir string

	// DryRun reports the files that would be written without touching disk.
	DryRun bool

	// TemplateDir is the base directory for custom plugin templates.
	TemplateDir string

	Logger     hclog.Logger
	Dispatcher *Dispatcher
}

// FileApplier runs output plugins and writes the files they generate.
type FileApplier struct {
	plugins     []output.Plugin
	outputDir   string
	dryRun      bool
	templateDir string
	logger      hclog.Logger
	dispatcher  *Dispatcher
}

// NewFileApplier creates a FileApplier. A nil Dispatcher gets a private one.
func NewFileApplier(opts FileApplierOptions) *FileApplier {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	dispatcher := opts.Dispatcher
	if dispatcher == nil {
		dispatcher = &Dispatcher{}
	}

	return &FileApplier{
		plugins:     opts.Plugins,
		outputDir:   opts.OutputDir,
		dryRun:      opts.DryRun,
		templateDir: opts.TemplateDir,
		logger:      logger,
		dispatcher:  dispatcher,
	}
}

// Dispatcher returns the dispatcher notified after each Apply.
func (a *FileApplier) Dispatcher() *Dispatcher {
	return a.dispatcher
}

// Apply runs every plugin and writes its files. A plugin that fails
// validation or generation is logged and skipped; a write failure aborts.
// Subscribers receive EventPaletteUpdated once at least one plugin succeeded.
func (a *FileApplier) Apply(ctx context.Context, palette *colour.Palette) error {
	if palette == nil {
		return fmt.Errorf("palette cannot be nil")
	}

	var written []string
	successCount := 0

	for _, plugin := range a.plugins {
		if err := ctx.Err(); err != nil {
			return err
		}

		logger := a.logger.Named(plugin.Name())
		a.configure(plugin, logger)

		if err := plugin.Validate(); err != nil {
			logger.Warn("skipping output plugin", "error", err)
			continue
		}

		logger.Debug("running output plugin", "description", plugin.Description())

		files, err := plugin.Generate(palette)
		if err != nil {
			logger.Error("output plugin failed", "error", err)
			continue
		}

		outputDir := a.outputDir
		if outputDir == "" {
			outputDir = plugin.DefaultOutputDir()
		}

		if err := validateFiles(files, outputDir); err != nil {
			logger.Error("output plugin failed", "error", err)
			continue
		}

		// Sorted for stable logs and event payloads.
		for _, filename := range slices.Sorted(maps.Keys(files)) {
			content := files[filename]
			fullPath := filepath.Join(outputDir, filename)

			if a.dryRun {
				logger.Info("would write", "path", fullPath, "bytes", len(content))
			} else {
				if err := writeFile(fullPath, content, logger); err != nil {
					return fmt.Errorf("failed to write %s: %w", fullPath, err)
				}
				logger.Info("wrote", "path", fullPath, "bytes", len(content))
			}
			written = append(written, fullPath)
		}

		successCount++
	}

	if successCount == 0 {
		return ErrNoOutputs
	}

	a.dispatcher.Dispatch(ctx, Event{
		Name:    EventPaletteUpdated,
		Palette: palette,
		Files:   written,
		DryRun:  a.dryRun,
	})
	return nil
}

// validateFiles rejects output filenames that would land outside outputDir.
func validateFiles(files map[string][]byte, outputDir string) error {
	for filename := range files {
		if err := security.ValidateOutputFile(filename, outputDir); err != nil {
			return err
		}
	}
	return nil
}

// configure hands the applier's logger and template directory to plugins
// that accept them.
func (a *FileApplier) configure(plugin output.Plugin, logger hclog.Logger) {
	if lp, ok := plugin.(output.LoggingPlugin); ok {
		lp.SetLogger(logger)
	}
	if tp, ok := plugin.(output.TemplateProvider); ok && a.templateDir != "" {
		tp.SetTemplateDir(a.templateDir)
	}
}

// writeFile writes content to a file, creating directories as needed.
// An existing file is kept as {path}.backup.
func writeFile(path string, content []byte, logger hclog.Logger) error {
	// Expand ~ to home directory
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		backupPath := path + ".backup"
		if err := os.Rename(path, backupPath); err != nil {
			// If backup fails, continue anyway
			logger.Warn("could not create backup", "path", path, "error", err)
		} else {
			logger.Debug("created backup", "path", backupPath)
		}
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// Update generates a palette from three seed colours, applies it and logs
// the text colour chosen for each surface. Invalid seeds are reported
// before anything is applied.
func Update(ctx context.Context, a Applier, logger hclog.Logger, primary, secondary, accent string) (*colour.Palette, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	palette, err := colour.GeneratePalette(primary, secondary, accent)
	if err != nil {
		return nil, err
	}

	if err := a.Apply(ctx, palette); err != nil {
		return nil, fmt.Errorf("failed to apply palette: %w", err)
	}

	logger.Info("palette applied", "primary", palette.Primary.Base, "secondary", palette.Secondary.Base, "accent", palette.Accent.Base)
	for key, hex := range palette.All() {
		if name, ok := strings.CutPrefix(key, "accessibility."); ok {
			logger.Info("accessibility check", "surface", name, "text", hex)
		}
	}

	return palette, nil
}
