// Package json provides an output plugin that writes the palette document
// for consumers that read colours at runtime.
package json

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/telugudelicacies/palettegen/internal/colour"
)

// Filename is the file the plugin generates.
const Filename = "palette.json"

// Plugin implements the output.Plugin interface for the palette JSON document.
type Plugin struct {
	outputDir string
}

// New creates a new JSON output plugin.
func New() *Plugin {
	return &Plugin{}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "json"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Write the palette as a JSON document"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.outputDir, "json.output-dir", "", "Output directory (default: current directory)")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	return nil
}

// DefaultOutputDir returns the default output directory for this plugin.
func (p *Plugin) DefaultOutputDir() string {
	if p.outputDir != "" {
		return p.outputDir
	}
	return "."
}

// Generate marshals the palette.
func (p *Plugin) Generate(palette *colour.Palette) (map[string][]byte, error) {
	if palette == nil {
		return nil, fmt.Errorf("palette cannot be nil")
	}

	data, err := palette.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal palette: %w", err)
	}
	return map[string][]byte{Filename: append(data, '\n')}, nil
}
