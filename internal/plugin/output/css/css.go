// Package css provides an output plugin that writes the palette as CSS
// custom properties.
package css

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/telugudelicacies/palettegen/internal/colour"
	"github.com/telugudelicacies/palettegen/internal/plugin/output/common"
	tmplloader "github.com/telugudelicacies/palettegen/internal/plugin/output/template"
)

//go:embed *.tmpl
var templates embed.FS

// Filename is the file the plugin generates.
const Filename = "palette.css"

const templateName = "palette.css.tmpl"

// Supported value formats.
const (
	FormatHex = "hex"
	FormatRGB = "rgb"
	FormatHSL = "hsl"
)

// Variable is one CSS custom property.
type Variable struct {
	Name  string
	Value string
}

// Variables returns the custom properties for a palette in a stable order.
// The first eight are the names pages style against directly; the rest
// expose every family, neutral and status colour as --{group}-{name}.
func Variables(p *colour.Palette) []Variable {
	vars := []Variable{
		{"--primary-color-1", p.Primary.Base},
		{"--primary-color-2", p.Secondary.Base},
		{"--primary-color-3", p.Accent.Base},
		{"--text-on-primary", p.Accessibility.TextOnPrimary},
		{"--text-on-secondary", p.Accessibility.TextOnSecondary},
		{"--text-on-accent", p.Accessibility.TextOnAccent},
		{"--text-on-dark", p.Accessibility.TextOnDark},
		{"--text-on-light", p.Accessibility.TextOnLight},
	}

	for key, hex := range p.All() {
		if strings.HasPrefix(key, "accessibility.") {
			continue
		}
		vars = append(vars, Variable{
			Name:  "--" + strings.ReplaceAll(key, ".", "-"),
			Value: hex,
		})
	}
	return vars
}

// Plugin implements the output.Plugin interface for CSS custom properties.
type Plugin struct {
	outputDir   string
	selector    string
	format      string
	templateDir string
	logger      hclog.Logger
}

// New creates a new CSS output plugin with default settings.
func New() *Plugin {
	return &Plugin{
		selector: ":root",
		format:   FormatHex,
		logger:   hclog.NewNullLogger(),
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "css"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate CSS custom properties for the storefront"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.outputDir, "css.output-dir", "", "Output directory (default: current directory)")
	cmd.Flags().StringVar(&p.selector, "css.selector", ":root", "Selector the variables are declared on")
	cmd.Flags().StringVar(&p.format, "css.format", FormatHex, "Value format (hex, rgb or hsl)")
}

// SetLogger sets the plugin logger.
func (p *Plugin) SetLogger(logger hclog.Logger) {
	if logger != nil {
		p.logger = logger
	}
}

// Templates returns the embedded templates.
func (p *Plugin) Templates() fs.FS {
	return templates
}

// SetTemplateDir sets the base directory searched for custom templates.
func (p *Plugin) SetTemplateDir(dir string) {
	p.templateDir = dir
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	switch p.format {
	case FormatHex, FormatRGB, FormatHSL:
	default:
		return fmt.Errorf("invalid format: %s (must be 'hex', 'rgb' or 'hsl')", p.format)
	}
	if strings.TrimSpace(p.selector) == "" {
		return fmt.Errorf("selector cannot be empty")
	}
	return nil
}

// DefaultOutputDir returns the default output directory for this plugin.
func (p *Plugin) DefaultOutputDir() string {
	if p.outputDir != "" {
		return p.outputDir
	}
	return "."
}

type templateData struct {
	Selector  string
	Format    string
	Variables []Variable
}

// Generate renders the palette stylesheet.
func (p *Plugin) Generate(palette *colour.Palette) (map[string][]byte, error) {
	if palette == nil {
		return nil, fmt.Errorf("palette cannot be nil")
	}

	loader := tmplloader.New(p.Name(), templates, p.templateDir).WithLogger(p.logger)
	tmplContent, _, err := loader.Load(templateName)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSS template: %w", err)
	}

	tmpl, err := template.New(Filename).Funcs(common.TemplateFuncs()).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSS template: %w", err)
	}

	data := templateData{
		Selector:  p.selector,
		Format:    p.format,
		Variables: Variables(palette),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute CSS template: %w", err)
	}

	return map[string][]byte{Filename: buf.Bytes()}, nil
}
