// Package tailwind provides a Tailwind CSS / shadcn/ui output plugin.
package tailwind

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"text/template"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/telugudelicacies/palettegen/internal/colour"
	"github.com/telugudelicacies/palettegen/internal/plugin/output/common"
	tmplloader "github.com/telugudelicacies/palettegen/internal/plugin/output/template"
)

//go:embed *.tmpl
var templates embed.FS

// Output formats.
const (
	FormatCSS    = "css"    // shadcn/ui globals.css variables
	FormatConfig = "config" // tailwind.config.js theme extension
	FormatTheme  = "theme"  // Tailwind v4 @theme block
)

// Generated files, one per format.
const (
	FileCSS    = "globals.css"
	FileConfig = "tailwind.palette.js"
	FileTheme  = "palette.theme.css"
)

// Plugin implements the output.Plugin interface for Tailwind CSS.
type Plugin struct {
	format      string
	outputDir   string
	templateDir string
	logger      hclog.Logger
}

// New creates a new Tailwind CSS output plugin.
func New() *Plugin {
	return NewWithFormat(FormatCSS)
}

// NewWithFormat creates a new Tailwind CSS output plugin with a specific format.
func NewWithFormat(format string) *Plugin {
	return &Plugin{
		format: format,
		logger: hclog.NewNullLogger(),
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "tailwind"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Generate Tailwind CSS / shadcn/ui theme configuration"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.format, "tailwind.format", FormatCSS, "Output format (css, config or theme)")
	cmd.Flags().StringVar(&p.outputDir, "tailwind.output-dir", "", "Output directory (default: current directory)")
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
	case FormatCSS, FormatConfig, FormatTheme:
		return nil
	}
	return fmt.Errorf("invalid format: %s (must be 'css', 'config' or 'theme')", p.format)
}

// DefaultOutputDir returns the default output directory for this plugin.
func (p *Plugin) DefaultOutputDir() string {
	if p.outputDir != "" {
		return p.outputDir
	}

	// Stylesheets sit with the page sources when the project has a src dir.
	if p.format != FormatConfig {
		if info, err := os.Stat("src"); err == nil && info.IsDir() {
			return "src"
		}
	}

	return "."
}

// Generate creates the Tailwind CSS configuration from the palette.
func (p *Plugin) Generate(palette *colour.Palette) (map[string][]byte, error) {
	if palette == nil {
		return nil, fmt.Errorf("palette cannot be nil")
	}

	var (
		filename string
		data     any
	)
	switch p.format {
	case FormatConfig:
		filename, data = FileConfig, prepareThemeData(palette)
	case FormatTheme:
		filename, data = FileTheme, prepareThemeData(palette)
	default:
		filename, data = FileCSS, prepareCSSData(palette)
	}

	content, err := p.render(filename, data)
	if err != nil {
		return nil, err
	}
	return map[string][]byte{filename: content}, nil
}

// render executes {filename}.tmpl against data.
func (p *Plugin) render(filename string, data any) ([]byte, error) {
	loader := tmplloader.New(p.Name(), templates, p.templateDir).WithLogger(p.logger)
	tmplContent, _, err := loader.Load(filename + ".tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read %s template: %w", filename, err)
	}

	tmpl, err := template.New(filename).Funcs(common.TemplateFuncs()).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s template: %w", filename, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute %s template: %w", filename, err)
	}

	return buf.Bytes(), nil
}

// CSSData holds data for the shadcn/ui CSS template.
type CSSData struct {
	Light  CSSTheme
	Dark   CSSTheme
	Custom []CSSCustomColour
}

// CSSTheme holds the shadcn/ui variables for one colour scheme as hex colours.
type CSSTheme struct {
	Background            string
	Foreground            string
	Card                  string
	CardForeground        string
	Popover               string
	PopoverForeground     string
	Primary               string
	PrimaryForeground     string
	Secondary             string
	SecondaryForeground   string
	Muted                 string
	MutedForeground       string
	Accent                string
	AccentForeground      string
	Destructive           string
	DestructiveForeground string
	Border                string
	Input                 string
	Ring                  string
}

// CSSCustomColour represents a custom colour variable.
type CSSCustomColour struct {
	Name  string
	Value string
}

// prepareCSSData maps the palette onto shadcn/ui roles. The light scheme uses
// the seed bases on a white surface; the dark scheme lifts them one step.
func prepareCSSData(palette *colour.Palette) CSSData {
	n := palette.Neutral

	light := buildCSSTheme(n.White, n.Darker, n.Lightest, n.Dark, n.Lighter,
		palette.Primary.Base, palette.Secondary.Base, palette.Accent.Base, palette.Status.Error)
	dark := buildCSSTheme(n.Darker, n.Lightest, n.Dark, n.Light, n.Dark,
		palette.Primary.Light, palette.Secondary.Light, palette.Accent.Light, palette.Status.Error)

	return CSSData{
		Light: light,
		Dark:  dark,
		Custom: []CSSCustomColour{
			{Name: "warning", Value: palette.Status.Warning},
			{Name: "success", Value: palette.Status.Success},
			{Name: "info", Value: palette.Status.Info},
		},
	}
}

// buildCSSTheme creates a CSS theme from colours. Foregrounds on coloured
// surfaces are chosen for contrast.
func buildCSSTheme(bg, fg, muted, mutedFg, border, primary, secondary, accent, destructive string) CSSTheme {
	on := func(surface string) string {
		return colour.AccessibleTextColour(surface, colour.DefaultTextColour)
	}

	return CSSTheme{
		Background:            bg,
		Foreground:            fg,
		Card:                  bg,
		CardForeground:        fg,
		Popover:               bg,
		PopoverForeground:     fg,
		Primary:               primary,
		PrimaryForeground:     on(primary),
		Secondary:             secondary,
		SecondaryForeground:   on(secondary),
		Muted:                 muted,
		MutedForeground:       mutedFg,
		Accent:                accent,
		AccentForeground:      on(accent),
		Destructive:           destructive,
		DestructiveForeground: on(destructive),
		Border:                border,
		Input:                 border,
		Ring:                  primary,
	}
}

// Shade is one named step of a colour scale.
type Shade struct {
	Key   string
	Value string
}

// ColourScale is a Tailwind colour with its shades.
type ColourScale struct {
	Name   string
	Shades []Shade
}

// ThemeData holds data for the config and @theme templates.
type ThemeData struct {
	Scales []ColourScale
	Flat   []Shade
}

// familyScale places a family on Tailwind's 100-900 scale with base at 500.
func familyScale(name string, f colour.Family) ColourScale {
	return ColourScale{
		Name: name,
		Shades: []Shade{
			{"DEFAULT", f.Base},
			{"100", f.Lightest},
			{"200", f.Lighter},
			{"300", f.Light},
			{"500", f.Base},
			{"700", f.Dark},
			{"900", f.Darker},
		},
	}
}

// prepareThemeData converts a palette to scale data.
func prepareThemeData(palette *colour.Palette) ThemeData {
	n := palette.Neutral
	s := palette.Status
	a := palette.Accessibility

	return ThemeData{
		Scales: []ColourScale{
			familyScale("primary", palette.Primary),
			familyScale("secondary", palette.Secondary),
			familyScale("accent", palette.Accent),
			{
				Name: "neutral",
				Shades: []Shade{
					{"50", n.Lightest},
					{"100", n.Lighter},
					{"300", n.Light},
					{"500", n.Medium},
					{"700", n.Dark},
					{"900", n.Darker},
				},
			},
		},
		Flat: []Shade{
			{"success", s.Success},
			{"warning", s.Warning},
			{"error", s.Error},
			{"info", s.Info},
			{"on-primary", a.TextOnPrimary},
			{"on-secondary", a.TextOnSecondary},
			{"on-accent", a.TextOnAccent},
			{"on-light", a.TextOnLight},
			{"on-dark", a.TextOnDark},
		},
	}
}
