// Package output provides the interface and registry for output plugins,
// which render a palette into files a page or build tool consumes.
package output

import (
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/telugudelicacies/palettegen/internal/colour"
)

// Plugin renders a palette into one or more files.
type Plugin interface {
	// Name returns the plugin's name (e.g., "css", "tailwind").
	Name() string

	// Description returns a human-readable description of the plugin.
	Description() string

	// Generate creates output file(s) from the given palette.
	// Returns map of filename -> content to support plugins that generate multiple files.
	Generate(palette *colour.Palette) (map[string][]byte, error)

	// RegisterFlags registers plugin-specific flags with cobra command.
	RegisterFlags(cmd *cobra.Command)

	// Validate checks if the plugin configuration is valid.
	Validate() error

	// DefaultOutputDir returns the directory files are written to.
	DefaultOutputDir() string
}

// Registry holds all registered output plugins.
type Registry struct {
	plugins map[string]Plugin
}

// NewRegistry creates a new plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin to the registry.
func (r *Registry) Register(plugin Plugin) {
	r.plugins[plugin.Name()] = plugin
}

// Get retrieves a plugin by name.
func (r *Registry) Get(name string) (Plugin, bool) {
	plugin, ok := r.plugins[name]
	return plugin, ok
}

// List returns all registered plugin names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns all registered plugins.
func (r *Registry) All() map[string]Plugin {
	// Return a copy to prevent external modification
	plugins := make(map[string]Plugin, len(r.plugins))
	for name, plugin := range r.plugins {
		plugins[name] = plugin
	}
	return plugins
}

// SelectAll is the plugin name that selects every registered plugin.
const SelectAll = "all"

// Select resolves plugin names in the order given. "all" selects every
// registered plugin in name order.
func (r *Registry) Select(names []string) ([]Plugin, error) {
	if len(names) == 1 && names[0] == SelectAll {
		plugins := make([]Plugin, 0, len(r.plugins))
		for _, name := range r.List() {
			plugins = append(plugins, r.plugins[name])
		}
		return plugins, nil
	}

	plugins := make([]Plugin, 0, len(names))
	for _, name := range names {
		plugin, ok := r.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown output plugin: %s (available: %s)", name, strings.Join(r.List(), ", "))
		}
		plugins = append(plugins, plugin)
	}

	if len(plugins) == 0 {
		return nil, fmt.Errorf("no output plugins selected")
	}
	return plugins, nil
}

// LoggingPlugin is implemented by plugins that report progress through a logger.
type LoggingPlugin interface {
	SetLogger(logger hclog.Logger)
}

// TemplateProvider is implemented by plugins that render embedded templates
// a user can override.
type TemplateProvider interface {
	// Templates returns the plugin's embedded default templates.
	Templates() fs.FS

	// SetTemplateDir sets the base directory searched for custom templates.
	SetTemplateDir(dir string)
}
