// Package template loads output plugin templates, preferring a user's custom
// copy over the embedded default.
package template

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/telugudelicacies/palettegen/internal/security"
)

// ErrTemplateExists is returned by DumpTemplate when a custom template is
// already present and force is not set.
var ErrTemplateExists = errors.New("custom template already exists")

// MaxTemplateSize is the largest custom template Load will read.
const MaxTemplateSize = 1 << 20

// Loader reads templates for one plugin. Custom templates live in
// {customBase}/{pluginName}/ and shadow the embedded file of the same name.
type Loader struct {
	pluginName string
	embedFS    fs.FS
	customBase string
	logger     hclog.Logger
}

// New creates a loader for pluginName whose defaults come from embedFS.
// customBase is usually {config dir}/templates.
func New(pluginName string, embedFS fs.FS, customBase string) *Loader {
	return &Loader{
		pluginName: pluginName,
		embedFS:    embedFS,
		customBase: customBase,
		logger:     hclog.NewNullLogger(),
	}
}

// WithLogger sets the logger used to report which template was chosen.
func (l *Loader) WithLogger(logger hclog.Logger) *Loader {
	if logger != nil {
		l.logger = logger
	}
	return l
}

// Load reads a template file, checking for a custom override first.
// Returns the template content and whether it was loaded from the override.
func (l *Loader) Load(filename string) (content []byte, fromCustom bool, err error) {
	if l.customBase != "" {
		customPath := l.CustomPath(filename)
		content, err := readCustom(customPath)
		switch {
		case err == nil:
			l.logger.Debug("using custom template", "plugin", l.pluginName, "path", customPath)
			return content, true, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, false, fmt.Errorf("failed to load custom template %q: %w", customPath, err)
		}
	}

	content, err = fs.ReadFile(l.embedFS, filename)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load template %q: %w", filename, err)
	}
	l.logger.Debug("using embedded template", "plugin", l.pluginName, "template", filename)

	return content, false, nil
}

// readCustom reads a custom template, refusing files over MaxTemplateSize.
func readCustom(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(security.NewLimitedReader(f, MaxTemplateSize))
}

// CustomPath returns the path where a custom template would be located.
func (l *Loader) CustomPath(filename string) string {
	return filepath.Join(l.CustomDir(), filename)
}

// CustomDir returns the directory holding this plugin's custom templates.
func (l *Loader) CustomDir() string {
	return filepath.Join(l.customBase, l.pluginName)
}

// HasCustomTemplate reports whether a custom template exists for filename.
func (l *Loader) HasCustomTemplate(filename string) bool {
	_, err := os.Stat(l.CustomPath(filename))
	return err == nil
}

// ListEmbeddedTemplates returns every embedded .tmpl file.
func (l *Loader) ListEmbeddedTemplates() ([]string, error) {
	var templates []string

	err := fs.WalkDir(l.embedFS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && path.Ext(p) == ".tmpl" {
			templates = append(templates, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded templates: %w", err)
	}

	return templates, nil
}

// DumpTemplate copies an embedded template to the custom directory so it can
// be edited. Existing custom templates are only replaced when force is set.
func (l *Loader) DumpTemplate(filename string, force bool) (string, error) {
	content, err := fs.ReadFile(l.embedFS, filename)
	if err != nil {
		return "", fmt.Errorf("failed to read embedded template %q: %w", filename, err)
	}

	outputPath := l.CustomPath(filename)
	if !force && l.HasCustomTemplate(filename) {
		return "", fmt.Errorf("%w: %s (use --force to overwrite)", ErrTemplateExists, outputPath)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory for %q: %w", outputPath, err)
	}
	if err := os.WriteFile(outputPath, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write template to %q: %w", outputPath, err)
	}

	return outputPath, nil
}

// DumpAllTemplates dumps every embedded template. Templates that already
// exist are skipped when force is false; the skips are returned joined into
// one error after the remaining templates have been written.
func (l *Loader) DumpAllTemplates(force bool) ([]string, error) {
	templates, err := l.ListEmbeddedTemplates()
	if err != nil {
		return nil, err
	}

	var dumped []string
	var skipped []error

	for _, tmpl := range templates {
		written, err := l.DumpTemplate(tmpl, force)
		if err != nil {
			if errors.Is(err, ErrTemplateExists) {
				skipped = append(skipped, err)
				continue
			}
			return dumped, err
		}
		dumped = append(dumped, written)
	}

	return dumped, errors.Join(skipped...)
}
