// Package testing provides shared test utilities for output plugins.
package testing

import (
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/telugudelicacies/palettegen/internal/colour"
	"github.com/telugudelicacies/palettegen/internal/plugin/output"
)

// Storefront seeds used across plugin tests.
const (
	SeedPrimary   = "#228b22"
	SeedSecondary = "#ffd700"
	SeedAccent    = "#8b0000"
)

// TestBasicInterface tests the basic plugin interface methods that all plugins must implement.
func TestBasicInterface(t *testing.T, p output.Plugin, expectedName string) {
	t.Run("Name", func(t *testing.T) {
		if p.Name() != expectedName {
			t.Errorf("Name() = %s, want %s", p.Name(), expectedName)
		}
	})

	t.Run("Description", func(t *testing.T) {
		if p.Description() == "" {
			t.Error("Description() should not be empty")
		}
	})

	t.Run("DefaultOutputDir", func(t *testing.T) {
		if p.DefaultOutputDir() == "" {
			t.Error("DefaultOutputDir() should not be empty")
		}
	})

	t.Run("Validate", func(t *testing.T) {
		if err := p.Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})
}

// TestGeneration tests the Generate method with various scenarios.
func TestGeneration(t *testing.T, p output.Plugin, expectedFiles []string) {
	t.Run("Generate", func(t *testing.T) {
		files, err := p.Generate(CreateTestPalette())
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		if len(files) != len(expectedFiles) {
			t.Fatalf("Generate() returned %d files, want %d", len(files), len(expectedFiles))
		}

		for _, expectedFile := range expectedFiles {
			content, ok := files[expectedFile]
			if !ok {
				t.Errorf("Generate() did not return %s", expectedFile)
				continue
			}
			if len(content) == 0 {
				t.Errorf("Generate() returned empty %s", expectedFile)
			}
		}
	})

	t.Run("GenerateNilPalette", func(t *testing.T) {
		if _, err := p.Generate(nil); err == nil {
			t.Error("Generate() with nil palette should return error")
		}
	})

	t.Run("GenerateIsDeterministic", func(t *testing.T) {
		first, err := p.Generate(CreateTestPalette())
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		second, err := p.Generate(CreateTestPalette())
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		for name, content := range first {
			if string(second[name]) != string(content) {
				t.Errorf("Generate() output for %s differs between runs", name)
			}
		}
	})
}

// TestLoggingPlugin tests logger injection if the plugin supports it.
func TestLoggingPlugin(t *testing.T, p any) {
	t.Run("SetLogger", func(t *testing.T) {
		lp, ok := p.(output.LoggingPlugin)
		if !ok {
			t.Skip("Plugin does not implement SetLogger")
		}
		// Just test that it doesn't panic.
		lp.SetLogger(hclog.NewNullLogger())
		lp.SetLogger(nil)
	})
}

// TestFlags tests plugin-specific flag registration.
func TestFlags(t *testing.T, p output.Plugin, expectedFlagPrefix string) {
	t.Run("RegisterFlags", func(t *testing.T) {
		cmd := &cobra.Command{
			Use: "test",
		}

		p.RegisterFlags(cmd)

		expectedFlag := expectedFlagPrefix + ".output-dir"
		if cmd.Flags().Lookup(expectedFlag) == nil {
			t.Errorf("RegisterFlags() did not register %s flag", expectedFlag)
		}

		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if !strings.HasPrefix(f.Name, expectedFlagPrefix+".") {
				t.Errorf("flag %s is not namespaced with %s.", f.Name, expectedFlagPrefix)
			}
		})
	})
}

// TestEmbeddedTemplates checks that the expected embedded templates of a
// TemplateProvider can be opened.
func TestEmbeddedTemplates(t *testing.T, p any, expected []string) {
	t.Run("Templates", func(t *testing.T) {
		tp, ok := p.(output.TemplateProvider)
		if !ok {
			t.Skip("Plugin does not provide templates")
		}
		for _, name := range expected {
			f, err := tp.Templates().Open(name)
			if err != nil {
				t.Errorf("embedded template %s: %v", name, err)
				continue
			}
			f.Close()
		}
	})
}

// CreateTestPalette builds the storefront palette used by plugin tests.
func CreateTestPalette() *colour.Palette {
	return colour.BuildPalette(SeedPrimary, SeedSecondary, SeedAccent)
}

// RunAllTests runs all standard tests for a plugin.
func RunAllTests(t *testing.T, p output.Plugin, config TestConfig) {
	TestBasicInterface(t, p, config.ExpectedName)
	TestGeneration(t, p, config.ExpectedFiles)
	TestLoggingPlugin(t, p)
	TestFlags(t, p, config.ExpectedName)
	TestEmbeddedTemplates(t, p, config.ExpectedTemplates)
}

// TestConfig holds configuration for running plugin tests.
type TestConfig struct {
	ExpectedName      string   // Plugin name
	ExpectedFiles     []string // Files that Generate() should return
	ExpectedTemplates []string // Embedded templates, for plugins that provide them
}
