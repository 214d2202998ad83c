package template

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"palette.css.tmpl": {Data: []byte(":root { --primary: {{ .Primary.Base }}; }\n")},
		"theme.js.tmpl":    {Data: []byte("module.exports = {}\n")},
		"README.md":        {Data: []byte("not a template\n")},
	}
}

func TestLoader_Load(t *testing.T) {
	tmpDir := t.TempDir()
	loader := New("testplugin", testFS(), tmpDir)

	t.Run("loads embedded template when no custom exists", func(t *testing.T) {
		content, fromCustom, err := loader.Load("palette.css.tmpl")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fromCustom {
			t.Error("expected embedded template, got custom")
		}
		if len(content) == 0 {
			t.Error("expected content, got empty")
		}
	})

	t.Run("loads custom template when it exists", func(t *testing.T) {
		customContent := []byte("/* custom */\n")
		customPath := loader.CustomPath("palette.css.tmpl")
		if err := os.MkdirAll(filepath.Dir(customPath), 0o755); err != nil {
			t.Fatalf("failed to create custom dir: %v", err)
		}
		if err := os.WriteFile(customPath, customContent, 0o644); err != nil {
			t.Fatalf("failed to write custom template: %v", err)
		}

		content, fromCustom, err := loader.Load("palette.css.tmpl")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !fromCustom {
			t.Error("expected custom template, got embedded")
		}
		if string(content) != string(customContent) {
			t.Errorf("expected custom content %q, got %q", customContent, content)
		}
	})

	t.Run("returns error for non-existent template", func(t *testing.T) {
		if _, _, err := loader.Load("nonexistent.tmpl"); err == nil {
			t.Error("expected error for non-existent template")
		}
	})
}

func TestLoader_OversizedCustomTemplate(t *testing.T) {
	loader := New("testplugin", testFS(), t.TempDir())

	customPath := loader.CustomPath("palette.css.tmpl")
	if err := os.MkdirAll(filepath.Dir(customPath), 0o755); err != nil {
		t.Fatalf("failed to create custom dir: %v", err)
	}
	if err := os.WriteFile(customPath, make([]byte, MaxTemplateSize+1), 0o644); err != nil {
		t.Fatalf("failed to write custom template: %v", err)
	}

	if _, _, err := loader.Load("palette.css.tmpl"); err == nil {
		t.Error("expected error for oversized custom template")
	}
}

func TestLoader_NoCustomBase(t *testing.T) {
	loader := New("testplugin", testFS(), "")

	_, fromCustom, err := loader.Load("theme.js.tmpl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fromCustom {
		t.Error("expected embedded template when no custom base is set")
	}
}

func TestLoader_CustomPath(t *testing.T) {
	loader := New("testplugin", testFS(), "/home/user/.config/palettegen/templates")

	if got, want := loader.CustomDir(), "/home/user/.config/palettegen/templates/testplugin"; got != want {
		t.Errorf("CustomDir() = %q, want %q", got, want)
	}
	if got, want := loader.CustomPath("a.tmpl"), "/home/user/.config/palettegen/templates/testplugin/a.tmpl"; got != want {
		t.Errorf("CustomPath() = %q, want %q", got, want)
	}
}

func TestLoader_ListEmbeddedTemplates(t *testing.T) {
	loader := New("testplugin", testFS(), "")

	templates, err := loader.ListEmbeddedTemplates()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(templates) != 2 {
		t.Fatalf("expected 2 templates, got %v", templates)
	}
	for _, tmpl := range templates {
		if filepath.Ext(tmpl) != ".tmpl" {
			t.Errorf("expected .tmpl extension, got %q", tmpl)
		}
	}
}

func TestLoader_DumpTemplate(t *testing.T) {
	loader := New("testplugin", testFS(), t.TempDir())

	t.Run("dumps template successfully", func(t *testing.T) {
		path, err := loader.DumpTemplate("palette.css.tmpl", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("custom template not created: %v", err)
		}
		if !loader.HasCustomTemplate("palette.css.tmpl") {
			t.Error("HasCustomTemplate() = false after dump")
		}
	})

	t.Run("fails without force when template exists", func(t *testing.T) {
		_, err := loader.DumpTemplate("palette.css.tmpl", false)
		if !errors.Is(err, ErrTemplateExists) {
			t.Errorf("expected ErrTemplateExists, got %v", err)
		}
	})

	t.Run("overwrites with force flag", func(t *testing.T) {
		if _, err := loader.DumpTemplate("palette.css.tmpl", true); err != nil {
			t.Fatalf("unexpected error with force flag: %v", err)
		}
	})

	t.Run("returns error for non-existent template", func(t *testing.T) {
		if _, err := loader.DumpTemplate("nonexistent.tmpl", false); err == nil {
			t.Error("expected error for non-existent template")
		}
	})
}

func TestLoader_DumpAllTemplates_PartialExisting(t *testing.T) {
	loader := New("testplugin", testFS(), t.TempDir())

	if _, err := loader.DumpTemplate("theme.js.tmpl", false); err != nil {
		t.Fatalf("failed to dump first template: %v", err)
	}

	dumped, err := loader.DumpAllTemplates(false)
	if !errors.Is(err, ErrTemplateExists) {
		t.Errorf("expected ErrTemplateExists, got %v", err)
	}
	if len(dumped) != 1 || filepath.Base(dumped[0]) != "palette.css.tmpl" {
		t.Errorf("expected only palette.css.tmpl to be dumped, got %v", dumped)
	}

	dumped, err = loader.DumpAllTemplates(true)
	if err != nil {
		t.Fatalf("unexpected error with force flag: %v", err)
	}
	if len(dumped) != 2 {
		t.Errorf("expected 2 dumped templates, got %d", len(dumped))
	}
}
