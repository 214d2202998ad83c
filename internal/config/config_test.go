package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/spf13/pflag"
)

// isolate points the default config lookup at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Seeds{Primary: DefaultPrimary, Secondary: DefaultSecondary, Accent: DefaultAccent}
	if cfg.Seeds != want {
		t.Errorf("Seeds = %+v, want %+v", cfg.Seeds, want)
	}
	if !slices.Equal(cfg.Outputs, []string{"css"}) {
		t.Errorf("Outputs = %v, want [css]", cfg.Outputs)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
	if cfg.Preview != PreviewAuto {
		t.Errorf("Preview = %s, want auto", cfg.Preview)
	}
	if want := filepath.Join(DefaultConfigDir(), "templates"); cfg.TemplatesDir != want {
		t.Errorf("TemplatesDir = %s, want %s", cfg.TemplatesDir, want)
	}
}

func TestLoadFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "palette.yaml")
	content := `seeds:
  primary: "#123456"
  accent: "#abc"
outputs: [css, json]
output_dir: ./theme
log_level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(LoadOptions{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Seeds.Primary != "#123456" || cfg.Seeds.Accent != "#abc" {
		t.Errorf("Seeds = %+v", cfg.Seeds)
	}
	if cfg.Seeds.Secondary != DefaultSecondary {
		t.Errorf("Seeds.Secondary = %s, want default %s", cfg.Seeds.Secondary, DefaultSecondary)
	}
	if !slices.Equal(cfg.Outputs, []string{"css", "json"}) {
		t.Errorf("Outputs = %v, want [css json]", cfg.Outputs)
	}
	if cfg.OutputDir != "./theme" {
		t.Errorf("OutputDir = %s, want ./theme", cfg.OutputDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
}

func TestLoadDefaultDir(t *testing.T) {
	dir := isolate(t)

	cfgDir := filepath.Join(dir, "palettegen")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte("seeds:\n  primary: \"#010203\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Seeds.Primary != "#010203" {
		t.Errorf("Seeds.Primary = %s, want #010203", cfg.Seeds.Primary)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)

	if _, err := Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Error("Load() should fail when an explicit config file is missing")
	}
}

func TestLoadEnv(t *testing.T) {
	isolate(t)
	t.Setenv("PALETTEGEN_SEEDS_PRIMARY", "#654321")
	t.Setenv("PALETTEGEN_OUTPUTS", "css,tailwind")

	cfg, err := Load(LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Seeds.Primary != "#654321" {
		t.Errorf("Seeds.Primary = %s, want #654321", cfg.Seeds.Primary)
	}
	if !slices.Equal(cfg.Outputs, []string{"css", "tailwind"}) {
		t.Errorf("Outputs = %v, want [css tailwind]", cfg.Outputs)
	}
}

func TestLoadEnvFile(t *testing.T) {
	isolate(t)
	// Registered so the variable is removed again after the test.
	t.Setenv("PALETTEGEN_SEEDS_ACCENT", "")
	os.Unsetenv("PALETTEGEN_SEEDS_ACCENT")

	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("PALETTEGEN_SEEDS_ACCENT=#0f0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(LoadOptions{EnvFile: envFile})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Seeds.Accent != "#0f0" {
		t.Errorf("Seeds.Accent = %s, want #0f0", cfg.Seeds.Accent)
	}

	if _, err := Load(LoadOptions{EnvFile: filepath.Join(t.TempDir(), "none.env")}); err != nil {
		t.Errorf("Load() with missing env file error = %v", err)
	}
}

func TestLoadFlagsOverride(t *testing.T) {
	isolate(t)
	t.Setenv("PALETTEGEN_SEEDS_PRIMARY", "#654321")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("primary", "", "")
	flags.String("secondary", "", "")
	flags.StringSlice("outputs", nil, "")
	if err := flags.Parse([]string{"--primary", "#111111", "--outputs", "json"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cfg, err := Load(LoadOptions{Flags: flags})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Seeds.Primary != "#111111" {
		t.Errorf("Seeds.Primary = %s, want flag value #111111", cfg.Seeds.Primary)
	}
	if cfg.Seeds.Secondary != DefaultSecondary {
		t.Errorf("Seeds.Secondary = %s, unchanged flag should not override default", cfg.Seeds.Secondary)
	}
	if !slices.Equal(cfg.Outputs, []string{"json"}) {
		t.Errorf("Outputs = %v, want [json]", cfg.Outputs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{LogLevel: "info", Preview: PreviewNever, Outputs: []string{"css"}}, false},
		{"bad level", Config{LogLevel: "loud", Preview: PreviewAuto, Outputs: []string{"css"}}, true},
		{"bad preview", Config{LogLevel: "info", Preview: "sometimes", Outputs: []string{"css"}}, true},
		{"no outputs", Config{LogLevel: "info", Preview: PreviewAuto}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
