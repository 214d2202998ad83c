package colour

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestGeneratePalette(t *testing.T) {
	p, err := GeneratePalette("#228B22", "#FFD700", "#8B0000")
	if err != nil {
		t.Fatalf("GeneratePalette() error = %v", err)
	}

	if p.Primary.Base != "#228b22" {
		t.Errorf("Primary.Base = %s, want #228b22", p.Primary.Base)
	}
	if p.Secondary.Base != "#ffd700" {
		t.Errorf("Secondary.Base = %s, want #ffd700", p.Secondary.Base)
	}
	if p.Accent.Base != "#8b0000" {
		t.Errorf("Accent.Base = %s, want #8b0000", p.Accent.Base)
	}

	wantAccent := Family{
		Base:     "#8b0000",
		Light:    "#f00000",
		Lighter:  AdjustLightness("#8b0000", 40),
		Lightest: "#ffbdbd",
		Dark:     "#240000",
		Darker:   "#000000",
	}
	if p.Accent != wantAccent {
		t.Errorf("Accent = %+v, want %+v", p.Accent, wantAccent)
	}

	if p.Status.Error == p.Accent.Base {
		t.Error("Status.Error should differ from Accent.Base")
	}
	if p.Status.Error != "#3d0000" {
		t.Errorf("Status.Error = %s, want #3d0000", p.Status.Error)
	}

	// Forest green reaches 4.78:1 against black, so black is kept.
	if p.Accessibility.TextOnPrimary != Black {
		t.Errorf("TextOnPrimary = %s, want %s", p.Accessibility.TextOnPrimary, Black)
	}
	if p.Accessibility.TextOnSecondary != Black {
		t.Errorf("TextOnSecondary = %s, want %s", p.Accessibility.TextOnSecondary, Black)
	}
	if p.Accessibility.TextOnAccent != White {
		t.Errorf("TextOnAccent = %s, want %s", p.Accessibility.TextOnAccent, White)
	}
	if p.Accessibility.TextOnDark != White {
		t.Errorf("TextOnDark = %s, want %s", p.Accessibility.TextOnDark, White)
	}
	if p.Accessibility.TextOnLight != Black {
		t.Errorf("TextOnLight = %s, want %s", p.Accessibility.TextOnLight, Black)
	}
}

func TestGeneratePaletteNeutralUsesPrimaryHue(t *testing.T) {
	p, err := GeneratePalette("#228B22", "#FFD700", "#8B0000")
	if err != nil {
		t.Fatalf("GeneratePalette() error = %v", err)
	}

	if p.Neutral.White != White || p.Neutral.Black != Black {
		t.Errorf("Neutral endpoints = %s/%s, want %s/%s", p.Neutral.White, p.Neutral.Black, White, Black)
	}
	if p.Neutral.Medium != "#609f60" {
		t.Errorf("Neutral.Medium = %s, want #609f60", p.Neutral.Medium)
	}
	if p.Neutral.Dark != "#2d532d" {
		t.Errorf("Neutral.Dark = %s, want #2d532d", p.Neutral.Dark)
	}

	for _, hex := range []string{p.Neutral.Lightest, p.Neutral.Lighter, p.Neutral.Light, p.Neutral.Darker} {
		hsl, err := hexToHSL(hex)
		if err != nil {
			t.Fatalf("neutral %q is not a colour", hex)
		}
		if HueDistance(hsl.H, 120) > 3 {
			t.Errorf("neutral %s hue = %d, want about 120", hex, hsl.H)
		}
	}
}

func TestGeneratePaletteStatusOrder(t *testing.T) {
	p, err := GeneratePalette("#228B22", "#FFD700", "#8B0000")
	if err != nil {
		t.Fatalf("GeneratePalette() error = %v", err)
	}

	want := Status{
		Success: AdjustSaturation(AdjustLightness("#228b22", 10), 20),
		Warning: AdjustSaturation(AdjustLightness("#ffd700", -10), 30),
		Error:   AdjustSaturation(AdjustLightness("#8b0000", -15), 40),
		Info:    AdjustSaturation(AdjustLightness("#228b22", 25), -20),
	}
	if p.Status != want {
		t.Errorf("Status = %+v, want %+v", p.Status, want)
	}
}

func TestGeneratePaletteNormalisesSeeds(t *testing.T) {
	p, err := GeneratePalette("#fff", "#000", "#808080")
	if err != nil {
		t.Fatalf("GeneratePalette() error = %v", err)
	}

	for name, hex := range map[string]string{
		"primary":   p.Primary.Base,
		"secondary": p.Secondary.Base,
		"accent":    p.Accent.Base,
	} {
		hsl, _ := hexToHSL(hex)
		if hsl.L > 95 || hsl.L < 5 {
			t.Errorf("%s base %s lightness = %d, want within [5, 95]", name, hex, hsl.L)
		}
		if hsl.S < 10 {
			t.Errorf("%s base %s saturation = %d, want >= 10", name, hex, hsl.S)
		}
	}
}

func TestGeneratePaletteInvalid(t *testing.T) {
	tests := []struct {
		name       string
		seeds      [3]string
		wantFields []string
	}{
		{"bad primary", [3]string{"not-a-color", "#FFD700", "#8B0000"}, []string{"primary"}},
		{"missing hash", [3]string{"#228B22", "FFD700", "#8B0000"}, []string{"secondary"}},
		{"all bad", [3]string{"", "#12345", "red"}, []string{"primary", "secondary", "accent"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := GeneratePalette(tt.seeds[0], tt.seeds[1], tt.seeds[2])
			if p != nil {
				t.Errorf("GeneratePalette() returned a palette alongside an error")
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("GeneratePalette() error = %v, want ErrInvalidArgument", err)
			}

			var argErr *InvalidArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("GeneratePalette() error type = %T, want *InvalidArgumentError", err)
			}
			if len(argErr.Fields) != len(tt.wantFields) {
				t.Fatalf("Fields = %+v, want %v", argErr.Fields, tt.wantFields)
			}
			for i, name := range tt.wantFields {
				if argErr.Fields[i].Name != name {
					t.Errorf("Fields[%d] = %s, want %s", i, argErr.Fields[i].Name, name)
				}
				if !strings.Contains(err.Error(), name) {
					t.Errorf("Error() = %q, should name %s", err.Error(), name)
				}
			}
		})
	}
}

func TestPaletteAll(t *testing.T) {
	p := BuildPalette("#228b22", "#ffd700", "#8b0000")

	count := 0
	var first string
	for key := range p.All() {
		if count == 0 {
			first = key
		}
		count++
	}

	// 3 families of 6, 8 neutrals, 4 status, 5 accessibility entries.
	if count != 35 {
		t.Errorf("All() yielded %d colours, want 35", count)
	}
	if first != "primary.base" {
		t.Errorf("All() first key = %s, want primary.base", first)
	}

	if got, ok := p.Get("status.error"); !ok || got != p.Status.Error {
		t.Errorf("Get(status.error) = %s, %v", got, ok)
	}
	if _, ok := p.Get("status.unknown"); ok {
		t.Error("Get(status.unknown) should not be found")
	}
}

func TestPaletteJSON(t *testing.T) {
	p := BuildPalette("#228b22", "#ffd700", "#8b0000")

	data, err := p.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var raw map[string]map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("ToJSON() produced invalid JSON: %v", err)
	}
	if raw["accessibility"]["textOnPrimary"] != p.Accessibility.TextOnPrimary {
		t.Errorf("accessibility.textOnPrimary = %q", raw["accessibility"]["textOnPrimary"])
	}

	back, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if *back != *p {
		t.Errorf("FromJSON(ToJSON()) = %+v, want %+v", back, p)
	}

	if _, err := FromJSON([]byte(`{"primary":{"base":"nope"}}`)); err == nil {
		t.Error("FromJSON() should reject invalid colours")
	}
}

func TestPaletteString(t *testing.T) {
	p := BuildPalette("#228b22", "#ffd700", "#8b0000")
	out := p.String()

	for _, want := range []string{"primary:", "neutral:", "status:", "accessibility:", "#228b22", "textOnAccent"} {
		if !strings.Contains(out, want) {
			t.Errorf("String() should contain %q", want)
		}
	}
}
