package colour

import (
	"slices"
	"testing"
)

func TestAdjustLightness(t *testing.T) {
	tests := []struct {
		name   string
		hex    string
		amount int
		want   string
	}{
		{"white stays white", "#ffffff", 50, "#ffffff"},
		{"black stays black", "#000000", -50, "#000000"},
		{"dark red lighter", "#8b0000", 20, "#f00000"},
		{"dark red darker", "#8b0000", -20, "#240000"},
		{"dark red clamps to black", "#8b0000", -40, "#000000"},
		{"dark red lightest", "#8b0000", 60, "#ffbdbd"},
		{"zero keeps colour", "#ff0000", 0, "#ff0000"},
		{"invalid passes through", "oops", 20, "oops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdjustLightness(tt.hex, tt.amount); got != tt.want {
				t.Errorf("AdjustLightness(%s, %d) = %s, want %s", tt.hex, tt.amount, got, tt.want)
			}
		})
	}
}

func TestAdjustSaturation(t *testing.T) {
	tests := []struct {
		name   string
		hex    string
		amount int
		want   string
	}{
		{"fully saturated clamps", "#ff0000", 40, "#ff0000"},
		{"desaturate to grey", "#ff0000", -100, "#808080"},
		{"grey stays grey at zero", "#808080", 0, "#808080"},
		{"invalid passes through", "#12", 10, "#12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdjustSaturation(tt.hex, tt.amount); got != tt.want {
				t.Errorf("AdjustSaturation(%s, %d) = %s, want %s", tt.hex, tt.amount, got, tt.want)
			}
		})
	}
}

func TestComplementary(t *testing.T) {
	if got := Complementary("#ff0000"); got != "#00ffff" {
		t.Errorf("Complementary(#ff0000) = %s, want #00ffff", got)
	}
	if got := Complementary("bad"); got != "bad" {
		t.Errorf("Complementary(bad) = %s, want bad", got)
	}
}

func TestComplementaryInvolution(t *testing.T) {
	for _, hex := range []string{"#ff0000", "#228b22", "#ffd700", "#8b0000", "#3366cc", "#9933ff"} {
		t.Run(hex, func(t *testing.T) {
			back := Complementary(Complementary(hex))

			orig, _ := hexToHSL(hex)
			got, _ := hexToHSL(back)
			if d := HueDistance(orig.H, got.H); d > 1 {
				t.Errorf("Complementary twice of %s = %s, hue %d vs %d", hex, back, got.H, orig.H)
			}
		})
	}
}

func TestAnalogous(t *testing.T) {
	got := Analogous("#ff0000", 120)
	want := []string{"#0000ff", "#ff0000", "#00ff00"}
	if !slices.Equal(got, want) {
		t.Errorf("Analogous(#ff0000, 120) = %v, want %v", got, want)
	}

	def := Analogous("#228b22", DefaultAnalogousAngle)
	if len(def) != 3 {
		t.Fatalf("Analogous() returned %d colours, want 3", len(def))
	}
	// The middle colour goes through integer HSL, which nudges green by one.
	if def[1] != "#228c22" {
		t.Errorf("Analogous() middle = %s, want #228c22", def[1])
	}
	hues := make([]int, len(def))
	for i, hex := range def {
		hsl, _ := hexToHSL(hex)
		hues[i] = hsl.H
	}
	if HueDistance(hues[0], 90) > 1 || HueDistance(hues[2], 150) > 1 {
		t.Errorf("Analogous() hues = %v, want about [90 120 150]", hues)
	}

	if got := Analogous("nope", 30); !slices.Equal(got, []string{"nope"}) {
		t.Errorf("Analogous(nope) = %v, want [nope]", got)
	}
}

func TestNormaliseEdgeCases(t *testing.T) {
	tests := []struct {
		name          string
		hex           string
		wantLightness int
		wantMinSat    int
	}{
		{"white darkened", "#ffffff", 85, 20},
		{"black lightened", "#000000", 15, 20},
		{"grey saturated", "#808080", 50, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormaliseEdgeCases(tt.hex)
			hsl, err := hexToHSL(got)
			if err != nil {
				t.Fatalf("NormaliseEdgeCases(%s) = %q, not a colour", tt.hex, got)
			}
			if hsl.L != tt.wantLightness {
				t.Errorf("NormaliseEdgeCases(%s) lightness = %d, want %d", tt.hex, hsl.L, tt.wantLightness)
			}
			if hsl.S < tt.wantMinSat-1 {
				t.Errorf("NormaliseEdgeCases(%s) saturation = %d, want about %d", tt.hex, hsl.S, tt.wantMinSat)
			}
		})
	}
}

func TestNormaliseEdgeCasesLeavesSafeColours(t *testing.T) {
	tests := map[string]string{
		"#228B22": "#228b22",
		"#FFD700": "#ffd700",
		"#8B0000": "#8b0000",
		"#f80":    "#ff8800",
	}
	for in, want := range tests {
		if got := NormaliseEdgeCases(in); got != want {
			t.Errorf("NormaliseEdgeCases(%s) = %s, want %s", in, got, want)
		}
	}

	if got := NormaliseEdgeCases("garbage"); got != "garbage" {
		t.Errorf("NormaliseEdgeCases(garbage) = %s, want garbage", got)
	}
}

func TestHueDistance(t *testing.T) {
	tests := []struct {
		h1, h2, want int
	}{
		{0, 10, 10},
		{350, 10, 20},
		{0, 180, 180},
		{90, 300, 150},
	}
	for _, tt := range tests {
		if got := HueDistance(tt.h1, tt.h2); got != tt.want {
			t.Errorf("HueDistance(%d, %d) = %d, want %d", tt.h1, tt.h2, got, tt.want)
		}
	}
}
