package colour

// DefaultAnalogousAngle is the hue offset used for analogous harmonies.
const DefaultAnalogousAngle = 30

// Edge-case bounds applied to palette seeds.
const (
	seedMaxLightness     = 95
	seedLightTarget      = 85
	seedMinLightness     = 5
	seedDarkTarget       = 15
	seedMinSaturation    = 10
	seedSaturationTarget = 20
)

// The transformations below share one failure policy: a colour that cannot
// be parsed is returned unchanged so a single bad value does not abort the
// computation around it.

// AdjustLightness adds amount (-100..100) to the HSL lightness of hex.
// Result is clamped to [0, 100].
func AdjustLightness(hex string, amount int) string {
	hsl, err := hexToHSL(hex)
	if err != nil {
		return hex
	}
	hsl.L = clampInt(hsl.L+amount, 0, 100)
	return hslToHex(hsl)
}

// AdjustSaturation adds amount (-100..100) to the HSL saturation of hex.
// Result is clamped to [0, 100].
func AdjustSaturation(hex string, amount int) string {
	hsl, err := hexToHSL(hex)
	if err != nil {
		return hex
	}
	hsl.S = clampInt(hsl.S+amount, 0, 100)
	return hslToHex(hsl)
}

// Complementary rotates the hue of hex by 180 degrees.
func Complementary(hex string) string {
	hsl, err := hexToHSL(hex)
	if err != nil {
		return hex
	}
	hsl.H = (hsl.H + 180) % 360
	return hslToHex(hsl)
}

// Analogous returns the colours at hue offsets -angle, 0 and +angle, in that
// order. An unparseable hex yields a single-element slice holding hex.
func Analogous(hex string, angle int) []string {
	hsl, err := hexToHSL(hex)
	if err != nil {
		return []string{hex}
	}

	colours := make([]string, 0, 3)
	for i := -1; i <= 1; i++ {
		shifted := hsl
		shifted.H = wrapHue(hsl.H + angle*i)
		colours = append(colours, hslToHex(shifted))
	}
	return colours
}

// NormaliseEdgeCases pulls a seed colour back from the extremes: lightness
// above 95 drops to 85, below 5 rises to 15, and saturation under 10 rises
// to 20. A colour needing no correction is returned as normalised hex.
func NormaliseEdgeCases(hex string) string {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return hex
	}

	hsl := RGBToHSL(rgb.R, rgb.G, rgb.B)
	adjusted := hsl

	if adjusted.L > seedMaxLightness {
		adjusted.L = seedLightTarget
	}
	if adjusted.L < seedMinLightness {
		adjusted.L = seedDarkTarget
	}
	if adjusted.S < seedMinSaturation {
		adjusted.S = seedSaturationTarget
	}

	if adjusted == hsl {
		return rgb.Hex()
	}
	return hslToHex(adjusted)
}

// HueDistance calculates the angular distance between two hues on the color wheel.
// Returns a value between 0 and 180 degrees (shortest path around the wheel).
func HueDistance(h1, h2 int) int {
	diff := wrapHue(h1 - h2)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// wrapHue maps any angle into [0, 360).
func wrapHue(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}
