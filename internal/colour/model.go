// Package colour provides colour conversion, WCAG contrast evaluation and
// palette generation from three seed colours.
package colour

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// hexDigits matches a bare 6-digit hex colour.
	hexDigits = regexp.MustCompile(`^(?i)[0-9a-f]{6}$`)

	// hexColour matches the accepted user-facing forms, #RGB and #RRGGBB.
	hexColour = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
)

// RGB represents a colour as 8-bit channels held in ints.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return RGBToHex(float64(rgb.R), float64(rgb.G), float64(rgb.B))
}

// HSL represents a colour as hue in degrees [0,360) and saturation and
// lightness as whole percentages [0,100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// String returns the colour in CSS hsl() notation.
func (hsl HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hsl.H, hsl.S, hsl.L)
}

// IsValidColour reports whether value is written as #RGB or #RRGGBB.
func IsValidColour(value string) bool {
	return hexColour.MatchString(value)
}

// HexToRGB parses a hex colour. The leading # is optional and the 3-digit
// shorthand is expanded by doubling each digit.
func HexToRGB(hex string) (RGB, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) == 3 {
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	}

	if !hexDigits.MatchString(digits) {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColour, hex)
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColour, hex)
	}

	return RGB{
		R: int(v >> 16 & 0xff),
		G: int(v >> 8 & 0xff),
		B: int(v & 0xff),
	}, nil
}

// NormaliseHex returns hex as lowercase #rrggbb.
func NormaliseHex(hex string) (string, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return rgb.Hex(), nil
}

// RGBToHex rounds and clamps each channel to [0,255] and renders #rrggbb.
func RGBToHex(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(r), channel(g), channel(b))
}

// RGBToHSL converts RGB to HSL, rounding every component to an integer.
func RGBToHSL(r, g, b int) HSL {
	h, s, l := rgbToHSLf(r, g, b)
	return HSL{
		H: int(round(h)) % 360,
		S: int(round(s)),
		L: int(round(l)),
	}
}

// rgbToHSLf converts RGB to HSL without rounding.
// Returns hue (0-360), saturation (0-100), lightness (0-100).
func rgbToHSLf(r, g, b int) (h, s, l float64) {
	rf := float64(clampInt(r, 0, 255)) / 255.0
	gf := float64(clampInt(g, 0, 255)) / 255.0
	bf := float64(clampInt(b, 0, 255)) / 255.0

	maxVal := math.Max(rf, math.Max(gf, bf))
	minVal := math.Min(rf, math.Min(gf, bf))
	delta := maxVal - minVal
	sum := maxVal + minVal

	l = sum / 2

	// Achromatic.
	if delta == 0 {
		return 0, 0, l * 100
	}

	if l > 0.5 {
		s = delta / (2 - sum)
	} else {
		s = delta / sum
	}

	switch maxVal {
	case rf:
		h = (gf - bf) / delta
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/delta + 2
	default:
		h = (rf-gf)/delta + 4
	}

	return h * 60, s * 100, l * 100
}

// HSLToRGB converts HSL to RGB. Hue wraps modulo 360; saturation and
// lightness are clamped to [0,100].
func HSLToRGB(h, s, l float64) RGB {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	hf := h / 360
	sf := clamp(s, 0, 100) / 100
	lf := clamp(l, 0, 100) / 100

	if sf == 0 {
		v := channel(lf * 255)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if lf < 0.5 {
		q = lf * (1 + sf)
	} else {
		q = lf + sf - lf*sf
	}
	p := 2*lf - q

	return RGB{
		R: channel(hueToRGB(p, q, hf+1.0/3) * 255),
		G: channel(hueToRGB(p, q, hf) * 255),
		B: channel(hueToRGB(p, q, hf-1.0/3) * 255),
	}
}

// hueToRGB is a helper for HSL to RGB conversion. t is a hue fraction.
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// hexToHSL parses hex and converts it to rounded HSL.
func hexToHSL(hex string) (HSL, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(rgb.R, rgb.G, rgb.B), nil
}

// hslToHex converts HSL to #rrggbb.
func hslToHex(hsl HSL) string {
	return HSLToRGB(float64(hsl.H), float64(hsl.S), float64(hsl.L)).Hex()
}

// round rounds half up, so 127.5 becomes 128 and -0.5 becomes 0.
func round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// channel rounds v and clamps it to a valid 8-bit channel.
func channel(v float64) int {
	return int(round(clamp(v, 0, 255)))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
