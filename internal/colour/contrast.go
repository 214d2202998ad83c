package colour

import (
	"math"
	"strings"
)

// Level is a WCAG conformance level.
type Level string

// TextSize selects the normal or large text thresholds.
type TextSize string

const (
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"

	SizeNormal TextSize = "normal"
	SizeLarge  TextSize = "large"
)

const (
	// White and Black are the fallback text colours.
	White = "#ffffff"
	Black = "#000000"

	// DefaultTextColour is the preferred text colour when none is given.
	DefaultTextColour = Black
)

// thresholds holds the minimum WCAG 2.x contrast ratios keyed by
// LEVEL_SIZE. It is never written after initialisation.
var thresholds = map[string]float64{
	"AA_NORMAL":  4.5,
	"AA_LARGE":   3.0,
	"AAA_NORMAL": 7.0,
	"AAA_LARGE":  4.5,
}

// ContrastResult is the outcome of an accessibility check.
type ContrastResult struct {
	Ratio     float64  `json:"ratio"`
	Threshold float64  `json:"threshold"`
	Passes    bool     `json:"passes"`
	Level     Level    `json:"level"`
	Size      TextSize `json:"size"`
}

// Threshold returns the minimum contrast ratio for level and size.
// Both are matched case-insensitively.
func Threshold(level Level, size TextSize) (float64, error) {
	key := strings.ToUpper(string(level)) + "_" + strings.ToUpper(string(size))
	t, ok := thresholds[key]
	if !ok {
		return 0, &InvalidArgumentError{
			Op:     "threshold",
			Reason: "unknown accessibility level/size",
			Fields: []FieldError{{Name: "level_size", Value: key}},
		}
	}
	return t, nil
}

// RelativeLuminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(rgb RGB) float64 {
	r := linearise(float64(rgb.R) / 255.0)
	g := linearise(float64(rgb.G) / 255.0)
	b := linearise(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearise converts a gamma-encoded sRGB component to linear light.
func linearise(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(a, b RGB) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastRatioHex is ContrastRatio for hex colours.
func ContrastRatioHex(a, b string) (float64, error) {
	ra, err := HexToRGB(a)
	if err != nil {
		return 0, err
	}
	rb, err := HexToRGB(b)
	if err != nil {
		return 0, err
	}
	return ContrastRatio(ra, rb), nil
}

// CheckAccessibility checks whether fg on bg meets the threshold for level
// and size.
func CheckAccessibility(fg, bg string, level Level, size TextSize) (ContrastResult, error) {
	threshold, err := Threshold(level, size)
	if err != nil {
		return ContrastResult{}, err
	}

	var bad []FieldError
	fgRGB, err := HexToRGB(fg)
	if err != nil {
		bad = append(bad, FieldError{Name: "foreground", Value: fg})
	}
	bgRGB, err := HexToRGB(bg)
	if err != nil {
		bad = append(bad, FieldError{Name: "background", Value: bg})
	}
	if len(bad) > 0 {
		return ContrastResult{}, &InvalidArgumentError{
			Op:     "check accessibility",
			Reason: "invalid colour format",
			Fields: bad,
		}
	}

	ratio := ContrastRatio(fgRGB, bgRGB)
	return ContrastResult{
		Ratio:     ratio,
		Threshold: threshold,
		Passes:    ratio >= threshold,
		Level:     Level(strings.ToUpper(string(level))),
		Size:      TextSize(strings.ToLower(string(size))),
	}, nil
}

// AccessibleTextColour picks a text colour for background. preferred is kept
// when it reaches the AA normal-text ratio; otherwise white or black is
// returned, whichever contrasts more, with black winning ties.
// An unparseable background leaves preferred untouched.
func AccessibleTextColour(background, preferred string) string {
	bg, err := HexToRGB(background)
	if err != nil {
		return preferred
	}

	if pref, err := HexToRGB(preferred); err == nil {
		if ContrastRatio(pref, bg) >= thresholds["AA_NORMAL"] {
			return preferred
		}
	}

	white := ContrastRatio(RGB{R: 255, G: 255, B: 255}, bg)
	black := ContrastRatio(RGB{}, bg)
	if white > black {
		return White
	}
	return Black
}
