// Package common provides shared utilities for output plugins.
package common

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/telugudelicacies/palettegen/internal/colour"
)

// TemplateFuncs returns standard template functions for all output plugins.
// Every colour function takes a hex string so it can be piped from a
// palette field: {{ .Primary.Base | rgb }}.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		// Format conversion.
		"hex":       hexFunc,
		"hexNoHash": hexNoHashFunc,
		"rgb":       rgbFunc,
		"rgbSpaces": rgbSpacesFunc,
		"hsl":       hslFunc,
		"hslSpaces": hslSpacesFunc,

		// Accessibility.
		"textOn":   textOnFunc,
		"contrast": contrastFunc,

		// String manipulation (custom wrappers for pipe-friendly argument order).
		"trimPrefix": trimPrefixFunc,
		"replace":    replaceFunc,
		"toLower":    strings.ToLower,
		"toUpper":    strings.ToUpper,
	}
}

// hexFunc normalises a colour to #rrggbb. Invalid input is returned unchanged.
func hexFunc(hex string) string {
	if n, err := colour.NormaliseHex(hex); err == nil {
		return n
	}
	return hex
}

// hexNoHashFunc returns color in rrggbb format (no # prefix).
func hexNoHashFunc(hex string) string {
	return strings.TrimPrefix(hexFunc(hex), "#")
}

// rgbFunc returns color in CSS rgb(r, g, b) format.
func rgbFunc(hex string) (string, error) {
	rgb, err := colour.HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return rgb.String(), nil
}

// rgbSpacesFunc returns color in "r g b" format, as used by CSS colour
// channels in Tailwind (rgb(var(--x) / <alpha-value>)).
func rgbSpacesFunc(hex string) (string, error) {
	rgb, err := colour.HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %d %d", rgb.R, rgb.G, rgb.B), nil
}

// hslFunc returns color in CSS hsl(h, s%, l%) format.
func hslFunc(hex string) (string, error) {
	rgb, err := colour.HexToRGB(hex)
	if err != nil {
		return "", err
	}
	return colour.RGBToHSL(rgb.R, rgb.G, rgb.B).String(), nil
}

// hslSpacesFunc returns color in "h s% l%" format (shadcn/ui variables).
func hslSpacesFunc(hex string) (string, error) {
	rgb, err := colour.HexToRGB(hex)
	if err != nil {
		return "", err
	}
	hsl := colour.RGBToHSL(rgb.R, rgb.G, rgb.B)
	return fmt.Sprintf("%d %d%% %d%%", hsl.H, hsl.S, hsl.L), nil
}

// textOnFunc returns the readable text colour for a background.
func textOnFunc(background string) string {
	return colour.AccessibleTextColour(background, colour.DefaultTextColour)
}

// contrastFunc returns the contrast ratio of two colours to two decimals.
func contrastFunc(a, b string) (string, error) {
	ratio, err := colour.ContrastRatioHex(a, b)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%.2f", ratio), nil
}

// trimPrefixFunc removes a prefix from a string (pipe-friendly argument order).
// Unlike strings.TrimPrefix, this takes prefix first so it works in pipes:
//
//	{{ value | trimPrefix "#" }}
func trimPrefixFunc(prefix, s string) string {
	return strings.TrimPrefix(s, prefix)
}

// replaceFunc replaces all occurrences of old with new (pipe-friendly argument order).
//
//	{{ value | replace "_" "-" }}
func replaceFunc(old, new, s string) string {
	return strings.ReplaceAll(s, old, new)
}
