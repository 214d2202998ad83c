package colour

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const (
	defaultWidth = 8
	previewWidth = 10
)

// ColourPreview returns a solid swatch of width cells for hex.
// Output is plain spaces when colour is disabled (NO_COLOR or no TTY).
func ColourPreview(hex string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	block := strings.Repeat(" ", width)
	rgb, err := HexToRGB(hex)
	if err != nil {
		return block
	}
	return color.BgRGB(rgb.R, rgb.G, rgb.B).Sprint(block)
}

// ColourPreviewWithText returns a swatch with text centred on it, drawn in
// whichever text colour reads on hex.
func ColourPreviewWithText(hex, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	bg, err := HexToRGB(hex)
	if err != nil {
		return displayText
	}
	fg, _ := HexToRGB(AccessibleTextColour(hex, DefaultTextColour))

	return color.BgRGB(bg.R, bg.G, bg.B).AddRGB(fg.R, fg.G, fg.B).Sprint(displayText)
}

// FormatColourWithPreview formats a colour with its preview and hex code.
func FormatColourWithPreview(hex string, width int) string {
	return fmt.Sprintf("%s %s", ColourPreview(hex, width), hex)
}

// FormatColourWithLabel formats a colour with a label and preview.
func FormatColourWithLabel(hex, label string, width int) string {
	return fmt.Sprintf("%s  %-16s %s", ColourPreview(hex, width), label, hex)
}
