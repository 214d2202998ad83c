package colour

import (
	"encoding/json"
	"fmt"
	"iter"
	"strings"
)

// Lightness steps applied to a seed to build its family.
const (
	stepLight    = 20
	stepLighter  = 40
	stepLightest = 60
	stepDark     = -20
	stepDarker   = -40
)

// neutralTone is a fixed saturation/lightness pair for one neutral step.
type neutralTone struct {
	s, l int
}

var (
	neutralLightest = neutralTone{10, 95}
	neutralLighter  = neutralTone{15, 85}
	neutralLight    = neutralTone{20, 75}
	neutralMedium   = neutralTone{25, 50}
	neutralDark     = neutralTone{30, 25}
	neutralDarker   = neutralTone{35, 15}
)

// statusShift derives a status colour: lightness first, then saturation.
type statusShift struct {
	lightness, saturation int
}

var (
	shiftSuccess = statusShift{10, 20}
	shiftWarning = statusShift{-10, 30}
	shiftError   = statusShift{-15, 40}
	shiftInfo    = statusShift{25, -20}
)

// Family is a base colour with its lightness variants.
type Family struct {
	Base     string `json:"base"`
	Light    string `json:"light"`
	Lighter  string `json:"lighter"`
	Lightest string `json:"lightest"`
	Dark     string `json:"dark"`
	Darker   string `json:"darker"`
}

// Neutral holds greys tinted with the primary hue.
type Neutral struct {
	White    string `json:"white"`
	Lightest string `json:"lightest"`
	Lighter  string `json:"lighter"`
	Light    string `json:"light"`
	Medium   string `json:"medium"`
	Dark     string `json:"dark"`
	Darker   string `json:"darker"`
	Black    string `json:"black"`
}

// Status holds the feedback colours.
type Status struct {
	Success string `json:"success"`
	Warning string `json:"warning"`
	Error   string `json:"error"`
	Info    string `json:"info"`
}

// Accessibility maps a surface to the text colour that reads on it.
type Accessibility struct {
	TextOnPrimary   string `json:"textOnPrimary"`
	TextOnSecondary string `json:"textOnSecondary"`
	TextOnAccent    string `json:"textOnAccent"`
	TextOnLight     string `json:"textOnLight"`
	TextOnDark      string `json:"textOnDark"`
}

// Palette is the full set of colours generated from three seeds.
// A Palette is never modified after it is built.
type Palette struct {
	Primary       Family        `json:"primary"`
	Secondary     Family        `json:"secondary"`
	Accent        Family        `json:"accent"`
	Neutral       Neutral       `json:"neutral"`
	Status        Status        `json:"status"`
	Accessibility Accessibility `json:"accessibility"`
}

// GeneratePalette validates the three seed colours, pulls each back from the
// lightness and saturation extremes and builds the palette. Any malformed
// seed fails the whole call with one *InvalidArgumentError listing every bad
// input; no colour math runs in that case.
func GeneratePalette(primary, secondary, accent string) (*Palette, error) {
	seeds := []FieldError{
		{Name: "primary", Value: primary},
		{Name: "secondary", Value: secondary},
		{Name: "accent", Value: accent},
	}

	var bad []FieldError
	for _, seed := range seeds {
		if !IsValidColour(seed.Value) {
			bad = append(bad, seed)
		}
	}
	if len(bad) > 0 {
		return nil, &InvalidArgumentError{
			Op:     "generate palette",
			Reason: "invalid colour format, use hex colours #RRGGBB or #RGB",
			Fields: bad,
		}
	}

	return BuildPalette(
		NormaliseEdgeCases(primary),
		NormaliseEdgeCases(secondary),
		NormaliseEdgeCases(accent),
	), nil
}

// BuildPalette assembles a palette from seeds that are already valid.
// Use GeneratePalette for unchecked input.
func BuildPalette(primary, secondary, accent string) *Palette {
	p := &Palette{
		Primary:   buildFamily(primary),
		Secondary: buildFamily(secondary),
		Accent:    buildFamily(accent),
		Neutral:   buildNeutral(primary),
		Status: Status{
			Success: shiftSuccess.apply(primary),
			Warning: shiftWarning.apply(secondary),
			Error:   shiftError.apply(accent),
			Info:    shiftInfo.apply(primary),
		},
	}
	p.Accessibility = buildAccessibility(p)
	return p
}

func buildFamily(base string) Family {
	return Family{
		Base:     base,
		Light:    AdjustLightness(base, stepLight),
		Lighter:  AdjustLightness(base, stepLighter),
		Lightest: AdjustLightness(base, stepLightest),
		Dark:     AdjustLightness(base, stepDark),
		Darker:   AdjustLightness(base, stepDarker),
	}
}

// buildNeutral tints fixed saturation/lightness steps with the hue of primary.
func buildNeutral(primary string) Neutral {
	var hue int
	if hsl, err := hexToHSL(primary); err == nil {
		hue = hsl.H
	}
	tone := func(t neutralTone) string {
		return hslToHex(HSL{H: hue, S: t.s, L: t.l})
	}

	return Neutral{
		White:    White,
		Lightest: tone(neutralLightest),
		Lighter:  tone(neutralLighter),
		Light:    tone(neutralLight),
		Medium:   tone(neutralMedium),
		Dark:     tone(neutralDark),
		Darker:   tone(neutralDarker),
		Black:    Black,
	}
}

func (s statusShift) apply(hex string) string {
	return AdjustSaturation(AdjustLightness(hex, s.lightness), s.saturation)
}

func buildAccessibility(p *Palette) Accessibility {
	return Accessibility{
		TextOnPrimary:   AccessibleTextColour(p.Primary.Base, DefaultTextColour),
		TextOnSecondary: AccessibleTextColour(p.Secondary.Base, DefaultTextColour),
		TextOnAccent:    AccessibleTextColour(p.Accent.Base, DefaultTextColour),
		TextOnLight:     AccessibleTextColour(p.Neutral.Lighter, DefaultTextColour),
		TextOnDark:      AccessibleTextColour(p.Neutral.Dark, DefaultTextColour),
	}
}

// All returns an iterator over every colour in the palette as
// ("group.name", hex) pairs in a fixed order.
func (p *Palette) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, group := range p.groups() {
			for _, c := range group.colours {
				if !yield(group.name+"."+c.name, c.hex) {
					return
				}
			}
		}
	}
}

// Get returns the colour for a "group.name" key as produced by All.
func (p *Palette) Get(key string) (string, bool) {
	for k, hex := range p.All() {
		if k == key {
			return hex, true
		}
	}
	return "", false
}

type namedColour struct {
	name, hex string
}

type colourGroup struct {
	name    string
	colours []namedColour
}

func (f Family) colours() []namedColour {
	return []namedColour{
		{"base", f.Base},
		{"light", f.Light},
		{"lighter", f.Lighter},
		{"lightest", f.Lightest},
		{"dark", f.Dark},
		{"darker", f.Darker},
	}
}

func (p *Palette) groups() []colourGroup {
	n, s, a := p.Neutral, p.Status, p.Accessibility
	return []colourGroup{
		{"primary", p.Primary.colours()},
		{"secondary", p.Secondary.colours()},
		{"accent", p.Accent.colours()},
		{"neutral", []namedColour{
			{"white", n.White},
			{"lightest", n.Lightest},
			{"lighter", n.Lighter},
			{"light", n.Light},
			{"medium", n.Medium},
			{"dark", n.Dark},
			{"darker", n.Darker},
			{"black", n.Black},
		}},
		{"status", []namedColour{
			{"success", s.Success},
			{"warning", s.Warning},
			{"error", s.Error},
			{"info", s.Info},
		}},
		{"accessibility", []namedColour{
			{"textOnPrimary", a.TextOnPrimary},
			{"textOnSecondary", a.TextOnSecondary},
			{"textOnAccent", a.TextOnAccent},
			{"textOnLight", a.TextOnLight},
			{"textOnDark", a.TextOnDark},
		}},
	}
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// FromJSON parses a palette written by ToJSON.
func FromJSON(data []byte) (*Palette, error) {
	var p Palette
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse palette: %w", err)
	}
	for key, hex := range p.All() {
		if _, err := HexToRGB(hex); err != nil {
			return nil, fmt.Errorf("palette colour %s: %w", key, err)
		}
	}
	return &p, nil
}

// String returns a human-readable listing of the palette.
func (p *Palette) String() string {
	return p.StringWithPreview(false)
}

// StringWithPreview lists the palette, with a colour swatch beside each
// entry when showPreview is set.
func (p *Palette) StringWithPreview(showPreview bool) string {
	var b strings.Builder
	for _, group := range p.groups() {
		fmt.Fprintf(&b, "%s:\n", group.name)
		for _, c := range group.colours {
			if showPreview {
				fmt.Fprintf(&b, "  %s\n", FormatColourWithLabel(c.hex, c.name, previewWidth))
			} else {
				fmt.Fprintf(&b, "  %-16s %s\n", c.name, c.hex)
			}
		}
	}
	return b.String()
}
