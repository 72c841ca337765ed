// Package color parses color strings against a fixed grammar table and converts
// between hex, RGB and HSL representations.
package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Format identifies which accepted grammar a color string matched.
type Format string

const (
	FormatHex3  Format = "hex3"
	FormatHex6  Format = "hex6"
	FormatHex8  Format = "hex8"
	FormatRGB   Format = "rgb"
	FormatRGBA  Format = "rgba"
	FormatHSL   Format = "hsl"
	FormatHSLA  Format = "hsla"
	FormatNamed Format = "named"
)

// Channel bounds are enforced by the patterns themselves, so a match never needs a range check.
const (
	bytePattern    = `(25[0-5]|2[0-4][0-9]|1[0-9][0-9]|[1-9]?[0-9])`
	alphaPattern   = `(0|1|0?\.[0-9]+|1\.0+)`
	huePattern     = `(360|3[0-5][0-9]|[12][0-9][0-9]|[1-9]?[0-9])`
	percentPattern = `(100|[1-9]?[0-9])%`
	sep            = `\s*,\s*`
)

var (
	hex3Pattern = regexp.MustCompile(`^#([0-9a-f]{3})$`)
	hex6Pattern = regexp.MustCompile(`^#([0-9a-f]{6})$`)
	hex8Pattern = regexp.MustCompile(`^#([0-9a-f]{8})$`)
	rgbPattern  = regexp.MustCompile(`^rgb\(\s*` + bytePattern + sep + bytePattern + sep + bytePattern + `\s*\)$`)
	rgbaPattern = regexp.MustCompile(`^rgba\(\s*` + bytePattern + sep + bytePattern + sep + bytePattern + sep + alphaPattern + `\s*\)$`)
	hslPattern  = regexp.MustCompile(`^hsl\(\s*` + huePattern + sep + percentPattern + sep + percentPattern + `\s*\)$`)
	hslaPattern = regexp.MustCompile(`^hsla\(\s*` + huePattern + sep + percentPattern + sep + percentPattern + sep + alphaPattern + `\s*\)$`)
)

// namedColors is the complete allow-list of accepted color keywords.
var namedColors = map[string]RGBColor{
	"black":        {R: 0, G: 0, B: 0},
	"white":        {R: 255, G: 255, B: 255},
	"red":          {R: 255, G: 0, B: 0},
	"green":        {R: 0, G: 128, B: 0},
	"blue":         {R: 0, G: 0, B: 255},
	"yellow":       {R: 255, G: 255, B: 0},
	"cyan":         {R: 0, G: 255, B: 255},
	"magenta":      {R: 255, G: 0, B: 255},
	"gray":         {R: 128, G: 128, B: 128},
	"grey":         {R: 128, G: 128, B: 128},
	"transparent":  {R: 0, G: 0, B: 0, A: Alpha(0)},
	"currentcolor": {R: 0, G: 0, B: 0},
}

type grammar struct {
	format  Format
	pattern *regexp.Regexp
	decode  func(value string, groups []string) (ParsedColor, error)
}

// grammars is tested in order; the first match wins.
var grammars = []grammar{
	{format: FormatHex3, pattern: hex3Pattern, decode: decodeHex},
	{format: FormatHex6, pattern: hex6Pattern, decode: decodeHex},
	{format: FormatHex8, pattern: hex8Pattern, decode: decodeHex},
	{format: FormatRGB, pattern: rgbPattern, decode: decodeRGB},
	{format: FormatRGBA, pattern: rgbaPattern, decode: decodeRGB},
	{format: FormatHSL, pattern: hslPattern, decode: decodeHSL},
	{format: FormatHSLA, pattern: hslaPattern, decode: decodeHSL},
}

// ParsedColor is a validated color string tagged with the grammar it matched.
type ParsedColor struct {
	Format Format
	// Value is the trimmed, lowercased input.
	Value string

	rgb RGBColor
	hsl *HSLColor
}

// Parse normalizes raw and matches it against the accepted grammars.
func Parse(raw string) (ParsedColor, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return ParsedColor{}, themeerrors.NewFormatError("", raw, "color is empty")
	}

	for _, g := range grammars {
		groups := g.pattern.FindStringSubmatch(value)
		if groups == nil {
			continue
		}
		parsed, err := g.decode(value, groups[1:])
		if err != nil {
			return ParsedColor{}, themeerrors.NewFormatError("", raw, err.Error())
		}
		parsed.Format = g.format
		parsed.Value = value
		return parsed, nil
	}

	if rgb, ok := namedColors[value]; ok {
		return ParsedColor{Format: FormatNamed, Value: value, rgb: rgb}, nil
	}

	return ParsedColor{}, themeerrors.NewFormatError("", raw, fmt.Sprintf("%q is not a recognised color", raw))
}

// IsValid reports whether raw matches one of the accepted grammars.
func IsValid(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// MustParse is Parse for package-level literals known to be valid.
func MustParse(raw string) ParsedColor {
	parsed, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return parsed
}

// RGB resolves the color to RGB. currentcolor has no fixed value and resolves to black.
func (p ParsedColor) RGB() RGBColor {
	return p.rgb
}

// HSL returns the color in HSL form, preserving the original values for hsl inputs.
func (p ParsedColor) HSL() HSLColor {
	if p.hsl != nil {
		return *p.hsl
	}
	return RGBToHSL(p.rgb)
}

// Hex returns the 6-digit hex form of the color, dropping any alpha.
func (p ParsedColor) Hex() string {
	return RGBToHex(RGBColor{R: p.rgb.R, G: p.rgb.G, B: p.rgb.B})
}

// Canonical re-emits the color in a fixed spelling that parses back to the same value.
func (p ParsedColor) Canonical() string {
	switch p.Format {
	case FormatHex3, FormatHex6, FormatHex8, FormatNamed:
		return p.Value
	case FormatRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", p.rgb.R, p.rgb.G, p.rgb.B)
	case FormatRGBA:
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", p.rgb.R, p.rgb.G, p.rgb.B, formatAlpha(p.rgb.A))
	case FormatHSL:
		h := p.HSL()
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h.H, h.S, h.L)
	case FormatHSLA:
		h := p.HSL()
		return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", h.H, h.S, h.L, formatAlpha(h.A))
	default:
		return p.Value
	}
}

func (p ParsedColor) String() string {
	return p.Canonical()
}

func decodeHex(value string, _ []string) (ParsedColor, error) {
	rgb, err := HexToRGB(value)
	if err != nil {
		return ParsedColor{}, err
	}
	return ParsedColor{rgb: rgb}, nil
}

func decodeRGB(_ string, groups []string) (ParsedColor, error) {
	channels := make([]int, 3)
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(groups[i])
		if err != nil {
			return ParsedColor{}, err
		}
		channels[i] = n
	}
	rgb := RGBColor{R: channels[0], G: channels[1], B: channels[2]}
	if len(groups) > 3 && groups[3] != "" {
		a, err := strconv.ParseFloat(groups[3], 64)
		if err != nil {
			return ParsedColor{}, err
		}
		rgb.A = Alpha(a)
	}
	return ParsedColor{rgb: rgb}, nil
}

func decodeHSL(_ string, groups []string) (ParsedColor, error) {
	values := make([]int, 3)
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(groups[i])
		if err != nil {
			return ParsedColor{}, err
		}
		values[i] = n
	}
	hsl := HSLColor{H: values[0], S: values[1], L: values[2]}
	if len(groups) > 3 && groups[3] != "" {
		a, err := strconv.ParseFloat(groups[3], 64)
		if err != nil {
			return ParsedColor{}, err
		}
		hsl.A = Alpha(a)
	}
	rgb := HSLToRGB(hsl)
	return ParsedColor{rgb: rgb, hsl: &hsl}, nil
}

func formatAlpha(a *float64) string {
	if a == nil {
		return "1"
	}
	return strconv.FormatFloat(*a, 'f', -1, 64)
}
