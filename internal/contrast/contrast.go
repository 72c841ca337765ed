// Package contrast computes WCAG relative luminance and contrast ratios.
package contrast

import (
	"math"

	"github.com/alexisbeaulieu97/themekit/internal/color"
)

// Grade is the WCAG conformance level a contrast ratio reaches.
type Grade string

const (
	GradeAAA  Grade = "AAA"
	GradeAA   Grade = "AA"
	GradeFail Grade = "Fail"
)

// WCAG thresholds for normal-size text.
const (
	ThresholdAA  = 4.5
	ThresholdAAA = 7.0
)

// Result describes the contrast between a foreground and a background color.
type Result struct {
	Ratio    float64 `json:"ratio"`
	MeetsAA  bool    `json:"meetsAA"`
	MeetsAAA bool    `json:"meetsAAA"`
	Grade    Grade   `json:"grade"`
}

var (
	fallbackForeground = color.RGBColor{R: 0, G: 0, B: 0}
	fallbackBackground = color.RGBColor{R: 255, G: 255, B: 255}
)

// Evaluate compares two color strings. It never fails: an unparseable foreground is
// treated as opaque black and an unparseable background as opaque white.
func Evaluate(foreground, background string) Result {
	fg := fallbackForeground
	if parsed, err := color.Parse(foreground); err == nil {
		fg = parsed.RGB()
	}
	bg := fallbackBackground
	if parsed, err := color.Parse(background); err == nil {
		bg = parsed.RGB()
	}
	return EvaluateRGB(fg, bg)
}

// EvaluateRGB grades the contrast between two resolved colors. Alpha is ignored.
func EvaluateRGB(foreground, background color.RGBColor) Result {
	ratio := RatioRGB(foreground, background)
	return Result{
		Ratio:    ratio,
		MeetsAA:  ratio >= ThresholdAA,
		MeetsAAA: ratio >= ThresholdAAA,
		Grade:    GradeFor(ratio),
	}
}

// Ratio returns the contrast ratio between two color strings using the same fallbacks as Evaluate.
func Ratio(a, b string) float64 {
	return Evaluate(a, b).Ratio
}

// RatioRGB returns (lighter + 0.05) / (darker + 0.05), which is symmetric in its arguments.
func RatioRGB(a, b color.RGBColor) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)
	lighter := math.Max(l1, l2)
	darker := math.Min(l1, l2)
	return (lighter + 0.05) / (darker + 0.05)
}

// GradeFor maps a ratio onto AAA, AA or Fail.
func GradeFor(ratio float64) Grade {
	switch {
	case ratio >= ThresholdAAA:
		return GradeAAA
	case ratio >= ThresholdAA:
		return GradeAA
	default:
		return GradeFail
	}
}

// RelativeLuminance weights the linearized sRGB channels with the BT.709 coefficients.
func RelativeLuminance(c color.RGBColor) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

func linearize(channel int) float64 {
	v := math.Max(0, math.Min(255, float64(channel))) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
