package audit

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/contrast"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

const lightnessStep = 0.005

// Suggestion proposes a replacement foreground for a failing pair.
type Suggestion struct {
	Role      theme.Role      `json:"role"`
	Against   theme.Role      `json:"against"`
	Current   string          `json:"current"`
	Suggested string          `json:"suggested"`
	Contrast  contrast.Result `json:"contrast"`
}

// Suggest returns the foreground closest in CIE lightness to fg, keeping its hue and
// chroma, that reaches AA against bg. It returns false when fg or bg does not parse
// or when no lightness in range reaches AA.
func Suggest(fg, bg string) (string, bool) {
	return suggestAgainst(fg, bg)
}

// suggestAgainst is Suggest with a foreground that must reach AA against every
// one of backgrounds at once.
func suggestAgainst(fg string, backgrounds ...string) (string, bool) {
	fgParsed, err := color.Parse(fg)
	if err != nil {
		return "", false
	}
	bgs := make([]color.RGBColor, 0, len(backgrounds))
	for _, bg := range backgrounds {
		parsed, err := color.Parse(bg)
		if err != nil {
			return "", false
		}
		bgs = append(bgs, parsed.RGB())
	}

	if meetsAAAgainstAll(fgParsed.RGB(), bgs) {
		return fgParsed.Hex(), true
	}

	h, c, l := toColorful(fgParsed.RGB()).Hcl()
	for delta := lightnessStep; delta <= 1; delta += lightnessStep {
		for _, candidate := range []float64{l - delta, l + delta} {
			if candidate < 0 || candidate > 1 {
				continue
			}
			rgb := fromColorful(colorful.Hcl(h, c, candidate).Clamped())
			if meetsAAAgainstAll(rgb, bgs) {
				return color.RGBToHex(rgb), true
			}
		}
	}
	return "", false
}

func meetsAAAgainstAll(fg color.RGBColor, bgs []color.RGBColor) bool {
	for _, bg := range bgs {
		if !contrast.EvaluateRGB(fg, bg).MeetsAA {
			return false
		}
	}
	return true
}

// SuggestFixes proposes one foreground replacement per failing role. A replacement
// reaches AA against every critical background of its role, so applying it never
// trades one failing pair for another. Against names the background the replacement
// contrasts least with. Roles with no such replacement get no suggestion.
func SuggestFixes(t theme.Theme) []Suggestion {
	report := Audit(t)
	suggestions := make([]Suggestion, 0, len(report.Issues))
	seen := make(map[theme.Role]bool)

	for _, issue := range report.Issues {
		role := theme.Role(issue.Pair[0])
		if seen[role] {
			continue
		}
		seen[role] = true

		backgrounds := criticalBackgrounds(role)
		values := make([]string, 0, len(backgrounds))
		for _, bg := range backgrounds {
			values = append(values, t.Colors.Get(bg))
		}
		suggested, ok := suggestAgainst(t.Colors.Get(role), values...)
		if !ok {
			continue
		}
		against := worstBackground(t, suggested, backgrounds)
		suggestions = append(suggestions, Suggestion{
			Role:      role,
			Against:   against,
			Current:   t.Colors.Get(role),
			Suggested: suggested,
			Contrast:  contrast.Evaluate(suggested, t.Colors.Get(against)),
		})
	}
	return suggestions
}

// criticalBackgrounds lists the backgrounds role is paired with in CriticalPairs.
func criticalBackgrounds(role theme.Role) []theme.Role {
	var out []theme.Role
	for _, pair := range CriticalPairs {
		if pair.Foreground == role {
			out = append(out, pair.Background)
		}
	}
	return out
}

// worstBackground picks the background among candidates with the lowest contrast against fg.
func worstBackground(t theme.Theme, fg string, candidates []theme.Role) theme.Role {
	worst := theme.RoleBackground
	lowest := math.Inf(1)
	for _, bg := range candidates {
		ratio := contrast.Ratio(fg, t.Colors.Get(bg))
		if ratio < lowest {
			lowest = ratio
			worst = bg
		}
	}
	return worst
}

func toColorful(c color.RGBColor) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) color.RGBColor {
	r, g, b := c.RGB255()
	return color.RGBColor{R: int(r), G: int(g), B: int(b)}
}
