package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGBColor holds 8-bit channels and an optional alpha in [0,1].
type RGBColor struct {
	R int      `json:"r"`
	G int      `json:"g"`
	B int      `json:"b"`
	A *float64 `json:"a,omitempty"`
}

// HSLColor holds hue in degrees, saturation and lightness in percent, and an optional alpha.
type HSLColor struct {
	H int      `json:"h"`
	S int      `json:"s"`
	L int      `json:"l"`
	A *float64 `json:"a,omitempty"`
}

// Alpha returns a pointer to a, for populating the optional alpha fields.
func Alpha(a float64) *float64 {
	return &a
}

// HexToRGB parses #rgb, #rrggbb or #rrggbbaa (the leading # is optional).
func HexToRGB(hex string) (RGBColor, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	switch len(digits) {
	case 3:
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	case 6, 8:
	default:
		return RGBColor{}, fmt.Errorf("hex color %q must have 3, 6 or 8 digits", hex)
	}

	bytes := make([]int, 0, 4)
	for i := 0; i < len(digits); i += 2 {
		n, err := strconv.ParseUint(digits[i:i+2], 16, 8)
		if err != nil {
			return RGBColor{}, fmt.Errorf("hex color %q contains non-hex characters", hex)
		}
		bytes = append(bytes, int(n))
	}

	c := RGBColor{R: bytes[0], G: bytes[1], B: bytes[2]}
	if len(bytes) == 4 {
		c.A = Alpha(float64(bytes[3]) / 255)
	}
	return c, nil
}

// RGBToHex renders the color as #rrggbb, clamping each channel to [0,255]. A color
// with an alpha is rendered as #rrggbbaa with the alpha scaled to [0,255], so the
// output parses back to c through HexToRGB whenever c.A is a multiple of 1/255.
func RGBToHex(c RGBColor) string {
	hex := fmt.Sprintf("#%02x%02x%02x", clampChannel(float64(c.R)), clampChannel(float64(c.G)), clampChannel(float64(c.B)))
	if c.A != nil {
		hex += fmt.Sprintf("%02x", clampChannel(*c.A*255))
	}
	return hex
}

func clampChannel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(255, v))))
}

// HSLToRGB converts using the piecewise hue function, short-circuiting achromatic colors.
func HSLToRGB(c HSLColor) RGBColor {
	h := float64(c.H) / 360
	s := float64(c.S) / 100
	l := float64(c.L) / 100

	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToRGB(p, q, h+1.0/3)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3)
	}

	out := RGBColor{R: clampChannel(r * 255), G: clampChannel(g * 255), B: clampChannel(b * 255)}
	if c.A != nil {
		out.A = Alpha(*c.A)
	}
	return out
}

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

// RGBToHSL is the inverse of HSLToRGB, rounding to whole degrees and percents.
func RGBToHSL(c RGBColor) HSLColor {
	r := float64(clampChannel(float64(c.R))) / 255
	g := float64(clampChannel(float64(c.G))) / 255
	b := float64(clampChannel(float64(c.B))) / 255

	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	l := (hi + lo) / 2

	var h, s float64
	if hi != lo {
		d := hi - lo
		if l > 0.5 {
			s = d / (2 - hi - lo)
		} else {
			s = d / (hi + lo)
		}
		switch hi {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	out := HSLColor{
		H: int(math.Round(h*360)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
	if c.A != nil {
		out.A = Alpha(*c.A)
	}
	return out
}
