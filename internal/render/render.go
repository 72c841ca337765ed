// Package render formats colors, contrast results and audits for the terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	fcolor "github.com/fatih/color"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/contrast"
)

// ColorEnabled reports whether styled output should be written to w. NO_COLOR
// disables color unless FORCE_COLOR is set; non-terminals never get color.
func ColorEnabled(w io.Writer) bool {
	if force := strings.TrimSpace(os.Getenv("FORCE_COLOR")); force != "" && force != "0" {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Printer renders styled fragments, degrading to plain text when color is off.
type Printer struct {
	color    bool
	renderer *lipgloss.Renderer
}

// NewPrinter returns a Printer for out. When useColor is set the renderer is
// pinned to true color instead of probing out.
func NewPrinter(out io.Writer, useColor bool) *Printer {
	renderer := lipgloss.NewRenderer(out)
	if useColor {
		renderer.SetColorProfile(termenv.TrueColor)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return &Printer{color: useColor, renderer: renderer}
}

// Color reports whether the printer emits styles.
func (p *Printer) Color() bool {
	return p.color
}

// Swatch is a two-cell block filled with value. Unparseable values and plain
// output render as an empty string.
func (p *Printer) Swatch(value string) string {
	if !p.color {
		return ""
	}
	parsed, err := color.Parse(value)
	if err != nil {
		return ""
	}
	return p.renderer.NewStyle().
		Background(lipgloss.Color(parsed.Hex())).
		Render("  ")
}

// Sample draws "Aa" in fg on bg, as it would read in the theme.
func (p *Printer) Sample(fg, bg string) string {
	if !p.color {
		return "Aa"
	}
	fgParsed, fgErr := color.Parse(fg)
	bgParsed, bgErr := color.Parse(bg)
	if fgErr != nil || bgErr != nil {
		return "Aa"
	}
	return p.renderer.NewStyle().
		Foreground(lipgloss.Color(fgParsed.Hex())).
		Background(lipgloss.Color(bgParsed.Hex())).
		Padding(0, 1).
		Render("Aa")
}

// Mark is a check or cross.
func (p *Printer) Mark(ok bool) string {
	if ok {
		return p.paint(fcolor.FgGreen, "✓")
	}
	return p.paint(fcolor.FgRed, "✗")
}

// Grade renders a contrast grade, colored by severity.
func (p *Printer) Grade(g contrast.Grade) string {
	switch g {
	case contrast.GradeAAA:
		return p.paint(fcolor.FgGreen, string(g))
	case contrast.GradeAA:
		return p.paint(fcolor.FgYellow, string(g))
	default:
		return p.paint(fcolor.FgRed, string(g))
	}
}

// Ratio formats a contrast ratio the way WCAG tools do, e.g. "4.54:1".
func Ratio(r float64) string {
	return fmt.Sprintf("%.2f:1", r)
}

// Errors writes one crossed line per message.
func (p *Printer) Errors(w io.Writer, messages []string) {
	for _, msg := range messages {
		fmt.Fprintf(w, "  %s %s\n", p.Mark(false), msg)
	}
}

func (p *Printer) paint(attr fcolor.Attribute, s string) string {
	if !p.color {
		return s
	}
	c := fcolor.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}
