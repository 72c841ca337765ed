package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/color"
)

type parsedOutput struct {
	Input     string          `json:"input"`
	Valid     bool            `json:"valid"`
	Format    color.Format    `json:"format,omitempty"`
	Canonical string          `json:"canonical,omitempty"`
	Hex       string          `json:"hex,omitempty"`
	RGB       *color.RGBColor `json:"rgb,omitempty"`
	HSL       *color.HSLColor `json:"hsl,omitempty"`
	Error     string          `json:"error,omitempty"`
}

func newParseCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <color>...",
		Short: "Identify a color's format and show it in every representation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(c.app, cmd.OutOrStdout(), args)
		},
	}
}

func runParse(app *AppContext, out io.Writer, inputs []string) error {
	results := make([]parsedOutput, 0, len(inputs))
	failed := false
	for _, input := range inputs {
		parsed, err := color.Parse(input)
		if err != nil {
			failed = true
			results = append(results, parsedOutput{Input: input, Error: err.Error()})
			continue
		}
		rgb, hsl := parsed.RGB(), parsed.HSL()
		results = append(results, parsedOutput{
			Input:     input,
			Valid:     true,
			Format:    parsed.Format,
			Canonical: parsed.Canonical(),
			Hex:       parsed.Hex(),
			RGB:       &rgb,
			HSL:       &hsl,
		})
	}

	if app.JSON {
		if err := writeJSON(out, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			printParsed(app, out, r)
		}
	}
	if failed {
		return errReported
	}
	return nil
}

func printParsed(app *AppContext, out io.Writer, r parsedOutput) {
	if !r.Valid {
		fmt.Fprintf(out, "%s %s\n  %s\n", app.Printer.Mark(false), r.Input, r.Error)
		return
	}
	fmt.Fprintf(out, "%s %s %s\n", app.Printer.Mark(true), r.Input, app.Printer.Swatch(r.Hex))
	fmt.Fprintf(out, "  %-10s %s\n", "format", r.Format)
	fmt.Fprintf(out, "  %-10s %s\n", "canonical", r.Canonical)
	fmt.Fprintf(out, "  %-10s %s\n", "hex", r.Hex)
	fmt.Fprintf(out, "  %-10s %s\n", "rgb", formatRGB(*r.RGB))
	fmt.Fprintf(out, "  %-10s %s\n", "hsl", formatHSL(*r.HSL))
}

func formatRGB(c color.RGBColor) string {
	if c.A != nil {
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(*c.A, 'f', -1, 64))
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func formatHSL(c color.HSLColor) string {
	if c.A != nil {
		return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", c.H, c.S, c.L, strconv.FormatFloat(*c.A, 'f', -1, 64))
	}
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}
