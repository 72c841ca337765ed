package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/contrast"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/internal/render"
)

type contrastOutput struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
	contrast.Result
	Warnings []string `json:"warnings,omitempty"`
}

func newContrastCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Compute the WCAG contrast ratio and grade of two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := c.app
			result := contrast.Evaluate(args[0], args[1])
			app.Metrics.ObserveHistogram(cmd.Context(), ports.MetricContrastRatio, result.Ratio, nil)

			output := contrastOutput{Foreground: args[0], Background: args[1], Result: result}
			if !color.IsValid(args[0]) {
				output.Warnings = append(output.Warnings, fmt.Sprintf("foreground %q is not a valid color; treated as black", args[0]))
			}
			if !color.IsValid(args[1]) {
				output.Warnings = append(output.Warnings, fmt.Sprintf("background %q is not a valid color; treated as white", args[1]))
			}
			app.Log.WithCommand("contrast").Debug("contrast evaluated", "ratio", result.Ratio, "grade", string(result.Grade))

			if app.JSON {
				return writeJSON(cmd.OutOrStdout(), output)
			}
			printContrast(app, cmd.OutOrStdout(), output)
			return nil
		},
	}
}

func printContrast(app *AppContext, out io.Writer, o contrastOutput) {
	p := app.Printer
	fmt.Fprintf(out, "%s  %s on %s\n", p.Sample(o.Foreground, o.Background), o.Foreground, o.Background)
	fmt.Fprintf(out, "  %-6s %s\n", "ratio", render.Ratio(o.Ratio))
	fmt.Fprintf(out, "  %-6s %s\n", "grade", p.Grade(o.Grade))
	fmt.Fprintf(out, "  %-6s %s\n", "AA", p.Mark(o.MeetsAA))
	fmt.Fprintf(out, "  %-6s %s\n", "AAA", p.Mark(o.MeetsAAA))
	for _, w := range o.Warnings {
		fmt.Fprintf(out, "  warning: %s\n", w)
	}
}
