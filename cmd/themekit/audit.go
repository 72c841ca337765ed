package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/audit"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
)

type auditOptions struct {
	source themeSource
	strict bool
}

type auditOutput struct {
	ThemeID     string             `json:"themeId"`
	Report      audit.Report       `json:"report"`
	Suggestions []audit.Suggestion `json:"suggestions"`
}

func newAuditCmd(c *cli) *cobra.Command {
	opts := auditOptions{}

	cmd := &cobra.Command{
		Use:   "audit [theme-file]",
		Short: "Check a theme's critical text/background pairs against WCAG AA",
		Long: `Audit evaluates text and secondary text against the background and surface
colors. Pairs below AA are reported with a suggested replacement color that keeps
the original hue. With --strict, a failing audit exits 1.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := c.app
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				opts.source.file = args[0]
			}
			if err := opts.source.validate(); err != nil {
				return err
			}

			t, err := loadTheme(ctx, app, opts.source)
			if err != nil {
				return reportErrors(app, out, "theme is invalid", errorMessages(err))
			}

			results := audit.Evaluate(t)
			for _, r := range results {
				app.Metrics.ObserveHistogram(ctx, ports.MetricContrastRatio, r.Contrast.Ratio, nil)
			}
			report := audit.Audit(t)
			suggestions := audit.SuggestFixes(t)
			app.Metrics.IncCounter(ctx, ports.MetricAuditsTotal, map[string]string{"accessible": strconv.FormatBool(report.IsAccessible)})
			app.Metrics.SetGauge(ctx, ports.MetricLastAuditIssues, float64(len(report.Issues)), nil)
			app.Logger.Info(ctx, "theme audited", "component", "audit", "theme_id", t.ID, "issues", len(report.Issues))
			if err := app.Events.Publish(ctx, ports.NewEvent(ports.EventThemeAudited, map[string]interface{}{
				"theme_id":   t.ID,
				"accessible": report.IsAccessible,
				"issues":     len(report.Issues),
			})); err != nil {
				return err
			}

			if app.JSON {
				if err := writeJSON(out, auditOutput{ThemeID: t.ID, Report: report, Suggestions: suggestions}); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(out, app.Printer.Audit(results, suggestions))
				if report.IsAccessible {
					fmt.Fprintf(out, "%s %s meets WCAG AA for all critical pairs\n", app.Printer.Mark(true), t.ID)
				} else {
					fmt.Fprintf(out, "%s %s: %d critical pair(s) below AA\n", app.Printer.Mark(false), t.ID, len(report.Issues))
				}
			}

			if opts.strict && !report.IsAccessible {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.source.builtin, "builtin", "", "Audit a built-in theme (light or dark)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit 1 when any critical pair fails AA")

	return cmd
}
