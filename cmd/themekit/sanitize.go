package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
	"github.com/alexisbeaulieu97/themekit/pkg/diff"
)

func newSanitizeCmd(c *cli) *cobra.Command {
	var showDiff bool

	cmd := &cobra.Command{
		Use:   "sanitize <theme-file>",
		Short: "Print the sanitized form of a theme or export envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := c.app
			out := cmd.OutOrStdout()
			if err := validateInputFile(args[0]); err != nil {
				return err
			}

			raw, err := readDocument(cmd.Context(), app, args[0])
			if err != nil {
				return reportErrors(app, out, args[0], errorMessages(err))
			}
			original, violations := theme.Project(raw)
			if len(violations) > 0 {
				return reportErrors(app, out, fmt.Sprintf("%s: %d problem(s)", args[0], len(violations)), violations.Messages())
			}
			sanitized, err := theme.Sanitize(original)
			if err != nil {
				return reportErrors(app, out, args[0], errorMessages(err))
			}

			before, after := marshalTheme(original), marshalTheme(sanitized)
			stats := diff.Count(before, after)
			app.Log.WithCommand("sanitize").Debug("theme sanitized", "theme_id", sanitized.ID, "added", stats.Added, "removed", stats.Removed)

			if app.JSON {
				payload := map[string]any{"theme": sanitized}
				if showDiff {
					payload["diff"] = diff.Unified(before, after, args[0], "sanitized")
				}
				return writeJSON(out, payload)
			}
			if !showDiff {
				_, err := out.Write(after)
				return err
			}
			unified := diff.Unified(before, after, args[0], "sanitized")
			if unified == "" {
				fmt.Fprintf(out, "%s %s is already sanitized\n", app.Printer.Mark(true), args[0])
				return nil
			}
			fmt.Fprint(out, unified)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showDiff, "diff", false, "Show a unified diff of what sanitization changed")

	return cmd
}
