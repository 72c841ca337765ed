package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/infrastructure/files"
	"github.com/alexisbeaulieu97/themekit/internal/schema"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

func newValidateCmd(c *cli) *cobra.Command {
	var contentType string

	cmd := &cobra.Command{
		Use:   "validate <envelope-file>",
		Short: "Check an exported theme file without importing it",
		Long: `Validate runs a theme export file through the same gate as an import:
declared type, size bounds, envelope schema, theme rules and sanitization.
Every violated constraint is listed. Exits 1 when the file would be rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := c.app
			if err := validateInputFile(args[0]); err != nil {
				return err
			}
			f, err := files.Open(args[0], contentType)
			if err != nil {
				return themeerrors.NewIOError(args[0], "open", err)
			}

			result := app.Importer.ImportFile(cmd.Context(), f)
			return reportImport(app, cmd, args[0], result, false)
		},
	}

	cmd.Flags().StringVar(&contentType, "content-type", "", "Declared media type of the file (default: route by extension)")

	return cmd
}

// reportImport prints the outcome of an import. When emitTheme is set a
// successful import prints the sanitized theme instead of a verdict.
func reportImport(app *AppContext, cmd *cobra.Command, label string, result schema.ImportResult, emitTheme bool) error {
	out := cmd.OutOrStdout()
	if !result.OK() {
		heading := fmt.Sprintf("%s: %d problem(s)", label, len(result.Errors))
		return reportErrors(app, out, heading, result.Errors)
	}

	switch {
	case emitTheme:
		if app.JSON {
			return writeJSON(out, result.Theme)
		}
		_, err := out.Write(marshalTheme(*result.Theme))
		return err
	case app.JSON:
		return writeJSON(out, map[string]any{"valid": true, "theme": result.Theme})
	default:
		fmt.Fprintf(out, "%s %s: theme %q (%s) is valid\n", app.Printer.Mark(true), label, result.Theme.Name, result.Theme.ID)
		return nil
	}
}
