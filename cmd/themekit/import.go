package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/infrastructure/files"
	"github.com/alexisbeaulieu97/themekit/internal/schema"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

type importOptions struct {
	clipboard   bool
	contentType string
}

func newImportCmd(c *cli) *cobra.Command {
	opts := importOptions{}

	cmd := &cobra.Command{
		Use:   "import [envelope-file]",
		Short: "Import a theme from a file or the clipboard and print it sanitized",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := c.app
			ctx := cmd.Context()

			switch {
			case opts.clipboard && len(args) > 0:
				return fmt.Errorf("--clipboard and a file argument are mutually exclusive")
			case opts.clipboard:
				result := app.Importer.ImportClipboard(ctx, app.Clipboard)
				return reportImport(app, cmd, schema.SourceClipboard, result, true)
			case len(args) == 0:
				return fmt.Errorf("a file argument or --clipboard is required")
			}

			if err := validateInputFile(args[0]); err != nil {
				return err
			}
			f, err := files.Open(args[0], opts.contentType)
			if err != nil {
				return themeerrors.NewIOError(args[0], "open", err)
			}
			return reportImport(app, cmd, args[0], app.Importer.ImportFile(ctx, f), true)
		},
	}

	cmd.Flags().BoolVar(&opts.clipboard, "clipboard", false, "Read the envelope from the system clipboard")
	cmd.Flags().StringVar(&opts.contentType, "content-type", "", "Declared media type of the file (default: route by extension)")

	return cmd
}
