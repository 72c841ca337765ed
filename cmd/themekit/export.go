package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/schema"
)

type exportOptions struct {
	source    themeSource
	out       string
	clipboard bool
	yaml      bool
}

func (o exportOptions) validate() error {
	if o.out != "" && o.clipboard {
		return fmt.Errorf("--out and --clipboard are mutually exclusive")
	}
	if o.source.builtin == "" && o.source.file == "" {
		return nil
	}
	return o.source.validate()
}

func newExportCmd(c *cli) *cobra.Command {
	opts := exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Wrap a theme in a versioned export envelope",
		Long: `Export sanitizes a theme and writes it as a versioned envelope to stdout,
a file (written atomically) or the system clipboard. Without --file or --builtin
the default light theme is exported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := c.app
			ctx := cmd.Context()
			if err := opts.validate(); err != nil {
				return err
			}
			if opts.source.builtin == "" && opts.source.file == "" {
				opts.source.builtin = "light"
			}

			t, err := loadTheme(ctx, app, opts.source)
			if err != nil {
				return reportErrors(app, cmd.OutOrStdout(), "theme is invalid", errorMessages(err))
			}

			format := schema.FormatJSON
			if opts.yaml {
				format = schema.FormatYAML
			}

			switch {
			case opts.out != "":
				if err := app.Exporter.ToFile(ctx, opts.out, t, format); err != nil {
					return err
				}
				if !app.JSON {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s exported %s to %s\n", app.Printer.Mark(true), t.ID, opts.out)
				}
				return nil
			case opts.clipboard:
				if err := app.Exporter.ToClipboard(ctx, app.Clipboard, t, format); err != nil {
					return err
				}
				if !app.JSON {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s copied %s to the clipboard\n", app.Printer.Mark(true), t.ID)
				}
				return nil
			}

			data, err := app.Exporter.Encode(t, format)
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return err
			}
			app.Exporter.Record(ctx, schema.TargetStdout, format, t, len(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.source.builtin, "builtin", "", "Export a built-in theme (light or dark)")
	cmd.Flags().StringVar(&opts.source.file, "file", "", "Theme or envelope file to export")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the envelope to this path")
	cmd.Flags().BoolVar(&opts.clipboard, "clipboard", false, "Copy the envelope to the system clipboard")
	cmd.Flags().BoolVar(&opts.yaml, "yaml", false, "Encode the envelope as YAML instead of JSON")

	return cmd
}
