package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/themekit/internal/ports"
)

type rootFlags struct {
	configPath  string
	verbose     bool
	json        bool
	noColor     bool
	metricsFile string
}

// cli is shared by every subcommand; app is populated before any RunE.
type cli struct {
	flags rootFlags
	app   *AppContext
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	cmd := &cobra.Command{
		Use:           "themekit",
		Short:         "themekit validates, sanitizes and audits color themes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := ports.WithCorrelationID(cmd.Context(), ports.GenerateCorrelationID())
			app, err := newAppContext(ctx, &c.flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			c.app = app
			cmd.SetContext(ctx)
			app.Log.WithCommand(cmd.Name()).Debug("command started", "args", len(args), "correlation_id", ports.GetCorrelationID(ctx))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.app == nil || c.flags.metricsFile == "" {
				return nil
			}
			if err := prometheus.WriteToTextfile(c.flags.metricsFile, c.app.Metrics.Registry()); err != nil {
				c.app.Log.Error(err, "write metrics", "path", c.flags.metricsFile)
				return err
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&c.flags.configPath, "config", "c", "", "Settings file (default ./themekit.yaml when present)")
	cmd.PersistentFlags().BoolVarP(&c.flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&c.flags.json, "json", false, "Write results and logs as JSON")
	cmd.PersistentFlags().BoolVar(&c.flags.noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().StringVar(&c.flags.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file on exit")

	cmd.AddCommand(newParseCmd(c))
	cmd.AddCommand(newContrastCmd(c))
	cmd.AddCommand(newValidateCmd(c))
	cmd.AddCommand(newSanitizeCmd(c))
	cmd.AddCommand(newAuditCmd(c))
	cmd.AddCommand(newImportCmd(c))
	cmd.AddCommand(newExportCmd(c))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
