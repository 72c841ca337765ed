package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexisbeaulieu97/themekit/internal/config"
	infraclipboard "github.com/alexisbeaulieu97/themekit/internal/infrastructure/clipboard"
	infraconfig "github.com/alexisbeaulieu97/themekit/internal/infrastructure/config"
	"github.com/alexisbeaulieu97/themekit/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/themekit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/metrics"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/internal/render"
	"github.com/alexisbeaulieu97/themekit/internal/schema"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Settings  config.Settings
	Log       *logger.Logger
	Logger    ports.Logger
	Metrics   *metrics.Recorder
	Events    ports.EventPublisher
	Importer  *schema.Importer
	Exporter  *schema.Exporter
	Clipboard ports.Clipboard
	Printer   *render.Printer
	JSON      bool
}

// Replaced in tests.
var (
	newClipboard = func(logger ports.Logger) ports.Clipboard { return infraclipboard.New(logger) }
	now          = time.Now
)

func newAppContext(ctx context.Context, flags *rootFlags, stdout, stderr io.Writer) (*AppContext, error) {
	bootstrap := logging.NewNoOpLogger()
	if flags.verbose {
		l, err := logging.New(logging.Options{Writer: stderr, Level: "debug", JSON: flags.json, Layer: "cli", Component: "config"})
		if err != nil {
			return nil, err
		}
		bootstrap = l
	}

	settings, err := infraconfig.NewYAMLLoader(bootstrap).Load(ctx, flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	level := settings.LogLevel
	if flags.verbose {
		level = "debug"
	}
	useColor := !flags.noColor && render.ColorEnabled(stdout)

	cliLog, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: !flags.json,
		NoColor:       flags.noColor || !render.ColorEnabled(stderr),
		Writer:        stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	portLog, err := logging.New(logging.Options{
		Writer:    stderr,
		Level:     level,
		JSON:      flags.json,
		Layer:     "application",
		Component: "themekit",
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	recorder := metrics.New()
	publisher := events.NewLoggingPublisher(portLog)
	if err := subscribeCLI(publisher, cliLog); err != nil {
		return nil, err
	}
	deps := []schema.Option{
		schema.WithLogger(portLog),
		schema.WithMetrics(recorder),
		schema.WithEvents(publisher),
		schema.WithClock(now),
	}

	return &AppContext{
		Settings:  settings,
		Log:       cliLog,
		Logger:    portLog,
		Metrics:   recorder,
		Events:    publisher,
		Importer:  schema.NewImporter(schema.OptionsFromSettings(settings), deps...),
		Exporter:  schema.NewExporter(settings.ExportedBy, deps...),
		Clipboard: newClipboard(portLog),
		Printer:   render.NewPrinter(stdout, useColor),
		JSON:      flags.json,
	}, nil
}

// subscribeCLI mirrors rejected imports into the command log so a failing run
// shows why even when the component logger is filtered out.
func subscribeCLI(publisher ports.EventPublisher, log *logger.Logger) error {
	_, err := publisher.Subscribe(ports.EventThemeImportRejected, func(_ context.Context, event ports.DomainEvent) error {
		payload := event.Payload()
		log.Debug("import rejected", "source", payload["source"], "reason", payload["reason"], "errors", payload["errors"])
		return nil
	})
	return err
}
