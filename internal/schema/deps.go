package schema

import (
	"context"
	"time"

	"github.com/alexisbeaulieu97/themekit/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/themekit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/themekit/internal/metrics"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
)

// Option customises an Importer or Exporter.
type Option func(*deps)

type deps struct {
	logger  ports.Logger
	metrics ports.MetricsCollector
	events  ports.EventPublisher
	now     func() time.Time
}

func newDeps(options []Option) deps {
	d := deps{
		logger:  logging.NewNoOpLogger(),
		metrics: metrics.NoOp{},
		events:  events.Discard{},
		now:     time.Now,
	}
	for _, opt := range options {
		opt(&d)
	}
	return d
}

// WithLogger routes import and export logs to logger.
func WithLogger(logger ports.Logger) Option {
	return func(d *deps) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMetrics records import and export outcomes on collector.
func WithMetrics(collector ports.MetricsCollector) Option {
	return func(d *deps) {
		if collector != nil {
			d.metrics = collector
		}
	}
}

// WithEvents publishes import and export outcomes on publisher.
func WithEvents(publisher ports.EventPublisher) Option {
	return func(d *deps) {
		if publisher != nil {
			d.events = publisher
		}
	}
}

// WithClock replaces time.Now, for deterministic exportedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(d *deps) {
		if now != nil {
			d.now = now
		}
	}
}

// publish delivers an event; publisher errors never affect the operation's result.
func (d deps) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if err := d.events.Publish(ctx, ports.NewEvent(eventType, data)); err != nil {
		d.logger.Warn(ctx, "publish event", "event_type", eventType, "error", err)
	}
}
