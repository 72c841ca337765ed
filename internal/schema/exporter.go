package schema

import (
	"context"
	"os"

	"github.com/alexisbeaulieu97/themekit/internal/infrastructure/files"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Export targets, used in logs and metric labels.
const (
	TargetFile      = "file"
	TargetClipboard = "clipboard"
	TargetStdout    = "stdout"
)

// Exporter wraps sanitized themes in envelopes and writes them out.
type Exporter struct {
	exportedBy string
	deps
}

// NewExporter builds an Exporter that stamps exportedBy on every envelope.
func NewExporter(exportedBy string, options ...Option) *Exporter {
	return &Exporter{exportedBy: theme.StripUnsafe(exportedBy), deps: newDeps(options)}
}

// Envelope sanitizes t and wraps it. An invalid theme is refused rather than exported.
func (e *Exporter) Envelope(t theme.Theme) (Envelope, error) {
	sanitized, err := theme.SanitizeAt(t, "theme")
	if err != nil {
		return Envelope{}, err
	}
	return NewEnvelope(sanitized, e.exportedBy, e.now()), nil
}

// Encode returns the serialized envelope for t.
func (e *Exporter) Encode(t theme.Theme, format Format) ([]byte, error) {
	env, err := e.Envelope(t)
	if err != nil {
		return nil, err
	}
	return Encode(env, format)
}

// ToClipboard writes the envelope for t to w as text.
func (e *Exporter) ToClipboard(ctx context.Context, w ports.ClipboardWriter, t theme.Theme, format Format) error {
	data, err := e.Encode(t, format)
	if err != nil {
		e.refused(ctx, TargetClipboard, t, err)
		return err
	}
	if err := w.WriteText(ctx, string(data)); err != nil {
		ioErr := themeerrors.NewIOError(SourceClipboard, "write", err)
		e.logger.Error(ctx, "theme export failed", "component", "exporter", "target", TargetClipboard, "error", ioErr)
		return ioErr
	}
	e.exported(ctx, TargetClipboard, format, t, len(data))
	return nil
}

// ToFile writes the envelope for t to path atomically.
func (e *Exporter) ToFile(ctx context.Context, path string, t theme.Theme, format Format) error {
	if err := ctx.Err(); err != nil {
		return themeerrors.NewIOError(path, "write", err)
	}
	data, err := e.Encode(t, format)
	if err != nil {
		e.refused(ctx, TargetFile, t, err)
		return err
	}
	if err := files.WriteAtomic(path, data, os.FileMode(0o644)); err != nil {
		ioErr := themeerrors.NewIOError(path, "write", err)
		e.logger.Error(ctx, "theme export failed", "component", "exporter", "target", TargetFile, "path", path, "error", ioErr)
		return ioErr
	}
	e.exported(ctx, TargetFile, format, t, len(data))
	return nil
}

// Record notes an export written by the caller, such as to stdout.
func (e *Exporter) Record(ctx context.Context, target string, format Format, t theme.Theme, n int) {
	e.exported(ctx, target, format, t, n)
}

func (e *Exporter) exported(ctx context.Context, target string, format Format, t theme.Theme, n int) {
	e.metrics.IncCounter(ctx, ports.MetricExportsTotal, map[string]string{"target": target, "format": string(format)})
	e.logger.Info(ctx, "theme exported", "component", "exporter", "target", target, "format", string(format), "theme_id", t.ID, "bytes", n)
	e.publish(ctx, ports.EventThemeExported, map[string]interface{}{
		"target":   target,
		"format":   string(format),
		"theme_id": t.ID,
	})
}

func (e *Exporter) refused(ctx context.Context, target string, t theme.Theme, err error) {
	e.logger.Warn(ctx, "theme export refused", "component", "exporter", "target", target, "theme_id", t.ID, "error", err)
}
