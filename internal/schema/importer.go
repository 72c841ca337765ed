package schema

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Import sources, used in messages, logs and metric labels.
const (
	SourceFile      = "file"
	SourceClipboard = "clipboard"
)

// Options bounds what an Importer accepts.
type Options struct {
	Policy               Policy
	MinBytes             int64
	MaxBytes             int64
	AcceptedExtensions   []string
	AcceptedContentTypes []string
}

// DefaultOptions mirrors config.Defaults.
func DefaultOptions() Options {
	return OptionsFromSettings(config.Defaults())
}

// OptionsFromSettings derives importer options from loaded settings.
func OptionsFromSettings(s config.Settings) Options {
	return Options{
		Policy: Policy{
			SupportedVersion:    s.SupportedVersion,
			AcceptMinorVersions: s.AcceptMinorVersions,
		},
		MinBytes:             s.MinImportBytes,
		MaxBytes:             s.MaxImportBytes,
		AcceptedExtensions:   append([]string(nil), s.AcceptedExtensions...),
		AcceptedContentTypes: append([]string(nil), s.AcceptedContentTypes...),
	}
}

// ImportResult carries either a sanitized theme or the reasons it was refused.
type ImportResult struct {
	Theme    *theme.Theme `json:"theme,omitempty"`
	Envelope *Envelope    `json:"-"`
	Errors   []string     `json:"errors,omitempty"`
}

// OK reports whether the import produced a theme.
func (r ImportResult) OK() bool {
	return r.Theme != nil && len(r.Errors) == 0
}

// Importer turns untrusted file or clipboard content into a sanitized theme.
type Importer struct {
	opts Options
	deps
}

// NewImporter builds an Importer. Zero size bounds fall back to the defaults.
func NewImporter(opts Options, options ...Option) *Importer {
	defaults := DefaultOptions()
	if opts.MinBytes <= 0 {
		opts.MinBytes = defaults.MinBytes
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = defaults.MaxBytes
	}
	if len(opts.AcceptedExtensions) == 0 {
		opts.AcceptedExtensions = defaults.AcceptedExtensions
	}
	if len(opts.AcceptedContentTypes) == 0 {
		opts.AcceptedContentTypes = defaults.AcceptedContentTypes
	}
	return &Importer{opts: opts, deps: newDeps(options)}
}

// ImportFile validates the declared type and size of f before reading it, then
// decodes, validates and sanitizes its content.
func (i *Importer) ImportFile(ctx context.Context, f ports.ImportFile) ImportResult {
	start := i.now()
	logger := i.logger.With("component", "importer", "source", SourceFile, "file", f.Name())

	if !i.acceptsDeclaration(f.Name(), f.ContentType()) {
		return i.reject(ctx, logger, SourceFile, "type", themeerrors.NewStructuralError(SourceFile,
			fmt.Sprintf("unsupported file type %q; expected one of %s", describeDeclaration(f.Name(), f.ContentType()), strings.Join(i.opts.AcceptedExtensions, ", ")), nil))
	}
	if err := i.checkSize(SourceFile, f.Size()); err != nil {
		return i.reject(ctx, logger, SourceFile, "size", err)
	}

	data, err := f.ReadContent(ctx, i.opts.MaxBytes)
	if err != nil {
		if errors.Is(err, ports.ErrContentTooLarge) {
			return i.reject(ctx, logger, SourceFile, "size", themeerrors.NewStructuralError(SourceFile,
				fmt.Sprintf("too large (more than %d bytes)", i.opts.MaxBytes), err))
		}
		return i.fail(ctx, logger, SourceFile, themeerrors.NewIOError(SourceFile, "read", err))
	}

	format := FormatFor(f.Name(), f.ContentType(), data)
	return i.process(ctx, logger, SourceFile, data, format, start)
}

// ImportClipboard reads clipboard text and imports it.
func (i *Importer) ImportClipboard(ctx context.Context, r ports.ClipboardReader) ImportResult {
	start := i.now()
	logger := i.logger.With("component", "importer", "source", SourceClipboard)

	text, err := r.ReadText(ctx)
	if err != nil {
		return i.fail(ctx, logger, SourceClipboard, themeerrors.NewIOError(SourceClipboard, "read", err))
	}
	data := []byte(text)
	return i.process(ctx, logger, SourceClipboard, data, FormatFor("", "", data), start)
}

// ImportBytes imports content already held in memory. source labels logs and metrics.
func (i *Importer) ImportBytes(ctx context.Context, source string, data []byte, format Format) ImportResult {
	logger := i.logger.With("component", "importer", "source", source)
	return i.process(ctx, logger, source, data, format, i.now())
}

func (i *Importer) process(ctx context.Context, logger ports.Logger, source string, data []byte, format Format, start time.Time) ImportResult {
	if err := i.checkSize(source, int64(len(data))); err != nil {
		return i.reject(ctx, logger, source, "size", err)
	}
	i.metrics.ObserveHistogram(ctx, ports.MetricImportBytes, float64(len(data)), map[string]string{"source": source})

	if err := sniff(source, data); err != nil {
		return i.reject(ctx, logger, source, "sniff", err)
	}

	raw, err := Decode(data, format)
	if err != nil {
		return i.reject(ctx, logger, source, "decode", themeerrors.NewStructuralError(source, err.Error(), err))
	}

	env, violations := i.opts.Policy.Normalize(raw)
	if len(violations) > 0 {
		return i.reject(ctx, logger, source, "schema", violations...)
	}

	i.metrics.IncCounter(ctx, ports.MetricImportsTotal, map[string]string{"source": source, "outcome": "accepted"})
	logger.Info(ctx, "theme imported",
		"theme_id", env.Theme.ID,
		"bytes", len(data),
		"format", string(format),
		"duration_ms", i.now().Sub(start).Milliseconds(),
	)
	i.publish(ctx, ports.EventThemeImported, map[string]interface{}{
		"source":   source,
		"theme_id": env.Theme.ID,
		"bytes":    len(data),
	})
	t := env.Theme
	return ImportResult{Theme: &t, Envelope: &env}
}

func (i *Importer) acceptsDeclaration(name, contentType string) bool {
	if contentType != "" {
		if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
			for _, accepted := range i.opts.AcceptedContentTypes {
				if strings.EqualFold(mediaType, accepted) {
					return true
				}
			}
		}
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, accepted := range i.opts.AcceptedExtensions {
		if ext == accepted {
			return true
		}
	}
	return false
}

func (i *Importer) checkSize(source string, n int64) error {
	switch {
	case n < i.opts.MinBytes:
		return themeerrors.NewStructuralError(source, fmt.Sprintf("too small (%d bytes, minimum %d)", n, i.opts.MinBytes), nil)
	case n > i.opts.MaxBytes:
		return themeerrors.NewStructuralError(source, fmt.Sprintf("too large (%d bytes, maximum %d)", n, i.opts.MaxBytes), nil)
	default:
		return nil
	}
}

// sniff refuses content that does not look like text, whatever its declared type.
func sniff(source string, data []byte) error {
	detected := mimetype.Detect(data)
	for m := detected; m != nil; m = m.Parent() {
		if m.Is("text/plain") || m.Is("application/json") {
			return nil
		}
	}
	return themeerrors.NewStructuralError(source, fmt.Sprintf("content is not a text document (detected %s)", detected.String()), nil)
}

func (i *Importer) reject(ctx context.Context, logger ports.Logger, source, reason string, errs ...error) ImportResult {
	messages := themeerrors.Violations(errs).Messages()
	i.metrics.IncCounter(ctx, ports.MetricImportsTotal, map[string]string{"source": source, "outcome": "rejected"})
	i.metrics.IncCounter(ctx, ports.MetricImportRejectionsTotal, map[string]string{"source": source, "reason": reason})
	logger.Warn(ctx, "theme import rejected", "reason", reason, "errors", len(messages), "first_error", messages[0])
	i.publish(ctx, ports.EventThemeImportRejected, map[string]interface{}{
		"source": source,
		"reason": reason,
		"errors": len(messages),
	})
	return ImportResult{Errors: messages}
}

func (i *Importer) fail(ctx context.Context, logger ports.Logger, source string, err error) ImportResult {
	i.metrics.IncCounter(ctx, ports.MetricImportsTotal, map[string]string{"source": source, "outcome": "failed"})
	logger.Error(ctx, "theme import failed", "error", err)
	i.publish(ctx, ports.EventThemeImportRejected, map[string]interface{}{
		"source": source,
		"reason": "io",
		"errors": 1,
	})
	return ImportResult{Errors: []string{err.Error()}}
}

func describeDeclaration(name, contentType string) string {
	ext := filepath.Ext(name)
	switch {
	case contentType != "" && ext != "":
		return ext + " (" + contentType + ")"
	case contentType != "":
		return contentType
	case ext != "":
		return ext
	default:
		return name
	}
}
