package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/themekit/internal/infrastructure/files"
	"github.com/alexisbeaulieu97/themekit/internal/schema"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// readDocument decodes a JSON or YAML file, unwrapping the theme when the file
// is an export envelope.
func readDocument(ctx context.Context, app *AppContext, path string) (any, error) {
	f, err := files.Open(path, "")
	if err != nil {
		return nil, themeerrors.NewIOError(path, "open", err)
	}
	data, err := f.ReadContent(ctx, app.Settings.MaxImportBytes)
	if err != nil {
		return nil, themeerrors.NewIOError(path, "read", err)
	}
	raw, err := schema.Decode(data, schema.FormatFor(f.Name(), "", data))
	if err != nil {
		return nil, themeerrors.NewStructuralError(path, err.Error(), err)
	}
	return unwrapEnvelope(raw), nil
}

func unwrapEnvelope(raw any) any {
	obj, ok := theme.AsMap(raw)
	if !ok {
		return raw
	}
	inner, hasTheme := obj["theme"]
	_, hasVersion := obj["version"]
	if hasTheme && hasVersion {
		return inner
	}
	return raw
}

// loadTheme resolves src to a validated theme.
func loadTheme(ctx context.Context, app *AppContext, src themeSource) (theme.Theme, error) {
	if src.builtin != "" {
		t, ok := theme.BuiltIn(theme.Mode(src.builtin))
		if !ok {
			return theme.Theme{}, fmt.Errorf("unknown built-in theme %q (want light or dark)", src.builtin)
		}
		return t, nil
	}
	raw, err := readDocument(ctx, app, src.file)
	if err != nil {
		return theme.Theme{}, err
	}
	t, violations := theme.Project(raw)
	if err := violations.Err(); err != nil {
		return theme.Theme{}, err
	}
	return t, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func marshalTheme(t theme.Theme) []byte {
	data, _ := json.MarshalIndent(t, "", "  ")
	return append(data, '\n')
}

// reportErrors prints messages under a heading and returns errReported.
func reportErrors(app *AppContext, w io.Writer, heading string, messages []string) error {
	if app.JSON {
		if err := writeJSON(w, map[string]any{"valid": false, "errors": messages}); err != nil {
			return err
		}
		return errReported
	}
	fmt.Fprintf(w, "%s %s\n", app.Printer.Mark(false), heading)
	app.Printer.Errors(w, messages)
	return errReported
}

func errorMessages(err error) []string {
	var v themeerrors.Violations
	if errors.As(err, &v) {
		return v.Messages()
	}
	return []string{err.Error()}
}
