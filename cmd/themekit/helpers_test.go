package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	infraclipboard "github.com/alexisbeaulieu97/themekit/internal/infrastructure/clipboard"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
	"github.com/alexisbeaulieu97/themekit/internal/schema"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

var fixedNow = time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

// setupCLI pins the clock, swaps in a memory clipboard and disables color.
func setupCLI(t *testing.T) *infraclipboard.Memory {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	t.Setenv("FORCE_COLOR", "")

	mem := infraclipboard.NewMemory("")
	originalClipboard, originalNow := newClipboard, now
	t.Cleanup(func() {
		newClipboard = originalClipboard
		now = originalNow
	})
	newClipboard = func(ports.Logger) ports.Clipboard { return mem }
	now = func() time.Time { return fixedNow }
	return mem
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeEnvelope(t *testing.T, dir, name string, th theme.Theme) string {
	t.Helper()
	data, err := schema.Encode(schema.NewEnvelope(th, "tests", fixedNow), schema.FormatJSON)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func writeJSONFile(t *testing.T, dir, name string, v any) string {
	t.Helper()
	data, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func lowContrastTheme() theme.Theme {
	th := theme.Light()
	th.ID = "washed-out"
	th.Colors.Text = "#cccccc"
	return th
}
