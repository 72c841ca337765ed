package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/color"
	"github.com/alexisbeaulieu97/themekit/internal/contrast"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()
	var exit *exitError
	require.True(t, errors.As(err, &exit), "expected exitError, got %v", err)
	require.Equal(t, code, exit.code)
}

func TestParseCommandShowsEveryRepresentation(t *testing.T) {
	setupCLI(t)

	stdout, _, err := executeCommand(t, "parse", "#FF0000")
	require.NoError(t, err)
	require.Contains(t, stdout, "hex6")
	require.Contains(t, stdout, "#ff0000")
	require.Contains(t, stdout, "rgb(255, 0, 0)")
	require.Contains(t, stdout, "hsl(0, 100%, 50%)")
}

func TestParseCommandJSON(t *testing.T) {
	setupCLI(t)

	stdout, _, err := executeCommand(t, "--json", "parse", "HSLA(120, 50%, 50%, 0.5)", "papayawhip")
	requireExitCode(t, err, 1)

	var results []parsedOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &results))
	require.Len(t, results, 2)

	require.True(t, results[0].Valid)
	require.Equal(t, color.FormatHSLA, results[0].Format)
	require.Equal(t, "hsla(120, 50%, 50%, 0.5)", results[0].Canonical)
	require.NotNil(t, results[0].HSL)
	require.Equal(t, 120, results[0].HSL.H)

	require.False(t, results[1].Valid)
	require.Contains(t, results[1].Error, "not a recognised color")
}

func TestContrastCommand(t *testing.T) {
	setupCLI(t)

	stdout, _, err := executeCommand(t, "contrast", "black", "#fff")
	require.NoError(t, err)
	require.Contains(t, stdout, "21.00:1")
	require.Contains(t, stdout, "AAA")

	stdout, _, err = executeCommand(t, "--json", "contrast", "not-a-color", "#ffffff")
	require.NoError(t, err)

	var out struct {
		contrast.Result
		Warnings []string `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.InDelta(t, 21.0, out.Ratio, 0.001)
	require.Equal(t, contrast.GradeAAA, out.Grade)
	require.Len(t, out.Warnings, 1)
	require.Contains(t, out.Warnings[0], "treated as black")
}

func TestValidateCommand(t *testing.T) {
	setupCLI(t)
	dir := t.TempDir()

	valid := writeEnvelope(t, dir, "light.json", theme.Light())
	stdout, _, err := executeCommand(t, "validate", valid)
	require.NoError(t, err)
	require.Contains(t, stdout, `theme "Default Light" (default-light) is valid`)

	invalid := writeJSONFile(t, dir, "broken.json", map[string]any{
		"version": "2.0",
		"theme":   map[string]any{"id": "x"},
	})
	stdout, _, err = executeCommand(t, "validate", invalid)
	requireExitCode(t, err, 1)
	require.Contains(t, stdout, "problem(s)")
	require.Contains(t, stdout, `unsupported version "2.0"`)
	require.Contains(t, stdout, "exportedAt: is required")
	require.Contains(t, stdout, "theme.name")
}

func TestValidateCommandRejectsUnsupportedExtension(t *testing.T) {
	setupCLI(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "theme.exe")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0"}`), 0o644))

	stdout, _, err := executeCommand(t, "--json", "validate", path)
	requireExitCode(t, err, 1)

	var out struct {
		Valid  bool     `json:"valid"`
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.False(t, out.Valid)
	require.Len(t, out.Errors, 1)
	require.Contains(t, out.Errors[0], "unsupported file type")
}

func TestValidateCommandMissingFile(t *testing.T) {
	setupCLI(t)

	_, _, err := executeCommand(t, "validate", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")
}

func TestSanitizeCommandDiff(t *testing.T) {
	setupCLI(t)
	dir := t.TempDir()

	th := theme.Dark()
	th.Colors.Background = "#0F172A"
	path := writeJSONFile(t, dir, "dark.json", th)

	stdout, _, err := executeCommand(t, "sanitize", "--diff", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "--- "+path)
	require.Contains(t, stdout, "+++ sanitized")
	require.Contains(t, stdout, `-    "background": "#0F172A",`)
	require.Contains(t, stdout, `+    "background": "#0f172a",`)

	clean := writeJSONFile(t, dir, "clean.json", theme.Dark())
	stdout, _, err = executeCommand(t, "sanitize", "--diff", clean)
	require.NoError(t, err)
	require.Contains(t, stdout, "already sanitized")
}

func TestSanitizeCommandUnwrapsEnvelope(t *testing.T) {
	setupCLI(t)
	path := writeEnvelope(t, t.TempDir(), "light.json", theme.Light())

	stdout, _, err := executeCommand(t, "sanitize", path)
	require.NoError(t, err)

	var out theme.Theme
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Equal(t, "default-light", out.ID)
}

func TestSanitizeCommandReportsViolations(t *testing.T) {
	setupCLI(t)
	path := writeJSONFile(t, t.TempDir(), "bad.json", map[string]any{"id": "x", "mode": "sepia"})

	stdout, _, err := executeCommand(t, "sanitize", path)
	requireExitCode(t, err, 1)
	require.Contains(t, stdout, "mode")
	require.Contains(t, stdout, "colors: is required")
}

func TestAuditCommand(t *testing.T) {
	setupCLI(t)

	stdout, _, err := executeCommand(t, "audit", "--builtin", "dark")
	require.NoError(t, err)
	require.Contains(t, stdout, "meets WCAG AA")

	path := writeJSONFile(t, t.TempDir(), "washed.json", lowContrastTheme())
	stdout, _, err = executeCommand(t, "audit", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "2 critical pair(s) below AA")

	_, _, err = executeCommand(t, "audit", "--strict", path)
	requireExitCode(t, err, 1)
}

func TestAuditCommandJSON(t *testing.T) {
	setupCLI(t)
	path := writeJSONFile(t, t.TempDir(), "washed.json", lowContrastTheme())

	stdout, _, err := executeCommand(t, "--json", "audit", path)
	require.NoError(t, err)

	var out auditOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Equal(t, "washed-out", out.ThemeID)
	require.False(t, out.Report.IsAccessible)
	require.Len(t, out.Report.Issues, 2)
	require.Len(t, out.Suggestions, 1)
	require.Equal(t, theme.RoleText, out.Suggestions[0].Role)
	require.True(t, out.Suggestions[0].Contrast.MeetsAA)
}

func TestAuditCommandFlagValidation(t *testing.T) {
	setupCLI(t)

	_, _, err := executeCommand(t, "audit")
	require.ErrorContains(t, err, "a theme file or --builtin is required")

	_, _, err = executeCommand(t, "audit", "--builtin", "sepia")
	require.ErrorContains(t, err, `unknown built-in theme "sepia"`)
}

func TestExportToStdout(t *testing.T) {
	setupCLI(t)

	stdout, _, err := executeCommand(t, "export", "--builtin", "dark")
	require.NoError(t, err)

	var env map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &env))
	require.Equal(t, "1.0", env["version"])
	require.Equal(t, "2025-03-04T05:06:07Z", env["exportedAt"])
	require.Equal(t, "themekit", env["exportedBy"])
	require.Equal(t, "default-dark", env["theme"].(map[string]any)["id"])

	stdout, _, err = executeCommand(t, "export", "--yaml")
	require.NoError(t, err)
	require.Contains(t, stdout, `version: "1.0"`)
	require.Contains(t, stdout, "id: default-light")
}

func TestExportFileThenImport(t *testing.T) {
	setupCLI(t)
	path := filepath.Join(t.TempDir(), "out.json")

	_, stderr, err := executeCommand(t, "export", "--builtin", "light", "--out", path)
	require.NoError(t, err)
	require.Contains(t, stderr, "exported default-light")

	stdout, _, err := executeCommand(t, "import", path)
	require.NoError(t, err)

	var imported theme.Theme
	require.NoError(t, json.Unmarshal([]byte(stdout), &imported))
	require.Equal(t, theme.Light(), imported)
}

func TestExportClipboardThenImport(t *testing.T) {
	mem := setupCLI(t)

	_, _, err := executeCommand(t, "export", "--builtin", "dark", "--clipboard")
	require.NoError(t, err)

	text, err := mem.ReadText(context.Background())
	require.NoError(t, err)
	require.Contains(t, text, `"default-dark"`)

	stdout, _, err := executeCommand(t, "--json", "import", "--clipboard")
	require.NoError(t, err)

	var imported theme.Theme
	require.NoError(t, json.Unmarshal([]byte(stdout), &imported))
	require.Equal(t, "default-dark", imported.ID)
}

func TestImportClipboardFailure(t *testing.T) {
	mem := setupCLI(t)
	mem.FailWith(errors.New("no display"))

	stdout, _, err := executeCommand(t, "import", "--clipboard")
	requireExitCode(t, err, 1)
	require.Contains(t, stdout, "io error: read clipboard: no display")
}

func TestExportRejectsConflictingTargets(t *testing.T) {
	setupCLI(t)

	_, _, err := executeCommand(t, "export", "--out", "x.json", "--clipboard")
	require.ErrorContains(t, err, "mutually exclusive")

	_, _, err = executeCommand(t, "import")
	require.ErrorContains(t, err, "--clipboard is required")
}

func TestMetricsFileIsWritten(t *testing.T) {
	setupCLI(t)
	metricsPath := filepath.Join(t.TempDir(), "themekit.prom")

	_, _, err := executeCommand(t, "--metrics-file", metricsPath, "audit", "--builtin", "light")
	require.NoError(t, err)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `themekit_audits_total{accessible="true"} 1`)
	require.Contains(t, string(data), "themekit_last_audit_issues 0")
}

func TestConfigFlagAppliesSettings(t *testing.T) {
	setupCLI(t)
	dir := t.TempDir()

	cfg := filepath.Join(dir, "themekit.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("exported_by: studio\nlog_level: error\n"), 0o644))

	stdout, _, err := executeCommand(t, "--config", cfg, "export")
	require.NoError(t, err)
	require.Contains(t, stdout, `"exportedBy": "studio"`)

	_, _, err = executeCommand(t, "--config", filepath.Join(dir, "missing.yaml"), "export")
	require.ErrorContains(t, err, "load settings")
}
