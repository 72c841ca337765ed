package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

func TestValidateInputFile(t *testing.T) {
	dir := t.TempDir()

	require.ErrorContains(t, validateInputFile("  "), "theme file is required")
	require.ErrorContains(t, validateInputFile(dir), "is a directory")
	require.ErrorContains(t, validateInputFile(filepath.Join(dir, "nope.json")), "does not exist")
}

func TestThemeSourceValidate(t *testing.T) {
	require.NoError(t, themeSource{builtin: "light"}.validate())
	require.ErrorContains(t, themeSource{builtin: "light", file: "x.json"}.validate(), "mutually exclusive")
	require.ErrorContains(t, themeSource{}.validate(), "is required")
}

func TestLoadThemeRejectsUnknownBuiltIn(t *testing.T) {
	t.Parallel()

	got, err := loadTheme(context.Background(), nil, themeSource{builtin: "sepia"})
	require.ErrorContains(t, err, `unknown built-in theme "sepia"`)
	require.Equal(t, theme.Theme{}, got)

	got, err = loadTheme(context.Background(), nil, themeSource{builtin: "dark"})
	require.NoError(t, err)
	require.Equal(t, theme.Dark(), got)
}
