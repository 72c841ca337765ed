package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

func TestParseEmptyDocumentYieldsDefaults(t *testing.T) {
	t.Parallel()

	settings, err := Parse("themekit.yaml", nil)
	require.NoError(t, err)
	require.Equal(t, Defaults(), settings)
	require.Equal(t, "1.0", settings.SupportedVersion)
	require.EqualValues(t, 10, settings.MinImportBytes)
	require.EqualValues(t, 1<<20, settings.MaxImportBytes)
	require.False(t, settings.AcceptMinorVersions)
}

func TestParseOverridesOnlyGivenKeys(t *testing.T) {
	t.Parallel()

	doc := []byte(`
accept_minor_versions: true
max_import_bytes: 4096
accepted_extensions: [JSON, ".Theme"]
log_level: DEBUG
`)
	settings, err := Parse("themekit.yaml", doc)
	require.NoError(t, err)
	require.True(t, settings.AcceptMinorVersions)
	require.EqualValues(t, 4096, settings.MaxImportBytes)
	require.EqualValues(t, DefaultMinImportBytes, settings.MinImportBytes)
	require.Equal(t, []string{".json", ".theme"}, settings.AcceptedExtensions)
	require.Equal(t, "debug", settings.LogLevel)
	require.Equal(t, Defaults().AcceptedContentTypes, settings.AcceptedContentTypes)
}

func TestParseRejectsInvalidSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"bad version", "supported_version: v1", "supported_version"},
		{"floor above ceiling", "min_import_bytes: 5000\nmax_import_bytes: 100", "min_import_bytes"},
		{"ceiling too large", "max_import_bytes: 1000000000", "max_import_bytes"},
		{"bad log level", "log_level: loud", "log_level"},
		{"empty extensions", "accepted_extensions: []", "accepted_extensions"},
		{"bad media type", "accepted_content_types: [json]", "accepted_content_types[0]"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse("themekit.yaml", []byte(tc.doc))
			require.Error(t, err)

			var violations themeerrors.Violations
			require.ErrorAs(t, err, &violations)
			require.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestParseReportsYAMLLine(t *testing.T) {
	t.Parallel()

	_, err := Parse("settings.yaml", []byte("log_level: info\nmax_import_bytes: [1\n"))
	require.Error(t, err)

	var structuralErr *themeerrors.StructuralError
	require.ErrorAs(t, err, &structuralErr)
	require.Equal(t, "settings.yaml", structuralErr.Field)
	require.Contains(t, structuralErr.Message, "invalid YAML")
}

func TestApplyEnvOverlaysValues(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		EnvLogLevel:            "warn",
		EnvExportedBy:          "  studio  ",
		EnvMaxImportBytes:      "2048",
		EnvAcceptMinorVersions: "true",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	settings, err := ApplyEnv(Defaults(), lookup)
	require.NoError(t, err)
	require.Equal(t, "warn", settings.LogLevel)
	require.Equal(t, "studio", settings.ExportedBy)
	require.EqualValues(t, 2048, settings.MaxImportBytes)
	require.True(t, settings.AcceptMinorVersions)
}

func TestApplyEnvRejectsMalformedValues(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		EnvMaxImportBytes:      "lots",
		EnvAcceptMinorVersions: "sometimes",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	_, err := ApplyEnv(Defaults(), lookup)
	require.Error(t, err)
	require.Contains(t, err.Error(), EnvMaxImportBytes)
	require.Contains(t, err.Error(), EnvAcceptMinorVersions)

	settings, err := ApplyEnv(Defaults(), nil)
	require.NoError(t, err)
	require.Equal(t, Defaults(), settings)
}

func TestEnvLookupReadsDotenv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("THEMEKIT_TEST_ONLY_KEY=from-file\n"), 0o600))

	lookup, err := EnvLookup(path)
	require.NoError(t, err)

	v, ok := lookup("THEMEKIT_TEST_ONLY_KEY")
	require.True(t, ok)
	require.Equal(t, "from-file", v)

	t.Setenv("THEMEKIT_TEST_ONLY_KEY", "from-process")
	v, ok = lookup("THEMEKIT_TEST_ONLY_KEY")
	require.True(t, ok)
	require.Equal(t, "from-process", v)

	missing, err := EnvLookup(filepath.Join(dir, "absent.env"))
	require.NoError(t, err)
	_, ok = missing("THEMEKIT_TEST_ONLY_KEY_ABSENT")
	require.False(t, ok)
}

func TestGetValidatorIsShared(t *testing.T) {
	t.Parallel()

	require.Same(t, GetValidator(), GetValidator())
}
