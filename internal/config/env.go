package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Environment variables that override file settings.
const (
	EnvLogLevel            = "THEMEKIT_LOG_LEVEL"
	EnvExportedBy          = "THEMEKIT_EXPORTED_BY"
	EnvMaxImportBytes      = "THEMEKIT_MAX_IMPORT_BYTES"
	EnvAcceptMinorVersions = "THEMEKIT_ACCEPT_MINOR_VERSIONS"
)

// LookupFunc resolves an environment variable.
type LookupFunc func(key string) (string, bool)

// EnvLookup resolves variables from the process environment first and then from the
// dotenv file at path. A missing dotenv file is not an error.
func EnvLookup(path string) (LookupFunc, error) {
	values := map[string]string{}
	if path != "" {
		loaded, err := godotenv.Read(path)
		switch {
		case err == nil:
			values = loaded
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, themeerrors.NewIOError(path, "read", err)
		}
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}, nil
}

// ApplyEnv overlays recognised environment overrides onto settings and re-validates.
func ApplyEnv(settings Settings, lookup LookupFunc) (Settings, error) {
	if lookup == nil {
		return settings, nil
	}

	var violations themeerrors.Violations
	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		settings.LogLevel = v
	}
	if v, ok := lookup(EnvExportedBy); ok {
		settings.ExportedBy = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvMaxImportBytes); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			violations = append(violations, themeerrors.NewStructuralError(EnvMaxImportBytes, "must be an integer", err))
		} else {
			settings.MaxImportBytes = n
		}
	}
	if v, ok := lookup(EnvAcceptMinorVersions); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			violations = append(violations, themeerrors.NewStructuralError(EnvAcceptMinorVersions, "must be a boolean", err))
		} else {
			settings.AcceptMinorVersions = b
		}
	}
	if len(violations) > 0 {
		return Settings{}, violations
	}

	settings.normalize()
	if err := Validate(settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}
