package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	cfgpkg "github.com/alexisbeaulieu97/themekit/internal/config"
	"github.com/alexisbeaulieu97/themekit/internal/ports"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// YAMLLoader implements the SettingsLoader port by reading YAML files from disk
// and overlaying environment overrides.
type YAMLLoader struct {
	logger     ports.Logger
	dotenvPath string
	lookup     cfgpkg.LookupFunc
}

// LoaderOption customises a YAMLLoader.
type LoaderOption func(*YAMLLoader)

// WithDotenv sets the dotenv file consulted for overrides. An empty path disables it.
func WithDotenv(path string) LoaderOption {
	return func(l *YAMLLoader) {
		l.dotenvPath = path
	}
}

// WithLookup replaces the environment lookup, bypassing dotenv and the process environment.
func WithLookup(lookup cfgpkg.LookupFunc) LoaderOption {
	return func(l *YAMLLoader) {
		l.lookup = lookup
	}
}

func NewYAMLLoader(logger ports.Logger, opts ...LoaderOption) *YAMLLoader {
	l := &YAMLLoader{logger: logger, dotenvPath: ".env"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads settings from path. An empty path falls back to cfgpkg.DefaultConfigFile
// and tolerates its absence; an explicit path must exist.
func (l *YAMLLoader) Load(ctx context.Context, path string) (cfgpkg.Settings, error) {
	if err := contextCheck(ctx); err != nil {
		return cfgpkg.Settings{}, err
	}

	explicit := path != ""
	if !explicit {
		path = cfgpkg.DefaultConfigFile
	}

	data, err := l.read(ctx, path, explicit)
	if err != nil {
		return cfgpkg.Settings{}, err
	}

	settings, err := cfgpkg.Parse(path, data)
	if err != nil {
		l.logError(ctx, "settings failed validation", err, map[string]interface{}{"path": path})
		return cfgpkg.Settings{}, err
	}

	lookup := l.lookup
	if lookup == nil {
		lookup, err = cfgpkg.EnvLookup(l.dotenvPath)
		if err != nil {
			l.logError(ctx, "dotenv read failed", err, map[string]interface{}{"path": l.dotenvPath})
			return cfgpkg.Settings{}, err
		}
	}

	settings, err = cfgpkg.ApplyEnv(settings, lookup)
	if err != nil {
		l.logError(ctx, "environment overrides rejected", err, nil)
		return cfgpkg.Settings{}, err
	}

	l.logDebug(ctx, "settings loaded", map[string]interface{}{
		"path":             path,
		"supported":        settings.SupportedVersion,
		"max_import_bytes": settings.MaxImportBytes,
	})
	return settings, nil
}

func (l *YAMLLoader) read(ctx context.Context, path string, explicit bool) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			l.logDebug(ctx, "no settings file, using defaults", map[string]interface{}{"path": path})
			return nil, nil
		}
		l.logError(ctx, "settings path stat failed", err, map[string]interface{}{"path": path})
		return nil, themeerrors.NewIOError(path, "stat", err)
	}
	if info.IsDir() {
		return nil, themeerrors.NewStructuralError(path, "settings path is a directory", nil)
	}

	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
	default:
		return nil, themeerrors.NewStructuralError(path, "unsupported settings file extension "+ext, nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		l.logError(ctx, "settings read failed", err, map[string]interface{}{"path": path})
		return nil, themeerrors.NewIOError(path, "read", err)
	}
	return data, nil
}

var _ ports.SettingsLoader = (*YAMLLoader)(nil)

func contextCheck(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return themeerrors.NewIOError("settings", "load", err)
	}
	return nil
}

func (l *YAMLLoader) logDebug(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Debug(ctx, msg, flattenFields(fields)...)
}

func (l *YAMLLoader) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	payload := make(map[string]interface{}, len(fields)+2)
	for k, v := range fields {
		payload[k] = v
	}
	payload["error"] = err
	l.logger.Error(ctx, msg, flattenFields(payload)...)
}

func flattenFields(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]interface{}, 0, len(fields)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}
