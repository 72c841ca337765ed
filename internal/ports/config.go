package ports

import (
	"context"

	"github.com/alexisbeaulieu97/themekit/internal/config"
)

// SettingsLoader loads themekit settings from an external source such as the
// filesystem. Implementations must respect context cancellation and return
// defaults overlaid with environment overrides when no source is given.
//
// Error mapping expectations:
//   - missing file → *errors.IOError wrapping io/fs.ErrNotExist
//   - YAML syntax or validation failures → errors.Violations or *errors.StructuralError
type SettingsLoader interface {
	Load(ctx context.Context, path string) (config.Settings, error)
}
