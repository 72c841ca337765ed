// Package config holds themekit's runtime settings.
package config

// DefaultConfigFile is read when no --config flag is given and the file exists.
const DefaultConfigFile = "themekit.yaml"

// Default values for Settings.
const (
	DefaultSupportedVersion = "1.0"
	DefaultMinImportBytes   = 10
	DefaultMaxImportBytes   = 1 << 20
	DefaultExportedBy       = "themekit"
	DefaultLogLevel         = "info"
)

// Settings configures import limits, envelope versioning and logging.
type Settings struct {
	SupportedVersion     string   `yaml:"supported_version" validate:"required,envelope_version"`
	AcceptMinorVersions  bool     `yaml:"accept_minor_versions,omitempty"`
	MinImportBytes       int64    `yaml:"min_import_bytes" validate:"min=1,ltfield=MaxImportBytes"`
	MaxImportBytes       int64    `yaml:"max_import_bytes" validate:"min=1,max=67108864"`
	AcceptedExtensions   []string `yaml:"accepted_extensions" validate:"required,min=1,dive,file_extension"`
	AcceptedContentTypes []string `yaml:"accepted_content_types" validate:"required,min=1,dive,media_type"`
	ExportedBy           string   `yaml:"exported_by,omitempty" validate:"max=100"`
	LogLevel             string   `yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Settings {
	return Settings{
		SupportedVersion:     DefaultSupportedVersion,
		MinImportBytes:       DefaultMinImportBytes,
		MaxImportBytes:       DefaultMaxImportBytes,
		AcceptedExtensions:   []string{".json", ".theme", ".yaml", ".yml"},
		AcceptedContentTypes: []string{"application/json", "text/plain", "application/x-yaml", "text/yaml"},
		ExportedBy:           DefaultExportedBy,
		LogLevel:             DefaultLogLevel,
	}
}
