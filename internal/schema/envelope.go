// Package schema is the boundary for theme documents crossing into or out of
// themekit: the versioned export envelope, its validation, and the importer
// and exporter that move envelopes through files and the clipboard.
package schema

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// CurrentVersion is the envelope version written by exports.
const CurrentVersion = "1.0"

// Envelope wraps a theme for export.
type Envelope struct {
	Version    string      `json:"version" yaml:"version"`
	Theme      theme.Theme `json:"theme" yaml:"theme"`
	ExportedAt string      `json:"exportedAt" yaml:"exportedAt"`
	ExportedBy string      `json:"exportedBy,omitempty" yaml:"exportedBy,omitempty"`
}

// NewEnvelope wraps t at CurrentVersion, stamped with now in UTC.
func NewEnvelope(t theme.Theme, exportedBy string, now time.Time) Envelope {
	return Envelope{
		Version:    CurrentVersion,
		Theme:      t,
		ExportedAt: now.UTC().Format(time.RFC3339),
		ExportedBy: exportedBy,
	}
}

// Result is the outcome of validating an envelope.
type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// Policy decides which envelope versions are accepted.
type Policy struct {
	SupportedVersion    string
	AcceptMinorVersions bool
}

// DefaultPolicy accepts CurrentVersion only.
func DefaultPolicy() Policy {
	return Policy{SupportedVersion: CurrentVersion}
}

// Accepts reports whether version is supported. Without AcceptMinorVersions the
// match is exact; with it any MAJOR.MINOR sharing the supported major is accepted.
func (p Policy) Accepts(version string) bool {
	supported := p.SupportedVersion
	if supported == "" {
		supported = CurrentVersion
	}
	if version == supported {
		return true
	}
	if !p.AcceptMinorVersions {
		return false
	}
	wantMajor, _, ok := splitVersion(supported)
	if !ok {
		return false
	}
	gotMajor, _, ok := splitVersion(version)
	return ok && gotMajor == wantMajor
}

func (p Policy) expected() string {
	if p.SupportedVersion == "" {
		return CurrentVersion
	}
	return p.SupportedVersion
}

func splitVersion(v string) (int, int, bool) {
	majorStr, minorStr, found := strings.Cut(v, ".")
	if !found {
		return 0, 0, false
	}
	major, err := strconv.Atoi(majorStr)
	if err != nil || major < 0 {
		return 0, 0, false
	}
	minor, err := strconv.Atoi(minorStr)
	if err != nil || minor < 0 {
		return 0, 0, false
	}
	return major, minor, true
}

// ValidateEnvelope checks raw against the default policy.
func ValidateEnvelope(raw any) Result {
	return DefaultPolicy().Validate(raw)
}

// NormalizeEnvelope normalizes raw under the default policy.
func NormalizeEnvelope(raw any) (Envelope, themeerrors.Violations) {
	return DefaultPolicy().Normalize(raw)
}

// Validate reports every constraint raw violates, one message per violation.
func (p Policy) Validate(raw any) Result {
	_, violations := p.Normalize(raw)
	if len(violations) > 0 {
		return Result{IsValid: false, Errors: violations.Messages()}
	}
	return Result{IsValid: true, Errors: []string{}}
}

// Normalize projects raw onto an Envelope, keeping only recognised fields and
// sanitizing the theme. It returns either an envelope or violations, never both.
func (p Policy) Normalize(raw any) (Envelope, themeerrors.Violations) {
	obj, ok := theme.AsMap(raw)
	if !ok {
		return Envelope{}, themeerrors.Violations{
			themeerrors.NewStructuralError("envelope", fmt.Sprintf("must be an object, got %s", theme.TypeName(raw)), nil),
		}
	}

	var (
		env        Envelope
		violations themeerrors.Violations
	)

	if version, present, err := stringField(obj, "version"); err != nil {
		violations = append(violations, err)
	} else if !present {
		violations = append(violations, themeerrors.NewStructuralError("version", "is required", nil))
	} else if !p.Accepts(version) {
		violations = append(violations, themeerrors.NewStructuralError("version", fmt.Sprintf("unsupported version %q, expected %q", version, p.expected()), nil))
	} else {
		env.Version = version
	}

	if exportedAt, present, err := stringField(obj, "exportedAt"); err != nil {
		violations = append(violations, err)
	} else if !present {
		violations = append(violations, themeerrors.NewStructuralError("exportedAt", "is required", nil))
	} else if !isDateTime(exportedAt) {
		violations = append(violations, themeerrors.NewFormatError("exportedAt", exportedAt, fmt.Sprintf("%q is not an ISO-8601 date-time", exportedAt)))
	} else {
		env.ExportedAt = strings.TrimSpace(exportedAt)
	}

	if exportedBy, present, err := stringField(obj, "exportedBy"); err != nil {
		violations = append(violations, err)
	} else if present {
		env.ExportedBy = theme.StripUnsafe(exportedBy)
	}

	rawTheme, present := obj["theme"]
	if !present {
		violations = append(violations, themeerrors.NewStructuralError("theme", "is required", nil))
	} else if projected, themeViolations := theme.ProjectAt(rawTheme, "theme"); len(themeViolations) > 0 {
		violations = append(violations, themeViolations...)
	} else if sanitized, err := theme.SanitizeAt(projected, "theme"); err != nil {
		violations = append(violations, flatten(err)...)
	} else {
		env.Theme = sanitized
	}

	if len(violations) > 0 {
		return Envelope{}, violations
	}
	return env, nil
}

// stringField reads an optional string key. A present key holding another type is an error.
func stringField(obj map[string]any, key string) (string, bool, error) {
	value, present := obj[key]
	if !present || value == nil {
		return "", false, nil
	}
	s, ok := value.(string)
	if !ok {
		return "", true, themeerrors.NewStructuralError(key, fmt.Sprintf("must be a string, got %s", theme.TypeName(value)), nil)
	}
	return s, true, nil
}

// isDateTime accepts ISO-8601 values carrying a time component.
func isDateTime(value string) bool {
	if !strings.Contains(value, "T") {
		return false
	}
	_, ok := theme.ParseISOTime(value)
	return ok
}

func flatten(err error) themeerrors.Violations {
	if v, ok := err.(themeerrors.Violations); ok {
		return v
	}
	return themeerrors.Violations{err}
}
