package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Parse decodes a YAML settings document on top of Defaults and validates the result.
// Keys absent from data keep their default values.
func Parse(source string, data []byte) (Settings, error) {
	settings := Defaults()
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return Settings{}, themeerrors.NewStructuralError(source, syntaxMessage(err), err)
		}
	}
	settings.normalize()

	if err := Validate(settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Validate checks settings against their struct constraints and returns nil or a Violations error.
func Validate(settings Settings) error {
	err := validatorInstance().Struct(settings)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return themeerrors.NewStructuralError("settings", err.Error(), err)
	}

	out := make(themeerrors.Violations, 0, len(ves))
	for _, fe := range ves {
		out = append(out, themeerrors.NewStructuralError(settingsField(fe), ruleMessage(fe), nil))
	}
	return out
}

func (s *Settings) normalize() {
	s.SupportedVersion = strings.TrimSpace(s.SupportedVersion)
	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))
	for i, ext := range s.AcceptedExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		s.AcceptedExtensions[i] = ext
	}
	for i, ct := range s.AcceptedContentTypes {
		s.AcceptedContentTypes[i] = strings.ToLower(strings.TrimSpace(ct))
	}
}

func settingsField(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "ltfield":
		return "must be less than max_import_bytes"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", strings.ReplaceAll(fe.Param(), " ", ", "), fmt.Sprint(fe.Value()))
	case "envelope_version":
		return fmt.Sprintf("%q is not a MAJOR.MINOR version", fmt.Sprint(fe.Value()))
	case "file_extension":
		return fmt.Sprintf("%q is not a file extension", fmt.Sprint(fe.Value()))
	case "media_type":
		return fmt.Sprintf("%q is not a media type", fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}

func syntaxMessage(err error) string {
	if line := extractLine(err); line > 0 {
		return fmt.Sprintf("invalid YAML at line %d", line)
	}
	return "invalid YAML"
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
