package theme

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/themekit/internal/color"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	isoLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04",
		"2006-01-02",
	}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
			return color.IsValid(fl.Field().String())
		})

		_ = v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		_ = v.RegisterValidation("iso8601", func(fl validator.FieldLevel) bool {
			_, ok := ParseISOTime(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator with the color, nonblank and iso8601 tags registered.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ParseISOTime parses an ISO-8601 date or date-time string.
func ParseISOTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// Validate reports whether candidate is a structurally valid theme. candidate may be
// a Theme, a *Theme, or a loosely typed map as produced by decoding JSON or YAML.
func Validate(candidate any) bool {
	return len(Check(candidate)) == 0
}

// Check returns every violation found in candidate, with field paths relative to the theme.
func Check(candidate any) themeerrors.Violations {
	return CheckAt(candidate, "")
}

// CheckAt is Check with every field path prefixed by path (e.g. "theme").
func CheckAt(candidate any, path string) themeerrors.Violations {
	switch c := candidate.(type) {
	case Theme:
		return validateStruct(c, path)
	case *Theme:
		if c == nil {
			return themeerrors.Violations{themeerrors.NewStructuralError(pathOrRoot(path), "theme is required", nil)}
		}
		return validateStruct(*c, path)
	default:
		_, violations := ProjectAt(candidate, path)
		return violations
	}
}

// ValidateTheme validates a typed theme and returns nil or a Violations error.
func ValidateTheme(t Theme) error {
	return validateStruct(t, "").Err()
}

func validateStruct(t Theme, path string) themeerrors.Violations {
	err := validatorInstance().Struct(t)
	if err == nil {
		return nil
	}
	return convertValidationErrors(err, path, nil)
}

// convertValidationErrors maps validator failures onto the error taxonomy, skipping
// any field already present in skip.
func convertValidationErrors(err error, path string, skip map[string]struct{}) themeerrors.Violations {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return themeerrors.Violations{themeerrors.NewStructuralError(pathOrRoot(path), err.Error(), err)}
	}

	out := make(themeerrors.Violations, 0, len(ves))
	for _, fe := range ves {
		field := joinPath(path, fieldPath(fe))
		if _, seen := skip[field]; seen {
			continue
		}
		value := fmt.Sprint(fe.Value())
		switch fe.Tag() {
		case "required":
			out = append(out, themeerrors.NewStructuralError(field, "is required", nil))
		case "nonblank":
			out = append(out, themeerrors.NewStructuralError(field, "must not be blank", nil))
		case "oneof":
			out = append(out, themeerrors.NewStructuralError(field, fmt.Sprintf("must be one of [%s], got %q", strings.ReplaceAll(fe.Param(), " ", ", "), value), nil))
		case "color":
			out = append(out, themeerrors.NewFormatError(field, value, fmt.Sprintf("%q is not a recognised color", value)))
		case "iso8601":
			out = append(out, themeerrors.NewFormatError(field, value, fmt.Sprintf("%q is not an ISO-8601 date", value)))
		default:
			out = append(out, themeerrors.NewStructuralError(field, fmt.Sprintf("failed validation for tag '%s'", fe.Tag()), nil))
		}
	}
	return out
}

// fieldPath drops the root struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func joinPath(prefix, field string) string {
	if prefix == "" {
		return field
	}
	if field == "" {
		return prefix
	}
	return prefix + "." + field
}

func pathOrRoot(path string) string {
	if path == "" {
		return "theme"
	}
	return path
}
