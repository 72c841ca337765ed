package theme

import (
	"strings"

	"github.com/alexisbeaulieu97/themekit/internal/color"
	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// UnsafeCharacters are stripped from every free-text field.
const UnsafeCharacters = `<>'"\()`

var unsafeReplacer = strings.NewReplacer(
	"<", "",
	">", "",
	"'", "",
	`"`, "",
	`\`, "",
	"(", "",
	")", "",
)

// Sanitize validates candidate, strips markup characters from its free-text fields and
// rewrites every color in canonical form. It returns an error instead of a partially
// sanitized theme when the input is invalid or stops being valid after sanitization.
// Sanitize is idempotent and never modifies candidate.
func Sanitize(candidate Theme) (Theme, error) {
	return SanitizeAt(candidate, "")
}

// SanitizeAt is Sanitize with every reported field path prefixed by path.
func SanitizeAt(candidate Theme, path string) (Theme, error) {
	if violations := CheckAt(candidate, path); len(violations) > 0 {
		return Theme{}, violations
	}

	out := candidate.Clone()
	out.ID = StripUnsafe(out.ID)
	out.Name = StripUnsafe(out.Name)
	out.Description = StripUnsafe(out.Description)
	out.Author = StripUnsafe(out.Author)
	out.Version = StripUnsafe(out.Version)
	for i, tag := range out.Tags {
		out.Tags[i] = StripUnsafe(tag)
	}

	for _, role := range RequiredRoles {
		field := joinPath(path, "colors."+string(role))
		parsed, err := color.Parse(out.Colors.Get(role))
		if err != nil {
			return Theme{}, themeerrors.Violations{themeerrors.NewSecurityRejection(field, "color did not survive re-parsing", err)}
		}
		out.Colors = out.Colors.With(role, parsed.Canonical())
	}

	if violations := CheckAt(out, path); len(violations) > 0 {
		rejected := make(themeerrors.Violations, 0, len(violations))
		for _, v := range violations {
			rejected = append(rejected, themeerrors.NewSecurityRejection(themeerrors.FieldOf(v), "no longer valid after sanitization", v))
		}
		return Theme{}, rejected
	}
	return out, nil
}

// SanitizeRaw projects a loosely typed candidate onto a Theme and sanitizes it.
func SanitizeRaw(candidate any) (Theme, error) {
	t, violations := Project(candidate)
	if len(violations) > 0 {
		return Theme{}, violations
	}
	return Sanitize(t)
}

// StripUnsafe removes UnsafeCharacters from s and trims surrounding whitespace.
func StripUnsafe(s string) string {
	return strings.TrimSpace(unsafeReplacer.Replace(s))
}
