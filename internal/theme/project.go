package theme

import (
	"fmt"
	"time"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

// Project copies the recognised fields of a loosely typed theme (as decoded from
// JSON or YAML) into a Theme. Unknown fields, including unknown color roles, are
// dropped. The returned violations cover both type mismatches and the theme's
// validation rules; the Theme is only meaningful when there are none.
func Project(raw any) (Theme, themeerrors.Violations) {
	return ProjectAt(raw, "")
}

// ProjectAt is Project with every field path prefixed by path.
func ProjectAt(raw any, path string) (Theme, themeerrors.Violations) {
	obj, ok := AsMap(raw)
	if !ok {
		if raw == nil {
			return Theme{}, themeerrors.Violations{themeerrors.NewStructuralError(pathOrRoot(path), "is required", nil)}
		}
		return Theme{}, themeerrors.Violations{themeerrors.NewStructuralError(pathOrRoot(path), fmt.Sprintf("must be an object, got %s", TypeName(raw)), nil)}
	}

	p := projector{path: path, reported: make(map[string]struct{})}
	var t Theme

	t.ID = p.str(obj, "id")
	t.Name = p.str(obj, "name")
	t.Description = p.str(obj, "description")
	t.Author = p.str(obj, "author")
	t.Version = p.str(obj, "version")
	t.Tags = p.strSlice(obj, "tags")
	t.IsBuiltIn = p.boolPtr(obj, "isBuiltIn")
	t.CreatedAt = p.str(obj, "createdAt")
	t.UpdatedAt = p.str(obj, "updatedAt")
	t.Mode = Mode(p.str(obj, "mode"))
	t.Colors = p.colors(obj)

	violations := p.violations
	if err := validatorInstance().Struct(t); err != nil {
		violations = append(violations, convertValidationErrors(err, path, p.reported)...)
	}
	if len(violations) > 0 {
		return Theme{}, violations
	}
	return t, nil
}

type projector struct {
	path       string
	violations themeerrors.Violations
	reported   map[string]struct{}
}

func (p *projector) fail(field, message string) {
	full := joinPath(p.path, field)
	p.reported[full] = struct{}{}
	p.violations = append(p.violations, themeerrors.NewStructuralError(full, message, nil))
}

func (p *projector) str(obj map[string]any, key string) string {
	return p.strAt(obj, key, key)
}

func (p *projector) strAt(obj map[string]any, key, field string) string {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		p.fail(field, fmt.Sprintf("must be a string, got %s", TypeName(raw)))
		return ""
	}
	return s
}

func (p *projector) strSlice(obj map[string]any, key string) []string {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		p.fail(key, fmt.Sprintf("must be an array of strings, got %s", TypeName(raw)))
		return nil
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			p.fail(fmt.Sprintf("%s[%d]", key, i), fmt.Sprintf("must be a string, got %s", TypeName(item)))
			continue
		}
		out = append(out, s)
	}
	return out
}

func (p *projector) boolPtr(obj map[string]any, key string) *bool {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return nil
	}
	b, ok := raw.(bool)
	if !ok {
		p.fail(key, fmt.Sprintf("must be a boolean, got %s", TypeName(raw)))
		return nil
	}
	return &b
}

func (p *projector) colors(obj map[string]any) Colors {
	raw, present := obj["colors"]
	if !present || raw == nil {
		p.fail("colors", "is required")
		for _, role := range RequiredRoles {
			p.reported[joinPath(p.path, "colors."+string(role))] = struct{}{}
		}
		return Colors{}
	}
	m, ok := AsMap(raw)
	if !ok {
		p.fail("colors", fmt.Sprintf("must be an object, got %s", TypeName(raw)))
		for _, role := range RequiredRoles {
			p.reported[joinPath(p.path, "colors."+string(role))] = struct{}{}
		}
		return Colors{}
	}

	var c Colors
	for _, role := range RequiredRoles {
		c = c.With(role, p.strAt(m, string(role), "colors."+string(role)))
	}
	return c
}

// AsMap accepts the map shapes produced by encoding/json and yaml.v3.
func AsMap(raw any) (map[string]any, bool) {
	switch m := raw.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = v
		}
		return out, true
	default:
		return nil, false
	}
}

// TypeName names the JSON type of a decoded value for error messages.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64, float64:
		return "number"
	case []any:
		return "array"
	case map[string]any, map[any]any:
		return "object"
	case time.Time:
		return "timestamp"
	default:
		return fmt.Sprintf("%T", v)
	}
}
