// Package theme validates and sanitizes theme configurations.
//
// A Theme is never patched after validation: every entry point (direct edit,
// import) re-validates and re-sanitizes and produces a replacement value.
package theme

// Mode is the concrete appearance a theme targets. The "system" preference is
// resolved by the UI layer and never reaches this package.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Role names a semantic color slot.
type Role string

const (
	RolePrimary       Role = "primary"
	RoleSecondary     Role = "secondary"
	RoleAccent        Role = "accent"
	RoleBackground    Role = "background"
	RoleSurface       Role = "surface"
	RoleText          Role = "text"
	RoleTextSecondary Role = "textSecondary"
	RoleBorder        Role = "border"
	RoleError         Role = "error"
	RoleWarning       Role = "warning"
	RoleSuccess       Role = "success"
)

// RequiredRoles lists every color role a theme must define, in display order.
var RequiredRoles = []Role{
	RolePrimary,
	RoleSecondary,
	RoleAccent,
	RoleBackground,
	RoleSurface,
	RoleText,
	RoleTextSecondary,
	RoleBorder,
	RoleError,
	RoleWarning,
	RoleSuccess,
}

// Colors maps each required role to a color string.
type Colors struct {
	Primary       string `json:"primary" yaml:"primary" validate:"required,color"`
	Secondary     string `json:"secondary" yaml:"secondary" validate:"required,color"`
	Accent        string `json:"accent" yaml:"accent" validate:"required,color"`
	Background    string `json:"background" yaml:"background" validate:"required,color"`
	Surface       string `json:"surface" yaml:"surface" validate:"required,color"`
	Text          string `json:"text" yaml:"text" validate:"required,color"`
	TextSecondary string `json:"textSecondary" yaml:"textSecondary" validate:"required,color"`
	Border        string `json:"border" yaml:"border" validate:"required,color"`
	Error         string `json:"error" yaml:"error" validate:"required,color"`
	Warning       string `json:"warning" yaml:"warning" validate:"required,color"`
	Success       string `json:"success" yaml:"success" validate:"required,color"`
}

// Get returns the color assigned to role, or "" for an unknown role.
func (c Colors) Get(role Role) string {
	if p := c.slot(role); p != nil {
		return *p
	}
	return ""
}

// With returns a copy of c with role set to value. Unknown roles leave the copy unchanged.
func (c Colors) With(role Role, value string) Colors {
	if p := c.slot(role); p != nil {
		*p = value
	}
	return c
}

func (c *Colors) slot(role Role) *string {
	switch role {
	case RolePrimary:
		return &c.Primary
	case RoleSecondary:
		return &c.Secondary
	case RoleAccent:
		return &c.Accent
	case RoleBackground:
		return &c.Background
	case RoleSurface:
		return &c.Surface
	case RoleText:
		return &c.Text
	case RoleTextSecondary:
		return &c.TextSecondary
	case RoleBorder:
		return &c.Border
	case RoleError:
		return &c.Error
	case RoleWarning:
		return &c.Warning
	case RoleSuccess:
		return &c.Success
	default:
		return nil
	}
}

// Theme is the metadata, mode and colors of a theme. Metadata fields are kept
// flat so that field paths in validation messages match the wire names.
type Theme struct {
	ID          string   `json:"id" yaml:"id" validate:"required,nonblank"`
	Name        string   `json:"name" yaml:"name" validate:"required,nonblank"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Author      string   `json:"author,omitempty" yaml:"author,omitempty"`
	Version     string   `json:"version,omitempty" yaml:"version,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	IsBuiltIn   *bool    `json:"isBuiltIn,omitempty" yaml:"isBuiltIn,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty" yaml:"createdAt,omitempty" validate:"omitempty,iso8601"`
	UpdatedAt   string   `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty" validate:"omitempty,iso8601"`
	Mode        Mode     `json:"mode" yaml:"mode" validate:"required,oneof=light dark"`
	Colors      Colors   `json:"colors" yaml:"colors"`
}

// Clone returns a deep copy so callers never share slices or pointers with the original.
func (t Theme) Clone() Theme {
	out := t
	if t.Tags != nil {
		out.Tags = append([]string(nil), t.Tags...)
	}
	if t.IsBuiltIn != nil {
		v := *t.IsBuiltIn
		out.IsBuiltIn = &v
	}
	return out
}
