package theme

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const validThemeJSON = `{
  "id": "ocean",
  "name": "Ocean",
  "description": "Blue and calm",
  "author": "sam",
  "version": "2.1.0",
  "tags": ["blue", "calm"],
  "isBuiltIn": false,
  "createdAt": "2024-05-01T12:00:00Z",
  "mode": "dark",
  "onclick": "alert(1)",
  "colors": {
    "primary": "#0ea5e9",
    "secondary": "rgb(14, 116, 144)",
    "accent": "hsl(190, 90%, 50%)",
    "background": "#082f49",
    "surface": "#0c4a6e",
    "text": "#f0f9ff",
    "textSecondary": "#bae6fd",
    "border": "#075985",
    "error": "red",
    "warning": "#fbbf24",
    "success": "#34d399",
    "glow": "url(javascript:alert(1))"
  }
}`

func decodeJSON(t *testing.T, doc string) map[string]any {
	t.Helper()
	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &raw))
	return raw
}

func TestProjectKeepsOnlyKnownFields(t *testing.T) {
	t.Parallel()

	th, violations := Project(decodeJSON(t, validThemeJSON))
	require.Empty(t, violations)

	require.Equal(t, "ocean", th.ID)
	require.Equal(t, ModeDark, th.Mode)
	require.Equal(t, []string{"blue", "calm"}, th.Tags)
	require.NotNil(t, th.IsBuiltIn)
	require.False(t, *th.IsBuiltIn)
	require.Equal(t, "hsl(190, 90%, 50%)", th.Colors.Accent)

	encoded, err := json.Marshal(th)
	require.NoError(t, err)
	require.NotContains(t, string(encoded), "onclick")
	require.NotContains(t, string(encoded), "glow")
}

func TestProjectFromYAML(t *testing.T) {
	t.Parallel()

	var raw any
	require.NoError(t, yaml.Unmarshal([]byte(validThemeJSON), &raw))

	th, violations := Project(raw)
	require.Empty(t, violations)
	require.Equal(t, "Ocean", th.Name)
	require.Equal(t, "2024-05-01T12:00:00Z", th.CreatedAt)
}

func TestProjectReportsTypeErrors(t *testing.T) {
	t.Parallel()

	raw := decodeJSON(t, validThemeJSON)
	raw["id"] = 42
	raw["tags"] = []any{"ok", 7}
	raw["isBuiltIn"] = "yes"
	raw["description"] = []any{"x"}

	_, violations := Project(raw)
	messages := violations.Messages()
	require.Len(t, messages, 4)
	require.Contains(t, messages, "structural error: id: must be a string, got number")
	require.Contains(t, messages, "structural error: tags[1]: must be a string, got number")
	require.Contains(t, messages, "structural error: isBuiltIn: must be a boolean, got string")
	require.Contains(t, messages, "structural error: description: must be a string, got array")
}

func TestProjectReportsEveryProblem(t *testing.T) {
	t.Parallel()

	raw := decodeJSON(t, validThemeJSON)
	delete(raw, "name")
	raw["mode"] = "system"
	colors := raw["colors"].(map[string]any)
	delete(colors, "primary")
	colors["text"] = "hsl(720,150%,50%)"

	_, violations := ProjectAt(raw, "theme")
	messages := violations.Messages()
	require.Len(t, messages, 4)
	require.Contains(t, violations.Error(), "theme.name")
	require.Contains(t, violations.Error(), "theme.mode")
	require.Contains(t, violations.Error(), "theme.colors.primary")
	require.Contains(t, violations.Error(), "theme.colors.text")
}

func TestProjectMissingColorsReportedOnce(t *testing.T) {
	t.Parallel()

	raw := decodeJSON(t, validThemeJSON)
	delete(raw, "colors")

	_, violations := Project(raw)
	require.Equal(t, []string{"structural error: colors: is required"}, violations.Messages())

	raw["colors"] = "#fff"
	_, violations = Project(raw)
	require.Equal(t, []string{"structural error: colors: must be an object, got string"}, violations.Messages())
}

func TestProjectRejectsNonObjects(t *testing.T) {
	t.Parallel()

	_, violations := Project(nil)
	require.Equal(t, []string{"structural error: theme: is required"}, violations.Messages())

	_, violations = Project([]any{"a"})
	require.Equal(t, []string{"structural error: theme: must be an object, got array"}, violations.Messages())

	require.False(t, Validate("not a theme"))
}

func TestValidateLooseCandidate(t *testing.T) {
	t.Parallel()

	require.True(t, Validate(decodeJSON(t, validThemeJSON)))

	raw := decodeJSON(t, validThemeJSON)
	delete(raw["colors"].(map[string]any), "success")
	require.False(t, Validate(raw))
}

func TestAsMapConvertsInterfaceKeys(t *testing.T) {
	t.Parallel()

	m, ok := AsMap(map[any]any{"id": "x"})
	require.True(t, ok)
	require.Equal(t, "x", m["id"])

	_, ok = AsMap(map[any]any{1: "x"})
	require.False(t, ok)
}
