package theme

// BuiltIns returns fresh copies of the default light and dark themes.
func BuiltIns() []Theme {
	return []Theme{Light(), Dark()}
}

// BuiltIn looks up a built-in theme by mode.
func BuiltIn(mode Mode) (Theme, bool) {
	for _, t := range BuiltIns() {
		if t.Mode == mode {
			return t, true
		}
	}
	return Theme{}, false
}

// Light is the default light theme.
func Light() Theme {
	return Theme{
		ID:          "default-light",
		Name:        "Default Light",
		Description: "Neutral light theme",
		Author:      "themekit",
		Version:     "1.0.0",
		Tags:        []string{"light", "default"},
		IsBuiltIn:   boolPtr(true),
		Mode:        ModeLight,
		Colors: Colors{
			Primary:       "#2563eb",
			Secondary:     "#7c3aed",
			Accent:        "#db2777",
			Background:    "#ffffff",
			Surface:       "#f8fafc",
			Text:          "#0f172a",
			TextSecondary: "#475569",
			Border:        "#e2e8f0",
			Error:         "#dc2626",
			Warning:       "#d97706",
			Success:       "#16a34a",
		},
	}
}

// Dark is the default dark theme.
func Dark() Theme {
	return Theme{
		ID:          "default-dark",
		Name:        "Default Dark",
		Description: "Neutral dark theme",
		Author:      "themekit",
		Version:     "1.0.0",
		Tags:        []string{"dark", "default"},
		IsBuiltIn:   boolPtr(true),
		Mode:        ModeDark,
		Colors: Colors{
			Primary:       "#60a5fa",
			Secondary:     "#a78bfa",
			Accent:        "#f472b6",
			Background:    "#0f172a",
			Surface:       "#1e293b",
			Text:          "#f1f5f9",
			TextSecondary: "#94a3b8",
			Border:        "#334155",
			Error:         "#f87171",
			Warning:       "#fbbf24",
			Success:       "#4ade80",
		},
	}
}

func boolPtr(v bool) *bool {
	return &v
}
