package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

func validateInputFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("theme file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve theme path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("theme file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("theme path %s is a directory", abs)
	}

	return nil
}

// themeSource selects where a command reads its theme from: a built-in or a file.
type themeSource struct {
	builtin string
	file    string
}

func (s themeSource) validate() error {
	switch {
	case s.builtin != "" && s.file != "":
		return fmt.Errorf("--builtin and a theme file are mutually exclusive")
	case s.builtin != "":
		if _, ok := theme.BuiltIn(theme.Mode(s.builtin)); !ok {
			return fmt.Errorf("unknown built-in theme %q (want light or dark)", s.builtin)
		}
		return nil
	case s.file == "":
		return fmt.Errorf("a theme file or --builtin is required")
	default:
		return validateInputFile(s.file)
	}
}
