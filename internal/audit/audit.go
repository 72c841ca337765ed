// Package audit checks the critical text/background pairs of a theme against WCAG AA.
package audit

import (
	"github.com/alexisbeaulieu97/themekit/internal/contrast"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// Pair is a foreground role drawn on a background role.
type Pair struct {
	Foreground theme.Role
	Background theme.Role
}

// CriticalPairs are the only pairs an audit evaluates.
var CriticalPairs = []Pair{
	{Foreground: theme.RoleText, Background: theme.RoleBackground},
	{Foreground: theme.RoleTextSecondary, Background: theme.RoleBackground},
	{Foreground: theme.RoleText, Background: theme.RoleSurface},
	{Foreground: theme.RoleTextSecondary, Background: theme.RoleSurface},
}

// Issue is a critical pair that misses the AA threshold.
type Issue struct {
	Pair     [2]string       `json:"pair"`
	Contrast contrast.Result `json:"contrast"`
}

// Report is the outcome of auditing one theme.
type Report struct {
	IsAccessible bool    `json:"isAccessible"`
	Issues       []Issue `json:"issues"`
}

// PairResult is the evaluation of a single critical pair, passing or not.
type PairResult struct {
	Pair       Pair
	Foreground string
	Background string
	Contrast   contrast.Result
}

// Evaluate returns the contrast of every critical pair in order.
func Evaluate(t theme.Theme) []PairResult {
	results := make([]PairResult, 0, len(CriticalPairs))
	for _, pair := range CriticalPairs {
		fg := t.Colors.Get(pair.Foreground)
		bg := t.Colors.Get(pair.Background)
		results = append(results, PairResult{
			Pair:       pair,
			Foreground: fg,
			Background: bg,
			Contrast:   contrast.Evaluate(fg, bg),
		})
	}
	return results
}

// Audit reports every critical pair below AA. AAA shortfalls are not issues.
func Audit(t theme.Theme) Report {
	report := Report{Issues: []Issue{}}
	for _, result := range Evaluate(t) {
		if result.Contrast.MeetsAA {
			continue
		}
		report.Issues = append(report.Issues, Issue{
			Pair:     [2]string{string(result.Pair.Foreground), string(result.Pair.Background)},
			Contrast: result.Contrast,
		})
	}
	report.IsAccessible = len(report.Issues) == 0
	return report
}
