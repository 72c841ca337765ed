package render

import (
	"fmt"

	prettytable "github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/alexisbeaulieu97/themekit/internal/audit"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

func (p *Printer) newTable() prettytable.Writer {
	tw := prettytable.NewWriter()
	tw.SetStyle(prettytable.StyleLight)
	tw.Style().Options.SeparateRows = false
	if !p.color {
		tw.Style().Color = prettytable.ColorOptions{}
	}
	return tw
}

// Palette lists every color role of t with its value and a swatch.
func (p *Printer) Palette(t theme.Theme) string {
	tw := p.newTable()
	tw.AppendHeader(prettytable.Row{"ROLE", "VALUE", ""})
	for _, role := range theme.RequiredRoles {
		value := t.Colors.Get(role)
		tw.AppendRow(prettytable.Row{string(role), value, p.Swatch(value)})
	}
	return tw.Render()
}

// Audit tabulates every critical pair and, for failing ones, the suggested fix.
func (p *Printer) Audit(results []audit.PairResult, suggestions []audit.Suggestion) string {
	fixes := make(map[theme.Role]audit.Suggestion, len(suggestions))
	for _, s := range suggestions {
		fixes[s.Role] = s
	}

	tw := p.newTable()
	tw.AppendHeader(prettytable.Row{"FOREGROUND", "BACKGROUND", "SAMPLE", "RATIO", "GRADE", "AA", "SUGGESTION"})
	tw.SetColumnConfigs([]prettytable.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
	})
	for _, r := range results {
		suggestion := ""
		if !r.Contrast.MeetsAA {
			if fix, ok := fixes[r.Pair.Foreground]; ok {
				suggestion = fmt.Sprintf("%s %s", fix.Suggested, p.Swatch(fix.Suggested))
			}
		}
		tw.AppendRow(prettytable.Row{
			fmt.Sprintf("%s %s", r.Pair.Foreground, r.Foreground),
			fmt.Sprintf("%s %s", r.Pair.Background, r.Background),
			p.Sample(r.Foreground, r.Background),
			Ratio(r.Contrast.Ratio),
			p.Grade(r.Contrast.Grade),
			p.Mark(r.Contrast.MeetsAA),
			suggestion,
		})
	}
	return tw.Render()
}
