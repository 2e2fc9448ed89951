package catalog

import (
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/procon-dev/procon/cli/templates"
)

// PrintList prints available templates as a table. descriptions contains notes for
// built-in templates by name.
func PrintList(out io.Writer, infos []templates.Info, descriptions map[string]string) {
	ts := table.NewWriter()
	ts.SetOutputMirror(out)
	ts.AppendHeader(table.Row{"NAME", "KIND", "LOCATION", "NOTE"})

	for _, info := range infos {
		kind := color.YellowString(info.Kind.String())
		note := descriptions[info.Name]
		if info.Kind == templates.SourceUser {
			kind = color.GreenString(info.Kind.String())
			note = ""
			if info.Overrides {
				note = "overrides built-in"
			}
		}
		ts.AppendRow(table.Row{info.Name, kind, info.Location, note})
	}

	ts.Style().Options.DrawBorder = false
	ts.Style().Options.SeparateColumns = false
	ts.Style().Options.SeparateHeader = false
	ts.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	ts.Render()
}
