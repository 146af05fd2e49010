package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderTable writes a console summary of the gap counts.
func RenderTable(w io.Writer, summary Summary, styles Styles) {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	t.AppendHeader(table.Row{"Gap", "Consultants", "Share"})
	for _, f := range summary.VisibleFlags() {
		t.AppendRow(table.Row{
			styles.Get(f).Label,
			summary.Count(f),
			fmt.Sprintf("%.1f%%", summary.Percent(f)),
		})
	}
	t.AppendSeparator()
	complete := 0.0
	if summary.Total > 0 {
		complete = float64(summary.FullyComplete) * 100 / float64(summary.Total)
	}
	t.AppendRow(table.Row{"Fully complete", summary.FullyComplete, fmt.Sprintf("%.1f%%", complete)})
	t.AppendFooter(table.Row{"Total", summary.Total, ""})
	t.Render()
}
