package report

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode controls the table output format.
type Mode int

const (
	ASCII    Mode = iota // Fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// ParseMode maps a --format value onto a Mode.
func ParseMode(name string) Mode {
	if name == "markdown" || name == "md" {
		return Markdown
	}
	return ASCII
}

// Row is one rendered game: its date, players, result and narrative.
type Row struct {
	GameID    string
	Date      string
	White     string
	Black     string
	Result    string
	Narrative string
}

// RenderTable renders rows as a table in mode. Long narratives wrap at
// narrativeWidth columns in ASCII mode.
func RenderTable(rows []Row, mode Mode, narrativeWidth int) string {
	w := table.NewWriter()
	w.AppendHeader(table.Row{"Date", "White", "Black", "Result", "Analysis"})
	for _, r := range rows {
		w.AppendRow(table.Row{r.Date, r.White, r.Black, r.Result, r.Narrative})
	}

	switch mode {
	case Markdown:
		return w.RenderMarkdown()
	default:
		w.SetStyle(table.StyleLight)
		w.Style().Format.Header = text.FormatDefault
		w.Style().Options.SeparateRows = true
		if narrativeWidth > 0 {
			w.SetColumnConfigs([]table.ColumnConfig{
				{Number: 5, WidthMax: narrativeWidth, WidthMaxEnforcer: text.WrapSoft},
			})
		}
		return w.Render()
	}
}

// RenderPlayer renders a player profile as a two column table.
func RenderPlayer(fields [][2]string, mode Mode) string {
	w := table.NewWriter()
	w.AppendHeader(table.Row{"Field", "Value"})
	for _, f := range fields {
		w.AppendRow(table.Row{f[0], f[1]})
	}
	if mode == Markdown {
		return w.RenderMarkdown()
	}
	w.SetStyle(table.StyleLight)
	w.Style().Format.Header = text.FormatDefault
	return w.Render()
}
