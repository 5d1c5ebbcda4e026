package screen

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type TableRenderer struct {
	w io.Writer
}

func NewTableRenderer(w io.Writer) TableRenderer {
	return TableRenderer{w: w}
}

var _ Renderer = TableRenderer{}

func (tr TableRenderer) Render(rows []Row) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Title", "Subtitle"})
	for i, r := range rows {
		tw.AppendRow(table.Row{i + 1, r.Title, r.Subtitle})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	if _, err := fmt.Fprintln(tr.w, tw.Render()); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
