package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"moviemanager/internal/organizer"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := range columns {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// renderSummary lists the renames of a run followed by the non-zero outcome
// tallies.
func renderSummary(summary organizer.Summary) string {
	var out string
	if len(summary.Renames) > 0 {
		rows := make([][]string, 0, len(summary.Renames))
		for _, r := range summary.Renames {
			rows = append(rows, []string{r.From, r.To, r.Candidate.ID})
		}
		out = renderTable([]string{"From", "To", "ID"}, rows, nil) + "\n"
	}

	rows := [][]string{{"scanned", strconv.Itoa(summary.Scanned)}}
	for _, c := range summary.Counts() {
		if c.Count == 0 {
			continue
		}
		rows = append(rows, []string{c.Outcome.String(), strconv.Itoa(c.Count)})
	}
	return out + renderTable([]string{"Outcome", "Entries"}, rows, []columnAlignment{alignLeft, alignRight})
}
