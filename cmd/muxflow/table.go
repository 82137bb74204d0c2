package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/nguyentantai21042004/mux-flow/internal/media"
)

// renderTable draws rows under headers with the rounded style. Columns
// listed in right are right-aligned.
func renderTable(headers []string, rows [][]string, right ...int) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, len(right))
	for _, col := range right {
		configs = append(configs, table.ColumnConfig{
			Number:      col + 1,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// renderReport lists every planned pair with the state it reached.
func renderReport(report media.Report) string {
	rows := make([][]string, 0, len(report.Outcomes))
	for _, o := range report.Outcomes {
		duration := "-"
		if o.Duration > 0 {
			duration = o.Duration.Round(time.Millisecond).String()
		}
		rows = append(rows, []string{
			strconv.Itoa(o.Pair.Ordinal),
			o.Pair.Video.Original,
			o.Pair.Subtitle.Original,
			o.State.String(),
			duration,
		})
	}

	title := fmt.Sprintf("%d/%d pair(s) muxed in %s", report.Completed(), len(report.Outcomes), report.Dir)
	if report.DryRun {
		title = fmt.Sprintf("dry run: %d pair(s) planned in %s", len(report.Outcomes), report.Dir)
	}

	return title + "\n" + renderTable(
		[]string{"#", "Video", "Subtitle", "State", "Time"},
		rows,
		0, 4,
	)
}
