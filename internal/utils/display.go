// Package utils provides display and export helpers for the records dashboard
package utils

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/myusername/records-dashboard/pkg/filter"
	"github.com/myusername/records-dashboard/pkg/models"
)

// NoRecordsMessage is shown when the filters leave nothing to display
const NoRecordsMessage = "No records match your filters."

// RenderDataset writes ds as a table. Columns listed in hide are left out,
// as are columns no record has a value for.
func RenderDataset(w io.Writer, title string, ds *models.Dataset, hide ...string) {
	var columns []string
	for _, col := range ds.PresentColumns() {
		if !slices.Contains(hide, col) {
			columns = append(columns, col)
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if title != "" {
		t.SetTitle(title)
	}

	header := make(table.Row, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	t.AppendHeader(header)

	for _, r := range ds.Records() {
		row := make(table.Row, len(columns))
		for i, col := range columns {
			row[i] = r.Value(col)
		}
		t.AppendRow(row)
	}
	t.Render()
}

// RenderGroups writes one table per event group, without the Event column
func RenderGroups(w io.Writer, groups []filter.EventGroup) {
	if len(groups) == 0 {
		fmt.Fprintln(w, NoRecordsMessage)
		return
	}
	for _, g := range groups {
		RenderDataset(w, g.Event, g.Data, models.EventColumn)
		fmt.Fprintln(w)
	}
}

// RenderBarChart draws a horizontal bar per group, the longest bar width characters long
func RenderBarChart(w io.Writer, title, unit string, bars []filter.GroupValue, width int) {
	fmt.Fprintln(w, text.Bold.Sprint(title))
	if len(bars) == 0 {
		fmt.Fprintln(w, "No records to display chart.")
		return
	}

	maxValue := 0.0
	labelWidth := 0
	for _, b := range bars {
		maxValue = math.Max(maxValue, b.Value)
		labelWidth = max(labelWidth, text.RuneWidthWithoutEscSequences(b.Group))
	}

	for _, b := range bars {
		n := 0
		if maxValue > 0 {
			n = int(math.Round(b.Value / maxValue * float64(width)))
		}
		fmt.Fprintf(w, "%s | %s %.1f\n",
			text.Pad(b.Group, labelWidth, ' '),
			text.FgRed.Sprint(strings.Repeat("█", n)),
			b.Value,
		)
	}
	if unit != "" {
		fmt.Fprintf(w, "%s   (%s)\n", strings.Repeat(" ", labelWidth), unit)
	}
}

// RenderWarnings prints user facing filter warnings
func RenderWarnings(w io.Writer, warnings []string) {
	for _, msg := range warnings {
		fmt.Fprintln(w, text.FgYellow.Sprint("warning: "+msg))
	}
}
