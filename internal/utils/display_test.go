package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"

	"github.com/myusername/records-dashboard/pkg/filter"
	"github.com/myusername/records-dashboard/pkg/models"
)

func sample() *models.Dataset {
	cols := []string{"Class", "Lifter", "Total"}
	return models.NewDataset(cols, []models.Record{
		models.NewRecord("Total", cols, []string{"83", "A. Lifter", "800"}),
		models.NewRecord("Total", cols, []string{"59", "C. Lifter", "600"}),
	})
}

func TestRenderGroupsHidesEvent(t *testing.T) {
	var buf bytes.Buffer
	RenderGroups(&buf, filter.GroupByEvent(sample(), []string{"Total"}))

	out := buf.String()
	assert.Contains(t, out, "A. Lifter")
	assert.Contains(t, strings.ToUpper(out), "LIFTER")
	assert.NotContains(t, strings.ToUpper(out), "EVENT")
}

func TestRenderGroupsEmpty(t *testing.T) {
	var buf bytes.Buffer
	RenderGroups(&buf, nil)
	assert.Equal(t, NoRecordsMessage+"\n", buf.String())
}

func TestRenderBarChart(t *testing.T) {
	text.DisableColors()
	defer text.EnableColors()

	var buf bytes.Buffer
	RenderBarChart(&buf, "Top Total by Class (Rank 1)", "Total (kg)", []filter.GroupValue{
		{Group: "59", Value: 300},
		{Group: "Open", Value: 600},
	}, 10)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "Top Total by Class (Rank 1)", lines[0])
	assert.Equal(t, "59   | █████ 300.0", lines[1])
	assert.Equal(t, "Open | ██████████ 600.0", lines[2])
	assert.Contains(t, lines[3], "(Total (kg))")
}

func TestRenderBarChartEmpty(t *testing.T) {
	text.DisableColors()
	defer text.EnableColors()

	var buf bytes.Buffer
	RenderBarChart(&buf, "Top Lift by Class (Rank 1)", "", nil, 10)
	assert.Contains(t, buf.String(), "No records to display chart.")
}

func TestRenderWarnings(t *testing.T) {
	text.DisableColors()
	defer text.EnableColors()

	var buf bytes.Buffer
	RenderWarnings(&buf, []string{"Invalid regular expression: ("})
	assert.Equal(t, "warning: Invalid regular expression: (\n", buf.String())
}
