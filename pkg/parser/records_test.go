package parser

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myusername/records-dashboard/pkg/models"
)

const recordsPage = `<html><body>
<div class="records-col">
  <h2>
    Squat (All Events)
  </h2>
  <table>
    <thead><tr><th>Class</th><th>Lifter</th><th>Rank</th><th>Squat</th></tr></thead>
    <tbody>
      <tr><td>83</td><td>A. Lifter</td><td>1</td><td>300</td></tr>
      <tr><td></td><td>B. Lifter</td><td>2</td><td>290</td></tr>
      <tr></tr>
      <tr><td>93</td><td>C. Lifter</td><td>1</td><td>310</td></tr>
      <tr><td></td><td>D. Lifter</td><td>2</td></tr>
    </tbody>
  </table>
</div>
<div class="records-col"><h2>No table here</h2></div>
<div class="records-col"><table><tr><th>Only</th></tr><tr><td>table</td></tr></table></div>
<div class="records-col">
  <h2>Total</h2>
  <table>
    <tr><th>Class</th><th>Fed</th><th>Rank</th><th>Total</th></tr>
    <tr><td></td><td>IPF</td><td>1</td><td>700</td><td>overflow</td></tr>
    <tr><td>59</td><td>IPF</td><td>1</td><td>600</td></tr>
  </table>
</div>
</body></html>`

func extractWithOptions(t *testing.T, page string, opts Options) *models.Dataset {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return ExtractRecordsWithOptions(doc, opts)
}

func eventsOf(ds *models.Dataset) []string {
	var out []string
	for _, r := range ds.Records() {
		out = append(out, r.Event)
	}
	return out
}

func TestExtractRecordsSectionsAndEvents(t *testing.T) {
	ds, err := ExtractRecordsFromHTML(recordsPage)
	require.NoError(t, err)

	require.Equal(t, 6, ds.Len())
	assert.Equal(t, []string{"Squat (All Events)", "Total"}, ds.Distinct(models.EventColumn))
	assert.Equal(t, []string{
		"Squat (All Events)", "Squat (All Events)", "Squat (All Events)", "Squat (All Events)",
		"Total", "Total",
	}, eventsOf(ds))
	assert.Equal(t, []string{"Class", "Lifter", "Rank", "Squat", "Fed", "Total", models.EventColumn}, ds.Columns())
}

func TestExtractRecordsCarryForward(t *testing.T) {
	ds, err := ExtractRecordsFromHTML(recordsPage)
	require.NoError(t, err)

	var classes []string
	for _, r := range ds.Records()[:4] {
		classes = append(classes, r.Value("Class"))
	}
	if diff := cmp.Diff([]string{"83", "83", "93", "93"}, classes); diff != "" {
		t.Errorf("carried classes mismatch (-want +got):\n%s", diff)
	}

	// the short row has no Squat cell
	_, ok := ds.Records()[3].Get("Squat")
	assert.False(t, ok)
}

func TestExtractRecordsNoPriorKeyIsNull(t *testing.T) {
	ds, err := ExtractRecordsFromHTML(recordsPage)
	require.NoError(t, err)

	first := ds.Records()[4]
	_, ok := first.Get("Class")
	assert.False(t, ok, "blank first cell with nothing to carry stays null")
	assert.Equal(t, "700", first.Value("Total"))
	assert.Equal(t, 3, first.Len(), "overflow cell is dropped")

	// the carry state is per table, not per document
	assert.Equal(t, "59", ds.Records()[5].Value("Class"))
}

func TestExtractRecordsNoSections(t *testing.T) {
	ds, err := ExtractRecordsFromHTML(`<html><body><h2>Nothing</h2><table><tr><td>x</td></tr></table></body></html>`)
	require.NoError(t, err)
	assert.True(t, ds.IsEmpty())
	assert.Empty(t, ds.Columns())
}

func TestExtractRecordsBlankHeadingSkipped(t *testing.T) {
	page := `<div class="records-col"><h2>  </h2><table>
<tr><th>Class</th><th>Lifter</th></tr>
<tr><td>83</td><td>A. Lifter</td></tr>
</table></div>
<div class="records-col"><h2>Total</h2><table>
<tr><th>Class</th><th>Lifter</th></tr>
<tr><td>59</td><td>C. Lifter</td></tr>
</table></div>`

	ds, err := ExtractRecordsFromHTML(page)
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "Total", ds.Records()[0].Event)
	assert.True(t, ds.HasColumn("Event"))
}

func TestExtractRecordsSquatScenario(t *testing.T) {
	page := `<div class="records-col"><h2>  Squat  </h2><table>
<tr><th>Class</th><th>Lifter</th><th>Rank</th><th>Total</th></tr>
<tr><td>83</td><td>A. Lifter</td><td>1</td><td>300</td></tr>
<tr><td></td><td>B. Lifter</td><td>2</td><td>290</td></tr>
</table></div>`
	ds, err := ExtractRecordsFromHTML(page)
	require.NoError(t, err)

	require.Equal(t, 2, ds.Len())
	for _, r := range ds.Records() {
		assert.Equal(t, "Squat", r.Event)
		assert.Equal(t, "83", r.Value("Class"))
	}
}

func TestExtractRecordsCustomSelectors(t *testing.T) {
	page := `<section><h3>Bench</h3><table><tr><td>Class</td></tr><tr><td>74</td></tr></table></section>`
	defaults, err := ExtractRecordsFromHTML(page)
	require.NoError(t, err)
	assert.True(t, defaults.IsEmpty())

	opts := Options{SectionSelector: "section", HeadingSelector: "h3", TableSelector: "table"}
	ds := extractWithOptions(t, page, opts)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "Bench", ds.Records()[0].Event)
	assert.Equal(t, "74", ds.Records()[0].Value("Class"))
}
