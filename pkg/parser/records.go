// Package parser turns scraped record pages and roster files into datasets
package parser

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/myusername/records-dashboard/pkg/models"
)

// Options selects the structural markers of a records page
type Options struct {
	// SectionSelector matches the containers holding one heading and one table
	SectionSelector string
	HeadingSelector string
	TableSelector   string
}

// DefaultOptions matches the OpenPowerlifting records layout
func DefaultOptions() Options {
	return Options{
		SectionSelector: "div.records-col",
		HeadingSelector: "h2",
		TableSelector:   "table",
	}
}

// ExtractRecordsFromHTML parses htmlContent and extracts every titled table
func ExtractRecordsFromHTML(htmlContent string) (*models.Dataset, error) {
	return ExtractRecordsFromReader(strings.NewReader(htmlContent))
}

// ExtractRecordsFromReader parses an HTML document from r and extracts every titled table
func ExtractRecordsFromReader(r io.Reader) (*models.Dataset, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing HTML content: %w", err)
	}
	return ExtractRecords(doc), nil
}

// ExtractRecords extracts records from doc using the default layout
func ExtractRecords(doc *goquery.Document) *models.Dataset {
	return ExtractRecordsWithOptions(doc, DefaultOptions())
}

// ExtractRecordsWithOptions walks every section of doc in document order and
// concatenates the rows of its table, labelled with the section heading.
// Sections missing a heading or a table are skipped, as are sections whose
// heading is blank.
func ExtractRecordsWithOptions(doc *goquery.Document, opts Options) *models.Dataset {
	var columns []string
	var records []models.Record
	sections := 0

	doc.Find(opts.SectionSelector).Each(func(i int, section *goquery.Selection) {
		heading := section.Find(opts.HeadingSelector).First()
		table := section.Find(opts.TableSelector).First()
		if heading.Length() == 0 || table.Length() == 0 {
			slog.Debug("skipping section without heading or table", "index", i)
			return
		}

		event := strings.TrimSpace(heading.Text())
		if event == "" {
			slog.Debug("skipping section with blank heading", "index", i)
			return
		}

		header, rows := extractTable(event, table)
		columns = append(columns, header...)
		records = append(records, rows...)
		sections++

		slog.Debug("extracted section", "event", event, "columns", len(header), "rows", len(rows))
	})

	slog.Info("extracted records", "sections", sections, "records", len(records))
	return models.NewDataset(columns, records)
}

// extractTable reads the header from the first non-empty row and turns every
// later row into a record. A blank first cell carries the last non-blank
// first cell of the same table forward.
func extractTable(event string, table *goquery.Selection) ([]string, []models.Record) {
	var header []string
	var records []models.Record
	var lastKey string
	haveKey := false

	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := cellTexts(row)
		if len(cells) == 0 {
			return
		}

		// The first row with cells names the columns
		if header == nil {
			header = cells
			return
		}

		// Map cells to columns by position, dropping any overflow
		values := make(map[string]string, len(header))
		for i, col := range header {
			if i >= len(cells) {
				break
			}
			values[col] = cells[i]
		}

		// Fill a blank first cell from the row above
		if cells[0] == "" {
			if haveKey {
				values[header[0]] = lastKey
			} else {
				delete(values, header[0])
			}
		} else {
			lastKey = cells[0]
			haveKey = true
		}

		records = append(records, models.NewRecordFromMap(event, header, values))
	})

	return header, records
}

func cellTexts(row *goquery.Selection) []string {
	var cells []string
	row.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, strings.TrimSpace(cell.Text()))
	})
	return cells
}
