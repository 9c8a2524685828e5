package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/myusername/records-dashboard/pkg/models"
)

// ErrEmptyRoster is returned when a roster file has no header row
var ErrEmptyRoster = errors.New("roster has no header row")

// LoadRoster reads a roster file, choosing the decoder from the file extension
func LoadRoster(path string) (*models.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadRosterXLSX(path)
	default:
		return LoadRosterCSV(path)
	}
}

// LoadRosterCSV reads a comma separated roster file
func LoadRosterCSV(path string) (*models.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening roster: %w", err)
	}
	defer f.Close()

	ds, err := ReadRosterCSV(f)
	if err != nil {
		return nil, fmt.Errorf("error reading roster %s: %w", path, err)
	}
	slog.Info("loaded roster", "path", path, "records", ds.Len())
	return ds, nil
}

// ReadRosterCSV decodes a roster from r. The first row names the columns;
// empty cells are null.
func ReadRosterCSV(r io.Reader) (*models.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error decoding CSV: %w", err)
	}
	return rowsToDataset(rows)
}

// LoadRosterXLSX reads the first sheet of a workbook as a roster
func LoadRosterXLSX(path string) (*models.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyRoster
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %s: %w", sheets[0], err)
	}

	ds, err := rowsToDataset(rows)
	if err != nil {
		return nil, fmt.Errorf("error reading roster %s: %w", path, err)
	}
	slog.Info("loaded roster", "path", path, "sheet", sheets[0], "records", ds.Len())
	return ds, nil
}

func rowsToDataset(rows [][]string) (*models.Dataset, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyRoster
	}

	// Excel writes a byte order mark in front of the first header
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		header[i] = strings.TrimSpace(h)
	}

	records := make([]models.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		values := make(map[string]string, len(header))
		blank := true
		for i, col := range header {
			if i >= len(row) || row[i] == "" {
				continue
			}
			values[col] = row[i]
			blank = false
		}
		if blank {
			continue
		}
		records = append(records, models.NewRecordFromMap("", header, values))
	}
	return models.NewDataset(header, records), nil
}
