package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/myusername/records-dashboard/pkg/models"
)

const exportSheet = "Records"

// SaveDataset writes ds to filename; the format follows the extension (.csv or .xlsx)
func SaveDataset(ds *models.Dataset, filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return SaveDatasetToXLSX(ds, filename)
	case ".csv":
		return SaveDatasetToCSV(ds, filename)
	default:
		return fmt.Errorf("unsupported export format: %s", filename)
	}
}

// SaveDatasetToCSV saves the dataset to a CSV file, null cells left empty
func SaveDatasetToCSV(ds *models.Dataset, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	columns := ds.Columns()
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range ds.Records() {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = r.Value(col)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// SaveDatasetToXLSX saves the dataset to a single-sheet workbook
func SaveDatasetToXLSX(ds *models.Dataset, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	columns := ds.Columns()
	header := make([]any, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range ds.Records() {
		row := make([]any, len(columns))
		for j, col := range columns {
			if v, ok := r.Get(col); ok {
				row[j] = v
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
