package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const rosterCSV = `Name,Department,Role,Contract,Position
Ada Byron,Mathematics,Faculty,FULL-TIME,Associate Professor
Grace Hopper,Computer Science,Faculty,PART-TIME,
Alan Turing,,Staff,FULL-TIME,Lab Manager
`

func TestReadRosterCSV(t *testing.T) {
	ds, err := ReadRosterCSV(strings.NewReader(rosterCSV))
	require.NoError(t, err)

	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, []string{"Name", "Department", "Role", "Contract", "Position"}, ds.Columns())

	recs := ds.Records()
	assert.Equal(t, "Associate Professor", recs[0].Value("Position"))

	_, ok := recs[1].Get("Position")
	assert.False(t, ok, "empty cell is null")
	_, ok = recs[2].Get("Department")
	assert.False(t, ok)
}

func TestReadRosterCSVByteOrderMark(t *testing.T) {
	ds, err := ReadRosterCSV(strings.NewReader("\ufeffName,Department\nAlice,Math\nBob,Art\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Department"}, ds.Columns())
	assert.True(t, ds.HasColumn("Name"))
	assert.Equal(t, "Alice", ds.Records()[0].Value("Name"))
}

func TestReadRosterCSVEmpty(t *testing.T) {
	_, err := ReadRosterCSV(strings.NewReader(""))
	require.ErrorIs(t, err, ErrEmptyRoster)
}

func TestLoadRosterDispatch(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "roster.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(rosterCSV), 0644))
	ds, err := LoadRoster(csvPath)
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len())

	xlsxPath := filepath.Join(dir, "roster.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Name", "Role"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Ada Byron", "Faculty"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"Alan Turing"}))
	require.NoError(t, f.SaveAs(xlsxPath))
	require.NoError(t, f.Close())

	ds, err = LoadRoster(xlsxPath)
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, "Faculty", ds.Records()[0].Value("Role"))
	_, ok := ds.Records()[1].Get("Role")
	assert.False(t, ok)
}

func TestLoadRosterMissingFile(t *testing.T) {
	_, err := LoadRoster(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}
