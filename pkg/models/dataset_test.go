package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordPadsAndTruncates(t *testing.T) {
	r := NewRecord("Squat", []string{"Class", "Lifter", "Total"}, []string{"83", "A. Lifter"})
	v, ok := r.Get("Lifter")
	require.True(t, ok)
	assert.Equal(t, "A. Lifter", v)

	_, ok = r.Get("Total")
	assert.False(t, ok, "missing trailing cell is null")

	r = NewRecord("Squat", []string{"Class"}, []string{"83", "extra"})
	assert.Equal(t, []string{"Class"}, r.Columns())
}

func TestRecordEventColumn(t *testing.T) {
	r := NewRecord("Total", []string{"Class"}, []string{"59"})
	v, ok := r.Get(EventColumn)
	require.True(t, ok)
	assert.Equal(t, "Total", v)

	_, ok = NewRecord("", []string{"Name"}, []string{"x"}).Get(EventColumn)
	assert.False(t, ok)
}

func TestDatasetColumnsUnion(t *testing.T) {
	ds := NewDataset(nil, []Record{
		NewRecord("Squat", []string{"Class", "Squat"}, []string{"83", "300"}),
		NewRecord("Total", []string{"Class", "Total"}, []string{"83", "800"}),
	})
	assert.Equal(t, []string{"Class", "Squat", "Total", EventColumn}, ds.Columns())
	assert.True(t, ds.HasColumn("Total"))
	assert.False(t, ds.HasColumn("Bench"))

	_, ok := ds.Records()[0].Get("Total")
	assert.False(t, ok)
}

func TestWhereDoesNotMutate(t *testing.T) {
	ds := NewDataset([]string{"Name"}, []Record{
		NewRecord("", []string{"Name"}, []string{"a"}),
		NewRecord("", []string{"Name"}, []string{"b"}),
	})
	out := ds.Where(func(r Record) bool { return r.Value("Name") == "b" })

	assert.Equal(t, 1, out.Len())
	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, ds.Columns(), out.Columns())
}

func TestDistinctAndPresentColumns(t *testing.T) {
	ds := NewDataset([]string{"Fed", "Unused"}, []Record{
		NewRecord("", []string{"Fed"}, []string{"IPF"}),
		NewRecord("", []string{"Fed"}, []string{"USAPL"}),
		NewRecord("", []string{"Fed"}, []string{"IPF"}),
	})
	assert.Equal(t, []string{"IPF", "USAPL"}, ds.Distinct("Fed"))
	assert.Equal(t, []string{"Fed"}, ds.PresentColumns())
}

func TestEmptyAndNil(t *testing.T) {
	var nilSet *Dataset
	assert.True(t, nilSet.IsEmpty())
	assert.Nil(t, nilSet.Columns())
	assert.True(t, Empty().IsEmpty())
	assert.Equal(t, 0, Concat(nil, Empty()).Len())
}
