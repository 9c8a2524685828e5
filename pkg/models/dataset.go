package models

import "slices"

// Dataset is an ordered, immutable collection of records plus the set of
// known columns (union over all records, first-seen order).
type Dataset struct {
	columns []string
	records []Record
}

// NewDataset builds a dataset; columns not listed but present on a record are appended
func NewDataset(columns []string, records []Record) *Dataset {
	d := &Dataset{
		records: make([]Record, len(records)),
	}
	copy(d.records, records)

	seen := make(map[string]bool)
	add := func(col string) {
		if col == EventColumn || seen[col] {
			return
		}
		seen[col] = true
		d.columns = append(d.columns, col)
	}
	for _, col := range columns {
		add(col)
	}
	hasEvent := slices.Contains(columns, EventColumn)
	for _, r := range records {
		for _, col := range r.columns {
			add(col)
		}
		if r.Event != "" {
			hasEvent = true
		}
	}
	if hasEvent {
		d.columns = append(d.columns, EventColumn)
	}
	return d
}

// Empty returns a dataset with no columns and no records
func Empty() *Dataset {
	return &Dataset{}
}

// Columns returns the known column names
func (d *Dataset) Columns() []string {
	if d == nil {
		return nil
	}
	return slices.Clone(d.columns)
}

// HasColumn reports whether column is in the known column set
func (d *Dataset) HasColumn(column string) bool {
	if d == nil {
		return false
	}
	return slices.Contains(d.columns, column)
}

// Records returns a copy of the record slice
func (d *Dataset) Records() []Record {
	if d == nil {
		return nil
	}
	return slices.Clone(d.records)
}

// Len returns the number of records
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// IsEmpty reports whether the dataset holds no records
func (d *Dataset) IsEmpty() bool {
	return d.Len() == 0
}

// Where returns a new dataset with the records matching keep. The known
// columns are carried over unchanged.
func (d *Dataset) Where(keep func(Record) bool) *Dataset {
	if d == nil {
		return Empty()
	}
	out := &Dataset{columns: slices.Clone(d.columns)}
	for _, r := range d.records {
		if keep(r) {
			out.records = append(out.records, r)
		}
	}
	return out
}

// Concat joins datasets in order; the column set is the union
func Concat(sets ...*Dataset) *Dataset {
	var columns []string
	var records []Record
	for _, s := range sets {
		if s == nil {
			continue
		}
		columns = append(columns, s.columns...)
		records = append(records, s.records...)
	}
	return NewDataset(columns, records)
}

// Distinct returns the distinct non-null values of column in first-seen order
func (d *Dataset) Distinct(column string) []string {
	if d == nil {
		return nil
	}
	var out []string
	seen := make(map[string]bool)
	for _, r := range d.records {
		v, ok := r.Get(column)
		if !ok || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// PresentColumns returns the known columns that at least one record has a value for
func (d *Dataset) PresentColumns() []string {
	if d == nil {
		return nil
	}
	var out []string
	for _, col := range d.columns {
		for _, r := range d.records {
			if _, ok := r.Get(col); ok {
				out = append(out, col)
				break
			}
		}
	}
	return out
}
