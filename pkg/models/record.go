// Package models contains data structures for scraped and loaded record tables
package models

// EventColumn is the column holding the section (event) a record came from
const EventColumn = "Event"

// Record holds one normalized row. Columns are discovered at parse time, so
// values are kept by name; a column the record lacks is null.
type Record struct {
	Event   string
	columns []string
	values  map[string]string
}

// NewRecord builds a record from parallel column and value slices.
// Values beyond the last column are dropped; columns beyond the last value are null.
func NewRecord(event string, columns []string, values []string) Record {
	r := Record{
		Event:  event,
		values: make(map[string]string, len(columns)),
	}
	for i, col := range columns {
		if i >= len(values) {
			break
		}
		r.set(col, values[i])
	}
	return r
}

// NewRecordFromMap builds a record from a column->value mapping, keeping the given column order
func NewRecordFromMap(event string, order []string, values map[string]string) Record {
	r := Record{
		Event:  event,
		values: make(map[string]string, len(values)),
	}
	for _, col := range order {
		if v, ok := values[col]; ok {
			r.set(col, v)
		}
	}
	return r
}

// set stores one value; an Event column fills the label when none was given
func (r *Record) set(col, v string) {
	if col == EventColumn {
		if r.Event == "" {
			r.Event = v
		}
		return
	}
	if _, dup := r.values[col]; !dup {
		r.columns = append(r.columns, col)
	}
	r.values[col] = v
}

// Get returns the value for column and whether it is present.
// The Event column is answered from the record's event label.
func (r Record) Get(column string) (string, bool) {
	if column == EventColumn {
		return r.Event, r.Event != ""
	}
	v, ok := r.values[column]
	return v, ok
}

// Value returns the value for column, or an empty string when null
func (r Record) Value(column string) string {
	v, _ := r.Get(column)
	return v
}

// Columns returns the record's own columns in source order, without Event
func (r Record) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

// Len is the number of non-null columns, not counting Event
func (r Record) Len() int {
	return len(r.columns)
}
