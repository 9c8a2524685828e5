package filter

import (
	"slices"

	"github.com/myusername/records-dashboard/pkg/models"
)

// EventGroup is the slice of a filtered dataset belonging to one event
type EventGroup struct {
	Event string
	Data  *models.Dataset
}

// GroupByEvent splits ds by event in the given order, leaving out events with no records
func GroupByEvent(ds *models.Dataset, events []string) []EventGroup {
	var groups []EventGroup
	if ds.IsEmpty() {
		return groups
	}
	for _, event := range events {
		part := ds.Where(func(r models.Record) bool {
			return r.Event == event
		})
		if part.IsEmpty() {
			continue
		}
		groups = append(groups, EventGroup{Event: event, Data: part})
	}
	return groups
}

// Options lists the distinct values of column for a dropdown, sentinel first.
// Class labels sort numeric first, other columns sort lexically.
func Options(ds *models.Dataset, column, sentinel string) []string {
	values := ds.Distinct(column)
	if column == ClassColumn {
		SortGroupLabels(values)
	} else {
		slices.Sort(values)
	}
	if sentinel == "" {
		return values
	}
	return append([]string{sentinel}, values...)
}
