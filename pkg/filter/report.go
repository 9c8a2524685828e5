package filter

import "github.com/myusername/records-dashboard/pkg/models"

// RecordEvents are the event types offered on the records page, in display order
var RecordEvents = []string{
	"Squat (All Events)",
	"Bench (All Events)",
	"Deadlift (All Events)",
	"Total",
}

// RecordSelection is the state of the records page controls
type RecordSelection struct {
	Events []string
	Class  string
	Fed    string
	Name   string
	Regex  bool
}

// DefaultRecordSelection has every event type checked and no other filter
func DefaultRecordSelection() RecordSelection {
	events := make([]string, len(RecordEvents))
	copy(events, RecordEvents)
	return RecordSelection{Events: events, Class: ShowAll, Fed: ShowAll}
}

// Criteria converts the selection into filter criteria
func (s RecordSelection) Criteria() Criteria {
	return Criteria{
		Membership: []Membership{EventTypes(s.Events...)},
		ExactMatch: map[string]string{
			ClassColumn: s.Class,
			FedColumn:   s.Fed,
		},
		TextSearch: []TextSearch{{Column: LifterColumn, Pattern: s.Name, Regex: s.Regex}},
	}
}

// Report is everything the records views render for one selection
type Report struct {
	Filtered *models.Dataset
	Groups   []EventGroup
	// ValueColumn is the charted lift column, empty when none applies
	ValueColumn string
	ChartTitle  string
	Chart       []GroupValue
	Warnings    []string
}

// BuildRecordsReport filters ds by sel, groups the result by event and
// computes the rank 1 chart.
func BuildRecordsReport(ds *models.Dataset, sel RecordSelection) Report {
	res := Apply(ds, sel.Criteria())
	rep := Report{
		Filtered:   res.Data,
		Groups:     GroupByEvent(res.Data, sel.Events),
		ChartTitle: ChartTitle(""),
		Warnings:   res.Warnings,
	}
	if len(rep.Groups) == 0 {
		return rep
	}

	parts := make([]*models.Dataset, len(rep.Groups))
	for i, g := range rep.Groups {
		parts[i] = g.Data
	}
	combined := models.Concat(parts...)

	column, ok := ChooseValueColumn(sel.Events, combined.Columns())
	if !ok {
		return rep
	}
	rep.ValueColumn = column
	rep.ChartTitle = ChartTitle(column)
	rep.Chart = TopRankPerGroup(combined, ClassColumn, column, RankColumn)
	return rep
}
