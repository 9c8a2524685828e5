package filter

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/myusername/records-dashboard/pkg/models"
)

// Column names of the records page
const (
	ClassColumn  = "Class"
	RankColumn   = "Rank"
	LifterColumn = "Lifter"
	FedColumn    = "Fed"
)

// TopRank is the rank value selected for chart summaries
const TopRank = "1"

// LiftPriority is the order in which lift columns are considered for the chart
var LiftPriority = []string{"Total", "Deadlift", "Squat", "Bench"}

// GroupValue is one bar of the rank 1 chart
type GroupValue struct {
	Group string
	Value float64
}

// TopRankPerGroup keeps records ranked TopRank whose valueColumn parses as a
// number and returns one entry per distinct groupColumn value. Numeric group
// labels sort ascending, others follow in first-seen order. When a group has
// several rank 1 records the last one wins.
func TopRankPerGroup(ds *models.Dataset, groupColumn, valueColumn, rankColumn string) []GroupValue {
	var order []string
	values := make(map[string]float64)

	for _, r := range ds.Records() {
		if rank, ok := r.Get(rankColumn); !ok || rank != TopRank {
			continue
		}
		raw, ok := r.Get(valueColumn)
		if !ok {
			continue
		}
		value, ok := ParseNumber(raw)
		if !ok {
			continue
		}
		group, ok := r.Get(groupColumn)
		if !ok {
			continue
		}
		if _, seen := values[group]; !seen {
			order = append(order, group)
		}
		values[group] = value
	}

	SortGroupLabels(order)

	out := make([]GroupValue, len(order))
	for i, g := range order {
		out[i] = GroupValue{Group: g, Value: values[g]}
	}
	return out
}

// SortGroupLabels sorts labels in place: numeric labels ascending, the rest
// after them keeping their relative order.
func SortGroupLabels(labels []string) {
	slices.SortStableFunc(labels, func(a, b string) int {
		av, aok := ParseNumber(a)
		bv, bok := ParseNumber(b)
		switch {
		case aok && bok:
			if av < bv {
				return -1
			}
			if av > bv {
				return 1
			}
			return 0
		case aok:
			return -1
		case bok:
			return 1
		default:
			return 0
		}
	})
}

// ParseNumber parses a finite decimal number, ignoring surrounding whitespace
func ParseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ChooseValueColumn picks the lift column to chart: the first of LiftPriority
// named by any selected event that is also a known column.
func ChooseValueColumn(selectedEvents []string, columns []string) (string, bool) {
	for _, lift := range LiftPriority {
		named := false
		for _, e := range selectedEvents {
			if strings.Contains(strings.ToLower(e), strings.ToLower(lift)) {
				named = true
				break
			}
		}
		if named && slices.Contains(columns, lift) {
			return lift, true
		}
	}
	return "", false
}

// ChartTitle names the chart for the given lift column; empty yields the generic title
func ChartTitle(column string) string {
	if column == "" {
		column = "Lift"
	}
	return fmt.Sprintf("Top %s by Class (Rank 1)", column)
}
