// Package filter applies composable row predicates to datasets and derives
// the rank 1 summaries the charts are drawn from.
package filter

import "github.com/myusername/records-dashboard/pkg/models"

// ShowAll is the dropdown sentinel that disables an exact-match filter
const ShowAll = "All"

// Membership keeps records whose column value is one of Allowed.
// An empty Allowed set keeps nothing.
type Membership struct {
	Column  string
	Allowed []string
}

// EventTypes is a membership filter over the Event column
func EventTypes(events ...string) Membership {
	allowed := make([]string, len(events))
	copy(allowed, events)
	return Membership{Column: models.EventColumn, Allowed: allowed}
}

// TextSearch keeps records whose column contains Pattern, ignoring case.
// With Regex set the pattern is a regular expression, otherwise a literal.
type TextSearch struct {
	Column  string
	Pattern string
	Regex   bool
}

// KeywordSet keeps records whose column contains any of Keywords, ignoring case.
// An empty keyword set keeps nothing.
type KeywordSet struct {
	Column   string
	Keywords []string
}

// Criteria is the full set of filters for one pass. All filters must hold.
type Criteria struct {
	Membership []Membership
	// ExactMatch maps a column to the value it must equal
	ExactMatch map[string]string
	TextSearch []TextSearch
	AnyKeyword []KeywordSet
}
