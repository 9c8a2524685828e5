package dashboard

import (
	"net/url"
	"slices"

	"github.com/myusername/records-dashboard/pkg/filter"
)

// submittedParam marks a query produced by the filter form. Without it the
// page shows its defaults, since unticked checkboxes are simply absent.
const submittedParam = "f"

// ParseRecordSelection reads the records page controls from a query string
func ParseRecordSelection(q url.Values) filter.RecordSelection {
	if q.Get(submittedParam) == "" {
		return filter.DefaultRecordSelection()
	}
	sel := filter.RecordSelection{
		Class: valueOr(q.Get("class"), filter.ShowAll),
		Fed:   valueOr(q.Get("fed"), filter.ShowAll),
		Name:  q.Get("name"),
		Regex: q.Get("regex") != "",
	}
	// keep the page order regardless of the order parameters arrive in
	for _, e := range filter.RecordEvents {
		if slices.Contains(q["event"], e) {
			sel.Events = append(sel.Events, e)
		}
	}
	return sel
}

// ParseRosterSelection reads the directory page controls from a query string
func ParseRosterSelection(q url.Values) filter.RosterSelection {
	if q.Get(submittedParam) == "" {
		return filter.DefaultRosterSelection()
	}
	on := func(key string) bool { return q.Get(key) != "" }
	return filter.RosterSelection{
		Department: valueOr(q.Get("department"), filter.ShowAll),
		Faculty:    on("faculty"),
		Staff:      on("staff"),
		FullTime:   on("full_time"),
		PartTime:   on("part_time"),
		Assistant:  on("assistant"),
		Associate:  on("associate"),
		Full:       on("full"),
		Name:       q.Get("name"),
		Regex:      on("regex"),
	}
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
