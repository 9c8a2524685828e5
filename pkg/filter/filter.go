package filter

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/myusername/records-dashboard/pkg/models"
)

// Result is the outcome of one filter pass
type Result struct {
	Data *models.Dataset
	// Warnings are user facing messages for filter steps that were skipped
	Warnings []string
}

type predicate func(models.Record) bool

// Apply filters ds by every criterion in c. The input is left untouched.
// A membership filter with nothing selected produces the empty dataset.
// An invalid regular expression disables its step and adds a warning.
func Apply(ds *models.Dataset, c Criteria) Result {
	if ds == nil {
		return Result{Data: models.Empty()}
	}

	var preds []predicate
	var warnings []string

	// Nothing selected in a membership or keyword set shows nothing
	for _, m := range c.Membership {
		if len(m.Allowed) == 0 {
			slog.Debug("nothing selected, dropping all records", "column", m.Column)
			return Result{Data: models.Empty()}
		}
		preds = append(preds, membership(m))
	}

	for _, kw := range c.AnyKeyword {
		if len(kw.Keywords) == 0 {
			slog.Debug("no keywords selected, dropping all records", "column", kw.Column)
			return Result{Data: models.Empty()}
		}
		preds = append(preds, anyKeyword(kw))
	}

	// sorted so the step order never depends on map iteration
	columns := make([]string, 0, len(c.ExactMatch))
	for col := range c.ExactMatch {
		columns = append(columns, col)
	}
	sort.Strings(columns)
	for _, col := range columns {
		value := c.ExactMatch[col]
		if value == ShowAll || value == "" || !ds.HasColumn(col) {
			continue
		}
		preds = append(preds, exactMatch(col, value))
	}

	// Text searches last, an invalid pattern only costs its own step
	for _, ts := range c.TextSearch {
		if ts.Pattern == "" || !ds.HasColumn(ts.Column) {
			continue
		}
		p, err := textSearch(ts)
		if err != nil {
			slog.Warn("ignoring invalid search pattern", "column", ts.Column, "pattern", ts.Pattern, "error", err)
			warnings = append(warnings, fmt.Sprintf("Invalid regular expression: %s", ts.Pattern))
			continue
		}
		preds = append(preds, p)
	}

	// Keep the records passing every step
	out := ds.Where(func(r models.Record) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	})
	slog.Debug("filtered records", "in", ds.Len(), "out", out.Len(), "steps", len(preds))
	return Result{Data: out, Warnings: warnings}
}

func membership(m Membership) predicate {
	allowed := slices.Clone(m.Allowed)
	return func(r models.Record) bool {
		v, ok := r.Get(m.Column)
		return ok && slices.Contains(allowed, v)
	}
}

func exactMatch(column, value string) predicate {
	return func(r models.Record) bool {
		v, ok := r.Get(column)
		return ok && v == value
	}
}

func textSearch(ts TextSearch) (predicate, error) {
	pattern := ts.Pattern
	if !ts.Regex {
		pattern = regexp.QuoteMeta(pattern)
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, err
	}
	return func(r models.Record) bool {
		v, ok := r.Get(ts.Column)
		return ok && re.MatchString(v)
	}, nil
}

func anyKeyword(kw KeywordSet) predicate {
	keywords := make([]string, len(kw.Keywords))
	for i, k := range kw.Keywords {
		keywords[i] = strings.ToLower(k)
	}
	return func(r models.Record) bool {
		v, ok := r.Get(kw.Column)
		if !ok {
			return false
		}
		v = strings.ToLower(v)
		for _, k := range keywords {
			if strings.Contains(v, k) {
				return true
			}
		}
		return false
	}
}
