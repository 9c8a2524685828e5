package dashboard

import (
	"slices"

	"github.com/myusername/records-dashboard/pkg/filter"
	"github.com/myusername/records-dashboard/pkg/models"
)

const (
	chartWidth  = 300
	barHeight   = 22
	barGap      = 6
	labelMargin = 60
	valueMargin = 60
)

type checkbox struct {
	Name    string
	Value   string
	Label   string
	Checked bool
}

type option struct {
	Value    string
	Selected bool
}

type dropdown struct {
	Name    string
	Label   string
	Options []option
}

type tableView struct {
	Title   string
	Columns []string
	Rows    [][]string
}

type bar struct {
	Label  string
	Value  float64
	Y      int
	Width  int
	ValueX int
}

type chartView struct {
	Title       string
	Unit        string
	Message     string
	Bars        []bar
	Width       int
	Height      int
	BarHeight   int
	LabelMargin int
}

type pageData struct {
	Title       string
	Intro       string
	Action      string
	Checkboxes  []checkbox
	Dropdowns   []dropdown
	Name        string
	Regex       bool
	Warnings    []string
	Error       string
	Chart       *chartView
	Tables      []tableView
	NoneMessage string
}

func newDropdown(name, label string, values []string, selected string) dropdown {
	d := dropdown{Name: name, Label: label}
	for _, v := range values {
		d.Options = append(d.Options, option{Value: v, Selected: v == selected})
	}
	return d
}

func newTable(title string, ds *models.Dataset, hide ...string) tableView {
	t := tableView{Title: title}
	for _, col := range ds.PresentColumns() {
		if !slices.Contains(hide, col) {
			t.Columns = append(t.Columns, col)
		}
	}
	for _, r := range ds.Records() {
		row := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			row[i] = r.Value(col)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func newChart(rep filter.Report, anyGroups bool) *chartView {
	c := &chartView{
		Title:       rep.ChartTitle,
		Width:       labelMargin + chartWidth + valueMargin,
		BarHeight:   barHeight,
		LabelMargin: labelMargin,
	}
	switch {
	case !anyGroups:
		c.Message = "No records to display chart."
		return c
	case rep.ValueColumn == "":
		c.Message = "No valid lift column found to display chart."
		return c
	}
	c.Unit = rep.ValueColumn + " (kg)"

	maxValue := 0.0
	for _, gv := range rep.Chart {
		maxValue = max(maxValue, gv.Value)
	}
	for i, gv := range rep.Chart {
		w := 0
		if maxValue > 0 {
			w = int(gv.Value / maxValue * chartWidth)
		}
		c.Bars = append(c.Bars, bar{
			Label: gv.Group,
			Value: gv.Value,
			Y:      i * (barHeight + barGap),
			Width:  w,
			ValueX: labelMargin + w + 4,
		})
	}
	c.Height = len(c.Bars)*(barHeight+barGap) + barGap
	return c
}

func recordsPage(full *models.Dataset, sel filter.RecordSelection, rep filter.Report) pageData {
	p := pageData{
		Title:       "IPF World Records - Open Powerlifting",
		Intro:       "Latest IPF raw world records scraped from OpenPowerlifting.",
		Action:      "/",
		Name:        sel.Name,
		Regex:       sel.Regex,
		Warnings:    rep.Warnings,
		NoneMessage: "No records match your filters.",
	}
	for _, e := range filter.RecordEvents {
		p.Checkboxes = append(p.Checkboxes, checkbox{
			Name:    "event",
			Value:   e,
			Label:   e,
			Checked: slices.Contains(sel.Events, e),
		})
	}
	if full.HasColumn(filter.ClassColumn) {
		p.Dropdowns = append(p.Dropdowns, newDropdown("class", "Choose a Class:",
			filter.Options(full, filter.ClassColumn, filter.ShowAll), sel.Class))
	}
	if full.HasColumn(filter.FedColumn) {
		p.Dropdowns = append(p.Dropdowns, newDropdown("fed", "Choose a Federation:",
			filter.Options(full, filter.FedColumn, filter.ShowAll), sel.Fed))
	}
	for _, g := range rep.Groups {
		p.Tables = append(p.Tables, newTable(g.Event, g.Data, models.EventColumn))
	}
	p.Chart = newChart(rep, len(rep.Groups) > 0)
	return p
}

func rosterPage(full *models.Dataset, sel filter.RosterSelection, res filter.Result) pageData {
	p := pageData{
		Title:       "Campus Directory",
		Intro:       "Searchable staff and faculty directory.",
		Action:      "/roster",
		Name:        sel.Name,
		Regex:       sel.Regex,
		Warnings:    res.Warnings,
		NoneMessage: "No people match your filters.",
		Checkboxes: []checkbox{
			{Name: "faculty", Value: "1", Label: "Faculty", Checked: sel.Faculty},
			{Name: "staff", Value: "1", Label: "Staff", Checked: sel.Staff},
			{Name: "full_time", Value: "1", Label: filter.ContractFullTime, Checked: sel.FullTime},
			{Name: "part_time", Value: "1", Label: filter.ContractPartTime, Checked: sel.PartTime},
			{Name: "assistant", Value: "1", Label: "Assistant", Checked: sel.Assistant},
			{Name: "associate", Value: "1", Label: "Associate", Checked: sel.Associate},
			{Name: "full", Value: "1", Label: "Full", Checked: sel.Full},
		},
	}
	if full.HasColumn(filter.DepartmentColumn) {
		p.Dropdowns = append(p.Dropdowns, newDropdown("department", "Choose a department:",
			filter.Options(full, filter.DepartmentColumn, filter.ShowAll), sel.Department))
	}
	if !res.Data.IsEmpty() {
		p.Tables = append(p.Tables, newTable("", res.Data))
	}
	return p
}
