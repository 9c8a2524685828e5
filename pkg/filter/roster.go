package filter

// Roster column names and values
const (
	NameColumn       = "Name"
	DepartmentColumn = "Department"
	RoleColumn       = "Role"
	ContractColumn   = "Contract"
	PositionColumn   = "Position"

	RoleFaculty      = "Faculty"
	RoleStaff        = "Staff"
	ContractFullTime = "FULL-TIME"
	ContractPartTime = "PART-TIME"
)

// RosterSelection is the state of the directory page controls
type RosterSelection struct {
	Department string

	Faculty bool
	Staff   bool

	FullTime bool
	PartTime bool

	Assistant bool
	Associate bool
	// Full selects full professors; it matches the keyword "Professor"
	Full bool

	Name  string
	Regex bool
}

// DefaultRosterSelection has every checkbox ticked and no department chosen
func DefaultRosterSelection() RosterSelection {
	return RosterSelection{
		Department: ShowAll,
		Faculty:    true,
		Staff:      true,
		FullTime:   true,
		PartTime:   true,
		Assistant:  true,
		Associate:  true,
		Full:       true,
	}
}

// Criteria converts the selection into filter criteria. A checkbox pair with
// both boxes ticked filters nothing; with neither ticked nothing is shown.
func (s RosterSelection) Criteria() Criteria {
	c := Criteria{
		ExactMatch: map[string]string{DepartmentColumn: s.Department},
		TextSearch: []TextSearch{{Column: NameColumn, Pattern: s.Name, Regex: s.Regex}},
	}
	if m, ok := pair(RoleColumn, RoleFaculty, s.Faculty, RoleStaff, s.Staff); ok {
		c.Membership = append(c.Membership, m)
	}
	if m, ok := pair(ContractColumn, ContractFullTime, s.FullTime, ContractPartTime, s.PartTime); ok {
		c.Membership = append(c.Membership, m)
	}

	var ranks []string
	if s.Assistant {
		ranks = append(ranks, "Assistant")
	}
	if s.Associate {
		ranks = append(ranks, "Associate")
	}
	if s.Full {
		ranks = append(ranks, "Professor")
	}
	c.AnyKeyword = []KeywordSet{{Column: PositionColumn, Keywords: ranks}}
	return c
}

func pair(column, a string, wantA bool, b string, wantB bool) (Membership, bool) {
	switch {
	case wantA && wantB:
		return Membership{}, false
	case wantA:
		return Membership{Column: column, Allowed: []string{a}}, true
	case wantB:
		return Membership{Column: column, Allowed: []string{b}}, true
	default:
		return Membership{Column: column}, true
	}
}
