package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/myusername/records-dashboard/internal/utils"
	"github.com/myusername/records-dashboard/pkg/filter"
	"github.com/myusername/records-dashboard/pkg/parser"
)

var (
	rosterSel    = filter.DefaultRosterSelection()
	rosterExport string
	rosterDepts  bool
)

func init() {
	f := rosterCmd.Flags()
	f.StringVar(&rosterSel.Department, "department", filter.ShowAll, "Department to show")
	f.BoolVar(&rosterSel.Faculty, "faculty", true, "Include faculty")
	f.BoolVar(&rosterSel.Staff, "staff", true, "Include staff")
	f.BoolVar(&rosterSel.FullTime, "full-time", true, "Include full-time contracts")
	f.BoolVar(&rosterSel.PartTime, "part-time", true, "Include part-time contracts")
	f.BoolVar(&rosterSel.Assistant, "assistant", true, "Include assistant positions")
	f.BoolVar(&rosterSel.Associate, "associate", true, "Include associate positions")
	f.BoolVar(&rosterSel.Full, "full", true, "Include full professors")
	f.StringVar(&rosterSel.Name, "name", "", "Name search")
	f.BoolVar(&rosterSel.Regex, "regex", false, "Treat --name as a regular expression")
	f.StringVar(&rosterExport, "export", "", "Write the filtered roster to a .csv or .xlsx file")
	f.BoolVar(&rosterDepts, "departments", false, "List the available departments")
	rootCmd.AddCommand(rosterCmd)
}

var rosterCmd = &cobra.Command{
	Use:   "roster [path/to/roster.csv|.xlsx]",
	Short: "Filters a staff directory file and prints the matching people.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.RosterPath
		if len(args) == 1 {
			path = args[0]
		}

		data, err := parser.LoadRoster(path)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if rosterDepts {
			fmt.Fprintf(out, "Departments: %s\n", strings.Join(filter.Options(data, filter.DepartmentColumn, filter.ShowAll), ", "))
			return nil
		}

		res := filter.Apply(data, rosterSel.Criteria())
		utils.RenderWarnings(out, res.Warnings)
		if res.Data.IsEmpty() {
			fmt.Fprintln(out, utils.NoRecordsMessage)
		} else {
			utils.RenderDataset(out, "", res.Data)
		}

		if rosterExport != "" {
			if err := utils.SaveDataset(res.Data, rosterExport); err != nil {
				return fmt.Errorf("error exporting roster: %w", err)
			}
		}
		return nil
	},
}
