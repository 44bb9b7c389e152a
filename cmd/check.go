package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saipranav0521/student-attendance-analyzer/internal/attendance"
	"github.com/saipranav0521/student-attendance-analyzer/internal/ui/theme"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Analyze attendance without the TUI",
	Example: `  attendance-analyzer check -s "Maths:20:18" -s "Physics:20:12"
  attendance-analyzer check --csv subjects.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := gatherEntries(cmd)
		if err != nil {
			return err
		}

		res, err := attendance.Analyze(entries)
		if err != nil {
			return fmt.Errorf("analyze: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), renderReport(res))
		return nil
	},
}

func init() {
	addInputFlags(checkCmd)
}

// renderReport formats a result for terminal output.
func renderReport(res *attendance.Result) string {
	var b strings.Builder

	safe := res.Status == attendance.StatusSafe
	badge := theme.StatusStyle(safe).Render(res.Status.DisplayName())

	fmt.Fprintf(&b, "Overall attendance: %.2f%%  (%d of %d classes)\n",
		res.OverallPercentage, res.TotalAttended, res.TotalHeld)
	fmt.Fprintf(&b, "Status: %s\n", badge)
	fmt.Fprintf(&b, "%d %s\n\n", res.ActionNumber, res.ActionLabel)

	for _, sub := range res.Subjects {
		fmt.Fprintf(&b, "  %-20s %4d/%-4d %7.2f%%\n",
			sub.Name, sub.Attended, sub.Held, sub.Percentage)
	}

	return b.String()
}
