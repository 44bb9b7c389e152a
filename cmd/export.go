package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saipranav0521/student-attendance-analyzer/internal/attendance"
	"github.com/saipranav0521/student-attendance-analyzer/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the attendance report to a spreadsheet",
	Example: `  attendance-analyzer export -s "Maths:20:18" -o report.xlsx
  attendance-analyzer export --csv subjects.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := gatherEntries(cmd)
		if err != nil {
			return err
		}

		res, err := attendance.Analyze(entries)
		if err != nil {
			return fmt.Errorf("analyze: %w", err)
		}

		out, _ := cmd.Flags().GetString("output")
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}

		if err := export.WriteXLSX(f, res); err != nil {
			f.Close()
			return fmt.Errorf("export: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", out, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
		return nil
	},
}

func init() {
	addInputFlags(exportCmd)
	exportCmd.Flags().StringP("output", "o", "attendance.xlsx", "Output file path")
}
