package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saipranav0521/student-attendance-analyzer/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "attendance-analyzer",
	Short: "Check your class attendance against the 75% rule",
	Long: "Attendance Analyzer — terminal app that tells a student whether their\n" +
		"overall class attendance is safe and how many classes they can still\n" +
		"skip, or must attend, to stay above the minimum.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}
