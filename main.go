package main

import (
	"os"

	"github.com/saipranav0521/student-attendance-analyzer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
