package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saipranav0521/student-attendance-analyzer/internal/attendance"
)

// addInputFlags registers the subject input flags shared by check and export.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("subject", "s", nil, "Subject as NAME:HELD:ATTENDED (repeatable)")
	cmd.Flags().String("csv", "", "CSV file with name,held,attended rows")
}

// gatherEntries collects raw entries from --subject flags and an optional
// --csv file, in that order.
func gatherEntries(cmd *cobra.Command) ([]attendance.RawEntry, error) {
	specs, _ := cmd.Flags().GetStringArray("subject")

	var entries []attendance.RawEntry
	for _, spec := range specs {
		e, err := parseSubjectSpec(spec)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if path, _ := cmd.Flags().GetString("csv"); path != "" {
		fromFile, err := loadCSVEntries(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		entries = append(entries, fromFile...)
	}

	return entries, nil
}

// parseSubjectSpec parses a NAME:HELD:ATTENDED flag value. The two counts
// are split off the right, so subject names may contain colons. Count text
// is passed through untouched; the analyzer owns numeric handling.
func parseSubjectSpec(spec string) (attendance.RawEntry, error) {
	last := strings.LastIndex(spec, ":")
	if last < 0 {
		return attendance.RawEntry{}, fmt.Errorf("invalid subject %q: want NAME:HELD:ATTENDED", spec)
	}
	prev := strings.LastIndex(spec[:last], ":")
	if prev < 0 {
		return attendance.RawEntry{}, fmt.Errorf("invalid subject %q: want NAME:HELD:ATTENDED", spec)
	}

	return attendance.RawEntry{
		Name:     spec[:prev],
		Held:     spec[prev+1 : last],
		Attended: spec[last+1:],
	}, nil
}

// loadCSVEntries reads name,held,attended records from a CSV file. A leading
// header row is skipped; short records are padded with empty fields.
func loadCSVEntries(path string) ([]attendance.RawEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	entries := make([]attendance.RawEntry, 0, len(records))
	for i, rec := range records {
		if i == 0 && isHeaderRow(rec) {
			continue
		}
		var e attendance.RawEntry
		if len(rec) > 0 {
			e.Name = rec[0]
		}
		if len(rec) > 1 {
			e.Held = rec[1]
		}
		if len(rec) > 2 {
			e.Attended = rec[2]
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func isHeaderRow(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(rec[0]))
	return first == "name" || first == "subject"
}
