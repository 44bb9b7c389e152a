package attendance

import (
	"strconv"
	"strings"
)

// parseCount converts a raw count field to an int. Unparseable or missing
// input counts as 0, the same as an untouched form field.
func parseCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// ValidateEntries converts raw entries into SubjectRecords, preserving input
// order. Blank rows (no name, both counts zero) are silently skipped.
// Validation is fail-fast: the first violation aborts the whole call with no
// partial result.
func ValidateEntries(entries []RawEntry) ([]SubjectRecord, error) {
	var subjects []SubjectRecord
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		held := parseCount(e.Held)
		attended := parseCount(e.Attended)

		if name == "" && held == 0 && attended == 0 {
			continue
		}
		if name == "" {
			return nil, ErrMissingName
		}
		if held < 0 || attended < 0 {
			return nil, &ErrNegativeValue{Subject: name}
		}
		if attended > held {
			return nil, &ErrAttendedExceedsHeld{Subject: name, Held: held, Attended: attended}
		}
		if held == 0 {
			return nil, &ErrZeroClassesHeld{Subject: name}
		}

		subjects = append(subjects, SubjectRecord{
			Name:       strings.ToUpper(name),
			Held:       held,
			Attended:   attended,
			Percentage: float64(attended) / float64(held) * 100,
		})
	}
	return subjects, nil
}
