package attendance

// Threshold is the minimum overall attendance percentage a student must
// maintain to be considered safe.
const Threshold = 75.0

// Action labels reported alongside Result.ActionNumber.
const (
	LabelMaySkip    = "classes that may be skipped"
	LabelMustAttend = "classes that must be attended"
)

// RawEntry is one row of caller-supplied input, exactly as collected from a
// form: a free-text subject name and two numeric-or-blank count fields.
// Parsing and validation of the counts belong to this package.
type RawEntry struct {
	Name     string
	Held     string
	Attended string
}

// SubjectRecord is a validated subject. Name is upper-cased, counts are
// parsed, and Percentage is Attended/Held x 100.
type SubjectRecord struct {
	Name       string
	Held       int
	Attended   int
	Percentage float64
}

// Status classifies overall attendance against Threshold.
type Status string

const (
	StatusSafe   Status = "safe"
	StatusDanger Status = "danger"
)

// DisplayName returns the status label for rendering.
func (s Status) DisplayName() string {
	switch s {
	case StatusSafe:
		return "SAFE"
	case StatusDanger:
		return "DANGER"
	default:
		return string(s)
	}
}

// Result holds the aggregate outcome of one analysis. It is built fresh per
// Analyze call and never mutated afterwards.
type Result struct {
	// Subjects are the validated records in input order.
	Subjects []SubjectRecord

	// TotalHeld and TotalAttended are integer sums across all subjects.
	TotalHeld     int
	TotalAttended int

	// OverallPercentage is the attended/held ratio across totals, rounded
	// to 2 decimal places. Status and ActionNumber are computed from the
	// unrounded ratio.
	OverallPercentage float64

	Status       Status
	ActionNumber int
	ActionLabel  string
}
