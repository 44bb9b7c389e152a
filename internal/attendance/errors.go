package attendance

import (
	"errors"
	"fmt"
)

// ErrMissingName indicates an entry carried class counts but no subject name.
var ErrMissingName = errors.New("subject name is missing")

// ErrNoSubjects indicates nothing was left to analyze after blank rows were
// filtered out.
var ErrNoSubjects = errors.New("no subjects to analyze")

// ErrNegativeValue indicates a subject had a negative held or attended count.
type ErrNegativeValue struct {
	Subject string
}

func (e *ErrNegativeValue) Error() string {
	return fmt.Sprintf("%s: classes held and attended cannot be negative", e.Subject)
}

// ErrAttendedExceedsHeld indicates a subject reported more classes attended
// than were held.
type ErrAttendedExceedsHeld struct {
	Subject  string
	Held     int
	Attended int
}

func (e *ErrAttendedExceedsHeld) Error() string {
	return fmt.Sprintf("%s: attended %d classes but only %d were held", e.Subject, e.Attended, e.Held)
}

// ErrZeroClassesHeld indicates a named subject with zero classes held. A
// fully blank row is skipped instead; a non-empty name makes the entry
// intentional, so it is rejected.
type ErrZeroClassesHeld struct {
	Subject string
}

func (e *ErrZeroClassesHeld) Error() string {
	return fmt.Sprintf("%s: at least one class must have been held", e.Subject)
}
