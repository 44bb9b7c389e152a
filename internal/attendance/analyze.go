package attendance

import "math"

// Analyze validates entries, aggregates totals, and classifies the result.
// It is the sole entry point: pure, synchronous, and reentrant. Any
// validation error aborts the call before aggregation.
func Analyze(entries []RawEntry) (*Result, error) {
	subjects, err := ValidateEntries(entries)
	if err != nil {
		return nil, err
	}
	if len(subjects) == 0 {
		return nil, ErrNoSubjects
	}

	var totalHeld, totalAttended int
	for _, s := range subjects {
		totalHeld += s.Held
		totalAttended += s.Attended
	}

	// Every subject has held >= 1, so the ratio is always defined.
	ratio := float64(totalAttended) / float64(totalHeld)

	res := &Result{
		Subjects:          subjects,
		TotalHeld:         totalHeld,
		TotalAttended:     totalAttended,
		OverallPercentage: math.Round(ratio*100*100) / 100,
	}

	if ratio*100 >= Threshold {
		res.Status = StatusSafe
		// Future classes that can be held without being attended before
		// the ratio dips below the threshold: attended/0.75 - held.
		res.ActionNumber = int(math.Floor(float64(totalAttended)/0.75 - float64(totalHeld)))
		res.ActionLabel = LabelMaySkip
	} else {
		res.Status = StatusDanger
		// Shortfall against the current totals: 0.75*held - attended.
		// This does not re-derive as held grows with each attended class,
		// so it is an estimate against the totals as they stand.
		res.ActionNumber = int(math.Ceil(0.75*float64(totalHeld) - float64(totalAttended)))
		res.ActionLabel = LabelMustAttend
	}
	if res.ActionNumber < 0 {
		res.ActionNumber = 0
	}

	return res, nil
}
