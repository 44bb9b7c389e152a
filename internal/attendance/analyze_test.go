package attendance

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func entry(name string, held, attended int) RawEntry {
	return RawEntry{
		Name:     name,
		Held:     strconv.Itoa(held),
		Attended: strconv.Itoa(attended),
	}
}

func TestAnalyze_SafeSingleSubject(t *testing.T) {
	res, err := Analyze([]RawEntry{entry("Maths", 20, 18)})
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if res.TotalHeld != 20 || res.TotalAttended != 18 {
		t.Errorf("totals = %d/%d, want 20/18", res.TotalHeld, res.TotalAttended)
	}
	if !almostEqual(res.OverallPercentage, 90.0) {
		t.Errorf("OverallPercentage = %f, want 90.0", res.OverallPercentage)
	}
	if res.Status != StatusSafe {
		t.Errorf("Status = %q, want %q", res.Status, StatusSafe)
	}
	// floor(18/0.75 - 20) = floor(24 - 20) = 4
	if res.ActionNumber != 4 {
		t.Errorf("ActionNumber = %d, want 4", res.ActionNumber)
	}
	if res.ActionLabel != LabelMaySkip {
		t.Errorf("ActionLabel = %q, want %q", res.ActionLabel, LabelMaySkip)
	}
}

func TestAnalyze_DangerSingleSubject(t *testing.T) {
	res, err := Analyze([]RawEntry{entry("Physics", 20, 10)})
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if !almostEqual(res.OverallPercentage, 50.0) {
		t.Errorf("OverallPercentage = %f, want 50.0", res.OverallPercentage)
	}
	if res.Status != StatusDanger {
		t.Errorf("Status = %q, want %q", res.Status, StatusDanger)
	}
	// ceil(0.75*20 - 10) = ceil(15 - 10) = 5
	if res.ActionNumber != 5 {
		t.Errorf("ActionNumber = %d, want 5", res.ActionNumber)
	}
	if res.ActionLabel != LabelMustAttend {
		t.Errorf("ActionLabel = %q, want %q", res.ActionLabel, LabelMustAttend)
	}
}

func TestAnalyze_DangerAggregate(t *testing.T) {
	res, err := Analyze([]RawEntry{
		entry("A", 10, 8),
		entry("B", 10, 6),
	})
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if res.TotalHeld != 20 || res.TotalAttended != 14 {
		t.Errorf("totals = %d/%d, want 20/14", res.TotalHeld, res.TotalAttended)
	}
	if !almostEqual(res.OverallPercentage, 70.0) {
		t.Errorf("OverallPercentage = %f, want 70.0", res.OverallPercentage)
	}
	if res.Status != StatusDanger {
		t.Errorf("Status = %q, want %q", res.Status, StatusDanger)
	}
	// ceil(15 - 14) = 1
	if res.ActionNumber != 1 {
		t.Errorf("ActionNumber = %d, want 1", res.ActionNumber)
	}
}

func TestAnalyze_ExactThresholdIsSafe(t *testing.T) {
	res, err := Analyze([]RawEntry{entry("Maths", 4, 3)})
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if res.Status != StatusSafe {
		t.Errorf("Status at exactly 75%% = %q, want %q", res.Status, StatusSafe)
	}
	// floor(3/0.75 - 4) = floor(0) = 0
	if res.ActionNumber != 0 {
		t.Errorf("ActionNumber = %d, want 0", res.ActionNumber)
	}
}

func TestAnalyze_OverallPercentageRounded(t *testing.T) {
	res, err := Analyze([]RawEntry{entry("Maths", 3, 2)})
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if res.OverallPercentage != 66.67 {
		t.Errorf("OverallPercentage = %v, want 66.67", res.OverallPercentage)
	}
}

func TestAnalyze_TotalsAreExactSums(t *testing.T) {
	entries := []RawEntry{
		entry("A", 13, 7),
		entry("B", 29, 23),
		entry("C", 8, 8),
	}
	res, err := Analyze(entries)
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	var wantHeld, wantAttended int
	for _, s := range res.Subjects {
		wantHeld += s.Held
		wantAttended += s.Attended
	}
	if res.TotalHeld != wantHeld || res.TotalAttended != wantAttended {
		t.Errorf("totals = %d/%d, want %d/%d",
			res.TotalHeld, res.TotalAttended, wantHeld, wantAttended)
	}
}

func TestAnalyze_AggregateMatchesSingleSubjectRoundTrip(t *testing.T) {
	multi, err := Analyze([]RawEntry{
		entry("A", 10, 8),
		entry("B", 10, 6),
		entry("C", 15, 12),
	})
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	single, err := Analyze([]RawEntry{
		entry("ALL", multi.TotalHeld, multi.TotalAttended),
	})
	if err != nil {
		t.Fatalf("Analyze round trip returned error: %v", err)
	}

	if single.Status != multi.Status {
		t.Errorf("round-trip status = %q, want %q", single.Status, multi.Status)
	}
	if single.ActionNumber != multi.ActionNumber {
		t.Errorf("round-trip ActionNumber = %d, want %d", single.ActionNumber, multi.ActionNumber)
	}
}

func TestAnalyze_ActionNumberNeverNegative(t *testing.T) {
	for held := 1; held <= 25; held++ {
		for attended := 0; attended <= held; attended++ {
			res, err := Analyze([]RawEntry{entry("S", held, attended)})
			if err != nil {
				t.Fatalf("Analyze(%d/%d) returned error: %v", held, attended, err)
			}
			if res.ActionNumber < 0 {
				t.Errorf("Analyze(%d/%d) ActionNumber = %d, want >= 0",
					held, attended, res.ActionNumber)
			}
		}
	}
}

func TestAnalyze_NoSubjects(t *testing.T) {
	tests := []struct {
		name    string
		entries []RawEntry
	}{
		{"empty input", nil},
		{"only blank rows", []RawEntry{{}, {Name: "", Held: "0", Attended: "0"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Analyze(tt.entries)
			if !errors.Is(err, ErrNoSubjects) {
				t.Errorf("err = %v, want ErrNoSubjects", err)
			}
		})
	}
}

func TestAnalyze_ValidationErrorAbortsCall(t *testing.T) {
	res, err := Analyze([]RawEntry{
		entry("A", 10, 8),
		entry("B", 10, 11),
	})
	if res != nil {
		t.Errorf("got result %+v alongside error", res)
	}
	var exceedErr *ErrAttendedExceedsHeld
	if !errors.As(err, &exceedErr) {
		t.Errorf("err = %v, want *ErrAttendedExceedsHeld", err)
	}
}
