package domain

import "testing"

func TestOutcomeRoundTrip(t *testing.T) {
	for _, outcome := range []Outcome{OutcomeValid, OutcomeSkipped, OutcomeInvalid, OutcomeError} {
		if got := ParseOutcome(outcome.String()); got != outcome {
			t.Fatalf("expected %v, got %v", outcome, got)
		}
	}
	if got := ParseOutcome("bogus"); got != OutcomeUnknown {
		t.Fatalf("expected unknown, got %v", got)
	}
	if OutcomeUnknown.String() != "unknown" {
		t.Fatalf("unexpected unknown string %q", OutcomeUnknown.String())
	}
}
