package domain

import "time"

type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeValid
	OutcomeSkipped
	OutcomeInvalid
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeValid:
		return "valid"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

func ParseOutcome(value string) Outcome {
	switch value {
	case "valid":
		return OutcomeValid
	case "skipped":
		return OutcomeSkipped
	case "invalid":
		return OutcomeInvalid
	case "error":
		return OutcomeError
	default:
		return OutcomeUnknown
	}
}

// Report is the record of a single validation.
type Report struct {
	ID          string
	MediaType   string
	Outcome     Outcome
	Description string
	Body        []byte
	RecordedAt  time.Time
}
