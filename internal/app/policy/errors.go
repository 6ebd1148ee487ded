package policy

import (
	"github.com/osvaldoandrade/mtvalidate/internal/domain"
)

// EscalationError is returned by handlers that turn a lenient failure into a
// fatal one through Helpers.Escalate.
type EscalationError struct {
	Message string
	Cause   *domain.SchemaError
}

func (e *EscalationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return domain.ErrEscalated.Error()
}

func (e *EscalationError) Unwrap() error {
	if e.Cause == nil {
		return nil
	}
	return e.Cause
}

func (e *EscalationError) Is(target error) bool {
	return target == domain.ErrEscalated
}
