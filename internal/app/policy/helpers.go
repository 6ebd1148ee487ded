package policy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osvaldoandrade/mtvalidate/internal/domain"
)

// Helpers is what an InvalidHandler may use from the policy that invoked it.
type Helpers struct {
	ctx        context.Context
	logger     *slog.Logger
	warner     Warner
	failure    *domain.SchemaError
	normalized any
	fallback   func()
}

func (h Helpers) Context() context.Context {
	if h.ctx == nil {
		return context.Background()
	}
	return h.ctx
}

func (h Helpers) Logger() *slog.Logger {
	if h.logger == nil {
		return slog.Default()
	}
	return h.logger
}

// Normalized returns the body as it was handed to the schema engine.
func (h Helpers) Normalized() any {
	return h.normalized
}

func (h Helpers) Warn(message string) {
	if h.warner != nil {
		h.warner.Warn(message)
	}
}

// WarnDefault emits the diagnostic the policy writes when no handler is set.
func (h Helpers) WarnDefault() {
	if h.fallback != nil {
		h.fallback()
	}
}

func (h Helpers) Escalate(format string, args ...any) error {
	return &EscalationError{Message: fmt.Sprintf(format, args...), Cause: h.failure}
}
