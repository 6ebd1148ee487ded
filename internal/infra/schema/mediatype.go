package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/osvaldoandrade/mtvalidate/internal/domain"
)

// MediaType is a media type identifier bound to a compiled JSON Schema.
// It is immutable and safe for concurrent use.
type MediaType struct {
	id          domain.Identifier
	schema      *jsonschema.Schema
	fingerprint string
}

func (m *MediaType) Suffix() string {
	return m.id.Suffix
}

func (m *MediaType) String() string {
	return m.id.String()
}

func (m *MediaType) Identifier() domain.Identifier {
	return m.id
}

func (m *MediaType) Fingerprint() string {
	return m.fingerprint
}

// Validate checks plain JSON data (as produced by a JSON decoder) against the
// schema. Mismatches are reported as *ValidationError.
func (m *MediaType) Validate(data any) error {
	err := m.schema.Validate(data)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("validate %s: %w", m.id, err)
	}
	return &ValidationError{Violations: collectViolations(verr), cause: verr}
}

type Violation struct {
	InstanceLocation string
	KeywordLocation  string
	Message          string
}

func (v Violation) String() string {
	location := v.InstanceLocation
	if location == "" {
		location = "/"
	}
	return fmt.Sprintf("at '%s': %s", location, v.Message)
}

// ValidationError lists the leaf violations reported by the schema engine.
type ValidationError struct {
	Violations []Violation
	cause      *jsonschema.ValidationError
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		if e.cause != nil {
			return e.cause.Error()
		}
		return "payload does not match schema"
	}
	lines := make([]string, 0, len(e.Violations))
	for _, violation := range e.Violations {
		lines = append(lines, violation.String())
	}
	return strings.Join(lines, "\n")
}

func (e *ValidationError) Unwrap() error {
	if e.cause == nil {
		return nil
	}
	return e.cause
}

func collectViolations(err *jsonschema.ValidationError) []Violation {
	if len(err.Causes) == 0 {
		return []Violation{{
			InstanceLocation: err.InstanceLocation,
			KeywordLocation:  err.KeywordLocation,
			Message:          err.Message,
		}}
	}
	var out []Violation
	for _, cause := range err.Causes {
		out = append(out, collectViolations(cause)...)
	}
	return out
}
