package validation

import (
	"github.com/osvaldoandrade/mtvalidate/internal/app/policy"
	"github.com/osvaldoandrade/mtvalidate/internal/domain"
	"github.com/osvaldoandrade/mtvalidate/internal/infra/schema"
)

var (
	// ErrSchemaMismatch matches every *SchemaError.
	ErrSchemaMismatch = domain.ErrSchemaMismatch
	// ErrSerialization matches every *SerializationError.
	ErrSerialization = domain.ErrSerialization
	// ErrEscalated matches errors produced by Helpers.Escalate.
	ErrEscalated = domain.ErrEscalated

	ErrMediaTypeRequired     = domain.ErrMediaTypeRequired
	ErrInvalidIdentifier     = domain.ErrInvalidIdentifier
	ErrInvalidValidationMode = domain.ErrInvalidValidationMode
	ErrMediaTypeNotFound     = schema.ErrMediaTypeNotFound
	ErrMediaTypeMissing      = schema.ErrMediaTypeMissing
	ErrDuplicateMediaType    = schema.ErrDuplicateMediaType
	ErrSchemaInvalidJSON     = schema.ErrSchemaInvalidJSON
)

type (
	// SchemaError is returned in strict mode and handed to an InvalidHandler
	// in lenient mode. Unwrap yields the schema engine's own error.
	SchemaError = domain.SchemaError
	// SerializationError is returned when a body cannot be round-tripped
	// through JSON. It is never subject to the lenient policy.
	SerializationError = domain.SerializationError
	EscalationError    = policy.EscalationError
)
