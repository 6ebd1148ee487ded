package domain

import (
	"errors"
	"fmt"
)

var ErrSchemaMismatch = errors.New("payload does not match media type schema")
var ErrSerialization = errors.New("payload is not representable as JSON")
var ErrMediaTypeRequired = errors.New("media type is required")
var ErrEscalated = errors.New("invalid payload escalated")
var ErrIdentifierRequired = errors.New("media type identifier is required")
var ErrInvalidIdentifier = errors.New("invalid media type identifier")
var ErrInvalidValidationMode = errors.New("invalid validation mode")

// SchemaError reports that a payload failed its media type's schema. Cause is
// the schema engine's own error value.
type SchemaError struct {
	MediaType   string
	Description string
	Cause       error
}

func NewSchemaError(mediaType MediaType, cause error) *SchemaError {
	description := ""
	if cause != nil {
		description = cause.Error()
	}
	return &SchemaError{
		MediaType:   MediaTypeName(mediaType),
		Description: description,
		Cause:       cause,
	}
}

func (e *SchemaError) Error() string {
	if e.MediaType == "" {
		return e.Description
	}
	return fmt.Sprintf("%s: %s", e.MediaType, e.Description)
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

// SerializationError reports a body that could not be round-tripped through
// JSON. Op is "marshal" or "unmarshal".
type SerializationError struct {
	Op    string
	Cause error
}

func (e *SerializationError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("json %s failed", e.Op)
	}
	return fmt.Sprintf("json %s: %v", e.Op, e.Cause)
}

func (e *SerializationError) Unwrap() error {
	return e.Cause
}

func (e *SerializationError) Is(target error) bool {
	return target == ErrSerialization
}
