package domain

import (
	"errors"
	"testing"
)

func TestSchemaErrorWrapsCause(t *testing.T) {
	cause := errors.New("missing properties: 'answer'")
	err := NewSchemaError(namedMediaType{name: "application/vnd.q+json"}, cause)

	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable")
	}
	if err.Description != cause.Error() {
		t.Fatalf("expected description %q, got %q", cause.Error(), err.Description)
	}
	if err.Error() != "application/vnd.q+json: missing properties: 'answer'" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestSerializationError(t *testing.T) {
	cause := errors.New("unsupported type")
	err := &SerializationError{Op: "marshal", Cause: cause}

	if !errors.Is(err, ErrSerialization) {
		t.Fatalf("expected ErrSerialization")
	}
	if errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("serialization error must not match ErrSchemaMismatch")
	}
	if err.Error() != "json marshal: unsupported type" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
