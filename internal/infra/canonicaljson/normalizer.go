package canonicaljson

import (
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	jsonv1 "github.com/go-json-experiment/json/v1"

	"github.com/osvaldoandrade/mtvalidate/internal/domain"
)

// Normalizer round-trips a Go value through JSON text so that the result is
// exactly what a strict parser would produce on the other side of the wire:
// map[string]any, []any, float64, string, bool and nil.
//
// Bodies are marshaled with encoding/json semantics (legacy omitempty, nil
// slices and maps as null, invalid UTF-8 replaced) since that is what Go
// services put on the wire. Only the re-parse is strict.
type Normalizer struct{}

func (Normalizer) Normalize(body any) (any, error) {
	encoded, err := json.Marshal(body, jsonv1.DefaultOptionsV1(), json.Deterministic(true))
	if err != nil {
		return nil, &domain.SerializationError{Op: "marshal", Cause: err}
	}

	var out any
	if err := json.Unmarshal(encoded, &out,
		jsontext.AllowDuplicateNames(false),
		jsontext.AllowInvalidUTF8(false),
	); err != nil {
		return nil, &domain.SerializationError{Op: "unmarshal", Cause: err}
	}
	return out, nil
}
