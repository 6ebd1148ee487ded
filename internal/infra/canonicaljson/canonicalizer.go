package canonicaljson

import (
	"context"
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

type Canonicalizer struct{}

func (Canonicalizer) Canonicalize(ctx context.Context, input []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value := jsontext.Value(append([]byte(nil), input...))
	if err := value.Canonicalize(); err != nil {
		return nil, fmt.Errorf("canonicalize json: %w", err)
	}

	return []byte(value), nil
}

// Render encodes already-normalized data as canonical JSON text.
func (c Canonicalizer) Render(data any) (string, error) {
	encoded, err := json.Marshal(data, json.Deterministic(true))
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	canonical, err := c.Canonicalize(context.Background(), encoded)
	if err != nil {
		return "", err
	}
	return string(canonical), nil
}
