package schema

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/osvaldoandrade/mtvalidate/internal/domain"
	"github.com/osvaldoandrade/mtvalidate/internal/infra/hash"
)

// MediaTypeKeyword is the top-level schema keyword naming the media type a
// schema document governs.
const MediaTypeKeyword = "x-media-type"

const resourceURL = "schema.json"

var ErrSchemaInvalidJSON = errors.New("schema is not valid JSON")
var ErrMediaTypeMissing = errors.New("schema does not declare " + MediaTypeKeyword)

type JSONSchemaValidator struct{}

// Validate checks that schema compiles without binding it to a media type.
func (JSONSchemaValidator) Validate(ctx context.Context, schema []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := compile(schema)
	return err
}

// Compile builds a media type from a JSON Schema document. An empty
// identifier is taken from the document's x-media-type keyword.
func (JSONSchemaValidator) Compile(ctx context.Context, identifier string, schema []byte) (*MediaType, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	schema = bytes.TrimSpace(schema)
	if strings.TrimSpace(identifier) == "" {
		declared, err := declaredMediaType(schema)
		if err != nil {
			return nil, err
		}
		identifier = declared
	}

	id, err := domain.ParseIdentifier(identifier)
	if err != nil {
		return nil, err
	}

	compiled, err := compile(schema)
	if err != nil {
		return nil, err
	}

	fingerprint, err := hash.SHA256{}.SumJSONHex(ctx, schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalidJSON, err)
	}
	return &MediaType{
		id:          id,
		schema:      compiled,
		fingerprint: fingerprint,
	}, nil
}

func compile(schema []byte) (*jsonschema.Schema, error) {
	if len(bytes.TrimSpace(schema)) == 0 {
		return nil, ErrSchemaInvalidJSON
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(resourceURL, bytes.NewReader(schema)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalidJSON, err)
	}

	compiled, err := compiler.Compile(resourceURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return compiled, nil
}

func declaredMediaType(schema []byte) (string, error) {
	var header struct {
		MediaType string `json:"x-media-type"`
	}
	if err := json.Unmarshal(schema, &header); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSchemaInvalidJSON, err)
	}
	if strings.TrimSpace(header.MediaType) == "" {
		return "", ErrMediaTypeMissing
	}
	return header.MediaType, nil
}
