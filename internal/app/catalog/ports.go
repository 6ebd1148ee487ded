package catalog

import (
	"context"

	"github.com/osvaldoandrade/mtvalidate/internal/infra/schema"
)

type SchemaSource interface {
	ReadSchema(ctx context.Context, path string) ([]byte, error)
	ListSchemas(ctx context.Context, dir string) ([]string, error)
}

type SchemaCompiler interface {
	Validate(ctx context.Context, schema []byte) error
	Compile(ctx context.Context, identifier string, schema []byte) (*schema.MediaType, error)
}

type Store interface {
	Register(mediaType *schema.MediaType) error
}
