package validation

import (
	"context"

	"github.com/osvaldoandrade/mtvalidate/internal/app/catalog"
	"github.com/osvaldoandrade/mtvalidate/internal/infra/filesystem"
	"github.com/osvaldoandrade/mtvalidate/internal/infra/schema"
)

// Registry resolves media type strings to JSON Schema backed media types.
type Registry struct {
	types   *schema.Registry
	catalog *catalog.Service
}

func NewRegistry() *Registry {
	types := schema.NewRegistry()
	return &Registry{
		types:   types,
		catalog: catalog.NewService(types, filesystem.SchemaSource{}, schema.JSONSchemaValidator{}, nil),
	}
}

// LoadRegistry registers every *.json, *.yaml and *.yml schema in dir. Each
// schema names its media type in the top-level "x-media-type" keyword.
func LoadRegistry(ctx context.Context, dir string) (*Registry, error) {
	registry := NewRegistry()
	if _, err := registry.catalog.Load(ctx, dir); err != nil {
		return nil, err
	}
	return registry, nil
}

// Apply registers the schema file at path. An empty identifier is read from
// the schema document.
func (r *Registry) Apply(ctx context.Context, identifier, path string) (MediaType, error) {
	mediaType, err := r.catalog.Apply(ctx, identifier, path)
	if err != nil {
		return nil, err
	}
	return mediaType, nil
}

// Register adds an in-memory schema document.
func (r *Registry) Register(ctx context.Context, identifier string, document []byte) (MediaType, error) {
	mediaType, err := (schema.JSONSchemaValidator{}).Compile(ctx, identifier, document)
	if err != nil {
		return nil, err
	}
	if err := r.types.Register(mediaType); err != nil {
		return nil, err
	}
	return mediaType, nil
}

func (r *Registry) Lookup(identifier string) (MediaType, error) {
	mediaType, err := r.types.Lookup(identifier)
	if err != nil {
		return nil, err
	}
	return mediaType, nil
}

// Identifiers lists the registered media types in order.
func (r *Registry) Identifiers() []string {
	types := r.types.List()
	out := make([]string, 0, len(types))
	for _, mediaType := range types {
		out = append(out, mediaType.String())
	}
	return out
}

// CompileMediaType compiles a JSON Schema document into a MediaType without
// registering it.
func CompileMediaType(ctx context.Context, identifier string, document []byte) (MediaType, error) {
	mediaType, err := (schema.JSONSchemaValidator{}).Compile(ctx, identifier, document)
	if err != nil {
		return nil, err
	}
	return mediaType, nil
}
