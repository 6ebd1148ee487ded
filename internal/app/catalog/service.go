package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/osvaldoandrade/mtvalidate/internal/infra/schema"
)

type Service struct {
	store    Store
	source   SchemaSource
	compiler SchemaCompiler
	logger   *slog.Logger
}

func NewService(store Store, source SchemaSource, compiler SchemaCompiler, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:    store,
		source:   source,
		compiler: compiler,
		logger:   logger,
	}
}

// Compile reads and compiles the schema at schemaPath. An empty identifier is
// taken from the schema document.
func (s *Service) Compile(ctx context.Context, identifier, schemaPath string) (*schema.MediaType, error) {
	document, err := s.readDocument(ctx, schemaPath)
	if err != nil {
		return nil, err
	}

	mediaType, err := s.compiler.Compile(ctx, identifier, document)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(schemaPath), err)
	}
	return mediaType, nil
}

// Verify checks that the schema at schemaPath compiles without binding it to
// a media type.
func (s *Service) Verify(ctx context.Context, schemaPath string) error {
	document, err := s.readDocument(ctx, schemaPath)
	if err != nil {
		return err
	}
	if err := s.compiler.Validate(ctx, document); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(schemaPath), err)
	}
	return nil
}

func (s *Service) readDocument(ctx context.Context, schemaPath string) ([]byte, error) {
	schemaPath = strings.TrimSpace(schemaPath)
	if schemaPath == "" {
		return nil, ErrSchemaPathRequired
	}

	absSchemaPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("resolve schema path: %w", err)
	}

	document, err := s.source.ReadSchema(ctx, absSchemaPath)
	if err != nil {
		return nil, err
	}

	document = bytes.TrimSpace(document)
	if len(document) == 0 || !json.Valid(document) {
		return nil, fmt.Errorf("%w: %s", ErrSchemaInvalidJSON, schemaPath)
	}
	return document, nil
}

// Apply compiles the schema at schemaPath and registers it.
func (s *Service) Apply(ctx context.Context, identifier, schemaPath string) (*schema.MediaType, error) {
	mediaType, err := s.Compile(ctx, identifier, schemaPath)
	if err != nil {
		return nil, err
	}
	if err := s.store.Register(mediaType); err != nil {
		return nil, err
	}
	s.logger.DebugContext(ctx, "registered media type",
		slog.String("media_type", mediaType.String()),
		slog.String("schema", schemaPath),
	)
	return mediaType, nil
}

// Load registers every schema file found in dir.
func (s *Service) Load(ctx context.Context, dir string) ([]*schema.MediaType, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, ErrSchemaDirRequired
	}

	paths, err := s.source.ListSchemas(ctx, dir)
	if err != nil {
		return nil, err
	}

	loaded := make([]*schema.MediaType, 0, len(paths))
	for _, path := range paths {
		mediaType, err := s.Apply(ctx, "", path)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, mediaType)
	}
	return loaded, nil
}
