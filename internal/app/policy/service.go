package policy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/osvaldoandrade/mtvalidate/internal/domain"
	"github.com/osvaldoandrade/mtvalidate/internal/infra/canonicaljson"
)

type Service struct {
	configs    *ConfigStore
	normalizer Normalizer
	renderer   Renderer
	warner     Warner
	recorder   Recorder
	logger     *slog.Logger
}

func NewService(configs *ConfigStore, normalizer Normalizer, renderer Renderer, warner Warner, recorder Recorder, logger *slog.Logger) *Service {
	if configs == nil {
		configs = NewConfigStore(Config{})
	}
	if normalizer == nil {
		normalizer = canonicaljson.Normalizer{}
	}
	if renderer == nil {
		renderer = canonicaljson.Canonicalizer{}
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		configs:    configs,
		normalizer: normalizer,
		renderer:   renderer,
		warner:     warner,
		recorder:   recorder,
		logger:     logger,
	}
}

func (s *Service) Configs() *ConfigStore {
	return s.configs
}

// Validate checks body against mediaType and applies the configured policy.
// Bodies of non-JSON media types are returned without any check. On every
// path that does not fail, the returned value is body itself.
func (s *Service) Validate(ctx context.Context, body any, mediaType domain.MediaType) (any, error) {
	normalized, skipped, err := s.check(ctx, body, mediaType)
	name := domain.MediaTypeName(mediaType)
	if err == nil {
		outcome := domain.OutcomeValid
		if skipped {
			outcome = domain.OutcomeSkipped
		}
		s.observe(ctx, name, outcome)
		return body, nil
	}

	var schemaErr *domain.SchemaError
	if !errors.As(err, &schemaErr) {
		s.observe(ctx, name, domain.OutcomeError)
		return nil, err
	}
	s.observe(ctx, name, domain.OutcomeInvalid)

	cfg := s.configs.Snapshot()
	if cfg.RaiseOnInvalid {
		return nil, schemaErr
	}

	fallback := func() { s.warnInvalid(schemaErr, normalized) }
	if cfg.InvalidHandler != nil {
		return cfg.InvalidHandler(mediaType, schemaErr, body, Helpers{
			ctx:        ctx,
			logger:     s.logger,
			warner:     s.warner,
			failure:    schemaErr,
			normalized: normalized,
			fallback:   fallback,
		})
	}

	fallback()
	return body, nil
}

// Check runs the suffix dispatch, normalization and schema check without
// applying the policy. It returns nil, *domain.SchemaError or
// *domain.SerializationError.
func (s *Service) Check(ctx context.Context, body any, mediaType domain.MediaType) error {
	_, _, err := s.check(ctx, body, mediaType)
	return err
}

func (s *Service) check(ctx context.Context, body any, mediaType domain.MediaType) (any, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if mediaType == nil {
		return nil, false, domain.ErrMediaTypeRequired
	}
	if !domain.IsJSONSuffix(mediaType.Suffix()) {
		return nil, true, nil
	}

	normalized, err := s.normalizer.Normalize(body)
	if err != nil {
		if !errors.Is(err, domain.ErrSerialization) {
			err = &domain.SerializationError{Op: "normalize", Cause: err}
		}
		return nil, false, err
	}

	if err := mediaType.Validate(normalized); err != nil {
		return normalized, false, domain.NewSchemaError(mediaType, err)
	}
	return normalized, false, nil
}

func (s *Service) warnInvalid(schemaErr *domain.SchemaError, normalized any) {
	if s.warner == nil {
		return
	}
	parsed, err := s.renderer.Render(normalized)
	if err != nil {
		parsed = fmt.Sprintf("%v", normalized)
	}
	s.warner.Warn(FormatWarning(schemaErr.MediaType, schemaErr.Description, parsed))
}

func (s *Service) observe(ctx context.Context, mediaType string, outcome domain.Outcome) {
	s.recorder.Observe(mediaType, outcome)
	s.logger.DebugContext(ctx, "media type validation",
		slog.String("media_type", mediaType),
		slog.String("outcome", outcome.String()),
	)
}
