package audit

import (
	"context"
	"log/slog"

	"github.com/osvaldoandrade/mtvalidate/internal/app/policy"
	"github.com/osvaldoandrade/mtvalidate/internal/domain"
)

// Service keeps a journal of payloads that failed validation.
type Service struct {
	store    Store
	renderer Renderer
	idGen    IDGenerator
	clock    Clock
}

func NewService(store Store, renderer Renderer, idGen IDGenerator, clock Clock) *Service {
	return &Service{
		store:    store,
		renderer: renderer,
		idGen:    idGen,
		clock:    clock,
	}
}

// Record stores a report for a failed validation. normalized is the body as
// the schema engine saw it.
func (s *Service) Record(ctx context.Context, schemaErr *domain.SchemaError, normalized any) (domain.Report, error) {
	now := s.clock.Now()
	id, err := s.idGen.NewIDAt(now)
	if err != nil {
		return domain.Report{}, err
	}

	body, err := s.renderer.Render(normalized)
	if err != nil {
		return domain.Report{}, err
	}

	report := domain.Report{
		ID:          id,
		MediaType:   schemaErr.MediaType,
		Outcome:     domain.OutcomeInvalid,
		Description: schemaErr.Description,
		Body:        []byte(body),
		RecordedAt:  now,
	}
	if err := s.store.Record(ctx, report); err != nil {
		return domain.Report{}, err
	}
	return report, nil
}

func (s *Service) List(ctx context.Context, limit int) ([]domain.Report, error) {
	return s.store.List(ctx, limit)
}

// Handler records each failure, then emits the default warning and lets the
// original body through. A journal write failure is logged, not returned.
func (s *Service) Handler() policy.InvalidHandler {
	return func(_ domain.MediaType, schemaErr *domain.SchemaError, body any, helpers policy.Helpers) (any, error) {
		report, err := s.Record(helpers.Context(), schemaErr, helpers.Normalized())
		if err != nil {
			helpers.Logger().ErrorContext(helpers.Context(), "record validation failure",
				slog.String("media_type", schemaErr.MediaType),
				slog.String("error", err.Error()),
			)
		} else {
			helpers.Logger().DebugContext(helpers.Context(), "recorded validation failure",
				slog.String("report_id", report.ID),
				slog.String("media_type", report.MediaType),
			)
		}
		helpers.WarnDefault()
		return body, nil
	}
}
