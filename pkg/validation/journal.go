package validation

import (
	"context"

	"github.com/osvaldoandrade/mtvalidate/internal/app/audit"
	"github.com/osvaldoandrade/mtvalidate/internal/domain"
	"github.com/osvaldoandrade/mtvalidate/internal/infra/canonicaljson"
	"github.com/osvaldoandrade/mtvalidate/internal/infra/ident"
	"github.com/osvaldoandrade/mtvalidate/internal/infra/sqlitejournal"
	"github.com/osvaldoandrade/mtvalidate/internal/platform"
)

// Report is a journal entry for a payload that failed validation.
type Report = domain.Report

// Journal records failed validations in a SQLite database.
type Journal struct {
	store   *sqlitejournal.Store
	service *audit.Service
}

func OpenJournal(path string) (*Journal, error) {
	store, err := sqlitejournal.Open(path)
	if err != nil {
		return nil, err
	}
	return &Journal{
		store:   store,
		service: audit.NewService(store, canonicaljson.Canonicalizer{}, ident.NewULIDGenerator(), platform.RealClock{}),
	}, nil
}

// Handler returns an InvalidHandler that records the failure, writes the
// default warning and lets the body through.
func (j *Journal) Handler() InvalidHandler {
	return j.service.Handler()
}

// List returns up to limit reports, newest first.
func (j *Journal) List(ctx context.Context, limit int) ([]Report, error) {
	return j.service.List(ctx, limit)
}

func (j *Journal) Close() error {
	return j.store.Close()
}
