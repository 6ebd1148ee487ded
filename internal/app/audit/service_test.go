package audit

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/osvaldoandrade/mtvalidate/internal/app/policy"
	"github.com/osvaldoandrade/mtvalidate/internal/domain"
)

type fakeStore struct {
	reports []domain.Report
	err     error
}

func (f *fakeStore) Record(ctx context.Context, report domain.Report) error {
	if f.err != nil {
		return f.err
	}
	f.reports = append(f.reports, report)
	return nil
}

func (f *fakeStore) List(ctx context.Context, limit int) ([]domain.Report, error) {
	return f.reports, f.err
}

type fakeRenderer struct {
	out string
	err error
}

func (f fakeRenderer) Render(data any) (string, error) {
	return f.out, f.err
}

type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time {
	return f.now
}

type fakeIDGen struct {
	id  string
	err error
	at  time.Time
}

func (f *fakeIDGen) NewIDAt(at time.Time) (string, error) {
	f.at = at
	return f.id, f.err
}

type fakeMediaType struct{}

func (fakeMediaType) Suffix() string          { return "json" }
func (fakeMediaType) Validate(data any) error { return errors.New("missing properties: 'answer'") }
func (fakeMediaType) String() string          { return "application/vnd.mydomain.query.v2+json" }

type fakeNormalizer struct{}

func (fakeNormalizer) Normalize(body any) (any, error) { return body, nil }

type fakeWarner struct {
	messages []string
}

func (f *fakeWarner) Warn(message string) {
	f.messages = append(f.messages, message)
}

func TestRecordBuildsReport(t *testing.T) {
	store := &fakeStore{}
	now := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	idGen := &fakeIDGen{id: "01HX"}
	service := NewService(store, fakeRenderer{out: `{"query":{}}`}, idGen, fakeClock{now: now})

	schemaErr := domain.NewSchemaError(fakeMediaType{}, errors.New("missing properties: 'answer'"))
	report, err := service.Record(context.Background(), schemaErr, map[string]any{"query": map[string]any{}})
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}

	want := domain.Report{
		ID:          "01HX",
		MediaType:   "application/vnd.mydomain.query.v2+json",
		Outcome:     domain.OutcomeInvalid,
		Description: "missing properties: 'answer'",
		Body:        []byte(`{"query":{}}`),
		RecordedAt:  now,
	}
	if !reflect.DeepEqual(report, want) {
		t.Fatalf("expected %+v, got %+v", want, report)
	}
	if !idGen.at.Equal(now) {
		t.Fatalf("expected id timestamp %v, got %v", now, idGen.at)
	}
	if len(store.reports) != 1 {
		t.Fatalf("expected report to be stored")
	}
}

func TestRecordSurfacesErrors(t *testing.T) {
	schemaErr := domain.NewSchemaError(fakeMediaType{}, errors.New("bad"))

	idErr := errors.New("entropy")
	service := NewService(&fakeStore{}, fakeRenderer{}, &fakeIDGen{err: idErr}, fakeClock{})
	if _, err := service.Record(context.Background(), schemaErr, nil); !errors.Is(err, idErr) {
		t.Fatalf("expected id error, got %v", err)
	}

	storeErr := errors.New("disk full")
	service = NewService(&fakeStore{err: storeErr}, fakeRenderer{}, &fakeIDGen{id: "x"}, fakeClock{})
	if _, err := service.Record(context.Background(), schemaErr, nil); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestHandlerRecordsAndWarns(t *testing.T) {
	store := &fakeStore{}
	journal := NewService(store, fakeRenderer{out: `{}`}, &fakeIDGen{id: "01HX"}, fakeClock{now: time.Now()})
	warner := &fakeWarner{}
	validator := policy.NewService(
		policy.NewConfigStore(policy.Config{InvalidHandler: journal.Handler()}),
		fakeNormalizer{},
		fakeRenderer{out: `{}`},
		warner,
		nil,
		nil,
	)

	body := map[string]any{}
	got, err := validator.Validate(context.Background(), body, fakeMediaType{})
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if !reflect.DeepEqual(got, body) {
		t.Fatalf("expected body to pass through")
	}
	if len(store.reports) != 1 {
		t.Fatalf("expected one journal entry, got %d", len(store.reports))
	}
	if len(warner.messages) != 1 || !strings.Contains(warner.messages[0], "missing properties") {
		t.Fatalf("expected default warning, got %v", warner.messages)
	}
}

func TestHandlerKeepsGoingWhenJournalFails(t *testing.T) {
	journal := NewService(&fakeStore{err: errors.New("locked")}, fakeRenderer{out: `{}`}, &fakeIDGen{id: "01HX"}, fakeClock{})
	warner := &fakeWarner{}
	validator := policy.NewService(
		policy.NewConfigStore(policy.Config{InvalidHandler: journal.Handler()}),
		fakeNormalizer{},
		fakeRenderer{out: `{}`},
		warner,
		nil,
		nil,
	)

	if _, err := validator.Validate(context.Background(), map[string]any{}, fakeMediaType{}); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if len(warner.messages) != 1 {
		t.Fatalf("expected default warning even when journal fails")
	}
}
