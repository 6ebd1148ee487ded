package sqlitejournal

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/osvaldoandrade/mtvalidate/internal/domain"
)

func TestRecordAndList(t *testing.T) {
	store, err := OpenWithOptions(filepath.Join(t.TempDir(), "nested", "journal.db"), OpenOptions{Fast: true})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer func() {
		_ = store.Close()
	}()

	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"01A", "01B", "01C"} {
		err := store.Record(ctx, domain.Report{
			ID:          id,
			MediaType:   "application/vnd.mydomain.query.v2+json",
			Outcome:     domain.OutcomeInvalid,
			Description: "missing properties: 'answer'",
			Body:        []byte(`{"query":{}}`),
			RecordedAt:  base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatalf("Record returned error: %v", err)
		}
	}

	reports, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if reports[0].ID != "01C" || reports[1].ID != "01B" {
		t.Fatalf("expected newest first, got %s, %s", reports[0].ID, reports[1].ID)
	}
	if reports[0].Outcome != domain.OutcomeInvalid {
		t.Fatalf("expected invalid outcome, got %v", reports[0].Outcome)
	}
	if string(reports[0].Body) != `{"query":{}}` {
		t.Fatalf("unexpected body %s", reports[0].Body)
	}
	if !reports[0].RecordedAt.Equal(base.Add(2 * time.Second)) {
		t.Fatalf("unexpected timestamp %v", reports[0].RecordedAt)
	}
}

func TestRecordRejectsDuplicateID(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer func() {
		_ = store.Close()
	}()

	report := domain.Report{ID: "01A", MediaType: "application/x+json", Outcome: domain.OutcomeInvalid, RecordedAt: time.Now()}
	if err := store.Record(context.Background(), report); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if err := store.Record(context.Background(), report); err == nil {
		t.Fatalf("expected duplicate id to fail")
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(" "); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestOpenUsesWAL(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer func() {
		_ = store.Close()
	}()

	var mode string
	if err := store.db.QueryRowContext(context.Background(), "PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("query journal_mode: %v", err)
	}
	if !strings.EqualFold(mode, "wal") {
		t.Fatalf("expected wal journal mode, got %q", mode)
	}
}
