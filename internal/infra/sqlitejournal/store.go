package sqlitejournal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/osvaldoandrade/mtvalidate/internal/domain"
)

const defaultListLimit = 50

type Store struct {
	db *sql.DB
}

type OpenOptions struct {
	Fast bool
}

// Open opens the journal in WAL mode, the setting used for embedded
// journals.
func Open(path string) (*Store, error) {
	return OpenWithOptions(path, OpenOptions{Fast: true})
}

func OpenWithOptions(path string, opts OpenOptions) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path required")
	}

	if shouldCreateDir(path) {
		dir := filepath.Dir(path)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	store := &Store{db: db}
	if err := store.applyPragmas(context.Background(), opts); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Record(ctx context.Context, report domain.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO validation_reports (id, media_type, outcome, description, body, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, report.ID, report.MediaType, report.Outcome.String(), report.Description, report.Body, report.RecordedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("record report %s: %w", report.ID, err)
	}
	return nil
}

// List returns the most recent reports first.
func (s *Store) List(ctx context.Context, limit int) ([]domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, media_type, outcome, description, body, recorded_at
		FROM validation_reports
		ORDER BY recorded_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var reports []domain.Report
	for rows.Next() {
		var report domain.Report
		var outcome string
		var recordedAt int64
		if err := rows.Scan(&report.ID, &report.MediaType, &outcome, &report.Description, &report.Body, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		report.Outcome = domain.ParseOutcome(outcome)
		report.RecordedAt = time.Unix(0, recordedAt).UTC()
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}
	return reports, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS validation_reports (
			id TEXT PRIMARY KEY,
			media_type TEXT NOT NULL,
			outcome TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			body BLOB,
			recorded_at INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("create validation_reports: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS validation_reports_media_type
		ON validation_reports (media_type, recorded_at)
	`); err != nil {
		return fmt.Errorf("create validation_reports index: %w", err)
	}
	return nil
}

func (s *Store) applyPragmas(ctx context.Context, opts OpenOptions) error {
	if !opts.Fast {
		return nil
	}
	var mode string
	if err := s.db.QueryRowContext(ctx, "PRAGMA journal_mode = WAL").Scan(&mode); err != nil {
		return fmt.Errorf("set journal_mode: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, "PRAGMA synchronous = NORMAL"); err != nil {
		return fmt.Errorf("set synchronous: %w", err)
	}
	return nil
}

func shouldCreateDir(path string) bool {
	if path == ":memory:" {
		return false
	}
	if strings.HasPrefix(path, "file:") {
		return false
	}
	return true
}
