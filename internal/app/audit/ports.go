package audit

import (
	"context"
	"time"

	"github.com/osvaldoandrade/mtvalidate/internal/domain"
)

type Store interface {
	Record(ctx context.Context, report domain.Report) error
	List(ctx context.Context, limit int) ([]domain.Report, error)
}

type Renderer interface {
	Render(data any) (string, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewIDAt(at time.Time) (string, error)
}
