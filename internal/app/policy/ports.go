package policy

import "github.com/osvaldoandrade/mtvalidate/internal/domain"

type Normalizer interface {
	Normalize(body any) (any, error)
}

type Renderer interface {
	Render(data any) (string, error)
}

type Warner interface {
	Warn(message string)
}

type Recorder interface {
	Observe(mediaType string, outcome domain.Outcome)
}

type nopRecorder struct{}

func (nopRecorder) Observe(string, domain.Outcome) {}
