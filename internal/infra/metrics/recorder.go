// Package metrics exports validation outcomes as Prometheus counters.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osvaldoandrade/mtvalidate/internal/domain"
)

const namespace = "mtvalidate"

// Recorder counts validations by media type and outcome.
type Recorder struct {
	validations *prometheus.CounterVec
}

// NewRecorder registers the validation counters with reg. Registering twice
// against the same registry reuses the existing collector.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	validations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validations_total",
		Help:      "Total number of media type validations by outcome",
	}, []string{"media_type", "outcome"})

	if reg != nil {
		if err := reg.Register(validations); err != nil {
			var already prometheus.AlreadyRegisteredError
			if !errors.As(err, &already) {
				return nil, err
			}
			existing, ok := already.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				return nil, err
			}
			validations = existing
		}
	}
	return &Recorder{validations: validations}, nil
}

func (r *Recorder) Observe(mediaType string, outcome domain.Outcome) {
	r.validations.WithLabelValues(mediaType, outcome.String()).Inc()
}
