package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"

	"github.com/osvaldoandrade/mtvalidate/internal/domain"
)

func TestRecorderCountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder, err := NewRecorder(reg)
	if err != nil {
		t.Fatalf("NewRecorder returned error: %v", err)
	}

	recorder.Observe("application/vnd.q+json", domain.OutcomeValid)
	recorder.Observe("application/vnd.q+json", domain.OutcomeInvalid)
	recorder.Observe("application/vnd.q+json", domain.OutcomeInvalid)

	invalid := testutil.ToFloat64(recorder.validations.WithLabelValues("application/vnd.q+json", "invalid"))
	if invalid != 2 {
		t.Fatalf("expected 2 invalid validations, got %v", invalid)
	}
	count, err := testutil.GatherAndCount(reg, "mtvalidate_validations_total")
	if err != nil {
		t.Fatalf("GatherAndCount returned error: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 series, got %d", count)
	}
}

func TestRecorderReusesRegisteredCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewRecorder(reg)
	if err != nil {
		t.Fatalf("NewRecorder returned error: %v", err)
	}
	second, err := NewRecorder(reg)
	if err != nil {
		t.Fatalf("second NewRecorder returned error: %v", err)
	}

	first.Observe("application/vnd.q+json", domain.OutcomeSkipped)
	second.Observe("application/vnd.q+json", domain.OutcomeSkipped)

	got := testutil.ToFloat64(first.validations.WithLabelValues("application/vnd.q+json", "skipped"))
	if got != 2 {
		t.Fatalf("expected shared counter value 2, got %v", got)
	}
}

func TestRecorderWithoutRegistry(t *testing.T) {
	recorder, err := NewRecorder(nil)
	if err != nil {
		t.Fatalf("NewRecorder returned error: %v", err)
	}
	recorder.Observe("text/plain", domain.OutcomeSkipped)
}

func TestRecorderLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	recorder, err := NewRecorder(reg)
	if err != nil {
		t.Fatalf("NewRecorder returned error: %v", err)
	}
	recorder.Observe("application/vnd.q+json", domain.OutcomeError)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather returned error: %v", err)
	}
	if len(families) != 1 {
		t.Fatalf("expected 1 metric family, got %d", len(families))
	}
	family := families[0]
	if family.GetType() != dto.MetricType_COUNTER {
		t.Fatalf("expected counter, got %v", family.GetType())
	}
	labels := labelMap(family.GetMetric()[0].GetLabel())
	if labels["media_type"] != "application/vnd.q+json" || labels["outcome"] != "error" {
		t.Fatalf("unexpected labels: %v", labels)
	}
}

func labelMap(pairs []*dto.LabelPair) map[string]string {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		out[pair.GetName()] = pair.GetValue()
	}
	return out
}
