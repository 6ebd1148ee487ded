package validation

import (
	"context"

	"github.com/osvaldoandrade/mtvalidate/internal/app/policy"
	"github.com/osvaldoandrade/mtvalidate/internal/infra/canonicaljson"
	"github.com/osvaldoandrade/mtvalidate/internal/infra/metrics"
	"github.com/osvaldoandrade/mtvalidate/internal/platform"
)

// Validator checks payloads against media type schemas under its own
// configuration.
type Validator struct {
	service *policy.Service
}

func New(opts ...Option) (*Validator, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.mode != "" {
		mode, err := ParseMode(o.mode)
		if err != nil {
			return nil, err
		}
		o.cfg.RaiseOnInvalid = mode.RaiseOnInvalid()
	}

	var recorder policy.Recorder
	if o.registerer != nil {
		r, err := metrics.NewRecorder(o.registerer)
		if err != nil {
			return nil, err
		}
		recorder = r
	}

	service := policy.NewService(
		policy.NewConfigStore(o.cfg),
		canonicaljson.Normalizer{},
		canonicaljson.Canonicalizer{},
		platform.NewWriterWarner(o.warnings),
		recorder,
		o.logger,
	)
	return &Validator{service: service}, nil
}

// Validate returns body unchanged when it conforms to mediaType's schema or
// when mediaType is not a JSON format. A mismatch is returned as *SchemaError
// in strict mode; in lenient mode it is passed to the InvalidHandler or
// written as a warning. Serialization failures are always returned.
func (v *Validator) Validate(ctx context.Context, body any, mediaType MediaType) (any, error) {
	return v.service.Validate(ctx, body, mediaType)
}

// Check reports the failure, if any, without applying the configured policy.
func (v *Validator) Check(ctx context.Context, body any, mediaType MediaType) error {
	return v.service.Check(ctx, body, mediaType)
}

// Configure mutates the configuration. Both fields change together.
func (v *Validator) Configure(fn func(*Config)) {
	v.service.Configs().Configure(fn)
}

func (v *Validator) Config() Config {
	return v.service.Configs().Snapshot()
}

func (v *Validator) Reset() {
	v.service.Configs().Reset()
}

var defaultValidator = mustNew()

func mustNew() *Validator {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
}

// Default returns the process-wide validator used by the package-level
// functions.
func Default() *Validator {
	return defaultValidator
}

// Configure mutates the process-wide configuration. Call it once at startup,
// before traffic begins.
func Configure(fn func(*Config)) {
	defaultValidator.Configure(fn)
}

func CurrentConfig() Config {
	return defaultValidator.Config()
}

// Reset restores the process-wide configuration to its defaults.
func Reset() {
	defaultValidator.Reset()
}

func Validate(ctx context.Context, body any, mediaType MediaType) (any, error) {
	return defaultValidator.Validate(ctx, body, mediaType)
}

func Check(ctx context.Context, body any, mediaType MediaType) error {
	return defaultValidator.Check(ctx, body, mediaType)
}
