package validation

import (
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osvaldoandrade/mtvalidate/internal/app/policy"
	"github.com/osvaldoandrade/mtvalidate/internal/domain"
)

type (
	// MediaType is anything that can report its format suffix and check
	// plain JSON data against its schema.
	MediaType = domain.MediaType
	// Identifier is a parsed media type string.
	Identifier = domain.Identifier
	// Config selects strict or lenient behavior. The zero value is lenient
	// with the default warning.
	Config = policy.Config
	// InvalidHandler replaces the default warning in lenient mode. Its
	// return values become the result of Validate.
	InvalidHandler = policy.InvalidHandler
	// Helpers gives an InvalidHandler access to logging, warnings and
	// escalation.
	Helpers = policy.Helpers
	// Mode is the textual form of Config.RaiseOnInvalid.
	Mode = domain.ValidationMode
)

const (
	ModeLenient = domain.ValidationModeLenient
	ModeStrict  = domain.ValidationModeStrict
)

func ParseIdentifier(value string) (Identifier, error) {
	return domain.ParseIdentifier(value)
}

func ParseMode(value string) (Mode, error) {
	return domain.ParseValidationMode(value)
}

type options struct {
	cfg        Config
	mode       string
	warnings   io.Writer
	logger     *slog.Logger
	registerer prometheus.Registerer
}

type Option func(*options)

// WithConfig sets the initial configuration of a new Validator.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithMode sets RaiseOnInvalid from a textual mode ("lenient" or "strict").
// It is applied after WithConfig; New fails on an unknown mode.
func WithMode(value string) Option {
	return func(o *options) {
		o.mode = value
	}
}

// WithWarningWriter redirects the default warning. It defaults to os.Stderr.
func WithWarningWriter(w io.Writer) Option {
	return func(o *options) {
		o.warnings = w
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics registers validation counters with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}
