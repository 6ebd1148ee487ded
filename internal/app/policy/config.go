package policy

import (
	"sync"

	"github.com/osvaldoandrade/mtvalidate/internal/domain"
)

// InvalidHandler decides what a lenient validation returns when the body does
// not match its schema. A non-nil error is returned to the caller as is.
type InvalidHandler func(mediaType domain.MediaType, err *domain.SchemaError, body any, helpers Helpers) (any, error)

type Config struct {
	RaiseOnInvalid bool
	InvalidHandler InvalidHandler
}

func (c Config) Mode() domain.ValidationMode {
	return domain.ValidationModeFor(c.RaiseOnInvalid)
}

// ConfigStore holds the policy configuration shared by every validation that
// runs against it. Configure applies a mutation under a single write lock.
type ConfigStore struct {
	mu  sync.RWMutex
	cfg Config
}

func NewConfigStore(cfg Config) *ConfigStore {
	return &ConfigStore{cfg: cfg}
}

func (s *ConfigStore) Configure(fn func(*Config)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.cfg)
}

func (s *ConfigStore) Snapshot() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

func (s *ConfigStore) Reset() {
	s.mu.Lock()
	s.cfg = Config{}
	s.mu.Unlock()
}
