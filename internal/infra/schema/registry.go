package schema

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/osvaldoandrade/mtvalidate/internal/domain"
)

var ErrMediaTypeNotFound = errors.New("media type not registered")
var ErrDuplicateMediaType = errors.New("media type already registered")

// Registry maps media type identifiers to compiled schemas.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*MediaType
}

func NewRegistry() *Registry {
	return &Registry{types: make(map[string]*MediaType)}
}

func (r *Registry) Register(mediaType *MediaType) error {
	key := mediaType.Identifier().Key()

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.types[key]; ok && existing.Fingerprint() != mediaType.Fingerprint() {
		return fmt.Errorf("%w: %s", ErrDuplicateMediaType, key)
	}
	r.types[key] = mediaType
	return nil
}

func (r *Registry) Lookup(identifier string) (*MediaType, error) {
	id, err := domain.ParseIdentifier(identifier)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	mediaType, ok := r.types[id.Key()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMediaTypeNotFound, id.Key())
	}
	return mediaType, nil
}

// List returns registered media types ordered by identifier.
func (r *Registry) List() []*MediaType {
	r.mu.RLock()
	out := make([]*MediaType, 0, len(r.types))
	for _, mediaType := range r.types {
		out = append(out, mediaType)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}
