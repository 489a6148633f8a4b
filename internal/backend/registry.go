package backend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/morristai/iceberg-mcp/internal/catalog"
	"github.com/morristai/iceberg-mcp/internal/config"
	"github.com/morristai/iceberg-mcp/pkg/logging"
)

// ErrUnknownType is returned when no factory is registered for the
// configured catalog type.
var ErrUnknownType = errors.New("unknown catalog type")

// Factory builds a catalog from configuration. Factories may perform network
// I/O (the REST catalog fetches its server config) and must honor ctx.
type Factory func(ctx context.Context, cfg config.Config) (catalog.Catalog, error)

// Registry maps catalog types to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[catalog.Type]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[catalog.Type]Factory),
	}
}

// NewDefaultRegistry creates a registry with the REST, Glue and Hive
// factories registered.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.RegisterFactory(catalog.TypeREST, NewREST)
	r.RegisterFactory(catalog.TypeGlue, NewGlue)
	r.RegisterFactory(catalog.TypeHive, NewHive)
	return r
}

// RegisterFactory registers a factory for a catalog type, replacing any
// previous one.
func (r *Registry) RegisterFactory(t catalog.Type, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t == "" || factory == nil {
		return
	}
	r.factories[t] = factory
}

// Types returns the registered types sorted for deterministic output.
func (r *Registry) Types() []catalog.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]catalog.Type, 0, len(r.factories))
	for t := range r.factories {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Open builds the catalog selected by cfg.Catalog.Kind.
func (r *Registry) Open(ctx context.Context, cfg config.Config) (catalog.Catalog, error) {
	r.mu.RLock()
	factory, ok := r.factories[cfg.Catalog.Kind]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, cfg.Catalog.Kind)
	}

	logging.Info("Backend", "Opening %s catalog %q", cfg.Catalog.Kind, cfg.Catalog.Name)
	cat, err := factory(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s catalog: %w", cfg.Catalog.Kind, err)
	}
	logging.Debug("Backend", "Catalog %q ready (full partition history: %t)", cfg.Catalog.Name, cat.SupportsFullPartitionHistory())
	return cat, nil
}
