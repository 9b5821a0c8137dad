package act

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/stateforward/go-act/pkg/set"
)

// Registry allocates action types. Serializable types are unique per
// registry and anonymous types are numbered from a counter that only grows
// until Reset.
type Registry struct {
	types   *set.Set[string]
	counter atomic.Uint64
	logger  *slog.Logger
	trace   Trace
	ctx     context.Context
}

type RegistryOption func(*Registry)

// WithLogger sets the logger used by the registry and its creators.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(registry *Registry) {
		if logger != nil {
			registry.logger = logger
		}
	}
}

// WithTrace installs a trace hook called around every creator Call.
func WithTrace(trace Trace) RegistryOption {
	return func(registry *Registry) {
		registry.trace = trace
	}
}

// WithContext sets the context handed to the trace hook.
func WithContext(ctx context.Context) RegistryOption {
	return func(registry *Registry) {
		if ctx != nil {
			registry.ctx = ctx
		}
	}
}

func NewRegistry(options ...RegistryOption) *Registry {
	registry := &Registry{
		types:  set.New[string](),
		logger: Logger,
		ctx:    context.Background(),
	}
	for _, option := range options {
		option(registry)
	}
	return registry
}

// Named creates a creator described by description. A serializable
// description becomes the type itself and fails with a *DuplicateTypeError if
// it is already registered. Any other description is appended to a numbered
// type, and an empty one behaves like Anonymous.
func (registry *Registry) Named(description string, options ...Option) (*Mutable, error) {
	if !IsSerializable(description) {
		return registry.numbered(description, options), nil
	}
	if !registry.types.Insert(description) {
		err := &DuplicateTypeError{Type: description}
		registry.logger.Error("duplicate action type", "type", description)
		return nil, err
	}
	registry.logger.Debug("registered action type", "type", description)
	return registry.create(description, options), nil
}

// MustNamed is like Named but panics on error.
func (registry *Registry) MustNamed(description string, options ...Option) *Mutable {
	mutable, err := registry.Named(description, options...)
	if err != nil {
		panic(fmt.Errorf("named action creator: %w", err))
	}
	return mutable
}

// Anonymous creates a creator with a numbered type and no description.
func (registry *Registry) Anonymous(options ...Option) *Mutable {
	return registry.numbered("", options)
}

func (registry *Registry) numbered(description string, options []Option) *Mutable {
	typ := fmt.Sprintf("[%d]", registry.counter.Add(1))
	if description != "" {
		typ += " " + description
	}
	return registry.create(typ, options)
}

func (registry *Registry) create(typ string, options []Option) *Mutable {
	config := config{
		payload: identity,
		meta:    undefined,
	}
	for _, option := range options {
		option(&config)
	}
	return &Mutable{
		factory: &factory{
			typ:      typ,
			payload:  config.payload,
			meta:     config.meta,
			registry: registry,
		},
		id: uuid.NewString(),
	}
}

// Has reports whether typ is a registered serializable type.
func (registry *Registry) Has(typ string) bool {
	return registry.types.Contains(typ)
}

// Types returns the registered serializable types in sorted order.
func (registry *Registry) Types() []string {
	return registry.types.Sorted()
}

// Count returns the last number handed out to a numbered type.
func (registry *Registry) Count() uint64 {
	return registry.counter.Load()
}

// Reset forgets every registered type and restarts numbering. Creators made
// before Reset keep their types, which may then collide with new ones.
func (registry *Registry) Reset() {
	registry.types.Clear()
	registry.counter.Store(0)
	registry.logger.Debug("registry reset")
}
