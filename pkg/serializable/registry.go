package serializable

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// Descriptor describes how to build one registered type.
type Descriptor struct {
	Name        string
	Module      string
	Description string
	New         func() Type
}

// Key returns the registry key for the descriptor.
func (d Descriptor) Key() Key {
	return Key{Name: d.Name, Module: d.Module}
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Registry stores descriptors by key and rejects duplicates. It is safe for
// concurrent use.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[Key]Descriptor
	logger      *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	reg := &Registry{
		descriptors: make(map[Key]Descriptor),
		logger:      slog.New(discardHandler{}),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(reg)
	}
	return reg
}

// Register adds desc. The constructor must produce a value reporting the same
// key as the descriptor.
func (r *Registry) Register(desc Descriptor) error {
	if r == nil {
		return fmt.Errorf("serializable: registry is nil")
	}
	key := desc.Key()
	if err := key.validate(); err != nil {
		return err
	}
	if desc.New == nil {
		return fmt.Errorf("serializable: constructor is required for %s", key)
	}
	if got := KeyOf(desc.New()); got != key {
		return fmt.Errorf("serializable: constructor for %s builds %s", key, got)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.descriptors[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, key)
	}
	r.descriptors[key] = desc
	r.logger.Debug("Registered serializable type.", "type", key.Qualified())
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(desc Descriptor) {
	if err := r.Register(desc); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor stored under key.
func (r *Registry) Lookup(key Key) (Descriptor, error) {
	if r == nil {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	desc, ok := r.descriptors[key]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return desc, nil
}

// LookupQualified resolves a "<module>.<name>" string.
func (r *Registry) LookupQualified(qualified string) (Descriptor, error) {
	key, err := ParseQualified(qualified)
	if err != nil {
		return Descriptor{}, err
	}
	return r.Lookup(key)
}

// Has reports whether key is registered.
func (r *Registry) Has(key Key) bool {
	_, err := r.Lookup(key)
	return err == nil
}

// New instantiates the type registered under key.
func (r *Registry) New(key Key) (Type, error) {
	desc, err := r.Lookup(key)
	if err != nil {
		return nil, err
	}
	return desc.New(), nil
}

// Keys returns the registered keys sorted by qualified name.
func (r *Registry) Keys() []Key {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	keys := make([]Key, 0, len(r.descriptors))
	for key := range r.descriptors {
		keys = append(keys, key)
	}
	r.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Qualified() < keys[j].Qualified()
	})
	return keys
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.descriptors)
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool { return false }

func (discardHandler) Handle(context.Context, slog.Record) error { return nil }

func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler { return d }

func (d discardHandler) WithGroup(string) slog.Handler { return d }
