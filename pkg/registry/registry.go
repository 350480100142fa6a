package registry

import (
	"fmt"
	"sync"

	"github.com/mandelsoft/cwm/pkg/utils"
)

// Constructor creates a new instance of a registered implementation.
type Constructor[T any] func() T

// Names is the read part of a Registry.
type Names interface {
	Names() []string
	Has(name string) bool
}

// Registry maps names to constructors of implementations of T.
// It replaces dynamic loading of implementations by an explicit
// registration, typically done in an init function.
type Registry[T any] interface {
	Names

	Register(name string, c Constructor[T]) error
	Create(name string) (T, error)
}

type registry[T any] struct {
	lock  sync.Mutex
	kind  string
	types map[string]Constructor[T]
}

var _ Registry[any] = (*registry[any])(nil)

// New creates a registry for the given kind of implementations.
// The kind is used in error messages.
func New[T any](kind string) Registry[T] {
	return &registry[T]{kind: kind, types: map[string]Constructor[T]{}}
}

func (r *registry[T]) Register(name string, c Constructor[T]) error {
	if name == "" {
		return fmt.Errorf("%s name required", r.kind)
	}
	if c == nil {
		return fmt.Errorf("constructor for %s %q required", r.kind, name)
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if r.types[name] != nil {
		return fmt.Errorf("%s %q already registered", r.kind, name)
	}
	r.types[name] = c
	log.Debug("registered {{kind}} {{name}}", "kind", r.kind, "name", name)
	return nil
}

func (r *registry[T]) Has(name string) bool {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.types[name] != nil
}

func (r *registry[T]) Create(name string) (T, error) {
	var _nil T

	r.lock.Lock()
	c := r.types[name]
	r.lock.Unlock()

	if c == nil {
		return _nil, fmt.Errorf("unknown %s %q", r.kind, name)
	}
	return c(), nil
}

func (r *registry[T]) Names() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	return utils.OrderedMapKeys(r.types)
}

// MustRegister registers a constructor and panics on errors.
func MustRegister[T any](r Registry[T], name string, c Constructor[T]) {
	err := r.Register(name, c)
	if err != nil {
		panic(err)
	}
}
