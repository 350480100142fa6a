package factory

import (
	"github.com/mandelsoft/cwm/pkg/registry"
)

// DEFAULT is the key of the reference implementation.
const DEFAULT = "fun"

var factories = registry.New[Cwm]("factory")

// Register registers a factory implementation under a key.
func Register(key string, c func() Cwm) error {
	return factories.Register(key, c)
}

func MustRegister(key string, c func() Cwm) {
	registry.MustRegister(factories, key, c)
}

// Create provides a new factory instance for the given key.
// An empty key selects DEFAULT.
func Create(key string) (Cwm, error) {
	if key == "" {
		key = DEFAULT
	}
	return factories.Create(key)
}

// Keys returns the keys of all registered implementations.
func Keys() []string {
	return factories.Names()
}
