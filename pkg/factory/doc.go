// Package factory provides the entry points for creating warehouse
// metamodel elements and a registry of implementations.
//
// An implementation registers itself under a key, usually in an init
// function of its package. A program selects the implementation by
// importing the package and calling Create with the key, for example
//
//	import _ "github.com/mandelsoft/cwm/pkg/factory/fun"
//
//	cwm, err := factory.Create(factory.DEFAULT)
package factory
