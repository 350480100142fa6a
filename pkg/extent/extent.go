package extent

import (
	"context"
	"slices"
	"sync"

	"github.com/mandelsoft/cwm/pkg/locks"
	"github.com/mandelsoft/cwm/pkg/model"
	"github.com/mandelsoft/cwm/pkg/utils"
)

// Extent is the set of elements created by a factory.
// It indexes elements by id and kind.
//
// The object graph itself is not synchronized. Do serializes
// sequences of mutations performed by several goroutines.
type Extent struct {
	mutation locks.Mutex

	lock     sync.Mutex
	elements []model.Element
	ids      map[string]model.Element
	kinds    map[string][]model.Element
}

func New() *Extent {
	return &Extent{
		ids:   map[string]model.Element{},
		kinds: map[string][]model.Element{},
	}
}

// Do executes a sequence of mutations exclusively.
func (x *Extent) Do(f func() error) error {
	return x.DoContext(context.Background(), f)
}

// DoContext executes a sequence of mutations exclusively. It fails
// without executing f if the context is done before the mutation
// lock could be acquired.
func (x *Extent) DoContext(ctx context.Context, f func() error) error {
	if err := x.mutation.Lock(ctx); err != nil {
		return err
	}
	defer x.mutation.Unlock()
	return f()
}

// Add registers an element. Adding an element twice
// has no effect.
func (x *Extent) Add(e model.Element) {
	if utils.IsNil(e) {
		return
	}
	x.lock.Lock()
	defer x.lock.Unlock()

	if x.ids[e.ID()] != nil {
		return
	}
	x.ids[e.ID()] = e
	x.elements = append(x.elements, e)
	x.kinds[e.Kind()] = append(x.kinds[e.Kind()], e)
	log.Trace("added {{kind}} {{element}}", "kind", e.Kind(), "element", e.Name())
}

// Remove drops an element from the extent.
// The element is not unlinked from its partners.
func (x *Extent) Remove(e model.Element) bool {
	x.lock.Lock()
	defer x.lock.Unlock()

	if x.ids[e.ID()] == nil {
		return false
	}
	delete(x.ids, e.ID())
	x.elements = slices.DeleteFunc(x.elements, func(o model.Element) bool { return o == e })
	x.kinds[e.Kind()] = slices.DeleteFunc(x.kinds[e.Kind()], func(o model.Element) bool { return o == e })
	if len(x.kinds[e.Kind()]) == 0 {
		delete(x.kinds, e.Kind())
	}
	return true
}

// Lookup returns the element with the given id or nil.
func (x *Extent) Lookup(id string) model.Element {
	x.lock.Lock()
	defer x.lock.Unlock()
	return x.ids[id]
}

// Elements returns all elements in creation order.
func (x *Extent) Elements() []model.Element {
	x.lock.Lock()
	defer x.lock.Unlock()
	return slices.Clone(x.elements)
}

// ElementsOfKind returns all elements of a metaclass in creation order.
func (x *Extent) ElementsOfKind(kind string) []model.Element {
	x.lock.Lock()
	defer x.lock.Unlock()
	return slices.Clone(x.kinds[kind])
}

// Kinds returns the metaclasses of all elements.
func (x *Extent) Kinds() []string {
	x.lock.Lock()
	defer x.lock.Unlock()
	return utils.OrderedMapKeys(x.kinds)
}

func (x *Extent) Len() int {
	x.lock.Lock()
	defer x.lock.Unlock()
	return len(x.elements)
}

// Roots returns all elements without a container.
func (x *Extent) Roots() []model.Element {
	return utils.FilterSlice(x.Elements(), func(e model.Element) bool { return e.Container() == nil })
}

// Of returns all elements of type T.
func Of[T model.Element](x *Extent) []T {
	return utils.CastSlice[T](x.Elements())
}
