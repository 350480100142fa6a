package model

import (
	"github.com/mandelsoft/cwm/pkg/assoc"
	"github.com/mandelsoft/cwm/pkg/utils"
)

// Well-known dependency kinds.
const (
	DependencyUsage       = "usage"
	DependencyAbstraction = "abstraction"
	DependencyTrace       = "trace"
	DependencyRefinement  = "refinement"
)

// Dependency states that its clients require its suppliers.
// A dependency always has at least one client and one supplier.
type Dependency struct {
	ModelElement
	dependencyKind string

	clients   assoc.Slot[Element]
	suppliers assoc.Slot[Element]
}

var _ Element = (*Dependency)(nil)

// NewDependency creates a dependency in an optional namespace
// between the given clients and suppliers.
func NewDependency(ns Namespace, name string, vis Visibility, kind string, clients []Element, suppliers []Element) (*Dependency, error) {
	if err := checkElement(name, vis); err != nil {
		return nil, err
	}
	if len(clients) == 0 {
		return nil, assoc.Required("client")
	}
	if len(suppliers) == 0 {
		return nil, assoc.Required("supplier")
	}
	for _, e := range clients {
		if utils.IsNil(e) {
			return nil, assoc.Required("client")
		}
	}
	for _, e := range suppliers {
		if utils.IsNil(e) {
			return nil, assoc.Required("supplier")
		}
	}

	d := &Dependency{dependencyKind: kind}
	d.init(d, KindDependency, name, vis)
	for _, e := range clients {
		dependencyClients.Link(d, e)
	}
	for _, e := range suppliers {
		dependencySuppliers.Link(d, e)
	}
	if err := place(ns, d); err != nil {
		d.Discard()
		return nil, err
	}
	return d, nil
}

// DependencyKind is the kind of the dependency, for example "usage".
func (d *Dependency) DependencyKind() string {
	return d.dependencyKind
}

func (d *Dependency) SetDependencyKind(k string) string {
	old := d.dependencyKind
	d.dependencyKind = k
	return old
}

func (d *Dependency) ClientElements() []Element {
	return d.clients.List()
}

func (d *Dependency) SupplierElements() []Element {
	return d.suppliers.List()
}

func (d *Dependency) AddClient(e Element) error {
	_, err := dependencyClients.Link(d, e)
	return err
}

// RemoveClient removes a client. The last client cannot be removed.
func (d *Dependency) RemoveClient(e Element) bool {
	return dependencyClients.Unlink(d, e)
}

func (d *Dependency) AddSupplier(e Element) error {
	_, err := dependencySuppliers.Link(d, e)
	return err
}

// RemoveSupplier removes a supplier. The last supplier cannot be removed.
func (d *Dependency) RemoveSupplier(e Element) bool {
	return dependencySuppliers.Unlink(d, e)
}

// Discard removes the dependency from all its clients, suppliers
// and its namespace.
func (d *Dependency) Discard() {
	dependencyClients.Clear(d)
	dependencySuppliers.Clear(d)
	d.SetNamespace(nil)
}
