package model

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mandelsoft/cwm/pkg/assoc"
	"github.com/mandelsoft/cwm/pkg/utils"
)

// Element is the common interface of all model elements.
type Element interface {
	// ID is a unique identity assigned on creation.
	ID() string
	// Kind is the name of the metaclass of the element.
	Kind() string

	Name() string
	SetName(name string) (string, error)
	Visibility() Visibility
	SetVisibility(v Visibility) (Visibility, error)

	// Namespace is the owning namespace, or nil.
	Namespace() Namespace
	// SetNamespace moves the element to another namespace and
	// returns the previous one. A nil namespace removes the element
	// from its namespace.
	SetNamespace(ns Namespace) (Namespace, error)
	// Container is the composite owner of the element used to
	// build qualified names. For most elements this is the namespace.
	Container() Element

	// QualifiedName joins the names of all containers and the
	// element name with DefaultSeparator.
	QualifiedName() string
	QualifiedNameWith(sep, surround string) string

	TaggedValue(tag string) (string, bool)
	// SetTaggedValue sets a tagged value and returns the previous value.
	// An empty value removes the tag.
	SetTaggedValue(tag, value string) string
	// Tags returns the sorted list of tags.
	Tags() []string

	Constraints() []*Constraint
	AddConstraint(c *Constraint) error
	RemoveConstraint(c *Constraint) bool

	ClientDependencies() []*Dependency
	SupplierDependencies() []*Dependency
	// Suppliers returns the direct suppliers of all client dependencies.
	Suppliers() []Element
	// AllSuppliers returns the transitive closure of Suppliers.
	AllSuppliers() []Element

	Importers() []*Package

	String() string

	base() *ModelElement
}

// ModelElement implements the common part of all elements.
// It is embedded by all element types.
type ModelElement struct {
	self       Element
	id         string
	kind       string
	name       string
	visibility Visibility
	tags       map[string]string

	namespace    assoc.Slot[Namespace]
	constraints  assoc.Slot[*Constraint]
	clientDeps   assoc.Slot[*Dependency]
	supplierDeps assoc.Slot[*Dependency]
	importers    assoc.Slot[*Package]
}

var _ Element = (*ModelElement)(nil)

func (e *ModelElement) init(self Element, kind, name string, vis Visibility) {
	e.self = self
	e.id = uuid.NewString()
	e.kind = kind
	e.name = name
	e.visibility = vis
}

// checkElement validates the mandatory properties of all elements.
func checkElement(name string, vis Visibility) error {
	if name == "" {
		return assoc.Required("name")
	}
	if vis == "" {
		return assoc.Required("visibility")
	}
	if !vis.IsValid() {
		return invalid("visibility", vis)
	}
	return nil
}

// place adds a new element to an optional namespace.
func place(ns Namespace, e Element) error {
	if utils.IsNil(ns) {
		return nil
	}
	_, err := ownership.Link(ns, e)
	return err
}

func (e *ModelElement) base() *ModelElement {
	return e
}

func (e *ModelElement) ID() string {
	return e.id
}

func (e *ModelElement) Kind() string {
	return e.kind
}

func (e *ModelElement) Name() string {
	return e.name
}

func (e *ModelElement) SetName(name string) (string, error) {
	if name == "" {
		return e.name, assoc.Required("name")
	}
	old := e.name
	e.name = name
	return old, nil
}

func (e *ModelElement) Visibility() Visibility {
	return e.visibility
}

func (e *ModelElement) SetVisibility(v Visibility) (Visibility, error) {
	if v == "" {
		return e.visibility, assoc.Required("visibility")
	}
	if !v.IsValid() {
		return e.visibility, invalid("visibility", v)
	}
	old := e.visibility
	e.visibility = v
	return old, nil
}

func (e *ModelElement) Namespace() Namespace {
	return e.namespace.First()
}

func (e *ModelElement) SetNamespace(ns Namespace) (Namespace, error) {
	return ownership.Inverted().Set(e.self, ns)
}

func (e *ModelElement) Container() Element {
	ns := e.namespace.First()
	if ns == nil {
		return nil
	}
	return ns
}

func (e *ModelElement) QualifiedName() string {
	return e.QualifiedNameWith(DefaultSeparator, "")
}

func (e *ModelElement) QualifiedNameWith(sep, surround string) string {
	return JoinQualifiedName(qualifiedPath(e.self), sep, surround)
}

// qualifiedPath returns the names of all containers and the element,
// outermost first.
func qualifiedPath(e Element) []string {
	var names []string
	for c := e; c != nil; c = c.Container() {
		names = append([]string{c.Name()}, names...)
	}
	return names
}

func (e *ModelElement) TaggedValue(tag string) (string, bool) {
	v, ok := e.tags[tag]
	return v, ok
}

func (e *ModelElement) SetTaggedValue(tag, value string) string {
	old := e.tags[tag]
	if value == "" {
		delete(e.tags, tag)
		return old
	}
	if e.tags == nil {
		e.tags = map[string]string{}
	}
	e.tags[tag] = value
	return old
}

func (e *ModelElement) Tags() []string {
	return utils.OrderedMapKeys(e.tags)
}

func (e *ModelElement) Constraints() []*Constraint {
	return e.constraints.List()
}

func (e *ModelElement) AddConstraint(c *Constraint) error {
	_, err := constrainedElements.Inverted().Link(e.self, c)
	return err
}

func (e *ModelElement) RemoveConstraint(c *Constraint) bool {
	return constrainedElements.Inverted().Unlink(e.self, c)
}

func (e *ModelElement) ClientDependencies() []*Dependency {
	return e.clientDeps.List()
}

func (e *ModelElement) SupplierDependencies() []*Dependency {
	return e.supplierDeps.List()
}

func (e *ModelElement) Suppliers() []Element {
	return Suppliers(e.self)
}

func (e *ModelElement) AllSuppliers() []Element {
	return AllSuppliers(e.self)
}

func (e *ModelElement) Importers() []*Package {
	return e.importers.List()
}

func (e *ModelElement) String() string {
	if e.self == nil {
		return fmt.Sprintf("%s %s", e.kind, e.name)
	}
	return e.self.QualifiedName()
}
