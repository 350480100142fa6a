package model

import (
	"fmt"

	"github.com/mandelsoft/cwm/pkg/assoc"
)

// Namespace is an element owning other elements.
// An element is owned by at most one namespace, so that
// namespaces form a forest.
type Namespace interface {
	Element

	// OwnedElements returns the direct children in link order.
	OwnedElements() []Element
	// AddOwnedElement moves an element into this namespace
	// and returns its previous namespace.
	AddOwnedElement(e Element) (Namespace, error)
	RemoveOwnedElement(e Element) bool
	// OwnedElementNamed returns the first direct child with the given name.
	OwnedElementNamed(name string) Element

	// AllContents returns all direct and indirect children.
	AllContents() []Element
	// AllVisibleElements returns all direct and indirect public children
	// reachable through public namespaces.
	AllVisibleElements() []Element

	namespaceBase() *NamespaceBase
}

// NamespaceBase implements the Namespace part of an element.
type NamespaceBase struct {
	ModelElement
	owned assoc.Slot[Element]
}

func (n *NamespaceBase) namespaceBase() *NamespaceBase {
	return n
}

func (n *NamespaceBase) ns() Namespace {
	return n.self.(Namespace)
}

func (n *NamespaceBase) OwnedElements() []Element {
	return n.owned.List()
}

func (n *NamespaceBase) AddOwnedElement(e Element) (Namespace, error) {
	prev, err := ownership.Link(n.ns(), e)
	return prev.A, err
}

func (n *NamespaceBase) RemoveOwnedElement(e Element) bool {
	return ownership.Unlink(n.ns(), e)
}

func (n *NamespaceBase) OwnedElementNamed(name string) Element {
	for _, e := range n.owned.List() {
		if e.Name() == name {
			return e
		}
	}
	return nil
}

func (n *NamespaceBase) AllContents() []Element {
	return AllContents(n.ns())
}

func (n *NamespaceBase) AllVisibleElements() []Element {
	return AllVisibleElements(n.ns())
}

// checkOwnership rejects namespaces owned directly or
// indirectly by the element to be added, and features
// already owned by a classifier.
func checkOwnership(ns Namespace, e Element) error {
	if f, ok := e.(Feature); ok && f.Owner() != nil {
		return fmt.Errorf("feature %q already owned by %s: %w", f.Name(), f.Owner().QualifiedName(), ErrInvalid)
	}
	for c := Namespace(ns); c != nil; c = c.Namespace() {
		if c.base() == e.base() {
			return assoc.ErrCycle
		}
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////

// Package is a general purpose namespace, which may additionally
// import elements from other namespaces.
type Package struct {
	NamespaceBase
	imported assoc.Slot[Element]
}

var _ Namespace = (*Package)(nil)

// NewPackage creates a package in an optional namespace.
func NewPackage(ns Namespace, name string, vis Visibility) (*Package, error) {
	return newPackage(KindPackage, ns, name, vis)
}

func newPackage(kind string, ns Namespace, name string, vis Visibility) (*Package, error) {
	if err := checkElement(name, vis); err != nil {
		return nil, err
	}
	p := &Package{}
	p.init(p, kind, name, vis)
	if err := place(ns, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ImportedElements returns the elements imported by this package.
func (p *Package) ImportedElements() []Element {
	return p.imported.List()
}

func (p *Package) Import(e Element) error {
	_, err := importedElements.Link(p, e)
	return err
}

func (p *Package) Unimport(e Element) bool {
	return importedElements.Unlink(p, e)
}
