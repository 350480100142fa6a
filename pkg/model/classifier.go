package model

import (
	"fmt"

	"github.com/mandelsoft/cwm/pkg/assoc"
	"github.com/mandelsoft/cwm/pkg/utils"
)

// Classifier is a namespace describing the structure and behavior
// of its instances by an ordered list of features.
type Classifier interface {
	Namespace

	IsAbstract() bool
	SetAbstract(b bool) bool

	// Features returns the own features in declaration order.
	Features() []Feature
	// AddFeature appends a feature and returns its previous owner.
	// An already owned feature is moved to the end.
	AddFeature(f Feature) (Classifier, error)
	InsertFeature(f Feature, pos int) (Classifier, error)
	RemoveFeature(f Feature) bool

	// Generalizations returns the generalizations with this classifier as child.
	Generalizations() []*Generalization
	// Specializations returns the generalizations with this classifier as parent.
	Specializations() []*Generalization
	Parents() []Classifier
	Children() []Classifier
	AllParents() []Classifier

	// TypedFeatures returns the structural features of this type.
	TypedFeatures() []StructuralFeature
	// TypedParameters returns the parameters of this type.
	TypedParameters() []*Parameter

	classifierBase() *ClassifierBase
}

// ClassifierBase implements the Classifier part of an element.
type ClassifierBase struct {
	NamespaceBase
	abstract bool

	features        assoc.Slot[Feature]
	generalizations assoc.Slot[*Generalization]
	specializations assoc.Slot[*Generalization]
	typedFeatures   assoc.Slot[StructuralFeature]
	typedParameters assoc.Slot[*Parameter]
}

func (c *ClassifierBase) classifierBase() *ClassifierBase {
	return c
}

func (c *ClassifierBase) cl() Classifier {
	return c.self.(Classifier)
}

func (c *ClassifierBase) IsAbstract() bool {
	return c.abstract
}

func (c *ClassifierBase) SetAbstract(b bool) bool {
	old := c.abstract
	c.abstract = b
	return old
}

func (c *ClassifierBase) Features() []Feature {
	return c.features.List()
}

func (c *ClassifierBase) AddFeature(f Feature) (Classifier, error) {
	prev, err := classifierFeatures.Link(c.cl(), f)
	return prev.A, err
}

func (c *ClassifierBase) InsertFeature(f Feature, pos int) (Classifier, error) {
	prev, err := classifierFeatures.Insert(c.cl(), f, pos)
	return prev.A, err
}

func (c *ClassifierBase) RemoveFeature(f Feature) bool {
	return classifierFeatures.Unlink(c.cl(), f)
}

func (c *ClassifierBase) Generalizations() []*Generalization {
	return c.generalizations.List()
}

func (c *ClassifierBase) Specializations() []*Generalization {
	return c.specializations.List()
}

func (c *ClassifierBase) Parents() []Classifier {
	var r []Classifier
	for _, g := range c.generalizations.List() {
		r = utils.AppendUnique(r, g.Parent())
	}
	return r
}

func (c *ClassifierBase) Children() []Classifier {
	var r []Classifier
	for _, g := range c.specializations.List() {
		r = utils.AppendUnique(r, g.Child())
	}
	return r
}

func (c *ClassifierBase) AllParents() []Classifier {
	return AllParents(c.cl())
}

func (c *ClassifierBase) TypedFeatures() []StructuralFeature {
	return c.typedFeatures.List()
}

func (c *ClassifierBase) TypedParameters() []*Parameter {
	return c.typedParameters.List()
}

////////////////////////////////////////////////////////////////////////////////

// Class is a classifier for objects.
type Class struct {
	ClassifierBase
	indexes assoc.Slot[*Index]
}

var _ Classifier = (*Class)(nil)

func NewClass(ns Namespace, name string, vis Visibility, abstract bool) (*Class, error) {
	return newClass(KindClass, ns, name, vis, abstract)
}

func newClass(kind string, ns Namespace, name string, vis Visibility, abstract bool) (*Class, error) {
	if err := checkElement(name, vis); err != nil {
		return nil, err
	}
	c := &Class{}
	c.init(c, kind, name, vis)
	c.abstract = abstract
	if err := place(ns, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Indexes returns the indexes spanning this class.
func (c *Class) Indexes() []*Index {
	return c.indexes.List()
}

////////////////////////////////////////////////////////////////////////////////

// DataType is a classifier for values without identity.
type DataType struct {
	ClassifierBase
}

var _ Classifier = (*DataType)(nil)

func NewDataType(ns Namespace, name string, vis Visibility) (*DataType, error) {
	if err := checkElement(name, vis); err != nil {
		return nil, err
	}
	t := &DataType{}
	t.init(t, KindDataType, name, vis)
	if err := place(ns, t); err != nil {
		return nil, err
	}
	return t, nil
}

////////////////////////////////////////////////////////////////////////////////

// Generalization relates a more specific classifier (child) to a more
// general one (parent). The generalization hierarchy is acyclic.
// A generalization is owned by its child.
type Generalization struct {
	ModelElement
	child  assoc.Slot[Classifier]
	parent assoc.Slot[Classifier]
}

var _ Element = (*Generalization)(nil)

func NewGeneralization(name string, vis Visibility, child, parent Classifier) (*Generalization, error) {
	if err := checkElement(name, vis); err != nil {
		return nil, err
	}
	if utils.IsNil(child) {
		return nil, assoc.Required("child")
	}
	if utils.IsNil(parent) {
		return nil, assoc.Required("parent")
	}
	if err := checkGeneralization(child, parent); err != nil {
		return nil, err
	}
	g := &Generalization{}
	g.init(g, KindGeneralization, name, vis)
	if _, err := generalizationChildren.Link(g, child); err != nil {
		return nil, err
	}
	if _, err := generalizationParents.Link(g, parent); err != nil {
		generalizationChildren.Clear(g)
		return nil, err
	}
	if err := place(child, g); err != nil {
		g.Discard()
		return nil, err
	}
	return g, nil
}

func (g *Generalization) Child() Classifier {
	return g.child.First()
}

func (g *Generalization) SetChild(c Classifier) (Classifier, error) {
	return generalizationChildren.Set(g, c)
}

func (g *Generalization) Parent() Classifier {
	return g.parent.First()
}

func (g *Generalization) SetParent(c Classifier) (Classifier, error) {
	return generalizationParents.Set(g, c)
}

// Discard removes the generalization from its child and parent.
func (g *Generalization) Discard() {
	generalizationChildren.Clear(g)
	generalizationParents.Clear(g)
	g.SetNamespace(nil)
}

// checkGeneralization rejects parents which are the child itself or
// one of its descendants.
func checkGeneralization(child, parent Classifier) error {
	if child.base() == parent.base() {
		return fmt.Errorf("generalization %s->%s: %w", child.Name(), parent.Name(), assoc.ErrCycle)
	}
	if path := parentPath(parent, child); path != nil {
		return fmt.Errorf("generalization cycle %s: %w",
			utils.JoinFunc(append([]Classifier{child}, path...), "->", Classifier.Name), assoc.ErrCycle)
	}
	return nil
}

// parentPath returns the path from a classifier to one of its
// ancestors following the parent links, or nil.
func parentPath(from, to Classifier) []Classifier {
	var stack []Classifier
	visited := map[*ModelElement]bool{}

	var find func(c Classifier) bool
	find = func(c Classifier) bool {
		stack = append(stack, c)
		if c.base() == to.base() {
			return true
		}
		if !visited[c.base()] {
			visited[c.base()] = true
			for _, p := range c.Parents() {
				if find(p) {
					return true
				}
			}
		}
		stack = stack[:len(stack)-1]
		return false
	}
	if find(from) {
		return stack
	}
	return nil
}
