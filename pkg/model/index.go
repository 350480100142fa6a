package model

import (
	"github.com/mandelsoft/cwm/pkg/assoc"
	"github.com/mandelsoft/cwm/pkg/utils"
)

// IndexedFeatureSpec describes an indexed feature to be created
// for an index.
type IndexedFeatureSpec struct {
	Feature StructuralFeature
	// Ascending is the optional sort order. It may only be
	// set for sorted indexes.
	Ascending *bool
}

// Index is an ordered list of indexed features of a class
// used to access its instances.
type Index struct {
	ModelElement
	partitioning bool
	sorted       bool
	unique       bool

	spannedClass    assoc.Slot[*Class]
	indexedFeatures assoc.Slot[*IndexedFeature]
}

var _ Element = (*Index)(nil)

// NewIndex creates an index in an optional namespace spanning a class.
// At least one indexed feature is required.
func NewIndex(ns Namespace, name string, vis Visibility, spanned *Class, sorted, unique bool, features ...IndexedFeatureSpec) (*Index, error) {
	return newIndex(KindIndex, ns, name, vis, spanned, sorted, unique, features)
}

func newIndex(kind string, ns Namespace, name string, vis Visibility, spanned *Class, sorted, unique bool, features []IndexedFeatureSpec) (*Index, error) {
	if err := checkElement(name, vis); err != nil {
		return nil, err
	}
	if spanned == nil {
		return nil, assoc.Required("spannedClass")
	}
	if len(features) == 0 {
		return nil, assoc.Required("indexedFeature")
	}
	for _, s := range features {
		if utils.IsNil(s.Feature) {
			return nil, assoc.Required("feature")
		}
		if s.Ascending != nil && !sorted {
			return nil, violation(RuleAscendingRequiresSorted, nil, "index %s is not sorted, but feature %s requests an order", name, s.Feature.Name())
		}
	}

	i := &Index{sorted: sorted, unique: unique}
	i.init(i, kind, name, vis)
	indexSpannedClass.Link(i, spanned)
	for _, s := range features {
		i.addIndexedFeature(s)
	}
	if err := place(ns, i); err != nil {
		i.Discard()
		return nil, err
	}
	return i, nil
}

func (i *Index) addIndexedFeature(s IndexedFeatureSpec) *IndexedFeature {
	f := &IndexedFeature{ascending: s.Ascending}
	f.init(f, KindIndexedFeature, s.Feature.Name(), DefaultVisibility)
	indexedFeatureFeature.Link(f, s.Feature)
	indexIndexedFeatures.Link(i, f)
	return f
}

func (i *Index) SpannedClass() *Class {
	return i.spannedClass.First()
}

func (i *Index) SetSpannedClass(c *Class) (*Class, error) {
	return indexSpannedClass.Set(i, c)
}

func (i *Index) IsPartitioning() bool {
	return i.partitioning
}

func (i *Index) SetPartitioning(b bool) bool {
	old := i.partitioning
	i.partitioning = b
	return old
}

func (i *Index) IsSorted() bool {
	return i.sorted
}

// SetSorted sets the sort flag and returns the previous value.
// An index cannot be set to unsorted as long as one of its
// indexed features has a sort order.
func (i *Index) SetSorted(b bool) (bool, error) {
	if !b {
		for _, f := range i.indexedFeatures.List() {
			if f.ascending != nil {
				return i.sorted, violation(RuleAscendingRequiresSorted, i, "indexed feature %s has a sort order", f.Name())
			}
		}
	}
	old := i.sorted
	i.sorted = b
	return old, nil
}

func (i *Index) IsUnique() bool {
	return i.unique
}

func (i *Index) SetUnique(b bool) bool {
	old := i.unique
	i.unique = b
	return old
}

// IndexedFeatures returns the indexed features in declaration order.
func (i *Index) IndexedFeatures() []*IndexedFeature {
	return i.indexedFeatures.List()
}

// Features returns the structural features of the indexed features.
func (i *Index) Features() []StructuralFeature {
	return utils.TransformSlice(i.indexedFeatures.List(), (*IndexedFeature).Feature)
}

// AddIndexedFeature appends a new indexed feature for the given feature.
func (i *Index) AddIndexedFeature(s IndexedFeatureSpec) (*IndexedFeature, error) {
	if utils.IsNil(s.Feature) {
		return nil, assoc.Required("feature")
	}
	if s.Ascending != nil && !i.sorted {
		return nil, violation(RuleAscendingRequiresSorted, i, "index is not sorted, but feature %s requests an order", s.Feature.Name())
	}
	return i.addIndexedFeature(s), nil
}

// RemoveIndexedFeature removes and discards an indexed feature.
// The last indexed feature cannot be removed.
func (i *Index) RemoveIndexedFeature(f *IndexedFeature) bool {
	if !indexIndexedFeatures.Detach(i, f) {
		return false
	}
	indexedFeatureFeature.Clear(f)
	return true
}

// RemoveFeature removes the first indexed feature for the given
// structural feature. The last indexed feature cannot be removed.
func (i *Index) RemoveFeature(sf StructuralFeature) bool {
	for _, f := range i.indexedFeatures.List() {
		if f.Feature() == sf {
			return i.RemoveIndexedFeature(f)
		}
	}
	return false
}

// Discard removes the index and its indexed features
// from its class, the features and its namespace.
func (i *Index) Discard() {
	for _, f := range i.indexedFeatures.List() {
		indexedFeatureFeature.Clear(f)
		indexIndexedFeatures.Drop(i, f)
	}
	indexSpannedClass.Clear(i)
	i.SetNamespace(nil)
}

////////////////////////////////////////////////////////////////////////////////

// IndexedFeature is an entry of an index referring to a
// structural feature of the spanned class.
type IndexedFeature struct {
	ModelElement
	ascending *bool

	index   assoc.Slot[*Index]
	feature assoc.Slot[StructuralFeature]
}

var _ Element = (*IndexedFeature)(nil)

func (f *IndexedFeature) Index() *Index {
	return f.index.First()
}

func (f *IndexedFeature) Feature() StructuralFeature {
	return f.feature.First()
}

func (f *IndexedFeature) SetFeature(sf StructuralFeature) (StructuralFeature, error) {
	return indexedFeatureFeature.Set(f, sf)
}

// IsAscending returns the sort order or nil if unset.
func (f *IndexedFeature) IsAscending() *bool {
	return f.ascending
}

// SetAscending sets the sort order and returns the previous value.
// A sort order can only be set for features of a sorted index,
// otherwise a *ConstraintViolation is returned and nothing changes.
func (f *IndexedFeature) SetAscending(b *bool) (*bool, error) {
	if b != nil {
		if i := f.Index(); i != nil && !i.IsSorted() {
			return f.ascending, violation(RuleAscendingRequiresSorted, f, "index %s is not sorted", i.Name())
		}
	}
	old := f.ascending
	f.ascending = b
	return old, nil
}

// Container is the owning index.
func (f *IndexedFeature) Container() Element {
	if i := f.index.First(); i != nil {
		return i
	}
	return f.ModelElement.Container()
}
