package model

import (
	"github.com/mandelsoft/cwm/pkg/assoc"
	"github.com/mandelsoft/cwm/pkg/utils"
)

// UniqueKey is an ordered list of structural features uniquely
// identifying the instances of their classifier.
type UniqueKey struct {
	ModelElement
	features      assoc.Slot[StructuralFeature]
	relationships assoc.Slot[*KeyRelationship]
}

var _ Element = (*UniqueKey)(nil)

// NewUniqueKey creates a unique key in an optional namespace.
// At least one feature is required.
func NewUniqueKey(ns Namespace, name string, vis Visibility, features ...StructuralFeature) (*UniqueKey, error) {
	return newUniqueKey(KindUniqueKey, ns, name, vis, features)
}

func newUniqueKey(kind string, ns Namespace, name string, vis Visibility, features []StructuralFeature) (*UniqueKey, error) {
	if err := checkElement(name, vis); err != nil {
		return nil, err
	}
	if err := checkKeyFeatures(features); err != nil {
		return nil, err
	}
	k := &UniqueKey{}
	k.init(k, kind, name, vis)
	for _, f := range features {
		uniqueKeyFeatures.Link(k, f)
	}
	if err := place(ns, k); err != nil {
		uniqueKeyFeatures.Clear(k)
		return nil, err
	}
	return k, nil
}

func checkKeyFeatures(features []StructuralFeature) error {
	if len(features) == 0 {
		return assoc.Required("feature")
	}
	for _, f := range features {
		if utils.IsNil(f) {
			return assoc.Required("feature")
		}
	}
	return nil
}

// Features returns the key features in declaration order.
func (k *UniqueKey) Features() []StructuralFeature {
	return k.features.List()
}

// AddFeature appends a feature. An already used feature is moved
// to the end.
func (k *UniqueKey) AddFeature(f StructuralFeature) error {
	_, err := uniqueKeyFeatures.Link(k, f)
	return err
}

func (k *UniqueKey) InsertFeature(f StructuralFeature, pos int) error {
	_, err := uniqueKeyFeatures.Insert(k, f, pos)
	return err
}

// RemoveFeature removes a feature. The last feature cannot be removed.
func (k *UniqueKey) RemoveFeature(f StructuralFeature) bool {
	return uniqueKeyFeatures.Unlink(k, f)
}

// KeyRelationships returns the key relationships referring to this key.
func (k *UniqueKey) KeyRelationships() []*KeyRelationship {
	return k.relationships.List()
}

// Discard removes the key from its features and its namespace.
// It fails if the key is still referred to by key relationships.
func (k *UniqueKey) Discard() error {
	if _, err := uniqueKeyRelationships.Clear(k); err != nil {
		return err
	}
	uniqueKeyFeatures.Clear(k)
	k.SetNamespace(nil)
	return nil
}

////////////////////////////////////////////////////////////////////////////////

// KeyRelationship is an ordered list of structural features
// referring to a unique key, for example a foreign key.
type KeyRelationship struct {
	ModelElement
	features  assoc.Slot[StructuralFeature]
	uniqueKey assoc.Slot[*UniqueKey]
}

var _ Element = (*KeyRelationship)(nil)

// NewKeyRelationship creates a key relationship in an optional namespace
// referring to the given unique key. At least one feature is required.
func NewKeyRelationship(ns Namespace, name string, vis Visibility, key *UniqueKey, features ...StructuralFeature) (*KeyRelationship, error) {
	return newKeyRelationship(KindKeyRelationship, ns, name, vis, key, features)
}

func newKeyRelationship(kind string, ns Namespace, name string, vis Visibility, key *UniqueKey, features []StructuralFeature) (*KeyRelationship, error) {
	if err := checkElement(name, vis); err != nil {
		return nil, err
	}
	if key == nil {
		return nil, assoc.Required("uniqueKey")
	}
	if err := checkKeyFeatures(features); err != nil {
		return nil, err
	}
	r := &KeyRelationship{}
	r.init(r, kind, name, vis)
	uniqueKeyRelationships.Link(key, r)
	for _, f := range features {
		keyRelationshipFeatures.Link(r, f)
	}
	if err := place(ns, r); err != nil {
		r.Discard()
		return nil, err
	}
	return r, nil
}

// Features returns the features in declaration order.
func (r *KeyRelationship) Features() []StructuralFeature {
	return r.features.List()
}

func (r *KeyRelationship) AddFeature(f StructuralFeature) error {
	_, err := keyRelationshipFeatures.Link(r, f)
	return err
}

func (r *KeyRelationship) InsertFeature(f StructuralFeature, pos int) error {
	_, err := keyRelationshipFeatures.Insert(r, f, pos)
	return err
}

// RemoveFeature removes a feature. The last feature cannot be removed.
func (r *KeyRelationship) RemoveFeature(f StructuralFeature) bool {
	return keyRelationshipFeatures.Unlink(r, f)
}

func (r *KeyRelationship) UniqueKey() *UniqueKey {
	return r.uniqueKey.First()
}

// SetUniqueKey moves the relationship to another unique key
// and returns the previous one.
func (r *KeyRelationship) SetUniqueKey(k *UniqueKey) (*UniqueKey, error) {
	return uniqueKeyRelationships.Inverted().Set(r, k)
}

// Discard removes the relationship from its features,
// its unique key and its namespace.
func (r *KeyRelationship) Discard() {
	keyRelationshipFeatures.Clear(r)
	uniqueKeyRelationships.Inverted().Clear(r)
	r.SetNamespace(nil)
}
