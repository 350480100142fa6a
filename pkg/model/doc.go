// Package model provides the object graph of the warehouse metamodel.
//
// All elements are created by constructors taking every mandatory
// property. Constructors validate their arguments before they touch
// any relationship, so an element is never linked partially.
//
// Relationships are bidirectional. Every setter or adder updates both
// participants, for example adding a feature to a classifier sets the
// owner of the feature. Mutations violating a lower bound, like removing
// the last feature of a unique key, are rejected by returning false.
// Missing required arguments are reported as errors matching ErrRequired,
// and rules depending on other attributes by a *ConstraintViolation.
//
// Navigation functions work on the ownership tree (AllContents,
// OwnedElementDeep), the dependency graph (AllSuppliers) and the
// generalization hierarchy (FindFeature).
//
// The graph is not synchronized. Concurrent mutation must be
// serialized by the caller, for example with extent.Extent.Do.
package model
