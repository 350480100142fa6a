// Package assoc provides the bidirectional association primitive used
// for all relationships of the warehouse metamodel.
//
// An Association connects two kinds of participants, called the A side
// and the B side. Every participant stores its end of the relationship
// in a Slot. The association updates both slots in one call, so that
// b is found in the forward slot of a if and only if a is found in the
// inverse slot of b.
//
// Both ends carry a Multiplicity. Upper bounds of one replace the
// previous partner on link, lower bounds of one reject an unlink of
// the last remaining partner. Ordered ends keep the link order.
//
// Associations are not synchronized. Sequences of mutations must be
// serialized by the caller.
package assoc
