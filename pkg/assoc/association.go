package assoc

import (
	"fmt"

	"github.com/mandelsoft/cwm/pkg/utils"
)

// End describes one end of an association as seen from a
// participant of type S storing partners of type T.
type End[S, T comparable] struct {
	// Role is the name of the end, for example "ownedElement".
	Role string
	// Mult is the number of partners of type T allowed for a
	// participant of type S.
	Mult Multiplicity
	// Slot provides the storage of the end for a participant.
	Slot func(S) *Slot[T]
}

// Check is called before a new link is established.
// A non-nil error rejects the link.
type Check[A, B comparable] func(a A, b B) error

// Previous reports the partners replaced by a link.
// Fields are zero if nothing was replaced on that side.
type Previous[A, B comparable] struct {
	// A is the former partner of b on the inverse end.
	A A
	// B is the former partner of a on the forward end.
	B B
}

// Association is a bidirectional relationship between participants
// of type A and B. The forward end holds the Bs of an A, the inverse
// end holds the As of a B.
type Association[A, B comparable] struct {
	name    string
	forward End[A, B]
	inverse End[B, A]
	check   Check[A, B]

	inverted *Association[B, A]
}

// New creates an association from its two ends.
func New[A, B comparable](name string, forward End[A, B], inverse End[B, A]) *Association[A, B] {
	if err := forward.Mult.Validate(); err != nil {
		panic(fmt.Sprintf("association %s: %s: %s", name, forward.Role, err))
	}
	if err := inverse.Mult.Validate(); err != nil {
		panic(fmt.Sprintf("association %s: %s: %s", name, inverse.Role, err))
	}
	a := &Association[A, B]{
		name:    name,
		forward: forward,
		inverse: inverse,
	}
	a.inverted = &Association[B, A]{
		name:     name,
		forward:  inverse,
		inverse:  forward,
		inverted: a,
	}
	return a
}

// WithCheck sets a link check for the association.
func (as *Association[A, B]) WithCheck(c Check[A, B]) *Association[A, B] {
	as.check = c
	if c == nil {
		as.inverted.check = nil
	} else {
		as.inverted.check = func(b B, a A) error { return c(a, b) }
	}
	return as
}

func (as *Association[A, B]) Name() string {
	return as.name
}

// ForwardEnd returns the end holding the Bs of an A.
func (as *Association[A, B]) ForwardEnd() End[A, B] {
	return as.forward
}

// InverseEnd returns the end holding the As of a B.
func (as *Association[A, B]) InverseEnd() End[B, A] {
	return as.inverse
}

// Inverted provides the same association seen from the B side.
// Both views share their state.
func (as *Association[A, B]) Inverted() *Association[B, A] {
	return as.inverted
}

// Forward returns the partners of a in link order.
func (as *Association[A, B]) Forward(a A) []B {
	if utils.IsNil(a) {
		return nil
	}
	return as.forward.Slot(a).List()
}

// Inverse returns the partners of b in link order.
func (as *Association[A, B]) Inverse(b B) []A {
	if utils.IsNil(b) {
		return nil
	}
	return as.inverse.Slot(b).List()
}

// Get returns the first forward partner of a or the zero value.
func (as *Association[A, B]) Get(a A) B {
	var _nil B
	if utils.IsNil(a) {
		return _nil
	}
	return as.forward.Slot(a).First()
}

// GetInverse returns the first inverse partner of b or the zero value.
func (as *Association[A, B]) GetInverse(b B) A {
	return as.inverted.Get(b)
}

// Linked reports whether a and b are linked.
func (as *Association[A, B]) Linked(a A, b B) bool {
	if utils.IsNil(a) || utils.IsNil(b) {
		return false
	}
	return as.forward.Slot(a).Contains(b)
}

// Link establishes the relationship between a and b in both directions.
// If an end has an upper bound of one, an existing partner is replaced
// and reported in the result. Linking an already linked pair on an
// ordered forward end moves b to the end of the list.
func (as *Association[A, B]) Link(a A, b B) (Previous[A, B], error) {
	return as.link(a, b, -1)
}

// Insert links a and b placing b at the given position of the
// forward end of a. It is only meaningful for ordered ends.
func (as *Association[A, B]) Insert(a A, b B, pos int) (Previous[A, B], error) {
	return as.link(a, b, pos)
}

func (as *Association[A, B]) link(a A, b B, pos int) (Previous[A, B], error) {
	var prev Previous[A, B]

	if utils.IsNil(a) {
		return prev, as.required(as.inverse.Role)
	}
	if utils.IsNil(b) {
		return prev, as.required(as.forward.Role)
	}

	fs := as.forward.Slot(a)
	is := as.inverse.Slot(b)

	if fs.Contains(b) {
		if as.forward.Mult.Ordered {
			fs.move(b, pos)
			log.Trace("relink {{association}}: moved {{b}} in {{role}} of {{a}}", "association", as.name, "role", as.forward.Role, "a", a, "b", b)
		}
		return prev, nil
	}

	if as.check != nil {
		if err := as.check(a, b); err != nil {
			return prev, fmt.Errorf("%s: %w", as.name, err)
		}
	}

	if as.forward.Mult.IsSingle() && fs.Len() > 0 {
		prev.B = fs.First()
		if as.inverse.Slot(prev.B).Len() <= as.inverse.Mult.Lower {
			return Previous[A, B]{}, as.bound(as.inverse.Role, ErrLowerBound)
		}
	} else if !as.forward.Mult.IsUnbounded() && fs.Len() >= as.forward.Mult.Upper {
		return prev, as.bound(as.forward.Role, ErrUpperBound)
	}

	if as.inverse.Mult.IsSingle() && is.Len() > 0 {
		prev.A = is.First()
		if as.forward.Slot(prev.A).Len() <= as.forward.Mult.Lower {
			return Previous[A, B]{}, as.bound(as.forward.Role, ErrLowerBound)
		}
	} else if !as.inverse.Mult.IsUnbounded() && is.Len() >= as.inverse.Mult.Upper {
		return Previous[A, B]{}, as.bound(as.inverse.Role, ErrUpperBound)
	}

	if !utils.IsNil(prev.B) {
		fs.remove(prev.B)
		as.inverse.Slot(prev.B).remove(a)
		log.Trace("unlink {{association}}: replaced {{b}} in {{role}} of {{a}}", "association", as.name, "role", as.forward.Role, "a", a, "b", prev.B)
	}
	if !utils.IsNil(prev.A) {
		is.remove(prev.A)
		as.forward.Slot(prev.A).remove(b)
		log.Trace("unlink {{association}}: replaced {{a}} in {{role}} of {{b}}", "association", as.name, "role", as.inverse.Role, "a", prev.A, "b", b)
	}

	fs.insert(b, pos)
	is.insert(a, -1)
	log.Trace("link {{association}}: {{a}} {{role}} {{b}}", "association", as.name, "role", as.forward.Role, "a", a, "b", b)
	return prev, nil
}

// Unlink removes the relationship between a and b in both directions.
// It returns false and leaves the state unchanged, if the pair is not
// linked or if either end would drop below its lower bound.
func (as *Association[A, B]) Unlink(a A, b B) bool {
	if !as.Linked(a, b) {
		return false
	}
	fs := as.forward.Slot(a)
	is := as.inverse.Slot(b)
	if fs.Len() <= as.forward.Mult.Lower {
		log.Debug("unlink {{association}} rejected: last {{role}} of {{a}}", "association", as.name, "role", as.forward.Role, "a", a)
		return false
	}
	if is.Len() <= as.inverse.Mult.Lower {
		log.Debug("unlink {{association}} rejected: last {{role}} of {{b}}", "association", as.name, "role", as.inverse.Role, "b", b)
		return false
	}
	fs.remove(b)
	is.remove(a)
	log.Trace("unlink {{association}}: {{a}} {{role}} {{b}}", "association", as.name, "role", as.forward.Role, "a", a, "b", b)
	return true
}

// Detach removes b from a, where b is a part being discarded together
// with this link. Only the lower bound of the forward end of a is
// checked.
func (as *Association[A, B]) Detach(a A, b B) bool {
	if !as.Linked(a, b) {
		return false
	}
	fs := as.forward.Slot(a)
	if fs.Len() <= as.forward.Mult.Lower {
		log.Debug("detach {{association}} rejected: last {{role}} of {{a}}", "association", as.name, "role", as.forward.Role, "a", a)
		return false
	}
	fs.remove(b)
	as.inverse.Slot(b).remove(a)
	log.Trace("detach {{association}}: {{a}} {{role}} {{b}}", "association", as.name, "role", as.forward.Role, "a", a, "b", b)
	return true
}

// Drop removes the link between a and b ignoring all bounds.
// It is used to discard a whole and its parts together.
func (as *Association[A, B]) Drop(a A, b B) bool {
	if !as.Linked(a, b) {
		return false
	}
	as.forward.Slot(a).remove(b)
	as.inverse.Slot(b).remove(a)
	log.Trace("drop {{association}}: {{a}} {{role}} {{b}}", "association", as.name, "role", as.forward.Role, "a", a, "b", b)
	return true
}

// Clear removes all forward links of a, which is being discarded.
// The lower bound of a is ignored, but the operation is rejected without
// any change if a partner would drop below the lower bound of the
// inverse end. It returns the number of removed links.
func (as *Association[A, B]) Clear(a A) (int, error) {
	if utils.IsNil(a) {
		return 0, as.required(as.inverse.Role)
	}
	fs := as.forward.Slot(a)
	list := fs.List()
	for _, b := range list {
		if as.inverse.Slot(b).Len() <= as.inverse.Mult.Lower {
			return 0, as.bound(as.inverse.Role, ErrLowerBound)
		}
	}
	for _, b := range list {
		fs.remove(b)
		as.inverse.Slot(b).remove(a)
	}
	if len(list) > 0 {
		log.Trace("clear {{association}}: {{count}} {{role}} of {{a}}", "association", as.name, "role", as.forward.Role, "a", a, "count", len(list))
	}
	return len(list), nil
}

// Set replaces the partner of a on a forward end with an upper
// bound of one and returns the old partner. A zero b removes the
// link, which fails for required ends.
func (as *Association[A, B]) Set(a A, b B) (B, error) {
	var _nil B

	if utils.IsNil(a) {
		return _nil, as.required(as.inverse.Role)
	}
	if !as.forward.Mult.IsSingle() {
		return _nil, fmt.Errorf("%s: %s is multi-valued", as.name, as.forward.Role)
	}
	old := as.Get(a)
	if utils.IsNil(b) {
		if utils.IsNil(old) {
			return _nil, nil
		}
		if as.forward.Mult.IsRequired() {
			return _nil, as.required(as.forward.Role)
		}
		if !as.Unlink(a, old) {
			return _nil, as.bound(as.inverse.Role, ErrLowerBound)
		}
		return old, nil
	}
	if old == b {
		return old, nil
	}
	_, err := as.link(a, b, -1)
	if err != nil {
		return _nil, err
	}
	return old, nil
}

func (as *Association[A, B]) required(role string) error {
	return fmt.Errorf("%s: %s: %w", as.name, role, ErrRequired)
}

func (as *Association[A, B]) bound(role string, err error) error {
	return fmt.Errorf("%s: %s: %w", as.name, role, err)
}
