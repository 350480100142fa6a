package assoc

import (
	"errors"
	"fmt"
)

var (
	// ErrRequired is reported for a missing required argument.
	// Operations failing with it have no side effect.
	ErrRequired = errors.New("required argument missing")
	// ErrLowerBound is reported if a mutation would leave fewer
	// partners than required on one end.
	ErrLowerBound = errors.New("lower bound violated")
	// ErrUpperBound is reported if a mutation would exceed the maximum
	// number of partners of an end, which cannot be replaced.
	ErrUpperBound = errors.New("upper bound exceeded")
	// ErrCycle is reported for links closing a cycle on
	// relationships required to be acyclic.
	ErrCycle = errors.New("cycle")
)

// Required returns an ErrRequired for the given argument.
func Required(what string) error {
	return fmt.Errorf("%s: %w", what, ErrRequired)
}
