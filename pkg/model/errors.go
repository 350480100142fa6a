package model

import (
	"errors"
	"fmt"

	"github.com/mandelsoft/cwm/pkg/assoc"
)

var (
	ErrRequired   = assoc.ErrRequired
	ErrLowerBound = assoc.ErrLowerBound
	ErrUpperBound = assoc.ErrUpperBound
	ErrCycle      = assoc.ErrCycle
	// ErrInvalid is reported for arguments with an invalid value.
	ErrInvalid = errors.New("invalid argument")
)

const (
	// RuleAscendingRequiresSorted forbids an ascending flag
	// on indexed features of an unsorted index.
	RuleAscendingRequiresSorted = "C-6-1"
	// RuleAssociationEnds requires at least two ends per association.
	RuleAssociationEnds = "C-3-1"
)

// ConstraintViolation is reported if an attribute is set in a state
// where it is not allowed by another attribute.
type ConstraintViolation struct {
	Rule    string
	Element string
	Message string
}

var _ error = (*ConstraintViolation)(nil)

func (c *ConstraintViolation) Error() string {
	return fmt.Sprintf("constraint [%s] violated for %s: %s", c.Rule, c.Element, c.Message)
}

func violation(rule string, e Element, msg string, args ...any) error {
	name := "<new>"
	if e != nil {
		name = e.QualifiedName()
	}
	err := &ConstraintViolation{Rule: rule, Element: name, Message: fmt.Sprintf(msg, args...)}
	log.Debug("rejected mutation: {{error}}", "error", err)
	return err
}

// IsConstraintViolation checks for a *ConstraintViolation in
// the error chain.
func IsConstraintViolation(err error) bool {
	var cv *ConstraintViolation
	return errors.As(err, &cv)
}

func invalid(what string, value any) error {
	return fmt.Errorf("%s %q: %w", what, value, ErrInvalid)
}
