package model

import (
	"github.com/mandelsoft/cwm/pkg/assoc"
	"github.com/mandelsoft/cwm/pkg/utils"
)

// Constraint is a condition expressed by a boolean expression
// on an ordered list of constrained elements.
type Constraint struct {
	ModelElement
	body Expression

	elements assoc.Slot[Element]
}

var _ Element = (*Constraint)(nil)

// NewConstraint creates a constraint in an optional namespace for
// the given elements. The body is required.
func NewConstraint(ns Namespace, name string, vis Visibility, body Expression, elements ...Element) (*Constraint, error) {
	if err := checkElement(name, vis); err != nil {
		return nil, err
	}
	if body.IsEmpty() {
		return nil, assoc.Required("body")
	}
	for _, e := range elements {
		if utils.IsNil(e) {
			return nil, assoc.Required("constrainedElement")
		}
	}
	c := &Constraint{body: body}
	c.init(c, KindConstraint, name, vis)
	for _, e := range elements {
		constrainedElements.Link(c, e)
	}
	if err := place(ns, c); err != nil {
		c.Discard()
		return nil, err
	}
	return c, nil
}

func (c *Constraint) Body() Expression {
	return c.body
}

func (c *Constraint) SetBody(e Expression) (Expression, error) {
	if e.IsEmpty() {
		return c.body, assoc.Required("body")
	}
	old := c.body
	c.body = e
	return old, nil
}

// ConstrainedElements returns the constrained elements in link order.
func (c *Constraint) ConstrainedElements() []Element {
	return c.elements.List()
}

// AddConstrainedElement appends an element. An already constrained
// element is moved to the end.
func (c *Constraint) AddConstrainedElement(e Element) error {
	_, err := constrainedElements.Link(c, e)
	return err
}

func (c *Constraint) InsertConstrainedElement(e Element, pos int) error {
	_, err := constrainedElements.Insert(c, e, pos)
	return err
}

func (c *Constraint) RemoveConstrainedElement(e Element) bool {
	return constrainedElements.Unlink(c, e)
}

// Discard removes the constraint from all its elements and its namespace.
func (c *Constraint) Discard() {
	constrainedElements.Clear(c)
	c.SetNamespace(nil)
}
