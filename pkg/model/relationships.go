package model

import (
	"github.com/mandelsoft/cwm/pkg/assoc"
	"github.com/mandelsoft/cwm/pkg/utils"
)

// Association is a classifier relating the types of its ends.
// Its features are the ordered association ends, an association
// always has at least two ends.
type Association struct {
	ClassifierBase
}

var _ Classifier = (*Association)(nil)

// EndSpec describes an association end to be created together
// with an association.
type EndSpec struct {
	Name         string
	Visibility   Visibility
	Type         Classifier
	Multiplicity assoc.Multiplicity
	Aggregation  AggregationKind
	Navigable    bool
}

func (s *EndSpec) check() error {
	vis := s.Visibility
	if vis == "" {
		vis = DefaultVisibility
	}
	if err := checkStructuralFeature(s.Name, vis, s.Type, s.Multiplicity); err != nil {
		return err
	}
	if s.Aggregation != "" && !s.Aggregation.IsValid() {
		return invalid("aggregation", s.Aggregation)
	}
	return nil
}

// NewAssociation creates an association with the given ends.
func NewAssociation(ns Namespace, name string, vis Visibility, ends ...EndSpec) (*Association, error) {
	if err := checkElement(name, vis); err != nil {
		return nil, err
	}
	if len(ends) < 2 {
		return nil, violation(RuleAssociationEnds, nil, "association %s requires at least two ends, found %d", name, len(ends))
	}
	composites := 0
	for i := range ends {
		if err := ends[i].check(); err != nil {
			return nil, err
		}
		if ends[i].Aggregation == AggregationComposite {
			composites++
		}
	}
	if composites > 1 {
		return nil, invalid("aggregation", "more than one composite end")
	}

	a := &Association{}
	a.init(a, KindAssociation, name, vis)
	for _, s := range ends {
		vis := s.Visibility
		if vis == "" {
			vis = DefaultVisibility
		}
		e, err := newAssociationEnd(s.Name, vis, s.Type, s.Multiplicity)
		if err == nil {
			e.aggregation = utils.OptionalDefaulted(AggregationNone, s.Aggregation)
			e.navigable = s.Navigable
			_, err = classifierFeatures.Link(a, e)
		}
		if err != nil {
			a.discardEnds()
			return nil, err
		}
	}
	if err := place(ns, a); err != nil {
		a.discardEnds()
		return nil, err
	}
	return a, nil
}

func (a *Association) discardEnds() {
	for _, e := range a.Ends() {
		structuralFeatureTypes.Clear(e)
	}
	classifierFeatures.Clear(a)
}

// Ends returns the association ends in declaration order.
func (a *Association) Ends() []*AssociationEnd {
	return utils.CastSlice[*AssociationEnd](a.features.List())
}

// End returns the end with the given name.
func (a *Association) End(name string) *AssociationEnd {
	for _, e := range a.Ends() {
		if e.Name() == name {
			return e
		}
	}
	return nil
}

// AddEnd appends an end and returns its previous owner.
func (a *Association) AddEnd(e *AssociationEnd) (Classifier, error) {
	return a.AddFeature(e)
}

// RemoveFeature removes a feature. The last two ends cannot be removed.
func (a *Association) RemoveFeature(f Feature) bool {
	if _, ok := f.(*AssociationEnd); ok && len(a.Ends()) <= 2 && classifierFeatures.Linked(a, f) {
		log.Debug("rejected removal of end {{end}}: association {{association}} requires two ends", "end", f.Name(), "association", a.Name())
		return false
	}
	return a.ClassifierBase.RemoveFeature(f)
}

////////////////////////////////////////////////////////////////////////////////

// AssociationEnd is a structural feature of an association describing
// the role of one participating classifier.
type AssociationEnd struct {
	StructuralFeatureBase
	aggregation AggregationKind
	navigable   bool
}

var _ StructuralFeature = (*AssociationEnd)(nil)

// NewAssociationEnd creates an end of an existing association.
func NewAssociationEnd(owner *Association, name string, vis Visibility, typ Classifier, mult assoc.Multiplicity, aggregation AggregationKind, navigable bool) (*AssociationEnd, error) {
	if owner == nil {
		return nil, assoc.Required("association")
	}
	if !aggregation.IsValid() {
		return nil, invalid("aggregation", aggregation)
	}
	if err := checkStructuralFeature(name, vis, typ, mult); err != nil {
		return nil, err
	}
	if aggregation == AggregationComposite {
		for _, e := range owner.Ends() {
			if e.IsComposite() {
				return nil, invalid("aggregation", "more than one composite end")
			}
		}
	}
	e, err := newAssociationEnd(name, vis, typ, mult)
	if err != nil {
		return nil, err
	}
	e.aggregation = aggregation
	e.navigable = navigable
	if _, err := owner.AddEnd(e); err != nil {
		structuralFeatureTypes.Clear(e)
		return nil, err
	}
	return e, nil
}

func newAssociationEnd(name string, vis Visibility, typ Classifier, mult assoc.Multiplicity) (*AssociationEnd, error) {
	e := &AssociationEnd{aggregation: AggregationNone}
	if err := e.initStructural(e, KindAssociationEnd, name, vis, typ, mult); err != nil {
		return nil, err
	}
	return e, nil
}

// Association returns the owning association or nil.
func (e *AssociationEnd) Association() *Association {
	a, _ := e.Owner().(*Association)
	return a
}

func (e *AssociationEnd) Aggregation() AggregationKind {
	return e.aggregation
}

func (e *AssociationEnd) SetAggregation(k AggregationKind) (AggregationKind, error) {
	if k == "" {
		return e.aggregation, assoc.Required("aggregation")
	}
	if !k.IsValid() {
		return e.aggregation, invalid("aggregation", k)
	}
	if k == AggregationComposite {
		if a := e.Association(); a != nil {
			for _, o := range a.Ends() {
				if o != e && o.IsComposite() {
					return e.aggregation, invalid("aggregation", "more than one composite end")
				}
			}
		}
	}
	old := e.aggregation
	e.aggregation = k
	return old, nil
}

func (e *AssociationEnd) IsComposite() bool {
	return e.aggregation == AggregationComposite
}

func (e *AssociationEnd) IsNavigable() bool {
	return e.navigable
}

func (e *AssociationEnd) SetNavigable(b bool) bool {
	old := e.navigable
	e.navigable = b
	return old
}

// OtherEnds returns the remaining ends of the association.
func (e *AssociationEnd) OtherEnds() []*AssociationEnd {
	a := e.Association()
	if a == nil {
		return nil
	}
	return utils.FilterSlice(a.Ends(), func(o *AssociationEnd) bool { return o != e })
}
