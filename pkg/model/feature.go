package model

import (
	"fmt"

	"github.com/mandelsoft/cwm/pkg/assoc"
	"github.com/mandelsoft/cwm/pkg/utils"
)

// Feature is a property of a classifier. It is owned by
// at most one classifier.
type Feature interface {
	Element

	Owner() Classifier
	// SetOwner moves the feature to the end of the features of
	// another classifier and returns the previous owner. A nil owner
	// removes the feature from its owner.
	SetOwner(c Classifier) (Classifier, error)

	featureBase() *FeatureBase
}

// FeatureBase implements the Feature part of an element.
type FeatureBase struct {
	ModelElement
	owner assoc.Slot[Classifier]
}

func (f *FeatureBase) featureBase() *FeatureBase {
	return f
}

func (f *FeatureBase) Owner() Classifier {
	return f.owner.First()
}

func (f *FeatureBase) SetOwner(c Classifier) (Classifier, error) {
	old := f.owner.First()
	if utils.IsNil(c) && old != nil {
		// the owner may restrict the removal of its features
		if !old.RemoveFeature(f.self.(Feature)) {
			return nil, fmt.Errorf("%s: owner: %w", classifierFeatures.Name(), assoc.ErrLowerBound)
		}
		return old, nil
	}
	return classifierFeatures.Inverted().Set(f.self.(Feature), c)
}

// Container is the owner of the feature,
// or its namespace if it has no owner.
func (f *FeatureBase) Container() Element {
	if o := f.owner.First(); o != nil {
		return o
	}
	return f.ModelElement.Container()
}

// checkFeatureOwner restricts the features of associations to
// association ends. An end cannot leave an association with
// only two ends.
func checkFeatureOwner(c Classifier, f Feature) error {
	if ns := f.Namespace(); ns != nil {
		return fmt.Errorf("feature %q already owned by namespace %s: %w", f.Name(), ns.QualifiedName(), ErrInvalid)
	}
	end, isEnd := f.(*AssociationEnd)
	a, isAssociation := c.(*Association)
	if isEnd != isAssociation {
		return fmt.Errorf("%s %q cannot be a feature of %s %s: %w", f.Kind(), f.Name(), c.Kind(), c.Name(), ErrInvalid)
	}
	if !isEnd {
		return nil
	}
	if end.IsComposite() {
		for _, o := range a.Ends() {
			if o.IsComposite() {
				return invalid("aggregation", "more than one composite end")
			}
		}
	}
	if prev := end.Association(); prev != nil && len(prev.Ends()) <= 2 {
		log.Debug("rejected move of end {{end}}: association {{association}} requires two ends", "end", end.Name(), "association", prev.Name())
		return fmt.Errorf("association %s requires two ends: %w", prev.Name(), ErrLowerBound)
	}
	return nil
}

// placeFeature adds a new feature to an optional owner.
func placeFeature(owner Classifier, f Feature) error {
	if utils.IsNil(owner) {
		return nil
	}
	_, err := classifierFeatures.Link(owner, f)
	return err
}

////////////////////////////////////////////////////////////////////////////////

// StructuralFeature is a feature describing the state of an instance.
// It always has a type.
type StructuralFeature interface {
	Feature

	Type() Classifier
	SetType(c Classifier) (Classifier, error)
	Multiplicity() assoc.Multiplicity
	SetMultiplicity(m assoc.Multiplicity) (assoc.Multiplicity, error)
	IsChangeable() bool
	SetChangeable(b bool) bool

	// UniqueKeys returns the unique keys using this feature.
	UniqueKeys() []*UniqueKey
	// KeyRelationships returns the key relationships using this feature.
	KeyRelationships() []*KeyRelationship
	// IndexedFeatures returns the index entries using this feature.
	IndexedFeatures() []*IndexedFeature

	structuralBase() *StructuralFeatureBase
}

// StructuralFeatureBase implements the StructuralFeature part of an element.
type StructuralFeatureBase struct {
	FeatureBase
	multiplicity assoc.Multiplicity
	changeable   bool

	typ              assoc.Slot[Classifier]
	uniqueKeys       assoc.Slot[*UniqueKey]
	keyRelationships assoc.Slot[*KeyRelationship]
	indexedFeatures  assoc.Slot[*IndexedFeature]
}

func (s *StructuralFeatureBase) structuralBase() *StructuralFeatureBase {
	return s
}

func (s *StructuralFeatureBase) sf() StructuralFeature {
	return s.self.(StructuralFeature)
}

func checkStructuralFeature(name string, vis Visibility, typ Classifier, mult assoc.Multiplicity) error {
	if err := checkElement(name, vis); err != nil {
		return err
	}
	if utils.IsNil(typ) {
		return assoc.Required("type")
	}
	if err := mult.Validate(); err != nil {
		return invalid("multiplicity", mult.String())
	}
	return nil
}

// initStructural sets up a structural feature after its checks succeeded.
func (s *StructuralFeatureBase) initStructural(self StructuralFeature, kind, name string, vis Visibility, typ Classifier, mult assoc.Multiplicity) error {
	s.init(self, kind, name, vis)
	s.multiplicity = mult
	s.changeable = true
	_, err := structuralFeatureTypes.Link(self, typ)
	return err
}

func (s *StructuralFeatureBase) Type() Classifier {
	return s.typ.First()
}

func (s *StructuralFeatureBase) SetType(c Classifier) (Classifier, error) {
	return structuralFeatureTypes.Set(s.sf(), c)
}

func (s *StructuralFeatureBase) Multiplicity() assoc.Multiplicity {
	return s.multiplicity
}

func (s *StructuralFeatureBase) SetMultiplicity(m assoc.Multiplicity) (assoc.Multiplicity, error) {
	if err := m.Validate(); err != nil {
		return s.multiplicity, invalid("multiplicity", m.String())
	}
	old := s.multiplicity
	s.multiplicity = m
	return old, nil
}

func (s *StructuralFeatureBase) IsChangeable() bool {
	return s.changeable
}

func (s *StructuralFeatureBase) SetChangeable(b bool) bool {
	old := s.changeable
	s.changeable = b
	return old
}

func (s *StructuralFeatureBase) UniqueKeys() []*UniqueKey {
	return s.uniqueKeys.List()
}

func (s *StructuralFeatureBase) KeyRelationships() []*KeyRelationship {
	return s.keyRelationships.List()
}

func (s *StructuralFeatureBase) IndexedFeatures() []*IndexedFeature {
	return s.indexedFeatures.List()
}

////////////////////////////////////////////////////////////////////////////////

// Attribute is a named slot of the instances of a classifier.
type Attribute struct {
	StructuralFeatureBase
	initialValue *Expression
}

var _ StructuralFeature = (*Attribute)(nil)

// NewAttribute creates an attribute of the given type appended to
// the features of an optional owner.
func NewAttribute(owner Classifier, name string, vis Visibility, typ Classifier, mult assoc.Multiplicity) (*Attribute, error) {
	return newAttribute(KindAttribute, owner, name, vis, typ, mult)
}

func newAttribute(kind string, owner Classifier, name string, vis Visibility, typ Classifier, mult assoc.Multiplicity) (*Attribute, error) {
	if err := checkStructuralFeature(name, vis, typ, mult); err != nil {
		return nil, err
	}
	a := &Attribute{}
	if err := a.initStructural(a, kind, name, vis, typ, mult); err != nil {
		return nil, err
	}
	if err := placeFeature(owner, a); err != nil {
		structuralFeatureTypes.Clear(a)
		return nil, err
	}
	return a, nil
}

func (a *Attribute) InitialValue() *Expression {
	return a.initialValue
}

func (a *Attribute) SetInitialValue(e *Expression) *Expression {
	old := a.initialValue
	a.initialValue = e
	return old
}

////////////////////////////////////////////////////////////////////////////////

// Operation is a behavioral feature with an ordered list of parameters.
type Operation struct {
	FeatureBase
	query      bool
	parameters assoc.Slot[*Parameter]
}

var _ Feature = (*Operation)(nil)

func NewOperation(owner Classifier, name string, vis Visibility, query bool) (*Operation, error) {
	if err := checkElement(name, vis); err != nil {
		return nil, err
	}
	o := &Operation{}
	o.init(o, KindOperation, name, vis)
	o.query = query
	if err := placeFeature(owner, o); err != nil {
		return nil, err
	}
	return o, nil
}

// IsQuery reports an operation without side effects.
func (o *Operation) IsQuery() bool {
	return o.query
}

func (o *Operation) SetQuery(b bool) bool {
	old := o.query
	o.query = b
	return old
}

func (o *Operation) Parameters() []*Parameter {
	return o.parameters.List()
}

// AddParameter appends a parameter and returns its previous operation.
func (o *Operation) AddParameter(p *Parameter) (*Operation, error) {
	prev, err := operationParameters.Link(o, p)
	return prev.A, err
}

func (o *Operation) InsertParameter(p *Parameter, pos int) (*Operation, error) {
	prev, err := operationParameters.Insert(o, p, pos)
	return prev.A, err
}

func (o *Operation) RemoveParameter(p *Parameter) bool {
	return operationParameters.Unlink(o, p)
}

// ParametersOfKind returns the parameters of the given kind.
func (o *Operation) ParametersOfKind(k ParameterKind) []*Parameter {
	return utils.FilterSlice(o.parameters.List(), func(p *Parameter) bool { return p.kind == k })
}

////////////////////////////////////////////////////////////////////////////////

// Parameter is an in, out or return value of an operation.
type Parameter struct {
	ModelElement
	kind         ParameterKind
	defaultValue *Expression

	operation assoc.Slot[*Operation]
	typ       assoc.Slot[Classifier]
}

var _ Element = (*Parameter)(nil)

// NewParameter creates a parameter appended to an optional operation.
func NewParameter(op *Operation, name string, kind ParameterKind, typ Classifier) (*Parameter, error) {
	if err := checkElement(name, DefaultVisibility); err != nil {
		return nil, err
	}
	if kind == "" {
		return nil, assoc.Required("kind")
	}
	if !kind.IsValid() {
		return nil, invalid("parameter kind", kind)
	}
	if utils.IsNil(typ) {
		return nil, assoc.Required("type")
	}
	p := &Parameter{kind: kind}
	p.init(p, KindParameter, name, DefaultVisibility)
	if _, err := parameterTypes.Link(p, typ); err != nil {
		return nil, err
	}
	if op != nil {
		if _, err := operationParameters.Link(op, p); err != nil {
			parameterTypes.Clear(p)
			return nil, err
		}
	}
	return p, nil
}

func (p *Parameter) ParameterKind() ParameterKind {
	return p.kind
}

func (p *Parameter) SetParameterKind(k ParameterKind) (ParameterKind, error) {
	if k == "" {
		return p.kind, assoc.Required("kind")
	}
	if !k.IsValid() {
		return p.kind, invalid("parameter kind", k)
	}
	old := p.kind
	p.kind = k
	return old, nil
}

func (p *Parameter) Operation() *Operation {
	return p.operation.First()
}

func (p *Parameter) Type() Classifier {
	return p.typ.First()
}

func (p *Parameter) SetType(c Classifier) (Classifier, error) {
	return parameterTypes.Set(p, c)
}

func (p *Parameter) DefaultValue() *Expression {
	return p.defaultValue
}

func (p *Parameter) SetDefaultValue(e *Expression) *Expression {
	old := p.defaultValue
	p.defaultValue = e
	return old
}

// Container is the operation of the parameter.
func (p *Parameter) Container() Element {
	if o := p.operation.First(); o != nil {
		return o
	}
	return p.ModelElement.Container()
}
