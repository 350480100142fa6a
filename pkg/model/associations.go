package model

import (
	"github.com/mandelsoft/cwm/pkg/assoc"
)

// The associations below connect the element types of this package.
// Each association is declared from the side owning or referencing
// the partners, its inverted view is used by the partner side.

var ownership = assoc.New[Namespace, Element]("ownership",
	assoc.End[Namespace, Element]{Role: "ownedElement", Mult: assoc.ZeroOrMore, Slot: func(n Namespace) *assoc.Slot[Element] { return &n.namespaceBase().owned }},
	assoc.End[Element, Namespace]{Role: "namespace", Mult: assoc.ZeroOrOne, Slot: func(e Element) *assoc.Slot[Namespace] { return &e.base().namespace }},
).WithCheck(checkOwnership)

var importedElements = assoc.New[*Package, Element]("import",
	assoc.End[*Package, Element]{Role: "importedElement", Mult: assoc.ZeroOrMore, Slot: func(p *Package) *assoc.Slot[Element] { return &p.imported }},
	assoc.End[Element, *Package]{Role: "importer", Mult: assoc.ZeroOrMore, Slot: func(e Element) *assoc.Slot[*Package] { return &e.base().importers }},
)

var dependencyClients = assoc.New[*Dependency, Element]("clientDependency",
	assoc.End[*Dependency, Element]{Role: "client", Mult: assoc.OneOrMore, Slot: func(d *Dependency) *assoc.Slot[Element] { return &d.clients }},
	assoc.End[Element, *Dependency]{Role: "clientDependency", Mult: assoc.ZeroOrMore, Slot: func(e Element) *assoc.Slot[*Dependency] { return &e.base().clientDeps }},
)

var dependencySuppliers = assoc.New[*Dependency, Element]("supplierDependency",
	assoc.End[*Dependency, Element]{Role: "supplier", Mult: assoc.OneOrMore, Slot: func(d *Dependency) *assoc.Slot[Element] { return &d.suppliers }},
	assoc.End[Element, *Dependency]{Role: "supplierDependency", Mult: assoc.ZeroOrMore, Slot: func(e Element) *assoc.Slot[*Dependency] { return &e.base().supplierDeps }},
)

var constrainedElements = assoc.New[*Constraint, Element]("elementConstraint",
	assoc.End[*Constraint, Element]{Role: "constrainedElement", Mult: assoc.ZeroOrMore.AsOrdered(), Slot: func(c *Constraint) *assoc.Slot[Element] { return &c.elements }},
	assoc.End[Element, *Constraint]{Role: "constraint", Mult: assoc.ZeroOrMore, Slot: func(e Element) *assoc.Slot[*Constraint] { return &e.base().constraints }},
)

////////////////////////////////////////////////////////////////////////////////

var classifierFeatures = assoc.New[Classifier, Feature]("classifierFeature",
	assoc.End[Classifier, Feature]{Role: "feature", Mult: assoc.ZeroOrMore.AsOrdered(), Slot: func(c Classifier) *assoc.Slot[Feature] { return &c.classifierBase().features }},
	assoc.End[Feature, Classifier]{Role: "owner", Mult: assoc.ZeroOrOne, Slot: func(f Feature) *assoc.Slot[Classifier] { return &f.featureBase().owner }},
).WithCheck(checkFeatureOwner)

var structuralFeatureTypes = assoc.New[StructuralFeature, Classifier]("structuralFeatureType",
	assoc.End[StructuralFeature, Classifier]{Role: "type", Mult: assoc.One, Slot: func(f StructuralFeature) *assoc.Slot[Classifier] { return &f.structuralBase().typ }},
	assoc.End[Classifier, StructuralFeature]{Role: "structuralFeature", Mult: assoc.ZeroOrMore, Slot: func(c Classifier) *assoc.Slot[StructuralFeature] { return &c.classifierBase().typedFeatures }},
)

var operationParameters = assoc.New[*Operation, *Parameter]("behavioralFeatureParameter",
	assoc.End[*Operation, *Parameter]{Role: "parameter", Mult: assoc.ZeroOrMore.AsOrdered(), Slot: func(o *Operation) *assoc.Slot[*Parameter] { return &o.parameters }},
	assoc.End[*Parameter, *Operation]{Role: "behavioralFeature", Mult: assoc.ZeroOrOne, Slot: func(p *Parameter) *assoc.Slot[*Operation] { return &p.operation }},
)

var parameterTypes = assoc.New[*Parameter, Classifier]("parameterType",
	assoc.End[*Parameter, Classifier]{Role: "type", Mult: assoc.One, Slot: func(p *Parameter) *assoc.Slot[Classifier] { return &p.typ }},
	assoc.End[Classifier, *Parameter]{Role: "parameter", Mult: assoc.ZeroOrMore, Slot: func(c Classifier) *assoc.Slot[*Parameter] { return &c.classifierBase().typedParameters }},
)

var generalizationChildren = assoc.New[*Generalization, Classifier]("classifierGeneralization",
	assoc.End[*Generalization, Classifier]{Role: "child", Mult: assoc.One, Slot: func(g *Generalization) *assoc.Slot[Classifier] { return &g.child }},
	assoc.End[Classifier, *Generalization]{Role: "generalization", Mult: assoc.ZeroOrMore, Slot: func(c Classifier) *assoc.Slot[*Generalization] { return &c.classifierBase().generalizations }},
).WithCheck(func(g *Generalization, c Classifier) error {
	if p := g.Parent(); p != nil {
		return checkGeneralization(c, p)
	}
	return nil
})

var generalizationParents = assoc.New[*Generalization, Classifier]("parentSpecialization",
	assoc.End[*Generalization, Classifier]{Role: "parent", Mult: assoc.One, Slot: func(g *Generalization) *assoc.Slot[Classifier] { return &g.parent }},
	assoc.End[Classifier, *Generalization]{Role: "specialization", Mult: assoc.ZeroOrMore, Slot: func(c Classifier) *assoc.Slot[*Generalization] { return &c.classifierBase().specializations }},
).WithCheck(func(g *Generalization, p Classifier) error {
	if c := g.Child(); c != nil {
		return checkGeneralization(c, p)
	}
	return nil
})

////////////////////////////////////////////////////////////////////////////////

var uniqueKeyFeatures = assoc.New[*UniqueKey, StructuralFeature]("uniqueFeature",
	assoc.End[*UniqueKey, StructuralFeature]{Role: "feature", Mult: assoc.OneOrMore.AsOrdered(), Slot: func(k *UniqueKey) *assoc.Slot[StructuralFeature] { return &k.features }},
	assoc.End[StructuralFeature, *UniqueKey]{Role: "uniqueKey", Mult: assoc.ZeroOrMore, Slot: func(f StructuralFeature) *assoc.Slot[*UniqueKey] { return &f.structuralBase().uniqueKeys }},
)

var keyRelationshipFeatures = assoc.New[*KeyRelationship, StructuralFeature]("relationshipFeatures",
	assoc.End[*KeyRelationship, StructuralFeature]{Role: "feature", Mult: assoc.OneOrMore.AsOrdered(), Slot: func(k *KeyRelationship) *assoc.Slot[StructuralFeature] { return &k.features }},
	assoc.End[StructuralFeature, *KeyRelationship]{Role: "keyRelationship", Mult: assoc.ZeroOrMore, Slot: func(f StructuralFeature) *assoc.Slot[*KeyRelationship] { return &f.structuralBase().keyRelationships }},
)

var uniqueKeyRelationships = assoc.New[*UniqueKey, *KeyRelationship]("uniqueKeyRelationship",
	assoc.End[*UniqueKey, *KeyRelationship]{Role: "keyRelationship", Mult: assoc.ZeroOrMore, Slot: func(k *UniqueKey) *assoc.Slot[*KeyRelationship] { return &k.relationships }},
	assoc.End[*KeyRelationship, *UniqueKey]{Role: "uniqueKey", Mult: assoc.One, Slot: func(r *KeyRelationship) *assoc.Slot[*UniqueKey] { return &r.uniqueKey }},
)

var indexSpannedClass = assoc.New[*Index, *Class]("indexSpansClass",
	assoc.End[*Index, *Class]{Role: "spannedClass", Mult: assoc.One, Slot: func(i *Index) *assoc.Slot[*Class] { return &i.spannedClass }},
	assoc.End[*Class, *Index]{Role: "index", Mult: assoc.ZeroOrMore, Slot: func(c *Class) *assoc.Slot[*Index] { return &c.indexes }},
)

var indexIndexedFeatures = assoc.New[*Index, *IndexedFeature]("indexedFeatures",
	assoc.End[*Index, *IndexedFeature]{Role: "indexedFeature", Mult: assoc.OneOrMore.AsOrdered(), Slot: func(i *Index) *assoc.Slot[*IndexedFeature] { return &i.indexedFeatures }},
	assoc.End[*IndexedFeature, *Index]{Role: "index", Mult: assoc.One, Slot: func(f *IndexedFeature) *assoc.Slot[*Index] { return &f.index }},
)

var indexedFeatureFeature = assoc.New[*IndexedFeature, StructuralFeature]("indexedFeatureInfo",
	assoc.End[*IndexedFeature, StructuralFeature]{Role: "feature", Mult: assoc.One, Slot: func(f *IndexedFeature) *assoc.Slot[StructuralFeature] { return &f.feature }},
	assoc.End[StructuralFeature, *IndexedFeature]{Role: "indexedFeature", Mult: assoc.ZeroOrMore, Slot: func(f StructuralFeature) *assoc.Slot[*IndexedFeature] { return &f.structuralBase().indexedFeatures }},
)
