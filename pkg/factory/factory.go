package factory

import (
	"github.com/mandelsoft/cwm/pkg/assoc"
	"github.com/mandelsoft/cwm/pkg/extent"
	"github.com/mandelsoft/cwm/pkg/model"
)

// Cwm is the entry point to create warehouse metamodel elements.
// All elements created by the packages of a Cwm are added
// to its extent.
type Cwm interface {
	// Name is the registration key of the implementation.
	Name() string

	Foundation() FoundationPackage
	ObjectModel() ObjectModelPackage
	Resource() ResourcePackage

	Extent() *extent.Extent
}

// FoundationPackage creates the elements of the foundation
// packages, like data types, constraints, dependencies, keys and
// indexes.
type FoundationPackage interface {
	CreatePackage(ns model.Namespace, name string, vis model.Visibility) (*model.Package, error)
	CreateDataType(ns model.Namespace, name string, vis model.Visibility) (*model.DataType, error)
	CreateConstraint(ns model.Namespace, name string, vis model.Visibility, body model.Expression, elements ...model.Element) (*model.Constraint, error)
	CreateDependency(ns model.Namespace, name string, vis model.Visibility, kind string, clients, suppliers []model.Element) (*model.Dependency, error)

	CreateUniqueKey(ns model.Namespace, name string, vis model.Visibility, features ...model.StructuralFeature) (*model.UniqueKey, error)
	CreateKeyRelationship(ns model.Namespace, name string, vis model.Visibility, key *model.UniqueKey, features ...model.StructuralFeature) (*model.KeyRelationship, error)
	CreateIndex(ns model.Namespace, name string, vis model.Visibility, spanned *model.Class, sorted, unique bool, features ...model.IndexedFeatureSpec) (*model.Index, error)
}

// ObjectModelPackage creates the elements of the object model,
// like classes, features and relationships.
type ObjectModelPackage interface {
	CreateClass(ns model.Namespace, name string, vis model.Visibility, abstract bool) (*model.Class, error)
	CreateAttribute(owner model.Classifier, name string, vis model.Visibility, typ model.Classifier, mult assoc.Multiplicity) (*model.Attribute, error)
	CreateOperation(owner model.Classifier, name string, vis model.Visibility, query bool) (*model.Operation, error)
	CreateParameter(op *model.Operation, name string, kind model.ParameterKind, typ model.Classifier) (*model.Parameter, error)
	CreateGeneralization(name string, vis model.Visibility, child, parent model.Classifier) (*model.Generalization, error)
	CreateAssociation(ns model.Namespace, name string, vis model.Visibility, ends ...model.EndSpec) (*model.Association, error)
	CreateAssociationEnd(owner *model.Association, name string, vis model.Visibility, typ model.Classifier, mult assoc.Multiplicity, aggregation model.AggregationKind, navigable bool) (*model.AssociationEnd, error)
}

// ResourcePackage creates the elements of the relational
// resource package.
type ResourcePackage interface {
	CreateCatalog(ns model.Namespace, name string, vis model.Visibility) (*model.Package, error)
	CreateSchema(catalog model.Namespace, name string, vis model.Visibility) (*model.Package, error)
	CreateTable(schema model.Namespace, name string, vis model.Visibility, temporary bool) (*model.Class, error)
	CreateColumn(table *model.Class, name string, vis model.Visibility, typ model.Classifier, nullable bool, length int) (*model.Attribute, error)
	CreatePrimaryKey(table *model.Class, name string, columns ...model.StructuralFeature) (*model.UniqueKey, error)
	CreateForeignKey(table *model.Class, name string, key *model.UniqueKey, onDelete, onUpdate model.ReferentialRule, columns ...model.StructuralFeature) (*model.KeyRelationship, error)
	CreateSQLIndex(ns model.Namespace, name string, table *model.Class, filter string, sorted, unique bool, features ...model.IndexedFeatureSpec) (*model.Index, error)
}
