package fun

import (
	"github.com/mandelsoft/cwm/pkg/assoc"
	"github.com/mandelsoft/cwm/pkg/factory"
	"github.com/mandelsoft/cwm/pkg/model"
)

type foundation Cwm

var _ factory.FoundationPackage = (*foundation)(nil)

func (f *foundation) cwm() *Cwm {
	return (*Cwm)(f)
}

func (f *foundation) CreatePackage(ns model.Namespace, name string, vis model.Visibility) (*model.Package, error) {
	p, err := model.NewPackage(ns, name, vis)
	return created(f.cwm(), p, err)
}

func (f *foundation) CreateDataType(ns model.Namespace, name string, vis model.Visibility) (*model.DataType, error) {
	t, err := model.NewDataType(ns, name, vis)
	return created(f.cwm(), t, err)
}

func (f *foundation) CreateConstraint(ns model.Namespace, name string, vis model.Visibility, body model.Expression, elements ...model.Element) (*model.Constraint, error) {
	c, err := model.NewConstraint(ns, name, vis, body, elements...)
	return created(f.cwm(), c, err)
}

func (f *foundation) CreateDependency(ns model.Namespace, name string, vis model.Visibility, kind string, clients, suppliers []model.Element) (*model.Dependency, error) {
	d, err := model.NewDependency(ns, name, vis, kind, clients, suppliers)
	return created(f.cwm(), d, err)
}

func (f *foundation) CreateUniqueKey(ns model.Namespace, name string, vis model.Visibility, features ...model.StructuralFeature) (*model.UniqueKey, error) {
	k, err := model.NewUniqueKey(ns, name, vis, features...)
	return created(f.cwm(), k, err)
}

func (f *foundation) CreateKeyRelationship(ns model.Namespace, name string, vis model.Visibility, key *model.UniqueKey, features ...model.StructuralFeature) (*model.KeyRelationship, error) {
	r, err := model.NewKeyRelationship(ns, name, vis, key, features...)
	return created(f.cwm(), r, err)
}

func (f *foundation) CreateIndex(ns model.Namespace, name string, vis model.Visibility, spanned *model.Class, sorted, unique bool, features ...model.IndexedFeatureSpec) (*model.Index, error) {
	i, err := model.NewIndex(ns, name, vis, spanned, sorted, unique, features...)
	return createdIndex(f.cwm(), i, err)
}

////////////////////////////////////////////////////////////////////////////////

type objectModel Cwm

var _ factory.ObjectModelPackage = (*objectModel)(nil)

func (o *objectModel) cwm() *Cwm {
	return (*Cwm)(o)
}

func (o *objectModel) CreateClass(ns model.Namespace, name string, vis model.Visibility, abstract bool) (*model.Class, error) {
	c, err := model.NewClass(ns, name, vis, abstract)
	return created(o.cwm(), c, err)
}

func (o *objectModel) CreateAttribute(owner model.Classifier, name string, vis model.Visibility, typ model.Classifier, mult assoc.Multiplicity) (*model.Attribute, error) {
	a, err := model.NewAttribute(owner, name, vis, typ, mult)
	return created(o.cwm(), a, err)
}

func (o *objectModel) CreateOperation(owner model.Classifier, name string, vis model.Visibility, query bool) (*model.Operation, error) {
	op, err := model.NewOperation(owner, name, vis, query)
	return created(o.cwm(), op, err)
}

func (o *objectModel) CreateParameter(op *model.Operation, name string, kind model.ParameterKind, typ model.Classifier) (*model.Parameter, error) {
	p, err := model.NewParameter(op, name, kind, typ)
	return created(o.cwm(), p, err)
}

func (o *objectModel) CreateGeneralization(name string, vis model.Visibility, child, parent model.Classifier) (*model.Generalization, error) {
	g, err := model.NewGeneralization(name, vis, child, parent)
	return created(o.cwm(), g, err)
}

func (o *objectModel) CreateAssociation(ns model.Namespace, name string, vis model.Visibility, ends ...model.EndSpec) (*model.Association, error) {
	a, err := model.NewAssociation(ns, name, vis, ends...)
	a, err = created(o.cwm(), a, err)
	if err == nil {
		for _, e := range a.Ends() {
			o.extent.Add(e)
		}
	}
	return a, err
}

func (o *objectModel) CreateAssociationEnd(owner *model.Association, name string, vis model.Visibility, typ model.Classifier, mult assoc.Multiplicity, aggregation model.AggregationKind, navigable bool) (*model.AssociationEnd, error) {
	e, err := model.NewAssociationEnd(owner, name, vis, typ, mult, aggregation, navigable)
	return created(o.cwm(), e, err)
}

////////////////////////////////////////////////////////////////////////////////

type resource Cwm

var _ factory.ResourcePackage = (*resource)(nil)

func (r *resource) cwm() *Cwm {
	return (*Cwm)(r)
}

func (r *resource) CreateCatalog(ns model.Namespace, name string, vis model.Visibility) (*model.Package, error) {
	c, err := model.NewCatalog(ns, name, vis)
	return created(r.cwm(), c, err)
}

func (r *resource) CreateSchema(catalog model.Namespace, name string, vis model.Visibility) (*model.Package, error) {
	s, err := model.NewSchema(catalog, name, vis)
	return created(r.cwm(), s, err)
}

func (r *resource) CreateTable(schema model.Namespace, name string, vis model.Visibility, temporary bool) (*model.Class, error) {
	t, err := model.NewTable(schema, name, vis, temporary)
	return created(r.cwm(), t, err)
}

func (r *resource) CreateColumn(table *model.Class, name string, vis model.Visibility, typ model.Classifier, nullable bool, length int) (*model.Attribute, error) {
	c, err := model.NewColumn(table, name, vis, typ, nullable, length)
	return created(r.cwm(), c, err)
}

func (r *resource) CreatePrimaryKey(table *model.Class, name string, columns ...model.StructuralFeature) (*model.UniqueKey, error) {
	k, err := model.NewPrimaryKey(table, name, columns...)
	return created(r.cwm(), k, err)
}

func (r *resource) CreateForeignKey(table *model.Class, name string, key *model.UniqueKey, onDelete, onUpdate model.ReferentialRule, columns ...model.StructuralFeature) (*model.KeyRelationship, error) {
	k, err := model.NewForeignKey(table, name, key, onDelete, onUpdate, columns...)
	return created(r.cwm(), k, err)
}

func (r *resource) CreateSQLIndex(ns model.Namespace, name string, table *model.Class, filter string, sorted, unique bool, features ...model.IndexedFeatureSpec) (*model.Index, error) {
	i, err := model.NewSQLIndex(ns, name, table, filter, sorted, unique, features...)
	return createdIndex(r.cwm(), i, err)
}
