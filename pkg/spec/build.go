package spec

import (
	"fmt"

	"github.com/mandelsoft/cwm/pkg/assoc"
	"github.com/mandelsoft/cwm/pkg/factory"
	"github.com/mandelsoft/cwm/pkg/model"
	"github.com/mandelsoft/cwm/pkg/utils"
)

// Build creates the model described by a specification with the
// given factory and returns the root package.
//
// Elements are created in several passes, so that references
// do not depend on the declaration order: namespaces and classifiers
// first, then features, generalizations, keys and indexes and
// finally key relationships, constraints, dependencies and imports.
func Build(cwm factory.Cwm, s *Specification) (*model.Package, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	b := &builder{cwm: cwm}

	var err error
	if s.Catalog {
		b.root, err = cwm.Resource().CreateCatalog(nil, s.Name, visibility(s.Visibility))
	} else {
		b.root, err = cwm.Foundation().CreatePackage(nil, s.Name, visibility(s.Visibility))
	}
	if err != nil {
		return nil, err
	}

	err = b.declare(b.root, &s.Content)
	if err != nil {
		return nil, err
	}
	for _, pass := range []func() error{b.features, b.generalizations, b.keys, b.relations} {
		if err := pass(); err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name, err)
		}
	}
	log.Info("built model {{name}} with {{count}} elements", "name", s.Name, "count", len(model.AllContents(b.root))+1)
	return b.root, nil
}

func visibility(v model.Visibility) model.Visibility {
	if v == "" {
		return model.Public
	}
	return v
}

type packageScope struct {
	pkg  *model.Package
	spec *Content
}

type classScope struct {
	class *model.Class
	spec  *ClassSpec
}

type schemaScope struct {
	schema *model.Package
	spec   *SchemaSpec
}

type tableScope struct {
	table *model.Class
	spec  *TableSpec
}

type builder struct {
	cwm  factory.Cwm
	root *model.Package

	packages []packageScope
	classes  []classScope
	schemas  []schemaScope
	tables   []tableScope
}

////////////////////////////////////////////////////////////////////////////////
// reference resolution

// Resolve resolves a qualified name relative to a namespace. Features
// are addressed by the qualified name of their classifier followed
// by the feature name.
func Resolve(ns model.Namespace, ref string) (model.Element, error) {
	if e := model.OwnedElementDeep[model.Element](ns, ref, model.DefaultSeparator, ""); e != nil {
		return e, nil
	}
	segs := model.SplitQualifiedName(ref, model.DefaultSeparator, "")
	if len(segs) > 1 {
		path := model.JoinQualifiedName(segs[:len(segs)-1], model.DefaultSeparator, "")
		if c := model.OwnedElementDeep[model.Classifier](ns, path, model.DefaultSeparator, ""); c != nil {
			if f := model.FindFeature[model.Feature](c, segs[len(segs)-1]); f != nil {
				return f, nil
			}
		}
	}
	return nil, fmt.Errorf("element %q not found", ref)
}

func (b *builder) element(ref string) (model.Element, error) {
	return Resolve(b.root, ref)
}

func (b *builder) elements(refs []string) ([]model.Element, error) {
	var list []model.Element
	for _, r := range refs {
		e, err := b.element(r)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, nil
}

func resolve[T model.Element](b *builder, kind, ref string) (T, error) {
	t := model.OwnedElementDeep[T](b.root, ref, model.DefaultSeparator, "")
	if utils.IsNil(t) {
		return t, fmt.Errorf("%s %q not found", kind, ref)
	}
	return t, nil
}

func (b *builder) classifier(ref string) (model.Classifier, error) {
	return resolve[model.Classifier](b, "classifier", ref)
}

func features(c model.Classifier, refs []string) ([]model.StructuralFeature, error) {
	var list []model.StructuralFeature
	for _, r := range refs {
		f := model.FindFeature[model.StructuralFeature](c, r)
		if f == nil {
			return nil, fmt.Errorf("feature %q not found in %s", r, c.Name())
		}
		list = append(list, f)
	}
	return list, nil
}

func indexedFeatures(c model.Classifier, specs []IndexedFeatureSpec) ([]model.IndexedFeatureSpec, error) {
	var list []model.IndexedFeatureSpec
	for _, s := range specs {
		f := model.FindFeature[model.StructuralFeature](c, s.Feature)
		if f == nil {
			return nil, fmt.Errorf("feature %q not found in %s", s.Feature, c.Name())
		}
		list = append(list, model.IndexedFeatureSpec{Feature: f, Ascending: s.Ascending})
	}
	return list, nil
}

func multiplicity(s string, def assoc.Multiplicity) (assoc.Multiplicity, error) {
	if s == "" {
		return def, nil
	}
	return assoc.ParseMultiplicity(s)
}

////////////////////////////////////////////////////////////////////////////////
// passes

// declare creates the namespaces and classifiers.
func (b *builder) declare(ns *model.Package, c *Content) error {
	b.packages = append(b.packages, packageScope{ns, c})

	f := b.cwm.Foundation()
	for i := range c.Packages {
		p := &c.Packages[i]
		pkg, err := f.CreatePackage(ns, p.Name, visibility(p.Visibility))
		if err != nil {
			return fmt.Errorf("package %q: %w", p.Name, err)
		}
		if err := b.declare(pkg, &p.Content); err != nil {
			return fmt.Errorf("package %q: %w", p.Name, err)
		}
	}
	for i := range c.Schemas {
		s := &c.Schemas[i]
		schema, err := b.cwm.Resource().CreateSchema(ns, s.Name, visibility(s.Visibility))
		if err != nil {
			return fmt.Errorf("schema %q: %w", s.Name, err)
		}
		b.schemas = append(b.schemas, schemaScope{schema, s})
		for j := range s.Tables {
			t := &s.Tables[j]
			table, err := b.cwm.Resource().CreateTable(schema, t.Name, visibility(t.Visibility), t.Temporary)
			if err != nil {
				return fmt.Errorf("schema %q: table %q: %w", s.Name, t.Name, err)
			}
			b.tables = append(b.tables, tableScope{table, t})
		}
	}
	for _, d := range c.DataTypes {
		_, err := f.CreateDataType(ns, d.Name, visibility(d.Visibility))
		if err != nil {
			return fmt.Errorf("data type %q: %w", d.Name, err)
		}
	}
	for i := range c.Classes {
		cs := &c.Classes[i]
		cl, err := b.cwm.ObjectModel().CreateClass(ns, cs.Name, visibility(cs.Visibility), cs.Abstract)
		if err != nil {
			return fmt.Errorf("class %q: %w", cs.Name, err)
		}
		b.classes = append(b.classes, classScope{cl, cs})
	}
	return nil
}

// features creates attributes, operations, associations and columns.
func (b *builder) features() error {
	om := b.cwm.ObjectModel()
	for _, s := range b.classes {
		for _, a := range s.spec.Attributes {
			if err := b.attribute(s.class, &a); err != nil {
				return fmt.Errorf("%s: attribute %q: %w", s.class.QualifiedName(), a.Name, err)
			}
		}
		for _, o := range s.spec.Operations {
			if err := b.operation(s.class, &o); err != nil {
				return fmt.Errorf("%s: operation %q: %w", s.class.QualifiedName(), o.Name, err)
			}
		}
	}
	for _, s := range b.packages {
		for _, a := range s.spec.Associations {
			ends, err := b.ends(a.Ends)
			if err != nil {
				return fmt.Errorf("%s: association %q: %w", s.pkg.QualifiedName(), a.Name, err)
			}
			_, err = om.CreateAssociation(s.pkg, a.Name, visibility(a.Visibility), ends...)
			if err != nil {
				return fmt.Errorf("%s: association %q: %w", s.pkg.QualifiedName(), a.Name, err)
			}
		}
	}
	for _, s := range b.tables {
		for _, c := range s.spec.Columns {
			typ, err := b.classifier(c.Type)
			if err == nil {
				_, err = b.cwm.Resource().CreateColumn(s.table, c.Name, visibility(c.Visibility), typ, c.Nullable, c.Length)
			}
			if err != nil {
				return fmt.Errorf("%s: column %q: %w", s.table.QualifiedName(), c.Name, err)
			}
		}
	}
	return nil
}

func (b *builder) attribute(c *model.Class, s *AttributeSpec) error {
	typ, err := b.classifier(s.Type)
	if err != nil {
		return err
	}
	mult, err := multiplicity(s.Multiplicity, assoc.One)
	if err != nil {
		return err
	}
	a, err := b.cwm.ObjectModel().CreateAttribute(c, s.Name, visibility(s.Visibility), typ, mult)
	if err != nil {
		return err
	}
	if s.InitialValue != nil {
		a.SetInitialValue(utils.Pointer(*s.InitialValue))
	}
	return nil
}

func (b *builder) operation(c *model.Class, s *OperationSpec) error {
	om := b.cwm.ObjectModel()
	op, err := om.CreateOperation(c, s.Name, visibility(s.Visibility), s.Query)
	if err != nil {
		return err
	}
	for _, p := range s.Parameters {
		typ, err := b.classifier(p.Type)
		if err != nil {
			return fmt.Errorf("parameter %q: %w", p.Name, err)
		}
		kind := p.Kind
		if kind == "" {
			kind = model.In
		}
		param, err := om.CreateParameter(op, p.Name, kind, typ)
		if err != nil {
			return fmt.Errorf("parameter %q: %w", p.Name, err)
		}
		if p.DefaultValue != nil {
			param.SetDefaultValue(utils.Pointer(*p.DefaultValue))
		}
	}
	return nil
}

func (b *builder) ends(specs []EndSpec) ([]model.EndSpec, error) {
	var ends []model.EndSpec
	for _, e := range specs {
		typ, err := b.classifier(e.Type)
		if err != nil {
			return nil, fmt.Errorf("end %q: %w", e.Name, err)
		}
		mult, err := multiplicity(e.Multiplicity, assoc.ZeroOrMore)
		if err != nil {
			return nil, fmt.Errorf("end %q: %w", e.Name, err)
		}
		aggr := e.Aggregation
		if aggr == "" {
			aggr = model.AggregationNone
		}
		ends = append(ends, model.EndSpec{
			Name:         e.Name,
			Visibility:   visibility(e.Visibility),
			Type:         typ,
			Multiplicity: mult,
			Aggregation:  aggr,
			Navigable:    e.Navigable == nil || *e.Navigable,
		})
	}
	return ends, nil
}

// generalizations links classes to their parents. A generalization
// is named after the child and the parent.
func (b *builder) generalizations() error {
	om := b.cwm.ObjectModel()
	for _, s := range b.classes {
		for _, p := range s.spec.Parents {
			parent, err := b.classifier(p)
			if err == nil {
				_, err = om.CreateGeneralization(s.class.Name()+"->"+parent.Name(), model.Public, s.class, parent)
			}
			if err != nil {
				return fmt.Errorf("%s: parent %q: %w", s.class.QualifiedName(), p, err)
			}
		}
	}
	return nil
}

// keys creates unique keys, primary keys and all indexes.
func (b *builder) keys() error {
	fo := b.cwm.Foundation()
	for _, s := range b.classes {
		for _, k := range s.spec.UniqueKeys {
			list, err := features(s.class, k.Features)
			if err == nil {
				_, err = fo.CreateUniqueKey(s.class, k.Name, visibility(k.Visibility), list...)
			}
			if err != nil {
				return fmt.Errorf("%s: unique key %q: %w", s.class.QualifiedName(), k.Name, err)
			}
		}
		for _, i := range s.spec.Indexes {
			list, err := indexedFeatures(s.class, i.Features)
			var idx *model.Index
			if err == nil {
				idx, err = fo.CreateIndex(s.class, i.Name, visibility(i.Visibility), s.class, i.Sorted, i.Unique, list...)
			}
			if err != nil {
				return fmt.Errorf("%s: index %q: %w", s.class.QualifiedName(), i.Name, err)
			}
			idx.SetPartitioning(i.Partitioning)
		}
	}

	rs := b.cwm.Resource()
	for _, s := range b.tables {
		if pk := s.spec.PrimaryKey; pk != nil {
			list, err := features(s.table, pk.Columns)
			if err == nil {
				_, err = rs.CreatePrimaryKey(s.table, pk.Name, list...)
			}
			if err != nil {
				return fmt.Errorf("%s: primary key %q: %w", s.table.QualifiedName(), pk.Name, err)
			}
		}
	}
	for _, s := range b.schemas {
		for _, i := range s.spec.Indexes {
			table, err := resolve[*model.Class](b, "table", i.Table)
			var list []model.IndexedFeatureSpec
			if err == nil {
				list, err = indexedFeatures(table, i.Columns)
			}
			if err == nil {
				_, err = rs.CreateSQLIndex(s.schema, i.Name, table, i.Filter, i.Sorted, i.Unique, list...)
			}
			if err != nil {
				return fmt.Errorf("%s: index %q: %w", s.schema.QualifiedName(), i.Name, err)
			}
		}
	}
	return nil
}

// relations creates key relationships, foreign keys, constraints,
// dependencies and imports.
func (b *builder) relations() error {
	fo := b.cwm.Foundation()
	for _, s := range b.classes {
		for _, k := range s.spec.KeyRelationships {
			uk, err := resolve[*model.UniqueKey](b, "unique key", k.UniqueKey)
			var list []model.StructuralFeature
			if err == nil {
				list, err = features(s.class, k.Features)
			}
			if err == nil {
				_, err = fo.CreateKeyRelationship(s.class, k.Name, visibility(k.Visibility), uk, list...)
			}
			if err != nil {
				return fmt.Errorf("%s: key relationship %q: %w", s.class.QualifiedName(), k.Name, err)
			}
		}
	}

	for _, s := range b.tables {
		for _, fk := range s.spec.ForeignKeys {
			if err := b.foreignKey(s.table, &fk); err != nil {
				return fmt.Errorf("%s: foreign key %q: %w", s.table.QualifiedName(), fk.Name, err)
			}
		}
	}

	for _, s := range b.packages {
		for _, c := range s.spec.Constraints {
			list, err := b.elements(c.Elements)
			if err == nil {
				_, err = fo.CreateConstraint(s.pkg, c.Name, visibility(c.Visibility), model.Expression{Language: c.Language, Body: c.Body}, list...)
			}
			if err != nil {
				return fmt.Errorf("%s: constraint %q: %w", s.pkg.QualifiedName(), c.Name, err)
			}
		}
		for _, d := range s.spec.Dependencies {
			clients, err := b.elements(d.Clients)
			if err != nil {
				return fmt.Errorf("%s: dependency %q: client: %w", s.pkg.QualifiedName(), d.Name, err)
			}
			suppliers, err := b.elements(d.Suppliers)
			if err != nil {
				return fmt.Errorf("%s: dependency %q: supplier: %w", s.pkg.QualifiedName(), d.Name, err)
			}
			_, err = fo.CreateDependency(s.pkg, d.Name, visibility(d.Visibility), d.Kind, clients, suppliers)
			if err != nil {
				return fmt.Errorf("%s: dependency %q: %w", s.pkg.QualifiedName(), d.Name, err)
			}
		}
		for _, i := range s.spec.Imports {
			e, err := b.element(i)
			if err == nil {
				err = s.pkg.Import(e)
			}
			if err != nil {
				return fmt.Errorf("%s: import: %w", s.pkg.QualifiedName(), err)
			}
		}
	}
	return nil
}

func (b *builder) foreignKey(table *model.Class, s *ForeignKeySpec) error {
	ref, err := resolve[*model.Class](b, "table", s.References)
	if err != nil {
		return err
	}
	pk := model.PrimaryKey(ref)
	if pk == nil {
		return fmt.Errorf("table %q has no primary key", s.References)
	}
	list, err := features(table, s.Columns)
	if err != nil {
		return err
	}
	_, err = b.cwm.Resource().CreateForeignKey(table, s.Name, pk, s.OnDelete, s.OnUpdate, list...)
	return err
}
