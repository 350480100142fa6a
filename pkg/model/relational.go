package model

import (
	"strconv"

	"github.com/mandelsoft/cwm/pkg/assoc"
	"github.com/mandelsoft/cwm/pkg/utils"
)

// The relational resource elements are core elements with
// a relational kind. Their additional attributes are kept
// as tagged values.
const (
	TagTemporary  = "relational.temporary"
	TagNullable   = "relational.nullable"
	TagLength     = "relational.length"
	TagDeleteRule = "relational.deleteRule"
	TagUpdateRule = "relational.updateRule"
	TagFilter     = "relational.filter"
)

// ReferentialRule is the action of a foreign key on
// deletion or update of the referenced row.
type ReferentialRule string

const (
	RuleCascade    ReferentialRule = "cascade"
	RuleRestrict   ReferentialRule = "restrict"
	RuleSetNull    ReferentialRule = "setNull"
	RuleNoAction   ReferentialRule = "noAction"
	RuleSetDefault ReferentialRule = "setDefault"
)

func (r ReferentialRule) IsValid() bool {
	switch r {
	case RuleCascade, RuleRestrict, RuleSetNull, RuleNoAction, RuleSetDefault:
		return true
	}
	return false
}

// IsKind checks the metaclass of an element.
func IsKind(e Element, kind string) bool {
	return !utils.IsNil(e) && e.Kind() == kind
}

func NewCatalog(ns Namespace, name string, vis Visibility) (*Package, error) {
	return newPackage(KindCatalog, ns, name, vis)
}

func NewSchema(catalog Namespace, name string, vis Visibility) (*Package, error) {
	return newPackage(KindSchema, catalog, name, vis)
}

func NewTable(schema Namespace, name string, vis Visibility, temporary bool) (*Class, error) {
	t, err := newClass(KindTable, schema, name, vis, false)
	if err != nil {
		return nil, err
	}
	if temporary {
		t.SetTaggedValue(TagTemporary, "true")
	}
	return t, nil
}

// NewColumn creates a column of a table. A length of zero
// means no length restriction.
func NewColumn(table *Class, name string, vis Visibility, typ Classifier, nullable bool, length int) (*Attribute, error) {
	if table == nil {
		return nil, assoc.Required("table")
	}
	if length < 0 {
		return nil, invalid("length", length)
	}
	mult := assoc.One
	if nullable {
		mult = assoc.ZeroOrOne
	}
	c, err := newAttribute(KindColumn, table, name, vis, typ, mult)
	if err != nil {
		return nil, err
	}
	c.SetTaggedValue(TagNullable, strconv.FormatBool(nullable))
	if length > 0 {
		c.SetTaggedValue(TagLength, strconv.Itoa(length))
	}
	return c, nil
}

// NewPrimaryKey creates the primary key of a table
// for some of its columns.
func NewPrimaryKey(table *Class, name string, columns ...StructuralFeature) (*UniqueKey, error) {
	if table == nil {
		return nil, assoc.Required("table")
	}
	return newUniqueKey(KindPrimaryKey, table, name, Public, columns)
}

// NewForeignKey creates a foreign key of a table referring to
// the unique key of another table.
func NewForeignKey(table *Class, name string, key *UniqueKey, onDelete, onUpdate ReferentialRule, columns ...StructuralFeature) (*KeyRelationship, error) {
	if table == nil {
		return nil, assoc.Required("table")
	}
	for _, r := range []ReferentialRule{onDelete, onUpdate} {
		if r != "" && !r.IsValid() {
			return nil, invalid("referential rule", r)
		}
	}
	fk, err := newKeyRelationship(KindForeignKey, table, name, Public, key, columns)
	if err != nil {
		return nil, err
	}
	fk.SetTaggedValue(TagDeleteRule, string(onDelete))
	fk.SetTaggedValue(TagUpdateRule, string(onUpdate))
	return fk, nil
}

// NewSQLIndex creates an index of a table in an optional namespace.
func NewSQLIndex(ns Namespace, name string, table *Class, filter string, sorted, unique bool, features ...IndexedFeatureSpec) (*Index, error) {
	i, err := newIndex(KindSQLIndex, ns, name, Public, table, sorted, unique, features)
	if err != nil {
		return nil, err
	}
	i.SetTaggedValue(TagFilter, filter)
	return i, nil
}

////////////////////////////////////////////////////////////////////////////////

func IsTemporary(table *Class) bool {
	v, _ := table.TaggedValue(TagTemporary)
	return v == "true"
}

func IsNullable(column StructuralFeature) bool {
	v, _ := column.TaggedValue(TagNullable)
	return v == "true"
}

// Length returns the length of a column or 0 for unrestricted columns.
func Length(column StructuralFeature) int {
	v, ok := column.TaggedValue(TagLength)
	if !ok {
		return 0
	}
	l, _ := strconv.Atoi(v)
	return l
}

func DeleteRule(fk *KeyRelationship) ReferentialRule {
	v, _ := fk.TaggedValue(TagDeleteRule)
	return ReferentialRule(v)
}

func UpdateRule(fk *KeyRelationship) ReferentialRule {
	v, _ := fk.TaggedValue(TagUpdateRule)
	return ReferentialRule(v)
}

func Filter(i *Index) string {
	v, _ := i.TaggedValue(TagFilter)
	return v
}

// Tables returns the tables of a schema.
func Tables(schema Namespace) []*Class {
	return utils.FilterSlice(utils.CastSlice[*Class](schema.OwnedElements()), func(c *Class) bool { return c.Kind() == KindTable })
}

// Columns returns the columns of a table in declaration order.
func Columns(table *Class) []*Attribute {
	return utils.FilterSlice(utils.CastSlice[*Attribute](table.Features()), func(a *Attribute) bool { return a.Kind() == KindColumn })
}

// PrimaryKey returns the primary key of a table or nil.
func PrimaryKey(table *Class) *UniqueKey {
	for _, k := range utils.CastSlice[*UniqueKey](table.OwnedElements()) {
		if k.Kind() == KindPrimaryKey {
			return k
		}
	}
	return nil
}

// ForeignKeys returns the foreign keys of a table.
func ForeignKeys(table *Class) []*KeyRelationship {
	return utils.FilterSlice(utils.CastSlice[*KeyRelationship](table.OwnedElements()), func(r *KeyRelationship) bool { return r.Kind() == KindForeignKey })
}
