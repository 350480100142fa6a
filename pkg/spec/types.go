package spec

import (
	"github.com/mandelsoft/cwm/pkg/model"
	"github.com/mandelsoft/cwm/pkg/utils"
)

// Specification is the serializable description of a model.
// The model root is a package, or a catalog if Catalog is set.
// All references between elements are qualified names relative
// to the root, without the name of the root itself.
type Specification struct {
	Name       string           `json:"name"`
	Visibility model.Visibility `json:"visibility,omitempty"`
	Catalog    bool             `json:"catalog,omitempty"`

	Content
}

// Digest is a canonical hash of the specification.
func (s *Specification) Digest() string {
	return utils.HashData(s)
}

// ElementSpec holds the attributes common to all elements.
// An empty visibility means public.
type ElementSpec struct {
	Name       string           `json:"name"`
	Visibility model.Visibility `json:"visibility,omitempty"`
}

// Content describes the elements owned by a package.
type Content struct {
	Packages     []PackageSpec     `json:"packages,omitempty"`
	Schemas      []SchemaSpec      `json:"schemas,omitempty"`
	DataTypes    []ElementSpec     `json:"dataTypes,omitempty"`
	Classes      []ClassSpec       `json:"classes,omitempty"`
	Associations []AssociationSpec `json:"associations,omitempty"`
	Constraints  []ConstraintSpec  `json:"constraints,omitempty"`
	Dependencies []DependencySpec  `json:"dependencies,omitempty"`
	Imports      []string          `json:"imports,omitempty"`
}

type PackageSpec struct {
	ElementSpec `json:",inline"`
	Content     `json:",inline"`
}

type ClassSpec struct {
	ElementSpec `json:",inline"`
	Abstract    bool     `json:"abstract,omitempty"`
	Parents     []string `json:"parents,omitempty"`

	Attributes []AttributeSpec `json:"attributes,omitempty"`
	Operations []OperationSpec `json:"operations,omitempty"`

	UniqueKeys       []KeySpec             `json:"uniqueKeys,omitempty"`
	KeyRelationships []KeyRelationshipSpec `json:"keyRelationships,omitempty"`
	Indexes          []IndexSpec           `json:"indexes,omitempty"`
}

type AttributeSpec struct {
	ElementSpec  `json:",inline"`
	Type         string            `json:"type"`
	Multiplicity string            `json:"multiplicity,omitempty"`
	InitialValue *model.Expression `json:"initialValue,omitempty"`
}

type OperationSpec struct {
	ElementSpec `json:",inline"`
	Query       bool            `json:"query,omitempty"`
	Parameters  []ParameterSpec `json:"parameters,omitempty"`
}

type ParameterSpec struct {
	Name         string              `json:"name"`
	Kind         model.ParameterKind `json:"kind,omitempty"`
	Type         string              `json:"type"`
	DefaultValue *model.Expression   `json:"defaultValue,omitempty"`
}

type AssociationSpec struct {
	ElementSpec `json:",inline"`
	Ends        []EndSpec `json:"ends"`
}

// EndSpec describes an association end. Ends are navigable
// unless Navigable is explicitly set to false.
type EndSpec struct {
	ElementSpec  `json:",inline"`
	Type         string                `json:"type"`
	Multiplicity string                `json:"multiplicity,omitempty"`
	Aggregation  model.AggregationKind `json:"aggregation,omitempty"`
	Navigable    *bool                 `json:"navigable,omitempty"`
}

// KeySpec describes a unique key by the names of features
// of its class.
type KeySpec struct {
	ElementSpec `json:",inline"`
	Features    []string `json:"features"`
}

type KeyRelationshipSpec struct {
	ElementSpec `json:",inline"`
	UniqueKey   string   `json:"uniqueKey"`
	Features    []string `json:"features"`
}

type IndexSpec struct {
	ElementSpec  `json:",inline"`
	Sorted       bool                 `json:"sorted,omitempty"`
	Unique       bool                 `json:"unique,omitempty"`
	Partitioning bool                 `json:"partitioning,omitempty"`
	Features     []IndexedFeatureSpec `json:"features"`
}

type IndexedFeatureSpec struct {
	Feature   string `json:"feature"`
	Ascending *bool  `json:"ascending,omitempty"`
}

type ConstraintSpec struct {
	ElementSpec `json:",inline"`
	Language    string   `json:"language,omitempty"`
	Body        string   `json:"body"`
	Elements    []string `json:"elements,omitempty"`
}

type DependencySpec struct {
	ElementSpec `json:",inline"`
	Kind        string   `json:"kind,omitempty"`
	Clients     []string `json:"clients"`
	Suppliers   []string `json:"suppliers"`
}

////////////////////////////////////////////////////////////////////////////////
// relational

type SchemaSpec struct {
	ElementSpec `json:",inline"`
	Tables      []TableSpec    `json:"tables,omitempty"`
	Indexes     []SQLIndexSpec `json:"indexes,omitempty"`
}

type TableSpec struct {
	ElementSpec `json:",inline"`
	Temporary   bool             `json:"temporary,omitempty"`
	Columns     []ColumnSpec     `json:"columns"`
	PrimaryKey  *PrimaryKeySpec  `json:"primaryKey,omitempty"`
	ForeignKeys []ForeignKeySpec `json:"foreignKeys,omitempty"`
}

type ColumnSpec struct {
	ElementSpec `json:",inline"`
	Type        string `json:"type"`
	Nullable    bool   `json:"nullable,omitempty"`
	Length      int    `json:"length,omitempty"`
}

type PrimaryKeySpec struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
}

// ForeignKeySpec refers to the primary key of another table
// given by its qualified name.
type ForeignKeySpec struct {
	Name       string                `json:"name"`
	References string                `json:"references"`
	OnDelete   model.ReferentialRule `json:"onDelete,omitempty"`
	OnUpdate   model.ReferentialRule `json:"onUpdate,omitempty"`
	Columns    []string              `json:"columns"`
}

type SQLIndexSpec struct {
	Name    string               `json:"name"`
	Table   string               `json:"table"`
	Filter  string               `json:"filter,omitempty"`
	Sorted  bool                 `json:"sorted,omitempty"`
	Unique  bool                 `json:"unique,omitempty"`
	Columns []IndexedFeatureSpec `json:"columns"`
}
