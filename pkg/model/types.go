package model

import (
	"slices"
)

// Visibility is the exposure of an element outside of its namespace.
type Visibility string

const (
	Public            Visibility = "public"
	Protected         Visibility = "protected"
	Private           Visibility = "private"
	PackageVisibility Visibility = "package"

	DefaultVisibility = PackageVisibility
)

var visibilities = []Visibility{Public, Protected, Private, PackageVisibility}

func (v Visibility) IsValid() bool {
	return slices.Contains(visibilities, v)
}

func (v Visibility) String() string {
	return string(v)
}

// ParameterKind is the direction of a parameter.
type ParameterKind string

const (
	In     ParameterKind = "in"
	Out    ParameterKind = "out"
	InOut  ParameterKind = "inout"
	Return ParameterKind = "return"
)

func (k ParameterKind) IsValid() bool {
	return k == In || k == Out || k == InOut || k == Return
}

// AggregationKind describes the kind of aggregation
// of an association end.
type AggregationKind string

const (
	AggregationNone      AggregationKind = "none"
	AggregationShared    AggregationKind = "shared"
	AggregationComposite AggregationKind = "composite"
)

func (k AggregationKind) IsValid() bool {
	return k == AggregationNone || k == AggregationShared || k == AggregationComposite
}

// Expression is a textual expression in some language.
type Expression struct {
	Language string `json:"language,omitempty"`
	Body     string `json:"body"`
}

func (e Expression) IsEmpty() bool {
	return e.Body == ""
}

func (e Expression) String() string {
	if e.Language == "" {
		return e.Body
	}
	return "[" + e.Language + "] " + e.Body
}

// Metaclass names reported by Element.Kind.
const (
	KindPackage         = "Package"
	KindClass           = "Class"
	KindDataType        = "DataType"
	KindAssociation     = "Association"
	KindAttribute       = "Attribute"
	KindAssociationEnd  = "AssociationEnd"
	KindOperation       = "Operation"
	KindParameter       = "Parameter"
	KindGeneralization  = "Generalization"
	KindDependency      = "Dependency"
	KindConstraint      = "Constraint"
	KindUniqueKey       = "UniqueKey"
	KindKeyRelationship = "KeyRelationship"
	KindIndex           = "Index"
	KindIndexedFeature  = "IndexedFeature"

	KindCatalog    = "Catalog"
	KindSchema     = "Schema"
	KindTable      = "Table"
	KindColumn     = "Column"
	KindPrimaryKey = "PrimaryKey"
	KindForeignKey = "ForeignKey"
	KindSQLIndex   = "SQLIndex"
)
