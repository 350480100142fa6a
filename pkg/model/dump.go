package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/mandelsoft/cwm/pkg/utils"
)

// Dump writes a human readable description of an element
// and all its contents.
func Dump(w io.Writer, e Element) {
	dump(w, "", e)
}

func dump(w io.Writer, gap string, e Element) {
	fmt.Fprintf(w, "%s- %s %s (%s)\n", gap, e.Kind(), e.Name(), e.Visibility())
	gap += "  "
	for _, t := range e.Tags() {
		v, _ := e.TaggedValue(t)
		fmt.Fprintf(w, "%s%s: %s\n", gap, t, v)
	}

	switch o := e.(type) {
	case *Generalization:
		fmt.Fprintf(w, "%sparent: %s\n", gap, o.Parent().QualifiedName())
	case *Dependency:
		if o.DependencyKind() != "" {
			fmt.Fprintf(w, "%skind: %s\n", gap, o.DependencyKind())
		}
		fmt.Fprintf(w, "%sclients: %s\n", gap, names(o.ClientElements()))
		fmt.Fprintf(w, "%ssuppliers: %s\n", gap, names(o.SupplierElements()))
	case *Constraint:
		fmt.Fprintf(w, "%sbody: %s\n", gap, o.Body())
		fmt.Fprintf(w, "%selements: %s\n", gap, names(o.ConstrainedElements()))
	case *UniqueKey:
		fmt.Fprintf(w, "%sfeatures: %s\n", gap, names(o.Features()))
	case *KeyRelationship:
		fmt.Fprintf(w, "%sunique key: %s\n", gap, o.UniqueKey().QualifiedName())
		fmt.Fprintf(w, "%sfeatures: %s\n", gap, names(o.Features()))
	case *Index:
		fmt.Fprintf(w, "%sspanned class: %s\n", gap, o.SpannedClass().QualifiedName())
		fmt.Fprintf(w, "%ssorted: %t, unique: %t\n", gap, o.IsSorted(), o.IsUnique())
		fmt.Fprintf(w, "%sindexed features:\n", gap)
		for _, f := range o.IndexedFeatures() {
			order := ""
			if a := f.IsAscending(); a != nil {
				order = " descending"
				if *a {
					order = " ascending"
				}
			}
			fmt.Fprintf(w, "%s- %s%s\n", gap, f.Feature().Name(), order)
		}
	case *Package:
		if len(o.ImportedElements()) > 0 {
			fmt.Fprintf(w, "%simports: %s\n", gap, names(o.ImportedElements()))
		}
	}

	if c, ok := e.(Classifier); ok {
		if c.IsAbstract() {
			fmt.Fprintf(w, "%sabstract\n", gap)
		}
		if len(c.Parents()) > 0 {
			fmt.Fprintf(w, "%sparents: %s\n", gap, names(c.Parents()))
		}
		if len(c.Features()) > 0 {
			fmt.Fprintf(w, "%sfeatures:\n", gap)
			for _, f := range c.Features() {
				dumpFeature(w, gap, f)
			}
		}
	}
	if len(e.Constraints()) > 0 {
		fmt.Fprintf(w, "%sconstraints: %s\n", gap, names(e.Constraints()))
	}
	if len(e.ClientDependencies()) > 0 {
		fmt.Fprintf(w, "%ssuppliers: %s\n", gap, names(e.Suppliers()))
	}
	if ns, ok := e.(Namespace); ok {
		for _, o := range ns.OwnedElements() {
			dump(w, gap, o)
		}
	}
}

func dumpFeature(w io.Writer, gap string, f Feature) {
	switch o := f.(type) {
	case *AssociationEnd:
		fmt.Fprintf(w, "%s- %s: %s[%s] %s", gap, o.Name(), o.Type().QualifiedName(), o.Multiplicity(), o.Aggregation())
		if o.IsNavigable() {
			fmt.Fprint(w, " navigable")
		}
		fmt.Fprintln(w)
	case StructuralFeature:
		fmt.Fprintf(w, "%s- %s %s: %s[%s]\n", gap, o.Kind(), o.Name(), o.Type().QualifiedName(), o.Multiplicity())
	case *Operation:
		params := utils.TransformSlice(o.Parameters(), func(p *Parameter) string {
			return fmt.Sprintf("%s %s %s", p.ParameterKind(), p.Name(), p.Type().QualifiedName())
		})
		fmt.Fprintf(w, "%s- %s %s(%s)\n", gap, o.Kind(), o.Name(), strings.Join(params, ", "))
	default:
		fmt.Fprintf(w, "%s- %s %s\n", gap, f.Kind(), f.Name())
	}
}

func names[E Element](list []E) string {
	return strings.Join(utils.TransformSlice(list, func(e E) string { return e.QualifiedName() }), ", ")
}
