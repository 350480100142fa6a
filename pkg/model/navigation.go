package model

import (
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/mandelsoft/cwm/pkg/utils"
)

const DefaultSeparator = "."

// JoinQualifiedName composes a qualified name from a list of names.
// Every name is enclosed by surround.
func JoinQualifiedName(names []string, sep, surround string) string {
	return utils.JoinFunc(names, sep, func(n string) string { return surround + n + surround })
}

// SplitQualifiedName splits a qualified name composed by JoinQualifiedName.
// It returns nil for a malformed name.
func SplitQualifiedName(name, sep, surround string) []string {
	if name == "" {
		return nil
	}
	if surround == "" {
		if sep == "" {
			return []string{name}
		}
		segs := strings.Split(name, sep)
		for _, s := range segs {
			if s == "" {
				return nil
			}
		}
		return segs
	}

	var segs []string
	rest := name
	for {
		if !strings.HasPrefix(rest, surround) {
			return nil
		}
		rest = rest[len(surround):]
		end := strings.Index(rest, surround+sep)
		if end < 0 {
			if !strings.HasSuffix(rest, surround) || len(rest) < len(surround) {
				return nil
			}
			seg := rest[:len(rest)-len(surround)]
			if seg == "" {
				return nil
			}
			return append(segs, seg)
		}
		if end == 0 {
			return nil
		}
		segs = append(segs, rest[:end])
		rest = rest[end+len(surround)+len(sep):]
	}
}

////////////////////////////////////////////////////////////////////////////////

// OwnedElement returns the first direct child of a namespace with
// the given name and type.
func OwnedElement[T Element](ns Namespace, name string) T {
	var _nil T
	if utils.IsNil(ns) {
		return _nil
	}
	for _, e := range ns.OwnedElements() {
		if e.Name() == name {
			if t, ok := e.(T); ok {
				return t
			}
		}
	}
	return _nil
}

// OwnedElementDeep resolves a qualified path relative to a namespace.
// Every segment of the path selects a direct child of the namespace
// selected by the previous segment. Intermediate segments only match
// namespaces, the last one only elements of type T. The first match
// in link order is taken. If a segment cannot be resolved,
// the zero value is returned.
func OwnedElementDeep[T Element](ns Namespace, path, sep, surround string) T {
	var _nil T

	segs := SplitQualifiedName(path, sep, surround)
	if len(segs) == 0 || utils.IsNil(ns) {
		return _nil
	}
	cur := ns
	for _, seg := range segs[:len(segs)-1] {
		cur = OwnedElement[Namespace](cur, seg)
		if cur == nil {
			log.Trace("deep lookup {{path}} failed at {{segment}}", "path", path, "segment", seg)
			return _nil
		}
	}
	return OwnedElement[T](cur, segs[len(segs)-1])
}

// AllContents returns all direct and indirect children of a namespace
// in depth-first order.
func AllContents(ns Namespace) []Element {
	var r []Element
	for _, e := range ns.OwnedElements() {
		r = append(r, e)
		if n, ok := e.(Namespace); ok {
			r = append(r, AllContents(n)...)
		}
	}
	return r
}

// AllVisibleElements returns the direct and indirect children
// of a namespace, which are public in their immediate namespace.
// Non-public namespaces are descended, too.
func AllVisibleElements(ns Namespace) []Element {
	var r []Element
	for _, e := range ns.OwnedElements() {
		if e.Visibility() == Public {
			r = append(r, e)
		}
		if n, ok := e.(Namespace); ok {
			r = append(r, AllVisibleElements(n)...)
		}
	}
	return r
}

// AllSurroundingNamespaces returns the namespaces an element is
// contained in, innermost first.
func AllSurroundingNamespaces(e Element) []Namespace {
	var r []Namespace
	for ns := e.Namespace(); ns != nil; ns = ns.Namespace() {
		r = append(r, ns)
	}
	return r
}

////////////////////////////////////////////////////////////////////////////////

// Suppliers returns the suppliers of all client dependencies
// of an element.
func Suppliers(e Element) []Element {
	var r []Element
	for _, d := range e.ClientDependencies() {
		r = utils.AppendUnique(r, d.SupplierElements()...)
	}
	return r
}

// AllSuppliers returns the transitive closure of the suppliers
// of an element in breadth-first order. The element itself is
// never part of the result, even on cyclic dependencies.
func AllSuppliers(e Element) []Element {
	return closure(e, Suppliers)
}

// Clients returns the clients of all supplier dependencies
// of an element.
func Clients(e Element) []Element {
	var r []Element
	for _, d := range e.SupplierDependencies() {
		r = utils.AppendUnique(r, d.ClientElements()...)
	}
	return r
}

// AllClients returns the transitive closure of the clients
// of an element.
func AllClients(e Element) []Element {
	return closure(e, Clients)
}

// closure collects all elements reachable from start following
// the next function, excluding start.
func closure[T comparable](start T, next func(T) []T) []T {
	var r []T
	visited := sets.New[T](start)
	queue := []T{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range next(cur) {
			if visited.Has(n) {
				continue
			}
			visited.Insert(n)
			r = append(r, n)
			queue = append(queue, n)
		}
	}
	return r
}

////////////////////////////////////////////////////////////////////////////////

// AllParents returns all direct and indirect parents of
// a classifier in breadth-first order.
func AllParents(c Classifier) []Classifier {
	return closure(c, Classifier.Parents)
}

// AllChildren returns all direct and indirect children of
// a classifier in breadth-first order.
func AllChildren(c Classifier) []Classifier {
	return closure(c, Classifier.Children)
}

// AllFeatures returns the own features of a classifier followed
// by the inherited ones.
func AllFeatures(c Classifier) []Feature {
	r := c.Features()
	for _, p := range AllParents(c) {
		r = append(r, p.Features()...)
	}
	return r
}

// FindFeature looks up a feature of type T by name using the
// DefaultSeparator. See FindFeatureWith.
func FindFeature[T Feature](c Classifier, name string) T {
	return FindFeatureWith[T](c, name, DefaultSeparator, "")
}

// FindFeatureWith looks up a feature of type T among the own and
// inherited features of a classifier. A simple name matches the first
// feature found in the own features and then the parents in
// breadth-first order. A qualified name selects the features of the
// classifier in the hierarchy whose qualified name ends with the name
// prefix.
func FindFeatureWith[T Feature](c Classifier, name, sep, surround string) T {
	var _nil T

	segs := SplitQualifiedName(name, sep, surround)
	if len(segs) == 0 || utils.IsNil(c) {
		return _nil
	}
	prefix := segs[:len(segs)-1]
	fname := segs[len(segs)-1]

	for _, cl := range append([]Classifier{c}, AllParents(c)...) {
		if len(prefix) > 0 && !hasPathSuffix(qualifiedPath(cl), prefix) {
			continue
		}
		for _, f := range cl.Features() {
			if f.Name() != fname {
				continue
			}
			if t, ok := f.(T); ok {
				return t
			}
		}
	}
	return _nil
}

func hasPathSuffix(path, suffix []string) bool {
	if len(suffix) > len(path) {
		return false
	}
	off := len(path) - len(suffix)
	for i, s := range suffix {
		if path[off+i] != s {
			return false
		}
	}
	return true
}
