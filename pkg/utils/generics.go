package utils

import (
	"cmp"
	"slices"
)

func TryCast[T, O any](o O) (T, bool) {
	var i any = o
	t, ok := i.(T)
	return t, ok
}

func Pointer[T any](t T) *T {
	return &t
}

func MapKeys[K comparable, V any](m map[K]V, cmp ...func(a, b K) int) []K {
	r := []K{}

	for k := range m {
		r = append(r, k)
	}
	if len(cmp) > 0 {
		slices.SortFunc(r, cmp[0])
	}
	return r
}

func OrderedMapKeys[K cmp.Ordered, V any](m map[K]V) []K {
	r := MapKeys(m)
	slices.Sort(r)
	return r
}

func JoinFunc[S any](list []S, separator string, f func(S) string) string {
	sep := ""
	r := ""
	for _, e := range list {
		r += sep + f(e)
		sep = separator
	}
	return r
}

func AppendUnique[E comparable, A ~[]E](in A, add ...E) A {
	for _, v := range add {
		if !slices.Contains(in, v) {
			in = append(in, v)
		}
	}
	return in
}

func TransformSlice[E any, A ~[]E, T any](in A, m func(E) T) []T {
	r := make([]T, len(in))
	for i, v := range in {
		r[i] = m(v)
	}
	return r
}

// FilterSlice returns the elements of a slice matching a condition.
// The original order is preserved.
func FilterSlice[E any, A ~[]E](in A, match func(E) bool) []E {
	var r []E
	for _, v := range in {
		if match(v) {
			r = append(r, v)
		}
	}
	return r
}

// CastSlice casts a slice by casting the element types.
// The slice is copied. Elements not implementing T are skipped.
func CastSlice[T any, S ~[]E, E any](s S) []T {
	if s == nil {
		return nil
	}
	t := make([]T, 0, len(s))
	for _, e := range s {
		if c, ok := TryCast[T](e); ok {
			t = append(t, c)
		}
	}
	return t
}
