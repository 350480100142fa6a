package assoc

import (
	"slices"
)

// Slot stores the partners of one participant for one end
// of an association. It is only modified by an Association.
// The zero value is an empty slot.
type Slot[T comparable] struct {
	items []T
}

func (s *Slot[T]) Len() int {
	return len(s.items)
}

// List returns a copy of the partners in link order.
func (s *Slot[T]) List() []T {
	return slices.Clone(s.items)
}

// First returns the first partner or the zero value.
func (s *Slot[T]) First() T {
	var _nil T
	if len(s.items) == 0 {
		return _nil
	}
	return s.items[0]
}

func (s *Slot[T]) Contains(t T) bool {
	return slices.Contains(s.items, t)
}

func (s *Slot[T]) Index(t T) int {
	return slices.Index(s.items, t)
}

// insert adds a partner at the given position.
// A negative or out of range position appends.
func (s *Slot[T]) insert(t T, pos int) {
	if pos < 0 || pos >= len(s.items) {
		s.items = append(s.items, t)
		return
	}
	s.items = slices.Insert(s.items, pos, t)
}

func (s *Slot[T]) remove(t T) bool {
	i := slices.Index(s.items, t)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

// move relocates an existing partner to the given position.
func (s *Slot[T]) move(t T, pos int) {
	if s.remove(t) {
		s.insert(t, pos)
	}
}
