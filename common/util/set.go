package util

type Set[V comparable] struct {
	values map[V]bool
}

func NewSet[V comparable]() *Set[V] {
	return &Set[V]{
		values: map[V]bool{},
	}
}

func (s *Set[V]) Add(value V) {
	s.values[value] = true
}

// AddIfAbsent adds the value and reports whether it was not present before.
func (s *Set[V]) AddIfAbsent(value V) bool {
	if s.values[value] {
		return false
	}
	s.values[value] = true
	return true
}

func (s *Set[V]) Contains(value V) bool {
	return s.values[value]
}

func (s *Set[V]) Len() int {
	return len(s.values)
}
