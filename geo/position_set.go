package geo

// PositionSet is a set of visited lattice points. The zero value is not
// usable; construct one with NewPositionSet.
type PositionSet struct {
	m map[Position]struct{}
}

// NewPositionSet returns an empty set seeded with the given points.
func NewPositionSet(seed ...Position) PositionSet {
	s := PositionSet{m: make(map[Position]struct{}, len(seed))}
	for _, p := range seed {
		s.m[p] = struct{}{}
	}
	return s
}

// Add inserts p and reports whether it was absent before.
func (s PositionSet) Add(p Position) bool {
	if _, ok := s.m[p]; ok {
		return false
	}
	s.m[p] = struct{}{}
	return true
}

// Contains reports whether p is in the set.
func (s PositionSet) Contains(p Position) bool {
	_, ok := s.m[p]
	return ok
}

// Len returns the number of distinct positions in the set.
func (s PositionSet) Len() int {
	return len(s.m)
}
