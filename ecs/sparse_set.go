package ecs

// sparseSet is a cache-friendly storage for components keyed by entity slot.
// Values are held as `any` so one world can own stores of every type; the
// typed accessors in generics.go do the assertion.
type sparseSet struct {
	denseIDs    []entityID
	denseValues []any
	sparse      []int
}

func newSparseSet() *sparseSet {
	return &sparseSet{}
}

func (s *sparseSet) has(id entityID) bool {
	if s == nil || id == 0 || int(id) > len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.denseIDs) && s.denseIDs[idx] == id
}

func (s *sparseSet) get(id entityID) (any, bool) {
	if !s.has(id) {
		return nil, false
	}
	return s.denseValues[s.sparse[id-1]], true
}

func (s *sparseSet) set(id entityID, v any) {
	if s == nil || id == 0 {
		return
	}
	for int(id) > len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.has(id) {
		s.denseValues[s.sparse[id-1]] = v
		return
	}
	s.denseIDs = append(s.denseIDs, id)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseIDs) - 1
}

func (s *sparseSet) remove(id entityID) bool {
	if !s.has(id) {
		return false
	}
	idx := s.sparse[id-1]
	last := len(s.denseIDs) - 1
	lastID := s.denseIDs[last]

	s.denseIDs[idx] = lastID
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[lastID-1] = idx

	s.denseIDs = s.denseIDs[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[id-1] = -1
	return true
}

func (s *sparseSet) len() int {
	if s == nil {
		return 0
	}
	return len(s.denseIDs)
}

// ids returns a copy of the dense id list so callers may mutate the set
// while iterating.
func (s *sparseSet) ids() []entityID {
	if s == nil || len(s.denseIDs) == 0 {
		return nil
	}
	return append([]entityID(nil), s.denseIDs...)
}
