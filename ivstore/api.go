package ivstore

import "github.com/abh/ivstore/interval"

// Add inserts iv, rejecting it when an equal interval (by EqualsInterval)
// is already present, or when iv is nil. It reports whether the interval
// was added.
func (s *Store) Add(iv interval.Interval) bool {
	if iv == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.AddUnique(iv)
}

// AddAllowDuplicates inserts iv unconditionally, even if an equal element
// already exists. A nil iv is ignored.
func (s *Store) AddAllowDuplicates(iv interval.Interval) {
	if iv == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.AddAllowDuplicates(iv)
}

// Remove deletes the first interval equal to target under EqualsInterval.
// It reports whether an element was removed; a nil target removes nothing.
func (s *Store) Remove(target interval.Interval) bool {
	if target == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Remove(target)
}

// Contains reports whether some stored interval equals target under
// EqualsInterval.
func (s *Store) Contains(target interval.Interval) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.Contains(target)
}

// Size reports the current interval count, including any not-yet-finalized
// pending additions and excluding pending deletions.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.Size()
}

// FindOverlaps returns every stored interval intersecting the closed range
// [from, to], appended to out.
func (s *Store) FindOverlaps(from, to int32, out []interval.Interval) []interval.Interval {
	s.mu.Lock() // FindOverlaps may trigger a finalisation pass (§4.6)
	defer s.mu.Unlock()
	return s.engine.FindOverlaps(from, to, out)
}

// GetDepth returns the maximum containment chain length: 0 for an empty
// store, 1 for a store with no nesting.
func (s *Store) GetDepth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.GetDepth()
}

// GetWidth returns the number of top-level (uncontained) intervals.
func (s *Store) GetWidth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.GetWidth()
}

// IsValid runs the engine's structural self-check.
func (s *Store) IsValid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.IsValid()
}

// Revalidate forces a finalisation pass, draining any deferred mutation
// buffer and rebuilding the secondary index.
func (s *Store) Revalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.Revalidate()
}

// Iter enumerates every stored interval in the engine's internal order.
// Not a mutating cursor: it does not support removal during iteration, per
// spec.md §9's iterator contract.
func (s *Store) Iter() []interval.Interval {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.All(nil)
}

// All appends every stored interval, in the engine's internal order, to
// out.
func (s *Store) All(out []interval.Interval) []interval.Interval {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.All(out)
}
