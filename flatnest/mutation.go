package flatnest

import (
	"github.com/abh/ivstore/interval"
	"github.com/abh/ivstore/ivsearch"
)

// Add inserts iv, rejecting it when an equal-by-EqualsInterval element is
// already present. It reports whether the interval was added.
func (e *Engine) Add(iv interval.Interval) bool {
	return e.add(iv, false)
}

// AddUnique is an alias for Add, named to match the ivstore facade's
// dispatch surface (package nclist's duplicate-checking insert is named
// AddUnique, since its unconditional form is already called Add).
func (e *Engine) AddUnique(iv interval.Interval) bool {
	return e.add(iv, false)
}

// AddAllowDuplicates inserts iv unconditionally, even if an equal element
// already exists.
func (e *Engine) AddAllowDuplicates(iv interval.Interval) {
	e.add(iv, true)
}

func (e *Engine) add(iv interval.Interval, allowDuplicates bool) bool {
	if !allowDuplicates && e.Contains(iv) {
		return false
	}

	// Fast path: the new interval naturally extends the sorted tail and
	// there is no pending-add backlog to reorder around it, so it can be
	// placed in sorted order directly — is_sorted stays true, matching
	// spec.md §4.2's "leaves is_sorted true only if ... O(log N)" clause.
	if len(e.pendingAdds) == 0 && (len(e.sorted) == 0 || e.comparator(e.sorted[len(e.sorted)-1], iv) <= 0) {
		e.sorted = append(e.sorted, iv)
	} else {
		e.pendingAdds = append(e.pendingAdds, iv)
		e.isSorted = false
	}

	e.isTainted = true
	e.updateEnvelope(iv)
	return true
}

// Remove deletes the first live interval equal to target under
// EqualsInterval. It reports whether an element was removed.
func (e *Engine) Remove(target interval.Interval) bool {
	for i, iv := range e.pendingAdds {
		if iv.EqualsInterval(target) {
			e.pendingAdds = append(e.pendingAdds[:i], e.pendingAdds[i+1:]...)
			return true
		}
	}
	if i := e.identitySearch(target); i >= 0 {
		e.deleted.Set(i)
		e.isTainted = true
		return true
	}
	return false
}

// Contains reports whether some live interval equals target under
// EqualsInterval.
func (e *Engine) Contains(target interval.Interval) bool {
	for _, iv := range e.pendingAdds {
		if iv.EqualsInterval(target) {
			return true
		}
	}
	return e.identitySearch(target) >= 0
}

// identitySearch locates target in the finalized sorted array via
// spec.md §4.5's identity_search: binary search to target's Begin, then
// widen through the equal-Begin run testing EqualsInterval, skipping
// pending-deleted positions. Returns -1 when absent.
func (e *Engine) identitySearch(target interval.Interval) int {
	i := ivsearch.IdentitySearch(len(e.sorted), target.Begin(),
		func(i int) int32 { return e.sorted[i].Begin() },
		func(i int) bool { return e.sorted[i].EqualsInterval(target) },
		func(i int) bool { return e.deleted.Get(i) },
	)
	if i < 0 {
		return -1
	}
	return i
}
