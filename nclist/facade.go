package nclist

import "github.com/abh/ivstore/interval"

// Contains reports whether some stored interval equals target under
// EqualsInterval.
func (l *List) Contains(target interval.Interval) bool {
	for _, node := range l.Nodes {
		if node.Interval.EqualsInterval(target) {
			return true
		}
		if node.Sub != nil && node.Sub.Contains(target) {
			return true
		}
	}
	return false
}

// AddUnique inserts iv unless an existing interval already equals it under
// EqualsInterval, reporting whether it was added. This is the facade-level
// "add(interval)" of spec.md §4.2 with allow_duplicates=false.
func (l *List) AddUnique(iv interval.Interval) bool {
	if l.Contains(iv) {
		return false
	}
	l.addNode(iv)
	return true
}

// AddAllowDuplicates inserts iv unconditionally, even if an equal element
// already exists — spec.md §4.2's allow_duplicates=true.
func (l *List) AddAllowDuplicates(iv interval.Interval) {
	l.addNode(iv)
}

// GetDepth is an alias for Depth, named to match the ivstore facade's
// dispatch surface.
func (l *List) GetDepth() int { return l.Depth() }

// GetWidth is an alias for Width, named to match the ivstore facade's
// dispatch surface.
func (l *List) GetWidth() int { return l.Width() }

// Revalidate is a no-op for the NCList engine: unlike flatnest, Add is
// already structurally O(log N) per level with no deferred buffer to
// drain, so there is nothing to finalize.
func (l *List) Revalidate() {}
