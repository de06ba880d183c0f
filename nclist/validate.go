package nclist

import "github.com/abh/ivstore/interval"

// IsValid checks the structural invariants described in spec.md §4.3: each
// sub-list is ordered by Begin ascending (under the configured
// comparator), every child lies within its parent's range, and no child
// properly contains or is properly contained by an immediate sibling.
func (l *List) IsValid() bool {
	return l.isValidWithBound(nil)
}

func (l *List) isValidWithBound(parent interval.Interval) bool {
	for i, node := range l.Nodes {
		if parent != nil && !interval.Contains(parent, node.Interval) {
			return false
		}
		if i > 0 {
			prev := l.Nodes[i-1].Interval
			if l.Comparator(prev, node.Interval) > 0 {
				return false
			}
			if interval.ProperlyContains(prev, node.Interval) || interval.ProperlyContains(node.Interval, prev) {
				return false
			}
		}
		if node.Sub != nil && !node.Sub.isValidWithBound(node.Interval) {
			return false
		}
	}
	return true
}
