package nclist

import (
	"github.com/abh/ivstore/interval"
	"github.com/abh/ivstore/ivsearch"
)

// FindOverlaps appends every interval in this list (and its nested
// sub-lists) overlapping the closed range [from, to] to out, and returns
// the extended slice.
//
// Per spec.md §4.3: binary-search for the first sibling whose End >= from;
// walk forward from there until a sibling's Begin exceeds to, testing and
// recursing into each.
func (l *List) FindOverlaps(from, to int32, out []interval.Interval) []interval.Interval {
	if len(l.Nodes) == 0 {
		return out
	}
	start := ivsearch.FirstEndNotBefore(0, len(l.Nodes)-1, from, l.endAt)
	for i := start; i < len(l.Nodes); i++ {
		node := l.Nodes[i]
		if node.Interval.Begin() > to {
			break
		}
		if interval.OverlapsRange(node.Interval, from, to) {
			out = append(out, node.Interval)
		}
		if node.Sub != nil {
			out = node.Sub.FindOverlaps(from, to, out)
		}
	}
	return out
}
