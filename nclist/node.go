// Package nclist implements the reference Nested Containment List engine:
// a recursive tree of nested interval groups built, queried and mutated per
// spec.md §4.3.
package nclist

import "github.com/abh/ivstore/interval"

// Node wraps one root interval and an optional sub-list of nested
// children. A node with a nil Sub is a leaf: nothing nests inside it.
type Node struct {
	Interval interval.Interval
	Sub      *List
}

// List is an ordered sequence of sibling nodes: either the top-level
// NCList (no parent) or one parent node's children.
type List struct {
	Nodes      []*Node
	Comparator interval.Comparator
}

// NewList creates an empty list ordered by cmp. A nil cmp defaults to
// interval.BigEndian.
func NewList(cmp interval.Comparator) *List {
	if cmp == nil {
		cmp = interval.BigEndian
	}
	return &List{Comparator: cmp}
}

func (l *List) beginAt(i int) int32 { return l.Nodes[i].Interval.Begin() }
func (l *List) endAt(i int) int32   { return l.Nodes[i].Interval.End() }

// Len reports the number of direct siblings (not counting nested
// children).
func (l *List) Len() int { return len(l.Nodes) }

// Size counts every interval stored at or below this list, recursively.
func (l *List) Size() int {
	n := len(l.Nodes)
	for _, node := range l.Nodes {
		if node.Sub != nil {
			n += node.Sub.Size()
		}
	}
	return n
}

// All appends every stored interval, in this list's internal traversal
// order, to out and returns the extended slice.
func (l *List) All(out []interval.Interval) []interval.Interval {
	for _, node := range l.Nodes {
		out = append(out, node.Interval)
		if node.Sub != nil {
			out = node.Sub.All(out)
		}
	}
	return out
}

// Depth returns the maximum containment chain length rooted at this list:
// 0 for an empty list, 1 for a list with no nested children.
func (l *List) Depth() int {
	if len(l.Nodes) == 0 {
		return 0
	}
	max := 0
	for _, node := range l.Nodes {
		d := 0
		if node.Sub != nil {
			d = node.Sub.Depth()
		}
		if d > max {
			max = d
		}
	}
	return 1 + max
}

// Width returns the number of top-level (direct sibling) nodes in this
// list.
func (l *List) Width() int {
	return len(l.Nodes)
}
