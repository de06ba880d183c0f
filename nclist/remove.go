package nclist

import (
	"sort"

	"github.com/abh/ivstore/interval"
)

// Remove deletes the first interval equal to target under EqualsInterval,
// searching this list and, recursively, every sub-list. It reports whether
// an element was removed.
//
// If the removed node had a sub-list, its descendants are promoted: each
// is re-inserted into this level via the ordinary Add decision (in
// container-before-contents order), so they end up wherever Add places
// them — back under a sibling, nested under each other, or flat at this
// level.
func (l *List) Remove(target interval.Interval) bool {
	for i, node := range l.Nodes {
		if node.Interval.EqualsInterval(target) {
			l.removeAt(i)
			return true
		}
		if node.Sub != nil && node.Sub.Remove(target) {
			return true
		}
	}
	return false
}

func (l *List) removeAt(i int) {
	removed := l.Nodes[i]
	l.Nodes = append(l.Nodes[:i], l.Nodes[i+1:]...)

	if removed.Sub == nil {
		return
	}

	promoted := removed.Sub.All(nil)
	sort.SliceStable(promoted, func(a, b int) bool {
		return l.Comparator(promoted[a], promoted[b]) < 0
	})
	for _, iv := range promoted {
		l.push(iv)
	}
}

// push re-inserts a promoted interval via the ordinary Add decision. Add
// only ever recurses into a sibling it has itself just verified properly
// contains the new interval, or wraps siblings it has itself just verified
// the new interval properly contains — so a call to push can never
// actually observe a containment mismatch. If list bookkeeping further up
// the call chain has nonetheless left Nodes out of sorted order, that is
// the one fatal, non-recoverable bug case spec.md §7 kind 5 describes.
func (l *List) push(iv interval.Interval) {
	l.assertSorted(iv)
	l.addNode(iv)
}
