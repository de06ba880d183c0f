package nclist

import (
	"sort"

	"github.com/abh/ivstore/interval"
)

// Build constructs an NCList from ivs under comparator cmp. ivs is not
// mutated; Build sorts a private copy. A nil cmp defaults to
// interval.BigEndian.
//
// The build sweeps the sorted input left to right maintaining a "current
// container" pointer: each subsequent interval either properly nests
// inside the current container (folded into its sub-block) or does not
// (closing the previous sub-block and starting a new one). This partitions
// the sorted input into maximal subranges, each recursively built into one
// node.
func Build(ivs []interval.Interval, cmp interval.Comparator) *List {
	if cmp == nil {
		cmp = interval.BigEndian
	}
	sorted := make([]interval.Interval, len(ivs))
	copy(sorted, ivs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return cmp(sorted[i], sorted[j]) < 0
	})
	return buildRange(sorted, cmp)
}

// buildRange builds an NCList over an already-sorted slice.
func buildRange(sorted []interval.Interval, cmp interval.Comparator) *List {
	list := NewList(cmp)
	if len(sorted) == 0 {
		return list
	}

	containerIdx := 0
	subStart := -1 // start of the pending sub-block, or -1 if none open

	flush := func(end int) {
		container := sorted[containerIdx]
		node := &Node{Interval: container}
		if subStart >= 0 && subStart < end {
			node.Sub = buildRange(sorted[subStart:end], cmp)
		}
		list.Nodes = append(list.Nodes, node)
	}

	i := 1
	for i < len(sorted) {
		if interval.ProperlyContains(sorted[containerIdx], sorted[i]) {
			if subStart < 0 {
				subStart = i
			}
			i++
			continue
		}
		// sorted[i] does not nest under the current container (including
		// the duplicate-coordinate case, which must stay a sibling: depth
		// must stay 1 when nothing properly contains anything else): close
		// the previous sub-block and start a new one at i.
		flush(i)
		containerIdx = i
		subStart = -1
		i++
	}
	flush(len(sorted))

	return list
}
