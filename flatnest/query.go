package flatnest

import (
	"github.com/abh/ivstore/interval"
	"github.com/abh/ivstore/ivsearch"
)

// FindOverlaps appends every live interval intersecting the closed range
// [from, to] to out, and returns the extended slice.
//
// finalizeIfTainted drains the pending-add buffer before any of this runs
// (every Add taints the engine, per mutation.go), so by the time the nest
// walk below starts there is no separate pending buffer left to scan —
// the laziness is in deferring that drain past the Add call, not past
// this query.
//
// Per spec.md §4.4: first scan the unnested top-level block (a flat,
// binary-searchable run with no children to recurse into), then walk the
// root nest, recursing into each container's own child range in turn.
func (e *Engine) FindOverlaps(from, to int32, out []interval.Interval) []interval.Interval {
	e.finalizeIfTainted()
	if len(e.sorted) == 0 {
		return out
	}
	if to < e.minStart || from > e.maxEnd {
		return out
	}

	out = e.scanNest(unnestedNest, from, to, out, false)
	out = e.scanNest(rootNest, from, to, out, true)
	return out
}

// scanNest walks the contiguous range nests[nestOffsets[id] : +nestLengths[id]],
// binary-searching for the first element whose End >= from, then scanning
// forward until an element's Begin exceeds to. When recurse is true (the
// root nest and every container's own nest), each visited element also has
// its own child range scanned.
func (e *Engine) scanNest(id int32, from, to int32, out []interval.Interval, recurse bool) []interval.Interval {
	length := int(e.nestLengths[id])
	if length == 0 {
		return out
	}
	base := int(e.nestOffsets[id])

	endAt := func(k int) int32 { return e.sorted[e.nests[base+k]].End() }

	var start int
	switch length {
	case 1:
		if endAt(0) >= from {
			start = 0
		} else {
			start = 1
		}
	case 2:
		switch {
		case endAt(0) >= from:
			start = 0
		case endAt(1) >= from:
			start = 1
		default:
			start = 2
		}
	default:
		start = ivsearch.FirstEndNotBefore(0, length-1, from, endAt)
	}

	for k := start; k < length; k++ {
		slot := int(e.nests[base+k])
		iv := e.sorted[slot]
		if iv.Begin() > to {
			break
		}
		if !e.deleted.Get(slot) && interval.OverlapsRange(iv, from, to) {
			out = append(out, iv)
		}
		// Recurse regardless of this slot's own deletion: a deleted
		// container's still-live children remain reachable only through
		// its nest until the next finalize compacts the tree.
		if recurse {
			out = e.scanNest(nodeID(slot), from, to, out, true)
		}
	}
	return out
}
