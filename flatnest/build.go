package flatnest

import (
	"sort"

	"github.com/abh/ivstore/interval"
)

// strictlyNests implements spec.md §4.4's strict nesting definition: child
// ⊂ parent iff (p.begin ≤ c.begin ∧ p.end > c.end) or (p.begin < c.begin ∧
// p.end == c.end). Enumerating cases shows this is exactly
// interval.ProperlyContains (Contains plus differing in at least one
// endpoint) spelled out explicitly; kept as a distinct, spec-named
// predicate here since §4.4 states it as its own definition and two
// engines are allowed to phrase the same relation differently (§9).
func strictlyNests(p, c interval.Interval) bool {
	if p.Begin() <= c.Begin() && p.End() > c.End() {
		return true
	}
	return p.Begin() < c.Begin() && p.End() == c.End()
}

func (e *Engine) finalizeIfTainted() {
	if e.isTainted || !e.isSorted {
		e.finalize()
	}
}

// finalize drains the pending-add buffer and pending-delete bitmap and
// rebuilds the secondary index (nests / nestOffsets / nestLengths /
// parentDelta) from scratch. Triggered lazily by any read that depends on
// the secondary index, per spec.md §4.6.
func (e *Engine) finalize() {
	capacity := len(e.sorted) + len(e.pendingAdds)
	if capacity < e.capacityHint {
		capacity = e.capacityHint
	}
	live := make([]interval.Interval, 0, capacity)
	for i, iv := range e.sorted {
		if !e.deleted.Get(i) {
			live = append(live, iv)
		}
	}
	live = append(live, e.pendingAdds...)

	sort.SliceStable(live, func(i, j int) bool {
		return e.comparator(live[i], live[j]) < 0
	})

	e.sorted = live
	e.pendingAdds = nil
	e.deleted = newBitSet(len(live))
	e.isSorted = true

	e.recomputeEnvelope()
	e.buildNests()
	e.isTainted = false
}

func (e *Engine) recomputeEnvelope() {
	if len(e.sorted) == 0 {
		e.minStart, e.maxStart, e.maxEnd = 0, 0, 0
		return
	}
	e.minStart = e.sorted[0].Begin()
	e.maxStart = e.sorted[0].Begin()
	e.maxEnd = e.sorted[0].End()
	for _, iv := range e.sorted[1:] {
		if iv.Begin() < e.minStart {
			e.minStart = iv.Begin()
		}
		if iv.Begin() > e.maxStart {
			e.maxStart = iv.Begin()
		}
		if iv.End() > e.maxEnd {
			e.maxEnd = iv.End()
		}
	}
}

// buildNests runs spec.md §4.4's two-phase build: assign each interval a
// container (phase 1, walking the parent chain of the immediately
// preceding interval), then lay out the permutation array so every
// container's children occupy one contiguous, binary-searchable range
// (phase 2).
func (e *Engine) buildNests() {
	n := len(e.sorted)
	parentDelta := make([]int32, n)
	hasChildren := make([]bool, n)
	for i := range parentDelta {
		parentDelta[i] = interval.NotContained
	}

	for i := 1; i < n; i++ {
		cur := i - 1
		for cur != -1 && !strictlyNests(e.sorted[cur], e.sorted[i]) {
			if parentDelta[cur] == interval.NotContained {
				cur = -1
			} else {
				cur = cur - int(parentDelta[cur])
			}
		}
		if cur != -1 {
			parentDelta[i] = int32(i - cur)
			hasChildren[cur] = true
		}
	}

	numNests := n + int(firstNodeID)
	nestLengths := make([]int32, numNests)
	for i := 0; i < n; i++ {
		switch {
		case parentDelta[i] != interval.NotContained:
			parent := i - int(parentDelta[i])
			nestLengths[nodeID(parent)]++
		case hasChildren[i]:
			nestLengths[rootNest]++
		default:
			nestLengths[unnestedNest]++
		}
	}

	nestOffsets := make([]int32, numNests)
	var running int32
	for id := 0; id < numNests; id++ {
		nestOffsets[id] = running
		running += nestLengths[id]
	}

	nests := make([]int32, n)
	cursor := append([]int32(nil), nestOffsets...)
	for i := 0; i < n; i++ {
		var id int32
		switch {
		case parentDelta[i] != interval.NotContained:
			parent := i - int(parentDelta[i])
			id = nodeID(parent)
		case hasChildren[i]:
			id = rootNest
		default:
			id = unnestedNest
		}
		nests[cursor[id]] = int32(i)
		cursor[id]++
	}

	e.parentDelta = parentDelta
	e.nests = nests
	e.nestOffsets = nestOffsets
	e.nestLengths = nestLengths
}
