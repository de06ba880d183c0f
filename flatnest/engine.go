// Package flatnest implements the packed-array interval index described in
// spec.md §4.4 and §4.6: the same containment semantics as package nclist,
// stored in contiguous int32 arrays instead of a node tree, with a lazy
// pending-add buffer and a pending-delete bitmap to amortise incremental
// mutation.
package flatnest

import "github.com/abh/ivstore/interval"

// Two distinguished top-level nest ids, reserved the way spec.md §4.4
// describes: unnestedNest holds top-level intervals with no children;
// rootNest holds top-level intervals that do have children. Every other
// interval that has at least one child owns its own nest id, allocated as
// nodeID(i).
const (
	unnestedNest int32 = 0
	rootNest     int32 = 1
	firstNodeID  int32 = 2
)

func nodeID(i int) int32 { return int32(i) + firstNodeID }

// Engine is the flat-nest interval index. The zero value is not usable;
// construct with New or Build.
type Engine struct {
	comparator interval.Comparator

	// sorted is the finalized, canonical array: sorted under comparator,
	// with every logically-deleted position still physically present
	// until the next finalize compacts it out.
	sorted []interval.Interval

	// pendingAdds holds intervals added since the last finalize that could
	// not be appended to sorted in order. They are tracked as a separate
	// plain slice, not as a linked insertion chain inside the backing
	// array; finalize merges them back with a full stable sort (see
	// DESIGN.md's mutation.go entry).
	pendingAdds []interval.Interval

	deleted *bitSet // indexed into sorted; marks a pending removal

	// Secondary index, valid only when isTainted is false.
	nests       []int32
	nestOffsets []int32
	nestLengths []int32
	parentDelta []int32 // per position in sorted: i - parentIndex, or interval.NotContained

	isSorted  bool
	isTainted bool

	minStart, maxStart, maxEnd int32

	// capacityHint is the minimum backing-array capacity finalize() keeps
	// around, the "excess array capacity" spec.md §4.6 describes so
	// incremental Add can amortise without reallocating on every call.
	capacityHint int
}

// New creates an empty engine ordered by cmp. A nil cmp defaults to
// interval.BigEndian.
func New(cmp interval.Comparator) *Engine {
	return NewWithCapacity(cmp, 0)
}

// NewWithCapacity is New, but pre-sizes the backing array to capacityHint
// so the first several Adds don't force a reallocation.
func NewWithCapacity(cmp interval.Comparator, capacityHint int) *Engine {
	if cmp == nil {
		cmp = interval.BigEndian
	}
	e := &Engine{
		comparator:   cmp,
		deleted:      newBitSet(0),
		isSorted:     true,
		isTainted:    false,
		capacityHint: capacityHint,
	}
	if capacityHint > 0 {
		e.sorted = make([]interval.Interval, 0, capacityHint)
	}
	e.buildNests()
	return e
}

// Build bulk-constructs an engine from ivs under cmp. ivs is not mutated.
func Build(ivs []interval.Interval, cmp interval.Comparator) *Engine {
	return BuildWithCapacity(ivs, cmp, len(ivs))
}

// BuildWithCapacity is Build, but pre-sizes the backing array to at least
// capacityHint (raised to len(ivs) if smaller).
func BuildWithCapacity(ivs []interval.Interval, cmp interval.Comparator, capacityHint int) *Engine {
	if capacityHint < len(ivs) {
		capacityHint = len(ivs)
	}
	e := NewWithCapacity(cmp, capacityHint)
	e.pendingAdds = append(e.pendingAdds, ivs...)
	e.isTainted = true
	e.isSorted = len(ivs) <= 1
	e.finalize()
	return e
}

// Size returns the number of live intervals: the finalized count, minus
// pending deletions, plus pending additions.
func (e *Engine) Size() int {
	return len(e.sorted) - e.deleted.Count() + len(e.pendingAdds)
}

func (e *Engine) updateEnvelope(iv interval.Interval) {
	if e.Size() == 1 {
		e.minStart, e.maxStart, e.maxEnd = iv.Begin(), iv.Begin(), iv.End()
		return
	}
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

// GetDepth returns the maximum containment chain length: 0 for an empty
// engine, 1 for an engine with no nesting.
func (e *Engine) GetDepth() int {
	e.finalizeIfTainted()
	if e.Size() == 0 {
		return 0
	}
	max := 0
	if e.nestLengths[unnestedNest] > 0 {
		max = 1
	}
	if d := e.nestDepth(rootNest); d > max {
		max = d
	}
	return max
}

// nestDepth returns the maximum containment chain length found within
// nest id (1 for a nest whose members are all leaves), the max over every
// member's own subtree depth.
func (e *Engine) nestDepth(id int32) int {
	length := int(e.nestLengths[id])
	if length == 0 {
		return 0
	}
	max := 1
	base := int(e.nestOffsets[id])
	for k := 0; k < length; k++ {
		slot := int(e.nests[base+k])
		d := 1 + e.nestDepth(nodeID(slot))
		if d > max {
			max = d
		}
	}
	return max
}

// GetWidth returns the number of top-level (uncontained) intervals.
func (e *Engine) GetWidth() int {
	e.finalizeIfTainted()
	return int(e.nestLengths[unnestedNest] + e.nestLengths[rootNest])
}

// All appends every live interval, in this engine's internal order, to out.
func (e *Engine) All(out []interval.Interval) []interval.Interval {
	e.finalizeIfTainted()
	for i, iv := range e.sorted {
		if !e.deleted.Get(i) {
			out = append(out, iv)
		}
	}
	return out
}

// Revalidate forces a finalisation pass: drains the pending-add buffer and
// pending-delete bitmap and rebuilds the secondary index. Idempotent — a
// second call with no intervening mutation observes no change.
func (e *Engine) Revalidate() {
	e.finalize()
}
