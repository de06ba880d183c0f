package flatnest

// IsValid checks the flat-nest structural invariants: every nest is
// ordered by Begin ascending, every child lies within its container's
// range, and no live sibling within a nest strictly nests another (which
// would mean the build mis-assigned it). Finalizes first so the check
// runs against the current secondary index.
func (e *Engine) IsValid() bool {
	e.finalizeIfTainted()
	if !e.isNestValid(unnestedNest, nil) {
		return false
	}
	return e.isNestValid(rootNest, nil)
}

func (e *Engine) isNestValid(id int32, parent *int) bool {
	length := int(e.nestLengths[id])
	base := int(e.nestOffsets[id])

	var prevSlot = -1
	for k := 0; k < length; k++ {
		slot := int(e.nests[base+k])
		iv := e.sorted[slot]

		if parent != nil {
			if !e.deleted.Get(*parent) {
				p := e.sorted[*parent]
				if p.Begin() > iv.Begin() || p.End() < iv.End() {
					return false
				}
			}
		}

		if prevSlot >= 0 {
			prev := e.sorted[prevSlot]
			if e.comparator(prev, iv) > 0 {
				return false
			}
			if strictlyNests(prev, iv) || strictlyNests(iv, prev) {
				return false
			}
		}
		prevSlot = slot

		if int(e.nestLengths[nodeID(slot)]) > 0 {
			s := slot
			if !e.isNestValid(nodeID(slot), &s) {
				return false
			}
		}
	}
	return true
}
