package nclist

import "github.com/abh/ivstore/interval"

// SafeAdd first runs the same sibling-order check that push (remove.go)
// runs before re-inserting promoted intervals, then calls Add. It recovers
// the InvalidContainmentError panic that check raises (spec.md §7 kind 5: a
// fatal structural violation) and reports it as an error instead. Use this
// at an embedding boundary where a panic would be inappropriate. Add itself
// runs no such check.
func (l *List) SafeAdd(iv interval.Interval) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ice, ok := r.(*InvalidContainmentError); ok {
				err = ice
				return
			}
			panic(r)
		}
	}()
	l.assertSorted(iv)
	l.Add(iv)
	return nil
}

// assertSorted panics with an InvalidContainmentError if Nodes is not
// ordered under l.Comparator. Add's binary searches assume this invariant
// holds; in a structurally valid list it always does, so this only ever
// fires against corrupted bookkeeping.
func (l *List) assertSorted(iv interval.Interval) {
	for i := 1; i < len(l.Nodes); i++ {
		if l.Comparator(l.Nodes[i-1].Interval, l.Nodes[i].Interval) > 0 {
			panic(&InvalidContainmentError{
				ParentBegin: l.Nodes[i-1].Interval.Begin(), ParentEnd: l.Nodes[i-1].Interval.End(),
				ChildBegin: iv.Begin(), ChildEnd: iv.End(),
			})
		}
	}
}
