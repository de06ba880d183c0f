package nclist

import "fmt"

// InvalidContainmentError reports the one fatal logic error the NCList
// engine can hit: a push that is told to nest a node under a parent that
// does not actually contain it. This indicates a bug in the engine, not
// user misuse, so it is raised via panic rather than an error return (see
// spec.md §7, error kind 5).
type InvalidContainmentError struct {
	ParentBegin, ParentEnd int32
	ChildBegin, ChildEnd   int32
}

func (e *InvalidContainmentError) Error() string {
	return fmt.Sprintf("nclist: invalid containment: parent [%d,%d] does not contain child [%d,%d]",
		e.ParentBegin, e.ParentEnd, e.ChildBegin, e.ChildEnd)
}
