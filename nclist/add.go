package nclist

import (
	"sort"

	"github.com/abh/ivstore/interval"
	"github.com/abh/ivstore/ivsearch"
)

// Add inserts iv into the list, applying the six-case decision described in
// spec.md §4.3. Four of those cases (precedes the first sibling, follows
// the last, matches a sibling's coordinates, spans two adjacent siblings
// without enclosing either) are all the same underlying operation — insert
// a new sibling node at its sorted position — and are handled together
// below; the remaining two (properly enclosed by a sibling, properly
// encloses one or more siblings) are the structurally distinct cases.
// Add is the unconditional six-case insert; it always places iv, even if
// an equal interval is already stored. Facade-level duplicate rejection is
// AddUnique, in facade.go.
func (l *List) Add(iv interval.Interval) {
	l.addNode(iv)
}

// addNode is Add's unexported alias, used internally so call sites that
// must never go through a facade method (promotion in remove.go,
// recursion here) are visibly distinct from the public entry point.
func (l *List) addNode(iv interval.Interval) {
	if len(l.Nodes) == 0 {
		l.Nodes = append(l.Nodes, &Node{Interval: iv})
		return
	}

	// Bound the scan: only siblings whose End >= iv.Begin can possibly
	// contain, be contained by, or match iv.
	start := ivsearch.FirstEndNotBefore(0, len(l.Nodes)-1, iv.Begin(), l.endAt)

	// Case D: properly enclosed by a sibling. At most one sibling can
	// properly contain iv (siblings never properly contain each other), so
	// the first match found scanning forward from start is it.
	for i := start; i < len(l.Nodes); i++ {
		sib := l.Nodes[i].Interval
		if sib.Begin() > iv.Begin() {
			break
		}
		if interval.ProperlyContains(sib, iv) {
			if l.Nodes[i].Sub == nil {
				l.Nodes[i].Sub = NewList(l.Comparator)
			}
			l.Nodes[i].Sub.addNode(iv)
			return
		}
	}

	// Case E: properly encloses one or more consecutive siblings. A
	// contained sibling's Begin can't precede iv.Begin, so the scan must
	// start there — not at start (which is bounded by End and can sit
	// before a sibling that only starts, but doesn't end, after iv.Begin).
	encStart := ivsearch.FirstBeginNotBefore(0, len(l.Nodes)-1, iv.Begin(), l.beginAt)
	end := encStart
	for end < len(l.Nodes) && interval.ProperlyContains(iv, l.Nodes[end].Interval) {
		end++
	}
	if end > encStart {
		enclosed := l.Nodes[encStart:end]
		sub := NewList(l.Comparator)
		sub.Nodes = append(sub.Nodes, enclosed...)
		newNode := &Node{Interval: iv, Sub: sub}
		rest := make([]*Node, 0, len(l.Nodes)-(end-encStart)+1)
		rest = append(rest, l.Nodes[:encStart]...)
		rest = append(rest, newNode)
		rest = append(rest, l.Nodes[end:]...)
		l.Nodes = rest
		return
	}

	// Case C / A / B / F: no containment relation in either direction —
	// insert a new sibling node at its sorted position. A duplicate
	// (matching coordinates) sorts adjacent to its twin automatically.
	pos := l.sortedInsertPos(iv)
	l.insertAt(pos, &Node{Interval: iv})
}

// sortedInsertPos returns the index at which iv should be inserted to keep
// Nodes ordered by l.Comparator.
func (l *List) sortedInsertPos(iv interval.Interval) int {
	return sort.Search(len(l.Nodes), func(i int) bool {
		return l.Comparator(l.Nodes[i].Interval, iv) >= 0
	})
}

func (l *List) insertAt(pos int, n *Node) {
	l.Nodes = append(l.Nodes, nil)
	copy(l.Nodes[pos+1:], l.Nodes[pos:])
	l.Nodes[pos] = n
}
