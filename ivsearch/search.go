// Package ivsearch provides the binary-search primitives shared by the
// nclist and flatnest engines. All of them are expressed over index-accessor
// closures rather than a concrete slice type so both engines (node slices
// and parallel int32 arrays respectively) can reuse them.
package ivsearch

import "sort"

// FirstEndNotBefore finds, within the index range [start, end] (inclusive),
// the lowest index whose End() >= from. endAt(i) returns the End value at
// index i. It returns end+1 when no such index exists.
func FirstEndNotBefore(start, end int, from int32, endAt func(i int) int32) int {
	if start > end {
		return end + 1
	}
	lo, hi := start, end+1
	idx := lo + sort.Search(hi-lo, func(k int) bool {
		return endAt(lo+k) >= from
	})
	return idx
}

// FirstBeginNotBefore finds, within the index range [start, end] (inclusive),
// the lowest index whose Begin() >= from. beginAt(i) returns the Begin value
// at index i. It returns end+1 when no such index exists.
func FirstBeginNotBefore(start, end int, from int32, beginAt func(i int) int32) int {
	if start > end {
		return end + 1
	}
	lo, hi := start, end+1
	idx := lo + sort.Search(hi-lo, func(k int) bool {
		return beginAt(lo+k) >= from
	})
	return idx
}

// LastBeginNotAfter finds, among n sorted entries, the highest index whose
// Begin() <= to. beginAt(i) returns the Begin value at index i. It returns
// -1 when no such index exists.
func LastBeginNotAfter(n int, to int32, beginAt func(i int) int32) int {
	if n == 0 {
		return -1
	}
	// sort.Search finds the first index for which the predicate is true;
	// we want the last index for which beginAt <= to, i.e. one less than
	// the first index for which beginAt > to.
	idx := sort.Search(n, func(k int) bool {
		return beginAt(k) > to
	})
	return idx - 1
}

// IdentitySearch locates, among n entries sorted by Begin ascending, the
// index satisfying equalsAt(i), skipping any index for which ignore(i) is
// true (used to mask pending deletions). beginAt(i) must agree with the
// sort order. When no match exists it returns -1-insertionPoint, so callers
// can reuse the computed position for an ordered insert.
//
// Because runs of equal Begin (and possibly equal End) are common, once the
// binary search lands inside such a run the search widens linearly in both
// directions until either a match is found or the Begin run ends.
func IdentitySearch(n int, target int32, beginAt func(i int) int32, equalsAt func(i int) bool, ignore func(i int) bool) int {
	insertionPoint := sort.Search(n, func(k int) bool {
		return beginAt(k) >= target
	})

	// Scan right through the equal-Begin run starting at the insertion point.
	for i := insertionPoint; i < n && beginAt(i) == target; i++ {
		if !ignore(i) && equalsAt(i) {
			return i
		}
	}
	for i := insertionPoint - 1; i >= 0 && beginAt(i) == target; i-- {
		if !ignore(i) && equalsAt(i) {
			return i
		}
	}

	return -1 - insertionPoint
}
