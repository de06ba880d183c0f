package interval

// Comparator orders two intervals, returning -1, 0, or 1 the way
// sort.Interface-style comparators do. Both predefined comparators order by
// Begin ascending first; they differ only in how they break ties on Begin.
type Comparator func(a, b Interval) int

// BigEndian orders by Begin ascending, ties broken by End descending
// (longer first). A stable sort under BigEndian places every container
// immediately before everything it contains, which the NCList build sweep
// (package nclist) depends on. This is the default comparator.
func BigEndian(a, b Interval) int {
	if a.Begin() != b.Begin() {
		return cmp32(a.Begin(), b.Begin())
	}
	// Longer (larger End) sorts first under BigEndian: reverse compare.
	return cmp32(b.End(), a.End())
}

// LittleEndian orders by Begin ascending, ties broken by End ascending
// (shorter first).
func LittleEndian(a, b Interval) int {
	if a.Begin() != b.Begin() {
		return cmp32(a.Begin(), b.Begin())
	}
	return cmp32(a.End(), b.End())
}

func cmp32(l, r int32) int {
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

// Overlaps reports whether a and b intersect: a.Begin <= b.End && b.Begin
// <= a.End.
func Overlaps(a, b Interval) bool {
	return a.Begin() <= b.End() && b.Begin() <= a.End()
}

// OverlapsRange reports whether iv intersects the closed query range
// [from, to].
func OverlapsRange(iv Interval, from, to int32) bool {
	return iv.Begin() <= to && iv.End() >= from
}

// Contains reports whether p contains c: p.Begin <= c.Begin && p.End >=
// c.End.
func Contains(p, c Interval) bool {
	return p.Begin() <= c.Begin() && p.End() >= c.End()
}

// ProperlyContains reports whether p contains c and the two differ in at
// least one endpoint.
func ProperlyContains(p, c Interval) bool {
	return Contains(p, c) && (p.Begin() != c.Begin() || p.End() != c.End())
}
