// Package interval defines the minimal capability every element stored in
// an interval index must implement.
package interval

import "math"

// NotContained is the reserved sentinel used internally by engines to mark
// an interval with no enclosing parent. User code never supplies it.
const NotContained int32 = math.MinInt32

// ContainmentUnknown is the reserved sentinel value for a container
// assignment that has not been computed. None of the engines in this module
// reference it. User code never supplies it.
const ContainmentUnknown int32 = 0

// Interval is the capability every stored element must expose: an
// inclusive [Begin, End] range and a payload-aware equality test.
//
// Begin must be <= End; behaviour for Begin() > End() is undefined, per the
// core's contract.
type Interval interface {
	// Begin returns the inclusive lower bound.
	Begin() int32
	// End returns the inclusive upper bound.
	End() int32
	// EqualsInterval reports whether other represents the same stored
	// element. Two intervals with identical coordinates but different
	// payloads are not equal.
	EqualsInterval(other Interval) bool
}
