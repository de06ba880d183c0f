package flatnest

import (
	"testing"

	"github.com/abh/ivstore/interval"
)

// Scenario 1 from spec.md §8.
func TestBuildScenario1(t *testing.T) {
	ivs := []interval.Interval{
		iv(10, 20, 1), iv(10, 20, 2), iv(15, 21, 0), iv(20, 30, 0), iv(40, 40, 1), iv(40, 40, 2),
	}
	e := Build(ivs, interval.BigEndian)

	if got := e.Size(); got != 6 {
		t.Fatalf("Size() = %d, want 6", got)
	}
	if !e.IsValid() {
		t.Fatal("expected a valid build")
	}

	cases := []struct {
		from, to int32
		want     [][2]int32
	}{
		{8, 10, [][2]int32{{10, 20}, {10, 20}}},
		{12, 16, [][2]int32{{10, 20}, {10, 20}, {15, 21}}},
		{33, 33, nil},
		{35, 40, [][2]int32{{40, 40}, {40, 40}}},
		{36, 100, [][2]int32{{40, 40}, {40, 40}}},
	}
	for _, c := range cases {
		got := coords(e.FindOverlaps(c.from, c.to, nil))
		if !sameMultiset(got, c.want) {
			t.Errorf("FindOverlaps(%d,%d) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestBuildDuplicatesStayFlat(t *testing.T) {
	e := Build([]interval.Interval{iv(10, 20, 1), iv(10, 20, 2)}, interval.BigEndian)
	if got := e.GetDepth(); got != 1 {
		t.Fatalf("GetDepth() = %d, want 1", got)
	}
	if got := e.GetWidth(); got != 2 {
		t.Fatalf("GetWidth() = %d, want 2", got)
	}
}

func TestBuildEmpty(t *testing.T) {
	e := Build(nil, interval.BigEndian)
	if e.GetDepth() != 0 {
		t.Fatalf("GetDepth() = %d, want 0", e.GetDepth())
	}
	if e.GetWidth() != 0 {
		t.Fatalf("GetWidth() = %d, want 0", e.GetWidth())
	}
	if e.Size() != 0 {
		t.Fatalf("Size() = %d, want 0", e.Size())
	}
	if got := e.FindOverlaps(0, 100, nil); got != nil {
		t.Fatalf("FindOverlaps on empty engine = %v, want nil", got)
	}
}

// Scenario 4's seed, using this engine's own GetDepth() formula — see
// DESIGN.md's Open Questions entry, same rationale as nclist's.
func TestBuildNestedChainDepth(t *testing.T) {
	ivs := []interval.Interval{
		iv(10, 20, 0), iv(15, 25, 0),
		iv(30, 40, 0), iv(32, 38, 0), iv(33, 35, 0), iv(34, 37, 0), iv(35, 36, 0),
	}
	e := Build(ivs, interval.BigEndian)
	if !e.IsValid() {
		t.Fatal("expected a valid build")
	}
	if got := e.GetDepth(); got != 4 {
		t.Fatalf("GetDepth() = %d, want 4", got)
	}
}

func TestBuildAllTraversalMatchesSize(t *testing.T) {
	ivs := []interval.Interval{
		iv(10, 20, 0), iv(15, 25, 0), iv(30, 40, 0), iv(32, 38, 0),
	}
	e := Build(ivs, interval.BigEndian)
	all := e.All(nil)
	if len(all) != e.Size() {
		t.Fatalf("All() len = %d, Size() = %d", len(all), e.Size())
	}
}
