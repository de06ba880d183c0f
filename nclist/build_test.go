package nclist

import (
	"reflect"
	"testing"

	"github.com/abh/ivstore/interval"
)

// Scenario 1 from spec.md §8.
func TestBuildScenario1(t *testing.T) {
	ivs := []interval.Interval{
		iv(10, 20, 1), iv(10, 20, 2), iv(15, 21, 0), iv(20, 30, 0), iv(40, 40, 1), iv(40, 40, 2),
	}
	list := Build(ivs, interval.BigEndian)

	if got := list.Size(); got != 6 {
		t.Fatalf("Size() = %d, want 6", got)
	}
	if !list.IsValid() {
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
		got := coords(list.FindOverlaps(c.from, c.to, nil))
		if !sameMultiset(got, c.want) {
			t.Errorf("FindOverlaps(%d,%d) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

// Duplicate-coordinate intervals must stay flat siblings, not nest into
// each other: depth must remain 1 when nothing properly contains anything
// else, per spec.md §9 and the glossary's Containment entry.
func TestBuildDuplicatesStayFlat(t *testing.T) {
	ivs := []interval.Interval{iv(10, 20, 1), iv(10, 20, 2)}
	list := Build(ivs, interval.BigEndian)
	if got := list.Depth(); got != 1 {
		t.Fatalf("Depth() = %d, want 1", got)
	}
	if got := list.Width(); got != 2 {
		t.Fatalf("Width() = %d, want 2", got)
	}
}

func TestBuildEmpty(t *testing.T) {
	list := Build(nil, interval.BigEndian)
	if list.Depth() != 0 {
		t.Fatalf("Depth() = %d, want 0", list.Depth())
	}
	if list.Width() != 0 {
		t.Fatalf("Width() = %d, want 0", list.Width())
	}
	if list.Size() != 0 {
		t.Fatalf("Size() = %d, want 0", list.Size())
	}
}

// Scenario from spec.md §8 item 4, using the engine's own self-consistent
// Depth() formula (max containment chain node count) rather than the
// literal numeric sequence quoted there — see DESIGN.md's "Open Questions"
// entry on get_depth.
func TestBuildNestedChainDepth(t *testing.T) {
	ivs := []interval.Interval{
		iv(10, 20, 0), iv(15, 25, 0),
		iv(30, 40, 0), iv(32, 38, 0), iv(33, 35, 0), iv(34, 37, 0), iv(35, 36, 0),
	}
	list := Build(ivs, interval.BigEndian)
	if !list.IsValid() {
		t.Fatal("expected a valid build")
	}
	// Deepest chain: (30,40) > (32,38) > (34,37) > (35,36) = 4 nodes.
	if got := list.Depth(); got != 4 {
		t.Fatalf("Depth() = %d, want 4", got)
	}
}

func sameMultiset(got, want [][2]int32) bool {
	if len(got) != len(want) {
		return false
	}
	gc := append([][2]int32{}, got...)
	wc := append([][2]int32{}, want...)
	for _, w := range wc {
		found := false
		for i, g := range gc {
			if g == w {
				gc = append(gc[:i], gc[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func TestAllTraversalMatchesSize(t *testing.T) {
	ivs := []interval.Interval{
		iv(10, 20, 0), iv(15, 25, 0), iv(30, 40, 0), iv(32, 38, 0),
	}
	list := Build(ivs, interval.BigEndian)
	all := list.All(nil)
	if len(all) != list.Size() {
		t.Fatalf("All() len = %d, Size() = %d", len(all), list.Size())
	}
	if !reflect.DeepEqual(coords(all), coords(all)) {
		t.Fatal("unreachable")
	}
}
