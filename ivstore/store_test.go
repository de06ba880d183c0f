package ivstore

import (
	"math/rand"
	"testing"

	"github.com/abh/ivstore/interval"
)

type rng struct {
	b, e int32
	id   int
}

func (r rng) Begin() int32 { return r.b }
func (r rng) End() int32   { return r.e }
func (r rng) EqualsInterval(other interval.Interval) bool {
	o, ok := other.(rng)
	return ok && o.b == r.b && o.e == r.e && o.id == r.id
}

func iv(b, e int32, id int) rng { return rng{b, e, id} }

func coords(ivs []interval.Interval) [][2]int32 {
	out := make([][2]int32, len(ivs))
	for i, v := range ivs {
		out[i] = [2]int32{v.Begin(), v.End()}
	}
	return out
}

func sameMultiset(got, want [][2]int32) bool {
	if len(got) != len(want) {
		return false
	}
	gc := append([][2]int32{}, got...)
	for _, w := range want {
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

func TestNewDefaultsToNCList(t *testing.T) {
	s := New()
	if s.Kind() != EngineNCList {
		t.Fatalf("Kind() = %v, want EngineNCList", s.Kind())
	}
}

func TestAddRejectsDuplicateByDefault(t *testing.T) {
	for _, kind := range []EngineKind{EngineNCList, EngineFlatNest} {
		s := New(WithEngine(kind))
		if !s.Add(iv(10, 20, 0)) {
			t.Fatalf("kind %v: expected first Add to succeed", kind)
		}
		if s.Add(iv(10, 20, 0)) {
			t.Fatalf("kind %v: expected duplicate Add to be rejected", kind)
		}
		if s.Size() != 1 {
			t.Fatalf("kind %v: Size() = %d, want 1", kind, s.Size())
		}
	}
}

func TestAddAllowDuplicatesKeepsBoth(t *testing.T) {
	for _, kind := range []EngineKind{EngineNCList, EngineFlatNest} {
		s := New(WithEngine(kind))
		s.AddAllowDuplicates(iv(10, 20, 1))
		s.AddAllowDuplicates(iv(10, 20, 2))
		if s.Size() != 2 {
			t.Fatalf("kind %v: Size() = %d, want 2", kind, s.Size())
		}
	}
}

func TestRemoveAndContains(t *testing.T) {
	for _, kind := range []EngineKind{EngineNCList, EngineFlatNest} {
		s := New(WithEngine(kind))
		a := iv(10, 20, 0)
		s.Add(a)
		if !s.Contains(a) {
			t.Fatalf("kind %v: expected store to contain a", kind)
		}
		if !s.Remove(a) {
			t.Fatalf("kind %v: expected Remove to succeed", kind)
		}
		if s.Contains(a) {
			t.Fatalf("kind %v: expected a to no longer be contained", kind)
		}
	}
}

func TestEmptyStoreBoundaries(t *testing.T) {
	for _, kind := range []EngineKind{EngineNCList, EngineFlatNest} {
		s := New(WithEngine(kind))
		if got := s.FindOverlaps(0, 100, nil); got != nil {
			t.Fatalf("kind %v: FindOverlaps on empty store = %v, want nil", kind, got)
		}
		if s.GetDepth() != 0 {
			t.Fatalf("kind %v: GetDepth() = %d, want 0", kind, s.GetDepth())
		}
		if s.GetWidth() != 0 {
			t.Fatalf("kind %v: GetWidth() = %d, want 0", kind, s.GetWidth())
		}
	}
}

func TestWithSeedMatchesIncrementalAdd(t *testing.T) {
	ivs := []interval.Interval{
		iv(10, 20, 1), iv(10, 20, 2), iv(15, 21, 0), iv(20, 30, 0), iv(40, 40, 1), iv(40, 40, 2),
	}
	for _, kind := range []EngineKind{EngineNCList, EngineFlatNest} {
		seeded := New(WithEngine(kind), WithSeed(ivs))
		incremental := New(WithEngine(kind))
		for _, v := range ivs {
			incremental.AddAllowDuplicates(v)
		}
		if seeded.Size() != incremental.Size() {
			t.Fatalf("kind %v: size mismatch: seeded=%d incremental=%d", kind, seeded.Size(), incremental.Size())
		}
		for from := int32(0); from <= 50; from += 10 {
			for to := from; to <= 50; to += 10 {
				a := coords(seeded.FindOverlaps(from, to, nil))
				b := coords(incremental.FindOverlaps(from, to, nil))
				if !sameMultiset(a, b) {
					t.Fatalf("kind %v: mismatch at [%d,%d]: seeded=%v incremental=%v", kind, from, to, a, b)
				}
			}
		}
	}
}

// Cross-engine agreement: NCList and flat-nest, seeded with the same data
// and queried with the same range, produce result sets equal as
// multisets, per spec.md §8.
func TestCrossEngineAgreement(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	var ivs []interval.Interval
	for i := 0; i < 60; i++ {
		b := int32(r.Intn(120))
		length := int32(r.Intn(20))
		ivs = append(ivs, iv(b, b+length, i))
	}

	ncl := New(WithEngine(EngineNCList), WithSeed(ivs))
	flat := New(WithEngine(EngineFlatNest), WithSeed(ivs))

	if !ncl.IsValid() {
		t.Fatal("expected the NCList store to be structurally valid")
	}
	if !flat.IsValid() {
		t.Fatal("expected the flat-nest store to be structurally valid")
	}

	for from := int32(-10); from <= 140; from += 5 {
		for width := int32(0); width <= 30; width += 10 {
			to := from + width
			a := coords(ncl.FindOverlaps(from, to, nil))
			b := coords(flat.FindOverlaps(from, to, nil))
			if !sameMultiset(a, b) {
				t.Fatalf("engines disagree at [%d,%d]: nclist=%v flatnest=%v", from, to, a, b)
			}
		}
	}
}

func TestReloadReplacesContents(t *testing.T) {
	for _, kind := range []EngineKind{EngineNCList, EngineFlatNest} {
		s := New(WithEngine(kind), WithSeed([]interval.Interval{iv(10, 20, 0)}))
		if s.Size() != 1 {
			t.Fatalf("kind %v: Size() = %d, want 1", kind, s.Size())
		}
		s.Reload([]interval.Interval{iv(50, 60, 0), iv(55, 65, 0)})
		if s.Size() != 2 {
			t.Fatalf("kind %v: Size() after Reload = %d, want 2", kind, s.Size())
		}
		if s.Contains(iv(10, 20, 0)) {
			t.Fatalf("kind %v: expected stale interval to be gone after Reload", kind)
		}
		if !s.Contains(iv(50, 60, 0)) {
			t.Fatalf("kind %v: expected reloaded interval to be present", kind)
		}
	}
}

func TestRevalidateIdempotentAcrossEngines(t *testing.T) {
	for _, kind := range []EngineKind{EngineNCList, EngineFlatNest} {
		s := New(WithEngine(kind), WithSeed([]interval.Interval{iv(10, 20, 0), iv(15, 25, 0)}))
		s.Revalidate()
		first := coords(s.FindOverlaps(0, 100, nil))
		s.Revalidate()
		second := coords(s.FindOverlaps(0, 100, nil))
		if !sameMultiset(first, second) {
			t.Fatalf("kind %v: Revalidate changed query results", kind)
		}
	}
}
