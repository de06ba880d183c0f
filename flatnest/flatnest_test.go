package flatnest

import "github.com/abh/ivstore/interval"

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
