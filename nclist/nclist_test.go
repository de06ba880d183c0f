package nclist

import "github.com/abh/ivstore/interval"

// rng is the fixture interval type shared by the nclist tests: a plain
// [begin, end] range tagged with an id so EqualsInterval can distinguish
// duplicate-coordinate entries.
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
