// Package ivtypes holds example payload types implementing
// interval.Interval. These are explicitly non-core per spec.md §1/§6 —
// external collaborators, not part of the comparator/engine core — the
// way recentfile.Event is a plain payload type rather than part of
// Recentfile's engine.
package ivtypes

import "github.com/abh/ivstore/interval"

// Range is the simplest interval payload: a labeled [Begin, End] range.
type Range struct {
	From  int32  `yaml:"from" json:"from"`
	To    int32  `yaml:"to" json:"to"`
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
}

func (r Range) Begin() int32 { return r.From }
func (r Range) End() int32   { return r.To }

func (r Range) EqualsInterval(other interval.Interval) bool {
	o, ok := other.(Range)
	return ok && o.From == r.From && o.To == r.To && o.Label == r.Label
}
