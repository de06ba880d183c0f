package ivtypes

import (
	"reflect"

	"github.com/abh/ivstore/interval"
)

// SimpleFeature is Range plus an arbitrary attached payload, the way a
// genomic feature record carries a range plus annotation fields.
type SimpleFeature struct {
	Range `yaml:",inline"`
	Data  any `yaml:"data,omitempty" json:"data,omitempty"`
}

func (f SimpleFeature) EqualsInterval(other interval.Interval) bool {
	o, ok := other.(SimpleFeature)
	return ok && o.From == f.From && o.To == f.To && o.Label == f.Label && reflect.DeepEqual(o.Data, f.Data)
}
