package ivtypes

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/abh/ivstore/interval"
)

// Dump is the on-disk YAML shape of one interval-dump file, loaded by
// cmd/ivbench, cmd/ivfsck and cmd/ivwatch.
type Dump struct {
	Ranges []Range `yaml:"ranges"`
}

// LoadDump reads and parses a single YAML interval-dump file.
func LoadDump(path string) (Dump, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dump{}, fmt.Errorf("read dump %s: %w", path, err)
	}
	var d Dump
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Dump{}, fmt.Errorf("parse dump %s: %w", path, err)
	}
	return d, nil
}

// Intervals converts a Dump's Ranges to interval.Interval values, in file
// order.
func (d Dump) Intervals() []interval.Interval {
	out := make([]interval.Interval, len(d.Ranges))
	for i, r := range d.Ranges {
		out[i] = r
	}
	return out
}

// WriteDump serializes ranges to a YAML interval-dump file at path.
func WriteDump(path string, ranges []Range) error {
	data, err := yaml.Marshal(Dump{Ranges: ranges})
	if err != nil {
		return fmt.Errorf("marshal dump: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write dump %s: %w", path, err)
	}
	return nil
}
