// Package ivcheck is the cross-engine structural checker: the domain
// equivalent of the teacher's fsck package, supplementing spec.md §8's
// testable property that NCList and flat-nest, seeded with the same data,
// agree on every query.
package ivcheck

import (
	"fmt"
	"log/slog"

	"github.com/abh/ivstore/interval"
	"github.com/abh/ivstore/ivstore"
)

// Options controls a Run.
type Options struct {
	// Probe is the grid of query ranges to check cross-engine agreement
	// against. If empty, a default grid derived from the stores' own
	// contents is used.
	Probe  []ProbeRange
	Logger *slog.Logger // required
}

// ProbeRange is one [From, To] overlap query to check.
type ProbeRange struct {
	From, To int32
}

// Result holds findings, one count per check.
type Result struct {
	Issues      int
	IssuesFound map[string]int
}

// Run checks storeA and storeB for structural validity and mutual
// agreement: IsValid on each, Size and GetWidth agreement, agreement on
// whether GetDepth is zero, and multiset equality of FindOverlaps across
// every probe range.
func Run(storeA, storeB *ivstore.Store, opts Options) (*Result, error) {
	if opts.Logger == nil {
		return nil, fmt.Errorf("ivcheck: logger is required")
	}

	opts.Logger.Info("starting cross-engine check",
		"probe_count", len(opts.Probe),
	)

	result := &Result{IssuesFound: make(map[string]int)}

	if opts.Logger != nil {
		opts.Logger.Debug("validating structural invariants")
	}
	result.IssuesFound["structural"] = checkStructural(storeA, storeB, opts)

	opts.Logger.Debug("checking depth/width agreement")
	result.IssuesFound["shape"] = checkShape(storeA, storeB, opts)

	probes := opts.Probe
	if len(probes) == 0 {
		probes = defaultProbe(storeA, storeB)
	}
	opts.Logger.Debug("checking query agreement", "probes", len(probes))
	result.IssuesFound["queries"] = checkQueries(storeA, storeB, probes, opts)

	for _, count := range result.IssuesFound {
		result.Issues += count
	}

	opts.Logger.Info("cross-engine check complete",
		"issues_found", result.Issues,
		"structural", result.IssuesFound["structural"],
		"shape", result.IssuesFound["shape"],
		"queries", result.IssuesFound["queries"],
	)

	return result, nil
}

func checkStructural(storeA, storeB *ivstore.Store, opts Options) int {
	issues := 0
	if !storeA.IsValid() {
		opts.Logger.Warn("store A failed its structural self-check")
		issues++
	}
	if !storeB.IsValid() {
		opts.Logger.Warn("store B failed its structural self-check")
		issues++
	}
	return issues
}

func checkShape(storeA, storeB *ivstore.Store, opts Options) int {
	issues := 0
	if storeA.Size() != storeB.Size() {
		opts.Logger.Warn("size mismatch", "a", storeA.Size(), "b", storeB.Size())
		issues++
	}
	if storeA.GetWidth() != storeB.GetWidth() {
		opts.Logger.Warn("width mismatch", "a", storeA.GetWidth(), "b", storeB.GetWidth())
		issues++
	}
	// Only the cross-engine zero/nonzero agreement of GetDepth is checked;
	// the depth values themselves are not compared.
	if (storeA.GetDepth() == 0) != (storeB.GetDepth() == 0) {
		opts.Logger.Warn("depth zero/nonzero mismatch", "a", storeA.GetDepth(), "b", storeB.GetDepth())
		issues++
	}
	return issues
}

func checkQueries(storeA, storeB *ivstore.Store, probes []ProbeRange, opts Options) int {
	issues := 0
	for _, p := range probes {
		a := storeA.FindOverlaps(p.From, p.To, nil)
		b := storeB.FindOverlaps(p.From, p.To, nil)
		if !sameMultiset(a, b) {
			opts.Logger.Warn("query disagreement", "from", p.From, "to", p.To, "a_count", len(a), "b_count", len(b))
			issues++
		}
	}
	return issues
}

// defaultProbe builds a grid of ranges spanning both stores' contents,
// covering the six positional cases spec.md §8 scenario 5 calls for
// (inside, enclosing, before, after, overlap-left, overlap-right).
func defaultProbe(storeA, storeB *ivstore.Store) []ProbeRange {
	all := storeA.All(storeB.All(nil))
	if len(all) == 0 {
		return []ProbeRange{{From: 0, To: 0}}
	}
	minStart, maxEnd := all[0].Begin(), all[0].End()
	for _, iv := range all {
		if iv.Begin() < minStart {
			minStart = iv.Begin()
		}
		if iv.End() > maxEnd {
			maxEnd = iv.End()
		}
	}
	span := maxEnd - minStart + 1
	half := span/2 + 1

	var probes []ProbeRange
	for from := minStart - half; from <= maxEnd+half; from += max32(span/20, 1) {
		for _, width := range []int32{0, span / 10, span / 2, span} {
			probes = append(probes, ProbeRange{From: from, To: from + width})
		}
	}
	return probes
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func sameMultiset(a, b []interval.Interval) bool {
	if len(a) != len(b) {
		return false
	}
	remaining := append([]interval.Interval{}, b...)
	for _, x := range a {
		found := -1
		for i, y := range remaining {
			if x.EqualsInterval(y) {
				found = i
				break
			}
		}
		if found < 0 {
			return false
		}
		remaining = append(remaining[:found], remaining[found+1:]...)
	}
	return true
}
