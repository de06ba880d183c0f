// Package ivstore is the primary store facade described in spec.md §4.2: it
// unifies the mutation/query API over either interval engine (package
// nclist or package flatnest) behind one type, selected at construction.
package ivstore

import (
	"sync"

	"github.com/abh/ivstore/flatnest"
	"github.com/abh/ivstore/interval"
	"github.com/abh/ivstore/nclist"
)

// EngineKind selects which engine a Store dispatches to.
type EngineKind int

const (
	// EngineNCList selects the recursive reference engine (package nclist).
	EngineNCList EngineKind = iota
	// EngineFlatNest selects the packed-array engine (package flatnest).
	EngineFlatNest
)

// engine is the internal dispatch surface both concrete engines satisfy.
type engine interface {
	AddUnique(iv interval.Interval) bool
	AddAllowDuplicates(iv interval.Interval)
	Remove(target interval.Interval) bool
	Contains(target interval.Interval) bool
	Size() int
	FindOverlaps(from, to int32, out []interval.Interval) []interval.Interval
	GetDepth() int
	GetWidth() int
	IsValid() bool
	Revalidate()
	All(out []interval.Interval) []interval.Interval
}

// Store wraps one interval engine behind a mutex-guarded facade, the way
// Recentfile.mu guards Recentfile fields. Every engine call is made under
// the RWMutex: exclusively for mutations and for reads that may trigger a
// finalisation pass, shared for Contains and Size. Iter and All return
// snapshot slices; the intervals in them are not guarded after return.
type Store struct {
	mu           sync.RWMutex
	kind         EngineKind
	comparator   interval.Comparator
	capacityHint int
	engine       engine
}

// Option is a functional option for configuring a Store, mirroring
// recentfile.Option / WithInterval.
type Option func(*storeConfig)

type storeConfig struct {
	comparator   interval.Comparator
	kind         EngineKind
	capacityHint int
	seed         []interval.Interval
}

// WithComparator sets the ordering comparator (interval.BigEndian or
// interval.LittleEndian). Defaults to interval.BigEndian.
func WithComparator(cmp interval.Comparator) Option {
	return func(c *storeConfig) { c.comparator = cmp }
}

// WithEngine selects which engine a Store dispatches to.
func WithEngine(kind EngineKind) Option {
	return func(c *storeConfig) { c.kind = kind }
}

// WithCapacityHint hints at the expected interval count, pre-sizing the
// flatnest backing array so early Adds don't force a reallocation (the
// "excess array capacity" spec.md §4.6 describes). EngineNCList has no
// comparable backing array and ignores this hint.
func WithCapacityHint(n int) Option {
	return func(c *storeConfig) { c.capacityHint = n }
}

// WithSeed bulk-constructs the store from ivs rather than starting empty,
// using the chosen engine's bulk-construction path (same query answers as
// one-by-one Add per spec.md §8).
func WithSeed(ivs []interval.Interval) Option {
	return func(c *storeConfig) { c.seed = ivs }
}

// New creates a Store per opts.
func New(opts ...Option) *Store {
	cfg := &storeConfig{comparator: interval.BigEndian, kind: EngineNCList}
	for _, opt := range opts {
		opt(cfg)
	}

	s := &Store{kind: cfg.kind, comparator: cfg.comparator, capacityHint: cfg.capacityHint}
	s.engine = buildEngine(cfg.kind, cfg.comparator, cfg.capacityHint, cfg.seed)
	return s
}

func buildEngine(kind EngineKind, cmp interval.Comparator, capacityHint int, seed []interval.Interval) engine {
	switch kind {
	case EngineFlatNest:
		if seed != nil {
			return flatnest.BuildWithCapacity(seed, cmp, capacityHint)
		}
		return flatnest.NewWithCapacity(cmp, capacityHint)
	default:
		if seed != nil {
			return nclist.Build(seed, cmp)
		}
		return nclist.NewList(cmp)
	}
}

// Kind reports which engine this Store dispatches to.
func (s *Store) Kind() EngineKind {
	return s.kind
}

// Reload discards the current contents and rebuilds the engine from ivs,
// keeping the same engine kind and comparator. Used by long-lived watchers
// that reload an interval index from a changed data source wholesale
// rather than diffing individual adds/removes.
func (s *Store) Reload(ivs []interval.Interval) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine = buildEngine(s.kind, s.comparator, s.capacityHint, ivs)
}
