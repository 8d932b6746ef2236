package xwgen

import (
	"go.uber.org/zap"

	"github.com/tamberg/xwgen/internal/search"
	"github.com/tamberg/xwgen/pkg/dictionary"
	"github.com/tamberg/xwgen/pkg/layout"
)

// Ordering re-exports the search package's candidate-ordering policy
// so callers never need to import internal/search directly.
type Ordering = search.Ordering

const (
	Heuristic = search.Heuristic
	Random    = search.Random
)

// SeedWord pre-places one word on a named slot before the engine's
// first recursion, per spec §4.5.
type SeedWord = search.SeedWord

// Config is the single input to Generate. Zero-value numeric fields
// fall back to the package defaults documented on internal/search.
type Config struct {
	// Size is the grid dimension N, 3..=7 inclusive.
	Size int

	// Dictionary is the immutable word index this generation borrows
	// read-only. Required.
	Dictionary *dictionary.Index

	// Seed drives every random choice made during this call, making
	// the result reproducible for an identical Config.
	Seed uint64

	MaxBacktracks int
	MaxRestarts   int
	CandidateCap  int
	Ordering      Ordering

	// BlockLayout, when non-nil, is used as-is instead of generating
	// one. An empty (non-nil) set is a valid all-open layout.
	BlockLayout layout.BlockSet

	// Seeds pre-places words on named slots before search begins.
	Seeds []SeedWord

	// Logger receives attempt-level structured logs. A nil Logger
	// disables logging without the caller needing a nop stand-in.
	Logger *zap.SugaredLogger
}

func (c Config) searchConfig() search.Config {
	return search.Config{
		MaxBacktracks: c.MaxBacktracks,
		MaxRestarts:   c.MaxRestarts,
		CandidateCap:  c.CandidateCap,
		Ordering:      c.Ordering,
	}
}
