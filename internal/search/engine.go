// Package search implements the heuristic backtracking that fills a
// grid's slots under crossing-letter constraints: MRV slot selection,
// letter-frequency candidate ordering, feasibility-pruned placement,
// and budgeted backtrack/restart control.
package search

import (
	"errors"
	"math/rand/v2"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tamberg/xwgen/internal/feasibility"
	"github.com/tamberg/xwgen/pkg/dictionary"
	"github.com/tamberg/xwgen/pkg/grid"
)

// ErrUnsolvable covers both exhaustive failure and budget exhaustion
// across every restart; the engine does not distinguish the two to
// its caller.
var ErrUnsolvable = errors.New("search: exhausted all restarts without a solution")

// ErrInvariant signals an internal precondition violation — a bug in
// the engine or its caller, not a property of the dictionary or grid.
var ErrInvariant = errors.New("search: internal invariant violated")

// SeedWord pre-places one word on a named slot before the first
// recursion, supporting the "pick a random long word for the first
// row" warmup described in spec §4.5.
type SeedWord struct {
	Dir  grid.Direction
	Row  int
	Col  int
	Word string
}

const (
	DefaultMaxBacktracks = 10_000
	DefaultMaxRestarts   = 3
	DefaultCandidateCap  = 150
)

// Config holds the engine's tunables; zero values are replaced with
// the spec's defaults by NewEngine.
type Config struct {
	MaxBacktracks int
	MaxRestarts   int
	CandidateCap  int
	Ordering      Ordering
}

func (c Config) withDefaults() Config {
	if c.MaxBacktracks <= 0 {
		c.MaxBacktracks = DefaultMaxBacktracks
	}
	if c.MaxRestarts <= 0 {
		c.MaxRestarts = DefaultMaxRestarts
	}
	if c.CandidateCap <= 0 {
		c.CandidateCap = DefaultCandidateCap
	}
	return c
}

// Engine owns one dictionary borrow and runs independent Solve
// invocations against caller-supplied grids; it holds no mutable
// search state between calls.
type Engine struct {
	dict   *dictionary.Index
	config Config
	logger *zap.SugaredLogger
}

// NewEngine builds an Engine. A nil logger is replaced with a no-op
// logger so callers never need a nil check.
func NewEngine(dict *dictionary.Index, cfg Config, logger *zap.SugaredLogger) *Engine {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Engine{dict: dict, config: cfg.withDefaults(), logger: logger}
}

// Solve fills base's slots, trying up to config.MaxRestarts
// independent attempts, each against a fresh clone of base, before
// reporting ErrUnsolvable. On success it returns the filled grid and
// the slot->word assignment; base itself is never mutated.
func (e *Engine) Solve(base *grid.Grid, seeds []SeedWord, rng *rand.Rand) (*grid.Grid, map[grid.Slot]string, error) {
	for attempt := 0; attempt < e.config.MaxRestarts; attempt++ {
		attemptID := uuid.New()
		g := base.Clone()
		assignment := make(map[grid.Slot]string)
		used := make(map[string]struct{})

		if err := e.applySeeds(g, seeds, assignment, used); err != nil {
			return nil, nil, err
		}

		backtracks := 0
		e.logger.Debugw("search attempt starting", "attempt_id", attemptID, "attempt", attempt, "seeded_slots", len(assignment))

		if e.solveRec(g, assignment, used, rng, &backtracks) {
			e.logger.Infow("search solved", "attempt_id", attemptID, "attempt", attempt, "backtracks", backtracks)
			return g, assignment, nil
		}

		e.logger.Debugw("search attempt exhausted", "attempt_id", attemptID, "attempt", attempt, "backtracks", backtracks)
	}

	e.logger.Warnw("search unsolvable after all restarts", "max_restarts", e.config.MaxRestarts)
	return nil, nil, ErrUnsolvable
}

func (e *Engine) applySeeds(g *grid.Grid, seeds []SeedWord, assignment map[grid.Slot]string, used map[string]struct{}) error {
	for _, seed := range seeds {
		var target grid.Slot
		found := false
		for _, s := range g.Slots() {
			if s.Dir == seed.Dir && s.Row == seed.Row && s.Col == seed.Col {
				target = s
				found = true
				break
			}
		}
		if !found {
			return errors.New("search: seed slot not found in grid")
		}
		before, err := g.Place(target, seed.Word)
		if err != nil {
			return err
		}
		_ = before // the seed is never unplaced within this attempt
		assignment[target] = seed.Word
		used[seed.Word] = struct{}{}
	}
	return nil
}

// solveRec is the Selecting/Trying/Backtracking state machine of
// spec §4.5, expressed as plain recursion with an explicit snapshot
// for exact undo on every unwind.
func (e *Engine) solveRec(g *grid.Grid, assignment map[grid.Slot]string, used map[string]struct{}, rng *rand.Rand, backtracks *int) bool {
	slot, ok := selectSlot(g.Slots(), assignment, g, e.dict)
	if !ok {
		return true // Solved: no unassigned slot remains.
	}

	pattern := g.PatternOf(slot)
	for _, word := range candidatesFor(e.dict, slot, pattern, used, e.config.Ordering, rng, e.config.CandidateCap) {
		if !feasibility.Endorses(g, e.dict, slot, word, used) {
			continue
		}

		before, err := g.Place(slot, word)
		if err != nil {
			// Endorses already validated this placement; reaching here
			// means a caller-visible invariant was violated.
			continue
		}
		assignment[slot] = word
		used[word] = struct{}{}

		if e.solveRec(g, assignment, used, rng, backtracks) {
			return true
		}

		g.Unplace(slot, before)
		delete(assignment, slot)
		delete(used, word)

		*backtracks++
		if *backtracks > e.config.MaxBacktracks {
			return false
		}
	}

	return false
}
