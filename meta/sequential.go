package meta

import (
	"runtime"
	"time"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/pdb"
	"github.com/katalvlaran/pegsolve/pegerr"
	"github.com/katalvlaran/pegsolve/progress"
	"github.com/katalvlaran/pegsolve/solver"
	"github.com/katalvlaran/pegsolve/store"
	"github.com/katalvlaran/pegsolve/verify"
)

// Sequential engine names, in the fixed order spec 4.G mandates. Lookup
// is handled inline (not an engineSlot, since it needs the store
// directly rather than an Options-shaped runner).
const (
	engineZobristDFS    = "zobrist-dfs"
	engineAStar         = "a-star"
	engineBidirectional = "bidirectional"
	engineParallelDFS   = "parallel-dfs"
	engineParallelBeam  = "parallel-beam"
	engineExhaustive    = "exhaustive"
	engineBruteForce    = "brute-force"
)

// bruteForceMinBudget is spec 4.G's "guaranteed a minimum budget (e.g.
// one hour)" for the terminal brute-force step.
const bruteForceMinBudget = time.Hour

// SequentialOptions configures Sequential: the total wall-clock budget
// shared across the ladder (the terminal brute-force step is exempt,
// per spec 4.G), the target cell, and the PDB consulted by Pattern-A*.
type SequentialOptions struct {
	Budget time.Duration
	Target *board.Cell
	PDB    *pdb.Tables
}

// Sequential implements spec 4.G's Sequential meta-solver: the "always
// try harder" escalator. It runs a fixed, ordered list of engines,
// each given the remaining budget, and returns the first verified
// solution. Unlike Governor's classify-then-dispatch, ordering here is
// itself the contract: generalizes tsp.Options.Algo's enum-driven
// routing from a single switch to an ordered ladder that is walked in
// full when necessary.
func Sequential(b board.Board, opts SequentialOptions, st *store.Store, prog *progress.Sender) (solver.Result, error) {
	deadline := time.Now().Add(opts.Budget)
	base := solver.DefaultOptions()
	base.Target = opts.Target
	base.PDB = opts.PDB

	workers := runtime.GOMAXPROCS(0)

	ladder := []engineSlot{
		{name: engineDFSMemo, run: func(o solver.Options) (solver.Result, error) { return solver.DFSMemo(b, o) }},
		{name: engineBeam, run: func(o solver.Options) (solver.Result, error) { return solver.Beam(b, o) }},
		{name: engineZobristDFS, run: func(o solver.Options) (solver.Result, error) { return solver.ZobristDFS(b, o) }},
		{name: engineAStar, run: func(o solver.Options) (solver.Result, error) { return solver.AStar(b, o) }},
		{name: enginePatternAStar, run: func(o solver.Options) (solver.Result, error) { return solver.PatternAStar(b, o) }},
		{name: engineIDAStar, run: func(o solver.Options) (solver.Result, error) { return solver.IDAStar(b, o) }},
		{name: engineBidirectional, run: func(o solver.Options) (solver.Result, error) { return solver.Bidirectional(b, o) }},
		{name: engineParallelDFS, run: func(o solver.Options) (solver.Result, error) { o.Workers = workers; return solver.ParallelDFS(b, o) }},
		{name: engineParallelBeam, run: func(o solver.Options) (solver.Result, error) { o.Workers = workers; return solver.ParallelBeam(b, o) }},
		{
			name: engineExhaustive,
			run: func(o solver.Options) (solver.Result, error) {
				o.UsePagoda = false // exhaustive: no heuristic prune, visit every canonical descendant
				return solver.DFSMemo(b, o)
			},
		},
		{
			name: engineBruteForce,
			run: func(o solver.Options) (solver.Result, error) {
				o.UsePagoda = false
				o.Workers = workers
				return solver.ParallelDFS(b, o)
			},
			minBudget: bruteForceMinBudget,
		},
	}

	seq := 0
	total := 1 + len(ladder)
	emit := func(name string, phase progress.Phase, start time.Time) {
		prog.Send(progress.Event{Engine: name, Phase: phase, ElapsedMs: progress.Since(start), SequenceIdx: seq, TotalEngines: total})
	}

	seq++
	lookupStart := time.Now()
	emit("lookup", progress.Starting, lookupStart)
	if st != nil {
		if e, ok := st.Lookup(b); ok {
			emit("lookup", progress.Completed, lookupStart)
			return solver.Result{Moves: e.Moves}, nil
		}
	}
	emit("lookup", progress.Failed, lookupStart)

	var lastErr error
	for _, slot := range ladder {
		seq++

		remaining := time.Until(deadline)
		if slot.minBudget > remaining {
			remaining = slot.minBudget
		}
		if remaining <= 0 {
			lastErr = pegerr.New(pegerr.TimedOut, errSequentialExhausted)
			continue
		}

		engineOpts := base
		engineOpts.Deadline = time.Now().Add(remaining)

		start := time.Now()
		emit(slot.name, progress.Starting, start)
		emit(slot.name, progress.Running, start)

		res, err := slot.run(engineOpts)
		if err != nil {
			lastErr = err
			emit(slot.name, progress.Failed, start)
			continue
		}
		if verify.VerifyOrError(b, res.Moves, opts.Target) != nil {
			lastErr = pegerr.New(pegerr.ValidationFailed, verify.ErrValidationFailed)
			emit(slot.name, progress.Failed, start)
			continue
		}

		emit(slot.name, progress.Completed, start)
		if st != nil {
			st.Put(b, store.Entry{Moves: res.Moves, Solver: slot.name, TimeElapsed: time.Since(start), Timestamp: time.Now()})
		}

		return res, nil
	}

	if lastErr == nil {
		lastErr = pegerr.New(pegerr.NoSolution, errSequentialExhausted)
	}

	return solver.Result{}, lastErr
}
