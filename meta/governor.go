package meta

import (
	"time"

	"github.com/katalvlaran/pegsolve/board"
	"github.com/katalvlaran/pegsolve/pdb"
	"github.com/katalvlaran/pegsolve/pegerr"
	"github.com/katalvlaran/pegsolve/progress"
	"github.com/katalvlaran/pegsolve/solver"
	"github.com/katalvlaran/pegsolve/store"
	"github.com/katalvlaran/pegsolve/verify"
)

// These engine names are spec 4.G step 3's dispatch table entries.
const (
	engineDFSMemo      = "dfs-memo"
	engineBeam         = "beam"
	enginePatternAStar = "pattern-astar"
	engineIDAStar      = "ida-star"
)

// GovernorOptions configures Governor: the total wall-clock budget to
// spend across the dispatched engine and its fallback ladder, an
// optional target cell, and the PDB consulted for Pattern-A*. The
// solution store and the progress sink are Governor's own parameters.
type GovernorOptions struct {
	Budget time.Duration
	Target *board.Cell
	PDB    *pdb.Tables
}

// hardPegThreshold is spec 4.G step 3's "hard with pegs > 25" cutoff.
const hardPegThreshold = 25

// governorTimeoutFraction is step 4's "per-engine timeout <= 70% of the
// total budget".
const governorTimeoutFraction = 0.7

// wideBeamWidth is used for the "hard, not IDA*" branch and the
// high-mobility branch (spec 4.G step 3's "Beam, wider W" / "Beam
// (W~300)").
const wideBeamWidth = 300

// Governor implements spec 4.G's Governor meta-solver: consult the
// store, classify the position, dispatch to one engine under a bounded
// timeout, fall back through a fixed ladder on failure, then verify
// and store. Generalizes tsp.SolveWithMatrix's validate-then-route
// shape: a single entry point that picks one concrete algorithm based
// on cheap structural signals, with Governor's fallback ladder playing
// the role tsp's local-search post-pass plays there.
func Governor(b board.Board, opts GovernorOptions, st *store.Store, prog *progress.Sender) (solver.Result, error) {
	deadline := time.Now().Add(opts.Budget)
	total := 1 + 4 // Lookup + dispatch + 3-step fallback ladder, for SequenceIdx/TotalEngines

	seq := 0
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

	class := Classify(b)
	primary, primaryOpts := dispatch(class, b, opts)

	ladder := []engineSlot{
		primary,
		{name: engineDFSMemo, run: func(o solver.Options) (solver.Result, error) { return solver.DFSMemo(b, o) }},
		{name: engineBeam, run: func(o solver.Options) (solver.Result, error) { return solver.Beam(b, o) }},
		{name: engineIDAStar, run: func(o solver.Options) (solver.Result, error) { return solver.IDAStar(b, o) }},
		{name: enginePatternAStar, run: func(o solver.Options) (solver.Result, error) { return solver.PatternAStar(b, o) }},
	}

	baseOpts := primaryOpts
	baseOpts.Target = opts.Target
	baseOpts.PDB = opts.PDB

	var lastErr error
	for i, slot := range ladder {
		// Skip re-running the primary engine twice if it also heads the
		// ladder (dispatch's chosen engine is always ladder[0]).
		if i > 0 && slot.name == primary.name {
			continue
		}

		seq++
		remaining := time.Until(deadline)
		if remaining <= 0 {
			lastErr = pegerr.New(pegerr.TimedOut, errGovernorBudgetExhausted)
			break
		}

		engineOpts := baseOpts
		if i == 0 {
			// step 4: the chosen engine gets at most 70% of the total
			// budget, leaving room for the fallback ladder.
			budgetCap := time.Duration(float64(opts.Budget) * governorTimeoutFraction)
			if budgetCap > remaining || budgetCap <= 0 {
				budgetCap = remaining
			}
			engineOpts.Deadline = time.Now().Add(budgetCap)
		} else {
			engineOpts.Deadline = deadline
		}

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
		lastErr = pegerr.New(pegerr.NoSolution, errGovernorExhausted)
	}

	return solver.Result{}, lastErr
}

// dispatch implements spec 4.G step 3's classification table, returning
// the chosen engine as a ladder entry plus the base Options it should
// run with.
func dispatch(class Class, b board.Board, gopts GovernorOptions) (engineSlot, solver.Options) {
	base := solver.DefaultOptions()
	base.PDB = gopts.PDB
	base.Target = gopts.Target

	switch class {
	case Small:
		return engineSlot{name: engineDFSMemo, run: func(o solver.Options) (solver.Result, error) { return solver.DFSMemo(b, o) }}, base

	case HighMobility:
		base.BeamWidth = wideBeamWidth
		return engineSlot{name: engineBeam, run: func(o solver.Options) (solver.Result, error) { return solver.Beam(b, o) }}, base

	case Medium:
		if gopts.PDB != nil {
			return engineSlot{name: enginePatternAStar, run: func(o solver.Options) (solver.Result, error) { return solver.PatternAStar(b, o) }}, base
		}
		return engineSlot{name: engineBeam, run: func(o solver.Options) (solver.Result, error) { return solver.Beam(b, o) }}, base

	default: // Hard
		if b.PegCount() > hardPegThreshold {
			return engineSlot{name: engineIDAStar, run: func(o solver.Options) (solver.Result, error) { return solver.IDAStar(b, o) }}, base
		}
		base.BeamWidth = wideBeamWidth
		return engineSlot{name: engineBeam, run: func(o solver.Options) (solver.Result, error) { return solver.Beam(b, o) }}, base
	}
}
