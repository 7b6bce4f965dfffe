package solver

import "github.com/katalvlaran/pegsolve/board"

// PatternAStar is A* guided by the Pattern Database, only for
// English-cross boards with a PDB attached; it delegates to plain AStar
// otherwise (spec 4.F "Pattern-A*"). AStar itself already folds the PDB
// bound into admissibleHeuristic when Options.PDB is set, so
// PatternAStar's only job is the "PDB available, and applicable" gate.
func PatternAStar(start board.Board, opts Options) (Result, error) {
	if opts.PDB == nil || !start.IsEnglishCross() {
		opts.PDB = nil
		return AStar(start, opts)
	}

	return AStar(start, opts)
}
