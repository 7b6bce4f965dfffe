// Package solver implements the peg-solitaire search family (spec 4.F):
// DFSMemo, ZobristDFS, AStar, IDAStar, Beam, ParallelBeam, Bidirectional,
// PatternAStar, and ParallelDFS. See types.go for the shared
// Result/Stats/Options shapes every solver returns and consumes.
package solver
