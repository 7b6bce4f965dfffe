// Package pdb builds and queries a disjoint-region pattern database: the
// board's 33 valid cells are partitioned into five regions, each
// region's exact remaining-peg cost is solved by backward BFS from every
// terminal (one-peg-in-region) state, and the five tables sum to an
// admissible heuristic (spec 4.D). See regions.go, build.go, persist.go,
// heuristic.go.
package pdb
