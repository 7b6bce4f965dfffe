package board_test

import (
	"testing"

	"github.com/katalvlaran/pegsolve/board"
)

// BenchmarkMoves times move generation on the full English start position,
// the hottest loop in every solver.
func BenchmarkMoves(b *testing.B) {
	start := board.EnglishStart()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = start.Moves()
	}
}

// BenchmarkCanonical times D4 canonicalisation, run once per visited node
// in every memoised solver.
func BenchmarkCanonical(b *testing.B) {
	start := board.EnglishStart()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.Canonical(start)
	}
}
