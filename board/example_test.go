package board_test

import (
	"fmt"

	"github.com/katalvlaran/pegsolve/board"
)

// ExampleBoard_Moves demonstrates the minimal jump: two adjacent pegs with
// a hole at each end of the pair, so each peg can jump the other.
func ExampleBoard_Moves() {
	pegs := uint64(1)<<16 | uint64(1)<<17
	b, err := board.NewEnglish(pegs)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, m := range b.Moves() {
		fmt.Printf("%d -> %d over %d\n", m.From, m.To, m.Over)
	}
	// Output:
	// 16 -> 18 over 17
	// 17 -> 15 over 16
}
