package looptrace_test

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/looptrace"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// ExampleTrace walks the 16-cell loop of a noisy 5×5 grid.
// Grid:
//
//	7-F7-
//	.FJ|7
//	SJLL7
//	|F--J
//	LJ.LJ
//
// The entry connects east (J) and south (|), so it resolves to F, and the
// farthest loop cell is 8 steps away either way round.
func ExampleTrace() {
	g, err := pipegrid.ParseString("7-F7-\n.FJ|7\nSJLL7\n|F--J\nLJ.LJ")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	loop, err := looptrace.Trace(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("length:", loop.Len())
	fmt.Println("farthest:", loop.Farthest())
	fmt.Printf("entry: %v %c\n", loop.Entry, loop.EntryKind.Rune())

	// Output:
	// length: 16
	// farthest: 8
	// entry: (2,0) F
}
