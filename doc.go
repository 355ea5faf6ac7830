// Package pipeloop finds the single closed loop hidden in a grid of pipe
// tiles and counts the cells it encloses.
//
// 🚀 What is pipeloop?
//
//	A small, dependency-light toolkit in three stages:
//		• pipegrid  – tile vocabulary, connector table, grid arena, parser
//		• looptrace – walks the loop from the entry cell and infers its shape
//		• interior  – scanline parity test marking enclosed cells
//
// plus render/ for colourised debug output and cmd/pipeloop for the CLI.
//
// Quick ASCII example:
//
//	.....        .....
//	.S-7.        .╔═╗.
//	.|.|.   →    .║▒║.
//	.L-J.        .╚═╝.
//	.....        .....
//
// The loop has 8 cells, its farthest point is 4 steps from S, and it
// encloses one cell.
//
//	res, err := pipeloop.Analyze(strings.NewReader(text), pipeloop.WithWorkers(4))
//	fmt.Println(res.Farthest, res.Interior)
package pipeloop
